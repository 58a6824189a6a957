package services

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
	tu "github.com/cinevault/cinevault/internal/testing"
	"golang.org/x/oauth2"
)

func newTrackerFixture(t *testing.T) (*tu.StubBackend, *TrackerClient) {
	t.Helper()
	stub := tu.NewStubBackend()
	server := httptest.NewServer(stub.Handler())
	t.Cleanup(server.Close)

	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: stub.Token})
	return stub, NewTrackerClient(server.URL, tokens)
}

func TestTrackerClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Login", func(t *testing.T) {
		t.Run("returns session on valid credentials", func(t *testing.T) {
			stub, client := newTrackerFixture(t)

			sess, err := client.Login(ctx, stub.User.Email, stub.Password)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !sess.IsLoggedIn {
				t.Error("expected session to be logged in")
			}
			if sess.Token != stub.Token {
				t.Errorf("expected token %q, got %q", stub.Token, sess.Token)
			}
			if sess.User == nil || sess.User.ID != stub.User.ID {
				t.Errorf("expected user %q, got %+v", stub.User.ID, sess.User)
			}
		})

		t.Run("fails on wrong password", func(t *testing.T) {
			stub, client := newTrackerFixture(t)

			_, err := client.Login(ctx, stub.User.Email, "wrong")
			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
			if !strings.Contains(err.Error(), "Invalid credentials") {
				t.Errorf("expected server message in error, got %v", err)
			}
		})
	})

	t.Run("Register returns the new account", func(t *testing.T) {
		_, client := newTrackerFixture(t)

		user, err := client.Register(ctx, "New User", "new@example.com", "secret")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user.Email != "new@example.com" {
			t.Errorf("expected registered email, got %q", user.Email)
		}
	})

	t.Run("Profile", func(t *testing.T) {
		t.Run("sends the stored credential", func(t *testing.T) {
			stub, client := newTrackerFixture(t)

			user, err := client.Profile(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.ID != stub.User.ID {
				t.Errorf("expected user %q, got %q", stub.User.ID, user.ID)
			}
			if stub.LastAuthHeader != stub.Token {
				t.Errorf("expected credential header %q, got %q", stub.Token, stub.LastAuthHeader)
			}
		})

		t.Run("fails without a credential", func(t *testing.T) {
			stub := tu.NewStubBackend()
			server := httptest.NewServer(stub.Handler())
			t.Cleanup(server.Close)
			client := NewTrackerClient(server.URL, nil)

			_, err := client.Profile(ctx)
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
			if !strings.Contains(err.Error(), "401") {
				t.Errorf("expected 401 status in error, got %v", err)
			}
		})
	})

	t.Run("Interactions reads the stored snapshot", func(t *testing.T) {
		stub, client := newTrackerFixture(t)
		stub.Interactions["movie/550"] = &models.InteractionState{Watched: true}

		state, err := client.Interactions(ctx, "user-1", models.MediaMovie, "550")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !state.Watched || state.Liked || state.Watchlisted {
			t.Errorf("expected watched only, got %+v", state)
		}
	})

	t.Run("Toggle", func(t *testing.T) {
		t.Run("returns the server value per action", func(t *testing.T) {
			_, client := newTrackerFixture(t)

			// The liked action travels as the "like" path segment but
			// comes back keyed by its state name.
			value, err := client.Toggle(ctx, "user-1", models.MediaMovie, "550", models.ActionLiked)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !value {
				t.Error("expected first toggle to report true")
			}

			value, err = client.Toggle(ctx, "user-1", models.MediaMovie, "550", models.ActionLiked)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if value {
				t.Error("expected second toggle to report false")
			}
		})

		t.Run("toggles are independent per action", func(t *testing.T) {
			stub, client := newTrackerFixture(t)

			if _, err := client.Toggle(ctx, "user-1", models.MediaTV, "1399", models.ActionWatched); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			state := stub.Interactions["tv/1399"]
			if state == nil || !state.Watched || state.Liked || state.Watchlisted {
				t.Errorf("expected watched only, got %+v", state)
			}
		})
	})

	t.Run("Rating reads the stored value", func(t *testing.T) {
		stub, client := newTrackerFixture(t)
		stub.Ratings["movie/550"] = 4.5

		value, err := client.Rating(ctx, "user-1", models.MediaMovie, "550")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if value != 4.5 {
			t.Errorf("expected 4.5, got %v", value)
		}
	})

	t.Run("Rate", func(t *testing.T) {
		t.Run("stores a valid half-step value", func(t *testing.T) {
			stub, client := newTrackerFixture(t)

			if err := client.Rate(ctx, "user-1", models.MediaMovie, "550", 3.5); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if stub.Ratings["movie/550"] != 3.5 {
				t.Errorf("expected stored rating 3.5, got %v", stub.Ratings["movie/550"])
			}
		})

		t.Run("rejects invalid values before any network call", func(t *testing.T) {
			client := NewTrackerClient("http://127.0.0.1:0", nil)

			err := client.Rate(ctx, "user-1", models.MediaMovie, "550", 3.2)
			if !errors.Is(err, shared.ErrInvalidRating) {
				t.Errorf("expected ErrInvalidRating, got %v", err)
			}
		})

		t.Run("surfaces a success=false envelope as rejection", func(t *testing.T) {
			stub, client := newTrackerFixture(t)
			stub.RejectRating = "Rating must be between 0.5 and 5"

			err := client.Rate(ctx, "user-1", models.MediaMovie, "550", 4)
			if !errors.Is(err, shared.ErrRejected) {
				t.Fatalf("expected ErrRejected, got %v", err)
			}
			if !strings.Contains(err.Error(), "between 0.5 and 5") {
				t.Errorf("expected server message, got %v", err)
			}
		})
	})

	t.Run("Lists and Remove", func(t *testing.T) {
		stub, client := newTrackerFixture(t)
		stub.Lists = models.Collections{
			Watched: []models.CollectionEntry{
				{MediaType: models.MediaMovie, TmdbID: "550"},
				{MediaType: models.MediaTV, TmdbID: "1399"},
			},
			Liked: []models.CollectionEntry{
				{MediaType: models.MediaMovie, TmdbID: "603"},
			},
		}

		lists, err := client.Lists(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(lists.Watched) != 2 || len(lists.Liked) != 1 {
			t.Errorf("unexpected lists: %+v", lists)
		}

		if err := client.Remove(ctx, models.CollectionWatched, "550"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		lists, err = client.Lists(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(lists.Watched) != 1 || lists.Watched[0].TmdbID != "1399" {
			t.Errorf("expected 1399 to remain, got %+v", lists.Watched)
		}
		if len(lists.Liked) != 1 {
			t.Errorf("expected liked untouched, got %+v", lists.Liked)
		}
	})
}

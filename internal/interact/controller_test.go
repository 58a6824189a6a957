package interact

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
)

type mockBackend struct {
	mu sync.Mutex

	interactions     *models.InteractionState
	interactionsErr  error
	interactionCalls int

	toggleValue bool
	toggleErr   error
	toggleCalls int
	lastAction  models.Action

	rating      models.Rating
	ratingErr   error
	ratingCalls int

	rateErr   error
	rateCalls int
	lastRated models.Rating
}

func (m *mockBackend) Interactions(_ context.Context, _ string, _ models.MediaType, _ string) (*models.InteractionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interactionCalls++
	if m.interactionsErr != nil {
		return nil, m.interactionsErr
	}
	state := *m.interactions
	return &state, nil
}

func (m *mockBackend) Toggle(_ context.Context, _ string, _ models.MediaType, _ string, action models.Action) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toggleCalls++
	m.lastAction = action
	return m.toggleValue, m.toggleErr
}

func (m *mockBackend) Rating(_ context.Context, _ string, _ models.MediaType, _ string) (models.Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratingCalls++
	return m.rating, m.ratingErr
}

func (m *mockBackend) Rate(_ context.Context, _ string, _ models.MediaType, _ string, value models.Rating) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rateCalls++
	m.lastRated = value
	return m.rateErr
}

type staticCreds string

func (s staticCreds) Credential() string { return string(s) }

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestController(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch populates state once", func(t *testing.T) {
		backend := &mockBackend{interactions: &models.InteractionState{Watched: true}}
		c := NewController(backend, staticCreds("tok"), testLogger(), "u1", models.MediaMovie, "550", nil)

		c.Fetch(ctx)
		c.Fetch(ctx)

		if !c.State().Watched {
			t.Error("expected watched to be true after fetch")
		}
		if backend.interactionCalls != 1 {
			t.Errorf("expected 1 backend call, got %d", backend.interactionCalls)
		}
	})

	t.Run("fetch error falls back to all false", func(t *testing.T) {
		backend := &mockBackend{interactionsErr: errors.New("boom")}
		c := NewController(backend, staticCreds("tok"), testLogger(), "u1", models.MediaMovie, "550", nil)

		c.Fetch(ctx)

		if got := c.State(); got != (models.InteractionState{}) {
			t.Errorf("expected zero state, got %+v", got)
		}
	})

	t.Run("initial snapshot skips fetch", func(t *testing.T) {
		backend := &mockBackend{interactions: &models.InteractionState{}}
		initial := &models.InteractionState{Liked: true}
		c := NewController(backend, staticCreds("tok"), testLogger(), "u1", models.MediaTV, "1399", initial)

		c.Fetch(ctx)

		if !c.State().Liked {
			t.Error("expected initial snapshot to be kept")
		}
		if backend.interactionCalls != 0 {
			t.Errorf("expected no backend calls, got %d", backend.interactionCalls)
		}
	})

	t.Run("anonymous controller never fetches", func(t *testing.T) {
		backend := &mockBackend{interactions: &models.InteractionState{Watched: true}}
		c := NewController(backend, staticCreds(""), testLogger(), "", models.MediaMovie, "550", nil)

		c.Fetch(ctx)

		if backend.interactionCalls != 0 {
			t.Errorf("expected no backend calls, got %d", backend.interactionCalls)
		}
	})

	t.Run("toggle commits the server value", func(t *testing.T) {
		backend := &mockBackend{toggleValue: true}
		c := NewController(backend, staticCreds("tok"), testLogger(), "u1", models.MediaMovie, "550", &models.InteractionState{})

		state, err := c.Toggle(ctx, models.ActionWatched)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !state.Watched {
			t.Error("expected watched to flip to the server value")
		}
		if backend.lastAction != models.ActionWatched {
			t.Errorf("expected action %q, got %q", models.ActionWatched, backend.lastAction)
		}
	})

	t.Run("toggle failure keeps prior state", func(t *testing.T) {
		backend := &mockBackend{toggleErr: errors.New("boom")}
		c := NewController(backend, staticCreds("tok"), testLogger(), "u1", models.MediaMovie, "550", &models.InteractionState{Liked: true})

		state, err := c.Toggle(ctx, models.ActionLiked)
		if err == nil {
			t.Fatal("expected an error")
		}
		if !state.Liked {
			t.Error("expected prior state to survive the failure")
		}
		if c.Loading(models.ActionLiked) {
			t.Error("expected loading flag to clear after failure")
		}
	})

	t.Run("toggle without credential makes no network call", func(t *testing.T) {
		backend := &mockBackend{toggleValue: true}
		c := NewController(backend, staticCreds(""), testLogger(), "u1", models.MediaMovie, "550", &models.InteractionState{})

		_, err := c.Toggle(ctx, models.ActionWatchlisted)
		if !errors.Is(err, shared.ErrMissingToken) {
			t.Fatalf("expected ErrMissingToken, got %v", err)
		}
		if backend.toggleCalls != 0 {
			t.Errorf("expected no backend calls, got %d", backend.toggleCalls)
		}
	})

	t.Run("actions load independently", func(t *testing.T) {
		backend := &mockBackend{toggleValue: true}
		c := NewController(backend, staticCreds("tok"), testLogger(), "u1", models.MediaMovie, "550", &models.InteractionState{})

		c.mu.Lock()
		c.loading[models.ActionWatched] = true
		c.mu.Unlock()

		if _, err := c.Toggle(ctx, models.ActionLiked); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if backend.toggleCalls != 1 {
			t.Errorf("expected the liked toggle to proceed, got %d calls", backend.toggleCalls)
		}

		state, err := c.Toggle(ctx, models.ActionWatched)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if backend.toggleCalls != 1 {
			t.Errorf("expected the in-flight watched toggle to be a no-op, got %d calls", backend.toggleCalls)
		}
		if state.Watched {
			t.Error("expected watched to stay false while in flight")
		}
	})
}

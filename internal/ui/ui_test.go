package ui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/session"
	itesting "github.com/cinevault/cinevault/internal/testing"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func newProfileModel(tracker *itesting.MockTracker) *Model {
	catalog := &itesting.MockCatalog{
		DetailsFunc: func(_ context.Context, _ models.MediaType, tmdbID string) (*models.TitleDetail, error) {
			return &models.TitleDetail{Title: "Title " + tmdbID}, nil
		},
	}
	return NewModel(context.Background(), session.NewStore(nil, testLogger()), tracker, catalog, testLogger())
}

func TestProfileLoad(t *testing.T) {
	newTracker := func() *itesting.MockTracker {
		return &itesting.MockTracker{
			ProfileFunc: func(context.Context) (*models.User, error) {
				return &models.User{ID: "user-1", Name: "Test User"}, nil
			},
			ListsFunc: func(context.Context) (*models.Collections, error) {
				return &models.Collections{
					Watched: []models.CollectionEntry{{MediaType: models.MediaMovie, TmdbID: "550"}},
				}, nil
			},
		}
	}

	t.Run("the result travels as a message, not a model write", func(t *testing.T) {
		m := newProfileModel(newTracker())
		if cmd := m.startProfileLoad(); cmd == nil {
			t.Fatal("expected a command")
		}
		if !m.profileBusy {
			t.Error("expected the model to be marked busy")
		}

		ch := m.progressChan
		msg := m.loadProfile(ch)()
		loaded, ok := msg.(profileLoadedMsg)
		if !ok {
			t.Fatalf("expected profileLoadedMsg, got %T", msg)
		}
		if loaded.err != nil {
			t.Fatalf("unexpected error: %v", loaded.err)
		}
		if loaded.result == nil || loaded.result.User == nil {
			t.Fatal("expected a populated result")
		}
		if m.profile != nil || m.profileErr != nil || !m.profileBusy {
			t.Error("the result must stay in the message until Update applies it")
		}
		// the command closes the progress channel when the load finishes
		for range ch {
		}
	})

	t.Run("Update applies the loaded result", func(t *testing.T) {
		m := newProfileModel(newTracker())
		m.view = ProfileView
		_ = m.startProfileLoad()

		msg := m.loadProfile(m.progressChan)()
		updated, _ := m.Update(msg)
		m = updated.(*Model)

		if m.profileBusy {
			t.Error("expected the busy flag to clear")
		}
		if m.profile == nil || m.profile.User == nil || m.profile.User.Name != "Test User" {
			t.Fatal("expected the profile to be populated")
		}
		if got := len(m.profile.Items[models.CollectionWatched]); got != 1 {
			t.Errorf("expected 1 watched item, got %d", got)
		}
		if view := m.View(); !strings.Contains(view, "Test User") {
			t.Error("expected the profile view to show the account name")
		}
	})

	t.Run("a failed load surfaces in the profile view", func(t *testing.T) {
		tracker := newTracker()
		tracker.ProfileFunc = func(context.Context) (*models.User, error) {
			return nil, errors.New("boom")
		}
		m := newProfileModel(tracker)
		m.view = ProfileView
		_ = m.startProfileLoad()

		msg := m.loadProfile(m.progressChan)()
		loaded, ok := msg.(profileLoadedMsg)
		if !ok {
			t.Fatalf("expected profileLoadedMsg, got %T", msg)
		}
		if loaded.err == nil {
			t.Fatal("expected an error")
		}

		updated, _ := m.Update(loaded)
		m = updated.(*Model)
		if m.profileBusy {
			t.Error("expected the busy flag to clear")
		}
		if m.profile != nil {
			t.Error("expected no profile on failure")
		}
		if view := m.View(); !strings.Contains(view, "Failed to load profile") {
			t.Error("expected the profile view to show the failure")
		}
	})

	t.Run("a drained progress stream clears the channel", func(t *testing.T) {
		m := newProfileModel(newTracker())
		_ = m.startProfileLoad()

		updated, _ := m.Update(progressDoneMsg{})
		m = updated.(*Model)
		if m.progressChan != nil {
			t.Error("expected the progress channel to be released")
		}
	})
}

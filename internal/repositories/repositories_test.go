package repositories

import (
	"database/sql"
	"testing"

	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func testSession() *models.Session {
	return &models.Session{
		User:       &models.User{ID: "user-1", Email: "test@example.com", Name: "Test User"},
		Token:      "token-abc",
		IsLoggedIn: true,
	}
}

func TestSessionRepository(t *testing.T) {
	t.Run("Save and Load roundtrip", func(t *testing.T) {
		repo := NewSessionRepository(setupTestDB(t))

		if err := repo.Save(testSession()); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("failed to load session: %v", err)
		}
		if loaded == nil {
			t.Fatal("expected a persisted session")
		}
		if loaded.User.ID != "user-1" || loaded.User.Email != "test@example.com" {
			t.Errorf("unexpected user: %+v", loaded.User)
		}
		if loaded.Token != "token-abc" {
			t.Errorf("expected token token-abc, got %q", loaded.Token)
		}
		if !loaded.IsLoggedIn {
			t.Error("loaded session should report logged in")
		}
	})

	t.Run("Load returns nil on empty table", func(t *testing.T) {
		repo := NewSessionRepository(setupTestDB(t))

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if loaded != nil {
			t.Errorf("expected nil session, got %+v", loaded)
		}
	})

	t.Run("Save replaces the single row", func(t *testing.T) {
		repo := NewSessionRepository(setupTestDB(t))

		if err := repo.Save(testSession()); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}

		next := &models.Session{
			User:  &models.User{ID: "user-2", Email: "other@example.com", Name: "Other"},
			Token: "token-def",
		}
		if err := repo.Save(next); err != nil {
			t.Fatalf("failed to replace session: %v", err)
		}

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("failed to load session: %v", err)
		}
		if loaded.User.ID != "user-2" || loaded.Token != "token-def" {
			t.Errorf("expected replaced session, got %+v", loaded)
		}
	})

	t.Run("Save rejects incomplete sessions", func(t *testing.T) {
		repo := NewSessionRepository(setupTestDB(t))

		if err := repo.Save(nil); err == nil {
			t.Error("expected error for nil session")
		}
		if err := repo.Save(&models.Session{Token: "x"}); err == nil {
			t.Error("expected error for missing user")
		}
		if err := repo.Save(&models.Session{User: &models.User{ID: "u"}}); err == nil {
			t.Error("expected error for missing token")
		}
	})

	t.Run("Clear removes the row and tolerates empty tables", func(t *testing.T) {
		repo := NewSessionRepository(setupTestDB(t))

		if err := repo.Clear(); err != nil {
			t.Fatalf("clearing an empty table should not fail: %v", err)
		}

		if err := repo.Save(testSession()); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}
		if err := repo.Clear(); err != nil {
			t.Fatalf("failed to clear session: %v", err)
		}

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("failed to load session: %v", err)
		}
		if loaded != nil {
			t.Errorf("expected nil after clear, got %+v", loaded)
		}
	})
}

func TestTitleCacheRepository(t *testing.T) {
	sample := models.Title{
		TmdbID:      "550",
		MediaType:   models.MediaMovie,
		Title:       "Fight Club",
		PosterPath:  "/poster.jpg",
		ReleaseDate: "1999-10-15",
		VoteAverage: 8.4,
	}

	t.Run("Put and Get roundtrip", func(t *testing.T) {
		repo := NewTitleCacheRepository(setupTestDB(t))

		if err := repo.Put(sample); err != nil {
			t.Fatalf("failed to cache title: %v", err)
		}

		cached, err := repo.Get(models.MediaMovie, "550")
		if err != nil {
			t.Fatalf("failed to read cache: %v", err)
		}
		if cached == nil {
			t.Fatal("expected a cache hit")
		}
		if cached.Title != "Fight Club" || cached.ReleaseDate != "1999-10-15" {
			t.Errorf("unexpected cached title: %+v", cached)
		}
		if cached.MediaType != models.MediaMovie || cached.TmdbID != "550" {
			t.Errorf("expected key carried through, got %+v", cached)
		}
	})

	t.Run("Get returns nil on a miss", func(t *testing.T) {
		repo := NewTitleCacheRepository(setupTestDB(t))

		cached, err := repo.Get(models.MediaTV, "1399")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cached != nil {
			t.Errorf("expected nil on miss, got %+v", cached)
		}
	})

	t.Run("duplicate Put is not an error", func(t *testing.T) {
		repo := NewTitleCacheRepository(setupTestDB(t))

		if err := repo.Put(sample); err != nil {
			t.Fatalf("failed to cache title: %v", err)
		}
		if err := repo.Put(sample); err != nil {
			t.Errorf("duplicate insert should be ignored, got %v", err)
		}
	})

	t.Run("same id under both media types", func(t *testing.T) {
		repo := NewTitleCacheRepository(setupTestDB(t))

		show := sample
		show.MediaType = models.MediaTV
		show.Title = "Fight Club (series)"

		if err := repo.Put(sample); err != nil {
			t.Fatalf("failed to cache movie: %v", err)
		}
		if err := repo.Put(show); err != nil {
			t.Fatalf("failed to cache show: %v", err)
		}

		cached, err := repo.Get(models.MediaTV, "550")
		if err != nil {
			t.Fatalf("failed to read cache: %v", err)
		}
		if cached == nil || cached.Title != "Fight Club (series)" {
			t.Errorf("expected tv row, got %+v", cached)
		}
	})

	t.Run("Put rejects titles without a key", func(t *testing.T) {
		repo := NewTitleCacheRepository(setupTestDB(t))

		if err := repo.Put(models.Title{MediaType: models.MediaMovie}); err == nil {
			t.Error("expected error for missing tmdb id")
		}
		if err := repo.Put(models.Title{TmdbID: "550"}); err == nil {
			t.Error("expected error for missing media type")
		}
	})
}

package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/cinevault/cinevault/internal/models"
	itesting "github.com/cinevault/cinevault/internal/testing"
)

func searchCatalog(calls *atomic.Int32, totalPages int) *itesting.MockCatalog {
	return &itesting.MockCatalog{
		SearchFunc: func(_ context.Context, query string, page int, filter string) (*models.SearchPage, error) {
			if calls != nil {
				calls.Add(1)
			}
			return &models.SearchPage{
				Results:      []models.SearchResult{{ID: int64(page), Title: query}},
				Page:         page,
				TotalPages:   totalPages,
				TotalResults: totalPages * 20,
			}, nil
		},
	}
}

func TestSearchEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("new query starts at page 1", func(t *testing.T) {
		engine := NewSearchEngine(searchCatalog(nil, 5), testLogger())

		if err := engine.Search(ctx, nil, "fight club"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		state := engine.State()
		if state.Query != "fight club" || state.Page != 1 {
			t.Errorf("unexpected state %+v", state)
		}
		if state.TotalPages != 5 {
			t.Errorf("expected 5 total pages, got %d", state.TotalPages)
		}
		if len(state.Results) != 1 {
			t.Errorf("expected 1 result, got %d", len(state.Results))
		}
	})

	t.Run("changing the query resets the page", func(t *testing.T) {
		engine := NewSearchEngine(searchCatalog(nil, 5), testLogger())

		if err := engine.Search(ctx, nil, "alien"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := engine.GoToPage(ctx, nil, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := engine.Search(ctx, nil, "blade runner"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if state := engine.State(); state.Page != 1 {
			t.Errorf("expected page 1, got %d", state.Page)
		}
	})

	t.Run("filter change resets the page and refetches once", func(t *testing.T) {
		var calls atomic.Int32
		engine := NewSearchEngine(searchCatalog(&calls, 5), testLogger())

		if err := engine.Search(ctx, nil, "alien"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := engine.GoToPage(ctx, nil, 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := calls.Load()

		if err := engine.SetFilter(ctx, nil, "tv"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := calls.Load() - before; got != 1 {
			t.Errorf("expected exactly 1 refetch, got %d", got)
		}

		state := engine.State()
		if state.Filter != "tv" || state.Page != 1 {
			t.Errorf("unexpected state %+v", state)
		}
	})

	t.Run("setting the active filter again is a no-op", func(t *testing.T) {
		var calls atomic.Int32
		engine := NewSearchEngine(searchCatalog(&calls, 5), testLogger())

		if err := engine.Search(ctx, nil, "alien"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := calls.Load()

		if err := engine.SetFilter(ctx, nil, "all"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls.Load() != before {
			t.Error("expected no refetch for the unchanged filter")
		}
	})

	t.Run("page navigation clamps to the total", func(t *testing.T) {
		var calls atomic.Int32
		engine := NewSearchEngine(searchCatalog(&calls, 3), testLogger())

		if err := engine.Search(ctx, nil, "alien"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := calls.Load()

		if err := engine.GoToPage(ctx, nil, 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := engine.GoToPage(ctx, nil, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls.Load() != before {
			t.Error("expected out-of-range pages to be no-ops")
		}
		if state := engine.State(); state.Page != 1 {
			t.Errorf("expected page 1, got %d", state.Page)
		}

		if err := engine.NextPage(ctx, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state := engine.State(); state.Page != 2 {
			t.Errorf("expected page 2, got %d", state.Page)
		}

		if err := engine.PrevPage(ctx, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state := engine.State(); state.Page != 1 {
			t.Errorf("expected page 1, got %d", state.Page)
		}
	})

	t.Run("empty query clears results without a fetch", func(t *testing.T) {
		var calls atomic.Int32
		engine := NewSearchEngine(searchCatalog(&calls, 5), testLogger())

		if err := engine.Search(ctx, nil, "alien"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := calls.Load()

		if err := engine.Search(ctx, nil, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls.Load() != before {
			t.Error("expected no fetch for an empty query")
		}

		state := engine.State()
		if len(state.Results) != 0 || state.Query != "" {
			t.Errorf("expected cleared state, got %+v", state)
		}
	})

	t.Run("a failed fetch keeps the previous state", func(t *testing.T) {
		fail := false
		catalog := &itesting.MockCatalog{
			SearchFunc: func(_ context.Context, query string, page int, _ string) (*models.SearchPage, error) {
				if fail {
					return nil, errors.New("boom")
				}
				return &models.SearchPage{Page: page, TotalPages: 5}, nil
			},
		}
		engine := NewSearchEngine(catalog, testLogger())

		if err := engine.Search(ctx, nil, "alien"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		fail = true
		if err := engine.GoToPage(ctx, nil, 2); err == nil {
			t.Fatal("expected an error")
		}

		state := engine.State()
		if state.Query != "alien" || state.Page != 1 {
			t.Errorf("expected state to survive the failure, got %+v", state)
		}
	})
}

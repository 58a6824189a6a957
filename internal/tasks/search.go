package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/services"
	"github.com/cinevault/cinevault/internal/shared"
)

// SearchState is the page-local state of one search session.
type SearchState struct {
	Query        string
	Filter       string
	Page         int
	TotalPages   int
	TotalResults int
	Results      []models.SearchResult
}

// SearchEngine drives paged multi-search against the catalog proxy.
//
// Query changes reset to page 1. Filter changes reset to page 1 and
// refetch exactly once. Page navigation is clamped to the reported page
// count; out-of-range requests are no-ops. A failed fetch leaves the
// previous state untouched.
type SearchEngine struct {
	catalog services.Catalog
	logger  *log.Logger

	mu    sync.Mutex
	state SearchState
}

// NewSearchEngine creates a search engine with an empty all-filter state.
func NewSearchEngine(catalog services.Catalog, logger *log.Logger) *SearchEngine {
	return &SearchEngine{
		catalog: catalog,
		logger:  logger,
		state:   SearchState{Filter: "all", Page: 1, TotalPages: 1},
	}
}

// State returns a copy of the current search state.
func (e *SearchEngine) State() SearchState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Search runs a new query from page 1. An empty query clears the results
// without a network call.
func (e *SearchEngine) Search(ctx context.Context, progress chan<- ProgressUpdate, query string) error {
	e.mu.Lock()
	filter := e.state.Filter
	e.mu.Unlock()

	if query == "" {
		e.mu.Lock()
		e.state = SearchState{Filter: filter, Page: 1, TotalPages: 1}
		e.mu.Unlock()
		return nil
	}

	return e.fetch(ctx, progress, query, 1, filter)
}

// SetFilter switches the category filter, resets to page 1, and refetches
// the current query once. Setting the already-active filter is a no-op.
func (e *SearchEngine) SetFilter(ctx context.Context, progress chan<- ProgressUpdate, filter string) error {
	e.mu.Lock()
	if filter == e.state.Filter {
		e.mu.Unlock()
		return nil
	}
	query := e.state.Query
	e.mu.Unlock()

	if query == "" {
		e.mu.Lock()
		e.state.Filter = filter
		e.state.Page = 1
		e.mu.Unlock()
		return nil
	}

	return e.fetch(ctx, progress, query, 1, filter)
}

// GoToPage navigates to an absolute page. Requests outside
// [1, TotalPages] are no-ops.
func (e *SearchEngine) GoToPage(ctx context.Context, progress chan<- ProgressUpdate, page int) error {
	e.mu.Lock()
	if page < 1 || page > e.state.TotalPages || page == e.state.Page || e.state.Query == "" {
		e.mu.Unlock()
		return nil
	}
	query := e.state.Query
	filter := e.state.Filter
	e.mu.Unlock()

	return e.fetch(ctx, progress, query, page, filter)
}

// NextPage advances one page, clamped to the last page.
func (e *SearchEngine) NextPage(ctx context.Context, progress chan<- ProgressUpdate) error {
	return e.GoToPage(ctx, progress, e.State().Page+1)
}

// PrevPage steps back one page, clamped to the first page.
func (e *SearchEngine) PrevPage(ctx context.Context, progress chan<- ProgressUpdate) error {
	return e.GoToPage(ctx, progress, e.State().Page-1)
}

func (e *SearchEngine) fetch(ctx context.Context, progress chan<- ProgressUpdate, query string, page int, filter string) error {
	if e.catalog == nil {
		return fmt.Errorf("%w: catalog not initialized", shared.ErrServiceUnavailable)
	}

	sendProgress(progress, searchPageUpdate(query, page))

	result, err := e.catalog.Search(ctx, query, page, filter)
	if err != nil {
		e.logger.Error("search failed", "query", query, "page", page, "err", err)
		return fmt.Errorf("search failed: %w", err)
	}

	e.mu.Lock()
	e.state = SearchState{
		Query:        query,
		Filter:       filter,
		Page:         result.Page,
		TotalPages:   result.TotalPages,
		TotalResults: result.TotalResults,
		Results:      result.Results,
	}
	e.mu.Unlock()
	return nil
}

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

// DetailResult holds the six sub-resources of one detail page.
type DetailResult struct {
	MediaType models.MediaType
	TmdbID    string

	Detail    *models.TitleDetail
	Credits   *models.Credits
	Keywords  *models.KeywordList
	Providers *models.WatchProviders
	Videos    *models.VideoList
	Images    *models.ImageSet
}

// DetailEngine loads the detail page fan-out: six sub-resources fetched in
// parallel through the catalog proxy. The page renders all six or none;
// any single failure discards the partial results and surfaces one error.
type DetailEngine struct {
	catalog services.Catalog
	logger  *log.Logger

	mu      sync.Mutex
	current *DetailResult
}

// NewDetailEngine creates a detail engine backed by the given catalog.
func NewDetailEngine(catalog services.Catalog, logger *log.Logger) *DetailEngine {
	return &DetailEngine{catalog: catalog, logger: logger}
}

// Current returns the last successfully loaded result, or nil.
func (e *DetailEngine) Current() *DetailResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Load fetches all six sub-resources for one title in parallel and returns
// the joined result.
//
// When the requested title is already the loaded one, the cached result is
// returned without any network call. All six fetches are issued together;
// one failure does not cancel the siblings, but their results are discarded
// and the first error in fan-out order is returned.
func (e *DetailEngine) Load(ctx context.Context, progress chan<- ProgressUpdate, mediaType models.MediaType, tmdbID string) (*DetailResult, error) {
	if e.catalog == nil {
		return nil, fmt.Errorf("%w: catalog not initialized", shared.ErrServiceUnavailable)
	}
	if tmdbID == "" || !mediaType.Valid() {
		return nil, fmt.Errorf("%w: media type and title id required", shared.ErrInvalidArgument)
	}

	e.mu.Lock()
	if cur := e.current; cur != nil && cur.TmdbID == tmdbID && cur.MediaType == mediaType {
		e.mu.Unlock()
		return cur, nil
	}
	e.mu.Unlock()

	result := &DetailResult{MediaType: mediaType, TmdbID: tmdbID}

	fetches := []struct {
		name  string
		phase Phase
		run   func(context.Context) error
	}{
		{"details", FetchDetails, func(ctx context.Context) error {
			detail, err := e.catalog.Details(ctx, mediaType, tmdbID)
			result.Detail = detail
			return err
		}},
		{"credits", FetchCredits, func(ctx context.Context) error {
			credits, err := e.catalog.Credits(ctx, mediaType, tmdbID)
			result.Credits = credits
			return err
		}},
		{"keywords", FetchKeywords, func(ctx context.Context) error {
			keywords, err := e.catalog.Keywords(ctx, mediaType, tmdbID)
			result.Keywords = keywords
			return err
		}},
		{"watch providers", FetchProviders, func(ctx context.Context) error {
			providers, err := e.catalog.WatchProviders(ctx, mediaType, tmdbID)
			result.Providers = providers
			return err
		}},
		{"videos", FetchVideos, func(ctx context.Context) error {
			videos, err := e.catalog.Videos(ctx, mediaType, tmdbID)
			result.Videos = videos
			return err
		}},
		{"images", FetchImages, func(ctx context.Context) error {
			images, err := e.catalog.Images(ctx, mediaType, tmdbID)
			result.Images = images
			return err
		}},
	}

	errs := make([]error, len(fetches))
	var wg sync.WaitGroup
	for i, f := range fetches {
		wg.Add(1)
		go func(i int, name string, phase Phase, run func(context.Context) error) {
			defer wg.Done()
			sendProgress(progress, subFetchUpdate(phase, name, tmdbID))
			errs[i] = run(ctx)
		}(i, f.name, f.phase, f.run)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			e.logger.Error("detail sub-fetch failed", "resource", fetches[i].name, "mediaType", mediaType, "tmdbId", tmdbID, "err", err)
			return nil, fmt.Errorf("failed to load %s: %w", fetches[i].name, err)
		}
	}

	e.mu.Lock()
	e.current = result
	e.mu.Unlock()
	return result, nil
}

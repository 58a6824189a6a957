package tasks

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/services"
	"github.com/cinevault/cinevault/internal/shared"
	"golang.org/x/time/rate"
)

// TitleCache is the persistence slice the collection engine resolves
// display metadata through before hitting the catalog.
type TitleCache interface {
	Get(mediaType models.MediaType, tmdbID string) (*models.Title, error)
	Put(title models.Title) error
}

// CollectionItem is one resolved entry of a collection: the id-pair plus
// its display metadata. Title is nil when resolution failed.
type CollectionItem struct {
	Entry models.CollectionEntry
	Title *models.Title
	Err   error
}

// CollectionResult holds the profile page state: the account record and
// the three resolved collections.
type CollectionResult struct {
	User  *models.User
	Items map[models.CollectionType][]CollectionItem
}

// CollectionOpts contains configuration for collection resolution.
type CollectionOpts struct {
	NumWorkers int     // Concurrent resolvers (default: 5)
	RateLimit  float64 // Catalog requests per second (default: 5)
}

// CollectionEngine loads the profile page: account record and three
// id-lists fetched in parallel, then every entry resolved to display
// metadata through a rate-limited worker pool. The title cache is
// consulted before the catalog, and catalog hits are written back.
type CollectionEngine struct {
	tracker services.Tracker
	catalog services.Catalog
	cache   TitleCache
	logger  *log.Logger
	opts    CollectionOpts

	mu     sync.Mutex
	result *CollectionResult
}

// NewCollectionEngine creates a collection engine. The cache may be nil,
// in which case every entry resolves through the catalog.
func NewCollectionEngine(tracker services.Tracker, catalog services.Catalog, cache TitleCache, logger *log.Logger, opts CollectionOpts) *CollectionEngine {
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}
	return &CollectionEngine{
		tracker: tracker,
		catalog: catalog,
		cache:   cache,
		logger:  logger,
		opts:    opts,
	}
}

// Result returns the last successfully loaded state, or nil.
func (e *CollectionEngine) Result() *CollectionResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

// Load fetches the profile and the three id-lists in parallel, then
// resolves every entry's display metadata. A profile or lists failure is
// page-fatal; a single entry's resolution failure only marks that item.
func (e *CollectionEngine) Load(ctx context.Context, progress chan<- ProgressUpdate) (*CollectionResult, error) {
	if e.tracker == nil {
		return nil, fmt.Errorf("%w: tracker not initialized", shared.ErrServiceUnavailable)
	}

	var (
		user  *models.User
		lists *models.Collections

		userErr  error
		listsErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sendProgress(progress, fetchProfileUpdate())
		user, userErr = e.tracker.Profile(ctx)
	}()
	go func() {
		defer wg.Done()
		sendProgress(progress, fetchListsUpdate())
		lists, listsErr = e.tracker.Lists(ctx)
	}()
	wg.Wait()

	if userErr != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", userErr)
	}
	if listsErr != nil {
		return nil, fmt.Errorf("failed to fetch collections: %w", listsErr)
	}

	result := &CollectionResult{
		User:  user,
		Items: make(map[models.CollectionType][]CollectionItem, len(models.CollectionTypes)),
	}
	for _, collection := range models.CollectionTypes {
		entries := lists.Get(collection)
		items := make([]CollectionItem, len(entries))
		for i, entry := range entries {
			items[i] = CollectionItem{Entry: entry}
		}
		result.Items[collection] = items
	}

	e.resolveAll(ctx, progress, result)

	e.mu.Lock()
	e.result = result
	e.mu.Unlock()
	return result, nil
}

// resolveJob addresses one item slot inside the result map.
type resolveJob struct {
	collection models.CollectionType
	index      int
}

// resolveAll fills in display metadata for every entry of every
// collection through a shared worker pool and rate limiter. Items keep
// their positions; failed resolutions carry the error in place.
func (e *CollectionEngine) resolveAll(ctx context.Context, progress chan<- ProgressUpdate, result *CollectionResult) {
	total := 0
	for _, items := range result.Items {
		total += len(items)
	}
	if total == 0 {
		return
	}

	limiter := rate.NewLimiter(rate.Limit(e.opts.RateLimit), 1)
	jobs := make(chan resolveJob, total)

	var wg sync.WaitGroup
	var step int
	var stepMu sync.Mutex

	for w := 0; w < e.opts.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				item := &result.Items[job.collection][job.index]

				stepMu.Lock()
				step++
				current := step
				stepMu.Unlock()
				sendProgress(progress, resolveTitleUpdate(current, total, item.Entry.TmdbID))

				title, err := e.resolve(ctx, limiter, item.Entry)
				item.Title = title
				item.Err = err
			}
		}()
	}

	for _, collection := range models.CollectionTypes {
		for i := range result.Items[collection] {
			jobs <- resolveJob{collection: collection, index: i}
		}
	}
	close(jobs)
	wg.Wait()
}

// resolve returns display metadata for one entry, cache first.
func (e *CollectionEngine) resolve(ctx context.Context, limiter *rate.Limiter, entry models.CollectionEntry) (*models.Title, error) {
	if e.cache != nil {
		cached, err := e.cache.Get(entry.MediaType, entry.TmdbID)
		if err != nil {
			e.logger.Warn("title cache read failed", "tmdbId", entry.TmdbID, "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}

	detail, err := e.catalog.Details(ctx, entry.MediaType, entry.TmdbID)
	if err != nil {
		e.logger.Error("failed to resolve title", "mediaType", entry.MediaType, "tmdbId", entry.TmdbID, "err", err)
		return nil, err
	}

	title := &models.Title{
		TmdbID:      strconv.FormatInt(detail.ID, 10),
		MediaType:   entry.MediaType,
		Title:       detail.DisplayTitle(),
		PosterPath:  detail.PosterPath,
		ReleaseDate: detail.Date(),
		VoteAverage: detail.VoteAverage,
		Overview:    detail.Overview,
	}
	if title.TmdbID == "0" {
		title.TmdbID = entry.TmdbID
	}

	if e.cache != nil {
		if err := e.cache.Put(*title); err != nil {
			e.logger.Warn("title cache write failed", "tmdbId", title.TmdbID, "err", err)
		}
	}
	return title, nil
}

// Remove deletes one entry from a collection on the backend, then splices
// it out of the loaded state for that collection only. No refetch.
func (e *CollectionEngine) Remove(ctx context.Context, progress chan<- ProgressUpdate, collection models.CollectionType, tmdbID string) error {
	if !collection.Valid() {
		return fmt.Errorf("%w: unknown collection %q", shared.ErrInvalidArgument, collection)
	}

	sendProgress(progress, ProgressUpdate{
		Phase:   RemoveEntry,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Removing %s from %s...", tmdbID, collection),
	})

	if err := e.tracker.Remove(ctx, collection, tmdbID); err != nil {
		return fmt.Errorf("failed to remove from %s: %w", collection, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.result == nil {
		return nil
	}
	items := e.result.Items[collection]
	for i, item := range items {
		if item.Entry.TmdbID == tmdbID {
			e.result.Items[collection] = append(items[:i], items[i+1:]...)
			break
		}
	}
	return nil
}

// FilterItems narrows a collection to one media type. The filter is
// "movie", "tv", or "all"; anything else passes everything through.
// Pure slice work, never a network call.
func FilterItems(items []CollectionItem, filter string) []CollectionItem {
	if filter != string(models.MediaMovie) && filter != string(models.MediaTV) {
		return items
	}

	filtered := make([]CollectionItem, 0, len(items))
	for _, item := range items {
		if string(item.Entry.MediaType) == filter {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Metadata proxy implementation of [Catalog]
//
// The backend forwards /api/details, /api/fetch and /api/search to the movie
// metadata provider; this client only shapes parameters and decodes results.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
	"golang.org/x/time/rate"
)

// CatalogClient implements [Catalog] with a client-side rate limiter so a
// burst of page fetches stays inside the proxy's comfort zone.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewCatalogClient creates a catalog client for the given origin.
//
// Pass the tracker's HTTP client to share its cookie jar; rps <= 0 disables
// throttling.
func NewCatalogClient(baseURL string, client *http.Client, rps float64, burst int) *CatalogClient {
	if baseURL == "" {
		baseURL = defaultBackendURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	var limiter *rate.Limiter
	if rps > 0 {
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}

	return &CatalogClient{baseURL: baseURL, httpClient: client, limiter: limiter}
}

// Name returns the service name.
func (c *CatalogClient) Name() string {
	return "Catalog"
}

// doGet performs one throttled proxy call and decodes the JSON response.
func (c *CatalogClient) doGet(ctx context.Context, path string, query url.Values, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}
	}

	apiURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// details issues one /api/details sub-resource fetch.
func (c *CatalogClient) details(ctx context.Context, mediaType models.MediaType, tmdbID, sub, end string, result any) error {
	query := url.Values{}
	query.Set("type", string(mediaType))
	query.Set("id", tmdbID)
	query.Set("sub", sub)
	query.Set("end", end)
	return c.doGet(ctx, "/api/details", query, result)
}

// Details fetches the primary record for one title.
func (c *CatalogClient) Details(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.TitleDetail, error) {
	var detail models.TitleDetail
	if err := c.details(ctx, mediaType, tmdbID, "", "", &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Credits fetches the cast and crew lists.
func (c *CatalogClient) Credits(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.Credits, error) {
	var credits models.Credits
	if err := c.details(ctx, mediaType, tmdbID, "credits?language=en-US", "", &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

// Keywords fetches the keyword tags.
func (c *CatalogClient) Keywords(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.KeywordList, error) {
	var keywords models.KeywordList
	if err := c.details(ctx, mediaType, tmdbID, "keywords", "", &keywords); err != nil {
		return nil, err
	}
	return &keywords, nil
}

// WatchProviders fetches streaming/rental availability by country.
func (c *CatalogClient) WatchProviders(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.WatchProviders, error) {
	var providers models.WatchProviders
	if err := c.details(ctx, mediaType, tmdbID, "watch", "providers", &providers); err != nil {
		return nil, err
	}
	return &providers, nil
}

// Videos fetches trailers and clips.
func (c *CatalogClient) Videos(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.VideoList, error) {
	var videos models.VideoList
	if err := c.details(ctx, mediaType, tmdbID, "videos?language=en-US", "", &videos); err != nil {
		return nil, err
	}
	return &videos, nil
}

// Images fetches backdrops and posters.
func (c *CatalogClient) Images(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.ImageSet, error) {
	var images models.ImageSet
	if err := c.details(ctx, mediaType, tmdbID, "images", "", &images); err != nil {
		return nil, err
	}
	return &images, nil
}

// Trending fetches a listing row via GET /api/fetch.
func (c *CatalogClient) Trending(ctx context.Context, mediaType models.MediaType, endpoint string) ([]models.Title, error) {
	query := url.Values{}
	query.Set("type", string(mediaType))
	query.Set("endpoint", endpoint)

	var out struct {
		Results []models.SearchResult `json:"results"`
	}
	if err := c.doGet(ctx, "/api/fetch", query, &out); err != nil {
		return nil, err
	}

	titles := make([]models.Title, 0, len(out.Results))
	for _, result := range out.Results {
		titles = append(titles, titleFromResult(result, mediaType))
	}
	return titles, nil
}

// Search fetches one page of multi-search results via GET /api/search.
//
// The result parameter carries the provider sub-path exactly as the proxy
// expects it; filter travels separately and is empty for "All".
func (c *CatalogClient) Search(ctx context.Context, queryText string, page int, filter string) (*models.SearchPage, error) {
	if page < 1 {
		page = 1
	}
	if filter == "all" {
		filter = ""
	}

	query := url.Values{}
	query.Set("result", fmt.Sprintf("multi?query=%s&page=%s", url.QueryEscape(queryText), strconv.Itoa(page)))
	query.Set("filter", filter)

	var pageData models.SearchPage
	if err := c.doGet(ctx, "/api/search", query, &pageData); err != nil {
		return nil, err
	}
	if pageData.TotalPages < 1 {
		pageData.TotalPages = 1
	}
	return &pageData, nil
}

// titleFromResult converts one listing row into the minimal display record.
func titleFromResult(r models.SearchResult, mediaType models.MediaType) models.Title {
	title := models.Title{
		TmdbID:      strconv.FormatInt(r.ID, 10),
		MediaType:   mediaType,
		Title:       r.DisplayTitle(),
		PosterPath:  r.PosterPath,
		VoteAverage: r.VoteAverage,
		Overview:    r.Overview,
	}
	if mediaType == models.MediaTV {
		title.ReleaseDate = r.FirstAirDate
	} else {
		title.ReleaseDate = r.ReleaseDate
	}
	if title.ReleaseDate == "" {
		if r.ReleaseDate != "" {
			title.ReleaseDate = r.ReleaseDate
		} else {
			title.ReleaseDate = r.FirstAirDate
		}
	}
	return title
}

// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/cinevault/cinevault/internal/models"
)

// MockTracker is a configurable test double for [services.Tracker].
// Unset function fields return zero values.
type MockTracker struct {
	LoginFunc        func(ctx context.Context, email, password string) (*models.Session, error)
	RegisterFunc     func(ctx context.Context, name, email, password string) (*models.User, error)
	ProfileFunc      func(ctx context.Context) (*models.User, error)
	InteractionsFunc func(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string) (*models.InteractionState, error)
	ToggleFunc       func(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string, action models.Action) (bool, error)
	RatingFunc       func(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string) (models.Rating, error)
	RateFunc         func(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string, value models.Rating) error
	ListsFunc        func(ctx context.Context) (*models.Collections, error)
	RemoveFunc       func(ctx context.Context, collection models.CollectionType, tmdbID string) error
}

func (m *MockTracker) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &models.Session{}, nil
}

func (m *MockTracker) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return &models.User{}, nil
}

func (m *MockTracker) Profile(ctx context.Context) (*models.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx)
	}
	return &models.User{}, nil
}

func (m *MockTracker) Interactions(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string) (*models.InteractionState, error) {
	if m.InteractionsFunc != nil {
		return m.InteractionsFunc(ctx, userID, mediaType, tmdbID)
	}
	return &models.InteractionState{}, nil
}

func (m *MockTracker) Toggle(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string, action models.Action) (bool, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, userID, mediaType, tmdbID, action)
	}
	return false, nil
}

func (m *MockTracker) Rating(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string) (models.Rating, error) {
	if m.RatingFunc != nil {
		return m.RatingFunc(ctx, userID, mediaType, tmdbID)
	}
	return 0, nil
}

func (m *MockTracker) Rate(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string, value models.Rating) error {
	if m.RateFunc != nil {
		return m.RateFunc(ctx, userID, mediaType, tmdbID, value)
	}
	return nil
}

func (m *MockTracker) Lists(ctx context.Context) (*models.Collections, error) {
	if m.ListsFunc != nil {
		return m.ListsFunc(ctx)
	}
	return &models.Collections{}, nil
}

func (m *MockTracker) Remove(ctx context.Context, collection models.CollectionType, tmdbID string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, collection, tmdbID)
	}
	return nil
}

func (m *MockTracker) Name() string { return "mock" }

// MockCatalog is a configurable test double for [services.Catalog].
type MockCatalog struct {
	DetailsFunc        func(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.TitleDetail, error)
	CreditsFunc        func(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.Credits, error)
	KeywordsFunc       func(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.KeywordList, error)
	WatchProvidersFunc func(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.WatchProviders, error)
	VideosFunc         func(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.VideoList, error)
	ImagesFunc         func(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.ImageSet, error)
	TrendingFunc       func(ctx context.Context, mediaType models.MediaType, endpoint string) ([]models.Title, error)
	SearchFunc         func(ctx context.Context, query string, page int, filter string) (*models.SearchPage, error)
}

func (m *MockCatalog) Details(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.TitleDetail, error) {
	if m.DetailsFunc != nil {
		return m.DetailsFunc(ctx, mediaType, tmdbID)
	}
	return &models.TitleDetail{}, nil
}

func (m *MockCatalog) Credits(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.Credits, error) {
	if m.CreditsFunc != nil {
		return m.CreditsFunc(ctx, mediaType, tmdbID)
	}
	return &models.Credits{}, nil
}

func (m *MockCatalog) Keywords(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.KeywordList, error) {
	if m.KeywordsFunc != nil {
		return m.KeywordsFunc(ctx, mediaType, tmdbID)
	}
	return &models.KeywordList{}, nil
}

func (m *MockCatalog) WatchProviders(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.WatchProviders, error) {
	if m.WatchProvidersFunc != nil {
		return m.WatchProvidersFunc(ctx, mediaType, tmdbID)
	}
	return &models.WatchProviders{}, nil
}

func (m *MockCatalog) Videos(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.VideoList, error) {
	if m.VideosFunc != nil {
		return m.VideosFunc(ctx, mediaType, tmdbID)
	}
	return &models.VideoList{}, nil
}

func (m *MockCatalog) Images(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.ImageSet, error) {
	if m.ImagesFunc != nil {
		return m.ImagesFunc(ctx, mediaType, tmdbID)
	}
	return &models.ImageSet{}, nil
}

func (m *MockCatalog) Trending(ctx context.Context, mediaType models.MediaType, endpoint string) ([]models.Title, error) {
	if m.TrendingFunc != nil {
		return m.TrendingFunc(ctx, mediaType, endpoint)
	}
	return nil, nil
}

func (m *MockCatalog) Search(ctx context.Context, query string, page int, filter string) (*models.SearchPage, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, page, filter)
	}
	return &models.SearchPage{Page: 1, TotalPages: 1}, nil
}

func (m *MockCatalog) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// package services defines clients for the CineVault backend HTTP surface
//
// Tracker state (/user/*) and catalog metadata proxy (/api/*)
package services

import (
	"context"

	"github.com/cinevault/cinevault/internal/models"
)

// Tracker defines the authenticated operations on the CineVault backend:
// login, profile, per-title interaction state, ratings, and collections.
type Tracker interface {
	// Login authenticates with email and password and returns the new session.
	Login(ctx context.Context, email, password string) (*models.Session, error)

	// Register creates a new account. The caller logs in afterwards.
	Register(ctx context.Context, name, email, password string) (*models.User, error)

	// Profile fetches the authenticated user's account record.
	Profile(ctx context.Context) (*models.User, error)

	// Interactions reads the watched/liked/watchlisted booleans for one title.
	Interactions(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string) (*models.InteractionState, error)

	// Toggle flips one interaction on the server and returns the
	// server-reported value for that action.
	Toggle(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string, action models.Action) (bool, error)

	// Rating reads the user's rating for one title; 0 when unrated.
	Rating(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string) (models.Rating, error)

	// Rate submits a rating. A server-side rejection surfaces as a
	// [shared.ErrRejected]-wrapped error carrying the server message.
	Rate(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string, value models.Rating) error

	// Lists fetches the three collection id-lists.
	Lists(ctx context.Context) (*models.Collections, error)

	// Remove deletes one title from a collection.
	Remove(ctx context.Context, collection models.CollectionType, tmdbID string) error

	// Name returns the service name for logs.
	Name() string
}

// Catalog defines the read-only metadata proxy operations.
type Catalog interface {
	// Details fetches the primary record for one title.
	Details(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.TitleDetail, error)

	// Credits fetches the cast and crew lists.
	Credits(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.Credits, error)

	// Keywords fetches the keyword tags.
	Keywords(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.KeywordList, error)

	// WatchProviders fetches streaming/rental availability by country.
	WatchProviders(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.WatchProviders, error)

	// Videos fetches trailers and clips.
	Videos(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.VideoList, error)

	// Images fetches backdrops and posters.
	Images(ctx context.Context, mediaType models.MediaType, tmdbID string) (*models.ImageSet, error)

	// Trending fetches a listing row (popular, trending, ...) for one media type.
	Trending(ctx context.Context, mediaType models.MediaType, endpoint string) ([]models.Title, error)

	// Search fetches one page of multi-search results.
	Search(ctx context.Context, query string, page int, filter string) (*models.SearchPage, error)

	// Name returns the service name for logs.
	Name() string
}

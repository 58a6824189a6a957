// Package interact implements the per-title interaction state machines:
// the watched/liked/watchlisted toggles and the star-rating click cycle.
//
// Both controllers hold page-local state for exactly one
// (mediaType, tmdbID, userID) triple. The server stays authoritative: a
// toggle commits the value the server reports, never a local flip, and a
// rating submit rolls the optimistic value back when the server rejects it.
package interact

import (
	"context"

	"github.com/cinevault/cinevault/internal/models"
)

// Backend is the slice of the tracker service the controllers use.
type Backend interface {
	Interactions(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string) (*models.InteractionState, error)
	Toggle(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string, action models.Action) (bool, error)
	Rating(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string) (models.Rating, error)
	Rate(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string, value models.Rating) error
}

// CredentialSource reports the stored auth credential. Write actions check
// it locally and abort before any network call when it is empty.
type CredentialSource interface {
	Credential() string
}

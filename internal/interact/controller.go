package interact

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
)

// Controller mediates the three independent interaction toggles for one title.
//
// Each action carries its own loading flag; the three actions never block
// each other. Re-invoking an action while its previous call is still in
// flight is a no-op rather than a double submit.
type Controller struct {
	mu      sync.Mutex
	backend Backend
	creds   CredentialSource
	logger  *log.Logger

	userID    string
	mediaType models.MediaType
	tmdbID    string

	state   models.InteractionState
	fetched bool
	loading map[models.Action]bool
}

// NewController creates a toggle controller for one title.
//
// A non-nil initial snapshot is used as-is and Fetch becomes a no-op;
// otherwise the caller fetches current state once on mount.
func NewController(backend Backend, creds CredentialSource, logger *log.Logger, userID string, mediaType models.MediaType, tmdbID string, initial *models.InteractionState) *Controller {
	c := &Controller{
		backend:   backend,
		creds:     creds,
		logger:    logger,
		userID:    userID,
		mediaType: mediaType,
		tmdbID:    tmdbID,
		loading:   make(map[models.Action]bool, len(models.Actions)),
	}
	if initial != nil {
		c.state = *initial
		c.fetched = true
	}
	return c
}

// Fetch reads the current interaction state from the backend.
//
// A no-op when an initial snapshot was supplied. Fails silently into
// all-false on error: the miss is logged, never surfaced. Logged-out
// controllers (empty user id) issue no network call.
func (c *Controller) Fetch(ctx context.Context) {
	c.mu.Lock()
	if c.fetched || c.userID == "" {
		c.mu.Unlock()
		return
	}
	c.fetched = true
	c.mu.Unlock()

	state, err := c.backend.Interactions(ctx, c.userID, c.mediaType, c.tmdbID)
	if err != nil {
		c.logger.Error("failed to fetch interaction state", "mediaType", c.mediaType, "tmdbId", c.tmdbID, "err", err)
		return
	}

	c.mu.Lock()
	c.state = *state
	c.mu.Unlock()
}

// State returns a copy of the current booleans.
func (c *Controller) State() models.InteractionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Loading reports whether the given action has a request in flight.
func (c *Controller) Loading(action models.Action) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading[action]
}

// Toggle flips one action against the backend and commits the
// server-reported value.
//
// Returns the state after the call. The loading flag for the action is
// cleared on every path; a missing credential or a failed request leaves
// the prior booleans untouched.
func (c *Controller) Toggle(ctx context.Context, action models.Action) (models.InteractionState, error) {
	c.mu.Lock()
	if c.loading[action] {
		// previous call still in flight; ignore instead of double-submitting
		state := c.state
		c.mu.Unlock()
		return state, nil
	}
	c.loading[action] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading[action] = false
		c.mu.Unlock()
	}()

	if c.creds.Credential() == "" {
		c.logger.Error("no auth token stored, toggle skipped", "action", action)
		return c.State(), shared.ErrMissingToken
	}

	value, err := c.backend.Toggle(ctx, c.userID, c.mediaType, c.tmdbID, action)
	if err != nil {
		c.logger.Error("failed to toggle interaction", "action", action, "tmdbId", c.tmdbID, "err", err)
		return c.State(), err
	}

	c.mu.Lock()
	c.state.Set(action, value)
	state := c.state
	c.mu.Unlock()
	return state, nil
}

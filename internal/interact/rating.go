package interact

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
)

// successBanner is how long the "rating saved" flag stays visible.
const successBanner = 3000 * time.Millisecond

// clickEpsilon matches a click to the current full- or half-star value.
const clickEpsilon = 0.1

// NextValue computes the click-cycle transition for star position star
// (1-based) given the current rating.
//
// A full star at that position demotes to the half star, a half star
// clears the rating entirely, anything else promotes to the full star.
// The cycle is per-star: clicking star 3 at rating 4 sets 3, not 3.5.
func NextValue(current models.Rating, star int) models.Rating {
	full := models.Rating(star)
	half := full - 0.5

	switch {
	case math.Abs(float64(current-full)) < clickEpsilon:
		return half
	case math.Abs(float64(current-half)) < clickEpsilon:
		return 0
	default:
		return full
	}
}

// RatingController mediates the star rating for one title.
//
// A click applies the next cycle value locally right away, then the caller
// submits it; a rejected or failed submit rolls the display back to the
// prior value and surfaces the error. One submission is tracked at a time;
// clicks while submitting are ignored.
type RatingController struct {
	mu      sync.Mutex
	backend Backend
	creds   CredentialSource
	logger  *log.Logger

	userID    string
	mediaType models.MediaType
	tmdbID    string

	value      models.Rating
	prev       models.Rating
	hovered    int
	submitting bool
	errMsg     string
	successAt  time.Time

	now func() time.Time
}

// NewRatingController creates a rating controller for one title.
func NewRatingController(backend Backend, creds CredentialSource, logger *log.Logger, userID string, mediaType models.MediaType, tmdbID string) *RatingController {
	return &RatingController{
		backend:   backend,
		creds:     creds,
		logger:    logger,
		userID:    userID,
		mediaType: mediaType,
		tmdbID:    tmdbID,
		now:       time.Now,
	}
}

// Fetch reads the user's rating from the backend.
//
// Requires the title id, media type, and user id all present; stays at 0
// on absence or error (logged, not surfaced).
func (r *RatingController) Fetch(ctx context.Context) {
	r.mu.Lock()
	if r.tmdbID == "" || !r.mediaType.Valid() || r.userID == "" {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	value, err := r.backend.Rating(ctx, r.userID, r.mediaType, r.tmdbID)
	if err != nil {
		r.logger.Error("failed to fetch user rating", "mediaType", r.mediaType, "tmdbId", r.tmdbID, "err", err)
		return
	}

	r.mu.Lock()
	r.value = value
	r.mu.Unlock()
}

// Value returns the currently displayed rating.
func (r *RatingController) Value() models.Rating {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Submitting reports whether a submission is in flight.
func (r *RatingController) Submitting() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.submitting
}

// Error returns the inline error message, or "".
func (r *RatingController) Error() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errMsg
}

// SuccessVisible reports whether the transient save confirmation is still showing.
func (r *RatingController) SuccessVisible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.successAt.IsZero() && r.now().Sub(r.successAt) < successBanner
}

// Hover sets the presentation-only hover position (1-5).
func (r *RatingController) Hover(star int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hovered = star
}

// ClearHover resets the hover position; the submitted value is unaffected.
func (r *RatingController) ClearHover() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hovered = 0
}

// Hovered returns the hover position, 0 when none.
func (r *RatingController) Hovered() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hovered
}

// Click applies the click-cycle transition for one star position.
//
// The new value shows immediately (optimistic update) and the previous one
// is kept for rollback. Returns the value to submit and whether a Submit
// call should follow; clicks while a submission is in flight return false.
func (r *RatingController) Click(star int) (models.Rating, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.submitting {
		return r.value, false
	}

	next := NextValue(r.value, star)
	r.prev = r.value
	r.value = next
	r.submitting = true
	r.errMsg = ""
	r.successAt = time.Time{}
	return next, true
}

// Submit sends the value applied by the last Click to the backend.
//
// A missing credential surfaces "Authentication required." without any
// network call. Failure of any kind rolls the display back to the value
// before the click; success arms the transient confirmation flag.
func (r *RatingController) Submit(ctx context.Context) error {
	r.mu.Lock()
	value := r.value
	prev := r.prev
	r.mu.Unlock()

	err := r.submit(ctx, value)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitting = false

	if err != nil {
		r.value = prev
		r.errMsg = userMessage(err)
		return err
	}

	r.successAt = r.now()
	return nil
}

// Rate submits an explicit value, bypassing the click cycle. Used by the
// non-interactive `media rate` command.
func (r *RatingController) Rate(ctx context.Context, value models.Rating) error {
	if !value.Valid() {
		return shared.ErrInvalidRating
	}

	r.mu.Lock()
	if r.submitting {
		r.mu.Unlock()
		return nil
	}
	r.submitting = true
	r.errMsg = ""
	r.mu.Unlock()

	err := r.submit(ctx, value)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitting = false

	if err != nil {
		r.errMsg = userMessage(err)
		return err
	}

	r.value = value
	r.successAt = r.now()
	return nil
}

func (r *RatingController) submit(ctx context.Context, value models.Rating) error {
	if r.creds.Credential() == "" {
		return shared.ErrMissingToken
	}

	if err := r.backend.Rate(ctx, r.userID, r.mediaType, r.tmdbID, value); err != nil {
		r.logger.Error("failed to submit rating", "tmdbId", r.tmdbID, "rating", value, "err", err)
		return err
	}
	return nil
}

// userMessage maps an error to the inline message shown next to the stars.
func userMessage(err error) string {
	switch {
	case errors.Is(err, shared.ErrMissingToken):
		return "Authentication required."
	case errors.Is(err, shared.ErrRejected):
		return err.Error()
	default:
		return "Failed to save rating: " + err.Error()
	}
}

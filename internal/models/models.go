package models

import "math"

// MediaType distinguishes movies from TV shows in every tracker and catalog call.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// MediaTypeFromCategory maps a navigation content category to a MediaType.
// The detail route uses "Movies" for movies and "tv" for everything else.
func MediaTypeFromCategory(category string) MediaType {
	if category == "Movies" {
		return MediaMovie
	}
	return MediaTV
}

// Category returns the navigation content category label for this media type.
func (m MediaType) Category() string {
	if m == MediaMovie {
		return "Movies"
	}
	return "tv"
}

// Valid reports whether m is one of the two known media types.
func (m MediaType) Valid() bool {
	return m == MediaMovie || m == MediaTV
}

// User represents an account record returned by login and profile reads.
type User struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session holds the current user identity and login flag.
//
// User is non-nil iff IsLoggedIn is true; the pair is always replaced or
// cleared together.
type Session struct {
	User       *User
	Token      string
	IsLoggedIn bool
}

// Action identifies one of the three independent interaction toggles.
type Action string

const (
	ActionWatched     Action = "watched"
	ActionLiked       Action = "liked"
	ActionWatchlisted Action = "watchlisted"
)

// Actions lists all toggle actions in display order.
var Actions = []Action{ActionWatched, ActionLiked, ActionWatchlisted}

// Endpoint returns the path segment the backend expects for this action.
// The wire names differ from the state field names for liked/watchlisted.
func (a Action) Endpoint() string {
	switch a {
	case ActionLiked:
		return "like"
	case ActionWatchlisted:
		return "watchlist"
	default:
		return "watched"
	}
}

// Valid reports whether a names a known toggle action.
func (a Action) Valid() bool {
	return a == ActionWatched || a == ActionLiked || a == ActionWatchlisted
}

// InteractionState tracks the three independent booleans for one title.
type InteractionState struct {
	Watched     bool `json:"watched"`
	Liked       bool `json:"liked"`
	Watchlisted bool `json:"watchlisted"`
}

// Get returns the boolean for the given action.
func (s InteractionState) Get(a Action) bool {
	switch a {
	case ActionLiked:
		return s.Liked
	case ActionWatchlisted:
		return s.Watchlisted
	default:
		return s.Watched
	}
}

// Set assigns the boolean for the given action.
func (s *InteractionState) Set(a Action, v bool) {
	switch a {
	case ActionLiked:
		s.Liked = v
	case ActionWatchlisted:
		s.Watchlisted = v
	default:
		s.Watched = v
	}
}

// Rating is a star value with half-step granularity in [0, 5].
// Zero means "no rating".
type Rating float64

// Valid reports whether r is a multiple of 0.5 within [0, 5].
func (r Rating) Valid() bool {
	if r < 0 || r > 5 {
		return false
	}
	doubled := float64(r) * 2
	return math.Abs(doubled-math.Round(doubled)) < 1e-9
}

// CollectionType names one of the three profile collections.
type CollectionType string

const (
	CollectionWatched     CollectionType = "watched"
	CollectionLiked       CollectionType = "liked"
	CollectionWatchlisted CollectionType = "watchlisted"
)

// CollectionTypes lists the profile collections in tab order.
var CollectionTypes = []CollectionType{CollectionWatched, CollectionLiked, CollectionWatchlisted}

// Valid reports whether c names a known collection.
func (c CollectionType) Valid() bool {
	return c == CollectionWatched || c == CollectionLiked || c == CollectionWatchlisted
}

// CollectionEntry is one id-list element: a title reference without display metadata.
type CollectionEntry struct {
	MediaType MediaType `json:"mediaType"`
	TmdbID    string    `json:"tmdbId"`
}

// Collections holds the three id-lists fetched from /user/media/lists.
type Collections struct {
	Watched     []CollectionEntry `json:"watched"`
	Liked       []CollectionEntry `json:"liked"`
	Watchlisted []CollectionEntry `json:"watchlisted"`
}

// Get returns the id-list for the given collection type.
func (c *Collections) Get(t CollectionType) []CollectionEntry {
	switch t {
	case CollectionLiked:
		return c.Liked
	case CollectionWatchlisted:
		return c.Watchlisted
	default:
		return c.Watched
	}
}

// Title is the minimal display record for a catalog title: enough for a
// poster row or a collection card.
type Title struct {
	TmdbID      string
	MediaType   MediaType
	Title       string
	PosterPath  string
	ReleaseDate string
	VoteAverage float64
	Overview    string
}

// Year returns the four-digit year of the release date, or "" when unknown.
func (t Title) Year() string {
	if len(t.ReleaseDate) < 4 {
		return ""
	}
	return t.ReleaseDate[:4]
}

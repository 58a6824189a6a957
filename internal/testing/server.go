package testing

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/cinevault/cinevault/internal/models"
	"github.com/go-chi/chi/v5"
)

// StubBackend is an in-memory CineVault backend for end-to-end client
// tests. It serves the tracker and catalog-proxy routes against state
// set up by the test, and records the credential header it saw last.
type StubBackend struct {
	mu sync.Mutex

	Token    string
	Password string
	User     models.User

	Interactions map[string]*models.InteractionState
	Ratings      map[string]float64
	Lists        models.Collections
	Details      map[string]models.TitleDetail
	SearchPages  map[int]models.SearchPage

	// RejectRating, when set, makes /user/rate answer success=false
	// with this message.
	RejectRating string

	// LastAuthHeader holds the x-auth-token value of the most recent
	// authenticated request.
	LastAuthHeader string

	// LastSearchFilter holds the filter parameter of the most recent
	// /api/search request. Empty means "all categories".
	LastSearchFilter string
}

// NewStubBackend returns a stub with one known account and empty state.
func NewStubBackend() *StubBackend {
	return &StubBackend{
		Token:    "stub-token",
		Password: "hunter22",
		User: models.User{
			ID:    "user-1",
			Email: "test@example.com",
			Name:  "Test User",
		},
		Interactions: make(map[string]*models.InteractionState),
		Ratings:      make(map[string]float64),
		Details:      make(map[string]models.TitleDetail),
		SearchPages:  make(map[int]models.SearchPage),
	}
}

func titleKey(mediaType, tmdbID string) string {
	return mediaType + "/" + tmdbID
}

// Handler builds the route table matching the backend surface the
// clients consume.
func (s *StubBackend) Handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/user/login", s.handleLogin)
	r.Post("/user/register", s.handleRegister)
	r.Get("/user/profile", s.handleProfile)
	r.Get("/user/media", s.handleInteractions)
	r.Post("/user/media/{mediaType}/{tmdbId}/{action}", s.handleMedia)
	r.Get("/user/rating/{mediaType}/{tmdbId}", s.handleRating)
	r.Post("/user/rate", s.handleRate)
	r.Get("/user/media/lists", s.handleLists)
	r.Get("/api/details", s.handleDetails)
	r.Get("/api/fetch", s.handleFetch)
	r.Get("/api/search", s.handleSearch)

	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// authorized checks the credential header and records what it saw.
func (s *StubBackend) authorized(r *http.Request) bool {
	token := r.Header.Get("x-auth-token")
	s.mu.Lock()
	s.LastAuthHeader = token
	expected := s.Token
	s.mu.Unlock()
	return token == expected
}

func (s *StubBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if body.Email != s.User.Email || body.Password != s.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"token": s.Token, "user": s.User})
}

func (s *StubBackend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": models.User{ID: "user-new", Email: body.Email, Name: body.Name},
	})
}

func (s *StubBackend) handleProfile(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.User)
}

func (s *StubBackend) handleInteractions(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	key := titleKey(r.URL.Query().Get("mediaType"), r.URL.Query().Get("tmdbId"))
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.Interactions[key]
	if state == nil {
		state = &models.InteractionState{}
	}
	writeJSON(w, http.StatusOK, state)
}

// endpointActions maps the wire path segment back to the state field name.
var endpointActions = map[string]models.Action{
	"watched":   models.ActionWatched,
	"like":      models.ActionLiked,
	"watchlist": models.ActionWatchlisted,
}

// handleMedia dispatches the shared three-segment media route: toggles
// and collection removal differ only in the final path segment.
func (s *StubBackend) handleMedia(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "action") == "remove" {
		s.handleRemove(w, r)
		return
	}
	s.handleToggle(w, r)
}

func (s *StubBackend) handleToggle(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	action, ok := endpointActions[chi.URLParam(r, "action")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "unknown action"})
		return
	}

	key := titleKey(chi.URLParam(r, "mediaType"), chi.URLParam(r, "tmdbId"))
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.Interactions[key]
	if state == nil {
		state = &models.InteractionState{}
		s.Interactions[key] = state
	}
	state.Set(action, !state.Get(action))

	writeJSON(w, http.StatusOK, map[string]any{string(action): state.Get(action)})
}

func (s *StubBackend) handleRating(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	key := titleKey(chi.URLParam(r, "mediaType"), chi.URLParam(r, "tmdbId"))
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]float64{"userRating": s.Ratings[key]})
}

func (s *StubBackend) handleRate(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	var body struct {
		UserID    string  `json:"userId"`
		TmdbID    string  `json:"tmdbId"`
		MediaType string  `json:"mediaType"`
		Rating    float64 `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RejectRating != "" {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": s.RejectRating})
		return
	}

	s.Ratings[titleKey(body.MediaType, body.TmdbID)] = body.Rating
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *StubBackend) handleLists(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.Lists)
}

func (s *StubBackend) handleRemove(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
		return
	}

	collection := models.CollectionType(chi.URLParam(r, "mediaType"))
	tmdbID := chi.URLParam(r, "tmdbId")

	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.Lists.Get(collection)
	for i, entry := range entries {
		if entry.TmdbID == tmdbID {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	switch collection {
	case models.CollectionLiked:
		s.Lists.Liked = entries
	case models.CollectionWatchlisted:
		s.Lists.Watchlisted = entries
	default:
		s.Lists.Watched = entries
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *StubBackend) handleDetails(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	key := titleKey(query.Get("type"), query.Get("id"))

	s.mu.Lock()
	detail, ok := s.Details[key]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}

	sub := query.Get("sub")
	switch {
	case sub == "":
		writeJSON(w, http.StatusOK, detail)
	case strings.HasPrefix(sub, "credits"):
		writeJSON(w, http.StatusOK, models.Credits{})
	case sub == "keywords":
		writeJSON(w, http.StatusOK, map[string]any{"keywords": []models.Keyword{}})
	case sub == "watch":
		writeJSON(w, http.StatusOK, models.WatchProviders{})
	case strings.HasPrefix(sub, "videos"):
		writeJSON(w, http.StatusOK, map[string]any{"results": []models.Video{}})
	case sub == "images":
		writeJSON(w, http.StatusOK, models.ImageSet{})
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "unknown sub-resource"})
	}
}

func (s *StubBackend) handleFetch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"results": []models.SearchResult{}})
}

func (s *StubBackend) handleSearch(w http.ResponseWriter, r *http.Request) {
	// The provider sub-path travels inside the result parameter; the page
	// number rides in its inner query string.
	result := r.URL.Query().Get("result")
	page := 1
	if i := strings.Index(result, "?"); i >= 0 {
		if inner, err := url.ParseQuery(result[i+1:]); err == nil {
			if p, err := strconv.Atoi(inner.Get("page")); err == nil && p > 0 {
				page = p
			}
		}
	}

	s.mu.Lock()
	s.LastSearchFilter = r.URL.Query().Get("filter")
	pageData, ok := s.SearchPages[page]
	s.mu.Unlock()
	if !ok {
		pageData = models.SearchPage{Page: page, TotalPages: 1}
	}
	writeJSON(w, http.StatusOK, pageData)
}

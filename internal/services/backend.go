// Tracker API implementation of [Tracker]
//
// Wire shapes follow the CineVault backend: bearer-style token in the
// x-auth-token header on every authenticated request, cookies always carried.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
	"golang.org/x/oauth2"
)

const (
	defaultBackendURL = "http://localhost:8000"

	// AuthHeader carries the stored credential on authenticated requests.
	AuthHeader = "x-auth-token"

	requestIDHeader = "X-Request-ID"
)

// authTransport injects the stored credential and a request id into every
// outgoing request. An empty credential leaves the request untouched so
// unauthenticated endpoints keep working (cookies still apply).
type authTransport struct {
	base   http.RoundTripper
	tokens oauth2.TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	clone := req.Clone(req.Context())
	clone.Header.Set(requestIDHeader, shared.GenerateID())

	if t.tokens != nil {
		if token, err := t.tokens.Token(); err == nil && token.AccessToken != "" {
			clone.Header.Set(AuthHeader, token.AccessToken)
		}
	}

	return base.RoundTrip(clone)
}

// TrackerClient implements [Tracker] against one backend origin.
type TrackerClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTrackerClient creates a tracker client for the given origin.
//
// The client always carries a cookie jar (the withCredentials analog) and
// reads the credential from tokens on every request, so a login performed
// mid-process is picked up without rebuilding the client.
func NewTrackerClient(baseURL string, tokens oauth2.TokenSource) *TrackerClient {
	if baseURL == "" {
		baseURL = defaultBackendURL
	}

	jar, _ := cookiejar.New(nil)
	client := &http.Client{
		Jar:       jar,
		Transport: &authTransport{tokens: tokens},
	}

	return &TrackerClient{baseURL: baseURL, httpClient: client}
}

// Name returns the service name.
func (c *TrackerClient) Name() string {
	return "CineVault"
}

// HTTPClient exposes the configured client so the raw API service shares
// the same jar and credential transport.
func (c *TrackerClient) HTTPClient() *http.Client {
	return c.httpClient
}

// doRequest performs one backend call and decodes the JSON response into result.
func (c *TrackerClient) doRequest(ctx context.Context, method, endpoint string, query url.Values, body, result any) error {
	apiURL := c.baseURL + endpoint
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Login authenticates with email and password via POST /user/login.
func (c *TrackerClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}

	if err := c.doRequest(ctx, http.MethodPost, "/user/login", nil, payload, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}
	if out.Token == "" {
		return nil, fmt.Errorf("%w: no token in response", shared.ErrAuthFailed)
	}

	return &models.Session{User: &out.User, Token: out.Token, IsLoggedIn: true}, nil
}

// Register creates a new account via POST /user/register.
func (c *TrackerClient) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	payload := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{name, email, password}

	var out struct {
		User models.User `json:"user"`
	}

	if err := c.doRequest(ctx, http.MethodPost, "/user/register", nil, payload, &out); err != nil {
		return nil, err
	}

	return &out.User, nil
}

// Profile fetches the authenticated user via GET /user/profile.
func (c *TrackerClient) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doRequest(ctx, http.MethodGet, "/user/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Interactions reads interaction state via GET /user/media.
func (c *TrackerClient) Interactions(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string) (*models.InteractionState, error) {
	query := url.Values{}
	query.Set("userId", userID)
	query.Set("mediaType", string(mediaType))
	query.Set("tmdbId", tmdbID)

	var state models.InteractionState
	if err := c.doRequest(ctx, http.MethodGet, "/user/media", query, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Toggle flips one interaction via POST /user/media/{mediaType}/{tmdbId}/{action}.
//
// The returned boolean is the server-reported value for that action, which
// is authoritative: the caller commits it as-is rather than flipping locally.
func (c *TrackerClient) Toggle(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string, action models.Action) (bool, error) {
	endpoint := fmt.Sprintf("/user/media/%s/%s/%s", mediaType, url.PathEscape(tmdbID), action.Endpoint())

	payload := struct {
		UserID string `json:"userId"`
	}{userID}

	var out map[string]any
	if err := c.doRequest(ctx, http.MethodPost, endpoint, nil, payload, &out); err != nil {
		return false, err
	}

	value, ok := out[string(action)].(bool)
	if !ok {
		return false, fmt.Errorf("%w: no %q field in toggle response", shared.ErrAPIRequest, action)
	}
	return value, nil
}

// Rating reads the user's rating via GET /user/rating/{mediaType}/{tmdbId}.
func (c *TrackerClient) Rating(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string) (models.Rating, error) {
	endpoint := fmt.Sprintf("/user/rating/%s/%s", mediaType, url.PathEscape(tmdbID))

	query := url.Values{}
	query.Set("userId", userID)

	var out struct {
		UserRating float64 `json:"userRating"`
	}
	if err := c.doRequest(ctx, http.MethodGet, endpoint, query, nil, &out); err != nil {
		return 0, err
	}
	return models.Rating(out.UserRating), nil
}

// ratingPayload is the wire contract for POST /user/rate: identifiers travel
// as text, the rating as a number.
type ratingPayload struct {
	UserID    string  `json:"userId"`
	TmdbID    string  `json:"tmdbId"`
	MediaType string  `json:"mediaType"`
	Rating    float64 `json:"rating"`
}

// Rate submits a rating via POST /user/rate.
//
// A 2xx envelope with success=false is a business-rule rejection and comes
// back wrapped in [shared.ErrRejected] with the server's message.
func (c *TrackerClient) Rate(ctx context.Context, userID string, mediaType models.MediaType, tmdbID string, value models.Rating) error {
	if !value.Valid() {
		return shared.ErrInvalidRating
	}

	payload := ratingPayload{
		UserID:    userID,
		TmdbID:    tmdbID,
		MediaType: string(mediaType),
		Rating:    float64(value),
	}

	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/user/rate", nil, payload, &out); err != nil {
		return err
	}

	if !out.Success {
		if out.Message == "" {
			out.Message = "failed to save rating"
		}
		return fmt.Errorf("%w: %s", shared.ErrRejected, out.Message)
	}
	return nil
}

// Lists fetches the three collection id-lists via GET /user/media/lists.
func (c *TrackerClient) Lists(ctx context.Context) (*models.Collections, error) {
	var lists models.Collections
	if err := c.doRequest(ctx, http.MethodGet, "/user/media/lists", nil, nil, &lists); err != nil {
		return nil, err
	}
	return &lists, nil
}

// Remove deletes a title from a collection via POST /user/media/{collectionType}/{id}/remove.
func (c *TrackerClient) Remove(ctx context.Context, collection models.CollectionType, tmdbID string) error {
	endpoint := fmt.Sprintf("/user/media/%s/%s/remove", collection, url.PathEscape(tmdbID))
	return c.doRequest(ctx, http.MethodPost, endpoint, nil, nil, nil)
}

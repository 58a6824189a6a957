// Raw API service for direct HTTP access to the backend
//
// Backs the `cinevault api` debug commands; no typed decoding.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RawAPIService performs raw requests against the backend for debugging.
type RawAPIService struct {
	baseURL    string
	httpClient *http.Client
}

// NewRawAPIService creates a raw API service.
//
// Pass the tracker's HTTP client to reuse its cookie jar and credential
// transport; nil falls back to [http.DefaultClient].
func NewRawAPIService(baseURL string, client *http.Client) *RawAPIService {
	if baseURL == "" {
		baseURL = defaultBackendURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &RawAPIService{baseURL: baseURL, httpClient: client}
}

// RawResponse is an undecoded API response with status and body.
type RawResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

func (a *RawAPIService) do(ctx context.Context, method, path string, data []byte) (*RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	rawResp := &RawResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	var jsonData any
	if err := json.Unmarshal(body, &jsonData); err == nil {
		rawResp.IsJSON = true
		rawResp.JSONData = jsonData
	}

	return rawResp, nil
}

// Get performs a GET request to the specified path and returns the raw response.
func (a *RawAPIService) Get(ctx context.Context, path string) (*RawResponse, error) {
	return a.do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with the given JSON body and returns the raw response.
func (a *RawAPIService) Post(ctx context.Context, path string, data []byte) (*RawResponse, error) {
	return a.do(ctx, http.MethodPost, path, data)
}

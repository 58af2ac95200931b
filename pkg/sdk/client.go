package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// SearchRequest is the POST /search request body.
type SearchRequest struct {
	Prompt    string `json:"prompt"`
	K         int    `json:"k,omitempty"`
	Highlight bool   `json:"highlight,omitempty"`
}

// Segment is one highlighting segment of an abstract.
type Segment struct {
	Text    string `json:"text"`
	Keyword bool   `json:"keyword"`
}

// Result is one ranked guide.
type Result struct {
	URL       string    `json:"url"`
	Abstract  string    `json:"abstract"`
	Score     float64   `json:"score"`
	GuideType string    `json:"guide_type"`
	Segments  []Segment `json:"segments,omitempty"`
}

// SearchResponse is the POST /search response body.
type SearchResponse struct {
	Results []Result `json:"results"`
}

// APIError is an error response from the refsearch API.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("refsearch: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Option configures the Client.
type Option func(*Client)

// WithAPIKey sets the Bearer token sent with each request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// Client is an HTTP client for the refsearch API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search runs a semantic guide search.
func (c *Client) Search(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("refsearch: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return SearchResponse{}, fmt.Errorf("refsearch: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("refsearch: do request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: httpResp.StatusCode}
		if err := json.NewDecoder(httpResp.Body).Decode(apiErr); err != nil {
			apiErr.Code = "unknown"
			apiErr.Message = httpResp.Status
		}
		return SearchResponse{}, apiErr
	}

	var resp SearchResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return SearchResponse{}, fmt.Errorf("refsearch: decode response: %w", err)
	}
	return resp, nil
}

// Health reports the server health status. It returns the status string
// ("ok" or "degraded") and an error only on transport or decode failure.
func (c *Client) Health(ctx context.Context) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return "", fmt.Errorf("refsearch: build request: %w", err)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("refsearch: do request: %w", err)
	}
	defer httpResp.Body.Close()

	var resp struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("refsearch: decode response: %w", err)
	}
	return resp.Status, nil
}

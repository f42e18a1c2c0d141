// Package assist provides the public Go SDK for the agriculture assistant API.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client is the public SDK client for the assistant service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientConfig holds client configuration.
type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient creates a new assistant client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8002"
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

// QueryRequest represents an assistant query.
type QueryRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
	UserType string `json:"user_type,omitempty"`
	CropType string `json:"crop_type,omitempty"`
	LandSize string `json:"land_size,omitempty"`
	SoilType string `json:"soil_type,omitempty"`
}

// QueryResponse represents an assistant answer.
type QueryResponse struct {
	ID         string   `json:"id"`
	Answer     string   `json:"answer"`
	Sources    []Source `json:"sources,omitempty"`
	Confidence float64  `json:"confidence"`
	LatencyMs  int64    `json:"processing_time_ms"`
	Language   string   `json:"language"`
	Mode       string   `json:"mode"`
	Model      string   `json:"model"`
	Cached     bool     `json:"cached,omitempty"`
}

// Source identifies a knowledge-base entry backing an answer.
type Source struct {
	Category   string  `json:"category"`
	Item       string  `json:"item"`
	Similarity float64 `json:"similarity"`
}

// EntryKey identifies a knowledge-base entry.
type EntryKey struct {
	Category string `json:"category"`
	Item     string `json:"item"`
}

// Entry is a knowledge-base entry with its translations.
type Entry struct {
	Category     string            `json:"category"`
	Item         string            `json:"item"`
	Translations map[string]string `json:"translations"`
}

// CategoriesResponse summarizes the knowledge base.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Entries    int      `json:"entries"`
}

// Query asks the assistant a question.
func (c *Client) Query(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	var resp QueryResponse
	if err := c.post(ctx, "/api/v1/query", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Categories lists knowledge-base categories and the total entry count.
func (c *Client) Categories(ctx context.Context) (*CategoriesResponse, error) {
	var resp CategoriesResponse
	if err := c.get(ctx, "/api/v1/kb/categories", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Entries lists knowledge-base entry keys, optionally filtered by category.
func (c *Client) Entries(ctx context.Context, category string) ([]EntryKey, error) {
	path := "/api/v1/kb/entries"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var resp struct {
		Entries []EntryKey `json:"entries"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// Entry fetches a single knowledge-base entry with all translations.
func (c *Client) Entry(ctx context.Context, category, item string) (*Entry, error) {
	var resp Entry
	path := "/api/v1/kb/entries/" + url.PathEscape(category) + "/" + url.PathEscape(item)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s (status %d)", req.URL.Path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s: unexpected status %d", req.URL.Path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP operations for remote bundle access.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - JSON manifest fetching
//   - Asset downloads into memory
//
// Example usage:
//
//	client := NewClient()
//
//	// Fetch a bundle manifest
//	var m Manifest
//	err := client.GetJSON(ctx, "https://cdn.example.com/level-1/manifest.json", &m)
//
//	// Download one asset
//	data, err := client.Get(ctx, "https://cdn.example.com/level-1/sprites/slime.png")
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client for bundle access.
//
// The client is configured with:
//   - 60 second timeout
//   - "assetbatch" User-Agent header
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		userAgent: "assetbatch",
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetJSON performs a GET request and decodes the response body into v.
//
// Use this for small JSON documents like bundle manifests.
//
// Example:
//
//	var m Manifest
//	err := client.GetJSON(ctx, manifestURL, &m)
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

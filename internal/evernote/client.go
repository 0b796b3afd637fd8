// Package evernote is a thin HTTP client for the Evernote REST API.
package evernote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SqREL/evernote-mcp/internal/common"
)

// maxResponseSize caps response bodies to prevent OOM from unexpectedly large responses.
const maxResponseSize = 50 << 20 // 50MB

// Client performs authenticated requests against the Evernote REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a client for the given base URL and API key.
// The key is captured once here; an empty key is allowed at construction and
// rejected by the dispatcher on every call.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *common.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// APIKey returns the configured API key.
func (c *Client) APIKey() string {
	return c.apiKey
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request to the given path.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body to the given path.
func (c *Client) Post(ctx context.Context, path string, data interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, data)
}

// Put performs a PUT request with a JSON body to the given path.
func (c *Client) Put(ctx context.Context, path string, data interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, data)
}

// do performs one HTTP request with bearer auth and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, data interface{}) ([]byte, error) {
	c.logger.Debug().Str("method", method).Str("path", path).Msg("evernote request")

	var bodyReader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Dur("duration", duration).Msg("evernote request failed")
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Dur("duration", duration).Msg("evernote response")

	if resp.StatusCode >= 400 {
		return nil, parseErrorResponse(resp.StatusCode, body)
	}

	return body, nil
}

// parseErrorResponse extracts a meaningful error message from an HTTP error response.
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return fmt.Errorf("%s", errResp.Error)
	}
	return fmt.Errorf("server returned %d: %s", statusCode, string(body))
}

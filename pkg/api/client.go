// Package api is the remote adapter for the vendor API. It owns the
// HTTP client, the response envelope contract, and one resource
// descriptor per resource kind (cache key construction + fetch).
//
// All reads are idempotent GETs; the only write is the wallet refill
// POST, which is never cached.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/waybill/pkg/core"
)

// TokenSource supplies the bearer token for outgoing requests. It is
// read per request, so a session reload takes effect on the next call.
type TokenSource func() string

// Client talks to the vendor API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (tests inject an
// httptest client; callers may bring transports with custom TLS).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTokenSource sets the bearer token provider.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.token = ts
	}
}

// WithLogger sets the logger for request traces.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client rooted at baseURL (e.g.
// "https://api.example.com"). The default http.Client has no timeout:
// failures surface only via rejection, and abandoning a navigation
// must not kill a fetch other callers may have joined.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues a GET and decodes the enveloped response into out.
func (c *Client) get(ctx context.Context, path string, out responder) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post issues a POST with a JSON body and decodes the response.
func (c *Client) post(ctx context.Context, path string, body any, out responder) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out responder) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &core.FetchError{Message: err.Error()}
	}
	defer resp.Body.Close()

	c.logger.Debug("vendor api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// No envelope at all (proxy error page, truncated body, ...).
		return &core.FetchError{Message: fmt.Sprintf("unexpected response (%s)", resp.Status)}
	}

	if ok, message := out.status(); !ok {
		if message == "" {
			message = fmt.Sprintf("request failed (%s)", resp.Status)
		}
		return &core.FetchError{Message: message}
	}

	return nil
}

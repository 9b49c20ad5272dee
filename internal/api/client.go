// Package api implements the remote store gateway: a thin HTTP client
// over the hosted CRUD service that backs the application. It attaches
// the persisted bearer token to every request and forces a logout when
// the service reports the token invalid. Nothing here retries or backs
// off; a failed call surfaces immediately to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/forkful-app/forkful/internal/domain"
	"github.com/forkful-app/forkful/internal/logger"
)

// Compile-time interface check.
var _ domain.Gateway = (*Client)(nil)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithUnauthorizedHook sets the callback invoked when the service
// rejects the bearer token. The session layer uses it to redirect the
// user back to the login page.
func WithUnauthorizedHook(fn func()) ClientOption {
	return func(c *Client) { c.onUnauthorized = fn }
}

// Client talks to the remote CRUD service. Safe for concurrent use.
type Client struct {
	baseURL        string
	creds          domain.CredentialStore
	onUnauthorized func()
	http           *http.Client
	log            *logger.Logger
}

// NewClient creates a gateway over the service at baseURL (without a
// trailing slash). The credential store supplies the bearer token and
// is cleared when the service rejects it.
func NewClient(baseURL string, creds domain.CredentialStore, log *logger.Logger, opts ...ClientOption) *Client {
	// No deadline by default; the transport's behavior governs. Use
	// WithTimeout to bound calls.
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http:    &http.Client{},
		log:     log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// do performs a single JSON round trip. A nil body sends no payload; a
// nil out discards the response body. Authorization failures clear the
// persisted session and fire the unauthorized hook before returning.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, err := c.creds.LoadToken(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		c.log.Warn("loading token: %v", err)
	}

	c.log.Debug("%s %s", method, path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn("token rejected (%s %s), clearing session", method, path)
		if err := c.creds.Clear(); err != nil {
			c.log.Error("clearing session: %v", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("api: unmarshal response: %w", err)
		}
	}
	return nil
}

// StatusError is a non-2xx response from the remote service.
type StatusError struct {
	Code int
	Body string
}

// Error returns the status code and a truncated response body.
func (e *StatusError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Code, truncate(e.Body, 120))
}

// Unwrap maps the well-known status codes onto the domain sentinels so
// callers can use errors.Is.
func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// query builds "?search=<term>" for a non-empty term. The service
// treats search as a substring filter on recipe titles; omitting the
// parameter requests the unfiltered set.
func query(search string) string {
	search = strings.TrimSpace(search)
	if search == "" {
		return ""
	}
	return "?search=" + url.QueryEscape(search)
}

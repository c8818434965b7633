// Package backend is the HTTP client for the remote coaching API. All domain
// data lives behind it; this package only shapes requests and responses.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"coachdesk/internal/adapters/metrics"
)

// authMode selects which credential headers a request carries.
type authMode int

const (
	authNone authMode = iota
	// authAdmin sends the console's X-Admin-Token / X-Admin-User-Id.
	authAdmin
	// authSession forwards an end user's backend session token as
	// X-Session-Token.
	authSession
)

// Client calls the coaching backend API.
type Client struct {
	baseURL     string
	adminToken  string
	adminUserID string
	http        *http.Client
}

// New creates a backend client for the given base URL. adminToken and
// adminUserID may be empty for the dashboard, which only makes session calls.
func New(baseURL, adminToken, adminUserID string) *Client {
	return &Client{
		baseURL:     baseURL,
		adminToken:  adminToken,
		adminUserID: adminUserID,
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

// doJSON performs one backend request. body and out may be nil. token is
// only used with authSession. operation labels the call for metrics.
func (c *Client) doJSON(ctx context.Context, operation, method, path string, mode authMode, token string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", operation, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	switch mode {
	case authAdmin:
		req.Header.Set("X-Admin-Token", c.adminToken)
		req.Header.Set("X-Admin-User-Id", c.adminUserID)
	case authSession:
		req.Header.Set("X-Session-Token", token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveBackendCall(operation, "transport_error", elapsed)
		slog.Error("backend_call_failed", "operation", operation, "error", err.Error())
		return fmt.Errorf("backend %s: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		metrics.ObserveBackendCall(operation, fmt.Sprintf("http_%d", resp.StatusCode), elapsed)
		return &APIError{Status: resp.StatusCode, Message: ExtractErrorMessage(raw)}
	}
	metrics.ObserveBackendCall(operation, "ok", elapsed)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

package backend

import (
	"context"
	"net/http"
)

// TrackPageView reports a dashboard page view to the backend. Best effort:
// telemetry must never slow down or break a page, so failures are swallowed.
func (c *Client) TrackPageView(ctx context.Context, token, page string) {
	body := map[string]string{"page": page}
	_ = c.doJSON(ctx, "telemetry_pageview", http.MethodPost, "/api/v1/telemetry/page-views", authSession, token, body, nil)
}

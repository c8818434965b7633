package backend

import (
	"context"
	"net/http"
	"net/url"

	"coachdesk/internal/domain/kr"
	"coachdesk/internal/domain/library"
	"coachdesk/internal/domain/touchpoint"
	"coachdesk/internal/domain/user"
)

// Session-scoped calls used by the coaching dashboard. Every method forwards
// the member's backend session token; the dashboard holds no admin
// credentials.

// Me fetches the logged-in member's own record.
func (c *Client) Me(ctx context.Context, token string) (user.User, error) {
	var u user.User
	err := c.doJSON(ctx, "me_get", http.MethodGet, "/api/v1/me", authSession, token, nil, &u)
	return u, err
}

// ListMyKRs fetches the member's Key Results.
func (c *Client) ListMyKRs(ctx context.Context, token string) ([]kr.KeyResult, error) {
	var krs []kr.KeyResult
	err := c.doJSON(ctx, "me_krs", http.MethodGet, "/api/v1/me/krs", authSession, token, nil, &krs)
	return krs, err
}

// GetMyKR fetches one of the member's Key Results by ID.
func (c *Client) GetMyKR(ctx context.Context, token, id string) (kr.KeyResult, error) {
	var k kr.KeyResult
	path := "/api/v1/me/krs/" + url.PathEscape(id)
	err := c.doJSON(ctx, "me_kr_get", http.MethodGet, path, authSession, token, nil, &k)
	return k, err
}

// SubmitCheckIn records a progress update against one of the member's KRs.
// PRE: checkIn has been validated
// POST: Backend has applied the check-in and recomputed KR status
func (c *Client) SubmitCheckIn(ctx context.Context, token string, checkIn kr.CheckIn) error {
	path := "/api/v1/me/krs/" + url.PathEscape(checkIn.KRID) + "/check-ins"
	body := map[string]any{"value": checkIn.Value, "note": checkIn.Note}
	return c.doJSON(ctx, "me_checkin", http.MethodPost, path, authSession, token, body, nil)
}

// ListMyTouchpoints fetches the member's touchpoint schedule.
func (c *Client) ListMyTouchpoints(ctx context.Context, token string) ([]touchpoint.Touchpoint, error) {
	var tps []touchpoint.Touchpoint
	err := c.doJSON(ctx, "me_touchpoints", http.MethodGet, "/api/v1/me/touchpoints", authSession, token, nil, &tps)
	return tps, err
}

// ListPublishedLibrary fetches the library items visible to members.
func (c *Client) ListPublishedLibrary(ctx context.Context, token string) ([]library.Content, error) {
	var items []library.Content
	err := c.doJSON(ctx, "me_library", http.MethodGet, "/api/v1/me/library", authSession, token, nil, &items)
	return items, err
}

// GetPublishedLibraryContent fetches one published library item by slug.
func (c *Client) GetPublishedLibraryContent(ctx context.Context, token, slug string) (library.Content, error) {
	var item library.Content
	path := "/api/v1/me/library/" + url.PathEscape(slug)
	err := c.doJSON(ctx, "me_library_get", http.MethodGet, path, authSession, token, nil, &item)
	return item, err
}

// SettingsInput carries the profile fields a member may change.
type SettingsInput struct {
	Name           string `json:"name"`
	Timezone       string `json:"timezone"`
	ReminderOptOut bool   `json:"reminder_opt_out"`
}

// UpdateMySettings updates the member's profile settings.
func (c *Client) UpdateMySettings(ctx context.Context, token string, input SettingsInput) error {
	return c.doJSON(ctx, "me_settings", http.MethodPut, "/api/v1/me/settings", authSession, token, input, nil)
}

package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"coachdesk/internal/domain/kr"
	"coachdesk/internal/domain/touchpoint"
	"coachdesk/internal/domain/user"
)

// ListUsersQuery carries list parameters forwarded to the backend.
type ListUsersQuery struct {
	Search  string
	Status  string
	Sort    string
	Dir     string
	Page    int
	PerPage int
}

// UserPage is one page of the backend's user listing.
type UserPage struct {
	Users []user.User `json:"users"`
	Total int         `json:"total"`
}

// ListUsers fetches a page of users for the admin console.
// PRE: admin credentials are configured
// POST: Returns the page the backend computed; no client-side filtering
func (c *Client) ListUsers(ctx context.Context, q ListUsersQuery) (UserPage, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("q", q.Search)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
		params.Set("dir", q.Dir)
	}
	if q.Page > 0 {
		params.Set("page", fmt.Sprintf("%d", q.Page))
	}
	if q.PerPage > 0 {
		params.Set("per_page", fmt.Sprintf("%d", q.PerPage))
	}
	path := "/api/v1/users"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var page UserPage
	err := c.doJSON(ctx, "users_list", http.MethodGet, path, authAdmin, "", nil, &page)
	return page, err
}

// GetUser fetches one user by ID.
func (c *Client) GetUser(ctx context.Context, id string) (user.User, error) {
	var u user.User
	err := c.doJSON(ctx, "users_get", http.MethodGet, "/api/v1/users/"+url.PathEscape(id), authAdmin, "", nil, &u)
	return u, err
}

// UpdateUserStatus changes a user's coaching status.
// PRE: status is one of user.ValidStatuses
// POST: Backend has applied the change; note is recorded backend-side
func (c *Client) UpdateUserStatus(ctx context.Context, id, status, note string) error {
	body := map[string]string{"status": status, "note": note}
	path := "/api/v1/users/" + url.PathEscape(id) + "/status"
	return c.doJSON(ctx, "users_status", http.MethodPost, path, authAdmin, "", body, nil)
}

// ListUserKRs fetches a user's Key Results for the admin detail page.
func (c *Client) ListUserKRs(ctx context.Context, id string) ([]kr.KeyResult, error) {
	var krs []kr.KeyResult
	path := "/api/v1/users/" + url.PathEscape(id) + "/krs"
	err := c.doJSON(ctx, "users_krs", http.MethodGet, path, authAdmin, "", nil, &krs)
	return krs, err
}

// ListUserTouchpoints fetches a user's touchpoint schedule for the admin
// detail page.
func (c *Client) ListUserTouchpoints(ctx context.Context, id string) ([]touchpoint.Touchpoint, error) {
	var tps []touchpoint.Touchpoint
	path := "/api/v1/users/" + url.PathEscape(id) + "/touchpoints"
	err := c.doJSON(ctx, "users_touchpoints", http.MethodGet, path, authAdmin, "", nil, &tps)
	return tps, err
}

package backend

import (
	"context"
	"net/http"
)

// VerifyResult is the backend's answer to a successful OTP verification.
type VerifyResult struct {
	SessionToken string `json:"session_token"`
	UserID       string `json:"user_id"`
}

// StartLogin asks the backend to send an OTP to the given phone number over
// WhatsApp.
// PRE: phone is non-empty
// POST: Backend has queued the code, or an error explains why not
func (c *Client) StartLogin(ctx context.Context, phone string) error {
	body := map[string]string{"phone": phone}
	return c.doJSON(ctx, "auth_start", http.MethodPost, "/api/v1/auth/login/start", authNone, "", body, nil)
}

// VerifyLogin exchanges a phone + OTP code for a backend session token.
// PRE: StartLogin was called for this phone
// POST: Returns a session token the dashboard stores server-side
func (c *Client) VerifyLogin(ctx context.Context, phone, code string) (VerifyResult, error) {
	body := map[string]string{"phone": phone, "code": code}
	var result VerifyResult
	err := c.doJSON(ctx, "auth_verify", http.MethodPost, "/api/v1/auth/login/verify", authNone, "", body, &result)
	return result, err
}

// Logout invalidates a backend session token. Best effort: a stale token is
// already useless, so callers may ignore the error.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.doJSON(ctx, "auth_logout", http.MethodPost, "/api/v1/auth/logout", authSession, token, nil, nil)
}

package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"coachdesk/internal/adapters/backend"
)

// BackendAuth defines the backend operations needed for OTP login.
type BackendAuth interface {
	StartLogin(ctx context.Context, phone string) error
	VerifyLogin(ctx context.Context, phone, code string) (backend.VerifyResult, error)
	Logout(ctx context.Context, token string) error
}

// StartOTPLoginInput carries input for the start step.
type StartOTPLoginInput struct {
	Phone string
}

// StartOTPLoginDeps holds dependencies for StartOTPLogin.
type StartOTPLoginDeps struct {
	Backend BackendAuth
}

var (
	ErrInvalidPhone = errors.New("enter your phone number in international format, e.g. +5511999998888")
	ErrInvalidCode  = errors.New("the verification code must be 6 digits")
)

var phonePattern = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// NormalizePhone strips spaces, dashes, and parentheses from a phone number.
// POST: returns the number with only '+' and digits remaining
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		switch r {
		case ' ', '-', '(', ')', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ExecuteStartOTPLogin asks the backend to send a one-time code over WhatsApp.
// PRE: Phone is in international format
// POST: Backend has queued the code; nothing is stored locally
func ExecuteStartOTPLogin(ctx context.Context, input StartOTPLoginInput, deps StartOTPLoginDeps) error {
	phone := NormalizePhone(input.Phone)
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}

	if err := deps.Backend.StartLogin(ctx, phone); err != nil {
		slog.Info("auth_event", "event", "otp_start_failed", "error", err)
		return err
	}

	slog.Info("auth_event", "event", "otp_started")
	return nil
}

// VerifyOTPLoginInput carries input for the verify step.
type VerifyOTPLoginInput struct {
	Phone string
	Code  string
}

// VerifyOTPLoginResult carries the backend session on success.
type VerifyOTPLoginResult struct {
	SessionToken string
	UserID       string
}

// VerifyOTPLoginDeps holds dependencies for VerifyOTPLogin.
type VerifyOTPLoginDeps struct {
	Backend BackendAuth
}

var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

// ExecuteVerifyOTPLogin exchanges phone + code for a backend session token.
// The token is held server-side by the caller; it is never written to a cookie.
// PRE: Phone passed the start step, Code is the 6-digit code from WhatsApp
// POST: Returns the backend session token and user ID
func ExecuteVerifyOTPLogin(ctx context.Context, input VerifyOTPLoginInput, deps VerifyOTPLoginDeps) (VerifyOTPLoginResult, error) {
	phone := NormalizePhone(input.Phone)
	if !phonePattern.MatchString(phone) {
		return VerifyOTPLoginResult{}, ErrInvalidPhone
	}
	code := strings.TrimSpace(input.Code)
	if !codePattern.MatchString(code) {
		return VerifyOTPLoginResult{}, ErrInvalidCode
	}

	res, err := deps.Backend.VerifyLogin(ctx, phone, code)
	if err != nil {
		slog.Info("auth_event", "event", "otp_verify_failed", "error", err)
		return VerifyOTPLoginResult{}, err
	}

	slog.Info("auth_event", "event", "otp_verified", "user_id", res.UserID)
	return VerifyOTPLoginResult{
		SessionToken: res.SessionToken,
		UserID:       res.UserID,
	}, nil
}

// ExecuteOTPLogout revokes the backend session. Revocation failures are
// logged but not surfaced; the local session is cleared regardless.
func ExecuteOTPLogout(ctx context.Context, token string, deps StartOTPLoginDeps) {
	if token == "" {
		return
	}
	if err := deps.Backend.Logout(ctx, token); err != nil {
		slog.Warn("auth_event", "event", "otp_logout_failed", "error", err)
		return
	}
	slog.Info("auth_event", "event", "otp_logged_out")
}

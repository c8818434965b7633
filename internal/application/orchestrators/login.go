package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"coachdesk/internal/domain/account"
	"coachdesk/internal/domain/audit"
)

// AuditRecorder persists audit events. Orchestrators that mutate state
// record what happened; a nil recorder skips auditing (tests, tooling).
type AuditRecorder interface {
	Save(ctx context.Context, e audit.Event) error
}

// recordAudit saves an audit event, logging rather than failing the
// operation when the audit write itself errors.
func recordAudit(ctx context.Context, rec AuditRecorder, e audit.Event) {
	if rec == nil {
		return
	}
	if err := rec.Save(ctx, e); err != nil {
		slog.Error("audit_save_failed", "event_id", e.ID, "category", e.Category, "action", e.Action, "error", err)
	}
}

// AccountStoreForLogin defines the store interface needed by Login.
type AccountStoreForLogin interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
	IP       string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	AccountID              string
	Email                  string
	Role                   string
	PasswordChangeRequired bool
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AccountStore AccountStoreForLogin
	Audit        AuditRecorder
}

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is locked due to too many failed attempts")
)

// ExecuteLogin validates operator credentials and returns account info for
// session creation. End users never log in here; the dashboard uses OTP
// against the backend instead.
// PRE: Valid email and password provided
// POST: Returns account info on success, records failed login on failure
// INVARIANT: Account must not be locked
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	acct, err := deps.AccountStore.GetByEmail(ctx, input.Email)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "not_found")
		return LoginResult{}, ErrInvalidCredentials
	}

	// Check if account is locked
	if acct.IsLocked() {
		slog.Info("auth_event", "event", "login_blocked", "email", input.Email, "reason", "locked")
		return LoginResult{}, ErrAccountLocked
	}

	// Verify password
	if err := acct.CheckPassword(input.Password); err != nil {
		acct.RecordFailedLogin()
		_ = deps.AccountStore.Save(ctx, acct)
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "wrong_password", "failed_logins", acct.FailedLogins)
		return LoginResult{}, ErrInvalidCredentials
	}

	// Successful login resets the failed-attempt counter
	acct.ResetFailedLogins()
	_ = deps.AccountStore.Save(ctx, acct)

	slog.Info("auth_event", "event", "login_success", "email", input.Email, "role", acct.Role)

	recordAudit(ctx, deps.Audit, audit.NewEvent(acct.ID, acct.Email, audit.CategorySecurity, audit.ActionLogin).
		WithDescription("operator signed in").
		WithIP(input.IP))

	return LoginResult{
		AccountID:              acct.ID,
		Email:                  acct.Email,
		Role:                   acct.Role,
		PasswordChangeRequired: acct.PasswordChangeRequired,
	}, nil
}

package orchestrators

import (
	"context"
	"errors"
	"testing"

	"coachdesk/internal/domain/audit"
)

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	store, acct := seedAccount(t, "op@example.com", "correct horse battery", "admin")
	a := store.accounts[acct.ID]
	a.PasswordChangeRequired = true
	store.accounts[acct.ID] = a
	recorder := &mockAuditRecorder{}

	err := ExecuteChangePassword(ctx, ChangePasswordInput{
		AccountID:       acct.ID,
		CurrentPassword: "correct horse battery",
		NewPassword:     "staple gun overdrive",
		IP:              "10.0.0.1",
	}, ChangePasswordDeps{AccountStore: store, Audit: recorder})
	if err != nil {
		t.Fatalf("ExecuteChangePassword: %v", err)
	}

	updated := store.accounts[acct.ID]
	if updated.PasswordChangeRequired {
		t.Error("PasswordChangeRequired should be cleared after a change")
	}
	if err := updated.CheckPassword("staple gun overdrive"); err != nil {
		t.Errorf("new password should verify: %v", err)
	}
	if err := updated.CheckPassword("correct horse battery"); err == nil {
		t.Error("old password should no longer verify")
	}
	if len(recorder.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(recorder.events))
	}
	if recorder.events[0].Category != audit.CategorySecurity {
		t.Errorf("audit category = %q, want %q", recorder.events[0].Category, audit.CategorySecurity)
	}
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	ctx := context.Background()
	store, acct := seedAccount(t, "op@example.com", "correct horse battery", "admin")

	err := ExecuteChangePassword(ctx, ChangePasswordInput{
		AccountID:       acct.ID,
		CurrentPassword: "not the password",
		NewPassword:     "staple gun overdrive",
	}, ChangePasswordDeps{AccountStore: store})
	if !errors.Is(err, ErrCurrentPasswordWrong) {
		t.Fatalf("expected ErrCurrentPasswordWrong, got %v", err)
	}
	unchanged := store.accounts[acct.ID]
	if err := unchanged.CheckPassword("correct horse battery"); err != nil {
		t.Errorf("password should be unchanged after a failed attempt: %v", err)
	}
}

func TestChangePasswordSameAsCurrent(t *testing.T) {
	ctx := context.Background()
	store, acct := seedAccount(t, "op@example.com", "correct horse battery", "admin")

	err := ExecuteChangePassword(ctx, ChangePasswordInput{
		AccountID:       acct.ID,
		CurrentPassword: "correct horse battery",
		NewPassword:     "correct horse battery",
	}, ChangePasswordDeps{AccountStore: store})
	if !errors.Is(err, ErrNewPasswordSame) {
		t.Fatalf("expected ErrNewPasswordSame, got %v", err)
	}
}

func TestChangePasswordMissingFields(t *testing.T) {
	ctx := context.Background()
	store, _ := seedAccount(t, "op@example.com", "correct horse battery", "admin")

	err := ExecuteChangePassword(ctx, ChangePasswordInput{
		AccountID: "acct-001",
	}, ChangePasswordDeps{AccountStore: store})
	if err == nil {
		t.Fatal("expected an error when passwords are missing")
	}
}

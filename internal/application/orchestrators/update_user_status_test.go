package orchestrators

import (
	"context"
	"errors"
	"testing"

	"coachdesk/internal/domain/audit"
	"coachdesk/internal/domain/user"
)

// mockBackendUserAdmin implements BackendUserAdmin for testing.
type mockBackendUserAdmin struct {
	users   map[string]user.User
	updates []string // "id:status" applied updates
}

func (m *mockBackendUserAdmin) GetUser(_ context.Context, id string) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, errors.New("not found")
	}
	return u, nil
}

func (m *mockBackendUserAdmin) UpdateUserStatus(_ context.Context, id, status, note string) error {
	u, ok := m.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.Status = status
	m.users[id] = u
	m.updates = append(m.updates, id+":"+status)
	return nil
}

// TestExecuteUpdateUserStatus_Valid tests a valid status transition.
func TestExecuteUpdateUserStatus_Valid(t *testing.T) {
	mock := &mockBackendUserAdmin{users: map[string]user.User{
		"u1": {ID: "u1", Phone: "+5511999998888", Status: user.StatusActive},
	}}
	rec := &mockAuditRecorder{}

	err := ExecuteUpdateUserStatus(context.Background(), UpdateUserStatusInput{
		UserID:     "u1",
		Status:     user.StatusPaused,
		Note:       "vacation",
		ActorID:    "acct-001",
		ActorEmail: "ops@coachdesk.app",
	}, UpdateUserStatusDeps{Backend: mock, Audit: rec})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.users["u1"].Status != user.StatusPaused {
		t.Errorf("status = %q, want paused", mock.users["u1"].Status)
	}
	if len(rec.events) != 1 {
		t.Fatalf("audit events = %d, want 1", len(rec.events))
	}
	if rec.events[0].Action != audit.ActionStatusChange {
		t.Errorf("audit action = %q, want status_change", rec.events[0].Action)
	}
	if rec.events[0].ResourceID != "u1" {
		t.Errorf("audit resource = %q, want u1", rec.events[0].ResourceID)
	}
}

// TestExecuteUpdateUserStatus_InvalidStatus tests rejection of unknown statuses.
func TestExecuteUpdateUserStatus_InvalidStatus(t *testing.T) {
	mock := &mockBackendUserAdmin{users: map[string]user.User{
		"u1": {ID: "u1", Status: user.StatusActive},
	}}

	err := ExecuteUpdateUserStatus(context.Background(), UpdateUserStatusInput{
		UserID: "u1",
		Status: "suspended",
	}, UpdateUserStatusDeps{Backend: mock})
	if !errors.Is(err, user.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if len(mock.updates) != 0 {
		t.Error("backend should not be called for invalid status")
	}
}

// TestExecuteUpdateUserStatus_NoOp tests that same-status transitions skip the backend.
func TestExecuteUpdateUserStatus_NoOp(t *testing.T) {
	mock := &mockBackendUserAdmin{users: map[string]user.User{
		"u1": {ID: "u1", Status: user.StatusActive},
	}}
	rec := &mockAuditRecorder{}

	err := ExecuteUpdateUserStatus(context.Background(), UpdateUserStatusInput{
		UserID: "u1",
		Status: user.StatusActive,
	}, UpdateUserStatusDeps{Backend: mock, Audit: rec})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.updates) != 0 {
		t.Error("no-op transition should not call the backend")
	}
	if len(rec.events) != 0 {
		t.Error("no-op transition should not be audited")
	}
}

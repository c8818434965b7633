package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"coachdesk/internal/domain/audit"
	"coachdesk/internal/domain/user"
)

// BackendUserAdmin defines the backend operations needed for user management.
type BackendUserAdmin interface {
	GetUser(ctx context.Context, id string) (user.User, error)
	UpdateUserStatus(ctx context.Context, id, status, note string) error
}

// UpdateUserStatusInput carries input for the status change.
type UpdateUserStatusInput struct {
	UserID     string
	Status     string
	Note       string
	ActorID    string
	ActorEmail string
	IP         string
}

// UpdateUserStatusDeps holds dependencies for UpdateUserStatus.
type UpdateUserStatusDeps struct {
	Backend BackendUserAdmin
	Audit   AuditRecorder
}

// ExecuteUpdateUserStatus changes a coaching user's status through the backend.
// PRE: UserID is non-empty, Status is a valid user status
// POST: Backend has applied the change; an audit event is recorded
func ExecuteUpdateUserStatus(ctx context.Context, input UpdateUserStatusInput, deps UpdateUserStatusDeps) error {
	if input.UserID == "" {
		return errors.New("user ID is required")
	}
	if !user.IsValidStatus(input.Status) {
		return user.ErrInvalidStatus
	}

	// Fetch first so the audit entry can describe the transition
	existing, err := deps.Backend.GetUser(ctx, input.UserID)
	if err != nil {
		return err
	}
	if existing.Status == input.Status {
		return nil // no-op transition
	}

	if err := deps.Backend.UpdateUserStatus(ctx, input.UserID, input.Status, input.Note); err != nil {
		return err
	}

	slog.Info("user_event", "event", "status_changed", "user_id", input.UserID, "from", existing.Status, "to", input.Status)

	recordAudit(ctx, deps.Audit, audit.NewEvent(input.ActorID, input.ActorEmail, audit.CategoryUser, audit.ActionStatusChange).
		WithResource("user", input.UserID).
		WithDescription("status "+existing.Status+" to "+input.Status).
		WithIP(input.IP))

	return nil
}

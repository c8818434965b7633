package feedback

import (
	"context"

	domain "coachdesk/internal/domain/feedback"
)

// Store persists feedback Submission state.
type Store interface {
	Save(ctx context.Context, s domain.Submission) error
	GetByID(ctx context.Context, id string) (domain.Submission, error)
	List(ctx context.Context, status string, limit int) ([]domain.Submission, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

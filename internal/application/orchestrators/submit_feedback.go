package orchestrators

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	feedbackStore "coachdesk/internal/adapters/storage/feedback"
	outboxStore "coachdesk/internal/adapters/storage/outbox"
	domain "coachdesk/internal/domain/feedback"
	outboxDomain "coachdesk/internal/domain/outbox"
)

// SubmitFeedbackCommand holds the input for a dashboard feedback submission.
// PRE: Message is non-empty and Category is valid.
// POST: Submission persisted; an alert email queued on the outbox.
// INVARIANT: Never includes cookies, session tokens, or passwords.
type SubmitFeedbackCommand struct {
	ID        string
	UserID    string
	Category  string
	Message   string
	Page      string
	UserAgent string

	// Alert routing, injected from config
	AlertsAddress string
}

// SubmitFeedbackDeps are the external dependencies for this orchestrator.
type SubmitFeedbackDeps struct {
	FeedbackStore feedbackStore.Store
	OutboxStore   outboxStore.Store
	Now           func() time.Time
}

// ExecuteSubmitFeedback validates and persists feedback, then queues an
// alert email for the team. The email is delivered asynchronously by the
// outbox worker so a provider outage never blocks the dashboard.
// PRE: cmd.Message is non-empty
// POST: feedback saved; email outbox entry created when AlertsAddress is set
func ExecuteSubmitFeedback(ctx context.Context, cmd SubmitFeedbackCommand, deps SubmitFeedbackDeps) (string, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	sub := domain.Submission{
		ID:          cmd.ID,
		UserID:      cmd.UserID,
		Category:    cmd.Category,
		Message:     strings.TrimSpace(cmd.Message),
		Page:        cmd.Page,
		UserAgent:   cmd.UserAgent,
		Status:      domain.StatusNew,
		SubmittedAt: now().UTC(),
	}
	if err := sub.Validate(); err != nil {
		return "", fmt.Errorf("validation: %w", err)
	}

	if err := deps.FeedbackStore.Save(ctx, sub); err != nil {
		slog.Error("feedback_save_failed", "error", err.Error(), "submission_id", cmd.ID)
		return "", fmt.Errorf("failed to save feedback: %w", err)
	}

	if cmd.AlertsAddress != "" && deps.OutboxStore != nil {
		if err := queueFeedbackAlert(ctx, sub, cmd.AlertsAddress, deps.OutboxStore, now()); err != nil {
			// The submission itself succeeded; the alert is best-effort
			slog.Error("feedback_alert_queue_failed", "error", err.Error(), "submission_id", sub.ID)
		}
	}

	slog.Info("feedback_submitted", "submission_id", sub.ID, "category", sub.Category)
	return sub.ID, nil
}

// queueFeedbackAlert writes an email outbox entry for the new submission.
func queueFeedbackAlert(ctx context.Context, sub domain.Submission, to string, store outboxStore.Store, now time.Time) error {
	payload, err := json.Marshal(EmailPayload{
		To:      to,
		Subject: fmt.Sprintf("[CoachDesk] New %s feedback", sub.Category),
		HTML:    buildFeedbackAlertHTML(sub),
	})
	if err != nil {
		return fmt.Errorf("marshal alert payload: %w", err)
	}

	entry := outboxDomain.Entry{
		ID:         sub.ID,
		ActionType: outboxDomain.ActionTypeEmail,
		Payload:    string(payload),
		Status:     outboxDomain.StatusPending,
		CreatedAt:  now,
	}
	if err := entry.Validate(); err != nil {
		return err
	}
	return store.Save(ctx, entry)
}

// buildFeedbackAlertHTML renders the alert email body.
func buildFeedbackAlertHTML(sub domain.Submission) string {
	var sb strings.Builder
	sb.WriteString("<h2>New dashboard feedback</h2>")
	sb.WriteString("<p><strong>Category:</strong> " + html.EscapeString(sub.Category) + "</p>")
	sb.WriteString("<p><strong>Page:</strong> " + html.EscapeString(sub.Page) + "</p>")
	sb.WriteString("<p><strong>User:</strong> " + html.EscapeString(sub.UserID) + "</p>")
	sb.WriteString("<blockquote>" + html.EscapeString(sub.Message) + "</blockquote>")
	sb.WriteString("<p><small>Submitted " + sub.SubmittedAt.Format(time.RFC822) + "</small></p>")
	return sb.String()
}

package orchestrators

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	outboxStore "coachdesk/internal/adapters/storage/outbox"
	outboxDomain "coachdesk/internal/domain/outbox"
	"coachdesk/internal/domain/scriptrun"
)

// BackendScriptReader defines the backend operations needed for failure alerts.
type BackendScriptReader interface {
	ListScriptRuns(ctx context.Context, limit int) ([]scriptrun.Run, error)
}

// AlertScriptFailuresDeps holds dependencies for the failure alert sweep.
type AlertScriptFailuresDeps struct {
	Backend     BackendScriptReader
	OutboxStore outboxStore.Store
	Now         func() time.Time
}

const scriptAlertBatch = 50

// ExecuteAlertScriptFailures scans recent script runs and queues one alert
// email per failed run. The outbox entry ID is derived from the run ID, so
// repeated sweeps never alert twice for the same failure.
// PRE: alertsAddress is non-empty
// POST: One pending outbox entry exists per newly seen failed run
func ExecuteAlertScriptFailures(ctx context.Context, alertsAddress string, deps AlertScriptFailuresDeps) (int, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	runs, err := deps.Backend.ListScriptRuns(ctx, scriptAlertBatch)
	if err != nil {
		return 0, fmt.Errorf("list script runs: %w", err)
	}

	queued := 0
	for i := range runs {
		run := runs[i]
		if !run.Failed() {
			continue
		}
		entryID := "script-run-" + run.ID
		_, err := deps.OutboxStore.GetByID(ctx, entryID)
		switch {
		case err == nil:
			continue // already alerted
		case errors.Is(err, sql.ErrNoRows):
			// Not yet alerted; queue below.
		default:
			// Saving on a transient read error would flip an already
			// delivered entry back to pending. Skip and let the next
			// sweep retry.
			slog.Warn("script_alert_dedupe_check_failed", "entry_id", entryID, "error", err.Error())
			continue
		}

		payload, err := json.Marshal(EmailPayload{
			To:      alertsAddress,
			Subject: fmt.Sprintf("[CoachDesk] Script failed: %s", run.Script),
			HTML:    buildScriptFailureHTML(run),
		})
		if err != nil {
			return queued, fmt.Errorf("marshal alert payload: %w", err)
		}

		entry := outboxDomain.Entry{
			ID:         entryID,
			ActionType: outboxDomain.ActionTypeEmail,
			Payload:    string(payload),
			Status:     outboxDomain.StatusPending,
			CreatedAt:  now(),
		}
		if err := entry.Validate(); err != nil {
			return queued, err
		}
		if err := deps.OutboxStore.Save(ctx, entry); err != nil {
			return queued, fmt.Errorf("queue script alert: %w", err)
		}
		queued++
		slog.Info("script_failure_alert_queued", "run_id", run.ID, "script", run.Script)
	}

	return queued, nil
}

// buildScriptFailureHTML renders the alert email body.
func buildScriptFailureHTML(run scriptrun.Run) string {
	var sb strings.Builder
	sb.WriteString("<h2>Backend script failed</h2>")
	sb.WriteString("<p><strong>Script:</strong> " + html.EscapeString(run.Script) + "</p>")
	sb.WriteString("<p><strong>Run:</strong> " + html.EscapeString(run.ID) + "</p>")
	sb.WriteString("<p><strong>Triggered by:</strong> " + html.EscapeString(run.TriggeredBy) + "</p>")
	if !run.FinishedAt.IsZero() {
		sb.WriteString("<p><small>Finished " + run.FinishedAt.Format(time.RFC822) + "</small></p>")
	}
	if run.Output != "" {
		sb.WriteString("<pre>" + html.EscapeString(run.OutputExcerpt(2000)) + "</pre>")
	}
	return sb.String()
}

// StartScriptFailureWatcher polls the backend for failed script runs on an
// interval and queues alert emails until the stop channel closes.
func StartScriptFailureWatcher(alertsAddress string, deps AlertScriptFailuresDeps, interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				if _, err := ExecuteAlertScriptFailures(ctx, alertsAddress, deps); err != nil {
					slog.Error("script_failure_sweep_failed", "error", err.Error())
				}
				cancel()
			case <-stopCh:
				return
			}
		}
	}()
}

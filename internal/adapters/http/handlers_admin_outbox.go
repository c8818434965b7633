package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"coachdesk/internal/application/orchestrators"
	"coachdesk/internal/domain/outbox"
)

// webExecutors builds the executor set used for manual outbox actions.
func webExecutors() map[string]orchestrators.ActionExecutor {
	return map[string]orchestrators.ActionExecutor{
		outbox.ActionTypeEmail: &orchestrators.EmailExecutor{Sender: emailSender, ReplyTo: emailReplyTo},
	}
}

// handleAdminOutbox handles admin endpoints for managing outbox entries.
// Routes: GET /admin/outbox (list entries), POST /admin/outbox/:id/retry
// (manual retry), POST /admin/outbox/:id/abandon
func handleAdminOutbox(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := requireOperator(w, r)
	if !ok {
		return
	}
	if sess.Role != "admin" {
		http.Error(w, "admin required", http.StatusForbidden)
		return
	}

	switch r.Method {
	case "GET":
		limitStr := r.URL.Query().Get("limit")
		limit := 50
		if limitStr != "" {
			if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 100 {
				limit = n
			}
		}

		status := r.URL.Query().Get("status")
		if status == "" {
			status = outbox.StatusFailed
		}

		var entries []outbox.Entry
		var err error

		if status == "all" {
			entries, err = stores.OutboxStore.ListPending(ctx, limit)
		} else {
			entries, err = stores.OutboxStore.ListFailed(ctx, limit)
		}

		if err != nil {
			internalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)

	case "POST":
		// Extract entry ID from path: /admin/outbox/:id/:action
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) != 4 || parts[0] != "admin" || parts[1] != "outbox" {
			http.Error(w, "invalid path", http.StatusBadRequest)
			return
		}
		entryID := parts[2]
		action := parts[3]

		processor := orchestrators.NewOutboxProcessor(stores.OutboxStore, webExecutors())

		switch action {
		case "retry":
			if err := processor.ProcessSingle(ctx, entryID); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "retry triggered"})

		case "abandon":
			if err := processor.AbandonEntry(ctx, entryID); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "abandoned"})

		default:
			http.Error(w, "unknown action", http.StatusBadRequest)
		}

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

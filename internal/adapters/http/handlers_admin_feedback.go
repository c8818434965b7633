package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	feedbackDomain "coachdesk/internal/domain/feedback"
)

// handleAdminFeedback handles the feedback triage page.
// GET /admin/feedback lists submissions by status; POST updates one.
func handleAdminFeedback(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperator(w, r); !ok {
		return
	}

	if r.Method == "GET" {
		status := r.URL.Query().Get("status")

		limit := 100
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
				limit = n
			}
		}

		submissions, err := stores.FeedbackStore.List(r.Context(), status, limit)
		if err != nil {
			internalError(w, err)
			return
		}

		renderAdminPage(w, r, "admin_feedback.html", map[string]any{
			"Submissions": submissions,
			"Status":      status,
			"StatusOptions": []string{
				feedbackDomain.StatusNew,
				feedbackDomain.StatusSeen,
				feedbackDomain.StatusResolved,
			},
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		id := r.FormValue("ID")
		status := r.FormValue("Status")
		switch status {
		case feedbackDomain.StatusNew, feedbackDomain.StatusSeen, feedbackDomain.StatusResolved:
		default:
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}

		if err := stores.FeedbackStore.UpdateStatus(r.Context(), id, status); err != nil {
			internalError(w, err)
			return
		}
		http.Redirect(w, r, "/admin/feedback", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

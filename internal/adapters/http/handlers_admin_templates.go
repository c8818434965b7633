package web

import (
	"net/http"
	"net/url"

	"github.com/gorilla/csrf"

	"coachdesk/internal/adapters/backend"
	"coachdesk/internal/application/orchestrators"
	"coachdesk/internal/application/projections"
)

// handleMsgTemplates handles GET /templates: the WhatsApp template table
// with approval status and classification badges.
func handleMsgTemplates(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperator(w, r); !ok {
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetMsgTemplates(r.Context(),
		projections.GetMsgTemplatesDeps{Backend: backendClient})
	if err != nil {
		internalError(w, err)
		return
	}

	renderAdminPage(w, r, "admin_templates.html", map[string]any{
		"Templates":     result.Templates,
		"ApprovedCount": result.ApprovedCount,
		"PendingCount":  result.PendingCount,
		"CSRFToken":     csrf.Token(r),
		"Error":         r.URL.Query().Get("error"),
		"Sent":          r.URL.Query().Get("sent") == "1",
	})
}

// handleSendTestTemplate handles POST /templates/send-test: pushes an
// approved template to a test phone number over WhatsApp.
func handleSendTestTemplate(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireOperator(w, r)
	if !ok {
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SendTestTemplateInput{
		SID:        r.FormValue("SID"),
		Phone:      r.FormValue("Phone"),
		ActorID:    sess.AccountID,
		ActorEmail: sess.Email,
		IP:         clientIP(r),
	}
	deps := orchestrators.SendTestTemplateDeps{
		Backend: backendClient,
		Audit:   stores.AuditStore,
	}

	if err := orchestrators.ExecuteSendTestTemplate(r.Context(), input, deps); err != nil {
		http.Redirect(w, r, "/templates?error="+url.QueryEscape(backend.ErrorMessage(err)), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/templates?sent=1", http.StatusSeeOther)
}

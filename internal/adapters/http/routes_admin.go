package web

import (
	"net/http"

	"coachdesk/internal/adapters/http/middleware"
)

// registerAdminRoutes wires the admin console endpoints.
func registerAdminRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleAdminHome)

	// Operator auth (local accounts, bcrypt)
	mux.HandleFunc("/login", handleAdminLogin)
	mux.HandleFunc("/logout", handleAdminLogout)
	mux.HandleFunc("/change-password", handleChangePassword)

	// Coaching users (backend-proxied)
	mux.HandleFunc("/users", handleUsers)
	mux.HandleFunc("/users/", handleUserDetail)

	// Content administration
	mux.HandleFunc("/content", handleContentOverview)
	mux.HandleFunc("/kb/", handleKbSnippet)
	mux.HandleFunc("/library-admin/", handleLibraryContent)
	mux.HandleFunc("/preview", handleMarkdownPreview)

	// Prompt templates
	mux.HandleFunc("/prompts", handlePrompts)
	mux.HandleFunc("/prompts/", handlePromptActions)

	// WhatsApp messaging templates
	mux.HandleFunc("/templates", handleMsgTemplates)
	mux.HandleFunc("/templates/send-test", handleSendTestTemplate)

	// Operations
	mux.HandleFunc("/script-runs", handleScriptRuns)
	mux.HandleFunc("/reports", handleReports)
	mux.HandleFunc("/audit-trail", handleAuditTrail)
	mux.HandleFunc("/admin/outbox", handleAdminOutbox)
	mux.HandleFunc("/admin/outbox/", handleAdminOutbox)
	mux.HandleFunc("/admin/feedback", handleAdminFeedback)
	mux.HandleFunc("/perf", handlePerf)
}

// handleAdminHome redirects the console root by auth state.
func handleAdminHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

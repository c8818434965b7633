package web

import (
	"net/http"
	"net/url"
	"strings"

	"coachdesk/internal/adapters/backend"
	"coachdesk/internal/application/orchestrators"
	"coachdesk/internal/application/projections"

	"github.com/gorilla/csrf"
)

// handlePrompts handles GET /prompts: templates grouped by touchpoint with
// full version history.
func handlePrompts(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperator(w, r); !ok {
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetPromptTemplates(r.Context(),
		projections.GetPromptTemplatesDeps{Backend: backendClient})
	if err != nil {
		internalError(w, err)
		return
	}

	renderAdminPage(w, r, "admin_prompts.html", map[string]any{
		"Touchpoints":  result.Touchpoints,
		"ByTouchpoint": result.ByTouchpoint,
		"CSRFToken":    csrf.Token(r),
		"Error":        r.URL.Query().Get("error"),
	})
}

// handlePromptActions handles POST /prompts/{id}/draft (create a draft
// version) and POST /prompts/{id}/promote (activate a version).
func handlePromptActions(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireOperator(w, r)
	if !ok {
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 || parts[0] != "prompts" {
		http.NotFound(w, r)
		return
	}
	templateID := parts[1]
	action := parts[2]

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	deps := orchestrators.PromptDraftDeps{
		Backend: backendClient,
		Audit:   stores.AuditStore,
	}

	var err error
	switch action {
	case "draft":
		_, err = orchestrators.ExecuteCreatePromptDraft(r.Context(), orchestrators.CreatePromptDraftInput{
			TemplateID: templateID,
			Body:       r.FormValue("Body"),
			Notes:      r.FormValue("Notes"),
			ActorID:    sess.AccountID,
			ActorEmail: sess.Email,
			IP:         clientIP(r),
		}, deps)
	case "promote":
		err = orchestrators.ExecutePromotePromptVersion(r.Context(), orchestrators.PromotePromptVersionInput{
			TemplateID: templateID,
			VersionID:  r.FormValue("VersionID"),
			ActorID:    sess.AccountID,
			ActorEmail: sess.Email,
			IP:         clientIP(r),
		}, deps)
	default:
		http.NotFound(w, r)
		return
	}

	if err != nil {
		http.Redirect(w, r, "/prompts?error="+url.QueryEscape(backend.ErrorMessage(err)), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/prompts", http.StatusSeeOther)
}

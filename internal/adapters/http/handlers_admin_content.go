package web

import (
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/csrf"

	"coachdesk/internal/adapters/backend"
	"coachdesk/internal/application/orchestrators"
	"coachdesk/internal/application/projections"
	"coachdesk/internal/domain/library"
)

// handleContentOverview handles GET /content: KB snippets and library
// articles side by side.
func handleContentOverview(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperator(w, r); !ok {
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetContentOverview(r.Context(),
		projections.GetContentOverviewDeps{Backend: backendClient})
	if err != nil {
		internalError(w, err)
		return
	}

	renderAdminPage(w, r, "admin_content.html", map[string]any{
		"Snippets":       result.Snippets,
		"Library":        result.Library,
		"PublishedCount": result.PublishedCount,
		"DraftCount":     result.DraftCount,
	})
}

// handleKbSnippet handles GET /kb/{slug} (edit form) and POST /kb/{slug} (save).
// The slug "new" opens an empty form.
func handleKbSnippet(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireOperator(w, r)
	if !ok {
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/kb/")
	if slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}

	if r.Method == "GET" {
		data := map[string]any{
			"CSRFToken": csrf.Token(r),
			"IsNew":     slug == "new",
		}
		if slug != "new" {
			snippet, err := backendClient.GetKbSnippet(r.Context(), slug)
			if err != nil {
				if backend.IsNotFound(err) {
					http.NotFound(w, r)
					return
				}
				internalError(w, err)
				return
			}
			data["Snippet"] = snippet
			data["Preview"] = renderMarkdown(snippet.Body)
		}
		renderAdminPage(w, r, "admin_kb_edit.html", data)
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.SaveKbSnippetInput{
			Slug:       r.FormValue("Slug"),
			Title:      r.FormValue("Title"),
			Body:       r.FormValue("Body"),
			ActorID:    sess.AccountID,
			ActorEmail: sess.Email,
			IP:         clientIP(r),
		}
		deps := orchestrators.SaveKbSnippetDeps{
			Backend: backendClient,
			Audit:   stores.AuditStore,
		}
		if err := orchestrators.ExecuteSaveKbSnippet(r.Context(), input, deps); err != nil {
			renderAdminPage(w, r, "admin_kb_edit.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"IsNew":     slug == "new",
				"Error":     backend.ErrorMessage(err),
				"Form":      input,
			})
			return
		}
		http.Redirect(w, r, "/content", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLibraryContent handles GET /library-admin/{slug} and POST (save).
func handleLibraryContent(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireOperator(w, r)
	if !ok {
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/library-admin/")
	if slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}

	if r.Method == "GET" {
		data := map[string]any{
			"CSRFToken": csrf.Token(r),
			"IsNew":     slug == "new",
			"Topics":    library.KnownTopics,
		}
		if slug != "new" {
			item, err := backendClient.GetLibraryContent(r.Context(), slug)
			if err != nil {
				if backend.IsNotFound(err) {
					http.NotFound(w, r)
					return
				}
				internalError(w, err)
				return
			}
			data["Content"] = item
			data["Preview"] = renderMarkdown(item.Body)
		}
		renderAdminPage(w, r, "admin_library_edit.html", data)
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.SaveLibraryContentInput{
			Slug:       r.FormValue("Slug"),
			Title:      r.FormValue("Title"),
			Topic:      r.FormValue("Topic"),
			Body:       r.FormValue("Body"),
			Published:  r.FormValue("Published") == "on",
			ActorID:    sess.AccountID,
			ActorEmail: sess.Email,
			IP:         clientIP(r),
		}
		deps := orchestrators.SaveLibraryContentDeps{
			Backend: backendClient,
			Audit:   stores.AuditStore,
		}
		if err := orchestrators.ExecuteSaveLibraryContent(r.Context(), input, deps); err != nil {
			renderAdminPage(w, r, "admin_library_edit.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"IsNew":     slug == "new",
				"Topics":    library.KnownTopics,
				"Error":     backend.ErrorMessage(err),
				"Form":      input,
			})
			return
		}
		http.Redirect(w, r, "/content", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleMarkdownPreview handles POST /preview: renders submitted markdown to
// an HTML fragment for the edit forms.
func handleMarkdownPreview(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperator(w, r); !ok {
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(renderMarkdown(string(body))))
}

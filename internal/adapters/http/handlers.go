package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"coachdesk/internal/adapters/http/middleware"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// renderMarkdown converts markdown to sanitized HTML for templates.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// clientIP returns the request's remote address without the port part.
func clientIP(r *http.Request) string {
	addr := r.RemoteAddr
	if i := strings.LastIndex(addr, ":"); i > 0 {
		return addr[:i]
	}
	return addr
}

// templatesDir is resolved relative to the process working directory, which
// is the repository root for both binaries. Tests point it at ./templates.
var templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

// renderPage parses the given layout plus page template and executes them.
// The FuncMap is rebuilt per request because the CSRF token and session are
// request-scoped.
func renderPage(w http.ResponseWriter, r *http.Request, layoutName, pageName string, data any) {
	sess, loggedIn := middleware.GetSessionFromContext(r.Context())

	funcMap := template.FuncMap{
		"currentRole":    func() string { return sess.Role },
		"currentEmail":   func() string { return sess.Email },
		"isLoggedIn":     func() bool { return loggedIn },
		"isMember":       func() bool { return sess.IsMember() },
		"csrfToken":      func() string { return csrf.Token(r) },
		"renderMarkdown": renderMarkdown,
		"add":            func(a, b int) int { return a + b },
		"sub":            func(a, b int) int { return a - b },
		"pct": func(v float64) string {
			return fmt.Sprintf("%.0f%%", v)
		},
		"sortHeaderArgs": func(col, label, activeSort, activeDir, search, status string, perPage int) map[string]string {
			nextDir := "asc"
			if col == activeSort && activeDir == "asc" {
				nextDir = "desc"
			}
			return map[string]string{
				"Col": col, "Label": label,
				"ActiveSort": activeSort, "ActiveDir": activeDir, "NextDir": nextDir,
				"Search": search, "Status": status,
				"PerPage": fmt.Sprintf("%d", perPage),
			}
		},
		"paginationQuery": paginationQuery,
	}

	layoutPath := filepath.Join(templatesDir, layoutName)
	pagePath := filepath.Join(templatesDir, pageName)
	tpl, err := template.New(layoutName).Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// paginationQuery builds an escaped query string for pagination links. The
// result is marked template.URL, which bypasses the template escaper, so
// every value MUST go through url.Values here.
func paginationQuery(page int, sort, dir, search, status string, perPage int) template.URL {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	if sort != "" {
		q.Set("sort", sort)
		q.Set("dir", dir)
	}
	if search != "" {
		q.Set("q", search)
	}
	if status != "" {
		q.Set("status", status)
	}
	if perPage > 0 {
		q.Set("per_page", fmt.Sprintf("%d", perPage))
	}
	return template.URL(q.Encode())
}

func renderAdminPage(w http.ResponseWriter, r *http.Request, pageName string, data any) {
	renderPage(w, r, "admin_layout.html", pageName, data)
}

func renderDashboardPage(w http.ResponseWriter, r *http.Request, pageName string, data any) {
	renderPage(w, r, "dashboard_layout.html", pageName, data)
}

package web

import (
	"net/http"

	"coachdesk/internal/adapters/http/middleware"
)

// registerDashboardRoutes wires the member-facing coaching dashboard.
func registerDashboardRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleDashboardHome)

	// OTP auth against the backend
	mux.HandleFunc("/login", handleOTPStart)
	mux.HandleFunc("/verify", handleOTPVerify)
	mux.HandleFunc("/logout", handleDashboardLogout)

	// Member pages
	mux.HandleFunc("/krs/", handleKRDetail)
	mux.HandleFunc("/library", handleLibraryIndex)
	mux.HandleFunc("/library/", handleLibraryArticle)
	mux.HandleFunc("/settings", handleSettings)
	mux.HandleFunc("/feedback", handleFeedback)

	// JSON proxy for programmatic access; the session token may come from
	// the cookie session or an explicit X-Session-Token header.
	mux.HandleFunc("/api/v1/", handleAPIProxy)
}

// requireMember ensures the request carries a member session with a backend
// token. Redirects to the OTP login page otherwise.
func requireMember(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok || !sess.IsMember() {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return middleware.Session{}, false
	}
	return sess, true
}

// handleDashboardHome renders the member overview at "/".
func handleDashboardHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	sess, ok := requireMember(w, r)
	if !ok {
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderOverview(w, r, sess)
}

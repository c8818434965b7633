package web

import (
	"net/http"

	"github.com/gorilla/csrf"

	"coachdesk/internal/adapters/backend"
	"coachdesk/internal/adapters/http/middleware"
	"coachdesk/internal/application/orchestrators"
)

// handleOTPStart handles GET /login (phone form) and POST /login (request a
// WhatsApp one-time code from the backend).
func handleOTPStart(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if sess, ok := middleware.GetSessionFromContext(r.Context()); ok && sess.IsMember() {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		renderDashboardPage(w, r, "dash_login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		phone := r.FormValue("Phone")

		err := orchestrators.ExecuteStartOTPLogin(r.Context(),
			orchestrators.StartOTPLoginInput{Phone: phone},
			orchestrators.StartOTPLoginDeps{Backend: backendClient})
		if err != nil {
			msg := err.Error()
			if err != orchestrators.ErrInvalidPhone {
				msg = backend.FriendlyAuthError(err)
			}
			renderDashboardPage(w, r, "dash_login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Phone":     phone,
				"Error":     msg,
			})
			return
		}

		renderDashboardPage(w, r, "dash_verify.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Phone":     orchestrators.NormalizePhone(phone),
		})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleOTPVerify handles GET /verify (code form) and POST /verify (exchange
// the code for a backend session). The backend session token stays
// server-side; the browser only receives an opaque cookie.
func handleOTPVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderDashboardPage(w, r, "dash_verify.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Phone":     r.URL.Query().Get("phone"),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		phone := r.FormValue("Phone")
		code := r.FormValue("Code")

		result, err := orchestrators.ExecuteVerifyOTPLogin(r.Context(),
			orchestrators.VerifyOTPLoginInput{Phone: phone, Code: code},
			orchestrators.VerifyOTPLoginDeps{Backend: backendClient})
		if err != nil {
			msg := err.Error()
			if err != orchestrators.ErrInvalidPhone && err != orchestrators.ErrInvalidCode {
				msg = backend.FriendlyAuthError(err)
			}
			renderDashboardPage(w, r, "dash_verify.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Phone":     phone,
				"Error":     msg,
			})
			return
		}

		token, err := sessions.Create(middleware.Session{
			BackendToken: result.SessionToken,
			UserID:       result.UserID,
		})
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleDashboardLogout handles POST /logout: revokes the backend session
// (best effort) and clears local state.
func handleDashboardLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if cookie, err := r.Cookie(middleware.CookieName); err == nil {
		if sess, ok := sessions.Get(cookie.Value); ok {
			orchestrators.ExecuteOTPLogout(r.Context(), sess.BackendToken,
				orchestrators.StartOTPLoginDeps{Backend: backendClient})
		}
		sessions.Delete(cookie.Value)
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

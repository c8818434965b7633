package web

import (
	"net/http"

	"github.com/gorilla/csrf"

	"coachdesk/internal/adapters/http/middleware"
	"coachdesk/internal/application/orchestrators"
)

// requireOperator ensures the request carries an operator session.
// Redirects to the login page otherwise.
func requireOperator(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok || sess.IsMember() {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return middleware.Session{}, false
	}
	return sess, true
}

// handleAdminLogin handles GET (form) and POST (authenticate) for /login
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, go straight to the console
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/users", http.StatusSeeOther)
			return
		}
		renderAdminPage(w, r, "admin_login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Email:    r.FormValue("Email"),
			Password: r.FormValue("Password"),
			IP:       clientIP(r),
		}

		deps := orchestrators.LoginDeps{
			AccountStore: stores.AccountStore,
			Audit:        stores.AuditStore,
		}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
		if err != nil {
			renderAdminPage(w, r, "admin_login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		token, err := sessions.Create(middleware.Session{
			AccountID:              result.AccountID,
			Email:                  result.Email,
			Role:                   result.Role,
			PasswordChangeRequired: result.PasswordChangeRequired,
		})
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, token)
		if result.PasswordChangeRequired {
			http.Redirect(w, r, "/change-password", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminLogout handles POST /logout
func handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if cookie, err := r.Cookie(middleware.CookieName); err == nil {
		sessions.Delete(cookie.Value)
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleChangePassword handles GET (form) and POST for /change-password
func handleChangePassword(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireOperator(w, r)
	if !ok {
		return
	}

	if r.Method == "GET" {
		renderAdminPage(w, r, "admin_change_password.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Forced":    sess.PasswordChangeRequired,
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.ChangePasswordInput{
			AccountID:       sess.AccountID,
			CurrentPassword: r.FormValue("CurrentPassword"),
			NewPassword:     r.FormValue("NewPassword"),
			IP:              clientIP(r),
		}
		deps := orchestrators.ChangePasswordDeps{
			AccountStore: stores.AccountStore,
			Audit:        stores.AuditStore,
		}

		if err := orchestrators.ExecuteChangePassword(r.Context(), input, deps); err != nil {
			renderAdminPage(w, r, "admin_change_password.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Forced":    sess.PasswordChangeRequired,
				"Error":     err.Error(),
			})
			return
		}

		// Clear the forced-change flag on the live session
		if cookie, err := r.Cookie(middleware.CookieName); err == nil {
			sess.PasswordChangeRequired = false
			sessions.Update(cookie.Value, sess)
		}

		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

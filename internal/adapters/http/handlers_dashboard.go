package web

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/csrf"

	"coachdesk/internal/adapters/backend"
	"coachdesk/internal/adapters/http/middleware"
	"coachdesk/internal/application/orchestrators"
	"coachdesk/internal/application/projections"
	"coachdesk/internal/domain/feedback"
	"coachdesk/internal/domain/kr"
)

// trackPageView reports a page view off the request goroutine. It uses its
// own context so a finished request doesn't cancel the call mid-flight.
func trackPageView(token, page string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	backendClient.TrackPageView(ctx, token, page)
}

// renderOverview renders the dashboard home: greeting, KRs, next touchpoint,
// recent library items.
func renderOverview(w http.ResponseWriter, r *http.Request, sess middleware.Session) {
	result, err := projections.QueryGetCoachingOverview(r.Context(),
		projections.GetCoachingOverviewQuery{Token: sess.BackendToken},
		projections.GetCoachingOverviewDeps{Backend: backendClient})
	if err != nil {
		if backend.IsUnauthorized(err) {
			middleware.ClearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		internalError(w, err)
		return
	}

	library, err := projections.QueryGetLibraryReader(r.Context(),
		projections.GetLibraryReaderQuery{Token: sess.BackendToken},
		projections.GetLibraryReaderDeps{Backend: backendClient})
	if err != nil {
		internalError(w, err)
		return
	}

	// Page views are best-effort telemetry; never block rendering.
	go trackPageView(sess.BackendToken, "/")

	renderDashboardPage(w, r, "dash_overview.html", map[string]any{
		"User":           result.User,
		"KRs":            result.KRs,
		"OpenKRCount":    result.OpenKRCount,
		"NextTouchpoint": result.NextTouchpoint,
		"LibraryTopics":  library.Topics,
		"LibraryByTopic": library.ByTopic,
	})
}

// handleKRDetail handles GET /krs/{id} (check-in form) and POST /krs/{id}
// (submit a check-in, proxied to the backend).
func handleKRDetail(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireMember(w, r)
	if !ok {
		return
	}

	krID := strings.TrimPrefix(r.URL.Path, "/krs/")
	if krID == "" || strings.Contains(krID, "/") {
		http.NotFound(w, r)
		return
	}

	if r.Method == "GET" {
		renderKRDetail(w, r, sess, krID, "")
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		value, err := strconv.ParseFloat(r.FormValue("Value"), 64)
		if err != nil {
			renderKRDetail(w, r, sess, krID, "Enter a number for your progress value.")
			return
		}

		checkIn := kr.CheckIn{
			KRID:  krID,
			Value: value,
			Note:  r.FormValue("Note"),
		}
		if err := checkIn.Validate(); err != nil {
			renderKRDetail(w, r, sess, krID, err.Error())
			return
		}

		if err := backendClient.SubmitCheckIn(r.Context(), sess.BackendToken, checkIn); err != nil {
			renderKRDetail(w, r, sess, krID, backend.ErrorMessage(err))
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func renderKRDetail(w http.ResponseWriter, r *http.Request, sess middleware.Session, krID, errMsg string) {
	result, err := projections.QueryGetKRDetail(r.Context(),
		projections.GetKRDetailQuery{Token: sess.BackendToken, KRID: krID},
		projections.GetKRDetailDeps{Backend: backendClient})
	if err != nil {
		if backend.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	renderDashboardPage(w, r, "dash_kr_detail.html", map[string]any{
		"KR":         result.KR,
		"CanCheckIn": result.CanCheckIn,
		"CSRFToken":  csrf.Token(r),
		"Error":      errMsg,
	})
}

// handleLibraryIndex handles GET /library: published articles by topic.
func handleLibraryIndex(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireMember(w, r)
	if !ok {
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetLibraryReader(r.Context(),
		projections.GetLibraryReaderQuery{Token: sess.BackendToken},
		projections.GetLibraryReaderDeps{Backend: backendClient})
	if err != nil {
		internalError(w, err)
		return
	}

	renderDashboardPage(w, r, "dash_library.html", map[string]any{
		"Topics":  result.Topics,
		"ByTopic": result.ByTopic,
	})
}

// handleLibraryArticle handles GET /library/{slug}: the markdown reader.
func handleLibraryArticle(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireMember(w, r)
	if !ok {
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/library/")
	if slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}

	article, err := backendClient.GetPublishedLibraryContent(r.Context(), sess.BackendToken, slug)
	if err != nil {
		if backend.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	go trackPageView(sess.BackendToken, "/library/"+slug)

	renderDashboardPage(w, r, "dash_article.html", map[string]any{
		"Article": article,
		"Body":    renderMarkdown(article.Body),
	})
}

// handleSettings handles GET /settings and POST /settings (proxied update).
func handleSettings(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireMember(w, r)
	if !ok {
		return
	}

	if r.Method == "GET" {
		me, err := backendClient.Me(r.Context(), sess.BackendToken)
		if err != nil {
			internalError(w, err)
			return
		}
		renderDashboardPage(w, r, "dash_settings.html", map[string]any{
			"User":      me,
			"CSRFToken": csrf.Token(r),
			"Saved":     r.URL.Query().Get("saved") == "1",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := backend.SettingsInput{
			Name:           strings.TrimSpace(r.FormValue("Name")),
			Timezone:       strings.TrimSpace(r.FormValue("Timezone")),
			ReminderOptOut: r.FormValue("ReminderOptOut") == "on",
		}
		if err := backendClient.UpdateMySettings(r.Context(), sess.BackendToken, input); err != nil {
			me, meErr := backendClient.Me(r.Context(), sess.BackendToken)
			if meErr != nil {
				internalError(w, meErr)
				return
			}
			renderDashboardPage(w, r, "dash_settings.html", map[string]any{
				"User":      me,
				"CSRFToken": csrf.Token(r),
				"Error":     backend.ErrorMessage(err),
			})
			return
		}
		http.Redirect(w, r, "/settings?saved=1", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleFeedback handles GET /feedback (form) and POST /feedback (store
// locally and queue an alert email).
func handleFeedback(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireMember(w, r)
	if !ok {
		return
	}

	if r.Method == "GET" {
		renderDashboardPage(w, r, "dash_feedback.html", map[string]any{
			"CSRFToken":  csrf.Token(r),
			"Categories": []string{feedback.CategoryBug, feedback.CategoryIdea, feedback.CategoryOther},
			"Sent":       r.URL.Query().Get("sent") == "1",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		cmd := orchestrators.SubmitFeedbackCommand{
			ID:            generateID(),
			UserID:        sess.UserID,
			Category:      r.FormValue("Category"),
			Message:       r.FormValue("Message"),
			Page:          r.FormValue("Page"),
			UserAgent:     r.UserAgent(),
			AlertsAddress: alertsAddress,
		}
		deps := orchestrators.SubmitFeedbackDeps{
			FeedbackStore: stores.FeedbackStore,
			OutboxStore:   stores.OutboxStore,
			Now:           timeNow,
		}

		if _, err := orchestrators.ExecuteSubmitFeedback(r.Context(), cmd, deps); err != nil {
			renderDashboardPage(w, r, "dash_feedback.html", map[string]any{
				"CSRFToken":  csrf.Token(r),
				"Categories": []string{feedback.CategoryBug, feedback.CategoryIdea, feedback.CategoryOther},
				"Error":      err.Error(),
				"Message":    cmd.Message,
			})
			return
		}
		http.Redirect(w, r, "/feedback?sent=1", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

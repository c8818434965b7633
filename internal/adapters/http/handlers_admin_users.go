package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/csrf"

	"coachdesk/internal/application/listutil"
	"coachdesk/internal/application/orchestrators"
	"coachdesk/internal/application/projections"
	"coachdesk/internal/domain/user"
)

// handleUsers handles GET /users: the coaching-user table with search,
// status filter, sorting, and pagination (all backend-side).
func handleUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperator(w, r); !ok {
		return
	}

	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(),
		[]string{"name", "phone", "status", "last_active_at"},
		[]string{"status"},
	)

	result, err := projections.QueryGetUserList(r.Context(),
		projections.GetUserListQuery{Params: lp},
		projections.GetUserListDeps{Backend: backendClient})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderAdminPage(w, r, "admin_users.html", map[string]any{
			"Users":          result.Users,
			"PageInfo":       result.PageInfo,
			"Sort":           lp.Sort,
			"Dir":            lp.Dir,
			"Search":         lp.Search,
			"Status":         lp.Filters["status"],
			"PerPageOptions": listutil.PerPageOptions,
			"HasFilters":     lp.Search != "" || lp.Filters["status"] != "",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleUserDetail handles GET /users/{id} and POST /users/{id}/status.
func handleUserDetail(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireOperator(w, r)
	if !ok {
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "users" {
		http.NotFound(w, r)
		return
	}
	userID := parts[1]

	if r.Method == "POST" && len(parts) == 3 && parts[2] == "status" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.UpdateUserStatusInput{
			UserID:     userID,
			Status:     r.FormValue("Status"),
			Note:       r.FormValue("Note"),
			ActorID:    sess.AccountID,
			ActorEmail: sess.Email,
			IP:         clientIP(r),
		}
		deps := orchestrators.UpdateUserStatusDeps{
			Backend: backendClient,
			Audit:   stores.AuditStore,
		}
		if err := orchestrators.ExecuteUpdateUserStatus(r.Context(), input, deps); err != nil {
			renderUserDetail(w, r, userID, err.Error())
			return
		}
		http.Redirect(w, r, "/users/"+userID, http.StatusSeeOther)
		return
	}

	if r.Method == "GET" && len(parts) == 2 {
		renderUserDetail(w, r, userID, "")
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func renderUserDetail(w http.ResponseWriter, r *http.Request, userID, errMsg string) {
	result, err := projections.QueryGetUserDetail(r.Context(),
		projections.GetUserDetailQuery{UserID: userID},
		projections.GetUserDetailDeps{Backend: backendClient})
	if err != nil {
		internalError(w, err)
		return
	}

	renderAdminPage(w, r, "admin_user_detail.html", map[string]any{
		"User":                result.User,
		"KRs":                 result.KRs,
		"UpcomingTouchpoints": result.UpcomingTouchpoints,
		"PastTouchpoints":     result.PastTouchpoints,
		"StatusOptions":       user.ValidStatuses,
		"CSRFToken":           csrf.Token(r),
		"Error":               errMsg,
	})
}

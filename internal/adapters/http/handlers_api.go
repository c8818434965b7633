package web

import (
	"errors"
	"net/http"
	"strings"

	"coachdesk/internal/adapters/backend"
	"coachdesk/internal/adapters/http/middleware"
	"coachdesk/internal/domain/kr"
)

// resolveSessionToken returns the backend session token for an API proxy
// request. An explicit X-Session-Token header wins over the cookie session;
// programmatic clients carry the header, browsers carry the cookie.
func resolveSessionToken(r *http.Request) string {
	if header := r.Header.Get("X-Session-Token"); header != "" {
		return header
	}
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok && sess.IsMember() {
		return sess.BackendToken
	}
	return ""
}

// proxyError translates a backend failure into a JSON error response,
// preserving the backend's status code where it is meaningful.
func proxyError(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.Status, map[string]string{"error": apiErr.Message})
		return
	}
	internalError(w, err)
}

// handleAPIProxy forwards member-scoped JSON requests to the backend using
// the resolved session token.
func handleAPIProxy(w http.ResponseWriter, r *http.Request) {
	token := resolveSessionToken(r)
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing session token"})
		return
	}

	ctx := r.Context()
	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	parts := strings.Split(strings.Trim(path, "/"), "/")

	switch {
	case r.Method == "GET" && path == "/me":
		me, err := backendClient.Me(ctx, token)
		if err != nil {
			proxyError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, me)

	case r.Method == "GET" && path == "/me/krs":
		krs, err := backendClient.ListMyKRs(ctx, token)
		if err != nil {
			proxyError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, krs)

	case r.Method == "GET" && len(parts) == 3 && parts[0] == "me" && parts[1] == "krs":
		k, err := backendClient.GetMyKR(ctx, token, parts[2])
		if err != nil {
			proxyError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, k)

	case r.Method == "POST" && len(parts) == 4 && parts[0] == "me" && parts[1] == "krs" && parts[3] == "checkins":
		var checkIn kr.CheckIn
		if err := strictDecode(r, &checkIn); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		checkIn.KRID = parts[2]
		if err := checkIn.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if err := backendClient.SubmitCheckIn(ctx, token, checkIn); err != nil {
			proxyError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	case r.Method == "GET" && path == "/me/touchpoints":
		touchpoints, err := backendClient.ListMyTouchpoints(ctx, token)
		if err != nil {
			proxyError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, touchpoints)

	case r.Method == "GET" && path == "/library":
		items, err := backendClient.ListPublishedLibrary(ctx, token)
		if err != nil {
			proxyError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)

	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown endpoint"})
	}
}

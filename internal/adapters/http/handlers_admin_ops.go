package web

import (
	"net/http"
	"strconv"
	"time"

	"coachdesk/internal/application/projections"
)

// handleScriptRuns handles GET /script-runs: recent backend script
// executions with status and output excerpt.
func handleScriptRuns(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperator(w, r); !ok {
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	result, err := projections.QueryGetScriptRuns(r.Context(),
		projections.GetScriptRunsQuery{Limit: limit},
		projections.GetScriptRunsDeps{Backend: backendClient, Now: timeNow})
	if err != nil {
		internalError(w, err)
		return
	}

	renderAdminPage(w, r, "admin_script_runs.html", map[string]any{
		"Runs":        result.Runs,
		"FailedCount": result.FailedCount,
	})
}

// handleReports handles GET /reports: the usage dashboard.
func handleReports(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireOperator(w, r); !ok {
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetReports(r.Context(),
		projections.GetReportsQuery{Period: r.URL.Query().Get("period")},
		projections.GetReportsDeps{Backend: backendClient})
	if err != nil {
		internalError(w, err)
		return
	}

	renderAdminPage(w, r, "admin_reports.html", map[string]any{
		"Usage":         result.Usage,
		"OTPSuccessPct": result.OTPSuccessPct,
		"TotalMessages": result.TotalMessages,
		"Period":        r.URL.Query().Get("period"),
	})
}

// handlePerf handles GET /perf: a JSON snapshot of in-process request and
// query timings. Admin role only; the data names internal store methods.
func handlePerf(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireOperator(w, r)
	if !ok {
		return
	}
	if sess.Role != "admin" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		http.Error(w, "perf collection disabled", http.StatusNotFound)
		return
	}

	since := timeNow().Add(-15 * time.Minute)
	if v := r.URL.Query().Get("minutes"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 24*60 {
			since = timeNow().Add(-time.Duration(n) * time.Minute)
		}
	}

	writeJSON(w, http.StatusOK, perfCollector.Snapshot(since, 20))
}

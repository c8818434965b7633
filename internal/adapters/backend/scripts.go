package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"coachdesk/internal/domain/report"
	"coachdesk/internal/domain/scriptrun"
)

// ListScriptRuns fetches the most recent backend script executions.
func (c *Client) ListScriptRuns(ctx context.Context, limit int) ([]scriptrun.Run, error) {
	path := "/api/v1/script-runs"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}
	var runs []scriptrun.Run
	err := c.doJSON(ctx, "scripts_list", http.MethodGet, path, authAdmin, "", nil, &runs)
	return runs, err
}

// GetUsageReport fetches the usage numbers for a reporting period. Period
// strings are backend-defined ("last_7_days", "2026-08", ...).
func (c *Client) GetUsageReport(ctx context.Context, period string) (report.Usage, error) {
	path := "/api/v1/reports/usage"
	if period != "" {
		params := url.Values{}
		params.Set("period", period)
		path += "?" + params.Encode()
	}
	var usage report.Usage
	err := c.doJSON(ctx, "reports_usage", http.MethodGet, path, authAdmin, "", nil, &usage)
	return usage, err
}

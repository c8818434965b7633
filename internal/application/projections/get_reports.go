package projections

import (
	"context"

	domainReport "coachdesk/internal/domain/report"
)

// GetReportsQuery carries query parameters.
type GetReportsQuery struct {
	Period string // backend-defined period string; empty for default
}

// GetReportsResult carries the usage report prepared for rendering.
type GetReportsResult struct {
	Usage         domainReport.Usage
	OTPSuccessPct float64
	TotalMessages int
}

// GetReportsDeps holds dependencies for GetReports.
type GetReportsDeps struct {
	Backend BackendOps
}

// QueryGetReports retrieves the usage report for a period. All aggregation
// is backend-side; this projection only derives display values.
// PRE: Period is empty or a backend-recognised period string
// POST: Returns the usage report with derived percentages
func QueryGetReports(ctx context.Context, query GetReportsQuery, deps GetReportsDeps) (GetReportsResult, error) {
	usage, err := deps.Backend.GetUsageReport(ctx, query.Period)
	if err != nil {
		return GetReportsResult{}, err
	}

	return GetReportsResult{
		Usage:         usage,
		OTPSuccessPct: usage.OTPSuccessPercent(),
		TotalMessages: usage.MessagesIn + usage.MessagesOut,
	}, nil
}

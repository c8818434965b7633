package projections

import (
	"context"
	"time"

	"github.com/samber/lo"

	domainScript "coachdesk/internal/domain/scriptrun"
)

// ScriptRunRow is one row of the script runs table.
type ScriptRunRow struct {
	ID          string
	Script      string
	Status      string
	TriggeredBy string
	StartedAt   string
	Duration    string
	Failed      bool
	Excerpt     string
}

// GetScriptRunsQuery carries query parameters.
type GetScriptRunsQuery struct {
	Limit int
}

// GetScriptRunsResult carries the query result.
type GetScriptRunsResult struct {
	Runs        []ScriptRunRow
	FailedCount int
}

// GetScriptRunsDeps holds dependencies for GetScriptRuns.
type GetScriptRunsDeps struct {
	Backend BackendOps
	Now     func() time.Time
}

// QueryGetScriptRuns retrieves recent backend script executions.
// PRE: Limit > 0 (defaulted to 50 otherwise)
// POST: Returns runs with durations computed against Now
func QueryGetScriptRuns(ctx context.Context, query GetScriptRunsQuery, deps GetScriptRunsDeps) (GetScriptRunsResult, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	runs, err := deps.Backend.ListScriptRuns(ctx, limit)
	if err != nil {
		return GetScriptRunsResult{}, err
	}

	rows := lo.Map(runs, func(r domainScript.Run, _ int) ScriptRunRow {
		return ScriptRunRow{
			ID:          r.ID,
			Script:      r.Script,
			Status:      r.Status,
			TriggeredBy: r.TriggeredBy,
			StartedAt:   r.StartedAt.Format("2 Jan 2006 15:04"),
			Duration:    r.Duration(now()).Round(time.Second).String(),
			Failed:      r.Failed(),
			Excerpt:     r.OutputExcerpt(200),
		}
	})

	failed := lo.CountBy(rows, func(r ScriptRunRow) bool { return r.Failed })

	return GetScriptRunsResult{Runs: rows, FailedCount: failed}, nil
}

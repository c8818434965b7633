package scriptrun

import "time"

// Run status constants, as reported by the backend's script runner.
const (
	StatusRunning   = "running"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Run is one execution of a backend maintenance or simulation script. Runs
// are read-only in the console; triggering them is out of scope.
type Run struct {
	ID          string    `json:"id"`
	Script      string    `json:"script"`
	Status      string    `json:"status"`
	TriggeredBy string    `json:"triggered_by"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Output      string    `json:"output"`
}

// IsFinished reports whether the run has reached a terminal state.
// INVARIANT: Run fields are not mutated
func (r *Run) IsFinished() bool {
	return r.Status == StatusSucceeded || r.Status == StatusFailed
}

// Failed reports whether the run ended in failure.
// INVARIANT: Run fields are not mutated
func (r *Run) Failed() bool {
	return r.Status == StatusFailed
}

// Duration returns the wall time of a finished run, or the elapsed time since
// start for a running one.
func (r *Run) Duration(now time.Time) time.Duration {
	if r.StartedAt.IsZero() {
		return 0
	}
	if r.IsFinished() && !r.FinishedAt.IsZero() {
		return r.FinishedAt.Sub(r.StartedAt)
	}
	return now.Sub(r.StartedAt)
}

// OutputExcerpt returns the first n characters of the output for table cells.
func (r *Run) OutputExcerpt(n int) string {
	if len(r.Output) <= n {
		return r.Output
	}
	return r.Output[:n] + "…"
}

package scriptrun

import (
	"testing"
	"time"
)

func TestIsFinishedAndFailed(t *testing.T) {
	r := Run{Status: StatusRunning}
	if r.IsFinished() || r.Failed() {
		t.Error("running run should not be finished")
	}
	r.Status = StatusFailed
	if !r.IsFinished() || !r.Failed() {
		t.Error("failed run should be finished and failed")
	}
	r.Status = StatusSucceeded
	if !r.IsFinished() || r.Failed() {
		t.Error("succeeded run should be finished, not failed")
	}
}

func TestDuration(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	now := start.Add(90 * time.Second)

	r := Run{Status: StatusRunning, StartedAt: start}
	if got := r.Duration(now); got != 90*time.Second {
		t.Errorf("expected 90s elapsed, got %v", got)
	}

	r.Status = StatusSucceeded
	r.FinishedAt = start.Add(30 * time.Second)
	if got := r.Duration(now); got != 30*time.Second {
		t.Errorf("expected 30s wall time, got %v", got)
	}

	empty := Run{}
	if got := empty.Duration(now); got != 0 {
		t.Errorf("expected 0 for unstarted run, got %v", got)
	}
}

func TestOutputExcerpt(t *testing.T) {
	r := Run{Output: "hello world"}
	if got := r.OutputExcerpt(5); got != "hello…" {
		t.Errorf("expected truncated output, got %q", got)
	}
	if got := r.OutputExcerpt(100); got != "hello world" {
		t.Errorf("expected full output, got %q", got)
	}
}

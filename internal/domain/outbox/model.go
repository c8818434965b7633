package outbox

import (
	"errors"
	"time"
)

// Status constants for outbox entry lifecycle.
const (
	StatusPending   = "pending"
	StatusRetrying  = "retrying"
	StatusDone      = "done"
	StatusFailed    = "failed"
	StatusAbandoned = "abandoned"
)

// Action type constants. Email is the only external integration retried
// locally; everything else goes through the backend.
const (
	ActionTypeEmail = "email"
)

// Domain errors.
var (
	ErrEmptyActionType = errors.New("action type is required")
	ErrEmptyPayload    = errors.New("payload is required")
)

// DefaultMaxAttempts caps retries for entries that don't set their own limit.
const DefaultMaxAttempts = 5

// Entry is one deferred external action awaiting delivery or retry.
type Entry struct {
	ID              string
	ActionType      string
	Payload         string // JSON payload for replay
	Status          string
	Attempts        int
	MaxAttempts     int
	LastAttemptedAt time.Time
	CreatedAt       time.Time
	ErrorMessage    string // last failure, empty once delivered
}

// Validate checks that the Entry has valid data and applies defaults.
// POST: Returns nil if valid; MaxAttempts defaulted when unset
func (e *Entry) Validate() error {
	if e.ActionType == "" {
		return ErrEmptyActionType
	}
	if e.Payload == "" {
		return ErrEmptyPayload
	}
	if e.CreatedAt.IsZero() {
		return errors.New("created_at must be set")
	}
	if e.MaxAttempts <= 0 {
		e.MaxAttempts = DefaultMaxAttempts
	}
	return nil
}

// CanRetry reports whether the worker may attempt this entry again.
// INVARIANT: Entry fields are not mutated
func (e *Entry) CanRetry() bool {
	switch e.Status {
	case StatusPending, StatusRetrying, StatusFailed:
		return e.Attempts < e.MaxAttempts
	}
	return false
}

// IsTerminal reports whether the entry needs no further work.
// INVARIANT: Entry fields are not mutated
func (e *Entry) IsTerminal() bool {
	if e.Status == StatusDone || e.Status == StatusAbandoned {
		return true
	}
	return e.Status == StatusFailed && e.Attempts >= e.MaxAttempts
}

// MarkAttempt records that the worker is trying the entry now.
// POST: Attempts incremented, LastAttemptedAt updated, status retrying
func (e *Entry) MarkAttempt() {
	e.Attempts++
	e.LastAttemptedAt = time.Now()
	e.Status = StatusRetrying
}

// MarkSuccess marks the entry delivered.
func (e *Entry) MarkSuccess() {
	e.Status = StatusDone
	e.ErrorMessage = ""
}

// MarkFailed records a failure; the entry stays retryable until MaxAttempts.
func (e *Entry) MarkFailed(err error) {
	e.ErrorMessage = err.Error()
	if e.Attempts >= e.MaxAttempts {
		e.Status = StatusFailed
	}
}

// MarkAbandoned marks the entry dropped by an operator.
func (e *Entry) MarkAbandoned() {
	e.Status = StatusAbandoned
}

// NextRetryDelay returns the exponential backoff delay for the next attempt,
// capped at maxDelay.
func (e *Entry) NextRetryDelay(baseDelay, maxDelay time.Duration) time.Duration {
	delay := baseDelay * (1 << e.Attempts)
	if delay > maxDelay {
		return maxDelay
	}
	return delay
}

package kr

import (
	"errors"
	"strings"
	"time"
)

// Status constants for a Key Result.
const (
	StatusOnTrack   = "on_track"
	StatusAtRisk    = "at_risk"
	StatusAchieved  = "achieved"
	StatusAbandoned = "abandoned"
)

// Domain errors
var (
	ErrNegativeValue = errors.New("check-in value cannot be negative")
	ErrNoteTooLong   = errors.New("check-in note cannot exceed 500 characters")
)

// MaxNoteLength bounds the free-text note on a check-in.
const MaxNoteLength = 500

// KeyResult is a user-facing coaching metric record. The backend owns its
// lifecycle; the dashboard displays it and submits check-ins.
type KeyResult struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Unit         string    `json:"unit"` // e.g. "sessions/week", "kg"
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	Status       string    `json:"status"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CheckIn is a member-submitted progress update against a KR.
type CheckIn struct {
	KRID  string  `json:"kr_id"`
	Value float64 `json:"value"`
	Note  string  `json:"note"`
}

// Validate checks a check-in before it is proxied to the backend.
// POST: Returns nil if valid, error otherwise
func (c *CheckIn) Validate() error {
	if c.Value < 0 {
		return ErrNegativeValue
	}
	if len(c.Note) > MaxNoteLength {
		return ErrNoteTooLong
	}
	return nil
}

// Progress returns completion as a fraction in [0, 1].
// INVARIANT: KeyResult fields are not mutated
func (k *KeyResult) Progress() float64 {
	if k.TargetValue <= 0 {
		return 0
	}
	p := k.CurrentValue / k.TargetValue
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// IsOpen reports whether the member can still check in against this KR.
// INVARIANT: KeyResult fields are not mutated
func (k *KeyResult) IsOpen() bool {
	return k.Status == StatusOnTrack || k.Status == StatusAtRisk
}

// StatusLabel returns a human-readable status for display.
func (k *KeyResult) StatusLabel() string {
	return strings.ReplaceAll(k.Status, "_", " ")
}

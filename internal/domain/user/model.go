package user

import (
	"errors"
	"strings"
	"time"
)

// Status constants for the coaching lifecycle.
const (
	StatusActive  = "active"
	StatusPaused  = "paused"
	StatusChurned = "churned"
)

// ValidStatuses contains all statuses the admin console may set.
var ValidStatuses = []string{StatusActive, StatusPaused, StatusChurned}

// Domain errors
var (
	ErrInvalidStatus = errors.New("status must be 'active', 'paused', or 'churned'")
	ErrEmptyPhone    = errors.New("phone number cannot be empty")
)

// User mirrors the backend's user record. It is fetched per request and never
// persisted locally.
type User struct {
	ID             string    `json:"id"`
	Phone          string    `json:"phone"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	Timezone       string    `json:"timezone"`
	Locale         string    `json:"locale"`
	CoachingPlan   string    `json:"coaching_plan"`
	ReminderOptOut bool      `json:"reminder_opt_out"`
	CreatedAt      time.Time `json:"created_at"`
	LastActiveAt   time.Time `json:"last_active_at"`
}

// IsValidStatus reports whether s is a status the console may submit.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Validate checks the fields the admin console is allowed to edit.
// POST: Returns nil if valid, error otherwise
func (u *User) Validate() error {
	if strings.TrimSpace(u.Phone) == "" {
		return ErrEmptyPhone
	}
	if !IsValidStatus(u.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// IsActive reports whether the user is currently in coaching.
// INVARIANT: User fields are not mutated
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// DisplayName returns the name, falling back to the phone number.
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.Name) != "" {
		return u.Name
	}
	return u.Phone
}

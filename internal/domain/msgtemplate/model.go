package msgtemplate

import (
	"time"
)

// Approval status constants, as reported by Twilio/WhatsApp.
const (
	StatusApproved = "approved"
	StatusPending  = "pending"
	StatusRejected = "rejected"
)

// Category constants for WhatsApp template review.
const (
	CategoryUtility   = "utility"
	CategoryMarketing = "marketing"
)

// Template mirrors a Twilio WhatsApp message template as returned by the
// backend. Approval and delivery are Twilio's business; the console only
// lists templates and triggers test sends.
type Template struct {
	SID        string    `json:"sid"`
	Name       string    `json:"name"`
	Language   string    `json:"language"`
	Category   string    `json:"category"`
	Status     string    `json:"status"`
	Body       string    `json:"body"`
	Variables  []string  `json:"variables"`
	LastSentAt time.Time `json:"last_sent_at"`
}

// IsApproved reports whether Twilio will accept sends of this template.
// INVARIANT: Template fields are not mutated
func (t *Template) IsApproved() bool {
	return t.Status == StatusApproved
}

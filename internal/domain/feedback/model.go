package feedback

import (
	"errors"
	"time"
)

// Category constants for feedback submissions.
const (
	CategoryBug   = "bug"
	CategoryIdea  = "idea"
	CategoryOther = "other"
)

// Status constants for triage.
const (
	StatusNew      = "new"
	StatusSeen     = "seen"
	StatusResolved = "resolved"
)

// Submission is a piece of feedback sent from the coaching dashboard. It is
// stored locally and forwarded to the team by email.
// INVARIANT: Submissions never contain cookies, session tokens, or passwords.
type Submission struct {
	ID          string
	UserID      string
	Category    string
	Message     string
	Page        string // dashboard path at time of submission
	UserAgent   string
	Status      string
	SubmittedAt time.Time
}

// Validate checks that the required fields are present.
// POST: returns error if Message is empty or Category is unknown
func (s *Submission) Validate() error {
	if s.Message == "" {
		return errors.New("message is required")
	}
	switch s.Category {
	case CategoryBug, CategoryIdea, CategoryOther:
	default:
		return errors.New("category must be 'bug', 'idea', or 'other'")
	}
	return nil
}

package touchpoint

import "time"

// Status constants for a scheduled touchpoint, as reported by the backend.
const (
	StatusUpcoming  = "upcoming"
	StatusSent      = "sent"
	StatusCompleted = "completed"
	StatusSkipped   = "skipped"
)

// Kind constants describing what the touchpoint delivers.
const (
	KindPodcast     = "podcast"
	KindDailyPrompt = "daily_prompt"
	KindAssessment  = "assessment"
	KindReview      = "review"
)

// Touchpoint is a named coaching prompt slot on the member's schedule
// (e.g. "podcast_kickoff"). Scheduling is backend-owned.
type Touchpoint struct {
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Kind         string    `json:"kind"`
	Status       string    `json:"status"`
	ScheduledFor time.Time `json:"scheduled_for"`
	CompletedAt  time.Time `json:"completed_at"`
}

// IsUpcoming reports whether the touchpoint is still ahead of the member.
// INVARIANT: Touchpoint fields are not mutated
func (t *Touchpoint) IsUpcoming() bool {
	return t.Status == StatusUpcoming
}

// IsDone reports whether the touchpoint needs no further attention.
// INVARIANT: Touchpoint fields are not mutated
func (t *Touchpoint) IsDone() bool {
	return t.Status == StatusCompleted || t.Status == StatusSkipped
}

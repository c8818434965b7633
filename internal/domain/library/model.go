package library

import (
	"errors"
	"strings"
	"time"
)

// Topic constants. The backend accepts free-form topics; these are the ones
// the console offers in the edit form.
const (
	TopicNutrition = "nutrition"
	TopicMovement  = "movement"
	TopicSleep     = "sleep"
	TopicMindset   = "mindset"
)

// KnownTopics are the choices the edit form offers.
var KnownTopics = []string{TopicNutrition, TopicMovement, TopicSleep, TopicMindset}

// Domain errors
var (
	ErrEmptyTitle = errors.New("content title cannot be empty")
	ErrEmptyBody  = errors.New("content body cannot be empty")
	ErrEmptySlug  = errors.New("content slug cannot be empty")
)

// Content is a library article shown to members in the coaching dashboard
// and linked from WhatsApp messages.
type Content struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Topic     string    `json:"topic"`
	Body      string    `json:"body"` // markdown
	Published bool      `json:"published"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the fields the edit form may submit.
// POST: Returns nil if valid, error otherwise
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Slug) == "" {
		return ErrEmptySlug
	}
	if strings.TrimSpace(c.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(c.Body) == "" {
		return ErrEmptyBody
	}
	return nil
}

// IsReadable reports whether members may open this item.
// INVARIANT: Content fields are not mutated
func (c *Content) IsReadable() bool {
	return c.Published
}

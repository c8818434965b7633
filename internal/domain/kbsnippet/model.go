package kbsnippet

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxTitleLength = 200
	MaxSlugLength  = 100
)

// Domain errors
var (
	ErrEmptyTitle  = errors.New("snippet title cannot be empty")
	ErrEmptyBody   = errors.New("snippet body cannot be empty")
	ErrInvalidSlug = errors.New("slug must be lowercase letters, digits, and hyphens")
)

// Snippet is a knowledge-base fragment the backend splices into coaching
// conversations. The console edits it; retrieval happens backend-side.
type Snippet struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Body      string    `json:"body"` // markdown
	Tags      []string  `json:"tags"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the fields the edit form may submit.
// POST: Returns nil if valid, error otherwise
func (s *Snippet) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return ErrEmptyTitle
	}
	if len(s.Title) > MaxTitleLength {
		return errors.New("snippet title cannot exceed 200 characters")
	}
	if strings.TrimSpace(s.Body) == "" {
		return ErrEmptyBody
	}
	if !IsValidSlug(s.Slug) {
		return ErrInvalidSlug
	}
	return nil
}

// IsValidSlug reports whether slug is non-empty, within length, and contains
// only lowercase letters, digits, and hyphens.
func IsValidSlug(slug string) bool {
	if slug == "" || len(slug) > MaxSlugLength {
		return false
	}
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}

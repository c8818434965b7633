package prompttemplate

import (
	"errors"
	"strings"
	"time"
)

// Version status constants. Exactly one version per template is active at a
// time; promotion is performed by the backend.
const (
	StatusDraft   = "draft"
	StatusActive  = "active"
	StatusRetired = "retired"
)

// Domain errors
var (
	ErrEmptyBody       = errors.New("prompt body cannot be empty")
	ErrEmptyTouchpoint = errors.New("touchpoint is required")
	ErrNotDraft        = errors.New("only draft versions can be promoted")
)

// Template is an LLM prompt slot keyed by touchpoint (e.g. "podcast_kickoff").
// The backend assembles and runs prompts; the console only edits and promotes
// versions.
type Template struct {
	ID         string    `json:"id"`
	Touchpoint string    `json:"touchpoint"`
	Name       string    `json:"name"`
	ActiveVer  int       `json:"active_version"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Version is one revision of a template's prompt body.
type Version struct {
	ID         string    `json:"id"`
	TemplateID string    `json:"template_id"`
	Version    int       `json:"version"`
	Body       string    `json:"body"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate checks the fields the edit form may submit.
// POST: Returns nil if valid, error otherwise
func (v *Version) Validate() error {
	if strings.TrimSpace(v.Body) == "" {
		return ErrEmptyBody
	}
	return nil
}

// IsDraft reports whether the version can still be edited or promoted.
// INVARIANT: Version fields are not mutated
func (v *Version) IsDraft() bool {
	return v.Status == StatusDraft
}

// IsActive reports whether this is the version the backend currently runs.
// INVARIANT: Version fields are not mutated
func (v *Version) IsActive() bool {
	return v.Status == StatusActive
}

// Placeholders lists the {{variable}} names referenced by the body, in order
// of first appearance. Used by the console to show what the backend will
// substitute.
func Placeholders(body string) []string {
	var names []string
	seen := make(map[string]bool)
	for i := 0; i < len(body)-1; i++ {
		if body[i] != '{' || body[i+1] != '{' {
			continue
		}
		end := strings.Index(body[i+2:], "}}")
		if end < 0 {
			break
		}
		name := strings.TrimSpace(body[i+2 : i+2+end])
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		i += end + 3
	}
	return names
}

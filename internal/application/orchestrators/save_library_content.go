package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"coachdesk/internal/domain/audit"
	"coachdesk/internal/domain/library"
)

// BackendLibraryAdmin defines the backend operations needed for library editing.
type BackendLibraryAdmin interface {
	SaveLibraryContent(ctx context.Context, item library.Content) error
}

// SaveLibraryContentInput carries the edited library item fields.
type SaveLibraryContentInput struct {
	Slug       string
	Title      string
	Topic      string
	Body       string
	Published  bool
	ActorID    string
	ActorEmail string
	IP         string
}

// SaveLibraryContentDeps holds dependencies for SaveLibraryContent.
type SaveLibraryContentDeps struct {
	Backend BackendLibraryAdmin
	Audit   AuditRecorder
}

// ExecuteSaveLibraryContent validates and writes a library article through
// the backend.
// PRE: Slug and Title are non-empty, Topic is a known topic
// POST: Article saved; audit event recorded
func ExecuteSaveLibraryContent(ctx context.Context, input SaveLibraryContentInput, deps SaveLibraryContentDeps) error {
	item := library.Content{
		Slug:      strings.TrimSpace(input.Slug),
		Title:     strings.TrimSpace(input.Title),
		Topic:     input.Topic,
		Body:      input.Body,
		Published: input.Published,
	}
	if err := item.Validate(); err != nil {
		return err
	}

	if err := deps.Backend.SaveLibraryContent(ctx, item); err != nil {
		return err
	}

	slog.Info("content_event", "event", "library_content_saved", "slug", item.Slug, "published", item.Published)

	recordAudit(ctx, deps.Audit, audit.NewEvent(input.ActorID, input.ActorEmail, audit.CategoryContent, audit.ActionUpdate).
		WithResource("library_content", item.Slug).
		WithDescription("saved library article "+item.Slug).
		WithIP(input.IP))

	return nil
}

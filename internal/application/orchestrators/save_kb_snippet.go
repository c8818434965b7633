package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"coachdesk/internal/domain/audit"
	"coachdesk/internal/domain/kbsnippet"
)

// BackendKbAdmin defines the backend operations needed for KB snippet editing.
type BackendKbAdmin interface {
	SaveKbSnippet(ctx context.Context, s kbsnippet.Snippet) error
}

// SaveKbSnippetInput carries the edited snippet fields.
type SaveKbSnippetInput struct {
	Slug       string
	Title      string
	Body       string
	ActorID    string
	ActorEmail string
	IP         string
}

// SaveKbSnippetDeps holds dependencies for SaveKbSnippet.
type SaveKbSnippetDeps struct {
	Backend BackendKbAdmin
	Audit   AuditRecorder
}

// ExecuteSaveKbSnippet validates and writes a knowledge-base snippet through
// the backend. The backend is the source of truth; nothing is kept locally.
// PRE: Slug is a valid snippet slug
// POST: Snippet saved; audit event recorded
func ExecuteSaveKbSnippet(ctx context.Context, input SaveKbSnippetInput, deps SaveKbSnippetDeps) error {
	snippet := kbsnippet.Snippet{
		Slug:  strings.TrimSpace(input.Slug),
		Title: strings.TrimSpace(input.Title),
		Body:  input.Body,
	}
	if err := snippet.Validate(); err != nil {
		return err
	}

	if err := deps.Backend.SaveKbSnippet(ctx, snippet); err != nil {
		return err
	}

	slog.Info("content_event", "event", "kb_snippet_saved", "slug", snippet.Slug)

	recordAudit(ctx, deps.Audit, audit.NewEvent(input.ActorID, input.ActorEmail, audit.CategoryContent, audit.ActionUpdate).
		WithResource("kb_snippet", snippet.Slug).
		WithDescription("saved KB snippet "+snippet.Slug).
		WithIP(input.IP))

	return nil
}

package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"coachdesk/internal/domain/audit"
	"coachdesk/internal/domain/prompttemplate"
)

// BackendPromptAdmin defines the backend operations needed for prompt editing.
type BackendPromptAdmin interface {
	CreatePromptDraft(ctx context.Context, templateID, body, notes string) (prompttemplate.Version, error)
	PromotePromptVersion(ctx context.Context, templateID, versionID string) error
}

// CreatePromptDraftInput carries the new draft body.
type CreatePromptDraftInput struct {
	TemplateID string
	Body       string
	Notes      string
	ActorID    string
	ActorEmail string
	IP         string
}

// PromptDraftDeps holds dependencies for the prompt orchestrators.
type PromptDraftDeps struct {
	Backend BackendPromptAdmin
	Audit   AuditRecorder
}

var ErrEmptyPromptBody = errors.New("prompt body cannot be empty")

// ExecuteCreatePromptDraft creates a new draft version of a prompt template.
// Editing never touches the active version; promotion is a separate step.
// PRE: TemplateID is non-empty, Body is non-empty
// POST: Returns the created draft version; audit event recorded
func ExecuteCreatePromptDraft(ctx context.Context, input CreatePromptDraftInput, deps PromptDraftDeps) (prompttemplate.Version, error) {
	if input.TemplateID == "" {
		return prompttemplate.Version{}, errors.New("template ID is required")
	}
	if strings.TrimSpace(input.Body) == "" {
		return prompttemplate.Version{}, ErrEmptyPromptBody
	}

	ver, err := deps.Backend.CreatePromptDraft(ctx, input.TemplateID, input.Body, input.Notes)
	if err != nil {
		return prompttemplate.Version{}, err
	}

	slog.Info("prompt_event", "event", "draft_created", "template_id", input.TemplateID, "version_id", ver.ID)

	recordAudit(ctx, deps.Audit, audit.NewEvent(input.ActorID, input.ActorEmail, audit.CategoryPrompt, audit.ActionCreate).
		WithResource("prompt_version", ver.ID).
		WithDescription("created draft for template "+input.TemplateID).
		WithIP(input.IP))

	return ver, nil
}

// PromotePromptVersionInput identifies the version to make active.
type PromotePromptVersionInput struct {
	TemplateID string
	VersionID  string
	ActorID    string
	ActorEmail string
	IP         string
}

// ExecutePromotePromptVersion makes a draft version the active one.
// PRE: TemplateID and VersionID are non-empty
// POST: Backend has switched the active version; audit event recorded
func ExecutePromotePromptVersion(ctx context.Context, input PromotePromptVersionInput, deps PromptDraftDeps) error {
	if input.TemplateID == "" || input.VersionID == "" {
		return errors.New("template ID and version ID are required")
	}

	if err := deps.Backend.PromotePromptVersion(ctx, input.TemplateID, input.VersionID); err != nil {
		return err
	}

	slog.Info("prompt_event", "event", "version_promoted", "template_id", input.TemplateID, "version_id", input.VersionID)

	recordAudit(ctx, deps.Audit, audit.NewEvent(input.ActorID, input.ActorEmail, audit.CategoryPrompt, audit.ActionPromote).
		WithResource("prompt_version", input.VersionID).
		WithDescription("promoted version for template "+input.TemplateID).
		WithIP(input.IP))

	return nil
}

package backend

import (
	"context"
	"net/http"
	"net/url"

	"coachdesk/internal/domain/prompttemplate"
)

// ListPromptTemplates fetches all prompt templates, one per touchpoint.
func (c *Client) ListPromptTemplates(ctx context.Context) ([]prompttemplate.Template, error) {
	var templates []prompttemplate.Template
	err := c.doJSON(ctx, "prompts_list", http.MethodGet, "/api/v1/prompt-templates", authAdmin, "", nil, &templates)
	return templates, err
}

// ListPromptVersions fetches a template's version history, newest first.
func (c *Client) ListPromptVersions(ctx context.Context, templateID string) ([]prompttemplate.Version, error) {
	var versions []prompttemplate.Version
	path := "/api/v1/prompt-templates/" + url.PathEscape(templateID) + "/versions"
	err := c.doJSON(ctx, "prompts_versions", http.MethodGet, path, authAdmin, "", nil, &versions)
	return versions, err
}

// CreatePromptDraft saves a new draft version of a template. Editing never
// touches the active version; promotion is a separate step.
// PRE: body is non-empty
// POST: Returns the backend-assigned version record
func (c *Client) CreatePromptDraft(ctx context.Context, templateID, body, notes string) (prompttemplate.Version, error) {
	payload := map[string]string{"body": body, "notes": notes}
	var version prompttemplate.Version
	path := "/api/v1/prompt-templates/" + url.PathEscape(templateID) + "/versions"
	err := c.doJSON(ctx, "prompts_draft", http.MethodPost, path, authAdmin, "", payload, &version)
	return version, err
}

// PromotePromptVersion marks a draft version active. The backend retires the
// previously active version atomically.
// PRE: the version is a draft
// POST: The promoted version is what the backend runs from now on
func (c *Client) PromotePromptVersion(ctx context.Context, templateID, versionID string) error {
	path := "/api/v1/prompt-templates/" + url.PathEscape(templateID) + "/versions/" + url.PathEscape(versionID) + "/promote"
	return c.doJSON(ctx, "prompts_promote", http.MethodPost, path, authAdmin, "", nil, nil)
}

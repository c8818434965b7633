package projections

import (
	"context"
	"sort"

	"github.com/samber/lo"

	domainPrompt "coachdesk/internal/domain/prompttemplate"
)

// PromptVersionView is one version row with its extracted placeholders.
type PromptVersionView struct {
	ID           string
	Version      int
	Status       string
	Notes        string
	CreatedBy    string
	CreatedAt    string
	Placeholders []string
	Body         string
}

// PromptTemplateView is a template with its versions, newest first.
type PromptTemplateView struct {
	ID         string
	Touchpoint string
	Name       string
	ActiveVer  int
	Versions   []PromptVersionView
}

// GetPromptTemplatesResult groups templates by touchpoint for the list page.
type GetPromptTemplatesResult struct {
	Touchpoints  []string // sorted group keys
	ByTouchpoint map[string][]PromptTemplateView
}

// GetPromptTemplatesDeps holds dependencies for GetPromptTemplates.
type GetPromptTemplatesDeps struct {
	Backend BackendPrompts
}

// QueryGetPromptTemplates retrieves prompt templates with full version history,
// grouped by touchpoint.
// PRE: admin credentials configured
// POST: Returns templates grouped by touchpoint; versions newest first
func QueryGetPromptTemplates(ctx context.Context, deps GetPromptTemplatesDeps) (GetPromptTemplatesResult, error) {
	templates, err := deps.Backend.ListPromptTemplates(ctx)
	if err != nil {
		return GetPromptTemplatesResult{}, err
	}

	views := make([]PromptTemplateView, 0, len(templates))
	for _, t := range templates {
		versions, err := deps.Backend.ListPromptVersions(ctx, t.ID)
		if err != nil {
			return GetPromptTemplatesResult{}, err
		}
		sort.Slice(versions, func(i, j int) bool {
			return versions[i].Version > versions[j].Version
		})
		views = append(views, PromptTemplateView{
			ID:         t.ID,
			Touchpoint: t.Touchpoint,
			Name:       t.Name,
			ActiveVer:  t.ActiveVer,
			Versions: lo.Map(versions, func(v domainPrompt.Version, _ int) PromptVersionView {
				return PromptVersionView{
					ID:           v.ID,
					Version:      v.Version,
					Status:       v.Status,
					Notes:        v.Notes,
					CreatedBy:    v.CreatedBy,
					CreatedAt:    v.CreatedAt.Format("2 Jan 2006 15:04"),
					Placeholders: domainPrompt.Placeholders(v.Body),
					Body:         v.Body,
				}
			}),
		})
	}

	grouped := lo.GroupBy(views, func(v PromptTemplateView) string { return v.Touchpoint })
	keys := lo.Keys(grouped)
	sort.Strings(keys)

	return GetPromptTemplatesResult{
		Touchpoints:  keys,
		ByTouchpoint: grouped,
	}, nil
}

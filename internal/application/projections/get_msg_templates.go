package projections

import (
	"context"
	"sort"

	"github.com/samber/lo"

	domainMsg "coachdesk/internal/domain/msgtemplate"
)

// MsgTemplateRow is one row of the WhatsApp template table, with the
// classification badges the console shows next to each template.
type MsgTemplateRow struct {
	SID          string
	Name         string
	Language     string
	Category     string
	Status       string
	Approved     bool
	OutOfSession bool
	Reawake      bool
	Touchpoint   string
	LastSentAt   string // formatted, empty if never sent
}

// GetMsgTemplatesResult carries the query result.
type GetMsgTemplatesResult struct {
	Templates     []MsgTemplateRow
	ApprovedCount int
	PendingCount  int
}

// GetMsgTemplatesDeps holds dependencies for GetMsgTemplates.
type GetMsgTemplatesDeps struct {
	Backend BackendTemplates
}

// QueryGetMsgTemplates retrieves WhatsApp templates with classification badges.
// PRE: admin credentials configured
// POST: Returns templates sorted by name with out-of-session/reawake flags
func QueryGetMsgTemplates(ctx context.Context, deps GetMsgTemplatesDeps) (GetMsgTemplatesResult, error) {
	templates, err := deps.Backend.ListMsgTemplates(ctx)
	if err != nil {
		return GetMsgTemplatesResult{}, err
	}

	rows := lo.Map(templates, func(t domainMsg.Template, _ int) MsgTemplateRow {
		row := MsgTemplateRow{
			SID:          t.SID,
			Name:         t.Name,
			Language:     t.Language,
			Category:     t.Category,
			Status:       t.Status,
			Approved:     t.IsApproved(),
			OutOfSession: domainMsg.IsOutOfSessionTemplate(t.Name),
			Reawake:      domainMsg.IsDailyPromptReawakeTemplate(t.Name),
			Touchpoint:   domainMsg.TouchpointFromName(t.Name),
		}
		if !t.LastSentAt.IsZero() {
			row.LastSentAt = t.LastSentAt.Format("2 Jan 2006 15:04")
		}
		return row
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })

	approved := lo.CountBy(rows, func(r MsgTemplateRow) bool { return r.Approved })

	return GetMsgTemplatesResult{
		Templates:     rows,
		ApprovedCount: approved,
		PendingCount:  len(rows) - approved,
	}, nil
}

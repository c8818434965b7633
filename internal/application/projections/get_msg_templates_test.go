package projections

import (
	"context"
	"testing"

	domainMsg "coachdesk/internal/domain/msgtemplate"
)

type mockBackendTemplates struct {
	templates []domainMsg.Template
}

func (m *mockBackendTemplates) ListMsgTemplates(_ context.Context) ([]domainMsg.Template, error) {
	return m.templates, nil
}

// TestQueryGetMsgTemplates_Badges verifies classification badges on each row.
func TestQueryGetMsgTemplates_Badges(t *testing.T) {
	mock := &mockBackendTemplates{templates: []domainMsg.Template{
		{SID: "HX1", Name: "weekly_review_en", Status: domainMsg.StatusApproved},
		{SID: "HX2", Name: "daily_prompt_reawake_v2", Status: domainMsg.StatusApproved},
		{SID: "HX3", Name: "session_followup", Status: domainMsg.StatusPending},
	}}

	res, err := QueryGetMsgTemplates(context.Background(), GetMsgTemplatesDeps{Backend: mock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Templates) != 3 {
		t.Fatalf("rows = %d, want 3", len(res.Templates))
	}

	byName := make(map[string]MsgTemplateRow)
	for _, r := range res.Templates {
		byName[r.Name] = r
	}

	wr := byName["weekly_review_en"]
	if !wr.OutOfSession || wr.Reawake {
		t.Errorf("weekly_review_en badges = out:%v reawake:%v, want out-of-session only", wr.OutOfSession, wr.Reawake)
	}
	if wr.Touchpoint != "weekly_review" {
		t.Errorf("weekly_review_en touchpoint = %q", wr.Touchpoint)
	}

	dp := byName["daily_prompt_reawake_v2"]
	if !dp.OutOfSession || !dp.Reawake {
		t.Errorf("daily_prompt_reawake_v2 badges = out:%v reawake:%v, want both", dp.OutOfSession, dp.Reawake)
	}

	sf := byName["session_followup"]
	if sf.OutOfSession || sf.Reawake {
		t.Errorf("session_followup badges = out:%v reawake:%v, want neither", sf.OutOfSession, sf.Reawake)
	}
	if sf.Approved {
		t.Error("pending template marked approved")
	}
}

// TestQueryGetMsgTemplates_SortAndCounts verifies name sorting and the
// approved/pending summary counters.
func TestQueryGetMsgTemplates_SortAndCounts(t *testing.T) {
	mock := &mockBackendTemplates{templates: []domainMsg.Template{
		{SID: "HX2", Name: "reengagement_en", Status: domainMsg.StatusPending},
		{SID: "HX1", Name: "assessment_reminder_en", Status: domainMsg.StatusApproved},
		{SID: "HX3", Name: "podcast_kickoff_en", Status: domainMsg.StatusApproved},
	}}

	res, err := QueryGetMsgTemplates(context.Background(), GetMsgTemplatesDeps{Backend: mock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Templates[0].Name != "assessment_reminder_en" {
		t.Errorf("first row = %q, want assessment_reminder_en", res.Templates[0].Name)
	}
	if res.ApprovedCount != 2 || res.PendingCount != 1 {
		t.Errorf("counts = %d approved, %d pending; want 2/1", res.ApprovedCount, res.PendingCount)
	}
}

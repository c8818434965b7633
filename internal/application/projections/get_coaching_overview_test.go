package projections

import (
	"context"
	"testing"
	"time"

	domainKr "coachdesk/internal/domain/kr"
	domainLibrary "coachdesk/internal/domain/library"
	domainTouchpoint "coachdesk/internal/domain/touchpoint"
	domainUser "coachdesk/internal/domain/user"
)

type mockBackendCoaching struct {
	me          domainUser.User
	krs         []domainKr.KeyResult
	touchpoints []domainTouchpoint.Touchpoint
	library     []domainLibrary.Content
	lastToken   string
}

func (m *mockBackendCoaching) Me(_ context.Context, token string) (domainUser.User, error) {
	m.lastToken = token
	return m.me, nil
}

func (m *mockBackendCoaching) ListMyKRs(_ context.Context, token string) ([]domainKr.KeyResult, error) {
	return m.krs, nil
}

func (m *mockBackendCoaching) GetMyKR(_ context.Context, token, id string) (domainKr.KeyResult, error) {
	for _, k := range m.krs {
		if k.ID == id {
			return k, nil
		}
	}
	return domainKr.KeyResult{}, nil
}

func (m *mockBackendCoaching) ListMyTouchpoints(_ context.Context, token string) ([]domainTouchpoint.Touchpoint, error) {
	return m.touchpoints, nil
}

func (m *mockBackendCoaching) ListPublishedLibrary(_ context.Context, token string) ([]domainLibrary.Content, error) {
	return m.library, nil
}

func (m *mockBackendCoaching) GetPublishedLibraryContent(_ context.Context, token, slug string) (domainLibrary.Content, error) {
	for _, c := range m.library {
		if c.Slug == slug {
			return c, nil
		}
	}
	return domainLibrary.Content{}, nil
}

// TestQueryGetCoachingOverview_NextTouchpoint verifies the earliest upcoming
// touchpoint is selected, ignoring completed ones.
func TestQueryGetCoachingOverview_NextTouchpoint(t *testing.T) {
	mock := &mockBackendCoaching{
		me: domainUser.User{ID: "u1", Name: "Mere"},
		touchpoints: []domainTouchpoint.Touchpoint{
			{Slug: "podcast_kickoff", Status: domainTouchpoint.StatusCompleted, ScheduledFor: fixedTime.Add(-72 * time.Hour)},
			{Slug: "assessment_reminder", Status: domainTouchpoint.StatusUpcoming, ScheduledFor: fixedTime.Add(96 * time.Hour)},
			{Slug: "weekly_review", Status: domainTouchpoint.StatusUpcoming, ScheduledFor: fixedTime.Add(24 * time.Hour)},
		},
	}

	res, err := QueryGetCoachingOverview(context.Background(), GetCoachingOverviewQuery{Token: "tok-1"},
		GetCoachingOverviewDeps{Backend: mock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.lastToken != "tok-1" {
		t.Errorf("token = %q, want tok-1", mock.lastToken)
	}
	if res.NextTouchpoint == nil {
		t.Fatal("NextTouchpoint is nil, want weekly_review")
	}
	if res.NextTouchpoint.Slug != "weekly_review" {
		t.Errorf("NextTouchpoint = %q, want weekly_review", res.NextTouchpoint.Slug)
	}
}

// TestQueryGetCoachingOverview_NoUpcoming verifies nil when nothing is scheduled.
func TestQueryGetCoachingOverview_NoUpcoming(t *testing.T) {
	mock := &mockBackendCoaching{
		me: domainUser.User{ID: "u1"},
		touchpoints: []domainTouchpoint.Touchpoint{
			{Slug: "podcast_kickoff", Status: domainTouchpoint.StatusCompleted},
		},
	}

	res, err := QueryGetCoachingOverview(context.Background(), GetCoachingOverviewQuery{Token: "tok-1"},
		GetCoachingOverviewDeps{Backend: mock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NextTouchpoint != nil {
		t.Errorf("NextTouchpoint = %+v, want nil", res.NextTouchpoint)
	}
}

// TestQueryGetCoachingOverview_OpenKRCount verifies achieved KRs are excluded.
func TestQueryGetCoachingOverview_OpenKRCount(t *testing.T) {
	mock := &mockBackendCoaching{
		me: domainUser.User{ID: "u1"},
		krs: []domainKr.KeyResult{
			{ID: "kr1", Status: domainKr.StatusOnTrack},
			{ID: "kr2", Status: domainKr.StatusAtRisk},
			{ID: "kr3", Status: domainKr.StatusAchieved},
		},
	}

	res, err := QueryGetCoachingOverview(context.Background(), GetCoachingOverviewQuery{Token: "tok-1"},
		GetCoachingOverviewDeps{Backend: mock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OpenKRCount != 2 {
		t.Errorf("OpenKRCount = %d, want 2", res.OpenKRCount)
	}
	if len(res.KRs) != 3 {
		t.Errorf("KRs = %d, want 3", len(res.KRs))
	}
}

package projections

import (
	"context"
	"testing"
	"time"

	"coachdesk/internal/adapters/backend"
	"coachdesk/internal/application/listutil"
	domainKr "coachdesk/internal/domain/kr"
	domainTouchpoint "coachdesk/internal/domain/touchpoint"
	domainUser "coachdesk/internal/domain/user"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// mockBackendUsers implements BackendUsers for testing.
type mockBackendUsers struct {
	page        backend.UserPage
	lastQuery   backend.ListUsersQuery
	users       map[string]domainUser.User
	krs         map[string][]domainKr.KeyResult
	touchpoints map[string][]domainTouchpoint.Touchpoint
}

func (m *mockBackendUsers) ListUsers(_ context.Context, q backend.ListUsersQuery) (backend.UserPage, error) {
	m.lastQuery = q
	return m.page, nil
}

func (m *mockBackendUsers) GetUser(_ context.Context, id string) (domainUser.User, error) {
	return m.users[id], nil
}

func (m *mockBackendUsers) ListUserKRs(_ context.Context, id string) ([]domainKr.KeyResult, error) {
	return m.krs[id], nil
}

func (m *mockBackendUsers) ListUserTouchpoints(_ context.Context, id string) ([]domainTouchpoint.Touchpoint, error) {
	return m.touchpoints[id], nil
}

// TestQueryGetUserList_ForwardsParams verifies list params reach the backend.
func TestQueryGetUserList_ForwardsParams(t *testing.T) {
	mock := &mockBackendUsers{page: backend.UserPage{Total: 0}}

	_, err := QueryGetUserList(context.Background(), GetUserListQuery{
		Params: listutil.ListParams{
			PageParams:   listutil.PageParams{Page: 2, PerPage: 50},
			SortParams:   listutil.SortParams{Sort: "last_active_at", Dir: "desc"},
			FilterParams: listutil.FilterParams{Search: "ana", Filters: map[string]string{"status": "paused"}},
		},
	}, GetUserListDeps{Backend: mock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := mock.lastQuery
	if q.Search != "ana" || q.Status != "paused" {
		t.Errorf("search/status not forwarded: %+v", q)
	}
	if q.Sort != "last_active_at" || q.Dir != "desc" {
		t.Errorf("sort not forwarded: %+v", q)
	}
	if q.Page != 2 || q.PerPage != 50 {
		t.Errorf("pagination not forwarded: %+v", q)
	}
}

// TestQueryGetUserList_ShapesRows verifies row shaping and pagination metadata.
func TestQueryGetUserList_ShapesRows(t *testing.T) {
	mock := &mockBackendUsers{page: backend.UserPage{
		Users: []domainUser.User{
			{ID: "u1", Phone: "+5511999998888", Name: "Ana", Status: "active", CoachingPlan: "standard", LastActiveAt: fixedTime},
			{ID: "u2", Phone: "+5511888887777", Status: "paused"},
		},
		Total: 42,
	}}

	res, err := QueryGetUserList(context.Background(), GetUserListQuery{
		Params: listutil.ListParams{PageParams: listutil.PageParams{Page: 1, PerPage: 20}},
	}, GetUserListDeps{Backend: mock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Users) != 2 {
		t.Fatalf("rows = %d, want 2", len(res.Users))
	}
	if res.Users[0].DisplayName != "Ana" {
		t.Errorf("DisplayName = %q, want Ana", res.Users[0].DisplayName)
	}
	// Unnamed user falls back to phone
	if res.Users[1].DisplayName != "+5511888887777" {
		t.Errorf("DisplayName = %q, want phone fallback", res.Users[1].DisplayName)
	}
	if res.Users[1].LastActiveAt != "" {
		t.Errorf("LastActiveAt = %q, want empty for never-active", res.Users[1].LastActiveAt)
	}
	if res.PageInfo.Total != 42 {
		t.Errorf("Total = %d, want 42", res.PageInfo.Total)
	}
	if res.PageInfo.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", res.PageInfo.TotalPages)
	}
}

// TestQueryGetUserDetail_SplitsTouchpoints verifies the upcoming/past split.
func TestQueryGetUserDetail_SplitsTouchpoints(t *testing.T) {
	mock := &mockBackendUsers{
		users: map[string]domainUser.User{"u1": {ID: "u1", Name: "Ana"}},
		krs: map[string][]domainKr.KeyResult{"u1": {
			{ID: "kr1", Title: "Walk 10k steps", TargetValue: 7, CurrentValue: 3.5, Status: "on_track"},
		}},
		touchpoints: map[string][]domainTouchpoint.Touchpoint{"u1": {
			{Slug: "podcast_kickoff", Status: domainTouchpoint.StatusCompleted},
			{Slug: "weekly_review", Status: domainTouchpoint.StatusUpcoming},
		}},
	}

	res, err := QueryGetUserDetail(context.Background(), GetUserDetailQuery{UserID: "u1"},
		GetUserDetailDeps{Backend: mock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.UpcomingTouchpoints) != 1 || res.UpcomingTouchpoints[0].Slug != "weekly_review" {
		t.Errorf("upcoming = %+v, want weekly_review", res.UpcomingTouchpoints)
	}
	if len(res.PastTouchpoints) != 1 || res.PastTouchpoints[0].Slug != "podcast_kickoff" {
		t.Errorf("past = %+v, want podcast_kickoff", res.PastTouchpoints)
	}
	if len(res.KRs) != 1 {
		t.Fatalf("KRs = %d, want 1", len(res.KRs))
	}
	if res.KRs[0].ProgressPct != 50 {
		t.Errorf("ProgressPct = %d, want 50", res.KRs[0].ProgressPct)
	}
}

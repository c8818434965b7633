package projections

import (
	"context"

	"github.com/samber/lo"

	domainKr "coachdesk/internal/domain/kr"
	domainTouchpoint "coachdesk/internal/domain/touchpoint"
	domainUser "coachdesk/internal/domain/user"
)

// GetUserDetailQuery carries query parameters.
type GetUserDetailQuery struct {
	UserID string
}

// KRView is a key result prepared for rendering.
type KRView struct {
	ID           string
	Title        string
	Unit         string
	TargetValue  float64
	CurrentValue float64
	Status       string
	StatusLabel  string
	ProgressPct  int // 0..100 for the progress bar
}

// GetUserDetailResult carries the query result.
type GetUserDetailResult struct {
	User                domainUser.User
	KRs                 []KRView
	UpcomingTouchpoints []domainTouchpoint.Touchpoint
	PastTouchpoints     []domainTouchpoint.Touchpoint
}

// GetUserDetailDeps holds dependencies for GetUserDetail.
type GetUserDetailDeps struct {
	Backend BackendUsers
}

// krView shapes a key result for templates.
func krView(k domainKr.KeyResult) KRView {
	return KRView{
		ID:           k.ID,
		Title:        k.Title,
		Unit:         k.Unit,
		TargetValue:  k.TargetValue,
		CurrentValue: k.CurrentValue,
		Status:       k.Status,
		StatusLabel:  k.StatusLabel(),
		ProgressPct:  int(k.Progress() * 100),
	}
}

// QueryGetUserDetail retrieves one user with their KRs and touchpoint schedule.
// PRE: UserID is non-empty
// POST: Returns the user view; touchpoints split into upcoming and past
func QueryGetUserDetail(ctx context.Context, query GetUserDetailQuery, deps GetUserDetailDeps) (GetUserDetailResult, error) {
	u, err := deps.Backend.GetUser(ctx, query.UserID)
	if err != nil {
		return GetUserDetailResult{}, err
	}

	krs, err := deps.Backend.ListUserKRs(ctx, query.UserID)
	if err != nil {
		return GetUserDetailResult{}, err
	}

	touchpoints, err := deps.Backend.ListUserTouchpoints(ctx, query.UserID)
	if err != nil {
		return GetUserDetailResult{}, err
	}

	upcoming := lo.Filter(touchpoints, func(t domainTouchpoint.Touchpoint, _ int) bool {
		return t.IsUpcoming()
	})
	past := lo.Filter(touchpoints, func(t domainTouchpoint.Touchpoint, _ int) bool {
		return !t.IsUpcoming()
	})

	return GetUserDetailResult{
		User:                u,
		KRs:                 lo.Map(krs, func(k domainKr.KeyResult, _ int) KRView { return krView(k) }),
		UpcomingTouchpoints: upcoming,
		PastTouchpoints:     past,
	}, nil
}

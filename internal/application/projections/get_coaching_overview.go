package projections

import (
	"context"
	"sort"

	"github.com/samber/lo"

	domainKr "coachdesk/internal/domain/kr"
	domainTouchpoint "coachdesk/internal/domain/touchpoint"
	domainUser "coachdesk/internal/domain/user"
)

// GetCoachingOverviewQuery carries the member's session token.
type GetCoachingOverviewQuery struct {
	Token string
}

// GetCoachingOverviewResult is the dashboard home view.
type GetCoachingOverviewResult struct {
	User           domainUser.User
	KRs            []KRView
	OpenKRCount    int
	NextTouchpoint *domainTouchpoint.Touchpoint // nil when nothing scheduled
}

// GetCoachingOverviewDeps holds dependencies for GetCoachingOverview.
type GetCoachingOverviewDeps struct {
	Backend BackendCoaching
}

// QueryGetCoachingOverview retrieves the member's dashboard home data.
// PRE: Token is a valid backend session token
// POST: Returns profile, KRs, and the next upcoming touchpoint
func QueryGetCoachingOverview(ctx context.Context, query GetCoachingOverviewQuery, deps GetCoachingOverviewDeps) (GetCoachingOverviewResult, error) {
	me, err := deps.Backend.Me(ctx, query.Token)
	if err != nil {
		return GetCoachingOverviewResult{}, err
	}

	krs, err := deps.Backend.ListMyKRs(ctx, query.Token)
	if err != nil {
		return GetCoachingOverviewResult{}, err
	}

	touchpoints, err := deps.Backend.ListMyTouchpoints(ctx, query.Token)
	if err != nil {
		return GetCoachingOverviewResult{}, err
	}

	upcoming := lo.Filter(touchpoints, func(t domainTouchpoint.Touchpoint, _ int) bool {
		return t.IsUpcoming()
	})
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledFor.Before(upcoming[j].ScheduledFor)
	})

	result := GetCoachingOverviewResult{
		User: me,
		KRs:  lo.Map(krs, func(k domainKr.KeyResult, _ int) KRView { return krView(k) }),
		OpenKRCount: lo.CountBy(krs, func(k domainKr.KeyResult) bool {
			return k.IsOpen()
		}),
	}
	if len(upcoming) > 0 {
		result.NextTouchpoint = &upcoming[0]
	}
	return result, nil
}

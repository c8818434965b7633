package projections

import (
	"context"
)

// GetKRDetailQuery identifies the member's key result.
type GetKRDetailQuery struct {
	Token string
	KRID  string
}

// GetKRDetailResult is the check-in page view.
type GetKRDetailResult struct {
	KR         KRView
	CanCheckIn bool
}

// GetKRDetailDeps holds dependencies for GetKRDetail.
type GetKRDetailDeps struct {
	Backend BackendCoaching
}

// QueryGetKRDetail retrieves one key result for the check-in form.
// PRE: Token is valid; KRID is non-empty
// POST: Returns the KR view; CanCheckIn is false for closed KRs
func QueryGetKRDetail(ctx context.Context, query GetKRDetailQuery, deps GetKRDetailDeps) (GetKRDetailResult, error) {
	k, err := deps.Backend.GetMyKR(ctx, query.Token, query.KRID)
	if err != nil {
		return GetKRDetailResult{}, err
	}

	return GetKRDetailResult{
		KR:         krView(k),
		CanCheckIn: k.IsOpen(),
	}, nil
}

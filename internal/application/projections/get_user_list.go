package projections

import (
	"context"

	"github.com/samber/lo"

	"coachdesk/internal/adapters/backend"
	"coachdesk/internal/application/listutil"
	domainUser "coachdesk/internal/domain/user"
)

// GetUserListQuery carries query parameters.
type GetUserListQuery struct {
	Params listutil.ListParams
}

// UserRow is one row of the users table.
type UserRow struct {
	ID           string
	DisplayName  string
	Phone        string
	Status       string
	CoachingPlan string
	LastActiveAt string // formatted, empty if never
}

// GetUserListResult carries the query result.
type GetUserListResult struct {
	Users    []UserRow
	PageInfo listutil.PageInfo
}

// GetUserListDeps holds dependencies for GetUserList.
type GetUserListDeps struct {
	Backend BackendUsers
}

// QueryGetUserList retrieves a page of coaching users. Search, filter, sort,
// and pagination all happen backend-side; this projection only shapes rows.
// PRE: Valid query parameters
// POST: Returns one page of users plus pagination metadata
func QueryGetUserList(ctx context.Context, query GetUserListQuery, deps GetUserListDeps) (GetUserListResult, error) {
	p := query.Params

	page, err := deps.Backend.ListUsers(ctx, backend.ListUsersQuery{
		Search:  p.Search,
		Status:  p.Filters["status"],
		Sort:    p.Sort,
		Dir:     p.Dir,
		Page:    p.Page,
		PerPage: p.PerPage,
	})
	if err != nil {
		return GetUserListResult{}, err
	}

	rows := lo.Map(page.Users, func(u domainUser.User, _ int) UserRow {
		row := UserRow{
			ID:           u.ID,
			DisplayName:  u.DisplayName(),
			Phone:        u.Phone,
			Status:       u.Status,
			CoachingPlan: u.CoachingPlan,
		}
		if !u.LastActiveAt.IsZero() {
			row.LastActiveAt = u.LastActiveAt.Format("2 Jan 2006 15:04")
		}
		return row
	})

	return GetUserListResult{
		Users:    rows,
		PageInfo: listutil.NewPageInfo(p.Page, p.PerPage, page.Total),
	}, nil
}

package projections

import (
	"context"
	"sort"

	"github.com/samber/lo"

	domainLibrary "coachdesk/internal/domain/library"
)

// GetLibraryReaderQuery carries the member's session token.
type GetLibraryReaderQuery struct {
	Token string
}

// LibraryReaderRow is one article in the member-facing library index.
type LibraryReaderRow struct {
	Slug  string
	Title string
	Topic string
}

// GetLibraryReaderResult groups published articles by topic.
type GetLibraryReaderResult struct {
	Topics  []string // sorted group keys
	ByTopic map[string][]LibraryReaderRow
}

// GetLibraryReaderDeps holds dependencies for GetLibraryReader.
type GetLibraryReaderDeps struct {
	Backend BackendCoaching
}

// QueryGetLibraryReader retrieves the published library for the dashboard,
// grouped by topic. Unpublished drafts never reach this view; the backend
// filters them out for session-scoped requests.
// PRE: Token is a valid backend session token
// POST: Returns published articles grouped by topic
func QueryGetLibraryReader(ctx context.Context, query GetLibraryReaderQuery, deps GetLibraryReaderDeps) (GetLibraryReaderResult, error) {
	items, err := deps.Backend.ListPublishedLibrary(ctx, query.Token)
	if err != nil {
		return GetLibraryReaderResult{}, err
	}

	rows := lo.FilterMap(items, func(c domainLibrary.Content, _ int) (LibraryReaderRow, bool) {
		if !c.IsReadable() {
			return LibraryReaderRow{}, false
		}
		return LibraryReaderRow{Slug: c.Slug, Title: c.Title, Topic: c.Topic}, true
	})

	grouped := lo.GroupBy(rows, func(r LibraryReaderRow) string { return r.Topic })
	keys := lo.Keys(grouped)
	sort.Strings(keys)

	return GetLibraryReaderResult{Topics: keys, ByTopic: grouped}, nil
}

package projections

import (
	"context"

	"github.com/samber/lo"

	domainKb "coachdesk/internal/domain/kbsnippet"
	domainLibrary "coachdesk/internal/domain/library"
)

// SnippetRow is one row of the KB snippet table.
type SnippetRow struct {
	Slug      string
	Title     string
	Tags      []string
	UpdatedBy string
	UpdatedAt string
}

// LibraryRow is one row of the library table.
type LibraryRow struct {
	Slug      string
	Title     string
	Topic     string
	Published bool
	UpdatedAt string
}

// GetContentOverviewResult carries both content listings for the admin page.
type GetContentOverviewResult struct {
	Snippets       []SnippetRow
	Library        []LibraryRow
	PublishedCount int
	DraftCount     int
}

// GetContentOverviewDeps holds dependencies for GetContentOverview.
type GetContentOverviewDeps struct {
	Backend BackendContent
}

// QueryGetContentOverview retrieves KB snippets and library articles.
// PRE: admin credentials configured
// POST: Returns both listings with publish counts for the library
func QueryGetContentOverview(ctx context.Context, deps GetContentOverviewDeps) (GetContentOverviewResult, error) {
	snippets, err := deps.Backend.ListKbSnippets(ctx)
	if err != nil {
		return GetContentOverviewResult{}, err
	}

	library, err := deps.Backend.ListLibrary(ctx)
	if err != nil {
		return GetContentOverviewResult{}, err
	}

	published := lo.CountBy(library, func(c domainLibrary.Content) bool { return c.Published })

	return GetContentOverviewResult{
		Snippets: lo.Map(snippets, func(s domainKb.Snippet, _ int) SnippetRow {
			return SnippetRow{
				Slug:      s.Slug,
				Title:     s.Title,
				Tags:      s.Tags,
				UpdatedBy: s.UpdatedBy,
				UpdatedAt: s.UpdatedAt.Format("2 Jan 2006"),
			}
		}),
		Library: lo.Map(library, func(c domainLibrary.Content, _ int) LibraryRow {
			return LibraryRow{
				Slug:      c.Slug,
				Title:     c.Title,
				Topic:     c.Topic,
				Published: c.Published,
				UpdatedAt: c.UpdatedAt.Format("2 Jan 2006"),
			}
		}),
		PublishedCount: published,
		DraftCount:     len(library) - published,
	}, nil
}

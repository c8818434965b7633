package backend

import (
	"context"
	"net/http"
	"net/url"

	"coachdesk/internal/domain/kbsnippet"
	"coachdesk/internal/domain/library"
)

// --- KB snippets ---

// ListKbSnippets fetches all knowledge-base snippets.
func (c *Client) ListKbSnippets(ctx context.Context) ([]kbsnippet.Snippet, error) {
	var snippets []kbsnippet.Snippet
	err := c.doJSON(ctx, "kb_list", http.MethodGet, "/api/v1/kb-snippets", authAdmin, "", nil, &snippets)
	return snippets, err
}

// GetKbSnippet fetches one snippet by slug.
func (c *Client) GetKbSnippet(ctx context.Context, slug string) (kbsnippet.Snippet, error) {
	var s kbsnippet.Snippet
	path := "/api/v1/kb-snippets/" + url.PathEscape(slug)
	err := c.doJSON(ctx, "kb_get", http.MethodGet, path, authAdmin, "", nil, &s)
	return s, err
}

// SaveKbSnippet creates or updates a snippet, keyed by slug.
// PRE: s has been validated
// POST: Backend has persisted the snippet
func (c *Client) SaveKbSnippet(ctx context.Context, s kbsnippet.Snippet) error {
	path := "/api/v1/kb-snippets/" + url.PathEscape(s.Slug)
	return c.doJSON(ctx, "kb_save", http.MethodPut, path, authAdmin, "", s, nil)
}

// --- Library content ---

// ListLibrary fetches all library content, published or not.
func (c *Client) ListLibrary(ctx context.Context) ([]library.Content, error) {
	var items []library.Content
	err := c.doJSON(ctx, "library_list", http.MethodGet, "/api/v1/library", authAdmin, "", nil, &items)
	return items, err
}

// GetLibraryContent fetches one library item by slug with admin credentials.
func (c *Client) GetLibraryContent(ctx context.Context, slug string) (library.Content, error) {
	var item library.Content
	path := "/api/v1/library/" + url.PathEscape(slug)
	err := c.doJSON(ctx, "library_get", http.MethodGet, path, authAdmin, "", nil, &item)
	return item, err
}

// SaveLibraryContent creates or updates a library item, keyed by slug.
// PRE: item has been validated
// POST: Backend has persisted the item
func (c *Client) SaveLibraryContent(ctx context.Context, item library.Content) error {
	path := "/api/v1/library/" + url.PathEscape(item.Slug)
	return c.doJSON(ctx, "library_save", http.MethodPut, path, authAdmin, "", item, nil)
}

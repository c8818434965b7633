package web

import (
	"net/url"
	"strings"
	"testing"
)

func TestPaginationQueryEscapesValues(t *testing.T) {
	got := string(paginationQuery(2, "name", "asc", "smith & jones", "paused", 20))

	if strings.Contains(got, "smith & jones") {
		t.Errorf("search must be escaped, got %q", got)
	}
	q, err := url.ParseQuery(got)
	if err != nil {
		t.Fatalf("result should parse as a query string: %v", err)
	}
	if q.Get("q") != "smith & jones" {
		t.Errorf("q = %q, want the original search back", q.Get("q"))
	}
	if q.Get("page") != "2" || q.Get("per_page") != "20" {
		t.Errorf("paging params wrong in %q", got)
	}
	if q.Get("sort") != "name" || q.Get("dir") != "asc" {
		t.Errorf("sort params wrong in %q", got)
	}
}

func TestPaginationQueryOmitsEmptyFilters(t *testing.T) {
	got := string(paginationQuery(1, "", "", "", "", 0))
	if got != "page=1" {
		t.Errorf("minimal query = %q, want page=1", got)
	}
}

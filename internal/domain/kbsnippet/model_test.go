package kbsnippet

import "testing"

func TestValidate_Valid(t *testing.T) {
	s := Snippet{Slug: "sleep-hygiene-basics", Title: "Sleep hygiene", Body: "Go to bed."}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_EmptyTitle(t *testing.T) {
	s := Snippet{Slug: "a", Title: " ", Body: "x"}
	if err := s.Validate(); err != ErrEmptyTitle {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestValidate_EmptyBody(t *testing.T) {
	s := Snippet{Slug: "a", Title: "t", Body: ""}
	if err := s.Validate(); err != ErrEmptyBody {
		t.Errorf("expected ErrEmptyBody, got %v", err)
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"a", "sleep-101", "kr-check-in"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	invalid := []string{"", "Sleep", "a_b", "a b", "héllo"}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

package user

import "testing"

func TestValidate_ValidUser(t *testing.T) {
	u := User{Phone: "+6421555123", Status: StatusActive}
	if err := u.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_EmptyPhone(t *testing.T) {
	u := User{Phone: "  ", Status: StatusActive}
	if err := u.Validate(); err != ErrEmptyPhone {
		t.Errorf("expected ErrEmptyPhone, got %v", err)
	}
}

func TestValidate_BadStatus(t *testing.T) {
	u := User{Phone: "+6421555123", Status: "deleted"}
	if err := u.Validate(); err != ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range ValidStatuses {
		if !IsValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if IsValidStatus("") || IsValidStatus("archived") {
		t.Error("unexpected status accepted")
	}
}

func TestDisplayName_FallsBackToPhone(t *testing.T) {
	u := User{Phone: "+6421555123"}
	if got := u.DisplayName(); got != "+6421555123" {
		t.Errorf("expected phone fallback, got %q", got)
	}
	u.Name = "Mere"
	if got := u.DisplayName(); got != "Mere" {
		t.Errorf("expected name, got %q", got)
	}
}

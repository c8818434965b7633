package kr

import "testing"

func TestProgress(t *testing.T) {
	k := KeyResult{TargetValue: 4, CurrentValue: 3}
	if got := k.Progress(); got != 0.75 {
		t.Errorf("expected 0.75, got %v", got)
	}
}

func TestProgress_Clamped(t *testing.T) {
	k := KeyResult{TargetValue: 4, CurrentValue: 6}
	if got := k.Progress(); got != 1 {
		t.Errorf("expected clamp to 1, got %v", got)
	}
	k.CurrentValue = -1
	if got := k.Progress(); got != 0 {
		t.Errorf("expected clamp to 0, got %v", got)
	}
}

func TestProgress_ZeroTarget(t *testing.T) {
	k := KeyResult{TargetValue: 0, CurrentValue: 5}
	if got := k.Progress(); got != 0 {
		t.Errorf("expected 0 for zero target, got %v", got)
	}
}

func TestCheckInValidate(t *testing.T) {
	c := CheckIn{KRID: "kr-1", Value: 2, Note: "felt good"}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Value = -1
	if err := c.Validate(); err != ErrNegativeValue {
		t.Errorf("expected ErrNegativeValue, got %v", err)
	}

	c.Value = 1
	c.Note = string(make([]byte, MaxNoteLength+1))
	if err := c.Validate(); err != ErrNoteTooLong {
		t.Errorf("expected ErrNoteTooLong, got %v", err)
	}
}

func TestIsOpen(t *testing.T) {
	open := []string{StatusOnTrack, StatusAtRisk}
	for _, s := range open {
		k := KeyResult{Status: s}
		if !k.IsOpen() {
			t.Errorf("expected %q to be open", s)
		}
	}
	closed := []string{StatusAchieved, StatusAbandoned, ""}
	for _, s := range closed {
		k := KeyResult{Status: s}
		if k.IsOpen() {
			t.Errorf("expected %q to be closed", s)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	k := KeyResult{Status: StatusOnTrack}
	if got := k.StatusLabel(); got != "on track" {
		t.Errorf("expected 'on track', got %q", got)
	}
}

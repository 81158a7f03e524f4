package measurement

import (
	"errors"
	"math"
	"testing"
)

func TestPitchMultiplier(t *testing.T) {
	tests := []struct {
		pitch    Pitch
		expected float64
	}{
		{Pitch{Rise: 0, Run: 12}, 1},
		{Pitch{Rise: 6, Run: 12}, math.Sqrt(1.25)},
		{Pitch{Rise: 12, Run: 12}, math.Sqrt2},
	}
	for _, tt := range tests {
		if got := tt.pitch.Multiplier(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Multiplier(%s) failed: expected %v, got %v", tt.pitch, tt.expected, got)
		}
	}
}

func TestPitchValidate(t *testing.T) {
	if err := DefaultPitch.Validate(); err != nil {
		t.Errorf("default pitch should be valid: %v", err)
	}
	for _, p := range []Pitch{{6, 0}, {6, -12}, {-1, 12}} {
		if err := p.Validate(); !errors.Is(err, ErrInvalidPitch) {
			t.Errorf("Validate(%s) should fail with ErrInvalidPitch, got %v", p, err)
		}
	}
}

func TestPitchString(t *testing.T) {
	if got := DefaultPitch.String(); got != "6/12" {
		t.Errorf("String failed: expected 6/12, got %s", got)
	}
	if got := (Pitch{Rise: 4.5, Run: 12}).String(); got != "4.5/12" {
		t.Errorf("String failed: expected 4.5/12, got %s", got)
	}
}

func TestCommonPitches(t *testing.T) {
	pitches := CommonPitches()
	if len(pitches) != 12 {
		t.Fatalf("expected 12 common pitches, got %d", len(pitches))
	}
	if pitches[0] != (Pitch{1, 12}) || pitches[11] != (Pitch{12, 12}) {
		t.Errorf("unexpected pitch range: %s .. %s", pitches[0], pitches[11])
	}
}

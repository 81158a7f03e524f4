package script

import (
	"errors"
	"testing"

	"github.com/philipparndt/goroof/internal/measurement"
)

func TestParsePitch(t *testing.T) {
	tests := []struct {
		input    string
		expected measurement.Pitch
	}{
		{"6/12", measurement.Pitch{Rise: 6, Run: 12}},
		{" 8:12 ", measurement.Pitch{Rise: 8, Run: 12}},
		{"4.5 / 12", measurement.Pitch{Rise: 4.5, Run: 12}},
		{"0/12", measurement.Pitch{Rise: 0, Run: 12}},
	}
	for _, tt := range tests {
		got, err := ParsePitch(tt.input)
		if err != nil {
			t.Errorf("ParsePitch(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParsePitch(%q) failed: expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}

func TestParsePitchErrors(t *testing.T) {
	for _, input := range []string{"", "6", "six/12", "6/12/4", "6-12"} {
		if _, err := ParsePitch(input); err == nil {
			t.Errorf("ParsePitch(%q) should fail", input)
		}
	}
	if _, err := ParsePitch("6/0"); !errors.Is(err, measurement.ErrInvalidPitch) {
		t.Errorf("ParsePitch(6/0) should fail with ErrInvalidPitch, got %v", err)
	}
}

func TestParseScript(t *testing.T) {
	src := `
# calibrate on the first eave
click 0 0
click 100, 0
length 10
right 50 50
mode edit
label Valley
pitch 8/12
cancel
report
`
	script, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if len(script.Commands) != 9 {
		t.Fatalf("expected 9 commands, got %d", len(script.Commands))
	}

	c := script.Commands
	if c[0].Click == nil || c[0].Click.X != 0 || c[0].Click.Y != 0 {
		t.Errorf("command 0 failed: %+v", c[0])
	}
	if c[1].Click == nil || c[1].Click.X != 100 {
		t.Errorf("command 1 failed: %+v", c[1])
	}
	if c[2].Length == nil || *c[2].Length != 10 {
		t.Errorf("command 2 failed: %+v", c[2])
	}
	if c[3].Right == nil || c[3].Right.X != 50 {
		t.Errorf("command 3 failed: %+v", c[3])
	}
	if c[4].Mode != "edit" {
		t.Errorf("command 4 failed: %+v", c[4])
	}
	if c[5].Label != "Valley" {
		t.Errorf("command 5 failed: %+v", c[5])
	}
	if c[6].Pitch == nil || c[6].Pitch.Rise != 8 || c[6].Pitch.Run != 12 {
		t.Errorf("command 6 failed: %+v", c[6])
	}
	if !c[7].Cancel || !c[8].Report {
		t.Errorf("commands 7/8 failed: %+v %+v", c[7], c[8])
	}
	if c[0].Pos.Line != 3 {
		t.Errorf("position failed: expected line 3, got %d", c[0].Pos.Line)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{"click 1", "jump 1 2", "mode sideways", "length"} {
		if _, err := ParseString(src); err == nil {
			t.Errorf("ParseString(%q) should fail", src)
		}
	}
}

package measurement

import (
	"errors"
	"testing"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected Label
	}{
		{"Ridge", LabelRidge},
		{"valley", LabelValley},
		{" RAKE ", LabelRake},
		{"Eave", LabelEave},
	}
	for _, tt := range tests {
		got, err := ParseLabel(tt.input)
		if err != nil {
			t.Errorf("ParseLabel(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseLabel(%q) failed: expected %v, got %v", tt.input, tt.expected, got)
		}
	}

	if _, err := ParseLabel("Gutter"); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("ParseLabel(Gutter) should fail with ErrUnknownLabel, got %v", err)
	}
}

func TestLabelString(t *testing.T) {
	if LabelValley.String() != "Valley" {
		t.Errorf("String failed: expected Valley, got %s", LabelValley)
	}
	if Label(42).Valid() {
		t.Error("Label(42) should not be valid")
	}
}

func TestPaletteOverrides(t *testing.T) {
	palette, err := DefaultPalette().WithOverrides(map[string]string{"eave": "#00ff00"})
	if err != nil {
		t.Fatalf("WithOverrides failed: %v", err)
	}
	if got := palette[LabelEave].Hex(); got != "#00ff00" {
		t.Errorf("Eave override failed: expected #00ff00, got %s", got)
	}
	if palette[LabelRidge] != LabelRidge.Color() {
		t.Error("Ridge color should keep its default")
	}

	if _, err := DefaultPalette().WithOverrides(map[string]string{"Gutter": "#000000"}); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("unknown label override should fail, got %v", err)
	}
	if _, err := DefaultPalette().WithOverrides(map[string]string{"Ridge": "pinkish"}); err == nil {
		t.Error("invalid hex override should fail")
	}
}

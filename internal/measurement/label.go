package measurement

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Label classifies a roof edge
type Label int

const (
	LabelRidge Label = iota
	LabelValley
	LabelRake
	LabelEave
)

// Labels lists every label in display order
var Labels = []Label{LabelRidge, LabelValley, LabelRake, LabelEave}

var labelNames = map[Label]string{
	LabelRidge:  "Ridge",
	LabelValley: "Valley",
	LabelRake:   "Rake",
	LabelEave:   "Eave",
}

// Palette colors used when drawing labelled edges
var labelColors = map[Label]string{
	LabelRidge:  "#ffc0cb", // pink
	LabelValley: "#a020f0", // purple
	LabelRake:   "#ffa500", // orange
	LabelEave:   "#00008b", // dark blue
}

// Valid reports whether l is one of the known labels
func (l Label) Valid() bool {
	_, ok := labelNames[l]
	return ok
}

func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// Color returns the default palette color for the label
func (l Label) Color() colorful.Color {
	c, err := colorful.Hex(labelColors[l])
	if err != nil {
		return colorful.Color{R: 0, G: 0, B: 1}
	}
	return c
}

// ParseLabel converts a label name (case-insensitive) to a Label
func ParseLabel(name string) (Label, error) {
	for _, l := range Labels {
		if strings.EqualFold(labelNames[l], strings.TrimSpace(name)) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, name)
}

// Palette maps labels to display colors
type Palette map[Label]colorful.Color

// DefaultPalette returns the built-in label colors
func DefaultPalette() Palette {
	p := make(Palette, len(Labels))
	for _, l := range Labels {
		p[l] = l.Color()
	}
	return p
}

// WithOverrides returns a copy of the palette with hex colors applied by label name
func (p Palette) WithOverrides(hex map[string]string) (Palette, error) {
	out := make(Palette, len(p))
	for l, c := range p {
		out[l] = c
	}
	for name, value := range hex {
		l, err := ParseLabel(name)
		if err != nil {
			return nil, err
		}
		c, err := colorful.Hex(value)
		if err != nil {
			return nil, fmt.Errorf("color for %s: %w", l, err)
		}
		out[l] = c
	}
	return out, nil
}

// Highlight blends a color toward yellow for the selected edge
func Highlight(c colorful.Color) colorful.Color {
	yellow := colorful.Color{R: 1, G: 1, B: 0}
	return c.BlendRgb(yellow, 0.6).Clamped()
}

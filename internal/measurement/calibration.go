package measurement

import (
	"fmt"
	"math"
)

// Scale converts pixels to real units. The zero value is unset; once
// established it never changes.
type Scale struct {
	pixelsPerUnit float64
	set           bool
}

// IsSet reports whether the scale has been established
func (s Scale) IsSet() bool {
	return s.set
}

// PixelsPerUnit returns the ratio, or 0 when unset
func (s Scale) PixelsPerUnit() float64 {
	return s.pixelsPerUnit
}

// Establish sets the scale from a reference measured in pixels and its
// user-supplied real-world length.
func (s *Scale) Establish(pixelLength, realLength float64) error {
	if s.set {
		return ErrScaleAlreadySet
	}
	if !(realLength > 0) || math.IsInf(realLength, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidReferenceLength, realLength)
	}
	if !(pixelLength > 0) || math.IsInf(pixelLength, 0) {
		return ErrDegenerateSegment
	}
	ratio := pixelLength / realLength
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return fmt.Errorf("%w: %v px for %v units", ErrInvalidReferenceLength, pixelLength, realLength)
	}
	s.pixelsPerUnit = ratio
	s.set = true
	return nil
}

// ToRealLength converts a pixel length; ok is false while the scale is unset
func (s Scale) ToRealLength(pixelLength float64) (float64, bool) {
	if !s.set {
		return 0, false
	}
	return pixelLength / s.pixelsPerUnit, true
}

// ToRealArea converts a pixel area; ok is false while the scale is unset
func (s Scale) ToRealArea(pixelArea float64) (float64, bool) {
	if !s.set {
		return 0, false
	}
	return pixelArea / (s.pixelsPerUnit * s.pixelsPerUnit), true
}

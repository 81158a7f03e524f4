package measurement

import (
	"errors"

	"github.com/philipparndt/goroof/pkg/geometry"
)

var (
	ErrDegenerateSegment      = geometry.ErrDegenerateSegment
	ErrTooFewVertices         = errors.New("shape needs at least 3 vertices")
	ErrScaleAlreadySet        = errors.New("scale already set")
	ErrInvalidReferenceLength = errors.New("reference length must be positive")
	ErrNoPendingCalibration   = errors.New("no calibration pending")
	ErrUnknownSegment         = errors.New("unknown segment")
	ErrUnknownShape           = errors.New("unknown shape")
	ErrInvalidPitch           = errors.New("invalid pitch")
	ErrUnknownLabel           = errors.New("unknown label")
	ErrUnknownMode            = errors.New("unknown mode")
)

// SegmentID identifies a segment in the registry. Zero means none.
type SegmentID int

// ShapeID identifies a shape in the registry. Zero means none.
type ShapeID int

// Segment is a traced edge between two vertices.
// Endpoint order is kept as traced; equality is undirected.
type Segment struct {
	ID    SegmentID
	Start geometry.Point
	End   geometry.Point

	label    Label
	distance float64
	measured bool
}

// Label returns the edge classification
func (s *Segment) Label() Label {
	return s.label
}

// Distance returns the real-world length and whether it is known
func (s *Segment) Distance() (float64, bool) {
	return s.distance, s.measured
}

// PixelLength returns the segment length in pixels
func (s *Segment) PixelLength() float64 {
	return s.Start.Distance(s.End)
}

// Joins reports whether the segment connects a and b in either direction
func (s *Segment) Joins(a, b geometry.Point) bool {
	return (s.Start == a && s.End == b) || (s.Start == b && s.End == a)
}

// Midpoint returns where the distance text is placed
func (s *Segment) Midpoint() geometry.Point {
	return geometry.Midpoint(s.Start, s.End)
}

// Shape is a closed roof plane. The closing vertex is not repeated.
type Shape struct {
	ID ShapeID

	vertices []geometry.Point
	pitch    Pitch
	area     float64
	measured bool
}

// Vertices returns a copy of the vertex sequence
func (s *Shape) Vertices() []geometry.Point {
	out := make([]geometry.Point, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// Pitch returns the shape's rise/run ratio
func (s *Shape) Pitch() Pitch {
	return s.pitch
}

// Area returns the pitch-adjusted real-world area and whether it is known
func (s *Shape) Area() (float64, bool) {
	return s.area, s.measured
}

// PixelArea returns the flat plan-view area in square pixels
func (s *Shape) PixelArea() float64 {
	return geometry.PolygonArea(s.vertices)
}

// Contains reports whether p falls inside the shape
func (s *Shape) Contains(p geometry.Point) bool {
	return geometry.PointInPolygon(p, s.vertices)
}

// Centroid returns where the area text is placed
func (s *Shape) Centroid() geometry.Point {
	return geometry.Centroid(s.vertices)
}

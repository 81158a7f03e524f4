package geometry

import (
	"errors"
	"fmt"
	"math"
)

// SnapTolerance is the pixel radius used for vertex snapping, shape closure
// and segment hit-testing.
const SnapTolerance = 5.0

// ErrDegenerateSegment is returned when a segment's endpoints coincide
var ErrDegenerateSegment = errors.New("degenerate segment: endpoints coincide")

// Point represents a 2D point in pixel space
type Point struct {
	X, Y float64
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Length returns the magnitude of the point treated as a vector
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// IsNear reports whether other lies strictly within tolerance of p
func (p Point) IsNear(other Point, tolerance float64) bool {
	return p.Distance(other) < tolerance
}

// String formats the point as (x, y)
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Midpoint returns the point halfway between a and b
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// PointLineDistance returns the perpendicular distance from p to the infinite
// line through a and b. The distance is not clamped to the segment extent, so
// points beyond either endpoint but close to the extended line still measure
// as near.
func PointLineDistance(p, a, b Point) (float64, error) {
	length := a.Distance(b)
	if length == 0 {
		return 0, ErrDegenerateSegment
	}
	cross := (b.X-a.X)*(a.Y-p.Y) - (a.X-p.X)*(b.Y-a.Y)
	return math.Abs(cross) / length, nil
}

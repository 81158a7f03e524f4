package measurement

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/goroof/pkg/geometry"
)

var squarePx = []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}

func scaleOf(t *testing.T, pixelsPerUnit float64) Scale {
	t.Helper()
	var s Scale
	if err := s.Establish(pixelsPerUnit, 1); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestShapesCloseWithScale(t *testing.T) {
	r := NewShapes()
	shape, err := r.Close(squarePx, DefaultPitch, scaleOf(t, 10))
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	area, ok := shape.Area()
	if !ok {
		t.Fatal("shape closed with a scale should have an area")
	}
	expected := 100 * math.Sqrt(0.25+1)
	if math.Abs(area-expected) > 1e-9 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
	if math.Abs(area-111.80) > 0.01 {
		t.Errorf("Area failed: expected ~111.80, got %.4f", area)
	}
	if shape.Pitch() != DefaultPitch {
		t.Errorf("Pitch failed: expected %s, got %s", DefaultPitch, shape.Pitch())
	}
}

func TestShapesCloseWithoutScale(t *testing.T) {
	r := NewShapes()
	shape, err := r.Close(squarePx, DefaultPitch, Scale{})
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, ok := shape.Area(); ok {
		t.Error("shape closed without scale should have unknown area")
	}
	if r.Len() != 1 {
		t.Errorf("shape should still be stored, got %d", r.Len())
	}
}

func TestShapesCloseTooFewVertices(t *testing.T) {
	r := NewShapes()
	_, err := r.Close(squarePx[:2], DefaultPitch, Scale{})
	if !errors.Is(err, ErrTooFewVertices) {
		t.Errorf("expected ErrTooFewVertices, got %v", err)
	}
}

func TestShapesVerticesAreCopied(t *testing.T) {
	r := NewShapes()
	input := append([]geometry.Point(nil), squarePx...)
	shape, _ := r.Close(input, DefaultPitch, Scale{})

	input[0] = geometry.NewPoint(-50, -50)
	if shape.Vertices()[0] != squarePx[0] {
		t.Error("shape vertices must not alias the caller's slice")
	}
	shape.Vertices()[1] = geometry.NewPoint(-1, -1)
	if shape.Vertices()[1] != squarePx[1] {
		t.Error("Vertices must return a copy")
	}
}

func TestShapesContaining(t *testing.T) {
	r := NewShapes()
	left, _ := r.Close(squarePx, DefaultPitch, Scale{})
	right, _ := r.Close([]geometry.Point{{X: 100, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 100}, {X: 100, Y: 100}}, Pitch{Rise: 8, Run: 12}, Scale{})

	if got := r.Containing(geometry.NewPoint(50, 50)); got != left {
		t.Errorf("Containing failed: expected left shape, got %v", got)
	}
	if got := r.Containing(geometry.NewPoint(150, 50)); got != right {
		t.Errorf("Containing failed: expected right shape, got %v", got)
	}
	if got := r.Containing(geometry.NewPoint(250, 50)); got != nil {
		t.Errorf("Containing should find nothing, got %v", got)
	}
}

func TestShapesVertexNear(t *testing.T) {
	r := NewShapes()
	r.Close(squarePx, DefaultPitch, Scale{})

	v, ok := r.VertexNear(geometry.NewPoint(98, 3), 5)
	if !ok || v != geometry.NewPoint(100, 0) {
		t.Errorf("VertexNear failed: expected (100, 0), got %v (ok=%v)", v, ok)
	}
	if _, ok := r.VertexNear(geometry.NewPoint(50, 50), 5); ok {
		t.Error("VertexNear should find nothing in the middle of the square")
	}
}

func TestShapesSetPitch(t *testing.T) {
	r := NewShapes()
	scale := scaleOf(t, 10)
	measured, _ := r.Close(squarePx, DefaultPitch, scale)
	unmeasured, _ := r.Close(squarePx, DefaultPitch, Scale{})

	if err := r.SetPitch(measured.ID, Pitch{Rise: 12, Run: 12}, scale); err != nil {
		t.Fatalf("SetPitch failed: %v", err)
	}
	area, _ := measured.Area()
	if math.Abs(area-100*math.Sqrt2) > 1e-9 {
		t.Errorf("SetPitch re-measure failed: expected %v, got %v", 100*math.Sqrt2, area)
	}

	if err := r.SetPitch(unmeasured.ID, Pitch{Rise: 12, Run: 12}, scale); err != nil {
		t.Fatalf("SetPitch failed: %v", err)
	}
	if _, ok := unmeasured.Area(); ok {
		t.Error("SetPitch must not retroactively measure a shape closed without scale")
	}

	if err := r.SetPitch(measured.ID, Pitch{Rise: 1, Run: 0}, scale); !errors.Is(err, ErrInvalidPitch) {
		t.Errorf("expected ErrInvalidPitch, got %v", err)
	}
	if err := r.SetPitch(99, DefaultPitch, scale); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("expected ErrUnknownShape, got %v", err)
	}
}

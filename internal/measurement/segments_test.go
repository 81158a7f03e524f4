package measurement

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/goroof/pkg/geometry"
)

func TestSegmentsAddIfAbsentUndirected(t *testing.T) {
	r := NewSegments()
	a := geometry.NewPoint(0, 0)
	b := geometry.NewPoint(100, 0)

	first, created, err := r.AddIfAbsent(a, b)
	if err != nil || !created {
		t.Fatalf("first AddIfAbsent failed: created=%v err=%v", created, err)
	}
	if first.Label() != LabelEave {
		t.Errorf("default label failed: expected Eave, got %v", first.Label())
	}
	if _, ok := first.Distance(); ok {
		t.Error("new segment should have no distance")
	}

	second, created, err := r.AddIfAbsent(b, a)
	if err != nil {
		t.Fatalf("reverse AddIfAbsent failed: %v", err)
	}
	if created {
		t.Error("reverse pair should not create a new segment")
	}
	if second != first {
		t.Error("reverse pair should return the same segment instance")
	}
	if r.Len() != 1 {
		t.Errorf("registry size failed: expected 1, got %d", r.Len())
	}
}

func TestSegmentsRejectDegenerate(t *testing.T) {
	r := NewSegments()
	p := geometry.NewPoint(5, 5)
	if _, _, err := r.AddIfAbsent(p, p); !errors.Is(err, ErrDegenerateSegment) {
		t.Errorf("expected ErrDegenerateSegment, got %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("degenerate segment should not be stored, got %d", r.Len())
	}
}

func TestSegmentsFindNear(t *testing.T) {
	r := NewSegments()
	horizontal, _, _ := r.AddIfAbsent(geometry.NewPoint(0, 0), geometry.NewPoint(100, 0))
	vertical, _, _ := r.AddIfAbsent(geometry.NewPoint(100, 0), geometry.NewPoint(100, 100))

	if got := r.FindNear(geometry.NewPoint(50, 3), 5); got != horizontal {
		t.Errorf("FindNear failed: expected horizontal segment, got %v", got)
	}
	if got := r.FindNear(geometry.NewPoint(97, 50), 5); got != vertical {
		t.Errorf("FindNear failed: expected vertical segment, got %v", got)
	}
	if got := r.FindNear(geometry.NewPoint(50, 50), 5); got != nil {
		t.Errorf("FindNear should find nothing, got %v", got)
	}

	// Near both lines: the first inserted wins
	if got := r.FindNear(geometry.NewPoint(99, 1), 5); got != horizontal {
		t.Errorf("FindNear tie failed: expected first inserted segment, got %v", got)
	}

	// Hit-testing uses the unbounded line, so a click far past the end of
	// the horizontal segment still selects it.
	if got := r.FindNear(geometry.NewPoint(400, 2), 5); got != horizontal {
		t.Errorf("FindNear beyond endpoint failed: expected horizontal segment, got %v", got)
	}
}

func TestSegmentsMeasure(t *testing.T) {
	r := NewSegments()
	seg, _, _ := r.AddIfAbsent(geometry.NewPoint(0, 0), geometry.NewPoint(100, 0))

	var scale Scale
	ok, err := r.Measure(seg.ID, scale)
	if err != nil || ok {
		t.Errorf("Measure without scale should defer: ok=%v err=%v", ok, err)
	}

	if err := scale.Establish(100, 10); err != nil {
		t.Fatal(err)
	}
	ok, err = r.Measure(seg.ID, scale)
	if err != nil || !ok {
		t.Fatalf("Measure failed: ok=%v err=%v", ok, err)
	}
	if d, _ := seg.Distance(); math.Abs(d-10) > 1e-10 {
		t.Errorf("Distance failed: expected 10, got %v", d)
	}

	if _, err := r.Measure(99, scale); !errors.Is(err, ErrUnknownSegment) {
		t.Errorf("expected ErrUnknownSegment, got %v", err)
	}
}

func TestSegmentsSetLabel(t *testing.T) {
	r := NewSegments()
	seg, _, _ := r.AddIfAbsent(geometry.NewPoint(0, 0), geometry.NewPoint(10, 0))

	if err := r.SetLabel(seg.ID, LabelValley); err != nil {
		t.Fatalf("SetLabel failed: %v", err)
	}
	if seg.Label() != LabelValley {
		t.Errorf("SetLabel failed: expected Valley, got %v", seg.Label())
	}
	if err := r.SetLabel(seg.ID, Label(9)); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("expected ErrUnknownLabel, got %v", err)
	}
	if err := r.SetLabel(42, LabelRake); !errors.Is(err, ErrUnknownSegment) {
		t.Errorf("expected ErrUnknownSegment, got %v", err)
	}
}

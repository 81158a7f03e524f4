package measurement

import (
	"github.com/philipparndt/goroof/pkg/geometry"
)

// Segments owns every traced edge. Each undirected endpoint pair is stored
// once so adjacent shapes share their common edge.
type Segments struct {
	items []*Segment
	byID  map[SegmentID]*Segment
}

// NewSegments creates an empty segment registry
func NewSegments() *Segments {
	return &Segments{
		items: make([]*Segment, 0),
		byID:  make(map[SegmentID]*Segment),
	}
}

// AddIfAbsent returns the segment joining a and b, creating it with the
// default Eave label when no such segment exists yet.
func (r *Segments) AddIfAbsent(a, b geometry.Point) (*Segment, bool, error) {
	if a == b {
		return nil, false, ErrDegenerateSegment
	}
	if existing := r.Find(a, b); existing != nil {
		return existing, false, nil
	}

	seg := &Segment{
		ID:    SegmentID(len(r.items) + 1),
		Start: a,
		End:   b,
		label: LabelEave,
	}
	r.items = append(r.items, seg)
	r.byID[seg.ID] = seg
	return seg, true, nil
}

// Find returns the segment joining a and b in either direction, or nil
func (r *Segments) Find(a, b geometry.Point) *Segment {
	for _, seg := range r.items {
		if seg.Joins(a, b) {
			return seg
		}
	}
	return nil
}

// FindNear returns the first segment, in insertion order, whose line passes
// within tolerance of p. Distance is measured to the unbounded line.
func (r *Segments) FindNear(p geometry.Point, tolerance float64) *Segment {
	for _, seg := range r.items {
		d, err := geometry.PointLineDistance(p, seg.Start, seg.End)
		if err != nil {
			continue
		}
		if d < tolerance {
			return seg
		}
	}
	return nil
}

// Get returns the segment with the given ID, or nil
func (r *Segments) Get(id SegmentID) *Segment {
	return r.byID[id]
}

// All returns the segments in insertion order
func (r *Segments) All() []*Segment {
	out := make([]*Segment, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of segments
func (r *Segments) Len() int {
	return len(r.items)
}

// SetLabel changes a segment's label
func (r *Segments) SetLabel(id SegmentID, label Label) error {
	seg := r.byID[id]
	if seg == nil {
		return ErrUnknownSegment
	}
	if !label.Valid() {
		return ErrUnknownLabel
	}
	seg.label = label
	return nil
}

// Measure stores the real-world length of a segment. It reports false and
// leaves the segment untouched while the scale is unset.
func (r *Segments) Measure(id SegmentID, scale Scale) (bool, error) {
	seg := r.byID[id]
	if seg == nil {
		return false, ErrUnknownSegment
	}
	distance, ok := scale.ToRealLength(seg.PixelLength())
	if !ok {
		return false, nil
	}
	seg.distance = distance
	seg.measured = true
	return true, nil
}

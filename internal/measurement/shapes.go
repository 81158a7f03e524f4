package measurement

import (
	"github.com/philipparndt/goroof/pkg/geometry"
)

// Shapes owns every closed roof plane
type Shapes struct {
	items []*Shape
	byID  map[ShapeID]*Shape
}

// NewShapes creates an empty shape registry
func NewShapes() *Shapes {
	return &Shapes{
		items: make([]*Shape, 0),
		byID:  make(map[ShapeID]*Shape),
	}
}

// Close finalizes a traced polygon into a shape. The area is computed when
// the scale is known; otherwise the shape is stored with an unknown area.
func (r *Shapes) Close(vertices []geometry.Point, pitch Pitch, scale Scale) (*Shape, error) {
	if len(vertices) < 3 {
		return nil, ErrTooFewVertices
	}
	if err := pitch.Validate(); err != nil {
		return nil, err
	}

	shape := &Shape{
		ID:       ShapeID(len(r.items) + 1),
		vertices: append([]geometry.Point(nil), vertices...),
		pitch:    pitch,
	}
	shape.area, shape.measured = pitchedArea(shape, scale)

	r.items = append(r.items, shape)
	r.byID[shape.ID] = shape
	return shape, nil
}

// Containing returns the first shape, in registry order, that contains p
func (r *Shapes) Containing(p geometry.Point) *Shape {
	for _, shape := range r.items {
		if shape.Contains(p) {
			return shape
		}
	}
	return nil
}

// VertexNear returns the first closed-shape vertex within tolerance of p
func (r *Shapes) VertexNear(p geometry.Point, tolerance float64) (geometry.Point, bool) {
	for _, shape := range r.items {
		for _, v := range shape.vertices {
			if p.IsNear(v, tolerance) {
				return v, true
			}
		}
	}
	return geometry.Point{}, false
}

// SetPitch changes a shape's pitch. A shape that already has an area is
// re-measured with the new multiplier; an unmeasured shape stays unmeasured.
func (r *Shapes) SetPitch(id ShapeID, pitch Pitch, scale Scale) error {
	shape := r.byID[id]
	if shape == nil {
		return ErrUnknownShape
	}
	if err := pitch.Validate(); err != nil {
		return err
	}
	shape.pitch = pitch
	if shape.measured {
		shape.area, shape.measured = pitchedArea(shape, scale)
	}
	return nil
}

// Get returns the shape with the given ID, or nil
func (r *Shapes) Get(id ShapeID) *Shape {
	return r.byID[id]
}

// All returns the shapes in closure order
func (r *Shapes) All() []*Shape {
	out := make([]*Shape, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of shapes
func (r *Shapes) Len() int {
	return len(r.items)
}

func pitchedArea(shape *Shape, scale Scale) (float64, bool) {
	flat, ok := scale.ToRealArea(shape.PixelArea())
	if !ok {
		return 0, false
	}
	return flat * shape.pitch.Multiplier(), true
}

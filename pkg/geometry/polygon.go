package geometry

import "math"

// PointInPolygon reports whether p lies inside the polygon using ray casting.
// A horizontal ray is cast from p and every edge whose y-span straddles p.Y
// and crosses the ray is counted; an odd count means inside. Winding order
// does not matter.
func PointInPolygon(p Point, vertices []Point) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}

	crossings := 0
	for i := 0; i < n; i++ {
		v1 := vertices[i]
		v2 := vertices[(i+1)%n]

		if (v1.Y <= p.Y && p.Y < v2.Y) || (v2.Y <= p.Y && p.Y < v1.Y) {
			x := v1.X + (p.Y-v1.Y)/(v2.Y-v1.Y)*(v2.X-v1.X)
			if x < p.X {
				crossings++
			}
		}
	}

	return crossings%2 == 1
}

// PolygonArea returns the area of a simple polygon using the shoelace formula.
// The vertex sequence is treated as cyclic; fewer than 3 vertices yield 0.
func PolygonArea(vertices []Point) float64 {
	n := len(vertices)
	if n < 3 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		v1 := vertices[i]
		v2 := vertices[(i+1)%n]
		sum += v1.X*v2.Y - v2.X*v1.Y
	}

	return math.Abs(sum) / 2
}

// Centroid returns the average of the vertices, used for placing area labels
func Centroid(vertices []Point) Point {
	if len(vertices) == 0 {
		return Point{}
	}
	var c Point
	for _, v := range vertices {
		c.X += v.X
		c.Y += v.Y
	}
	n := float64(len(vertices))
	return Point{X: c.X / n, Y: c.Y / n}
}

// Bounds returns the minimum and maximum corners of the vertices' bounding box
func Bounds(vertices []Point) (lo, hi Point) {
	if len(vertices) == 0 {
		return Point{}, Point{}
	}
	lo, hi = vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
	}
	return lo, hi
}

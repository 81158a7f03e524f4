package app

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"

	"github.com/philipparndt/goroof/pkg/geometry"
)

// fillShapes rasterizes closed shapes into a w x h pixel buffer covering a
// canvas of the given size. Each pixel center is mapped back to image
// coordinates and tested against the polygon, so concave shapes fill
// correctly.
func fillShapes(w, h int, size fyne.Size, view Viewport, shapes [][]geometry.Point, fill color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || size.Width <= 0 || size.Height <= 0 {
		return img
	}

	// Raster pixels per canvas unit; differs from 1 on HiDPI displays
	sx := float64(w) / float64(size.Width)
	sy := float64(h) / float64(size.Height)

	for _, vertices := range shapes {
		if len(vertices) < 3 {
			continue
		}
		lo, hi := geometry.Bounds(vertices)
		a := view.ToCanvas(lo)
		b := view.ToCanvas(hi)

		x0 := clampInt(int(math.Floor(float64(a.X)*sx)), 0, w-1)
		x1 := clampInt(int(math.Ceil(float64(b.X)*sx)), 0, w-1)
		y0 := clampInt(int(math.Floor(float64(a.Y)*sy)), 0, h-1)
		y1 := clampInt(int(math.Ceil(float64(b.Y)*sy)), 0, h-1)

		for py := y0; py <= y1; py++ {
			for px := x0; px <= x1; px++ {
				pos := fyne.NewPos(float32((float64(px)+0.5)/sx), float32((float64(py)+0.5)/sy))
				if geometry.PointInPolygon(view.ToImage(pos), vertices) {
					img.SetNRGBA(px, py, fill)
				}
			}
		}
	}
	return img
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

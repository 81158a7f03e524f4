package app

import (
	"fyne.io/fyne/v2"

	"github.com/philipparndt/goroof/pkg/geometry"
)

// Viewport maps image pixels onto the canvas. The image is scaled to fit
// and centered, keeping its aspect ratio.
type Viewport struct {
	Scale  float32
	Offset fyne.Position
}

// IdentityViewport maps image pixels one to one
var IdentityViewport = Viewport{Scale: 1}

// FitViewport fits an image of the given pixel size into a canvas area
func FitViewport(imageWidth, imageHeight int, size fyne.Size) Viewport {
	if imageWidth <= 0 || imageHeight <= 0 || size.Width <= 0 || size.Height <= 0 {
		return IdentityViewport
	}

	scale := size.Width / float32(imageWidth)
	if s := size.Height / float32(imageHeight); s < scale {
		scale = s
	}
	return Viewport{
		Scale: scale,
		Offset: fyne.NewPos(
			(size.Width-float32(imageWidth)*scale)/2,
			(size.Height-float32(imageHeight)*scale)/2,
		),
	}
}

// ToImage converts a canvas position to image pixel coordinates
func (v Viewport) ToImage(pos fyne.Position) geometry.Point {
	return geometry.NewPoint(
		float64((pos.X-v.Offset.X)/v.Scale),
		float64((pos.Y-v.Offset.Y)/v.Scale),
	)
}

// ToCanvas converts image pixel coordinates to a canvas position
func (v Viewport) ToCanvas(p geometry.Point) fyne.Position {
	return fyne.NewPos(
		float32(p.X)*v.Scale+v.Offset.X,
		float32(p.Y)*v.Scale+v.Offset.Y,
	)
}

// ImageSize returns the canvas size of an image of the given pixel size
func (v Viewport) ImageSize(width, height int) fyne.Size {
	return fyne.NewSize(float32(width)*v.Scale, float32(height)*v.Scale)
}

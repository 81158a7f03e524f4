package app

import (
	"image"
	"image/color"

	"github.com/philipparndt/goroof/internal/config"
	"github.com/philipparndt/goroof/internal/measurement"
	"github.com/philipparndt/goroof/pkg/watcher"
)

var (
	traceColor       = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	vertexColor      = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	distanceColor    = color.NRGBA{R: 0, G: 128, B: 0, A: 255}
	areaColor        = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	shapeFillColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 72}
	textBackdropFill = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// ViewSettings holds display settings
type ViewSettings struct {
	Palette    measurement.Palette
	LengthUnit string
	AreaUnit   string
	PointSize  float32
	LineWidth  float32
}

// newViewSettings derives display settings from the configuration
func newViewSettings(cfg *config.Config) (ViewSettings, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return ViewSettings{}, err
	}
	return ViewSettings{
		Palette:    palette,
		LengthUnit: cfg.LengthUnit,
		AreaUnit:   cfg.AreaUnit,
		PointSize:  cfg.PointSize,
		LineWidth:  cfg.LineWidth,
	}, nil
}

// ImageState holds the background image and its reload watcher
type ImageState struct {
	path    string
	image   image.Image
	watcher *watcher.FileWatcher
}

package app

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goroof/internal/measurement"
	"github.com/philipparndt/goroof/pkg/analysis"
	"github.com/philipparndt/goroof/pkg/geometry"
)

// TraceCanvas shows the roof image with everything traced on it and turns
// taps into session clicks in image pixel coordinates.
type TraceCanvas struct {
	widget.BaseWidget

	session    *measurement.Session
	background image.Image
	settings   ViewSettings
	view       Viewport
	size       fyne.Size

	onResult func(event measurement.EventKind, result measurement.Result)
}

// NewTraceCanvas creates a canvas bound to a session
func NewTraceCanvas(session *measurement.Session, settings ViewSettings) *TraceCanvas {
	tc := &TraceCanvas{
		session:  session,
		settings: settings,
		view:     IdentityViewport,
	}
	tc.ExtendBaseWidget(tc)
	return tc
}

// SetOnResult sets the callback invoked after every click
func (tc *TraceCanvas) SetOnResult(callback func(event measurement.EventKind, result measurement.Result)) {
	tc.onResult = callback
}

// SetSession replaces the session, e.g. after a new image was opened
func (tc *TraceCanvas) SetSession(session *measurement.Session) {
	tc.session = session
	tc.Refresh()
}

// SetBackground replaces the image without touching the session
func (tc *TraceCanvas) SetBackground(img image.Image) {
	tc.background = img
	tc.Refresh()
}

// Tapped handles primary clicks
func (tc *TraceCanvas) Tapped(event *fyne.PointEvent) {
	p := tc.view.ToImage(event.Position)
	result := tc.session.PrimaryClick(p.X, p.Y)
	tc.Refresh()
	if tc.onResult != nil {
		tc.onResult(measurement.PrimaryClick, result)
	}
}

// TappedSecondary handles secondary clicks
func (tc *TraceCanvas) TappedSecondary(event *fyne.PointEvent) {
	p := tc.view.ToImage(event.Position)
	result := tc.session.SecondaryClick(p.X, p.Y)
	tc.Refresh()
	if tc.onResult != nil {
		tc.onResult(measurement.SecondaryClick, result)
	}
}

// CreateRenderer creates the renderer for the widget
func (tc *TraceCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &traceRenderer{
		tc:    tc,
		image: canvas.NewImageFromImage(nil),
	}
	r.image.FillMode = canvas.ImageFillStretch
	r.fill = canvas.NewRaster(func(w, h int) image.Image {
		return fillShapes(w, h, tc.size, tc.view, tc.shapePolygons(), shapeFillColor)
	})
	return r
}

func (tc *TraceCanvas) updateView() {
	if tc.background == nil {
		tc.view = IdentityViewport
		return
	}
	b := tc.background.Bounds()
	tc.view = FitViewport(b.Dx(), b.Dy(), tc.size)
}

func (tc *TraceCanvas) shapePolygons() [][]geometry.Point {
	shapes := tc.session.Shapes()
	out := make([][]geometry.Point, len(shapes))
	for i, shape := range shapes {
		out[i] = shape.Vertices()
	}
	return out
}

// segmentColor picks the stroke for a segment: plain blue while tracing,
// label colors while editing, highlighted when selected.
func segmentColor(mode measurement.Mode, seg, selected *measurement.Segment, palette measurement.Palette) color.Color {
	if mode != measurement.ModeEditLine {
		return traceColor
	}
	c, ok := palette[seg.Label()]
	if !ok {
		c = seg.Label().Color()
	}
	if selected != nil && selected.ID == seg.ID {
		c = measurement.Highlight(c)
	}
	return c
}

// segmentText is the distance caption for a measured segment
func segmentText(seg *measurement.Segment, unit string) (string, bool) {
	d, ok := seg.Distance()
	if !ok {
		return "", false
	}
	return analysis.FormatMeasurement(d, unit), true
}

// shapeText is the area caption for a measured shape
func shapeText(shape *measurement.Shape, unit string) (string, bool) {
	a, ok := shape.Area()
	if !ok {
		return "", false
	}
	return analysis.FormatMeasurement(a, unit), true
}

// traceRenderer implements fyne.WidgetRenderer
type traceRenderer struct {
	tc      *TraceCanvas
	image   *canvas.Image
	fill    *canvas.Raster
	objects []fyne.CanvasObject
}

func (r *traceRenderer) Layout(size fyne.Size) {
	r.tc.size = size
	r.Refresh()
}

func (r *traceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *traceRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.tc)
}

func (r *traceRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *traceRenderer) Destroy() {}

func (r *traceRenderer) rebuild() {
	tc := r.tc
	tc.updateView()
	view := tc.view
	objects := make([]fyne.CanvasObject, 0)

	if tc.background != nil {
		b := tc.background.Bounds()
		r.image.Image = tc.background
		r.image.Move(view.Offset)
		r.image.Resize(view.ImageSize(b.Dx(), b.Dy()))
		r.image.Refresh()
		objects = append(objects, r.image)
	}

	r.fill.Move(fyne.NewPos(0, 0))
	r.fill.Resize(tc.size)
	r.fill.Refresh()
	objects = append(objects, r.fill)

	mode := tc.session.Mode()
	selected := tc.session.SelectedLine()
	for _, seg := range tc.session.Segments() {
		line := canvas.NewLine(segmentColor(mode, seg, selected, tc.settings.Palette))
		line.StrokeWidth = tc.settings.LineWidth
		line.Position1 = view.ToCanvas(seg.Start)
		line.Position2 = view.ToCanvas(seg.End)
		objects = append(objects, line)
	}

	for _, shape := range tc.session.Shapes() {
		for _, v := range shape.Vertices() {
			objects = append(objects, r.marker(view.ToCanvas(v)))
		}
	}
	for _, p := range tc.session.Points() {
		objects = append(objects, r.marker(view.ToCanvas(p)))
	}

	for _, seg := range tc.session.Segments() {
		if text, ok := segmentText(seg, tc.settings.LengthUnit); ok {
			objects = append(objects, caption(view.ToCanvas(seg.Midpoint()), text, distanceColor)...)
		}
	}
	for _, shape := range tc.session.Shapes() {
		if text, ok := shapeText(shape, tc.settings.AreaUnit); ok {
			objects = append(objects, caption(view.ToCanvas(shape.Centroid()), text, areaColor)...)
		}
	}

	r.objects = objects
}

func (r *traceRenderer) marker(pos fyne.Position) fyne.CanvasObject {
	size := r.tc.settings.PointSize * 2
	dot := canvas.NewCircle(vertexColor)
	dot.Resize(fyne.NewSize(size, size))
	dot.Move(pos.SubtractXY(size/2, size/2))
	return dot
}

// caption draws text centered on pos over a white box
func caption(pos fyne.Position, text string, col color.Color) []fyne.CanvasObject {
	label := canvas.NewText(text, col)
	label.TextSize = 12
	size := label.MinSize()

	box := canvas.NewRectangle(textBackdropFill)
	box.Resize(size.AddWidthHeight(6, 2))
	box.Move(pos.SubtractXY(size.Width/2+3, size.Height/2+1))

	label.Move(pos.SubtractXY(size.Width/2, size.Height/2))
	return []fyne.CanvasObject{box, label}
}

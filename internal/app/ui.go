package app

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goroof/internal/measurement"
)

// sidePanel holds the controls next to the trace canvas
type sidePanel struct {
	modeRadio   *widget.RadioGroup
	labelRadio  *widget.RadioGroup
	pitchSelect *widget.Select
	status      *widget.Label
	summary     *widget.Label
}

var pitchChoices = measurement.CommonPitches()

func pitchNames() []string {
	names := make([]string, len(pitchChoices))
	for i, p := range pitchChoices {
		names[i] = p.String()
	}
	return names
}

func pitchByName(name string) (measurement.Pitch, bool) {
	for _, p := range pitchChoices {
		if p.String() == name {
			return p, true
		}
	}
	return measurement.Pitch{}, false
}

func labelNames() []string {
	names := make([]string, len(measurement.Labels))
	for i, l := range measurement.Labels {
		names[i] = l.String()
	}
	return names
}

// buildPanel creates the side panel. Callbacks are attached after the
// initial selection so setting defaults does not touch the session.
func (a *App) buildPanel() fyne.CanvasObject {
	p := &sidePanel{
		modeRadio: widget.NewRadioGroup([]string{
			measurement.ModeCreateShape.String(),
			measurement.ModeEditLine.String(),
		}, nil),
		labelRadio:  widget.NewRadioGroup(labelNames(), nil),
		pitchSelect: widget.NewSelect(pitchNames(), nil),
		status:      widget.NewLabel("Open an image to start tracing"),
		summary:     widget.NewLabel(""),
	}
	p.modeRadio.Required = true
	p.labelRadio.Required = true
	p.status.Wrapping = fyne.TextWrapWord
	a.panel = p
	a.resetPanel()

	p.modeRadio.OnChanged = a.selectMode
	p.labelRadio.OnChanged = a.selectLabel
	p.pitchSelect.OnChanged = a.selectPitch

	openButton := widget.NewButton("Open Image", a.showFileDialog)
	reportButton := widget.NewButton("Report", a.showReport)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Click corners to trace a roof plane\n" +
			"• Click the first corner again to close it\n" +
			"• The first edge sets the scale\n" +
			"• Right click a plane to change its pitch\n" +
			"• In Edit Line mode click an edge to label it",
	)
	instructions.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		widget.NewLabel("Mode:"),
		p.modeRadio,
		widget.NewSeparator(),
		widget.NewLabel("Line label:"),
		p.labelRadio,
		widget.NewSeparator(),
		widget.NewLabel("Pitch for new shapes:"),
		p.pitchSelect,
		widget.NewSeparator(),
		p.summary,
		p.status,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		reportButton,
	)

	scroll := container.NewVScroll(panel)
	scroll.SetMinSize(fyne.NewSize(260, 0))
	return scroll
}

// resetPanel shows the current session's settings without firing callbacks
func (a *App) resetPanel() {
	p := a.panel
	modeChanged, labelChanged, pitchChanged := p.modeRadio.OnChanged, p.labelRadio.OnChanged, p.pitchSelect.OnChanged
	p.modeRadio.OnChanged, p.labelRadio.OnChanged, p.pitchSelect.OnChanged = nil, nil, nil

	p.modeRadio.SetSelected(a.session.Mode().String())
	p.labelRadio.SetSelected(a.session.SelectedLabel().String())
	p.pitchSelect.SetSelected(a.session.DefaultPitch().String())
	a.syncLabelRadio()

	p.modeRadio.OnChanged, p.labelRadio.OnChanged, p.pitchSelect.OnChanged = modeChanged, labelChanged, pitchChanged
	a.refreshSummary()
}

// syncLabelRadio enables label choice only while editing lines
func (a *App) syncLabelRadio() {
	if a.session.Mode() == measurement.ModeEditLine {
		a.panel.labelRadio.Enable()
	} else {
		a.panel.labelRadio.Disable()
	}
}

func (a *App) selectMode(name string) {
	mode := measurement.ModeCreateShape
	if name == measurement.ModeEditLine.String() {
		mode = measurement.ModeEditLine
	}
	if err := a.session.SetMode(mode); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.syncLabelRadio()
	a.trace.Refresh()
	a.setStatus(fmt.Sprintf("Mode: %s", mode))
}

func (a *App) selectLabel(name string) {
	label, err := measurement.ParseLabel(name)
	if err == nil {
		err = a.session.SetSelectedLabel(label)
	}
	if err != nil {
		dialog.ShowError(err, a.window)
	}
}

func (a *App) selectPitch(name string) {
	pitch, ok := pitchByName(name)
	if !ok {
		return
	}
	if err := a.session.SetDefaultPitch(pitch); err != nil {
		dialog.ShowError(err, a.window)
	}
}

func (a *App) setStatus(text string) {
	a.panel.status.SetText(text)
}

func (a *App) refreshSummary() {
	a.panel.summary.SetText(summaryText(a.session, a.settings))
}

// handleResult reacts to a click on the trace canvas
func (a *App) handleResult(event measurement.EventKind, result measurement.Result) {
	a.setStatus(describeResult(event, result, a.settings))
	a.refreshSummary()

	switch {
	case event == measurement.PrimaryClick && result.CalibrationRequested:
		a.promptReferenceLength(result.Segment)
	case event == measurement.SecondaryClick && result.Shape != nil:
		a.promptShapePitch(result.Shape)
	}
}

// promptReferenceLength asks for the real length of the first traced segment
func (a *App) promptReferenceLength(reference *measurement.Segment) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("e.g. 12.5")
	entry.Validator = func(text string) error {
		_, err := parseLength(text)
		return err
	}

	items := []*widget.FormItem{
		widget.NewFormItem(fmt.Sprintf("Length (%s)", a.settings.LengthUnit), entry),
	}
	title := fmt.Sprintf("Reference segment: %.1f px", reference.PixelLength())

	form := dialog.NewForm(title, "Set Scale", "Skip", items, func(ok bool) {
		var length float64
		if ok {
			length, _ = parseLength(entry.Text)
		}
		seg, err := a.session.SupplyReferenceLength(length, ok)
		if errors.Is(err, measurement.ErrNoPendingCalibration) {
			return
		}
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if d, measured := seg.Distance(); measured {
			a.setStatus(fmt.Sprintf("Scale set: segment %d is %.2f %s", seg.ID, d, a.settings.LengthUnit))
		} else {
			a.setStatus("Scale not set; measurements deferred")
		}
		a.trace.Refresh()
		a.refreshSummary()
	}, a.window)
	form.Show()
}

// promptShapePitch lets the user change the pitch of a closed shape
func (a *App) promptShapePitch(shape *measurement.Shape) {
	choice := widget.NewSelect(pitchNames(), nil)
	choice.SetSelected(shape.Pitch().String())

	items := []*widget.FormItem{widget.NewFormItem("Pitch", choice)}
	dialog.ShowForm(fmt.Sprintf("Shape %d", shape.ID), "Apply", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		pitch, found := pitchByName(choice.Selected)
		if !found {
			return
		}
		if err := a.session.SetShapePitch(shape.ID, pitch); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.trace.Refresh()
		a.setStatus(fmt.Sprintf("Shape %d: pitch %s", shape.ID, pitch))
	}, a.window)
}

func (a *App) showReport() {
	text := a.session.Report().Format(a.settings.LengthUnit, a.settings.AreaUnit)
	label := widget.NewLabel(text)
	label.TextStyle = fyne.TextStyle{Monospace: true}

	scroll := container.NewVScroll(label)
	scroll.SetMinSize(fyne.NewSize(360, 320))
	dialog.ShowCustom("Report", "Close", scroll, a.window)
}

func (a *App) showFileDialog() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if err := a.openImage(path); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	open.SetFilter(storage.NewExtensionFileFilter(ImageExtensions))
	open.Show()
}

func parseLength(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", text)
	}
	if !(v > 0) || math.IsInf(v, 0) {
		return 0, measurement.ErrInvalidReferenceLength
	}
	return v, nil
}

// describeResult is the status line shown after a click
func describeResult(event measurement.EventKind, result measurement.Result, settings ViewSettings) string {
	if event == measurement.SecondaryClick {
		switch {
		case !result.Found:
			return fmt.Sprintf("Nothing at %s", result.Point)
		case result.Shape != nil:
			return fmt.Sprintf("Shape %d: pitch %s", result.Shape.ID, result.Pitch)
		case result.Segment != nil:
			return fmt.Sprintf("Segment %d: %s", result.Segment.ID, result.Label)
		}
		return ""
	}

	switch {
	case result.Ignored:
		return "Point already placed"
	case result.Discarded:
		return "Trace discarded: fewer than 3 corners"
	case result.Shape != nil:
		text := fmt.Sprintf("Shape %d closed", result.Shape.ID)
		if area, ok := shapeText(result.Shape, settings.AreaUnit); ok {
			text += ": " + area
		}
		return text
	case result.CalibrationRequested:
		return "Enter the length of the first segment"
	case result.Selected != nil:
		return fmt.Sprintf("Segment %d labelled %s", result.Selected.ID, result.Selected.Label())
	case result.Previous != nil:
		return "Selection cleared"
	case result.Segment != nil:
		text := fmt.Sprintf("Segment %d", result.Segment.ID)
		if d, ok := segmentText(result.Segment, settings.LengthUnit); ok {
			text += ": " + d
		}
		return text
	}
	return fmt.Sprintf("Point %s", result.Point)
}

// summaryText lists registry sizes and the scale
func summaryText(session *measurement.Session, settings ViewSettings) string {
	scale := "not set"
	if s := session.Scale(); s.IsSet() {
		scale = fmt.Sprintf("%.4f px/%s", s.PixelsPerUnit(), settings.LengthUnit)
	}
	return fmt.Sprintf("Segments: %d\nShapes: %d\nScale: %s",
		len(session.Segments()), len(session.Shapes()), scale)
}

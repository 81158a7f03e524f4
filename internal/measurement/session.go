package measurement

import (
	"fmt"
	"log"

	"github.com/philipparndt/goroof/pkg/analysis"
	"github.com/philipparndt/goroof/pkg/geometry"
)

// Mode selects how pointer events are interpreted
type Mode int

const (
	ModeCreateShape Mode = iota
	ModeEditLine
)

func (m Mode) String() string {
	switch m {
	case ModeCreateShape:
		return "Create Shape"
	case ModeEditLine:
		return "Edit Line"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// EventKind is a pointer event delivered by the UI
type EventKind int

const (
	PrimaryClick EventKind = iota
	SecondaryClick
)

// Prompter asks the user for the real-world length of the reference
// segment. Returning ok == false means the user cancelled.
type Prompter interface {
	ReferenceLength(reference *Segment) (length float64, ok bool)
}

// PrompterFunc adapts a function to the Prompter interface
type PrompterFunc func(reference *Segment) (float64, bool)

// ReferenceLength calls f
func (f PrompterFunc) ReferenceLength(reference *Segment) (float64, bool) {
	return f(reference)
}

// Result describes what a pointer event changed or found
type Result struct {
	// Point is the click position after snapping
	Point geometry.Point
	// Ignored is set when a click repeated the previous vertex
	Ignored bool

	// Segment is the edge created, found or inspected by the click
	Segment        *Segment
	SegmentCreated bool
	// CalibrationRequested is set when the reference length must be supplied
	// through SupplyReferenceLength
	CalibrationRequested bool

	// Shape is the shape closed or inspected by the click
	Shape *Shape
	// Discarded is set when a trace closed with fewer than 3 distinct vertices
	Discarded bool

	// Selected and Previous are the edge selections after and before an
	// Edit-Line click
	Selected *Segment
	Previous *Segment

	// Label and Pitch carry secondary-click inspection results
	Label Label
	Pitch Pitch
	Found bool
}

type transitionKey struct {
	mode  Mode
	event EventKind
}

type transition func(s *Session, p geometry.Point) Result

var transitions = map[transitionKey]transition{
	{ModeCreateShape, PrimaryClick}:   (*Session).traceVertex,
	{ModeCreateShape, SecondaryClick}: (*Session).inspectShape,
	{ModeEditLine, PrimaryClick}:      (*Session).labelSegment,
	{ModeEditLine, SecondaryClick}:    (*Session).inspectSegment,
}

// Session is the editing state for one image: the registries, the scale,
// the vertex buffer of the shape being traced and the edit selection.
// It is not safe for concurrent use; events are processed one at a time.
type Session struct {
	mode          Mode
	points        []geometry.Point
	segments      *Segments
	shapes        *Shapes
	scale         Scale
	selected      SegmentID
	selectedLabel Label
	defaultPitch  Pitch
	tolerance     float64

	prompter Prompter
	pending  *Segment
	logger   *log.Logger
}

// Option configures a Session
type Option func(*Session)

// WithTolerance sets the snapping and hit-test radius in pixels
func WithTolerance(tolerance float64) Option {
	return func(s *Session) {
		if tolerance > 0 {
			s.tolerance = tolerance
		}
	}
}

// WithDefaultPitch sets the pitch given to newly closed shapes
func WithDefaultPitch(pitch Pitch) Option {
	return func(s *Session) {
		if pitch.Validate() == nil {
			s.defaultPitch = pitch
		}
	}
}

// WithPrompter makes calibration synchronous: the prompter is asked for the
// reference length during the click that completes the reference segment.
func WithPrompter(p Prompter) Option {
	return func(s *Session) {
		s.prompter = p
	}
}

// WithLogger sets the logger used for calibration messages
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session in Create-Shape mode with no scale
func NewSession(opts ...Option) *Session {
	s := &Session{
		mode:          ModeCreateShape,
		points:        make([]geometry.Point, 0),
		segments:      NewSegments(),
		shapes:        NewShapes(),
		selectedLabel: LabelRidge,
		defaultPitch:  DefaultPitch,
		tolerance:     geometry.SnapTolerance,
		logger:        log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PrimaryClick handles a left click at pixel position (x, y)
func (s *Session) PrimaryClick(x, y float64) Result {
	return s.dispatch(PrimaryClick, geometry.NewPoint(x, y))
}

// SecondaryClick handles a right click at pixel position (x, y)
func (s *Session) SecondaryClick(x, y float64) Result {
	return s.dispatch(SecondaryClick, geometry.NewPoint(x, y))
}

func (s *Session) dispatch(event EventKind, p geometry.Point) Result {
	handler, ok := transitions[transitionKey{s.mode, event}]
	if !ok {
		return Result{Point: p}
	}
	return handler(s, p)
}

// traceVertex adds a vertex to the shape being traced
func (s *Session) traceVertex(p geometry.Point) Result {
	if s.pending != nil {
		s.logger.Printf("Calibration abandoned; will ask again on the next shape")
		s.pending = nil
	}

	p = s.snap(p)
	if n := len(s.points); n > 0 && s.points[n-1] == p {
		return Result{Point: p, Ignored: true}
	}

	s.points = append(s.points, p)
	result := Result{Point: p}
	n := len(s.points)

	if n >= 2 {
		seg, created, err := s.segments.AddIfAbsent(s.points[n-2], s.points[n-1])
		if err != nil {
			// Unreachable: repeated vertices are ignored above
			s.points = s.points[:n-1]
			return Result{Point: p, Ignored: true}
		}
		result.Segment = seg
		result.SegmentCreated = created

		if n == 2 && !s.scale.IsSet() {
			result.CalibrationRequested = s.requestCalibration(seg)
		}

		if s.scale.IsSet() {
			s.segments.Measure(seg.ID, s.scale)
		}
	}

	if n >= 3 && s.points[0].IsNear(s.points[n-1], s.tolerance) {
		vertices := s.points[:n-1]
		s.points = make([]geometry.Point, 0)

		shape, err := s.shapes.Close(vertices, s.defaultPitch, s.scale)
		if err != nil {
			s.logger.Printf("Trace discarded: %v", err)
			result.Discarded = true
			return result
		}
		result.Shape = shape
	}

	return result
}

// snap moves p onto an existing vertex: first any closed-shape vertex,
// then the first vertex of the current trace.
func (s *Session) snap(p geometry.Point) geometry.Point {
	if v, ok := s.shapes.VertexNear(p, s.tolerance); ok {
		return v
	}
	if len(s.points) > 0 && p.IsNear(s.points[0], s.tolerance) {
		return s.points[0]
	}
	return p
}

// requestCalibration asks for the reference length. It reports true when
// the answer must arrive later through SupplyReferenceLength.
func (s *Session) requestCalibration(reference *Segment) bool {
	if s.prompter == nil {
		s.pending = reference
		return true
	}
	length, ok := s.prompter.ReferenceLength(reference)
	s.applyReferenceLength(reference, length, ok)
	return false
}

func (s *Session) applyReferenceLength(reference *Segment, length float64, ok bool) {
	if !ok {
		s.logger.Printf("Calibration cancelled; measurements deferred")
		return
	}
	if err := s.scale.Establish(reference.PixelLength(), length); err != nil {
		s.logger.Printf("Calibration rejected: %v", err)
		return
	}
	s.logger.Printf("Scale set: %.4f px per unit (reference %.2f px = %v units)",
		s.scale.PixelsPerUnit(), reference.PixelLength(), length)
}

// SupplyReferenceLength answers a pending calibration request. When the
// scale becomes set the reference segment is measured and returned.
func (s *Session) SupplyReferenceLength(length float64, ok bool) (*Segment, error) {
	reference := s.pending
	if reference == nil {
		return nil, ErrNoPendingCalibration
	}
	s.pending = nil

	s.applyReferenceLength(reference, length, ok)
	if s.scale.IsSet() {
		if _, err := s.segments.Measure(reference.ID, s.scale); err != nil {
			return nil, err
		}
	}
	return reference, nil
}

// labelSegment selects the edge under p and applies the selected label
func (s *Session) labelSegment(p geometry.Point) Result {
	result := Result{Point: p, Previous: s.segments.Get(s.selected)}

	seg := s.segments.FindNear(p, s.tolerance)
	if seg == nil {
		s.selected = 0
		return result
	}

	s.selected = seg.ID
	if err := s.segments.SetLabel(seg.ID, s.selectedLabel); err != nil {
		s.logger.Printf("Label not applied: %v", err)
	}
	result.Segment = seg
	result.Selected = seg
	result.Label = seg.Label()
	result.Found = true
	return result
}

// inspectSegment reports the label of the edge under p
func (s *Session) inspectSegment(p geometry.Point) Result {
	seg := s.segments.FindNear(p, s.tolerance)
	if seg == nil {
		return Result{Point: p}
	}
	return Result{Point: p, Segment: seg, Label: seg.Label(), Found: true}
}

// inspectShape reports the pitch of the shape under p
func (s *Session) inspectShape(p geometry.Point) Result {
	shape := s.shapes.Containing(p)
	if shape == nil {
		return Result{Point: p}
	}
	return Result{Point: p, Shape: shape, Pitch: shape.Pitch(), Found: true}
}

// SetMode switches between Create-Shape and Edit-Line. The vertex buffer
// and registries are left untouched.
func (s *Session) SetMode(mode Mode) error {
	if mode != ModeCreateShape && mode != ModeEditLine {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	s.mode = mode
	return nil
}

// SetSelectedLabel chooses the label applied by Edit-Line clicks
func (s *Session) SetSelectedLabel(label Label) error {
	if !label.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLabel, int(label))
	}
	s.selectedLabel = label
	return nil
}

// SetDefaultPitch chooses the pitch for shapes closed from now on
func (s *Session) SetDefaultPitch(pitch Pitch) error {
	if err := pitch.Validate(); err != nil {
		return err
	}
	s.defaultPitch = pitch
	return nil
}

// SetShapePitch changes the pitch of a closed shape
func (s *Session) SetShapePitch(id ShapeID, pitch Pitch) error {
	return s.shapes.SetPitch(id, pitch, s.scale)
}

// Report summarizes the current registries
func (s *Session) Report() *analysis.Report {
	edges := make([]analysis.EdgeMeasurement, 0, s.segments.Len())
	for _, seg := range s.segments.All() {
		distance, measured := seg.Distance()
		edges = append(edges, analysis.EdgeMeasurement{
			Label:    seg.Label().String(),
			Distance: distance,
			Measured: measured,
		})
	}

	planes := make([]analysis.PlaneMeasurement, 0, s.shapes.Len())
	for _, shape := range s.shapes.All() {
		area, measured := shape.Area()
		planes = append(planes, analysis.PlaneMeasurement{Area: area, Measured: measured})
	}

	order := make([]string, len(Labels))
	for i, l := range Labels {
		order[i] = l.String()
	}

	return analysis.BuildReport(edges, planes, order)
}

// Mode returns the current mode
func (s *Session) Mode() Mode {
	return s.mode
}

// Points returns a copy of the vertex buffer of the shape being traced
func (s *Session) Points() []geometry.Point {
	out := make([]geometry.Point, len(s.points))
	copy(out, s.points)
	return out
}

// Segments returns every segment in insertion order
func (s *Session) Segments() []*Segment {
	return s.segments.All()
}

// Shapes returns every closed shape in closure order
func (s *Session) Shapes() []*Shape {
	return s.shapes.All()
}

// Scale returns the pixel-to-unit scale
func (s *Session) Scale() Scale {
	return s.scale
}

// SelectedLine returns the edge selected in Edit-Line mode, or nil
func (s *Session) SelectedLine() *Segment {
	return s.segments.Get(s.selected)
}

// SelectedLabel returns the label Edit-Line clicks apply
func (s *Session) SelectedLabel() Label {
	return s.selectedLabel
}

// DefaultPitch returns the pitch given to newly closed shapes
func (s *Session) DefaultPitch() Pitch {
	return s.defaultPitch
}

// PendingCalibration returns the reference segment awaiting a length, or nil
func (s *Session) PendingCalibration() *Segment {
	return s.pending
}

// Tolerance returns the snapping radius in pixels
func (s *Session) Tolerance() float64 {
	return s.tolerance
}

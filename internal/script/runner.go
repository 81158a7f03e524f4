package script

import (
	"fmt"
	"io"

	"github.com/philipparndt/goroof/internal/measurement"
)

// Runner replays scripts against a session and writes what each command
// produced.
type Runner struct {
	Session    *measurement.Session
	Out        io.Writer
	LengthUnit string
	AreaUnit   string
}

// NewRunner creates a runner for the session
func NewRunner(session *measurement.Session, out io.Writer) *Runner {
	return &Runner{
		Session:    session,
		Out:        out,
		LengthUnit: "ft",
		AreaUnit:   "sqft",
	}
}

// Run executes every command in order, stopping at the first error
func (r *Runner) Run(script *Script) error {
	for _, cmd := range script.Commands {
		if err := r.exec(cmd); err != nil {
			return fmt.Errorf("line %d: %w", cmd.Pos.Line, err)
		}
	}
	return nil
}

func (r *Runner) exec(cmd *Command) error {
	s := r.Session

	switch {
	case cmd.Click != nil:
		r.describeClick(s.PrimaryClick(cmd.Click.X, cmd.Click.Y))

	case cmd.Right != nil:
		r.describeInspect(s.SecondaryClick(cmd.Right.X, cmd.Right.Y))

	case cmd.Length != nil:
		seg, err := s.SupplyReferenceLength(*cmd.Length, true)
		if err != nil {
			return err
		}
		r.describeCalibration(seg)

	case cmd.Cancel:
		if _, err := s.SupplyReferenceLength(0, false); err != nil {
			return err
		}
		fmt.Fprintln(r.Out, "calibration cancelled")

	case cmd.Mode != "":
		mode := measurement.ModeCreateShape
		if cmd.Mode == "edit" {
			mode = measurement.ModeEditLine
		}
		if err := s.SetMode(mode); err != nil {
			return err
		}
		fmt.Fprintf(r.Out, "mode: %s\n", mode)

	case cmd.Label != "":
		label, err := measurement.ParseLabel(cmd.Label)
		if err != nil {
			return err
		}
		if err := s.SetSelectedLabel(label); err != nil {
			return err
		}

	case cmd.Pitch != nil:
		pitch, err := cmd.Pitch.Pitch()
		if err != nil {
			return err
		}
		if err := s.SetDefaultPitch(pitch); err != nil {
			return err
		}

	case cmd.Report:
		fmt.Fprint(r.Out, s.Report().Format(r.LengthUnit, r.AreaUnit))
	}

	return nil
}

func (r *Runner) describeClick(res measurement.Result) {
	if res.Ignored {
		fmt.Fprintf(r.Out, "click %s ignored\n", res.Point)
		return
	}
	if res.Selected != nil {
		fmt.Fprintf(r.Out, "segment %d labelled %s\n", res.Selected.ID, res.Selected.Label())
		return
	}
	if res.Previous != nil {
		fmt.Fprintln(r.Out, "selection cleared")
		return
	}
	if res.Segment != nil {
		verb := "found"
		if res.SegmentCreated {
			verb = "created"
		}
		fmt.Fprintf(r.Out, "segment %d %s %s-%s", res.Segment.ID, verb, res.Segment.Start, res.Segment.End)
		if d, ok := res.Segment.Distance(); ok {
			fmt.Fprintf(r.Out, " %.2f %s", d, r.LengthUnit)
		}
		fmt.Fprintln(r.Out)
	}
	if res.CalibrationRequested {
		fmt.Fprintf(r.Out, "calibration requested for segment %d (%.2f px)\n",
			res.Segment.ID, res.Segment.PixelLength())
	}
	if res.Shape != nil {
		fmt.Fprintf(r.Out, "shape %d closed with %d vertices", res.Shape.ID, len(res.Shape.Vertices()))
		if a, ok := res.Shape.Area(); ok {
			fmt.Fprintf(r.Out, " %.2f %s", a, r.AreaUnit)
		}
		fmt.Fprintln(r.Out)
	}
	if res.Discarded {
		fmt.Fprintln(r.Out, "trace discarded")
	}
}

func (r *Runner) describeInspect(res measurement.Result) {
	switch {
	case !res.Found:
		fmt.Fprintf(r.Out, "nothing at %s\n", res.Point)
	case res.Shape != nil:
		fmt.Fprintf(r.Out, "shape %d pitch %s\n", res.Shape.ID, res.Pitch)
	case res.Segment != nil:
		fmt.Fprintf(r.Out, "segment %d label %s\n", res.Segment.ID, res.Label)
	}
}

func (r *Runner) describeCalibration(seg *measurement.Segment) {
	scale := r.Session.Scale()
	if !scale.IsSet() {
		fmt.Fprintln(r.Out, "calibration deferred")
		return
	}
	d, _ := seg.Distance()
	fmt.Fprintf(r.Out, "scale %.4f px/%s, segment %d %.2f %s\n",
		scale.PixelsPerUnit(), r.LengthUnit, seg.ID, d, r.LengthUnit)
}

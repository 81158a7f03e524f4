package analysis

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// EdgeMeasurement is one traced edge as seen by the report
type EdgeMeasurement struct {
	Label    string
	Distance float64
	Measured bool
}

// PlaneMeasurement is one closed roof plane as seen by the report
type PlaneMeasurement struct {
	Area     float64
	Measured bool
}

// Report summarizes a take-off
type Report struct {
	SegmentDistances   []float64
	TotalDistance      float64
	ShapeAreas         []float64
	TotalArea          float64
	LabelCounts        map[string]int
	LabelOrder         []string
	UnmeasuredSegments int
	UnmeasuredShapes   int
}

// BuildReport sums distances and areas and counts edges per label.
// Unmeasured edges and planes contribute zero rather than being dropped, so
// the lists stay aligned with the registries. Every name in labelOrder is
// present in LabelCounts, even with a zero count.
func BuildReport(edges []EdgeMeasurement, planes []PlaneMeasurement, labelOrder []string) *Report {
	report := &Report{
		SegmentDistances: make([]float64, 0, len(edges)),
		ShapeAreas:       make([]float64, 0, len(planes)),
		LabelCounts:      make(map[string]int, len(labelOrder)),
		LabelOrder:       append([]string(nil), labelOrder...),
	}

	for _, name := range labelOrder {
		report.LabelCounts[name] = 0
	}

	for _, edge := range edges {
		distance := 0.0
		if edge.Measured {
			distance = edge.Distance
		} else {
			report.UnmeasuredSegments++
		}
		report.SegmentDistances = append(report.SegmentDistances, distance)

		if _, known := report.LabelCounts[edge.Label]; !known {
			report.LabelOrder = append(report.LabelOrder, edge.Label)
		}
		report.LabelCounts[edge.Label]++
	}

	for _, plane := range planes {
		area := 0.0
		if plane.Measured {
			area = plane.Area
		} else {
			report.UnmeasuredShapes++
		}
		report.ShapeAreas = append(report.ShapeAreas, area)
	}

	report.TotalDistance = floats.Sum(report.SegmentDistances)
	report.TotalArea = floats.Sum(report.ShapeAreas)

	return report
}

// Round2 rounds to two decimals the way report values are displayed
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// FormatList joins values rounded to two decimals
func FormatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.2f", Round2(v))
	}
	return strings.Join(parts, ", ")
}

// Format renders the report as plain text
func (r *Report) Format(lengthUnit, areaUnit string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "List of distances: %s\n", FormatList(r.SegmentDistances))
	fmt.Fprintf(&b, "Total Distance: %s\n\n", FormatMeasurement(Round2(r.TotalDistance), lengthUnit))
	fmt.Fprintf(&b, "List of areas: %s\n", FormatList(r.ShapeAreas))
	fmt.Fprintf(&b, "Total Area: %s\n\n", FormatMeasurement(Round2(r.TotalArea), areaUnit))

	b.WriteString("Counts:\n")
	for _, name := range r.LabelOrder {
		fmt.Fprintf(&b, "%s: %d\n", name, r.LabelCounts[name])
	}

	if r.UnmeasuredSegments > 0 || r.UnmeasuredShapes > 0 {
		fmt.Fprintf(&b, "\nUnmeasured: %d segments, %d shapes (no scale when traced)\n",
			r.UnmeasuredSegments, r.UnmeasuredShapes)
	}

	return b.String()
}

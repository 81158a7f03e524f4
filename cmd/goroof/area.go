package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/goroof/internal/measurement"
	"github.com/philipparndt/goroof/internal/script"
	"github.com/philipparndt/goroof/pkg/analysis"
	"github.com/philipparndt/goroof/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	areaPoints []string
	areaScale  float64
	areaPitch  string
)

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Compute the area of a polygon given in pixel coordinates",
	Long: `Compute the flat and pitched area of a polygon. Vertices are pixel
coordinates in tracing order. With --scale (pixels per unit) the real area
is printed as well.`,
	Example: "  goroof area --point 0,0 --point 100,0 --point 100,100 --point 0,100 --scale 10 --pitch 6/12",
	Args:    cobra.NoArgs,
	RunE:    runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)

	areaCmd.Flags().StringArrayVarP(&areaPoints, "point", "p", nil, "polygon vertex as x,y (repeat for each vertex)")
	areaCmd.Flags().Float64Var(&areaScale, "scale", 0, "pixels per unit")
	areaCmd.Flags().StringVar(&areaPitch, "pitch", measurement.DefaultPitch.String(), "roof pitch as rise/run")
	areaCmd.MarkFlagRequired("point")
}

// parsePoint parses "x,y"
func parsePoint(text string) (geometry.Point, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return geometry.Point{}, fmt.Errorf("invalid point %q: expected x,y", text)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("invalid point %q: %w", text, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("invalid point %q: %w", text, err)
	}
	return geometry.NewPoint(x, y), nil
}

func runArea(cmd *cobra.Command, args []string) error {
	vertices := make([]geometry.Point, 0, len(areaPoints))
	for _, text := range areaPoints {
		p, err := parsePoint(text)
		if err != nil {
			return err
		}
		vertices = append(vertices, p)
	}
	if len(vertices) < 3 {
		return measurement.ErrTooFewVertices
	}

	if areaScale < 0 || math.IsNaN(areaScale) || math.IsInf(areaScale, 0) {
		return fmt.Errorf("--scale must be a positive number of pixels per unit, got %v", areaScale)
	}

	pitch, err := script.ParsePitch(areaPitch)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	pixelArea := geometry.PolygonArea(vertices)

	fmt.Fprintln(out, "Polygon Area")
	fmt.Fprintln(out, "============")
	fmt.Fprintf(out, "Vertices: %d\n", len(vertices))
	fmt.Fprintf(out, "Centroid: %s\n", geometry.Centroid(vertices))
	fmt.Fprintf(out, "Pixel Area: %s\n", analysis.FormatMeasurement(pixelArea, "px²"))
	fmt.Fprintf(out, "Pitch: %s (x%.4f)\n", pitch, pitch.Multiplier())

	if areaScale == 0 {
		return nil
	}

	var scale measurement.Scale
	if err := scale.Establish(areaScale, 1); err != nil {
		return fmt.Errorf("invalid scale: %w", err)
	}
	flat, _ := scale.ToRealArea(pixelArea)
	fmt.Fprintf(out, "Scale: %.4f px/unit\n", scale.PixelsPerUnit())
	fmt.Fprintf(out, "Flat Area: %s\n", analysis.FormatMeasurement(flat, "sq units"))
	fmt.Fprintf(out, "Pitched Area: %s\n", analysis.FormatMeasurement(flat*pitch.Multiplier(), "sq units"))
	return nil
}

package main

import (
	"fmt"

	"github.com/philipparndt/goroof/internal/measurement"
	"github.com/philipparndt/goroof/internal/script"
	"github.com/spf13/cobra"
)

var pitchCmd = &cobra.Command{
	Use:   "pitch [rise/run]",
	Short: "Show area multipliers for roof pitches",
	Long:  "Print the slope multiplier sqrt((rise/run)^2 + 1) applied to flat plan areas, for one pitch or for the common pitches 1/12 to 12/12.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPitch,
}

func init() {
	rootCmd.AddCommand(pitchCmd)
}

func runPitch(cmd *cobra.Command, args []string) error {
	pitches := measurement.CommonPitches()
	if len(args) == 1 {
		pitch, err := script.ParsePitch(args[0])
		if err != nil {
			return err
		}
		pitches = []measurement.Pitch{pitch}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s %s\n", "Pitch", "Multiplier")
	for _, p := range pitches {
		fmt.Fprintf(out, "%-8s %.4f\n", p, p.Multiplier())
	}
	return nil
}

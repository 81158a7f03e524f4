package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/philipparndt/goroof/internal/measurement"
	"github.com/philipparndt/goroof/internal/script"
	"github.com/spf13/cobra"
)

var (
	replayReport  bool
	replayVerbose bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Replay a click script without the editor",
	Long: `Replay a script of editor events against a fresh session and print what
each event produced. One command per line:

  click x y          primary click at image pixel x,y
  right x y          secondary click (inspect pitch or label)
  length v           answer the calibration request
  cancel             decline the calibration request
  mode create|edit   switch mode
  label NAME         choose Ridge, Valley, Rake or Eave
  pitch r/n          pitch for shapes closed from now on
  report             print the report

Lines starting with # are comments.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().BoolVar(&replayReport, "report", false, "print the report after the last command")
	replayCmd.Flags().BoolVarP(&replayVerbose, "verbose", "v", false, "log calibration messages to stderr")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	parsed, err := script.ParseFile(args[0])
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "", 0)
	if !replayVerbose {
		logger.SetOutput(io.Discard)
	}
	opts := append(cfg.SessionOptions(), measurement.WithLogger(logger))
	session := measurement.NewSession(opts...)

	out := cmd.OutOrStdout()
	runner := script.NewRunner(session, out)
	runner.LengthUnit = cfg.LengthUnit
	runner.AreaUnit = cfg.AreaUnit

	if err := runner.Run(parsed); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if replayReport {
		fmt.Fprint(out, session.Report().Format(cfg.LengthUnit, cfg.AreaUnit))
	}
	return nil
}

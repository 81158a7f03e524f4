package main

import (
	"fmt"

	"github.com/philipparndt/goroof/internal/app"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [image]",
	Short: "Display information about an image",
	Long:  "Show the format and the pixel dimensions of an image after EXIF orientation is applied. These are the coordinates clicks are measured in.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	info, err := app.InspectImage(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Image Information")
	fmt.Fprintln(out, "=================")
	fmt.Fprintf(out, "File: %s\n", info.Path)
	fmt.Fprintf(out, "Format: %s\n", info.Format)
	fmt.Fprintf(out, "Width: %d px\n", info.Width)
	fmt.Fprintf(out, "Height: %d px\n", info.Height)
	return nil
}

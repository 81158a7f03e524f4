package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goroof/internal/app"
	"github.com/philipparndt/goroof/internal/config"
	"github.com/philipparndt/goroof/version"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "goroof [image]",
	Short: "Roof take-off measurements from a photo or plan",
	Long: `goroof measures roofs on an image. Trace each roof plane by clicking its
corners; the first traced edge sets the scale, every later edge gets a
length and every closed plane an area corrected for its pitch. Edges can
be labelled Ridge, Valley, Rake or Eave for the material take-off.

Without a subcommand the desktop editor is started, optionally with an image.`,
	Version: version.String(),
	Args:    cobra.MaximumNArgs(1),
	RunE:    runGUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	imagePath := ""
	if len(args) == 1 {
		imagePath = args[0]
	}
	return app.Run(imagePath, cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

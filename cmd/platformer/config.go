package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var flagConfigInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or install the default game configuration",
	Long: `Prints the default YAML configuration to stdout.

With --init the defaults are written to ~/.platformer/configs/platformer.yaml
instead, where they can be edited and are picked up on the next run.
An existing file is left untouched.

Examples:
  platformer config                  # Print the defaults
  platformer config > my.yaml        # Save a copy to edit
  platformer config --init           # Install to ~/.platformer/configs/
  platformer play --config my.yaml   # Play with the edited copy`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write the defaults to the user config directory")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigInit {
		path, err := config.InstallDefault("platformer")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error installing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config available at %s\n", path)
		return
	}

	os.Stdout.Write(config.GetDefaultYAML("platformer"))
}

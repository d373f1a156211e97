// platformer is a tile-based side-scrolling platformer for the terminal.
//
// Usage:
//
//	platformer list              - List available game modes
//	platformer play [mode]       - Play a mode (campaign by default)
//	platformer menu              - Start menu to pick modes interactively
//	platformer serve             - Start SSH server for remote play
//	platformer scores [mode]     - Show high scores for a mode
//	platformer config            - Show or install the default config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.platformer/platformer.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// cliLog reports non-fatal CLI problems without breaking the TUI output.
var cliLog = log.NewWithOptions(os.Stderr, log.Options{Prefix: "platformer"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run, stomp and climb in your terminal",
	Long: `Platformer is a terminal-based side-scroller: run through tile maps,
stomp walkers, grab coins and power-ups, and reach the goal flag before
the clock runs out.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Show or install the default config

Examples:
  platformer list
  platformer play
  platformer play platformer_endless
  platformer menu
  platformer serve --port 2222
  platformer scores platformer
  platformer config --init`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/platformer.db", "Path to scores and saves database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

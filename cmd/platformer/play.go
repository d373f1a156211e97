package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelsDir  string
	flagResume     bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the platformer",
	Long: `Start a run in the given mode (campaign by default).

Controls:
  A/D, Left/Right  - Move (press opposite direction or Down to turn/stop)
  Space            - Jump
  Z                - Toggle run
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit (an unfinished run is saved)

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  platformer play
  platformer play platformer_endless
  platformer play --difficulty hard
  platformer play --level 3
  platformer play --resume
  platformer play --levels-dir ./my-levels
  platformer play --config ./my-platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (1-based pack order)")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of custom level YAML files")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the saved run instead of starting fresh")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "platformer"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available modes.")
		os.Exit(1)
	}

	if flagResume && flagLevel > 0 {
		fmt.Fprintln(os.Stderr, "Error: --resume and --level are mutually exclusive")
		os.Exit(1)
	}

	// Get terminal size early for the run selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open storage early; the run selector needs to know about saved runs
	store, err := storage.Open(flagDBPath)
	if err != nil {
		cliLog.Warn("could not open database", "error", err)
		store = nil
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLevelsDir(flagLevelsDir)

	resume := flagResume
	level := flagLevel

	// Without explicit flags, ask what to do with this run
	if !resume && level == 0 {
		hasSave := latestSaveData(store, gameID) != nil

		// Level picking only makes sense for the built-in campaign pack
		levelSelect := gameID == "platformer" && flagLevelsDir == ""

		selection, updatedCfg, selErr := tui.RunPlatformerSelector(modeTitle(gameID), hasSave, levelSelect, cfg)
		if selErr != nil {
			if store != nil {
				store.Close()
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			if store != nil {
				store.Close()
			}
			return
		}

		resume = selection.Resume
		level = selection.Level
	}

	// The setters persist across runs, so apply them every time
	if level > 0 {
		platformer.SetStartLevel(level - 1)
	} else {
		platformer.SetStartLevel(0)
	}

	if resume {
		data := latestSaveData(store, gameID)
		if data == nil {
			cliLog.Warn("no saved run to resume, starting fresh", "mode", gameID)
		}
		platformer.SetResumeData(data)
	} else {
		platformer.SetResumeData(nil)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// latestSaveData returns the stored run for a mode, or nil when there is none.
func latestSaveData(store *storage.Store, gameID string) []byte {
	if store == nil {
		return nil
	}
	entry, err := store.LatestSave(gameID)
	if err != nil || entry == nil {
		return nil
	}
	return entry.Data
}

// modeTitle returns the selector header for a mode.
func modeTitle(gameID string) string {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return strings.ToUpper(g.Title)
		}
	}
	return strings.ToUpper(gameID)
}

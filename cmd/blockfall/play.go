package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ametelin/blockfall/internal/config"
	"github.com/ametelin/blockfall/internal/core"
	"github.com/ametelin/blockfall/internal/platform/tui"
	"github.com/ametelin/blockfall/internal/storage"
)

var (
	flagConfig string
	flagFresh  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing. A previously saved game resumes automatically
unless --fresh is given.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Up/W/X     - Rotate
  Down/S     - Soft drop
  Space      - Hard drop
  P/Esc      - Pause
  Enter/R    - Start / restart
  Q/Ctrl+C   - Quit (progress is saved)

Examples:
  blockfall play
  blockfall play --fresh
  blockfall play --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Ignore the saved game and start over")
}

func runPlay(cmd *cobra.Command, args []string) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig(fileCfg)
	cfg.FreshGame = flagFresh

	// Open storage
	store, err := storage.Open(dbPath(fileCfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the session config from the config file,
// the global flags, and the current terminal size.
func runtimeConfig(fileCfg config.Config) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:         width,
		ScreenH:         height,
		TickRate:        fileCfg.Timing.TickRate,
		Seed:            flagSeed,
		BoardW:          fileCfg.Board.Width,
		BoardH:          fileCfg.Board.Height,
		MoveReleaseMS:   fileCfg.Input.MoveReleaseMS,
		RotateReleaseMS: fileCfg.Input.RotateReleaseMS,
		SaveSlot:        fileCfg.Storage.SaveSlot,
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// dbPath resolves the database path from the --db flag or the config file.
func dbPath(fileCfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return fileCfg.Storage.DBPath
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden"
	"github.com/vovakirdan/space-garden/internal/platform/tui"
	"github.com/vovakirdan/space-garden/internal/registry"
	"github.com/vovakirdan/space-garden/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: garden).

Controls:
  Arrows/WASD  - Move (hold)
  E            - Pick up or drop the watering can
  Space        - Use: water, harvest, sow, press buttons
  P/Esc        - Pause
  R            - Restart (after game over)
  ?            - Toggle key help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More oxygen, calmer crew, hardier plants
  normal - The default ship
  hard   - Less oxygen, restless crew from the start

Examples:
  garden play
  garden play garden_sandbox
  garden play --difficulty hard
  garden play --config ./my-ship.yaml --ascii`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// terminalConfig builds a runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := string(garden.ModeStory)
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'garden list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if it fails - game still works
	store := openStore()

	_, runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

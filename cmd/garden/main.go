// garden is a terminal space-garden survival game.
//
// Usage:
//
//	garden list              - List available modes
//	garden play [mode]       - Play a mode (default: garden)
//	garden menu              - Start menu to pick a mode interactively
//	garden serve             - Start SSH server for remote play
//	garden scores <mode>     - Show scores and run history for a mode
//	garden sim [mode]        - Run the simulation headless
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 24)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.garden/garden.db)
//	--config <path>      - Custom garden config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--ascii              - Draw with ASCII instead of emoji
//	--log <path>         - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagASCII      bool
	flagLogPath    string
	flagLogLevel   string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "garden",
	Short: "Space Garden - keep a ship's garden alive in your terminal",
	Long: `Space Garden is a terminal survival game. Tend the plants that make the
ship's oxygen, keep the crew from the airlock and survive what the black hole
throws at you.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View scores and run history
  sim      - Run the simulation without a terminal

Examples:
  garden play
  garden play garden_sandbox --ascii
  garden menu
  garden serve --ssh :2222
  garden sim --frames 2400 --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultFPS, "Frames per second")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.garden/garden.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom garden config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.BoolVar(&flagASCII, "ascii", false, "Use ASCII tiles instead of emoji")
	pf.StringVar(&flagLogPath, "log", "", "Write logs to this file (discarded if empty)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup applies the global flags before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && !validDifficulty(flagDifficulty) {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	log.SetDefault(logger)

	garden.SetLogger(logger.WithPrefix("sim"))
	garden.SetConfigPath(flagConfig)
	garden.SetDifficultyPreset(flagDifficulty)
	garden.SetASCII(flagASCII)
	return nil
}

// newLogger builds the process logger. The terminal belongs to the game,
// so logs go to a file or nowhere, except for commands that keep stdout.
func newLogger(cmd *cobra.Command) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	switch {
	case flagLogPath != "":
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case cmd.Name() == "serve" || cmd.Name() == "sim":
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "garden",
	}), nil
}

func validDifficulty(s string) bool {
	switch s {
	case "easy", "normal", "hard":
		return true
	}
	return false
}

// Package garden adapts the space garden simulation to the terminal platform:
// it loads the configuration, owns the frame clock and draws the world.
package garden

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garden/internal/config"
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/sim"
	"github.com/vovakirdan/space-garden/internal/registry"
)

// Mode selects the story or the sandbox.
type Mode string

const (
	ModeStory   Mode = "garden"
	ModeSandbox Mode = "garden_sandbox"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation events; discarded unless set.
var logger = log.New(io.Discard)

// asciiOnly forces the ASCII tile set.
var asciiOnly bool

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes simulation logs to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// SetASCII switches rendering to plain ASCII for terminals without emoji.
func SetASCII(on bool) {
	asciiOnly = on
}

// Game implements registry.Game over the simulation engine.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	engine  *sim.Engine
	world   *sim.World
	clock   core.FrameClock
	manual  *core.ManualClock // Set when no clock was supplied

	paused   bool
	pausedAt uint64
	offset   uint64 // Frames spent paused
	glyphs   *Glyphs
}

// New creates a story mode game.
func New() *Game {
	return &Game{mode: ModeStory}
}

// NewSandbox creates a game without the story timeline.
func NewSandbox() *Game {
	return &Game{mode: ModeSandbox}
}

func init() {
	registry.Register(string(ModeStory), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeSandbox), func() registry.Game {
		return NewSandbox()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSandbox {
		return "Space Garden (Sandbox)"
	}
	return "Space Garden"
}

// loadConfig reads the configuration and applies the difficulty and mode.
func (g *Game) loadConfig() config.GardenConfig {
	cfg, err := config.LoadGarden(configPath)
	if err != nil {
		logger.Warn("using default garden config", "err", err)
		cfg = config.DefaultGardenConfig()
	}
	if difficultyPreset != "" {
		config.ApplyGardenPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeSandbox {
		cfg.Timeline = nil
		cfg.Story = config.StoryConfig{
			CabinFeverAllowed:  true,
			PlanetSpawnAllowed: true,
			SlingshotAllowed:   true,
		}
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.offset = 0
	g.glyphs = EmojiGlyphs()
	if asciiOnly {
		g.glyphs = ASCIIGlyphs()
	}

	g.clock = runtime.Clock
	g.manual = nil
	if g.clock == nil {
		g.manual = core.NewManualClock(0)
		g.clock = g.manual
	}

	engine, err := sim.NewEngine(g.loadConfig(), sim.WithLogger(logger))
	if err != nil {
		logger.Error("invalid garden config, falling back to defaults", "err", err)
		engine, err = sim.NewEngine(config.DefaultGardenConfig(), sim.WithLogger(logger))
		if err != nil {
			panic(fmt.Sprintf("garden: default config rejected: %v", err))
		}
	}
	g.engine = engine

	world, err := engine.New(uint64(runtime.Seed), g.clock.Frame())
	if err != nil {
		panic(fmt.Sprintf("garden: cannot build world: %v", err))
	}
	g.world = world
	if g.tooSmall(runtime.ScreenW, runtime.ScreenH) {
		g.togglePause()
	}
	logger.Info("garden reset", "mode", g.mode, "seed", runtime.Seed)
}

// frame is the simulation frame: clock time minus time spent paused.
func (g *Game) frame() uint64 {
	f := g.clock.Frame()
	if f < g.offset {
		return 0
	}
	return f - g.offset
}

// Step advances the simulation to the clock's current frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Pressed[core.ActionPause] && !g.world.GameOver {
		g.togglePause()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.manual != nil {
		g.manual.Advance(1)
	}
	g.world = g.engine.Tick(g.world, g.frame(), in)
	return core.StepResult{State: g.State()}
}

// tooSmall reports whether a w×h screen cannot show the whole ship.
func (g *Game) tooSmall(w, h int) bool {
	needW, needH := RequiredSize(g.engine.Layout())
	return w < needW || h < needH
}

func (g *Game) togglePause() {
	now := g.clock.Frame()
	if g.paused {
		g.offset += now - g.pausedAt
		g.paused = false
		return
	}
	g.paused = true
	g.pausedAt = now
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.world
	return core.GameState{
		Score:     w.Status.Score,
		Frame:     w.Elapsed(),
		GameOver:  w.GameOver,
		Paused:    g.paused,
		Cause:     w.Cause(),
		Harvested: w.Status.Harvested,
		Crew:      w.LivingCrew(),
	}
}

// World returns the current snapshot.
func (g *Game) World() *sim.World {
	return g.world
}

// Snapshot encodes the current world.
func (g *Game) Snapshot() ([]byte, error) {
	return sim.Encode(g.world)
}

// DebugState returns a one-line summary for logs and the headless runner.
func (g *Game) DebugState() string {
	w := g.world
	return fmt.Sprintf("frame=%d oxygen=%.1f score=%d crew=%d plants=%d cats=%d over=%v cause=%q",
		w.Frame, w.Oxygen, w.Status.Score, w.LivingCrew(), len(w.Plants), len(w.Cats), w.GameOver, w.Cause())
}

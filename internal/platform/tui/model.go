package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/registry"
	"github.com/vovakirdan/space-garden/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      GameKeyMap
	holds     *HoldTracker
	help      help.Model
	showHelp  bool
	gameState core.GameState
	quitting  bool
	back      bool
	runSaved  bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is driven by a wall clock at cfg.TickRate frames per second.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultFPS
	}
	cfg.Clock = core.NewWallClock(cfg.TickRate)

	h := help.New()
	h.ShortSeparator = "  "

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   DefaultGameKeyMap(),
		holds:  NewHoldTracker(DefaultReleaseAfter),
		help:   h,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.recordRun()
			m.back = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.holds.Key(m.keys.Action(msg), time.Now())
	return m, nil
}

// handleResize processes window resize events. The simulation is kept;
// the game pauses itself when the screen is too small to show it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.back {
		return m, nil
	}

	in := m.holds.Frame(now)
	if in.Pressed[core.ActionRestart] && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.config.Clock = core.NewWallClock(m.config.TickRate)
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.holds.Reset()
		return m, tickCmd(m.config.TickRate)
	}
	if in.Pressed[core.ActionRestart] {
		// The game restarts itself; keep the abandoned run.
		m.recordRun()
		m.runSaved = false
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the score and the run once per game.
func (m *Model) recordRun() {
	if m.runSaved || m.store == nil || m.gameState.Frame == 0 {
		return
	}
	m.runSaved = true

	st := m.gameState
	if st.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), st.Score); err != nil {
			log.Warn("could not save score", "game", m.game.ID(), "err", err)
		}
	}
	run := storage.RunRecord{
		GameID:    m.game.ID(),
		Seed:      m.config.Seed,
		Frames:    st.Frame,
		FPS:       m.config.TickRate,
		Score:     st.Score,
		Harvested: st.Harvested,
		Cause:     st.Cause,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		log.Warn("could not save run", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".garden", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.showHelp {
		// The help bar replaces the bottom row.
		if i := strings.LastIndexByte(out, '\n'); i >= 0 {
			out = out[:i+1]
		}
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		out += helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}

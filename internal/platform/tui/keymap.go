package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-garden/internal/core"
)

// DefaultReleaseAfter is how long a direction stays held after its last
// key event. Terminals report no key-up, only auto-repeat.
const DefaultReleaseAfter = 250 * time.Millisecond

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Equip      key.Binding
	Use        key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Equip, k.Use, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Equip, k.Use, k.Pause, k.Restart},
		{k.Back, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Equip: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "can"),
		),
		Use: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "use"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action maps a key message to a simulation action.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Equip):
		return core.ActionEquip
	case key.Matches(msg, k.Use):
		return core.ActionUse
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// HoldTracker turns key events into input frames. A direction stays held
// until ReleaseAfter passes without another event for it; other actions
// are delivered once.
type HoldTracker struct {
	ReleaseAfter time.Duration
	last         map[core.Action]time.Time
	pressed      map[core.Action]bool
}

// NewHoldTracker creates a tracker with the given release timeout.
func NewHoldTracker(releaseAfter time.Duration) *HoldTracker {
	return &HoldTracker{
		ReleaseAfter: releaseAfter,
		last:         make(map[core.Action]time.Time),
		pressed:      make(map[core.Action]bool),
	}
}

// Key records an action seen at now.
func (h *HoldTracker) Key(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !a.IsDirection() {
		h.pressed[a] = true
		return
	}
	h.last[a] = now
	delete(h.last, opposite(a))
}

// Frame returns the input at now and consumes the pending presses.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, seen := range h.last {
		if now.Sub(seen) > h.ReleaseAfter {
			delete(h.last, a)
			continue
		}
		in.Hold(a)
	}
	for a := range h.pressed {
		in.Set(a)
	}
	clear(h.pressed)
	return in
}

// Reset forgets all keys.
func (h *HoldTracker) Reset() {
	clear(h.last)
	clear(h.pressed)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

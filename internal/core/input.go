package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up (held)
	ActionDown           // S, Down arrow - move down (held)
	ActionLeft           // A, Left arrow - move left (held)
	ActionRight          // D, Right arrow - move right (held)
	ActionEquip          // E - pick up or drop the watering can
	ActionUse            // Space - use item / interact
	ActionRestart        // R key - restart the game
	ActionPause          // P, Escape - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionEquip:
		return "Equip"
	case ActionUse:
		return "Use"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four held directions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame is the input state for one simulation tick.
// Directions are level-triggered (held until released); every other action
// is edge-triggered and consumed by a single tick.
type InputFrame struct {
	Held    map[Action]bool `msgpack:"held"`
	Pressed map[Action]bool `msgpack:"pressed"`
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks a direction as held. Non-direction actions are treated as presses.
func (f *InputFrame) Hold(a Action) {
	if !a.IsDirection() {
		f.Set(a)
		return
	}
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Release clears a held direction.
func (f *InputFrame) Release(a Action) {
	delete(f.Held, a)
}

// Set marks an edge-triggered action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Has returns true if the action is held or was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Held[a] || f.Pressed[a]
}

// Directions returns the held directions in Up, Down, Left, Right order.
func (f InputFrame) Directions() []Action {
	var dirs []Action
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if f.Held[a] {
			dirs = append(dirs, a)
		}
	}
	return dirs
}

// ClearPressed drops edge-triggered actions; held directions survive.
func (f *InputFrame) ClearPressed() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	return clone
}

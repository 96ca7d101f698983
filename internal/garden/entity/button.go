package entity

import "github.com/vovakirdan/space-garden/internal/core"

// Button is a wall panel activated by standing on its tile.
type Button struct {
	Rect      core.Rect `msgpack:"rect"`
	LastPress uint64    `msgpack:"last_press"`
	Presses   int       `msgpack:"presses"`
}

// Press records a press at frame.
func (b Button) Press(frame uint64) Button {
	b.LastPress = frame
	b.Presses++
	return b
}

// Lit reports whether the button glows from a recent press.
func (b Button) Lit(frame uint64, window int) bool {
	return b.Presses > 0 && elapsed(frame, b.LastPress) < window
}

// ShieldButton closes and opens the shield doors and carries the alarm light.
type ShieldButton struct {
	Button
	Alarm      bool   `msgpack:"alarm"`
	AlarmSince uint64 `msgpack:"alarm_since"`
}

// StartAlarm turns the alarm on.
func (s ShieldButton) StartAlarm(frame uint64) ShieldButton {
	if !s.Alarm {
		s.Alarm = true
		s.AlarmSince = frame
	}
	return s
}

// StopAlarm turns the alarm off.
func (s ShieldButton) StopAlarm() ShieldButton {
	s.Alarm = false
	return s
}

// Flashing reports whether the alarm light is on at frame; it blinks every 6 frames.
func (s ShieldButton) Flashing(frame uint64) bool {
	return s.Alarm && (elapsed(frame, s.AlarmSince)/6)%2 == 0
}

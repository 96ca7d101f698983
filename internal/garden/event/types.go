// Package event implements the timed event queue that drives the ship's
// story: black holes, impacts, cat invasions and the permission flags that
// unlock random behaviour.
package event

import "fmt"

// Type is the closed set of event kinds.
type Type uint8

const (
	BlackHoleAppears Type = iota + 1
	BlackHolePulseSmall
	BlackHolePulseLarge
	BlackHoleCollapse
	ShakeNone
	ShakeMild
	ShakeSevere
	AlarmStart
	AlarmStop
	Impact
	EarlyOpenShield1
	EarlyOpenShield2
	EarlyOpenShield3
	DeathByImpact
	CatInvasionSmall
	CatInvasionLarge
	PortalOpen
	PortalClose
	AllowSlingshot
	DisallowSlingshot
	AllowPlanetSpawn
	DisallowPlanetSpawn
	AllowCabinFever
	DisallowCabinFever
	Slingshot
	GameoverReplayFrame

	lastType = GameoverReplayFrame
)

var typeNames = map[Type]string{
	BlackHoleAppears:    "BLACK_HOLE_APPEARS",
	BlackHolePulseSmall: "BLACK_HOLE_PULSE_SMALL",
	BlackHolePulseLarge: "BLACK_HOLE_PULSE_LARGE",
	BlackHoleCollapse:   "BLACK_HOLE_COLLAPSE",
	ShakeNone:           "SHAKE_NONE",
	ShakeMild:           "SHAKE_MILD",
	ShakeSevere:         "SHAKE_SEVERE",
	AlarmStart:          "ALARM_START",
	AlarmStop:           "ALARM_STOP",
	Impact:              "IMPACT",
	EarlyOpenShield1:    "EARLY_OPEN_SHIELD_1",
	EarlyOpenShield2:    "EARLY_OPEN_SHIELD_2",
	EarlyOpenShield3:    "EARLY_OPEN_SHIELD_3",
	DeathByImpact:       "DEATH_BY_IMPACT",
	CatInvasionSmall:    "CAT_INVASION_SMALL",
	CatInvasionLarge:    "CAT_INVASION_LARGE",
	PortalOpen:          "PORTAL_OPEN",
	PortalClose:         "PORTAL_CLOSE",
	AllowSlingshot:      "ALLOW_SLINGSHOT",
	DisallowSlingshot:   "DISALLOW_SLINGSHOT",
	AllowPlanetSpawn:    "ALLOW_PLANET_SPAWN",
	DisallowPlanetSpawn: "DISALLOW_PLANET_SPAWN",
	AllowCabinFever:     "ALLOW_CABIN_FEVER",
	DisallowCabinFever:  "DISALLOW_CABIN_FEVER",
	Slingshot:           "SLINGSHOT",
	GameoverReplayFrame: "GAMEOVER_REPLAY_FRAME",
}

// String returns the upper-snake event name.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Valid reports whether t is a known event type.
func (t Type) Valid() bool {
	return t >= BlackHoleAppears && t <= lastType
}

// AllTypes lists every event type in declaration order.
func AllTypes() []Type {
	out := make([]Type, 0, int(lastType))
	for t := BlackHoleAppears; t <= lastType; t++ {
		out = append(out, t)
	}
	return out
}

// AnimEvent is a one-shot world mutation due at Start. Duration is how long
// the event stays active for the renderer after it fires.
type AnimEvent struct {
	Type     Type   `msgpack:"type"`
	Start    uint64 `msgpack:"start"`
	Duration uint64 `msgpack:"duration"`
	Finished bool   `msgpack:"finished"`
}

// At creates an instantaneous event.
func At(t Type, start uint64) AnimEvent {
	return AnimEvent{Type: t, Start: start}
}

// Progress returns how far through its duration the event is at frame, 0 to 1.
func (e AnimEvent) Progress(frame uint64) float64 {
	if e.Duration == 0 || frame >= e.Start+e.Duration {
		return 1
	}
	if frame <= e.Start {
		return 0
	}
	return float64(frame-e.Start) / float64(e.Duration)
}

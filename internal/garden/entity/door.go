package entity

import (
	"fmt"

	"github.com/vovakirdan/space-garden/internal/config"
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/collision"
)

// DoorState is shared by the airlock and the shield doors.
type DoorState uint8

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
	DoorClosing
)

// String returns the state name.
func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpening:
		return "opening"
	case DoorOpen:
		return "open"
	case DoorClosing:
		return "closing"
	default:
		return fmt.Sprintf("DoorState(%d)", uint8(s))
	}
}

// toggle is the explicit activation rule: closed doors open, open doors close,
// doors in motion ignore the request.
func (s DoorState) toggle() (DoorState, bool) {
	switch s {
	case DoorClosed:
		return DoorOpening, true
	case DoorOpen:
		return DoorClosing, true
	case DoorOpening, DoorClosing:
		return s, false
	default:
		panic(fmt.Sprintf("entity: unknown door state %d", s))
	}
}

// settle is the state a moving door comes to rest in.
func (s DoorState) settle() DoorState {
	switch s {
	case DoorOpening:
		return DoorOpen
	case DoorClosing:
		return DoorClosed
	default:
		return s
	}
}

// Airlock is the singleton hatch to space. Door is the hatch itself;
// Vacuum is the chamber beyond it where anything pulled in is lost.
type Airlock struct {
	Door            core.Rect    `msgpack:"door"`
	Vacuum          core.Rect    `msgpack:"vacuum"`
	State           DoorState    `msgpack:"state"`
	LastInteraction uint64       `msgpack:"last_interaction"`
	ColliderID      collision.ID `msgpack:"collider_id"`
}

// NewAirlock creates a closed airlock.
func NewAirlock(id collision.ID, door, vacuum core.Rect) Airlock {
	return Airlock{Door: door, Vacuum: vacuum, State: DoorClosed, ColliderID: id}
}

// Activate toggles the airlock if it is at rest.
func (a Airlock) Activate(frame uint64) Airlock {
	if next, ok := a.State.toggle(); ok {
		a.State = next
		a.LastInteraction = frame
	}
	return a
}

// Advance settles a moving door once its travel time has passed.
// LastInteraction keeps the frame of the activation.
func (a Airlock) Advance(frame uint64, cfg config.AirlockConfig) Airlock {
	if a.State != DoorOpening && a.State != DoorClosing {
		return a
	}
	if elapsed(frame, a.LastInteraction) >= cfg.MaxDoorOffset+cfg.DoorDelay {
		a.State = a.State.settle()
	}
	return a
}

// Airtight reports whether the airlock holds pressure: closed, or opening
// but still within the delay before the door starts to move.
func (a Airlock) Airtight(frame uint64, cfg config.AirlockConfig) bool {
	switch a.State {
	case DoorClosed:
		return true
	case DoorOpening:
		return elapsed(frame, a.LastInteraction) < cfg.DoorDelay
	case DoorOpen, DoorClosing:
		return false
	default:
		panic(fmt.Sprintf("entity: unknown door state %d", a.State))
	}
}

// DoorOffset is how far the door has slid, in pixels, for rendering.
func (a Airlock) DoorOffset(frame uint64, cfg config.AirlockConfig) int {
	moved := core.Clamp(elapsed(frame, a.LastInteraction)-cfg.DoorDelay, 0, cfg.MaxDoorOffset)
	switch a.State {
	case DoorClosed:
		return 0
	case DoorOpen:
		return cfg.MaxDoorOffset
	case DoorOpening:
		return moved
	case DoorClosing:
		return cfg.MaxDoorOffset - moved
	default:
		panic(fmt.Sprintf("entity: unknown door state %d", a.State))
	}
}

// Pull returns the displacement applied to something at pos while the
// airlock is open: towards the vacuum chamber, weaker with distance.
func (a Airlock) Pull(pos core.Coord, cfg config.AirlockConfig) core.Coord {
	d := a.Vacuum.Center().Sub(pos)
	dist := d.Magnitude()
	if dist < 1 {
		return core.Coord{}
	}
	mag := cfg.PixelSpeed
	if f := cfg.PixelSpeed * cfg.PullFalloff / dist; f < mag {
		mag = f
	}
	return d.Scale(mag / dist)
}

// Collider is a wall while the door holds pressure.
func (a Airlock) Collider(frame uint64, cfg config.AirlockConfig) collision.Entry {
	t := collision.TypeNone
	if a.Airtight(frame, cfg) {
		t = collision.TypeWall
	}
	return collision.Entry{ID: a.ColliderID, Type: t, Rect: a.Door}
}

// ShieldDoor covers one window against impacts. Its slats close one after
// another, SlatDelay frames apart.
type ShieldDoor struct {
	Window         core.Rect `msgpack:"window"`
	State          DoorState `msgpack:"state"`
	LastActivation uint64    `msgpack:"last_activation"`
}

// shieldTravel is the frames from first slat moving to last slat settled.
func shieldTravel(cfg config.ShieldConfig) int {
	return cfg.SlatDelay*(cfg.Slats-1) + cfg.SlatTravel
}

// Activate toggles the door if it is at rest.
func (d ShieldDoor) Activate(frame uint64) ShieldDoor {
	if next, ok := d.State.toggle(); ok {
		d.State = next
		d.LastActivation = frame
	}
	return d
}

// EarlyOpen starts opening a closed door regardless of the button.
func (d ShieldDoor) EarlyOpen(frame uint64) ShieldDoor {
	if d.State == DoorClosed {
		d.State = DoorOpening
		d.LastActivation = frame
	}
	return d
}

// Advance settles a moving door once every slat has finished.
func (d ShieldDoor) Advance(frame uint64, cfg config.ShieldConfig) ShieldDoor {
	if d.State != DoorOpening && d.State != DoorClosing {
		return d
	}
	if elapsed(frame, d.LastActivation) >= shieldTravel(cfg) {
		d.State = d.State.settle()
	}
	return d
}

// SlatCover returns how far slat i covers the window, 0 (open) to 1 (closed).
func (d ShieldDoor) SlatCover(i int, frame uint64, cfg config.ShieldConfig) float64 {
	t := float64(elapsed(frame, d.LastActivation)-i*cfg.SlatDelay) / float64(max(cfg.SlatTravel, 1))
	t = core.ClampF(t, 0, 1)
	switch d.State {
	case DoorClosed:
		return 1
	case DoorOpen:
		return 0
	case DoorClosing:
		return t
	case DoorOpening:
		return 1 - t
	default:
		panic(fmt.Sprintf("entity: unknown door state %d", d.State))
	}
}

// ShieldDoors are the three windows of the ship.
type ShieldDoors [3]ShieldDoor

// AllClosed reports whether every window is fully shielded.
func (s ShieldDoors) AllClosed() bool {
	for _, d := range s {
		if d.State != DoorClosed {
			return false
		}
	}
	return true
}

// Activate toggles every door.
func (s ShieldDoors) Activate(frame uint64) ShieldDoors {
	for i := range s {
		s[i] = s[i].Activate(frame)
	}
	return s
}

// Advance settles every door.
func (s ShieldDoors) Advance(frame uint64, cfg config.ShieldConfig) ShieldDoors {
	for i := range s {
		s[i] = s[i].Advance(frame, cfg)
	}
	return s
}

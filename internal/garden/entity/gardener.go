package entity

import (
	"github.com/vovakirdan/space-garden/internal/config"
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/collision"
)

// Gardener is the player character. Exactly one exists per world.
type Gardener struct {
	Pos           core.Coord   `msgpack:"pos"`
	Width         float64      `msgpack:"w"`
	Height        float64      `msgpack:"h"`
	Facing        Direction    `msgpack:"facing"` // DirLeft or DirRight
	Equipped      bool         `msgpack:"equipped"`
	Moving        bool         `msgpack:"moving"`
	WateringUntil uint64       `msgpack:"watering_until"`
	ColliderID    collision.ID `msgpack:"collider_id"`
	Death         *DeathRecord `msgpack:"death"`
}

// NewGardener places the gardener with its drawing rectangle at pos.
func NewGardener(id collision.ID, pos core.Coord, cfg config.GardenerConfig) Gardener {
	return Gardener{
		Pos:        pos,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Facing:     DirRight,
		ColliderID: id,
	}
}

// Move returns the gardener displaced by the held directions. Two perpendicular
// directions move diagonally at the slower per-axis speed; opposing directions
// cancel. The gardener does not wrap around the world.
func (g Gardener) Move(dirs []Direction, cfg config.GardenerConfig) Gardener {
	var d core.Coord
	for _, dir := range dirs {
		d = d.Add(dir.Vector())
	}
	d.X = core.ClampF(d.X, -1, 1)
	d.Y = core.ClampF(d.Y, -1, 1)

	next := g
	switch {
	case d.X == 0 && d.Y == 0:
		next.Moving = false
		return next
	case d.X != 0 && d.Y != 0:
		d = d.Scale(cfg.DiagonalSpeed)
	default:
		d = d.Scale(cfg.Speed)
	}
	next.Pos = g.Pos.Add(d)
	next.Moving = true
	if d.X < 0 {
		next.Facing = DirLeft
	} else if d.X > 0 {
		next.Facing = DirRight
	}
	return next
}

// WithPos returns the gardener moved to pos.
func (g Gardener) WithPos(pos core.Coord) Gardener {
	g.Pos = pos
	return g
}

// WithEquipped returns the gardener holding or not holding the watering can.
func (g Gardener) WithEquipped(equipped bool) Gardener {
	g.Equipped = equipped
	return g
}

// StartWatering shows the watering pose until frame+duration.
func (g Gardener) StartWatering(frame uint64, duration int) Gardener {
	g.WateringUntil = frame + uint64(duration)
	return g
}

// Watering reports whether the watering pose is active at frame.
func (g Gardener) Watering(frame uint64) bool {
	return frame < g.WateringUntil
}

// Die records a death; an existing record is kept.
func (g Gardener) Die(cause DeathCause, frame uint64) Gardener {
	if g.Death == nil {
		g.Death = &DeathRecord{Cause: cause, Frame: frame}
	}
	return g
}

// Dead reports whether a death has been recorded.
func (g Gardener) Dead() bool {
	return g.Death != nil
}

// CollisionRect is the square under the gardener's feet.
func (g Gardener) CollisionRect() core.Rect {
	return footRect(g.Pos, g.Width, g.Height)
}

// InteractionRect is the area within reach for equip and use.
func (g Gardener) InteractionRect(reach float64) core.Rect {
	return g.CollisionRect().Grow(reach)
}

// Collider implements collision.Collider.
func (g Gardener) Collider() collision.Entry {
	return collision.Entry{ID: g.ColliderID, Type: collision.TypeGardener, Rect: g.CollisionRect()}
}

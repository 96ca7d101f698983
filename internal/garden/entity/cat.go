package entity

import (
	"github.com/vovakirdan/space-garden/internal/config"
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/collision"
)

// Cat wanders the ship after an invasion.
type Cat struct {
	Pos        core.Coord   `msgpack:"pos"`
	Width      float64      `msgpack:"w"`
	Height     float64      `msgpack:"h"`
	Facing     Direction    `msgpack:"facing"`
	ColliderID collision.ID `msgpack:"collider_id"`
}

// NewCat places a cat at pos facing a random direction.
func NewCat(id collision.ID, pos core.Coord, cfg config.CatConfig, rng Rand) Cat {
	return Cat{
		Pos:        pos,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Facing:     Cardinals[rng.IntN(len(Cardinals))],
		ColliderID: id,
	}
}

// Step turns at random and walks one step. The result is not wrapped.
func (c Cat) Step(cfg config.CatConfig, rng Rand) Cat {
	if rng.Float64() < cfg.ChangeProbability {
		c = c.Turn(rng)
	}
	c.Pos = c.Pos.Add(c.Facing.Vector().Scale(cfg.Speed))
	return c
}

// Wrap folds the cat around a w×h world.
func (c Cat) Wrap(w, h float64) Cat {
	c.Pos = c.Pos.Wrap(w, h)
	return c
}

// Turn picks a new random direction.
func (c Cat) Turn(rng Rand) Cat {
	c.Facing = Cardinals[rng.IntN(len(Cardinals))]
	return c
}

// WithPos returns the cat at pos.
func (c Cat) WithPos(pos core.Coord) Cat {
	c.Pos = pos
	return c
}

// CollisionRect covers the whole cat.
func (c Cat) CollisionRect() core.Rect {
	return core.RectAt(c.Pos, c.Width, c.Height)
}

// Collider implements collision.Collider.
func (c Cat) Collider() collision.Entry {
	return collision.Entry{ID: c.ColliderID, Type: collision.TypeCat, Rect: c.CollisionRect()}
}

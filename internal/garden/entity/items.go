package entity

import (
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/collision"
)

// WateringCan lies on the floor until the gardener picks it up.
type WateringCan struct {
	Pos  core.Coord `msgpack:"pos"`
	Size float64    `msgpack:"size"`
	Held bool       `msgpack:"held"`
}

// Rect is the can's pickup area.
func (c WateringCan) Rect() core.Rect {
	return core.RectAt(c.Pos, c.Size, c.Size)
}

// PickUp marks the can as carried.
func (c WateringCan) PickUp() WateringCan {
	c.Held = true
	return c
}

// DropAt puts the can down at pos.
func (c WateringCan) DropAt(pos core.Coord) WateringCan {
	c.Held = false
	c.Pos = pos
	return c
}

// Follow keeps a carried can beside the gardener.
func (c WateringCan) Follow(g Gardener) WateringCan {
	if !c.Held {
		return c
	}
	r := g.CollisionRect()
	if g.Facing == DirLeft {
		c.Pos = core.C(r.A.X-c.Size/2, r.A.Y)
	} else {
		c.Pos = core.C(r.B.X-c.Size/2, r.A.Y)
	}
	return c
}

// Wall is a static obstacle: hull, railing or ladder.
type Wall struct {
	Rect       core.Rect      `msgpack:"rect"`
	Type       collision.Type `msgpack:"type"`
	ColliderID collision.ID   `msgpack:"collider_id"`
}

// Collider implements collision.Collider.
func (w Wall) Collider() collision.Entry {
	return collision.Entry{ID: w.ColliderID, Type: w.Type, Rect: w.Rect}
}

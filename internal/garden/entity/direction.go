// Package entity defines the value types that populate the ship and their
// per-tick transitions. Every transition returns a new value; slices inside
// an entity are copied before they are changed.
package entity

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-garden/internal/core"
)

// Rand is the random source entity transitions draw from.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Cardinals lists the four directions in a fixed order.
var Cardinals = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		panic(fmt.Sprintf("entity: unknown direction %d", d))
	}
}

// Perpendicular returns the two directions at right angles to d.
func (d Direction) Perpendicular() (Direction, Direction) {
	if d == DirUp || d == DirDown {
		return DirLeft, DirRight
	}
	return DirUp, DirDown
}

// Vector returns the unit step for d in screen coordinates (y grows downwards).
func (d Direction) Vector() core.Coord {
	switch d {
	case DirUp:
		return core.C(0, -1)
	case DirDown:
		return core.C(0, 1)
	case DirLeft:
		return core.C(-1, 0)
	case DirRight:
		return core.C(1, 0)
	default:
		panic(fmt.Sprintf("entity: unknown direction %d", d))
	}
}

// DirectionToward returns the cardinal direction along the dominant axis
// from one point to another. Ties prefer the horizontal axis.
func DirectionToward(from, to core.Coord) Direction {
	d := to.Sub(from)
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X < 0 {
			return DirLeft
		}
		return DirRight
	}
	if d.Y < 0 {
		return DirUp
	}
	return DirDown
}

// DirectionFromAction maps a held input direction.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// footRect is the collision box of a standing sprite: a square at the
// bottom of its w×h drawing rectangle.
func footRect(pos core.Coord, w, h float64) core.Rect {
	side := math.Min(w, h)
	return core.RectAt(core.C(pos.X, pos.Y+h-side), w, side)
}

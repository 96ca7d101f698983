// Package core provides fundamental types and utilities for the garden platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Coord is an immutable 2D point in world pixels.
// Every operation returns a new value.
type Coord struct {
	X float64 `msgpack:"x" yaml:"x"`
	Y float64 `msgpack:"y" yaml:"y"`
}

// C is shorthand for constructing a Coord.
func C(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

// Add translates the point by another.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the vector from o to c.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Scale multiplies both components by k.
func (c Coord) Scale(k float64) Coord {
	return Coord{X: c.X * k, Y: c.Y * k}
}

// Magnitude returns the euclidean length of the vector.
func (c Coord) Magnitude() float64 {
	return math.Hypot(c.X, c.Y)
}

// Snap rounds both components to the nearest integer.
func (c Coord) Snap() Coord {
	return Coord{X: math.Round(c.X), Y: math.Round(c.Y)}
}

// Wrap folds the point into [0,w) x [0,h).
func (c Coord) Wrap(w, h float64) Coord {
	return Coord{X: wrapF(c.X, w), Y: wrapF(c.Y, h)}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", c.X, c.Y)
}

func wrapF(v, m float64) float64 {
	if m <= 0 {
		return v
	}
	v = math.Mod(v, m)
	if v < 0 {
		v += m
	}
	return v
}

// Rect is an axis-aligned box with top-left corner A and bottom-right corner B.
// A.X <= B.X and A.Y <= B.Y holds for every rectangle built through NewRect or RectAt.
type Rect struct {
	A Coord `msgpack:"a"`
	B Coord `msgpack:"b"`
}

// NewRect creates a rectangle from its corners.
// Returns an error if the corners are inverted.
func NewRect(a, b Coord) (Rect, error) {
	if a.X > b.X || a.Y > b.Y {
		return Rect{}, fmt.Errorf("core: inverted rect corners %v %v", a, b)
	}
	return Rect{A: a, B: b}, nil
}

// MustRect is NewRect for literal constants. Panics on inverted corners.
func MustRect(a, b Coord) Rect {
	r, err := NewRect(a, b)
	if err != nil {
		panic(err)
	}
	return r
}

// RectAt creates a rectangle at pos with the given size.
// Negative sizes are treated as zero.
func RectAt(pos Coord, w, h float64) Rect {
	return Rect{A: pos, B: Coord{X: pos.X + math.Max(w, 0), Y: pos.Y + math.Max(h, 0)}}
}

// Valid reports whether the corners are ordered.
func (r Rect) Valid() bool {
	return r.A.X <= r.B.X && r.A.Y <= r.B.Y
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.B.X - r.A.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.B.Y - r.A.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Coord {
	return Coord{X: (r.A.X + r.B.X) / 2, Y: (r.A.Y + r.B.Y) / 2}
}

// Translate moves both corners by d.
func (r Rect) Translate(d Coord) Rect {
	return Rect{A: r.A.Add(d), B: r.B.Add(d)}
}

// Overlaps returns true if the rectangles share interior area.
// Touching edges do not overlap. Results for invalid rectangles are undefined.
func (r Rect) Overlaps(o Rect) bool {
	if math.Max(r.A.X, o.A.X) >= math.Min(r.B.X, o.B.X) {
		return false
	}
	if math.Max(r.A.Y, o.A.Y) >= math.Min(r.B.Y, o.B.Y) {
		return false
	}
	return true
}

// Contains returns true if the point lies inside the rectangle (B exclusive).
func (r Rect) Contains(p Coord) bool {
	return p.X >= r.A.X && p.X < r.B.X && p.Y >= r.A.Y && p.Y < r.B.Y
}

// Grow expands the rectangle by m on every side.
func (r Rect) Grow(m float64) Rect {
	return Rect{A: Coord{X: r.A.X - m, Y: r.A.Y - m}, B: Coord{X: r.B.X + m, Y: r.B.Y + m}}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

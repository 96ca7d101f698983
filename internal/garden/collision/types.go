// Package collision holds the collider registry and rectangle-overlap
// detection used by every moving entity in the garden.
package collision

import "fmt"

// Type tags a collider for the exception table.
type Type uint8

const (
	TypeNone Type = iota // Never collides
	TypeGardener
	TypeNPCNormal
	TypeNPCFrazzled
	TypeWall
	TypeGardenerWall // Railings: block the gardener only
	TypePlant
	TypeLadder
	TypeCat

	typeCount
)

// Types lists every collider type in declaration order.
func Types() []Type {
	out := make([]Type, 0, typeCount)
	for t := TypeNone; t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeGardener:
		return "Gardener"
	case TypeNPCNormal:
		return "NPCNormal"
	case TypeNPCFrazzled:
		return "NPCFrazzled"
	case TypeWall:
		return "Wall"
	case TypeGardenerWall:
		return "GardenerWall"
	case TypePlant:
		return "Plant"
	case TypeLadder:
		return "Ladder"
	case TypeCat:
		return "Cat"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Valid reports whether t belongs to the closed set.
func (t Type) Valid() bool {
	return t < typeCount
}

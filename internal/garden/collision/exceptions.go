package collision

import "fmt"

// pair is an unordered exemption: colliders of these types pass through each other.
type pair struct{ a, b Type }

var exemptPairs = []pair{
	{TypeGardener, TypePlant},
	{TypeGardener, TypeLadder},
	{TypeNPCNormal, TypeGardenerWall},
	{TypeNPCFrazzled, TypeGardenerWall},
	{TypeCat, TypeGardenerWall},
	{TypeNPCFrazzled, TypeNPCNormal},
	{TypeNPCFrazzled, TypeNPCFrazzled},
	{TypeNPCFrazzled, TypeCat},
	{TypeCat, TypeCat},
	{TypeCat, TypePlant},
}

// ExceptionTable is a symmetric matrix of exempt type pairs.
type ExceptionTable [typeCount][typeCount]bool

// exceptions is built once from exemptPairs; both orientations are set.
var exceptions = buildExceptions(exemptPairs)

func buildExceptions(pairs []pair) ExceptionTable {
	var t ExceptionTable
	for _, p := range pairs {
		if !p.a.Valid() || !p.b.Valid() {
			panic(fmt.Sprintf("collision: invalid exemption %v/%v", p.a, p.b))
		}
		t[p.a][p.b] = true
		t[p.b][p.a] = true
	}
	return t
}

// Exceptions returns a copy of the active exception table.
func Exceptions() ExceptionTable {
	return exceptions
}

// Exempt reports whether colliders of types a and b ignore each other.
// TypeNone is exempt from everything regardless of the table.
func Exempt(a, b Type) bool {
	if a == TypeNone || b == TypeNone {
		return true
	}
	if !a.Valid() || !b.Valid() {
		panic(fmt.Sprintf("collision: unknown collider type pair %v/%v", a, b))
	}
	return exceptions[a][b]
}

// Symmetric reports whether the table is its own transpose.
func (t ExceptionTable) Symmetric() bool {
	for i := range t {
		for j := range t[i] {
			if t[i][j] != t[j][i] {
				return false
			}
		}
	}
	return true
}

package entity

import "fmt"

// DeathCause records how a crew member or the gardener died.
type DeathCause uint8

const (
	CauseAsphyxiation DeathCause = iota + 1
	CauseVacuum
	CauseImpact
)

// String returns a lower-case description used in status messages and run history.
func (c DeathCause) String() string {
	switch c {
	case CauseAsphyxiation:
		return "asphyxiation"
	case CauseVacuum:
		return "vacuum"
	case CauseImpact:
		return "impact"
	default:
		return fmt.Sprintf("DeathCause(%d)", uint8(c))
	}
}

// DeathRecord marks an entity as dying from Frame on.
type DeathRecord struct {
	Cause DeathCause `msgpack:"cause"`
	Frame uint64     `msgpack:"frame"`
}

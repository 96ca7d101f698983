package entity

import (
	"math"

	"github.com/vovakirdan/space-garden/internal/config"
	"github.com/vovakirdan/space-garden/internal/core"
)

// BlackHole hangs outside the ship. Its radius eases towards a target so
// pulses and the collapse animate over several frames.
type BlackHole struct {
	Present      bool       `msgpack:"present"`
	Pos          core.Coord `msgpack:"pos"`
	Radius       float64    `msgpack:"radius"`
	TargetRadius float64    `msgpack:"target_radius"`
	AppearedAt   uint64     `msgpack:"appeared_at"`
	Collapsing   bool       `msgpack:"collapsing"`
}

// Appear spawns the black hole at its configured position.
func (b BlackHole) Appear(frame uint64, cfg config.HeavensConfig) BlackHole {
	return BlackHole{
		Present:      true,
		Pos:          core.C(cfg.BlackHoleX, cfg.BlackHoleY),
		TargetRadius: cfg.BlackHoleRadius,
		AppearedAt:   frame,
	}
}

// PulseTo sets a new target radius.
func (b BlackHole) PulseTo(radius float64) BlackHole {
	if b.Present && !b.Collapsing {
		b.TargetRadius = radius
	}
	return b
}

// Collapse shrinks the black hole to nothing.
func (b BlackHole) Collapse() BlackHole {
	if b.Present {
		b.Collapsing = true
		b.TargetRadius = 0
	}
	return b
}

// Step eases the radius and removes a collapsed black hole.
func (b BlackHole) Step(cfg config.HeavensConfig) BlackHole {
	if !b.Present {
		return b
	}
	b.Radius += (b.TargetRadius - b.Radius) * cfg.RadiusEasing
	if b.Collapsing && b.Radius < 0.5 {
		return BlackHole{}
	}
	return b
}

// Recent reports whether the black hole appeared less than window frames ago.
func (b BlackHole) Recent(frame, window uint64) bool {
	return b.Present && frame >= b.AppearedAt && frame-b.AppearedAt < window
}

// DrifterKind selects the drifter's glyph.
type DrifterKind uint8

const (
	DrifterPlanet DrifterKind = iota
	DrifterMoon
	DrifterStar
	drifterKinds
)

// Drifter is a planet or star crossing the sky behind the ship.
type Drifter struct {
	Pos   core.Coord  `msgpack:"pos"`
	Vel   core.Coord  `msgpack:"vel"`
	Kind  DrifterKind `msgpack:"kind"`
	Slung bool        `msgpack:"slung"`
}

// SpawnDrifter creates a drifter entering from the left or right edge of a w×h sky.
func SpawnDrifter(w, h float64, cfg config.HeavensConfig, rng Rand) Drifter {
	speed := cfg.DrifterMinSpeed + rng.Float64()*(cfg.DrifterMaxSpeed-cfg.DrifterMinSpeed)
	y := rng.Float64() * h
	kind := DrifterKind(rng.IntN(int(drifterKinds)))
	if rng.IntN(2) == 0 {
		return Drifter{Pos: core.C(0, y), Vel: core.C(speed, 0), Kind: kind}
	}
	return Drifter{Pos: core.C(w, y), Vel: core.C(-speed, 0), Kind: kind}
}

// Drift moves the drifter by its velocity.
func (d Drifter) Drift() Drifter {
	d.Pos = d.Pos.Add(d.Vel)
	return d
}

// Slingshot flings the drifter away from centre with extra speed.
func (d Drifter) Slingshot(center core.Coord, boost float64) Drifter {
	away := d.Pos.Sub(center)
	mag := away.Magnitude()
	if mag < 1 {
		away = d.Vel
		mag = math.Max(d.Vel.Magnitude(), 1)
	}
	d.Vel = d.Vel.Add(away.Scale(boost / mag))
	d.Slung = true
	return d
}

// Gone reports whether the drifter has left the sky with a margin.
func (d Drifter) Gone(w, h, margin float64) bool {
	return d.Pos.X < -margin || d.Pos.X > w+margin || d.Pos.Y < -h-margin || d.Pos.Y > 2*h+margin
}

// Portal is where invading cats come through.
type Portal struct {
	Pos      core.Coord `msgpack:"pos"`
	Open     bool       `msgpack:"open"`
	OpenedAt uint64     `msgpack:"opened_at"`
}

// WithOpen opens or closes the portal.
func (p Portal) WithOpen(open bool, frame uint64) Portal {
	if open && !p.Open {
		p.OpenedAt = frame
	}
	p.Open = open
	return p
}

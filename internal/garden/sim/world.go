package sim

import (
	"slices"

	"github.com/vovakirdan/space-garden/internal/config"
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/collision"
	"github.com/vovakirdan/space-garden/internal/garden/entity"
	"github.com/vovakirdan/space-garden/internal/garden/event"
)

// Flags are the story permissions toggled by timeline events.
type Flags struct {
	CabinFever  bool `msgpack:"cabin_fever"`
	PlanetSpawn bool `msgpack:"planet_spawn"`
	Slingshot   bool `msgpack:"slingshot"`
}

// World is one complete snapshot of the simulation. Tick never modifies
// a World it is given; it returns a new one.
//
// Walls and Beds are never changed after construction and are shared
// between snapshots.
type World struct {
	Seed       uint64  `msgpack:"seed"`
	StartFrame uint64  `msgpack:"start_frame"`
	Frame      uint64  `msgpack:"frame"`
	Width      float64 `msgpack:"width"`  // Ship width in pixels
	Height     float64 `msgpack:"height"` // Ship height in pixels
	TileSize   float64 `msgpack:"tile"`

	Gardener     entity.Gardener     `msgpack:"gardener"`
	Can          entity.WateringCan  `msgpack:"can"`
	NPCs         []entity.NPC        `msgpack:"npcs"`
	Cats         []entity.Cat        `msgpack:"cats"`
	Plants       []entity.Plant      `msgpack:"plants"`
	Beds         []core.Rect         `msgpack:"beds"`
	Walls        []entity.Wall       `msgpack:"walls"`
	Airlock      entity.Airlock      `msgpack:"airlock"`
	AirlockPanel entity.Button       `msgpack:"airlock_button"`
	ShieldPanel  entity.ShieldButton `msgpack:"shield_button"`
	Shields      entity.ShieldDoors  `msgpack:"shields"`
	BlackHole    entity.BlackHole    `msgpack:"black_hole"`
	Drifters     []entity.Drifter    `msgpack:"drifters"`
	Portal       entity.Portal       `msgpack:"portal"`
	Shake        entity.Shaker       `msgpack:"shake"`
	Status       entity.StatusBar    `msgpack:"status"`

	Flags  Flags              `msgpack:"flags"`
	Oxygen float64            `msgpack:"oxygen"`
	Events event.Scheduler    `msgpack:"events"`
	IDs    collision.IDSource `msgpack:"ids"`
	Rng    *Rand              `msgpack:"rng"`

	GameoverScheduled bool   `msgpack:"gameover_scheduled"`
	GameOver          bool   `msgpack:"game_over"`
	GameOverFrame     uint64 `msgpack:"game_over_frame"`
}

// Clone returns a snapshot that shares nothing mutable with w.
func (w *World) Clone() *World {
	c := *w
	c.NPCs = slices.Clone(w.NPCs)
	c.Cats = slices.Clone(w.Cats)
	c.Plants = slices.Clone(w.Plants)
	c.Drifters = slices.Clone(w.Drifters)
	c.Events = w.Events.Clone()
	if w.Rng != nil {
		c.Rng = w.Rng.Clone()
	}
	return &c
}

// Elapsed is the number of frames since the game started.
func (w *World) Elapsed() uint64 {
	if w.Frame < w.StartFrame {
		return 0
	}
	return w.Frame - w.StartFrame
}

// Cause describes why the game ended, or "" while the gardener lives.
func (w *World) Cause() string {
	if w.Gardener.Death == nil {
		return ""
	}
	return w.Gardener.Death.Cause.String()
}

// LivingCrew counts NPCs still aboard and alive.
func (w *World) LivingCrew() int {
	n := 0
	for _, npc := range w.NPCs {
		if npc.Active() {
			n++
		}
	}
	return n
}

// registry builds the collider side table for one tick from the snapshot.
func (w *World) registry(cfg *config.GardenConfig) *collision.Registry {
	reg := collision.NewRegistry()
	for _, wall := range w.Walls {
		reg.Put(wall.Collider())
	}
	reg.Put(w.Airlock.Collider(w.Frame, cfg.Airlock))
	for _, p := range w.Plants {
		reg.Put(p.Collider(cfg.Plant))
	}
	if !w.Gardener.Dead() {
		reg.Put(w.Gardener.Collider())
	}
	for _, n := range w.NPCs {
		if n.Active() {
			reg.Put(n.Collider())
		}
	}
	for _, c := range w.Cats {
		reg.Put(c.Collider())
	}
	return reg
}

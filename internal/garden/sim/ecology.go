package sim

import (
	"github.com/vovakirdan/space-garden/internal/garden/entity"
)

// growPlants ticks every plant. A plant that would grow into a crew member
// or a cat keeps its old size until the space is clear.
func (t *tick) growPlants() {
	w := t.w
	for i, p := range w.Plants {
		grown := p.Tick(w.Frame, t.cfg.Plant)
		if grown.Size > p.Size && t.collides(grown.Collider(t.cfg.Plant)) {
			grown.Size = p.Size
		}
		if p.Alive && !grown.Alive {
			t.post("A plant has withered.")
		}
		w.Plants[i] = grown
		t.reg.Put(grown.Collider(t.cfg.Plant))
	}
}

// OxygenDelta is the change in oxygen over one frame of w: plant output
// minus crew consumption minus the airlock leak.
func (e *Engine) OxygenDelta(w *World) float64 {
	cfg := e.cfg.Oxygen
	delta := 0.0
	for _, p := range w.Plants {
		delta += p.Oxygen(cfg.PlantFactor)
	}
	for _, n := range w.NPCs {
		delta -= n.Consumption(cfg)
	}
	if !w.Airlock.Airtight(w.Frame, e.cfg.Airlock) {
		delta -= cfg.AirlockLeak
	}
	return delta
}

// breathe applies the oxygen delta. Oxygen is capped at capacity but has
// no floor; below zero everyone aboard suffocates.
func (t *tick) breathe() {
	w := t.w
	w.Oxygen = min(w.Oxygen+t.e.OxygenDelta(w), t.cfg.Oxygen.Capacity)
	if w.Oxygen >= 0 {
		return
	}
	if !w.Gardener.Dead() {
		w.Gardener = w.Gardener.Die(entity.CauseAsphyxiation, w.Frame)
		t.reg.Remove(w.Gardener.ColliderID)
	}
	for i, n := range w.NPCs {
		if n.Active() {
			w.NPCs[i] = n.Die(entity.CauseAsphyxiation, w.Frame)
			t.reg.Remove(n.ColliderID)
		}
	}
}

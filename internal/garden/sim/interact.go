package sim

import (
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/entity"
)

// handleInput applies the edge-triggered actions before anything moves.
func (t *tick) handleInput(in core.InputFrame) {
	if t.w.Gardener.Dead() {
		return
	}
	if in.Pressed[core.ActionEquip] {
		t.toggleCan()
	}
	if in.Pressed[core.ActionUse] {
		t.use()
	}
}

// toggleCan drops a carried can or picks up one within reach.
func (t *tick) toggleCan() {
	w := t.w
	g := w.Gardener
	if w.Can.Held {
		w.Can = w.Can.DropAt(g.CollisionRect().A)
		w.Gardener = g.WithEquipped(false)
		return
	}
	if g.InteractionRect(t.cfg.Gardener.Reach).Overlaps(w.Can.Rect()) {
		w.Can = w.Can.PickUp().Follow(g)
		w.Gardener = g.WithEquipped(true)
		t.post("Picked up the watering can.")
	}
}

// use performs the first applicable interaction: water with the can, else
// harvest, press a button or sow a seed.
func (t *tick) use() {
	w := t.w
	g := w.Gardener
	reach := g.InteractionRect(t.cfg.Gardener.Reach)

	if g.Equipped {
		watered := 0
		for i, p := range w.Plants {
			if p.Alive && reach.Overlaps(p.TileRect()) {
				w.Plants[i] = p.Water(t.cfg.Plant)
				watered++
			}
		}
		w.Gardener = g.StartWatering(w.Frame, t.cfg.Gardener.WateringFrames)
		if watered > 0 {
			t.post("Watered %d plant(s).", watered)
		}
		return
	}

	for i, p := range w.Plants {
		if p.RipeFruit(t.cfg.Plant) == 0 || !reach.Overlaps(p.TileRect()) {
			continue
		}
		harvested, picked := p.Harvest(t.cfg.Plant)
		w.Plants[i] = harvested
		w.Status = w.Status.AddHarvest(picked, PointsPerFruit)
		t.post("Harvested %d fruit.", picked)
		return
	}

	if reach.Overlaps(w.AirlockPanel.Rect) {
		w.Airlock = w.Airlock.Activate(w.Frame)
		w.AirlockPanel = w.AirlockPanel.Press(w.Frame)
		t.post("Airlock %s.", w.Airlock.State)
		return
	}
	if reach.Overlaps(w.ShieldPanel.Rect) {
		w.Shields = w.Shields.Activate(w.Frame)
		w.ShieldPanel.Button = w.ShieldPanel.Press(w.Frame)
		t.post("Shields %s.", w.Shields[0].State)
		return
	}

	t.sow(g.CollisionRect().Center())
}

// sow plants a seedling in the bed under foot, replacing a withered plant.
func (t *tick) sow(foot core.Coord) {
	w := t.w
	for _, bed := range w.Beds {
		if !bed.Contains(foot) {
			continue
		}
		idx := -1
		for i, p := range w.Plants {
			if p.Pos == bed.A {
				if p.Alive {
					return
				}
				idx = i
			}
		}
		seedling := entity.NewPlant(w.IDs.Take(), bed.A, w.TileSize, w.Frame, t.cfg.Plant)
		if t.collides(seedling.Collider(t.cfg.Plant)) {
			t.post("Something is in the way.")
			return
		}
		if idx >= 0 {
			t.reg.Remove(w.Plants[idx].ColliderID)
			w.Plants[idx] = seedling
		} else {
			w.Plants = append(w.Plants, seedling)
		}
		t.reg.Put(seedling.Collider(t.cfg.Plant))
		t.post("Planted a seed.")
		return
	}
}

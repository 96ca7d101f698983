package sim

import (
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/collision"
	"github.com/vovakirdan/space-garden/internal/garden/entity"
)

// heldDirections converts the input's held actions to directions.
func heldDirections(in core.InputFrame) []entity.Direction {
	var dirs []entity.Direction
	for _, a := range in.Directions() {
		if d, ok := entity.DirectionFromAction(a); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// moveGardener commits the gardener's move unless it would collide. A
// blocked move startles every crew member it would have walked into.
func (t *tick) moveGardener(in core.InputFrame) {
	w := t.w
	g := w.Gardener
	if g.Dead() {
		return
	}
	moved := g.Move(heldDirections(in), t.cfg.Gardener)
	if !moved.Moving {
		w.Gardener = moved
		return
	}

	hits := collision.Detect(t.reg, moved.Collider(), t.e.opts)
	if len(hits) == 0 {
		w.Gardener = moved
		w.Can = w.Can.Follow(moved)
		t.reg.Put(moved.Collider())
		return
	}

	for _, h := range hits {
		if h.Type != collision.TypeNPCNormal && h.Type != collision.TypeNPCFrazzled {
			continue
		}
		i, ok := t.npcByID[h.ID]
		if !ok {
			t.e.log.Warn("collider without crew member", "id", h.ID, "frame", w.Frame)
			continue
		}
		w.NPCs[i] = w.NPCs[i].Avoid(t.cfg.NPC)
		t.startled[h.ID] = true
	}
	g.Moving = false
	g.Facing = moved.Facing
	w.Gardener = g
}

// moveNPCs walks each crew member, resolves collisions, then updates mood,
// countdowns and the airlock button. A step is checked before and after
// wrapping, so nobody leaves through a hull wall at the world's edge.
func (t *tick) moveNPCs() {
	w := t.w
	cfg := t.cfg.NPC
	ctx := entity.MoveContext{
		Gardener: w.Gardener.CollisionRect().Center(),
		Button:   w.AirlockPanel.Rect.Center(),
	}
	danger := t.danger()

	for i, pre := range w.NPCs {
		if !pre.Active() {
			continue
		}
		if _, ok := t.reg.Get(pre.ColliderID); !ok {
			t.e.log.Warn("crew member missing from registry", "id", pre.ColliderID, "frame", w.Frame)
			continue
		}

		n := pre.Move(cfg)
		n = n.ConsiderNewMovement(ctx, cfg, w.Rng)
		if wrapped := n.Wrap(w.Width, w.Height); t.collides(n.Collider()) || t.collides(wrapped.Collider()) {
			n = pre.ChooseNewMovement(ctx, cfg, w.Rng)
		} else {
			n = wrapped
		}

		before := n.Mental
		n = n.TransitionMental(danger, w.Flags.CabinFever, cfg, w.Rng)
		if n.Mental != before {
			t.e.log.Debug("crew mood changed", "id", n.ColliderID, "from", before, "to", n.Mental, "frame", w.Frame)
			if n.Mental == entity.MentalFrazzled {
				t.post("A crew member has cabin fever.")
			}
		}
		n = n.TickCountdowns(t.startled[n.ColliderID])

		onButton := n.CollisionRect().Overlaps(w.AirlockPanel.Rect)
		n = n.UpdateButton(onButton, cfg)
		if n.WantsToPush(onButton) {
			n = n.Push()
			t.pushAirlock = true
		}

		w.NPCs[i] = n
		t.reg.Put(n.Collider())
	}
}

// moveCats random-walks every cat; a blocked cat turns instead.
func (t *tick) moveCats() {
	w := t.w
	for i, c := range w.Cats {
		moved := c.Step(t.cfg.Cat, w.Rng)
		if wrapped := moved.Wrap(w.Width, w.Height); t.collides(moved.Collider()) || t.collides(wrapped.Collider()) {
			moved = c.Turn(w.Rng)
		} else {
			moved = wrapped
		}
		w.Cats[i] = moved
		t.reg.Put(moved.Collider())
	}
}

package sim

import (
	"slices"

	"github.com/vovakirdan/space-garden/internal/garden/entity"
)

// updateAirlock settles the doors and, while the airlock leaks, drags the
// gardener, the crew and cats towards the vacuum. A pull that would collide
// is cancelled. Anything whose collision rect reaches the vacuum is lost.
func (t *tick) updateAirlock() {
	w := t.w
	cfg := t.cfg.Airlock
	w.Airlock = w.Airlock.Advance(w.Frame, cfg)
	w.Shields = w.Shields.Advance(w.Frame, t.cfg.Shield)
	t.reg.Put(w.Airlock.Collider(w.Frame, cfg))

	if w.Airlock.Airtight(w.Frame, cfg) {
		return
	}
	vacuum := w.Airlock.Vacuum

	if g := w.Gardener; !g.Dead() {
		pulled := g.WithPos(g.Pos.Add(w.Airlock.Pull(g.CollisionRect().Center(), cfg)))
		if !t.collides(pulled.Collider()) {
			g = pulled
			t.reg.Put(g.Collider())
		}
		if g.CollisionRect().Overlaps(vacuum) {
			g = g.Die(entity.CauseVacuum, w.Frame)
			t.reg.Remove(g.ColliderID)
			t.post("The gardener was sucked into space.")
		}
		w.Gardener = g
	}

	for i, n := range w.NPCs {
		if !n.Active() {
			continue
		}
		pulled := n.WithPos(n.Pos.Add(w.Airlock.Pull(n.Center(), cfg)))
		if !t.collides(pulled.Collider()) {
			n = pulled
			t.reg.Put(n.Collider())
		}
		if n.CollisionRect().Overlaps(vacuum) {
			n = n.SendOffScreen(w.Frame)
			t.reg.Remove(n.ColliderID)
			t.post("A crew member was lost to space.")
			t.e.log.Info("crew member ejected", "id", n.ColliderID, "frame", w.Frame)
		}
		w.NPCs[i] = n
	}

	cats := w.Cats[:0:0]
	for _, c := range w.Cats {
		pulled := c.WithPos(c.Pos.Add(w.Airlock.Pull(c.CollisionRect().Center(), cfg)))
		if !t.collides(pulled.Collider()) {
			c = pulled
			t.reg.Put(c.Collider())
		}
		if c.CollisionRect().Overlaps(vacuum) {
			t.reg.Remove(c.ColliderID)
			continue
		}
		cats = append(cats, c)
	}
	if len(cats) < len(w.Cats) {
		t.post("%d cat(s) drifted into space.", len(w.Cats)-len(cats))
	}
	w.Cats = slices.Clip(cats)
}

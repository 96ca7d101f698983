package sim

import (
	"fmt"

	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/entity"
	"github.com/vovakirdan/space-garden/internal/garden/event"
)

// Cat grid sides for the two invasion waves.
const (
	smallInvasion = 2
	largeInvasion = 3
)

// runEvents steps the scheduler, applying every due event to the world.
func (t *tick) runEvents() {
	if t.w.Events.Step(t.w.Frame, t.apply) {
		t.e.log.Info("game over", "frame", t.w.Frame, "cause", t.w.Cause())
	}
}

// apply performs the one-time side effect of ev.
func (t *tick) apply(ev event.AnimEvent) event.Outcome {
	w := t.w
	cfg := t.cfg
	t.e.log.Debug("event", "type", ev.Type, "frame", w.Frame)

	switch ev.Type {
	case event.BlackHoleAppears:
		w.BlackHole = w.BlackHole.Appear(w.Frame, cfg.Heavens)
		t.post("A black hole has appeared!")
	case event.BlackHolePulseSmall:
		w.BlackHole = w.BlackHole.PulseTo(cfg.Heavens.PulseSmall)
	case event.BlackHolePulseLarge:
		w.BlackHole = w.BlackHole.PulseTo(cfg.Heavens.PulseLarge)
		t.post("Close the shields!")
	case event.BlackHoleCollapse:
		w.BlackHole = w.BlackHole.Collapse()
	case event.ShakeNone:
		w.Shake = w.Shake.WithLevel(entity.ShakeNone, w.Frame)
	case event.ShakeMild:
		w.Shake = w.Shake.WithLevel(entity.ShakeMild, w.Frame)
	case event.ShakeSevere:
		w.Shake = w.Shake.WithLevel(entity.ShakeSevere, w.Frame)
	case event.AlarmStart:
		w.ShieldPanel = w.ShieldPanel.StartAlarm(w.Frame)
	case event.AlarmStop:
		w.ShieldPanel = w.ShieldPanel.StopAlarm()
	case event.Impact:
		out := event.Outcome{Ongoing: true}
		if w.Shields.AllClosed() {
			out.Spawn = event.EarlyOpenSequence(w.Frame, cfg.Shield)
			t.post("The shields held.")
		} else {
			out.Spawn = event.ImpactDeathSequence(w.Frame)
		}
		return out
	case event.EarlyOpenShield1, event.EarlyOpenShield2, event.EarlyOpenShield3:
		i := int(ev.Type - event.EarlyOpenShield1)
		w.Shields[i] = w.Shields[i].EarlyOpen(w.Frame)
	case event.DeathByImpact:
		t.killAll(entity.CauseImpact)
	case event.CatInvasionSmall:
		t.spawnCats(smallInvasion)
	case event.CatInvasionLarge:
		t.spawnCats(largeInvasion)
	case event.PortalOpen:
		w.Portal = w.Portal.WithOpen(true, w.Frame)
	case event.PortalClose:
		w.Portal = w.Portal.WithOpen(false, w.Frame)
	case event.AllowSlingshot:
		w.Flags.Slingshot = true
	case event.DisallowSlingshot:
		w.Flags.Slingshot = false
	case event.AllowPlanetSpawn:
		w.Flags.PlanetSpawn = true
	case event.DisallowPlanetSpawn:
		w.Flags.PlanetSpawn = false
	case event.AllowCabinFever:
		w.Flags.CabinFever = true
	case event.DisallowCabinFever:
		w.Flags.CabinFever = false
	case event.Slingshot:
		t.slingAll()
	case event.GameoverReplayFrame:
		w.GameOver = true
		w.GameOverFrame = w.Frame
		return event.Outcome{Halt: true}
	default:
		panic(fmt.Sprintf("sim: unhandled event %v", ev.Type))
	}
	return event.Outcome{}
}

// killAll ends everyone aboard.
func (t *tick) killAll(cause entity.DeathCause) {
	w := t.w
	if !w.Gardener.Dead() {
		w.Gardener = w.Gardener.Die(cause, w.Frame)
		t.reg.Remove(w.Gardener.ColliderID)
	}
	for i, n := range w.NPCs {
		if n.Active() {
			w.NPCs[i] = n.Die(cause, w.Frame)
			t.reg.Remove(n.ColliderID)
		}
	}
}

// spawnCats drops an n×n grid of cats centred on the portal. Cells that
// would overlap something are skipped.
func (t *tick) spawnCats(n int) {
	w := t.w
	cfg := t.cfg.Cat
	origin := w.Portal.Pos.Sub(core.C(cfg.Width/2, cfg.Height/2))
	half := float64(n-1) / 2
	spawned := 0
	for row := range n {
		for col := range n {
			off := core.C((float64(col)-half)*cfg.GridSpacing, (float64(row)-half)*cfg.GridSpacing)
			c := entity.NewCat(w.IDs.Take(), origin.Add(off), cfg, w.Rng)
			if t.collides(c.Collider()) {
				continue
			}
			w.Cats = append(w.Cats, c)
			t.reg.Put(c.Collider())
			spawned++
		}
	}
	if spawned > 0 {
		t.post("%d cats came through the portal!", spawned)
	}
}

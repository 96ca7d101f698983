package sim

import (
	"github.com/vovakirdan/space-garden/internal/garden/entity"
)

// SkyTiles is the height of the sky strip drawn above the hull, in tiles.
// Sky positions have negative y.
const SkyTiles = 8

// SkyHeight is the sky strip height in pixels.
func (w *World) SkyHeight() float64 {
	return SkyTiles * w.TileSize
}

// slingRange is how close, in black hole radii, a drifter must pass to be slung.
const slingRange = 2

// moveHeavens eases the black hole, spawns and drifts planets, and slings
// those passing the black hole while slingshots are allowed.
func (t *tick) moveHeavens() {
	w := t.w
	cfg := t.cfg.Heavens
	w.BlackHole = w.BlackHole.Step(cfg)

	sky := w.SkyHeight()
	if w.Flags.PlanetSpawn && len(w.Drifters) < cfg.MaxDrifters && w.Rng.Float64() < cfg.DrifterSpawnProbability {
		d := entity.SpawnDrifter(w.Width, sky, cfg, w.Rng)
		d.Pos.Y -= sky
		w.Drifters = append(w.Drifters, d)
	}

	kept := w.Drifters[:0:0]
	for _, d := range w.Drifters {
		d = d.Drift()
		if w.Flags.Slingshot && t.nearBlackHole(d) {
			d = d.Slingshot(w.BlackHole.Pos, cfg.SlingshotBoost)
			t.post("A planet was slung around the black hole!")
		}
		if d.Gone(w.Width, sky, 2*w.TileSize) {
			continue
		}
		kept = append(kept, d)
	}
	w.Drifters = kept
}

func (t *tick) nearBlackHole(d entity.Drifter) bool {
	b := t.w.BlackHole
	return b.Present && !d.Slung && d.Pos.Sub(b.Pos).Magnitude() < slingRange*b.Radius
}

// slingAll flings every drifter at once.
func (t *tick) slingAll() {
	w := t.w
	if !w.BlackHole.Present {
		return
	}
	for i, d := range w.Drifters {
		w.Drifters[i] = d.Slingshot(w.BlackHole.Pos, t.cfg.Heavens.SlingshotBoost)
	}
}

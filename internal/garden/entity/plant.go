package entity

import (
	"slices"

	"github.com/vovakirdan/space-garden/internal/config"
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/collision"
)

// Fruit hangs on a fully grown, healthy plant.
type Fruit struct {
	Size       int    `msgpack:"size"`
	LastGrowth uint64 `msgpack:"last_growth"`
}

// Ripe reports whether the fruit has reached full size.
func (f Fruit) Ripe(cfg config.PlantConfig) bool {
	return f.Size >= cfg.MaxFruitSize
}

// Plant grows in a garden bed tile. Pos is the tile's top-left corner; the
// plant is drawn bottom-aligned in the tile and may grow above it.
type Plant struct {
	Pos             core.Coord   `msgpack:"pos"`
	TileSize        float64      `msgpack:"tile"`
	Health          int          `msgpack:"health"`
	Size            float64      `msgpack:"size"`
	SpawnFrame      uint64       `msgpack:"spawn"`
	LastGrowth      uint64       `msgpack:"last_growth"`
	LastDehydration uint64       `msgpack:"last_dehydration"`
	LastFruit       uint64       `msgpack:"last_fruit"`
	Alive           bool         `msgpack:"alive"`
	Fruits          []Fruit      `msgpack:"fruits"`
	ColliderID      collision.ID `msgpack:"collider_id"`
}

// NewPlant sows a seedling at a bed tile.
func NewPlant(id collision.ID, pos core.Coord, tile float64, frame uint64, cfg config.PlantConfig) Plant {
	return Plant{
		Pos:             pos,
		TileSize:        tile,
		Health:          core.Clamp(cfg.InitialHealth, 0, cfg.MaxHealth),
		Size:            core.ClampF(cfg.InitialSize, 0, 1),
		SpawnFrame:      frame,
		LastGrowth:      frame,
		LastDehydration: frame,
		LastFruit:       frame,
		Alive:           true,
		ColliderID:      id,
	}
}

// Dimensions interpolates width and height from size.
func (p Plant) Dimensions(cfg config.PlantConfig) (w, h float64) {
	w = cfg.MinWidth + (cfg.MaxWidth-cfg.MinWidth)*p.Size
	h = cfg.MinHeight + (cfg.MaxHeight-cfg.MinHeight)*p.Size
	return w, h
}

// Water raises health by one, up to the maximum.
func (p Plant) Water(cfg config.PlantConfig) Plant {
	if !p.Alive {
		return p
	}
	p.Health = core.Clamp(p.Health+1, 0, cfg.MaxHealth)
	return p
}

// Tick applies growth, dehydration and fruiting. Each timer fires at most
// once per call however far frame has jumped.
func (p Plant) Tick(frame uint64, cfg config.PlantConfig) Plant {
	if !p.Alive {
		return p
	}
	if elapsed(frame, p.LastGrowth) >= cfg.GrowthFrames {
		p.LastGrowth = frame
		if p.Health > 0 {
			p.Size = core.ClampF(p.Size+cfg.GrowthIncrement, 0, 1)
		}
	}
	if elapsed(frame, p.LastDehydration) >= cfg.DehydrationFrames {
		p.LastDehydration = frame
		p.Health = core.Clamp(p.Health-1, 0, cfg.MaxHealth)
		if p.Health == 0 {
			p.Alive = false
			p.Fruits = nil
			return p
		}
	}
	if p.Health < cfg.MaxHealth {
		return p
	}
	if len(p.Fruits) > 0 {
		fruits := slices.Clone(p.Fruits)
		for i, f := range fruits {
			if f.Size < cfg.MaxFruitSize && elapsed(frame, f.LastGrowth) >= cfg.FruitGrowthFrames {
				fruits[i] = Fruit{Size: f.Size + 1, LastGrowth: frame}
			}
		}
		p.Fruits = fruits
	}
	if p.Size >= 1 && len(p.Fruits) < cfg.MaxFruits && elapsed(frame, p.LastFruit) >= cfg.FruitGrowthFrames {
		p.LastFruit = frame
		p.Fruits = append(slices.Clone(p.Fruits), Fruit{Size: 1, LastGrowth: frame})
	}
	return p
}

// Harvest picks every ripe fruit and returns how many were picked.
func (p Plant) Harvest(cfg config.PlantConfig) (Plant, int) {
	kept := make([]Fruit, 0, len(p.Fruits))
	picked := 0
	for _, f := range p.Fruits {
		if f.Ripe(cfg) {
			picked++
			continue
		}
		kept = append(kept, f)
	}
	if picked == 0 {
		return p, 0
	}
	p.Fruits = kept
	return p, picked
}

// RipeFruit counts ripe fruit.
func (p Plant) RipeFruit(cfg config.PlantConfig) int {
	n := 0
	for _, f := range p.Fruits {
		if f.Ripe(cfg) {
			n++
		}
	}
	return n
}

// Oxygen is the plant's output per frame: size² × health × factor.
func (p Plant) Oxygen(factor float64) float64 {
	if !p.Alive {
		return 0
	}
	return p.Size * p.Size * float64(p.Health) * factor
}

// TileRect is the bed tile the plant occupies.
func (p Plant) TileRect() core.Rect {
	return core.RectAt(p.Pos, p.TileSize, p.TileSize)
}

// CollisionRect is the plant's footprint, centred and bottom-aligned in its tile.
func (p Plant) CollisionRect(cfg config.PlantConfig) core.Rect {
	w, h := p.Dimensions(cfg)
	x := p.Pos.X + (p.TileSize-w)/2
	y := p.Pos.Y + p.TileSize - h
	return core.RectAt(core.C(x, y), w, h)
}

// Collider returns the plant's registry entry. Withered plants do not collide.
func (p Plant) Collider(cfg config.PlantConfig) collision.Entry {
	t := collision.TypePlant
	if !p.Alive {
		t = collision.TypeNone
	}
	return collision.Entry{ID: p.ColliderID, Type: t, Rect: p.CollisionRect(cfg)}
}

func elapsed(frame, since uint64) int {
	if frame < since {
		return 0
	}
	return int(frame - since)
}

// Package sim composes collision, entities and events into the garden's
// deterministic tick. One call to Engine.Tick advances the world by one
// frame through a fixed pipeline: input, gardener, crew, cats, plants,
// airlock, events, oxygen, sky.
package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garden/internal/config"
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/collision"
	"github.com/vovakirdan/space-garden/internal/garden/entity"
	"github.com/vovakirdan/space-garden/internal/garden/event"
)

// PointsPerFruit is the score for each harvested ripe fruit.
const PointsPerFruit = 10

// MessageFrames is how long a status message stays visible.
const MessageFrames = 72

// Engine owns the configuration and the parsed ship layout.
type Engine struct {
	cfg    config.GardenConfig
	layout Layout
	opts   collision.Options
	log    *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine validates the configuration and parses its layout.
func NewEngine(cfg config.GardenConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	layout, err := ParseLayout(cfg.Layout, cfg.World.TileSize)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	e := &Engine{
		cfg:    cfg,
		layout: layout,
		opts:   collision.Options{Disabled: cfg.Debug.CollisionsDisabled},
		log:    log.New(io.Discard),
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() config.GardenConfig {
	return e.cfg
}

// Layout returns the parsed ship map.
func (e *Engine) Layout() Layout {
	return e.layout
}

// New builds the initial world for a game starting at frame.
func (e *Engine) New(seed, frame uint64) (*World, error) {
	cfg := &e.cfg
	l := e.layout
	width, height := l.PixelSize()
	w := &World{
		Seed:       seed,
		StartFrame: frame,
		Frame:      frame,
		Width:      width,
		Height:     height,
		TileSize:   l.Tile,
		Beds:       l.Beds,
		Rng:        NewRand(seed),
		Oxygen:     cfg.Oxygen.Initial,
		Flags: Flags{
			CabinFever:  cfg.Story.CabinFeverAllowed,
			PlanetSpawn: cfg.Story.PlanetSpawnAllowed,
			Slingshot:   cfg.Story.SlingshotAllowed,
		},
	}

	for _, ws := range l.Walls {
		w.Walls = append(w.Walls, entity.Wall{Rect: ws.Rect, Type: ws.Type, ColliderID: w.IDs.Take()})
	}
	w.Airlock = entity.NewAirlock(w.IDs.Take(), l.Door, l.Vacuum)
	w.AirlockPanel = entity.Button{Rect: l.AirlockPanel}
	w.ShieldPanel = entity.ShieldButton{Button: entity.Button{Rect: l.ShieldPanel}}
	for i := range w.Shields {
		w.Shields[i] = entity.ShieldDoor{Window: l.Windows[i], State: entity.DoorOpen}
	}

	w.Gardener = entity.NewGardener(w.IDs.Take(), standing(l.Gardener, l.Tile, cfg.Gardener.Height), cfg.Gardener)
	w.Can = entity.WateringCan{Pos: l.Can, Size: l.Tile}
	if !l.HasCan {
		w.Can = w.Can.PickUp()
		w.Gardener = w.Gardener.WithEquipped(true)
	}
	w.Can = w.Can.Follow(w.Gardener)

	for _, pos := range l.NPCs {
		lo, hi := int(cfg.NPC.StationaryMin.Normal), int(cfg.NPC.StationaryMax.Normal)
		wait := lo
		if hi > lo {
			wait += w.Rng.IntN(hi - lo + 1)
		}
		w.NPCs = append(w.NPCs, entity.NewNPC(w.IDs.Take(), standing(pos, l.Tile, cfg.NPC.Height), cfg.NPC,
			entity.NPCOptions{Countdown: wait}))
	}
	for _, pos := range l.Seedlings {
		w.Plants = append(w.Plants, entity.NewPlant(w.IDs.Take(), pos, l.Tile, frame, cfg.Plant))
	}
	w.Portal = entity.Portal{Pos: l.Portal.Add(core.C(l.Tile/2, l.Tile/2))}

	evs, err := event.Timeline(cfg.Timeline, frame, cfg.World.FPS)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	w.Events.Schedule(evs...)
	w.Status = w.Status.Post(frame, "Welcome aboard. Keep the garden alive.")

	e.log.Debug("world created", "seed", seed, "frame", frame, "npcs", len(w.NPCs), "walls", len(w.Walls))
	return w, nil
}

// Tick advances prev to frame and returns the new snapshot. Frames may jump
// by more than one; a frame earlier than prev.Frame is treated as prev.Frame.
// A restart press replaces the world with a fresh one from the same seed.
func (e *Engine) Tick(prev *World, frame uint64, in core.InputFrame) *World {
	if in.Pressed[core.ActionRestart] {
		w, err := e.New(prev.Seed, max(frame, prev.Frame))
		if err == nil {
			return w
		}
		e.log.Error("restart failed", "err", err)
	}

	w := prev.Clone()
	if frame > w.Frame {
		w.Frame = frame
	}
	if w.GameOver {
		return w
	}

	t := e.newTick(w)
	t.handleInput(in)
	t.moveGardener(in)
	t.moveNPCs()
	t.moveCats()
	t.growPlants()
	t.updateAirlock()
	t.runEvents()
	t.breathe()
	t.moveHeavens()
	t.finish()
	return w
}

// tick is the scratch state of one Tick call. The registry is mutated in
// place so later stages see earlier moves; it is discarded afterwards.
type tick struct {
	e           *Engine
	cfg         *config.GardenConfig
	w           *World
	reg         *collision.Registry
	npcByID     map[collision.ID]int
	startled    map[collision.ID]bool
	pushAirlock bool
}

func (e *Engine) newTick(w *World) *tick {
	t := &tick{
		e:        e,
		cfg:      &e.cfg,
		w:        w,
		reg:      w.registry(&e.cfg),
		npcByID:  make(map[collision.ID]int, len(w.NPCs)),
		startled: make(map[collision.ID]bool),
	}
	for i, n := range w.NPCs {
		t.npcByID[n.ColliderID] = i
	}
	return t
}

// collides reports whether entry overlaps anything in the registry.
func (t *tick) collides(entry collision.Entry) bool {
	return collision.Detected(t.reg, entry, t.e.opts)
}

// post shows a status message.
func (t *tick) post(format string, args ...any) {
	t.w.Status = t.w.Status.Post(t.w.Frame, format, args...)
}

// danger is true while a fresh black hole looms or the airlock leaks.
func (t *tick) danger() bool {
	w := t.w
	return w.BlackHole.Recent(w.Frame, t.cfg.DangerWindowFrames()) || !w.Airlock.Airtight(w.Frame, t.cfg.Airlock)
}

// finish applies end-of-tick consequences.
func (t *tick) finish() {
	w := t.w
	if t.pushAirlock {
		w.Airlock = w.Airlock.Activate(w.Frame)
		w.AirlockPanel = w.AirlockPanel.Press(w.Frame)
		t.post("Someone pressed the airlock button!")
		t.e.log.Info("crew member pressed the airlock button", "frame", w.Frame)
	}
	if w.Gardener.Dead() && !w.GameoverScheduled {
		w.GameoverScheduled = true
		w.Events.Schedule(event.GameOverSequence(w.Frame, t.cfg.World.GameoverDelay)...)
		t.post("The gardener died of %s.", w.Gardener.Death.Cause)
		t.e.log.Info("gardener died", "cause", w.Gardener.Death.Cause, "frame", w.Frame)
	}
	w.Can = w.Can.Follow(w.Gardener)
}

package entity

import (
	"fmt"

	"github.com/vovakirdan/space-garden/internal/config"
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/collision"
)

// MentalState is the closed set of crew moods.
type MentalState uint8

const (
	MentalNormal MentalState = iota
	MentalFrazzled
	MentalScared
)

// String returns the state name.
func (m MentalState) String() string {
	switch m {
	case MentalNormal:
		return "normal"
	case MentalFrazzled:
		return "frazzled"
	case MentalScared:
		return "scared"
	default:
		return fmt.Sprintf("MentalState(%d)", uint8(m))
	}
}

// Pick selects the per-state value from a Moods table.
func (m MentalState) Pick(v config.Moods) float64 {
	switch m {
	case MentalNormal:
		return v.Normal
	case MentalFrazzled:
		return v.Frazzled
	case MentalScared:
		return v.Scared
	default:
		panic(fmt.Sprintf("entity: unknown mental state %d", m))
	}
}

// OffScreen is where ejected crew members are parked.
var OffScreen = core.C(-10000, -10000)

// NPC is a crew member.
type NPC struct {
	Pos                  core.Coord   `msgpack:"pos"`
	Width                float64      `msgpack:"w"`
	Height               float64      `msgpack:"h"`
	Facing               Direction    `msgpack:"facing"`
	Moving               bool         `msgpack:"moving"`
	Countdown            int          `msgpack:"countdown"` // Frames left standing still
	Mental               MentalState  `msgpack:"mental"`
	AvoidanceCountdown   int          `msgpack:"avoidance"`
	SuicideCountdown     int          `msgpack:"suicide"`
	ContemplateCountdown int          `msgpack:"contemplate"`
	ReachedButton        bool         `msgpack:"reached_button"`
	ReadyToPush          bool         `msgpack:"ready_to_push"`
	PushedButton         bool         `msgpack:"pushed_button"`
	Ejected              bool         `msgpack:"ejected"`
	ColliderID           collision.ID `msgpack:"collider_id"`
	Death                *DeathRecord `msgpack:"death"`
}

// NPCOptions are the optional starting values of a crew member.
// Zero values mean: facing up, standing still, normal mood, no countdowns.
type NPCOptions struct {
	Facing           Direction
	Moving           bool
	Countdown        int
	Mental           MentalState
	SuicideCountdown int
}

// NewNPC creates a crew member with its drawing rectangle at pos.
func NewNPC(id collision.ID, pos core.Coord, cfg config.NPCConfig, opts NPCOptions) NPC {
	return NPC{
		Pos:              pos,
		Width:            cfg.Width,
		Height:           cfg.Height,
		Facing:           opts.Facing,
		Moving:           opts.Moving,
		Countdown:        opts.Countdown,
		Mental:           opts.Mental,
		SuicideCountdown: opts.SuicideCountdown,
		ColliderID:       id,
	}
}

// MoveContext is what an NPC can see when picking a direction.
type MoveContext struct {
	Gardener core.Coord // Centre of the gardener's collision rect
	Button   core.Coord // Centre of the airlock button
}

// Active reports whether the NPC still takes part in the simulation.
func (n NPC) Active() bool {
	return !n.Ejected && n.Death == nil
}

// Avoiding reports whether the NPC is steering clear of the gardener.
func (n NPC) Avoiding() bool {
	return n.AvoidanceCountdown > 0
}

// Suicidal reports whether a frazzled NPC has given up.
func (n NPC) Suicidal() bool {
	return n.Mental == MentalFrazzled && n.SuicideCountdown <= 0
}

// Speed returns pixels per frame for the current mood.
func (n NPC) Speed(cfg config.NPCConfig) float64 {
	switch n.Mental {
	case MentalFrazzled:
		return cfg.BaseSpeed * cfg.FrazzledMultiplier
	case MentalNormal, MentalScared:
		if n.Avoiding() {
			return cfg.BaseSpeed * cfg.AvoidMultiplier
		}
		return cfg.BaseSpeed
	default:
		panic(fmt.Sprintf("entity: unknown mental state %d", n.Mental))
	}
}

// Move advances the NPC one step along its facing. The result is not
// wrapped; see Wrap. Standing, waiting at the button, ejected and dead NPCs
// do not move.
func (n NPC) Move(cfg config.NPCConfig) NPC {
	if !n.Moving || !n.Active() || n.ReachedButton {
		return n
	}
	n.Pos = n.Pos.Add(n.Facing.Vector().Scale(n.Speed(cfg)))
	return n
}

// Wrap folds the NPC around a w×h world so that the top-left corner of its
// collision rect lies inside it.
func (n NPC) Wrap(w, h float64) NPC {
	a := n.CollisionRect().A
	n.Pos = n.Pos.Add(a.Wrap(w, h).Sub(a))
	return n
}

// ConsiderNewMovement decides whether to pick a new movement this tick.
// A standing NPC waits out its countdown; a moving one re-rolls with a
// mood-dependent probability, or always if it is walking into the gardener
// it is trying to avoid.
func (n NPC) ConsiderNewMovement(ctx MoveContext, cfg config.NPCConfig, rng Rand) NPC {
	if !n.Active() || n.ReachedButton {
		return n
	}
	if !n.Moving {
		if n.Countdown > 0 {
			n.Countdown--
			return n
		}
		return n.ChooseNewMovement(ctx, cfg, rng)
	}
	if n.Avoiding() && n.Facing == DirectionToward(n.Center(), ctx.Gardener) {
		return n.ChooseNewMovement(ctx, cfg, rng)
	}
	if rng.Float64() < n.Mental.Pick(cfg.ChangeProbability) {
		return n.ChooseNewMovement(ctx, cfg, rng)
	}
	return n
}

// ChooseNewMovement replaces the facing and movement unconditionally.
// The draw is uniform over a table of candidate directions followed by
// stand-still slots.
func (n NPC) ChooseNewMovement(ctx MoveContext, cfg config.NPCConfig, rng Rand) NPC {
	dirs := n.candidateDirections(ctx)
	still := int(n.Mental.Pick(cfg.StandStillSlots))
	i := rng.IntN(len(dirs) + still)
	if i < len(dirs) {
		n.Facing = dirs[i]
		n.Moving = true
		n.Countdown = 0
		return n
	}
	lo := int(n.Mental.Pick(cfg.StationaryMin))
	hi := int(n.Mental.Pick(cfg.StationaryMax))
	n.Moving = false
	n.Countdown = lo
	if hi > lo {
		n.Countdown += rng.IntN(hi - lo + 1)
	}
	return n
}

// candidateDirections builds the direction part of the choice table.
func (n NPC) candidateDirections(ctx MoveContext) []Direction {
	if n.Suicidal() {
		toward := DirectionToward(n.Center(), ctx.Button)
		a, b := toward.Perpendicular()
		return []Direction{toward, toward, a, b}
	}
	if n.Avoiding() {
		away := DirectionToward(n.Center(), ctx.Gardener)
		dirs := make([]Direction, 0, 3)
		for _, d := range Cardinals {
			if d != away {
				dirs = append(dirs, d)
			}
		}
		return dirs
	}
	return Cardinals[:]
}

// TransitionMental applies the mood rules for one tick.
func (n NPC) TransitionMental(danger, cabinFever bool, cfg config.NPCConfig, rng Rand) NPC {
	if !n.Active() {
		return n
	}
	switch n.Mental {
	case MentalNormal:
		if danger {
			n.Mental = MentalScared
		} else if cabinFever && rng.Float64() < cfg.CabinFeverProbability {
			n.Mental = MentalFrazzled
			n.SuicideCountdown = cfg.SuicidalDelay
		}
	case MentalScared:
		if !danger {
			n.Mental = MentalNormal
		}
	case MentalFrazzled:
	default:
		panic(fmt.Sprintf("entity: unknown mental state %d", n.Mental))
	}
	return n
}

// Avoid starts the gardener avoidance countdown.
func (n NPC) Avoid(cfg config.NPCConfig) NPC {
	n.AvoidanceCountdown = cfg.AvoidanceFrames
	return n
}

// TickCountdowns decrements the per-frame countdowns. An NPC startled this
// tick keeps its freshly reset avoidance countdown.
func (n NPC) TickCountdowns(startled bool) NPC {
	if !startled && n.AvoidanceCountdown > 0 {
		n.AvoidanceCountdown--
	}
	if n.Mental == MentalFrazzled && n.SuicideCountdown > 0 {
		n.SuicideCountdown--
	}
	if n.ReachedButton && !n.ReadyToPush {
		if n.ContemplateCountdown > 0 {
			n.ContemplateCountdown--
		}
		if n.ContemplateCountdown == 0 {
			n.ReadyToPush = true
		}
	}
	return n
}

// UpdateButton starts contemplating once a suicidal NPC reaches the airlock button.
func (n NPC) UpdateButton(overlapping bool, cfg config.NPCConfig) NPC {
	if n.Suicidal() && !n.ReachedButton && overlapping {
		n.ReachedButton = true
		n.Moving = false
		n.ContemplateCountdown = cfg.ContemplateFrames
	}
	return n
}

// WantsToPush reports whether the NPC presses the button this tick.
func (n NPC) WantsToPush(overlapping bool) bool {
	return n.Active() && n.ReadyToPush && !n.PushedButton && overlapping
}

// Push records that the button has been pressed.
func (n NPC) Push() NPC {
	n.PushedButton = true
	return n
}

// SendOffScreen ejects the NPC through the airlock.
func (n NPC) SendOffScreen(frame uint64) NPC {
	n = n.Die(CauseVacuum, frame)
	n.Ejected = true
	n.Moving = false
	n.Pos = OffScreen
	return n
}

// WithPos returns the NPC at pos.
func (n NPC) WithPos(pos core.Coord) NPC {
	n.Pos = pos
	return n
}

// Die records a death; an existing record is kept.
func (n NPC) Die(cause DeathCause, frame uint64) NPC {
	if n.Death == nil {
		n.Death = &DeathRecord{Cause: cause, Frame: frame}
	}
	n.Moving = false
	return n
}

// Center is the centre of the collision rect.
func (n NPC) Center() core.Coord {
	return n.CollisionRect().Center()
}

// CollisionRect is the square under the NPC's feet.
func (n NPC) CollisionRect() core.Rect {
	return footRect(n.Pos, n.Width, n.Height)
}

// ColliderType depends on mood: frazzled crew walk through each other.
func (n NPC) ColliderType() collision.Type {
	if !n.Active() {
		return collision.TypeNone
	}
	if n.Mental == MentalFrazzled {
		return collision.TypeNPCFrazzled
	}
	return collision.TypeNPCNormal
}

// Collider implements collision.Collider.
func (n NPC) Collider() collision.Entry {
	return collision.Entry{ID: n.ColliderID, Type: n.ColliderType(), Rect: n.CollisionRect()}
}

// Consumption is the oxygen used per frame.
func (n NPC) Consumption(cfg config.OxygenConfig) float64 {
	if !n.Active() {
		return 0
	}
	return n.Mental.Pick(cfg.Consumption)
}

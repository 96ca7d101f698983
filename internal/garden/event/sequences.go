package event

import (
	"fmt"

	"github.com/vovakirdan/space-garden/internal/config"
)

// ImpactDuration is how long the impact flash stays active.
const ImpactDuration = 24

func seconds(base uint64, fps int, s float64) uint64 {
	return base + uint64(s*float64(fps))
}

// BlackHoleSequence is the full black hole scenario: it appears, pulses,
// hits the ship, and collapses later. The slingshot window opens between
// impact and collapse.
func BlackHoleSequence(base uint64, fps int) []AnimEvent {
	impact := At(Impact, seconds(base, fps, 10))
	impact.Duration = ImpactDuration
	return []AnimEvent{
		At(BlackHoleAppears, base),
		At(ShakeMild, base),
		At(AlarmStart, base),
		At(BlackHolePulseSmall, seconds(base, fps, 2)),
		At(BlackHolePulseLarge, seconds(base, fps, 5)),
		At(ShakeSevere, seconds(base, fps, 5)),
		impact,
		At(ShakeNone, seconds(base, fps, 12)),
		At(AlarmStop, seconds(base, fps, 12)),
		At(AllowSlingshot, seconds(base, fps, 20)),
		At(BlackHoleCollapse, seconds(base, fps, 40)),
		At(DisallowSlingshot, seconds(base, fps, 40)),
	}
}

// CatInvasionSequence opens the portal, lets two waves of cats through and closes it.
func CatInvasionSequence(base uint64, fps int) []AnimEvent {
	return []AnimEvent{
		At(PortalOpen, base),
		At(CatInvasionSmall, seconds(base, fps, 1)),
		At(CatInvasionLarge, seconds(base, fps, 3)),
		At(PortalClose, seconds(base, fps, 5)),
	}
}

// EarlyOpenSequence reopens the three shields one after another after a
// survived impact.
func EarlyOpenSequence(base uint64, cfg config.ShieldConfig) []AnimEvent {
	step := uint64(cfg.EarlyOpenStagger * cfg.SlatDelay)
	return []AnimEvent{
		At(EarlyOpenShield1, base+step),
		At(EarlyOpenShield2, base+2*step),
		At(EarlyOpenShield3, base+3*step),
	}
}

// ImpactDeathSequence kills everyone aboard an unshielded ship.
func ImpactDeathSequence(base uint64) []AnimEvent {
	return []AnimEvent{At(DeathByImpact, base)}
}

// GameOverSequence ends the game after a delay.
func GameOverSequence(base uint64, delay int) []AnimEvent {
	return []AnimEvent{At(GameoverReplayFrame, base+uint64(delay))}
}

// Named expands one timeline sequence name at base.
func Named(name string, base uint64, fps int) ([]AnimEvent, error) {
	switch name {
	case "black_hole":
		return BlackHoleSequence(base, fps), nil
	case "cat_invasion":
		return CatInvasionSequence(base, fps), nil
	case "allow_cabin_fever":
		return []AnimEvent{At(AllowCabinFever, base)}, nil
	case "allow_planets":
		return []AnimEvent{At(AllowPlanetSpawn, base)}, nil
	case "allow_slingshot":
		return []AnimEvent{At(AllowSlingshot, base)}, nil
	default:
		return nil, fmt.Errorf("event: unknown sequence %q", name)
	}
}

// Timeline expands a configured story timeline relative to the game start.
func Timeline(entries []config.TimelineEntry, start uint64, fps int) ([]AnimEvent, error) {
	var out []AnimEvent
	for i, e := range entries {
		evs, err := Named(e.Sequence, seconds(start, fps, e.At), fps)
		if err != nil {
			return nil, fmt.Errorf("event: timeline[%d]: %w", i, err)
		}
		out = append(out, evs...)
	}
	return out, nil
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for the garden simulation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// GardenConfig contains all tunables of the simulation.
type GardenConfig struct {
	World    WorldConfig     `yaml:"world"`
	Gardener GardenerConfig  `yaml:"gardener"`
	NPC      NPCConfig       `yaml:"npc"`
	Cat      CatConfig       `yaml:"cat"`
	Plant    PlantConfig     `yaml:"plant"`
	Oxygen   OxygenConfig    `yaml:"oxygen"`
	Airlock  AirlockConfig   `yaml:"airlock"`
	Shield   ShieldConfig    `yaml:"shield"`
	Heavens  HeavensConfig   `yaml:"heavens"`
	Story    StoryConfig     `yaml:"story"`
	Timeline []TimelineEntry `yaml:"timeline"`
	Layout   []string        `yaml:"layout"`
	Debug    DebugConfig     `yaml:"debug"`
}

// WorldConfig defines global dimensions and timing.
type WorldConfig struct {
	FPS           int     `yaml:"fps"`
	TileSize      float64 `yaml:"tile_size"`      // Pixels per layout tile
	GameoverDelay int     `yaml:"gameover_delay"` // Frames between a fatal event and game over
}

// GardenerConfig defines the player character.
type GardenerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`          // Pixels per frame on one axis
	DiagonalSpeed  float64 `yaml:"diagonal_speed"` // Pixels per frame per axis when two directions are held
	Reach          float64 `yaml:"reach"`          // Interaction rectangle margin
	WateringFrames int     `yaml:"watering_frames"`
}

// Moods holds one value per NPC mental state.
type Moods struct {
	Normal   float64 `yaml:"normal"`
	Frazzled float64 `yaml:"frazzled"`
	Scared   float64 `yaml:"scared"`
}

// NPCConfig defines crew member behaviour.
type NPCConfig struct {
	Width                 float64 `yaml:"width"`
	Height                float64 `yaml:"height"`
	BaseSpeed             float64 `yaml:"base_speed"`
	AvoidMultiplier       float64 `yaml:"avoid_multiplier"`
	FrazzledMultiplier    float64 `yaml:"frazzled_multiplier"`
	AvoidanceFrames       int     `yaml:"avoidance_frames"`
	ChangeProbability     Moods   `yaml:"change_probability"`
	StandStillSlots       Moods   `yaml:"stand_still_slots"`
	StationaryMin         Moods   `yaml:"stationary_min"`
	StationaryMax         Moods   `yaml:"stationary_max"`
	CabinFeverProbability float64 `yaml:"cabin_fever_probability"`
	SuicidalDelay         int     `yaml:"suicidal_delay"`
	ContemplateFrames     int     `yaml:"contemplate_frames"`
	DangerWindowSeconds   int     `yaml:"danger_window_seconds"`
}

// CatConfig defines invading cats.
type CatConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Speed             float64 `yaml:"speed"`
	ChangeProbability float64 `yaml:"change_probability"`
	GridSpacing       float64 `yaml:"grid_spacing"`
}

// PlantConfig defines plant growth and fruiting.
type PlantConfig struct {
	MaxHealth         int     `yaml:"max_health"`
	InitialHealth     int     `yaml:"initial_health"`
	InitialSize       float64 `yaml:"initial_size"`
	GrowthIncrement   float64 `yaml:"growth_increment"`
	GrowthFrames      int     `yaml:"growth_frames"`
	DehydrationFrames int     `yaml:"dehydration_frames"`
	MinWidth          float64 `yaml:"min_width"`
	MaxWidth          float64 `yaml:"max_width"`
	MinHeight         float64 `yaml:"min_height"`
	MaxHeight         float64 `yaml:"max_height"`
	MaxFruits         int     `yaml:"max_fruits"`
	FruitGrowthFrames int     `yaml:"fruit_growth_frames"`
	MaxFruitSize      int     `yaml:"max_fruit_size"`
}

// OxygenConfig defines the life-support balance.
type OxygenConfig struct {
	Initial     float64 `yaml:"initial"`
	Capacity    float64 `yaml:"capacity"`
	PlantFactor float64 `yaml:"plant_factor"`
	Consumption Moods   `yaml:"consumption"`
	AirlockLeak float64 `yaml:"airlock_leak"`
}

// AirlockConfig defines the airlock door and its pull.
type AirlockConfig struct {
	MaxDoorOffset int     `yaml:"max_door_offset"`
	DoorDelay     int     `yaml:"door_delay"`
	PixelSpeed    float64 `yaml:"pixel_speed"`
	PullFalloff   float64 `yaml:"pull_falloff"`
}

// ShieldConfig defines the three shield doors.
type ShieldConfig struct {
	Slats            int `yaml:"slats"`
	SlatDelay        int `yaml:"slat_delay"`
	SlatTravel       int `yaml:"slat_travel"`
	EarlyOpenStagger int `yaml:"early_open_stagger"` // In slat delays
}

// HeavensConfig defines the black hole and drifting planets.
type HeavensConfig struct {
	BlackHoleX              float64 `yaml:"black_hole_x"`
	BlackHoleY              float64 `yaml:"black_hole_y"`
	BlackHoleRadius         float64 `yaml:"black_hole_radius"`
	PulseSmall              float64 `yaml:"pulse_small"`
	PulseLarge              float64 `yaml:"pulse_large"`
	RadiusEasing            float64 `yaml:"radius_easing"`
	DrifterSpawnProbability float64 `yaml:"drifter_spawn_probability"`
	DrifterMinSpeed         float64 `yaml:"drifter_min_speed"`
	DrifterMaxSpeed         float64 `yaml:"drifter_max_speed"`
	MaxDrifters             int     `yaml:"max_drifters"`
	SlingshotBoost          float64 `yaml:"slingshot_boost"`
}

// StoryConfig holds the initial values of the story flags.
type StoryConfig struct {
	CabinFeverAllowed  bool `yaml:"cabin_fever_allowed"`
	PlanetSpawnAllowed bool `yaml:"planet_spawn_allowed"`
	SlingshotAllowed   bool `yaml:"slingshot_allowed"`
}

// TimelineEntry schedules a named event sequence at a time offset.
type TimelineEntry struct {
	At       float64 `yaml:"at"` // Seconds from game start
	Sequence string  `yaml:"sequence"`
}

// DebugConfig holds developer toggles. Only CollisionsDisabled affects logic.
type DebugConfig struct {
	CollisionsDisabled   bool `yaml:"collisions_disabled"`
	ShowCollisionRects   bool `yaml:"show_collision_rects"`
	ShowInteractionRects bool `yaml:"show_interaction_rects"`
}

// Sequence names accepted in the timeline.
var knownSequences = map[string]bool{
	"black_hole":        true,
	"cat_invasion":      true,
	"allow_cabin_fever": true,
	"allow_planets":     true,
	"allow_slingshot":   true,
}

// KnownSequence reports whether name is a valid timeline sequence.
func KnownSequence(name string) bool {
	return knownSequences[name]
}

// Validate checks structural invariants the simulation relies on.
func (c GardenConfig) Validate() error {
	var errs []error
	if c.World.FPS <= 0 {
		errs = append(errs, errors.New("world.fps must be positive"))
	}
	if c.World.TileSize <= 0 {
		errs = append(errs, errors.New("world.tile_size must be positive"))
	}
	if c.Plant.MaxHealth <= 0 {
		errs = append(errs, errors.New("plant.max_health must be positive"))
	}
	if c.Shield.Slats <= 0 {
		errs = append(errs, errors.New("shield.slats must be positive"))
	}
	if len(c.Layout) == 0 {
		errs = append(errs, errors.New("layout is empty"))
	}
	width := -1
	gardeners := 0
	for i, row := range c.Layout {
		n := len([]rune(row))
		if width < 0 {
			width = n
		} else if n != width {
			errs = append(errs, fmt.Errorf("layout row %d has width %d, expected %d", i, n, width))
		}
		gardeners += strings.Count(row, "@")
	}
	if len(c.Layout) > 0 && gardeners != 1 {
		errs = append(errs, fmt.Errorf("layout must contain exactly one gardener spawn, found %d", gardeners))
	}
	for i, e := range c.Timeline {
		if !KnownSequence(e.Sequence) {
			errs = append(errs, fmt.Errorf("timeline[%d]: unknown sequence %q", i, e.Sequence))
		}
		if e.At < 0 {
			errs = append(errs, fmt.Errorf("timeline[%d]: negative offset", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid garden config: %w", errors.Join(errs...))
	}
	return nil
}

// DangerWindowFrames is the number of frames a fresh black hole scares the crew.
func (c GardenConfig) DangerWindowFrames() uint64 {
	return uint64(c.NPC.DangerWindowSeconds * c.World.FPS)
}

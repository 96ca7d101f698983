package config

import (
	_ "embed"
)

//go:embed defaults/garden.yaml
var defaultGardenYAML []byte

// DefaultLayout is the ship map used when no layout is configured.
var DefaultLayout = []string{
	"####111111######222222######333333######",
	"#......................................#",
	"#...............S......................#",
	"#..GGGGGGGGGG.....GGGGGGGGGG...........#",
	"#..GGpGGGGGGG.....GGGGGGpGGG..n........#",
	"#..GGGGGGGGGG.....GGGpGGGGGG...........#",
	"#..GGGGGGGGGG.....GGGGGGGGGG...........#",
	"#................................#.....#",
	"#....W...........................#######",
	"#...........@....................AKKKKK#",
	"#...............................BAKKKKK#",
	"########HH##########...##########AKKKKK#",
	"#................................AKKKKK#",
	"#................................#######",
	"#.......................n........#.....#",
	"#.=============........................#",
	"#.............=........................#",
	"#...n.........=........................#",
	"#........n....=...........P............#",
	"#.............=........................#",
	"#.............=........................#",
	"########################################",
}

// DefaultGardenConfig returns the built-in configuration.
// It mirrors defaults/garden.yaml and is used if the embedded file fails to parse.
func DefaultGardenConfig() GardenConfig {
	return GardenConfig{
		World: WorldConfig{
			FPS:           24,
			TileSize:      16,
			GameoverDelay: 48,
		},
		Gardener: GardenerConfig{
			Width:          16,
			Height:         32,
			Speed:          4,
			DiagonalSpeed:  3,
			Reach:          12,
			WateringFrames: 12,
		},
		NPC: NPCConfig{
			Width:                 16,
			Height:                32,
			BaseSpeed:             2,
			AvoidMultiplier:       1.5,
			FrazzledMultiplier:    2.5,
			AvoidanceFrames:       150,
			ChangeProbability:     Moods{Normal: 0.02, Frazzled: 0.6, Scared: 0.2},
			StandStillSlots:       Moods{Normal: 4, Frazzled: 2, Scared: 1},
			StationaryMin:         Moods{Normal: 30, Frazzled: 1, Scared: 15},
			StationaryMax:         Moods{Normal: 230, Frazzled: 5, Scared: 115},
			CabinFeverProbability: 0.0005,
			SuicidalDelay:         200,
			ContemplateFrames:     200,
			DangerWindowSeconds:   30,
		},
		Cat: CatConfig{
			Width:             16,
			Height:            16,
			Speed:             3,
			ChangeProbability: 0.1,
			GridSpacing:       24,
		},
		Plant: PlantConfig{
			MaxHealth:         5,
			InitialHealth:     3,
			InitialSize:       0.1,
			GrowthIncrement:   0.05,
			GrowthFrames:      48,
			DehydrationFrames: 240,
			MinWidth:          8,
			MaxWidth:          16,
			MinHeight:         8,
			MaxHeight:         24,
			MaxFruits:         3,
			FruitGrowthFrames: 72,
			MaxFruitSize:      3,
		},
		Oxygen: OxygenConfig{
			Initial:     1500,
			Capacity:    3000,
			PlantFactor: 0.003,
			Consumption: Moods{Normal: 0.1, Frazzled: 0.2, Scared: 0.15},
			AirlockLeak: 0.5,
		},
		Airlock: AirlockConfig{
			MaxDoorOffset: 32,
			DoorDelay:     12,
			PixelSpeed:    3,
			PullFalloff:   160,
		},
		Shield: ShieldConfig{
			Slats:            6,
			SlatDelay:        3,
			SlatTravel:       12,
			EarlyOpenStagger: 4,
		},
		Heavens: HeavensConfig{
			BlackHoleX:              320,
			BlackHoleY:              -120,
			BlackHoleRadius:         24,
			PulseSmall:              40,
			PulseLarge:              72,
			RadiusEasing:            0.1,
			DrifterSpawnProbability: 0.004,
			DrifterMinSpeed:         0.2,
			DrifterMaxSpeed:         1.0,
			MaxDrifters:             4,
			SlingshotBoost:          4,
		},
		Story: StoryConfig{},
		Timeline: []TimelineEntry{
			{At: 20, Sequence: "allow_planets"},
			{At: 45, Sequence: "allow_cabin_fever"},
			{At: 60, Sequence: "black_hole"},
			{At: 150, Sequence: "cat_invasion"},
			{At: 240, Sequence: "black_hole"},
		},
		Layout: append([]string(nil), DefaultLayout...),
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGardenYAML
}

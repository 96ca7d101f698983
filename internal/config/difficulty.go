package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyGardenPreset modifies the config based on a difficulty preset.
// The normal preset and the empty preset leave the config untouched.
func ApplyGardenPreset(cfg *GardenConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Oxygen.Initial *= 1.5
		cfg.Oxygen.Capacity *= 1.5
		cfg.NPC.CabinFeverProbability /= 2
		cfg.Plant.DehydrationFrames = cfg.Plant.DehydrationFrames * 3 / 2
	case DifficultyHard:
		cfg.Oxygen.Initial *= 0.6
		cfg.NPC.CabinFeverProbability *= 2
		cfg.Plant.DehydrationFrames = cfg.Plant.DehydrationFrames * 2 / 3
		cfg.Story.CabinFeverAllowed = true
	}
}

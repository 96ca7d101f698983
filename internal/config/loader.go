package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGarden loads the simulation configuration.
// Search order: customPath -> ~/.garden/configs/garden.yaml -> ./configs/garden.yaml -> embedded default
func LoadGarden(customPath string) (GardenConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GardenConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseGarden(data)
		if err != nil {
			return GardenConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("garden.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseGarden(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/garden.yaml"); err == nil {
		if cfg, err := ParseGarden(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseGarden(defaultGardenYAML)
	if err != nil {
		return DefaultGardenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseGarden decodes YAML on top of the built-in defaults, so partial files
// only override what they mention, and validates the result.
func ParseGarden(data []byte) (GardenConfig, error) {
	cfg := DefaultGardenConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GardenConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GardenConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".garden", "configs", filename)
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := ParseGarden(GetDefaultYAML())
	if err != nil {
		t.Fatalf("ParseGarden(embedded) failed: %v", err)
	}
	def := DefaultGardenConfig()

	if cfg.World != def.World {
		t.Errorf("World = %+v, expected %+v", cfg.World, def.World)
	}
	if cfg.NPC != def.NPC {
		t.Errorf("NPC = %+v, expected %+v", cfg.NPC, def.NPC)
	}
	if cfg.Plant != def.Plant {
		t.Errorf("Plant = %+v, expected %+v", cfg.Plant, def.Plant)
	}
	if cfg.Oxygen != def.Oxygen {
		t.Errorf("Oxygen = %+v, expected %+v", cfg.Oxygen, def.Oxygen)
	}
	if cfg.Airlock != def.Airlock {
		t.Errorf("Airlock = %+v, expected %+v", cfg.Airlock, def.Airlock)
	}
	if len(cfg.Layout) != len(def.Layout) {
		t.Fatalf("Layout rows = %d, expected %d", len(cfg.Layout), len(def.Layout))
	}
	for i := range cfg.Layout {
		if cfg.Layout[i] != def.Layout[i] {
			t.Errorf("Layout row %d = %q, expected %q", i, cfg.Layout[i], def.Layout[i])
		}
	}
	if len(cfg.Timeline) != len(def.Timeline) {
		t.Errorf("Timeline entries = %d, expected %d", len(cfg.Timeline), len(def.Timeline))
	}
}

func TestAirlockDelaySumsTo44(t *testing.T) {
	a := DefaultGardenConfig().Airlock
	if a.MaxDoorOffset+a.DoorDelay != 44 {
		t.Errorf("MaxDoorOffset+DoorDelay = %d, expected 44", a.MaxDoorOffset+a.DoorDelay)
	}
}

func TestValidateRejectsRaggedLayout(t *testing.T) {
	cfg := DefaultGardenConfig()
	cfg.Layout = []string{"#@#", "##"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should reject rows of different width")
	}
	if !strings.Contains(err.Error(), "width") {
		t.Errorf("error %q should mention width", err)
	}
}

func TestValidateRejectsUnknownSequence(t *testing.T) {
	cfg := DefaultGardenConfig()
	cfg.Timeline = append(cfg.Timeline, TimelineEntry{At: 1, Sequence: "meteor_shower"})
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject unknown sequences")
	}
}

func TestValidateRequiresOneGardener(t *testing.T) {
	cfg := DefaultGardenConfig()
	cfg.Layout = []string{"###", "#.#", "###"}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should require a gardener spawn")
	}
}

func TestParseGardenPartialOverride(t *testing.T) {
	data := []byte("oxygen:\n  initial: 42\ndebug:\n  collisions_disabled: true\n")
	cfg, err := ParseGarden(data)
	if err != nil {
		t.Fatalf("ParseGarden() failed: %v", err)
	}
	if cfg.Oxygen.Initial != 42 {
		t.Errorf("Oxygen.Initial = %v, expected 42", cfg.Oxygen.Initial)
	}
	if cfg.Oxygen.Capacity != DefaultGardenConfig().Oxygen.Capacity {
		t.Error("unmentioned fields should keep their defaults")
	}
	if !cfg.Debug.CollisionsDisabled {
		t.Error("collisions_disabled should be true")
	}
}

func TestLoadGardenCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garden.yaml")
	if err := os.WriteFile(path, []byte("world:\n  fps: 30\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadGarden(path)
	if err != nil {
		t.Fatalf("LoadGarden() failed: %v", err)
	}
	if cfg.World.FPS != 30 {
		t.Errorf("World.FPS = %d, expected 30", cfg.World.FPS)
	}

	if _, err := LoadGarden(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadGarden() with a missing custom path should fail")
	}
}

func TestApplyGardenPreset(t *testing.T) {
	base := DefaultGardenConfig()

	easy := DefaultGardenConfig()
	ApplyGardenPreset(&easy, DifficultyEasy)
	if easy.Oxygen.Initial <= base.Oxygen.Initial {
		t.Error("easy preset should raise initial oxygen")
	}

	hard := DefaultGardenConfig()
	ApplyGardenPreset(&hard, DifficultyHard)
	if hard.NPC.CabinFeverProbability <= base.NPC.CabinFeverProbability {
		t.Error("hard preset should raise cabin fever probability")
	}
	if !hard.Story.CabinFeverAllowed {
		t.Error("hard preset should allow cabin fever from the start")
	}

	normal := DefaultGardenConfig()
	ApplyGardenPreset(&normal, ParsePreset("normal"))
	if normal.Oxygen != base.Oxygen {
		t.Error("normal preset should not change oxygen")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

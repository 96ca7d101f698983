package sim

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-garden/internal/config"
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/collision"
)

func rect(ax, ay, bx, by float64) core.Rect {
	return core.MustRect(core.C(ax, ay), core.C(bx, by))
}

func TestParseDefaultLayout(t *testing.T) {
	l, err := ParseLayout(config.DefaultLayout, 16)
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}
	if l.Cols != 40 || l.Rows != 22 {
		t.Errorf("size = %dx%d, expected 40x22", l.Cols, l.Rows)
	}
	if w, h := l.PixelSize(); w != 640 || h != 352 {
		t.Errorf("PixelSize() = %vx%v, expected 640x352", w, h)
	}

	tests := []struct {
		name     string
		got      core.Rect
		expected core.Rect
	}{
		{"door", l.Door, rect(528, 144, 544, 208)},
		{"vacuum", l.Vacuum, rect(544, 144, 624, 208)},
		{"airlock button", l.AirlockPanel, rect(512, 160, 528, 176)},
		{"shield button", l.ShieldPanel, rect(256, 32, 272, 48)},
		{"window 1", l.Windows[0], rect(64, 0, 160, 16)},
		{"window 3", l.Windows[2], rect(448, 0, 544, 16)},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %v, expected %v", tt.name, tt.got, tt.expected)
		}
	}

	if len(l.NPCs) != 4 {
		t.Errorf("NPCs = %d, expected 4", len(l.NPCs))
	}
	if len(l.Seedlings) != 3 {
		t.Errorf("Seedlings = %d, expected 3", len(l.Seedlings))
	}
	if !l.HasCan || l.Can != core.C(80, 128) {
		t.Errorf("Can = %v (%v), expected (80,128)", l.Can, l.HasCan)
	}
	if l.Gardener != core.C(192, 144) {
		t.Errorf("Gardener = %v, expected (192,144)", l.Gardener)
	}
}

func TestParseLayoutMergesWallRuns(t *testing.T) {
	l, err := ParseLayout([]string{
		"#==H#",
		"#@BAK",
		"#####",
	}, 16)
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}

	expected := []WallSpec{
		{rect(0, 0, 16, 16), collision.TypeWall},
		{rect(16, 0, 48, 16), collision.TypeGardenerWall},
		{rect(48, 0, 64, 16), collision.TypeLadder},
		{rect(64, 0, 80, 16), collision.TypeWall},
		{rect(0, 16, 16, 32), collision.TypeWall},
		{rect(0, 32, 80, 48), collision.TypeWall},
	}
	if len(l.Walls) != len(expected) {
		t.Fatalf("walls = %d, expected %d: %v", len(l.Walls), len(expected), l.Walls)
	}
	for i := range expected {
		if l.Walls[i] != expected[i] {
			t.Errorf("wall %d = %v, expected %v", i, l.Walls[i], expected[i])
		}
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want string
	}{
		{"empty", nil, "no rows"},
		{"ragged", []string{"#@BAK", "##"}, "width"},
		{"unknown glyph", []string{"#@BAKZ"}, "unknown glyph"},
		{"two gardeners", []string{"@@BAK"}, "gardener"},
		{"no button", []string{"#@.AK"}, "airlock button"},
		{"no airlock", []string{"#@B.."}, "airlock door"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.rows, 16)
			if err == nil {
				t.Fatal("ParseLayout() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

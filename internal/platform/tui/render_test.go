package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/storage"
)

func TestRenderScreenSkipsContinuationCells(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorGreen)
	s.SetWide(2, 0, '🌱', core.ColorGreen)
	s.DrawText(4, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "row2", core.ColorDefault)

	out := RenderScreen(s)
	if strings.ContainsRune(out, 0) {
		t.Error("RenderScreen() should not emit continuation cells")
	}
	for _, want := range []string{"ab🌱", "cd", "row2"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, expected it to contain %q", out, want)
		}
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", n)
	}
}

func TestFormatRunDuration(t *testing.T) {
	tests := []struct {
		run  storage.RunRecord
		want string
	}{
		{storage.RunRecord{Frames: 0, FPS: 24}, "00:00"},
		{storage.RunRecord{Frames: 24, FPS: 24}, "00:01"},
		{storage.RunRecord{Frames: 24 * 61, FPS: 24}, "01:01"},
		{storage.RunRecord{Frames: 30 * 90, FPS: 30}, "01:30"},
		{storage.RunRecord{Frames: 48}, "00:02"}, // rate unknown, 24 assumed
	}
	for _, tt := range tests {
		if got := formatDuration(tt.run.Survived()); got != tt.want {
			t.Errorf("formatDuration(%d frames at %d fps) = %q, expected %q", tt.run.Frames, tt.run.FPS, got, tt.want)
		}
	}
}

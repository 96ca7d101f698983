package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("garden", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("garden", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("garden", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("garden_sandbox", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for garden
	scores, err := store.TopScores("garden", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for sandbox
	sandboxScores, err := store.TopScores("garden_sandbox", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(sandboxScores) != 1 {
		t.Errorf("Expected 1 sandbox score, got %d", len(sandboxScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("garden")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("garden", 100)
	store.SaveScore("garden", 300)
	store.SaveScore("garden", 200)

	high, err = store.HighScore("garden")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("garden", 100)
	store.SaveScore("garden", 200)
	store.SaveScore("garden_sandbox", 300)

	// Clear only garden scores
	err = store.ClearScores("garden")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Garden should be empty
	gardenScores, _ := store.TopScores("garden", 10)
	if len(gardenScores) != 0 {
		t.Errorf("Expected 0 garden scores after clear, got %d", len(gardenScores))
	}

	// Sandbox should still have scores
	sandboxScores, _ := store.TopScores("garden_sandbox", 10)
	if len(sandboxScores) != 1 {
		t.Errorf("Sandbox scores should not be affected by clearing garden")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []RunRecord{
		{GameID: "garden", Seed: 1, Frames: 1200, Score: 30, Harvested: 3, Cause: "asphyxiation"},
		{GameID: "garden", Seed: 2, Frames: 4800, Score: 90, Harvested: 9, Cause: "impact"},
		{GameID: "garden", Seed: 3, Frames: 600, Score: 0, Harvested: 0, Cause: "asphyxiation"},
		{GameID: "garden_sandbox", Seed: 4, Frames: 99999, Cause: "vacuum"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("garden", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentRuns() returned %d runs, expected 2", len(recent))
	}
	if recent[0].Seed != 3 || recent[1].Seed != 2 {
		t.Errorf("RecentRuns() seeds = %d,%d, expected 3,2", recent[0].Seed, recent[1].Seed)
	}
	if recent[1].Frames != 4800 || recent[1].Cause != "impact" {
		t.Errorf("RecentRuns()[1] = %+v, expected 4800 frames by impact", recent[1])
	}
}

func TestStoreGameStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	empty, err := store.GetGameStats("garden")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.LongestRun != 0 || empty.CommonDeath != "" {
		t.Errorf("GetGameStats() on empty db = %+v, expected zeros", empty)
	}

	store.SaveScore("garden", 30)
	store.SaveScore("garden", 90)
	store.SaveRun(RunRecord{GameID: "garden", Frames: 1200, Harvested: 3, Cause: "asphyxiation"})
	store.SaveRun(RunRecord{GameID: "garden", Frames: 4800, Harvested: 9, Cause: "impact"})
	store.SaveRun(RunRecord{GameID: "garden", Frames: 300, Harvested: 1, Cause: "asphyxiation"})
	store.SaveRun(RunRecord{GameID: "garden", Frames: 5400, FPS: 30, Harvested: 2, Cause: "impact"})

	stats, err := store.GetGameStats("garden")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 90 {
		t.Errorf("GamesCount, HighScore = %d, %d, expected 2, 90", stats.GamesCount, stats.HighScore)
	}
	// 4800 frames at 24 fps outlast 5400 frames at 30 fps.
	if stats.LongestRun != 200*time.Second {
		t.Errorf("LongestRun = %v, expected %v", stats.LongestRun, 200*time.Second)
	}
	if stats.TotalFruit != 15 {
		t.Errorf("TotalFruit = %d, expected 15", stats.TotalFruit)
	}
	// Ties go to the alphabetically first cause.
	if stats.CommonDeath != "asphyxiation" {
		t.Errorf("CommonDeath = %q, expected %q", stats.CommonDeath, "asphyxiation")
	}

	if err := store.ClearScores("garden"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if runs, _ := store.RecentRuns("garden", 10); len(runs) != 0 {
		t.Errorf("RecentRuns() after clear = %d runs, expected 0", len(runs))
	}
}

func TestRunRecordKeepsFrameRate(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunRecord{GameID: "garden", Seed: 1, Frames: 1800, FPS: 30})
	store.SaveRun(RunRecord{GameID: "garden", Seed: 2, Frames: 1800})

	runs, err := store.RecentRuns("garden", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("RecentRuns() returned %d runs, expected 2", len(runs))
	}

	tests := []struct {
		run     RunRecord
		fps     int
		survive time.Duration
	}{
		{runs[1], 30, 60 * time.Second},
		{runs[0], 24, 75 * time.Second},
	}
	for _, tt := range tests {
		if tt.run.FPS != tt.fps {
			t.Errorf("seed %d: FPS = %d, expected %d", tt.run.Seed, tt.run.FPS, tt.fps)
		}
		if got := tt.run.Survived(); got != tt.survive {
			t.Errorf("seed %d: Survived() = %v, expected %v", tt.run.Seed, got, tt.survive)
		}
	}

	if got := (RunRecord{Frames: 48}).Survived(); got != 2*time.Second {
		t.Errorf("Survived() without a rate = %v, expected 2s", got)
	}
}

func TestOpenAddsFrameRateToOldRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			harvested INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO runs (game_id, seed, frames) VALUES ('garden', 9, 2400);
	`)
	db.Close()
	if err != nil {
		t.Fatalf("creating old schema failed: %v", err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns("garden", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].FPS != 24 || runs[0].Survived() != 100*time.Second {
		t.Errorf("RecentRuns() = %+v, expected one run of 100s at 24 fps", runs)
	}
}

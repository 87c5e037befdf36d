package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

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
	store := openTestStore(t)

	// Save some scores
	if _, err := store.SaveScore("survival", 100); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("survival", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("survival", 200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	if _, err := store.SaveScore("bossrush", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for survival
	scores, err := store.TopScores("survival", 10)
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

	// Retrieve top scores for bossrush
	rushScores, err := store.TopScores("bossrush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(rushScores) != 1 {
		t.Errorf("Expected 1 bossrush score, got %d", len(rushScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("survival", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("survival", 3)
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
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("survival")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("survival", 100)
	store.SaveScore("survival", 300)
	store.SaveScore("survival", 200)

	high, err = store.HighScore("survival")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("survival", 100)
	store.SaveScore("survival", 200)
	store.SaveScore("bossrush", 300)

	// Clear only survival scores
	if err := store.ClearScores("survival"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Survival should be empty
	survivalScores, _ := store.TopScores("survival", 10)
	if len(survivalScores) != 0 {
		t.Errorf("Expected 0 survival scores after clear, got %d", len(survivalScores))
	}

	// Boss rush should still have scores
	rushScores, _ := store.TopScores("bossrush", 10)
	if len(rushScores) != 1 {
		t.Error("Boss rush scores should not be affected by clearing survival")
	}
}

func TestStoreRecordAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunResult{
		{GameID: "survival", Score: 1000, Wave: 4, Kills: 40, EliteKills: 2, Duration: 120},
		{GameID: "survival", Score: 3500, Wave: 8, Kills: 130, EliteKills: 9, Duration: 400},
		{GameID: "bossrush", Score: 2500, Wave: 1, Kills: 5, EliteKills: 0, Duration: 90},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("survival", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 survival runs, got %d", len(got))
	}

	// Most recent first
	if got[0].Wave != 8 || got[0].Kills != 130 {
		t.Errorf("Most recent run mismatch: %+v", got[0])
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestRun("survival")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Fatalf("Expected nil best run for empty game, got %+v", best)
	}

	store.RecordRun(RunResult{GameID: "survival", Score: 500, Wave: 3})
	store.RecordRun(RunResult{GameID: "survival", Score: 900, Wave: 7})
	store.RecordRun(RunResult{GameID: "survival", Score: 2000, Wave: 7})

	best, err = store.BestRun("survival")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Wave != 7 || best.Score != 2000 {
		t.Errorf("Expected best run wave 7 score 2000, got %+v", best)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("survival", 100)
	store.SaveScore("survival", 300)
	store.RecordRun(RunResult{GameID: "survival", Score: 100, Wave: 2, Kills: 10})
	store.RecordRun(RunResult{GameID: "survival", Score: 300, Wave: 6, Kills: 50})

	stats, err := store.GetGameStats("survival")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.BestWave != 6 {
		t.Errorf("BestWave = %d, want 6", stats.BestWave)
	}
	if stats.TotalKills != 60 {
		t.Errorf("TotalKills = %d, want 60", stats.TotalKills)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("survival", 100)
	store.SaveScore("bossrush", 700)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(stats))
	}
	if stats["bossrush"].HighScore != 700 {
		t.Errorf("bossrush high score = %d, want 700", stats["bossrush"].HighScore)
	}
}

func TestStoreNestedPathCreation(t *testing.T) {
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

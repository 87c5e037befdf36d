package save

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")

	p, err := Load(path, testLogger())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if p.Totals.Runs != 0 {
		t.Errorf("fresh profile has %d runs", p.Totals.Runs)
	}
	if p.Settings.Difficulty != "normal" {
		t.Errorf("fresh profile difficulty = %q, want normal", p.Settings.Difficulty)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "profile.json")

	p := DefaultProfile()
	p.Settings.Difficulty = "hard"
	p.Settings.LastGame = "bossrush"
	p.MergeRun(RunSummary{
		Wave:         7,
		Kills:        120,
		EliteKills:   4,
		BossDefeated: true,
		Seconds:      340,
		Achievements: []string{"first_blood", "boss_slayer"},
	})

	if err := Save(path, p); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := Load(path, testLogger())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.Settings.Difficulty != "hard" || got.Settings.LastGame != "bossrush" {
		t.Errorf("settings mismatch: %+v", got.Settings)
	}
	if got.Totals.Runs != 1 || got.Totals.Kills != 120 || got.Totals.BestWave != 7 {
		t.Errorf("totals mismatch: %+v", got.Totals)
	}
	if got.Totals.BossesDefeated != 1 {
		t.Errorf("BossesDefeated = %d, want 1", got.Totals.BossesDefeated)
	}
	if !got.HasAchievement("first_blood") || !got.HasAchievement("boss_slayer") {
		t.Errorf("achievements lost: %v", got.Achievements)
	}
}

func TestLoadCorruptedFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte("{not json!!"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path, testLogger())
	if err != nil {
		t.Fatalf("corrupted file should not be an error: %v", err)
	}
	if p.Totals.Runs != 0 || len(p.Achievements) != 0 {
		t.Errorf("corrupted file should yield a fresh profile, got %+v", p)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")

	if err := Save(path, DefaultProfile()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "profile.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only profile.json, got %v", names)
	}
}

func TestMergeRunAccumulates(t *testing.T) {
	p := DefaultProfile()

	p.MergeRun(RunSummary{Wave: 3, Kills: 30, Seconds: 60})
	p.MergeRun(RunSummary{Wave: 8, Kills: 70, EliteKills: 2, Seconds: 200})
	p.MergeRun(RunSummary{Wave: 5, Kills: 40, Seconds: 100})

	if p.Totals.Runs != 3 {
		t.Errorf("Runs = %d, want 3", p.Totals.Runs)
	}
	if p.Totals.Kills != 140 {
		t.Errorf("Kills = %d, want 140", p.Totals.Kills)
	}
	if p.Totals.BestWave != 8 {
		t.Errorf("BestWave = %d, want 8 (never regresses)", p.Totals.BestWave)
	}
	if p.Totals.PlaySeconds != 360 {
		t.Errorf("PlaySeconds = %d, want 360", p.Totals.PlaySeconds)
	}
}

func TestMergeRunKeepsFirstUnlockTime(t *testing.T) {
	p := DefaultProfile()
	p.Achievements["first_blood"] = "2026-01-01T00:00:00Z"

	p.MergeRun(RunSummary{Achievements: []string{"first_blood", "ghost"}})

	if p.Achievements["first_blood"] != "2026-01-01T00:00:00Z" {
		t.Error("existing unlock timestamp was overwritten")
	}
	if !p.HasAchievement("ghost") {
		t.Error("new achievement not merged")
	}
}

// Package save persists the player profile: settings, unlocked
// achievements and lifetime totals. The profile is a single JSON file
// written atomically so a crash mid-save never corrupts it.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const profileVersion = 1

// Settings holds user preferences restored between sessions.
type Settings struct {
	Difficulty string `json:"difficulty"`
	LastGame   string `json:"last_game"`
}

// Totals accumulates lifetime statistics across all runs.
type Totals struct {
	Runs           int   `json:"runs"`
	Kills          int64 `json:"kills"`
	EliteKills     int64 `json:"elite_kills"`
	BossesDefeated int   `json:"bosses_defeated"`
	BestWave       int   `json:"best_wave"`
	PlaySeconds    int64 `json:"play_seconds"`
}

// Profile is the on-disk player profile.
type Profile struct {
	Version      int               `json:"version"`
	Settings     Settings          `json:"settings"`
	Achievements map[string]string `json:"achievements"` // ID -> unlock time, RFC 3339
	Totals       Totals            `json:"totals"`
}

// RunSummary describes one finished run for merging into the profile.
type RunSummary struct {
	Wave         int
	Kills        int
	EliteKills   int
	BossDefeated bool
	Seconds      int
	Achievements []string
}

// DefaultProfile returns a fresh profile with no progress.
func DefaultProfile() *Profile {
	return &Profile{
		Version:      profileVersion,
		Settings:     Settings{Difficulty: "normal"},
		Achievements: make(map[string]string),
	}
}

// DefaultPath returns the default profile location under the user's home
// directory, or a relative fallback when home is unavailable.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "neuralbreak-profile.json"
	}
	return filepath.Join(home, ".neuralbreak", "profile.json")
}

// Load reads the profile from path. A missing file yields a default
// profile. A corrupted file also yields a default profile after logging
// a warning, so the player can keep playing.
func Load(path string, logger *log.Logger) (*Profile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultProfile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("save: cannot read profile %s: %w", path, err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		if logger != nil {
			logger.Warn("profile corrupted, starting fresh", "path", path, "err", err)
		}
		return DefaultProfile(), nil
	}
	if p.Achievements == nil {
		p.Achievements = make(map[string]string)
	}
	if p.Version == 0 {
		p.Version = profileVersion
	}
	return &p, nil
}

// Save writes the profile atomically: marshal to a temp file in the same
// directory, then rename over the target.
func Save(path string, p *Profile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save: cannot create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("save: cannot marshal profile: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".profile-*.json")
	if err != nil {
		return fmt.Errorf("save: cannot create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("save: cannot write profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("save: cannot close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("save: cannot replace profile: %w", err)
	}
	return nil
}

// MergeRun folds a finished run into the profile's lifetime totals and
// unlocks any achievements earned during the run. Already unlocked
// achievements keep their original timestamps.
func (p *Profile) MergeRun(run RunSummary) {
	p.Totals.Runs++
	p.Totals.Kills += int64(run.Kills)
	p.Totals.EliteKills += int64(run.EliteKills)
	p.Totals.PlaySeconds += int64(run.Seconds)
	if run.BossDefeated {
		p.Totals.BossesDefeated++
	}
	if run.Wave > p.Totals.BestWave {
		p.Totals.BestWave = run.Wave
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, id := range run.Achievements {
		if _, ok := p.Achievements[id]; !ok {
			p.Achievements[id] = now
		}
	}
}

// HasAchievement reports whether the given achievement is unlocked.
func (p *Profile) HasAchievement(id string) bool {
	_, ok := p.Achievements[id]
	return ok
}

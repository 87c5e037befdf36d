package survival

import (
	"fmt"

	"github.com/z13/neural-break/internal/config"
)

// WaveManager drives timed wave progression: waves advance on a fixed tick
// budget, every Nth wave is a boss wave, and each wave opens with a spawn
// burst and an on-screen announcement.
type WaveManager struct {
	cfg config.WaveConfig

	wave      int // Current wave, 1-based
	waveTick  int // Ticks elapsed in the current wave
	bossEvery int
	bossRush  bool // Every wave is a boss wave
}

// NewWaveManager creates a wave manager. The first call to Update starts
// wave 1. In boss-rush mode every wave is a boss wave.
func NewWaveManager(cfg config.WaveConfig, bossRush bool) *WaveManager {
	every := cfg.BossEvery
	if every < 1 {
		every = 1
	}
	return &WaveManager{cfg: cfg, bossEvery: every, bossRush: bossRush}
}

// Update advances the wave clock by one tick. Returns (waveNumber, true)
// when a new wave starts this tick.
func (m *WaveManager) Update() (int, bool) {
	if m.wave == 0 {
		m.wave = 1
		m.waveTick = 0
		return m.wave, true
	}

	m.waveTick++
	if m.waveTick >= m.cfg.DurationTicks {
		m.wave++
		m.waveTick = 0
		return m.wave, true
	}
	return m.wave, false
}

// Wave returns the current wave number (0 before the first Update).
func (m *WaveManager) Wave() int {
	return m.wave
}

// IsBossWave reports whether a wave number spawns the boss.
func (m *WaveManager) IsBossWave(wave int) bool {
	if wave < 1 {
		return false
	}
	if m.bossRush {
		return true
	}
	return wave%m.bossEvery == 0
}

// BurstActive reports whether the current wave's opening spawn burst is live.
func (m *WaveManager) BurstActive() bool {
	return m.wave > 0 && m.waveTick < m.cfg.BurstTicks
}

// Announcement returns the wave banner text while it should be displayed.
func (m *WaveManager) Announcement() (string, bool) {
	if m.wave == 0 || m.waveTick >= m.cfg.AnnounceTicks {
		return "", false
	}
	if m.IsBossWave(m.wave) {
		return fmt.Sprintf("WAVE %d :: INTRUSION DETECTED", m.wave), true
	}
	return fmt.Sprintf("WAVE %d", m.wave), true
}

package survival

import (
	"testing"

	"github.com/z13/neural-break/internal/config"
)

func testWaveConfig() config.WaveConfig {
	return config.WaveConfig{
		DurationTicks:   100,
		BossEvery:       5,
		BurstMultiplier: 2.0,
		BurstTicks:      20,
		AnnounceTicks:   10,
	}
}

func TestWaveProgression(t *testing.T) {
	m := NewWaveManager(testWaveConfig(), false)

	if m.Wave() != 0 {
		t.Fatalf("wave before first update = %d, want 0", m.Wave())
	}

	wave, started := m.Update()
	if !started || wave != 1 {
		t.Fatalf("first update should start wave 1, got (%d, %v)", wave, started)
	}

	// The wave holds for its full duration.
	for i := 0; i < testWaveConfig().DurationTicks-1; i++ {
		if _, started := m.Update(); started {
			t.Fatalf("wave advanced early at tick %d", i)
		}
	}

	wave, started = m.Update()
	if !started || wave != 2 {
		t.Fatalf("expected wave 2 after duration, got (%d, %v)", wave, started)
	}
}

func TestBossWaveCadence(t *testing.T) {
	m := NewWaveManager(testWaveConfig(), false)

	bossWaves := []int{5, 10, 15}
	for _, w := range bossWaves {
		if !m.IsBossWave(w) {
			t.Errorf("wave %d should be a boss wave", w)
		}
	}
	for _, w := range []int{1, 2, 3, 4, 6, 7} {
		if m.IsBossWave(w) {
			t.Errorf("wave %d should not be a boss wave", w)
		}
	}
}

func TestBossRushEveryWaveIsBoss(t *testing.T) {
	m := NewWaveManager(testWaveConfig(), true)
	for w := 1; w <= 6; w++ {
		if !m.IsBossWave(w) {
			t.Errorf("boss rush wave %d should be a boss wave", w)
		}
	}
}

func TestBurstWindow(t *testing.T) {
	cfg := testWaveConfig()
	m := NewWaveManager(cfg, false)
	m.Update() // Start wave 1

	if !m.BurstActive() {
		t.Fatal("burst should be active at wave start")
	}
	for i := 0; i < cfg.BurstTicks; i++ {
		m.Update()
	}
	if m.BurstActive() {
		t.Error("burst should end after its window")
	}
}

func TestAnnouncementWindow(t *testing.T) {
	cfg := testWaveConfig()
	m := NewWaveManager(cfg, false)
	m.Update()

	if text, ok := m.Announcement(); !ok || text == "" {
		t.Fatal("announcement should show at wave start")
	}
	for i := 0; i < cfg.AnnounceTicks; i++ {
		m.Update()
	}
	if _, ok := m.Announcement(); ok {
		t.Error("announcement should expire")
	}
}

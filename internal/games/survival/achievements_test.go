package survival

import (
	"testing"

	"github.com/z13/neural-break/internal/event"
)

func TestAchievementFirstBlood(t *testing.T) {
	bus := event.NewBus()
	a := NewAchievements(bus)

	bus.Publish(event.EnemyKilled{Kind: "data_mite", Score: 10, Wave: 1})
	if !a.Has(AchFirstBlood) {
		t.Fatal("first kill should unlock first blood")
	}

	// Unlocks are one-shot.
	bus.Publish(event.EnemyKilled{Kind: "data_mite", Score: 10, Wave: 1})
	if len(a.Unlocked()) != 1 {
		t.Errorf("expected 1 unlock, got %v", a.Unlocked())
	}
}

func TestAchievementKillCounters(t *testing.T) {
	bus := event.NewBus()
	a := NewAchievements(bus)

	for i := 0; i < 99; i++ {
		bus.Publish(event.EnemyKilled{Kind: "fizzer", Score: 10, Wave: 2})
	}
	if a.Has(AchExterminator) {
		t.Fatal("exterminator unlocked at 99 kills")
	}
	bus.Publish(event.EnemyKilled{Kind: "fizzer", Score: 10, Wave: 2})
	if !a.Has(AchExterminator) {
		t.Fatal("exterminator should unlock at 100 kills")
	}

	for i := 0; i < 10; i++ {
		bus.Publish(event.EnemyKilled{Kind: "ufo", Elite: true, Score: 40, Wave: 3})
	}
	if !a.Has(AchEliteHunter) {
		t.Error("elite hunter should unlock at 10 elite kills")
	}
}

func TestAchievementBossAndCombo(t *testing.T) {
	bus := event.NewBus()
	a := NewAchievements(bus)

	bus.Publish(event.BossDefeated{Wave: 5, Score: 2500})
	if !a.Has(AchBossSlayer) {
		t.Error("boss slayer should unlock on boss defeat")
	}

	bus.Publish(event.ScoreChanged{Score: 100, Combo: 19})
	if a.Has(AchUnstoppable) {
		t.Fatal("unstoppable unlocked below combo 20")
	}
	bus.Publish(event.ScoreChanged{Score: 120, Combo: 20})
	if !a.Has(AchUnstoppable) {
		t.Error("unstoppable should unlock at combo 20")
	}
}

func TestAchievementGhostWave(t *testing.T) {
	bus := event.NewBus()
	a := NewAchievements(bus)

	bus.Publish(event.WaveStarted{Number: 1})
	bus.Publish(event.PlayerDamaged{Damage: 5, HPLeft: 95})
	bus.Publish(event.WaveStarted{Number: 2})
	if a.Has(AchGhost) {
		t.Fatal("ghost unlocked despite taking damage in wave 1")
	}

	// Wave 2 passes clean.
	bus.Publish(event.WaveStarted{Number: 3})
	if !a.Has(AchGhost) {
		t.Error("ghost should unlock after an untouched wave")
	}
}

func TestAchievementWaveRider(t *testing.T) {
	bus := event.NewBus()
	a := NewAchievements(bus)

	bus.Publish(event.WaveStarted{Number: 9})
	if a.Has(AchWaveRider) {
		t.Fatal("wave rider unlocked before wave 10")
	}
	bus.Publish(event.WaveStarted{Number: 10})
	if !a.Has(AchWaveRider) {
		t.Error("wave rider should unlock at wave 10")
	}
}

func TestAchievementTitles(t *testing.T) {
	if AchievementTitle(AchFirstBlood) != "First Blood" {
		t.Errorf("unexpected title %q", AchievementTitle(AchFirstBlood))
	}
	if AchievementTitle("bogus") != "bogus" {
		t.Error("unknown IDs should fall back to the raw ID")
	}
}

package survival

import (
	"testing"

	"github.com/z13/neural-break/internal/config"
	"github.com/z13/neural-break/internal/core"
)

func testBossConfig() config.BossConfig {
	return config.BossConfig{
		MaxHP:           300,
		Speed:           0.1,
		ContactDamage:   30,
		ScoreValue:      1000,
		VolleyInterval:  30,
		SpiralInterval:  5,
		RingInterval:    50,
		RingCount:       12,
		SummonInterval:  100,
		SummonCount:     3,
		ProjectileSpeed: 0.4,
	}
}

// materialize runs the boss through its spawn-in period.
func materialize(b *Boss, w World) {
	for b.Materializing() {
		b.Update(w)
	}
}

func TestBossInvulnerableWhileMaterializing(t *testing.T) {
	b := NewBoss(testBossConfig(), core.Vec2{X: 40, Y: 5})

	if killed := b.Damage(9999); killed {
		t.Fatal("materializing boss must ignore damage")
	}
	if b.HP != b.MaxHP {
		t.Errorf("materializing boss lost HP: %d/%d", b.HP, b.MaxHP)
	}
}

func TestBossPhaseThresholds(t *testing.T) {
	w := newStubWorld()
	b := NewBoss(testBossConfig(), core.Vec2{X: 40, Y: 5})
	materialize(b, w)

	if b.Phase != 1 {
		t.Fatalf("fresh boss should be phase 1, got %d", b.Phase)
	}

	// Drop to exactly 67%: still phase 1 (transition is strictly below).
	b.Damage(b.MaxHP - b.MaxHP*67/100)
	if p := b.Update(w); p != 0 {
		t.Errorf("boss at exactly 67%% should stay phase 1, entered %d", p)
	}

	// One more point of damage crosses into phase 2.
	b.Damage(1)
	if p := b.Update(w); p != 2 {
		t.Errorf("boss below 67%% should enter phase 2, got %d", p)
	}
	if b.Phase != 2 {
		t.Errorf("expected phase 2, got %d", b.Phase)
	}

	// Below 34%: phase 3.
	b.Damage(b.HP - b.MaxHP*34/100 + 1)
	if p := b.Update(w); p != 3 {
		t.Errorf("boss below 34%% should enter phase 3, got %d", p)
	}
}

func TestBossPhaseNeverRetreats(t *testing.T) {
	w := newStubWorld()
	b := NewBoss(testBossConfig(), core.Vec2{X: 40, Y: 5})
	materialize(b, w)

	b.Damage(b.MaxHP * 80 / 100)
	b.Update(w)
	if b.Phase != 3 {
		t.Fatalf("expected phase 3 at 20%% health, got %d", b.Phase)
	}

	// Healing is not a mechanic, but the phase logic must still hold.
	b.HP = b.MaxHP
	b.Update(w)
	if b.Phase != 3 {
		t.Errorf("phase must never retreat, got %d", b.Phase)
	}
}

func TestBossPhase1FiresVolleys(t *testing.T) {
	w := newStubWorld()
	cfg := testBossConfig()
	b := NewBoss(cfg, core.Vec2{X: 40, Y: 5})
	materialize(b, w)

	for i := 0; i < cfg.VolleyInterval; i++ {
		b.Update(w)
	}
	if w.shots != bossVolleyCount {
		t.Errorf("expected one %d-shot volley, got %d shots", bossVolleyCount, w.shots)
	}
}

func TestBossPhase3SummonsMinions(t *testing.T) {
	w := newStubWorld()
	cfg := testBossConfig()
	b := NewBoss(cfg, core.Vec2{X: 40, Y: 5})
	materialize(b, w)

	b.Damage(b.MaxHP * 80 / 100) // Straight to phase 3
	for i := 0; i < cfg.SummonInterval; i++ {
		b.Update(w)
	}
	if w.summons != cfg.SummonCount {
		t.Errorf("expected %d summoned minions, got %d", cfg.SummonCount, w.summons)
	}
}

func TestBossDeath(t *testing.T) {
	w := newStubWorld()
	b := NewBoss(testBossConfig(), core.Vec2{X: 40, Y: 5})
	materialize(b, w)

	if killed := b.Damage(b.MaxHP); !killed {
		t.Fatal("lethal damage should report a kill")
	}
	if b.Alive() {
		t.Error("boss should be dead")
	}
	if killed := b.Damage(10); killed {
		t.Error("dead boss must not be killed twice")
	}
}

package survival

import (
	"testing"

	"github.com/z13/neural-break/internal/config"
	"github.com/z13/neural-break/internal/core"
)

// stubWorld is a minimal World for driving enemies and the boss in isolation.
type stubWorld struct {
	player       core.Vec2
	arena        core.Rect
	rng          *core.RNG
	shots        int
	summons      int
	pulls        int
	materialized int
}

func newStubWorld() *stubWorld {
	return &stubWorld{
		player: core.Vec2{X: 40, Y: 12},
		arena:  core.NewRect(0, 2, 80, 22),
		rng:    core.NewRNG(42),
	}
}

func (w *stubWorld) PlayerPos() core.Vec2 { return w.player }
func (w *stubWorld) Arena() core.Rect     { return w.arena }
func (w *stubWorld) RNG() *core.RNG       { return w.rng }

func (w *stubWorld) FireEnemyShot(from, dir core.Vec2, speed float64, damage int) {
	w.shots++
}

func (w *stubWorld) PullPlayer(toward core.Vec2, accel float64) {
	w.pulls++
}

func (w *stubWorld) SummonMinions(around core.Vec2, count int) {
	w.summons += count
}

func (w *stubWorld) OnEnemyMaterialized(e *Enemy) {
	w.materialized++
}

func testStats() Stats {
	return Stats{MaxHP: 20, Speed: 0.3, ContactDamage: 5, ScoreValue: 10}
}

func TestEnemyLifecycle(t *testing.T) {
	w := newStubWorld()
	e := &Enemy{}
	e.Activate(config.KindDataMite, testStats(), core.Vec2{X: 10, Y: 10})

	if e.Phase != PhaseSpawning {
		t.Fatalf("fresh enemy should be spawning, got %v", e.Phase)
	}

	// Materialize
	for i := 0; i < SpawnTicks; i++ {
		e.Update(w)
	}
	if e.Phase != PhaseAlive {
		t.Fatalf("enemy should be alive after %d ticks, got %v", SpawnTicks, e.Phase)
	}
	if w.materialized != 1 {
		t.Errorf("expected 1 materialize callback, got %d", w.materialized)
	}

	// Kill
	if killed := e.Damage(e.Stats.MaxHP); !killed {
		t.Fatal("lethal damage should report a kill")
	}
	if e.Phase != PhaseDying {
		t.Fatalf("killed enemy should be dying, got %v", e.Phase)
	}

	// Flicker out
	for i := 0; i < DyingTicks; i++ {
		e.Update(w)
	}
	if e.Phase != PhaseDead {
		t.Fatalf("enemy should be dead after %d dying ticks, got %v", DyingTicks, e.Phase)
	}
}

func TestEnemyInvulnerableWhileSpawning(t *testing.T) {
	e := &Enemy{}
	e.Activate(config.KindDataMite, testStats(), core.Vec2{})

	if killed := e.Damage(9999); killed {
		t.Fatal("damage during spawning must be ignored")
	}
	if e.HP != e.Stats.MaxHP {
		t.Errorf("spawning enemy lost HP: %d/%d", e.HP, e.Stats.MaxHP)
	}
	if e.Phase != PhaseSpawning {
		t.Errorf("spawning enemy changed phase to %v", e.Phase)
	}
}

func TestEnemyDamageIgnoredWhileDying(t *testing.T) {
	w := newStubWorld()
	e := &Enemy{}
	e.Activate(config.KindDataMite, testStats(), core.Vec2{})
	for i := 0; i < SpawnTicks; i++ {
		e.Update(w)
	}

	e.Damage(e.Stats.MaxHP)
	if e.Phase != PhaseDying {
		t.Fatalf("expected dying, got %v", e.Phase)
	}
	if killed := e.Damage(100); killed {
		t.Error("dying enemy must not be killed again")
	}
}

func TestEnemyPartialDamage(t *testing.T) {
	w := newStubWorld()
	e := &Enemy{}
	e.Activate(config.KindFizzer, testStats(), core.Vec2{})
	for i := 0; i < SpawnTicks; i++ {
		e.Update(w)
	}

	if killed := e.Damage(5); killed {
		t.Fatal("non-lethal damage should not kill")
	}
	if e.HP != 15 {
		t.Errorf("expected 15 HP after 5 damage, got %d", e.HP)
	}
	if !e.Collidable() {
		t.Error("damaged alive enemy should still collide")
	}
}

func TestActivateResetsPooledInstance(t *testing.T) {
	w := newStubWorld()
	e := &Enemy{}
	e.Activate(config.KindChaosWorm, testStats(), core.Vec2{X: 5, Y: 5})
	for i := 0; i < SpawnTicks+10; i++ {
		e.Update(w)
	}
	e.Damage(e.Stats.MaxHP)

	// Reuse for a different kind; all scratch state must reset.
	e.Activate(config.KindDataMite, testStats(), core.Vec2{X: 1, Y: 1})
	if e.Phase != PhaseSpawning {
		t.Errorf("reactivated enemy should be spawning, got %v", e.Phase)
	}
	if e.HP != e.Stats.MaxHP {
		t.Errorf("reactivated enemy should have full HP, got %d", e.HP)
	}
	if len(e.SegmentPositions()) != 0 {
		t.Error("reactivated enemy kept old worm segments")
	}
	if e.Elite {
		t.Error("reactivated enemy kept elite flag")
	}
}

func TestDataMiteClosesOnPlayer(t *testing.T) {
	w := newStubWorld()
	e := &Enemy{}
	e.Activate(config.KindDataMite, testStats(), core.Vec2{X: 10, Y: 10})
	for i := 0; i < SpawnTicks; i++ {
		e.Update(w)
	}

	start := e.Pos.Dist(w.player)
	for i := 0; i < 120; i++ {
		e.Update(w)
	}
	if end := e.Pos.Dist(w.player); end >= start {
		t.Errorf("data mite should approach the player: %f -> %f", start, end)
	}
}

func TestScanDroneFiresAimedShots(t *testing.T) {
	w := newStubWorld()
	stats := testStats()
	stats.AttackInterval = 10
	stats.ProjectileSpeed = 0.5

	e := &Enemy{}
	e.Activate(config.KindScanDrone, stats, core.Vec2{X: 20, Y: 12})
	for i := 0; i < SpawnTicks; i++ {
		e.Update(w)
	}

	for i := 0; i < 100; i++ {
		e.Update(w)
	}
	if w.shots != 10 {
		t.Errorf("expected 10 shots over 100 ticks at interval 10, got %d", w.shots)
	}
}

func TestScanDroneKeepsStandoff(t *testing.T) {
	w := newStubWorld()
	stats := testStats()
	stats.Speed = 0.5

	e := &Enemy{}
	e.Activate(config.KindScanDrone, stats, core.Vec2{X: 38, Y: 12}) // Too close
	for i := 0; i < SpawnTicks; i++ {
		e.Update(w)
	}

	for i := 0; i < 200; i++ {
		e.Update(w)
	}
	dist := e.Pos.Dist(w.player)
	if dist < droneStandoff-droneSlack-0.5 || dist > droneStandoff+droneSlack+0.5 {
		t.Errorf("drone should settle near standoff %f, got %f", droneStandoff, dist)
	}
}

func TestUFOFiresRadialBurst(t *testing.T) {
	w := newStubWorld()
	stats := testStats()
	stats.AttackInterval = 5
	stats.ProjectileSpeed = 0.4

	e := &Enemy{}
	e.Activate(config.KindUFO, stats, core.Vec2{X: 30, Y: 12})
	for i := 0; i < SpawnTicks; i++ {
		e.Update(w)
	}

	for i := 0; i < 5; i++ {
		e.Update(w)
	}
	if w.shots != ufoBurstCount {
		t.Errorf("expected one %d-shot radial burst, got %d shots", ufoBurstCount, w.shots)
	}
}

func TestChaosWormGrowsSegments(t *testing.T) {
	w := newStubWorld()
	e := &Enemy{}
	e.Activate(config.KindChaosWorm, testStats(), core.Vec2{X: 10, Y: 10})
	for i := 0; i < SpawnTicks+1; i++ {
		e.Update(w)
	}

	if got := len(e.SegmentPositions()); got != wormSegments {
		t.Fatalf("expected %d body segments, got %d", wormSegments, got)
	}

	// Segments must stay chained: no gap much larger than the spacing.
	for i := 0; i < 60; i++ {
		e.Update(w)
	}
	prev := e.Pos
	for i, seg := range e.SegmentPositions() {
		if d := prev.Dist(seg); d > wormSegmentGap*1.5 {
			t.Errorf("segment %d drifted %f from its leader", i, d)
		}
		prev = seg
	}
}

func TestVoidSpherePullsNearbyPlayer(t *testing.T) {
	w := newStubWorld()
	e := &Enemy{}
	e.Activate(config.KindVoidSphere, testStats(), w.player.Add(core.Vec2{X: 5}))
	for i := 0; i < SpawnTicks; i++ {
		e.Update(w)
	}

	e.Update(w)
	if w.pulls == 0 {
		t.Error("void sphere within pull radius should pull the player")
	}
	if e.ContactRadius != sphereAuraRadius {
		t.Errorf("void sphere aura radius = %f, want %f", e.ContactRadius, sphereAuraRadius)
	}
}

func TestCrystalShardStaysInArena(t *testing.T) {
	w := newStubWorld()
	e := &Enemy{}
	e.Activate(config.KindCrystalShard, testStats(), core.Vec2{X: 1, Y: 3})
	for i := 0; i < SpawnTicks; i++ {
		e.Update(w)
	}

	for i := 0; i < 2000; i++ {
		e.Update(w)
		if !w.arena.ContainsVec(e.Pos) {
			t.Fatalf("shard left the arena at tick %d: %+v", i, e.Pos)
		}
	}
}

func TestUnknownKindFallsBackToChase(t *testing.T) {
	w := newStubWorld()
	e := &Enemy{}
	e.Activate("glitch", testStats(), core.Vec2{X: 10, Y: 10})
	for i := 0; i < SpawnTicks; i++ {
		e.Update(w)
	}

	start := e.Pos.Dist(w.player)
	for i := 0; i < 60; i++ {
		e.Update(w)
	}
	if end := e.Pos.Dist(w.player); end >= start {
		t.Errorf("fallback behavior should chase the player: %f -> %f", start, end)
	}
}

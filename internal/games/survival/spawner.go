package survival

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/z13/neural-break/internal/config"
	"github.com/z13/neural-break/internal/core"
	"github.com/z13/neural-break/internal/pool"
)

// SpawnRateManager computes the interval between enemy spawns. The interval
// decays from the configured base toward a floor as difficulty rises, and
// shrinks further during a wave's opening burst.
type SpawnRateManager struct {
	cfg        config.SpawnConfig
	burstMult  float64
	difficulty *config.DifficultyManager
}

// NewSpawnRateManager creates a rate manager bound to a difficulty curve.
func NewSpawnRateManager(cfg config.SpawnConfig, burstMult float64, dm *config.DifficultyManager) *SpawnRateManager {
	return &SpawnRateManager{cfg: cfg, burstMult: burstMult, difficulty: dm}
}

// Interval returns the current ticks-between-spawns.
func (m *SpawnRateManager) Interval(score, tick int, burst bool) int {
	interval := m.difficulty.SpawnInterval(m.cfg.BaseInterval, m.cfg.MinInterval, score, tick)
	if burst && m.burstMult > 1 {
		interval = int(float64(interval) / m.burstMult)
		if interval < 1 {
			interval = 1
		}
	}
	return interval
}

// SpawnPositionCalculator picks spawn positions on a ring just outside the
// visible arena, far enough from the player.
type SpawnPositionCalculator struct {
	cfg config.SpawnConfig
}

// NewSpawnPositionCalculator creates a position calculator.
func NewSpawnPositionCalculator(cfg config.SpawnConfig) *SpawnPositionCalculator {
	return &SpawnPositionCalculator{cfg: cfg}
}

// Position returns a spawn position just outside the arena edge. Candidates
// closer to the player than the configured minimum are re-rolled; after the
// attempt budget runs out the last candidate is pushed out to the minimum
// distance and clamped to the spawn bounds.
func (c *SpawnPositionCalculator) Position(rng *core.RNG, arena core.Rect, player core.Vec2) core.Vec2 {
	var pos core.Vec2
	for attempt := 0; attempt < c.cfg.MaxPositionAttempts; attempt++ {
		pos = c.ringPoint(rng, arena)
		if pos.Dist(player) >= c.cfg.MinPlayerDistance {
			return pos
		}
	}

	// Out of attempts: force the last candidate to the minimum distance.
	away := pos.Sub(player).Normalized()
	if away == (core.Vec2{}) {
		away = core.Vec2{X: 1}
	}
	pos = player.Add(away.Scale(c.cfg.MinPlayerDistance))
	return core.ClampVec(pos, c.spawnBounds(arena))
}

// ringPoint picks a uniformly random point on the spawn ring: one of the four
// arena edges, offset outward by the ring margin.
func (c *SpawnPositionCalculator) ringPoint(rng *core.RNG, arena core.Rect) core.Vec2 {
	m := c.cfg.RingMargin
	switch rng.Intn(4) {
	case 0: // Top
		return core.Vec2{X: rng.Range(float64(arena.X), float64(arena.Right())), Y: float64(arena.Y) - m}
	case 1: // Bottom
		return core.Vec2{X: rng.Range(float64(arena.X), float64(arena.Right())), Y: float64(arena.Bottom()) + m}
	case 2: // Left
		return core.Vec2{X: float64(arena.X) - m, Y: rng.Range(float64(arena.Y), float64(arena.Bottom()))}
	default: // Right
		return core.Vec2{X: float64(arena.Right()) + m, Y: rng.Range(float64(arena.Y), float64(arena.Bottom()))}
	}
}

// spawnBounds is the arena expanded by the ring margin.
func (c *SpawnPositionCalculator) spawnBounds(arena core.Rect) core.Rect {
	m := int(c.cfg.RingMargin) + 1
	return core.NewRect(arena.X-m, arena.Y-m, arena.W+2*m, arena.H+2*m)
}

// Spawner drives timed enemy spawning: it ticks the spawn timer, picks an
// unlocked enemy kind by weight, pulls an instance from the pool manager,
// positions it, applies difficulty scaling and the elite roll, and activates
// it. Pool exhaustion skips the spawn for that tick.
type Spawner struct {
	cfg    *config.SurvivalConfig
	rate   *SpawnRateManager
	pos    *SpawnPositionCalculator
	pools  *EnemyPoolManager
	logger *log.Logger

	timer int
	kinds []string // All kinds sorted for deterministic weighted rolls
}

// NewSpawner wires the spawning pipeline together.
func NewSpawner(cfg *config.SurvivalConfig, dm *config.DifficultyManager, logger *log.Logger) *Spawner {
	kinds := make([]string, 0, len(cfg.Enemies))
	for kind := range cfg.Enemies {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	return &Spawner{
		cfg:    cfg,
		rate:   NewSpawnRateManager(cfg.Spawning, cfg.Waves.BurstMultiplier, dm),
		pos:    NewSpawnPositionCalculator(cfg.Spawning),
		pools:  NewEnemyPoolManager(kinds, cfg.Spawning.PoolSizePerType, logger),
		logger: logger,
		timer:  cfg.Spawning.BaseInterval,
		kinds:  kinds,
	}
}

// Pools exposes the pool manager so the game can release dead enemies.
func (s *Spawner) Pools() *EnemyPoolManager {
	return s.pools
}

// Update ticks the spawn timer and returns a freshly activated enemy when one
// spawns this tick, or nil otherwise. The enemy starts in PhaseSpawning.
func (s *Spawner) Update(w World, dm *config.DifficultyManager, score, tick, wave int, burst bool) *Enemy {
	s.timer--
	if s.timer > 0 {
		return nil
	}
	s.timer = s.rate.Interval(score, tick, burst)

	kind := s.pickKind(w.RNG(), wave)
	if kind == "" {
		return nil
	}

	e, ok := s.pools.Acquire(kind)
	if !ok {
		// Warning already logged by the pool manager; skip this tick's spawn.
		return nil
	}

	stats := s.scaledStats(s.cfg.Enemies[kind], dm, score, tick)
	pos := s.pos.Position(w.RNG(), w.Arena(), w.PlayerPos())
	e.Activate(kind, stats, pos)

	if rollElite(w.RNG(), s.cfg.Elites, wave) {
		applyElite(e, s.cfg.Elites)
	}
	return e
}

// SpawnAt force-spawns a specific kind at a position, bypassing the timer.
// Used for boss minion summons and crystal shard fragments.
// Returns nil when the kind's pool is exhausted.
func (s *Spawner) SpawnAt(kind string, pos core.Vec2, dm *config.DifficultyManager, score, tick int) *Enemy {
	tc, ok := s.cfg.Enemies[kind]
	if !ok {
		s.logger.Warn("spawn request for unknown enemy kind", "kind", kind)
		return nil
	}
	e, ok := s.pools.Acquire(kind)
	if !ok {
		return nil
	}
	e.Activate(kind, s.scaledStats(tc, dm, score, tick), pos)
	return e
}

// pickKind selects an enemy kind by weighted roll among kinds unlocked at the
// current wave. Returns "" when nothing is unlocked yet.
func (s *Spawner) pickKind(rng *core.RNG, wave int) string {
	total := 0
	for _, kind := range s.kinds {
		tc := s.cfg.Enemies[kind]
		if wave >= tc.UnlockWave {
			total += tc.Weight
		}
	}
	if total <= 0 {
		return ""
	}

	roll := rng.Intn(total)
	for _, kind := range s.kinds {
		tc := s.cfg.Enemies[kind]
		if wave < tc.UnlockWave {
			continue
		}
		roll -= tc.Weight
		if roll < 0 {
			return kind
		}
	}
	return ""
}

// scaledStats builds the instance stats for a kind at the current difficulty.
func (s *Spawner) scaledStats(tc config.EnemyTypeConfig, dm *config.DifficultyManager, score, tick int) Stats {
	return Stats{
		MaxHP:           dm.Health(tc.MaxHP, score, tick),
		Speed:           dm.Speed(tc.Speed, score, tick),
		ContactDamage:   tc.ContactDamage,
		ScoreValue:      tc.ScoreValue,
		AttackInterval:  tc.AttackInterval,
		ProjectileSpeed: tc.ProjectileSpeed,
	}
}

// EnemyPoolManager holds one fixed-capacity pool per enemy kind.
// Exhaustion returns (nil, false) and logs a warning; the caller skips the
// spawn rather than allocating past the cap.
type EnemyPoolManager struct {
	pools  map[string]*pool.Pool[*Enemy]
	logger *log.Logger
}

// NewEnemyPoolManager pre-allocates capacity instances for each kind.
func NewEnemyPoolManager(kinds []string, capacity int, logger *log.Logger) *EnemyPoolManager {
	m := &EnemyPoolManager{
		pools:  make(map[string]*pool.Pool[*Enemy], len(kinds)),
		logger: logger,
	}
	for _, kind := range kinds {
		m.pools[kind] = pool.New(capacity, func() *Enemy { return &Enemy{} })
	}
	return m
}

// Acquire takes an idle instance for a kind. Returns (nil, false) and logs a
// warning when the kind's pool is exhausted or unknown.
func (m *EnemyPoolManager) Acquire(kind string) (*Enemy, bool) {
	p, ok := m.pools[kind]
	if !ok {
		m.logger.Warn("no pool for enemy kind", "kind", kind)
		return nil, false
	}
	e, ok := p.Acquire()
	if !ok {
		m.logger.Warn("enemy pool exhausted, spawn skipped",
			"kind", kind, "capacity", p.Capacity())
		return nil, false
	}
	return e, true
}

// Release returns a dead instance to its kind's pool. Releases beyond the
// pool capacity are dropped.
func (m *EnemyPoolManager) Release(e *Enemy) {
	if p, ok := m.pools[e.Kind]; ok {
		p.Release(e)
	}
}

// Available returns the number of idle instances for a kind.
func (m *EnemyPoolManager) Available(kind string) int {
	if p, ok := m.pools[kind]; ok {
		return p.Available()
	}
	return 0
}

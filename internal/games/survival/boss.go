package survival

import (
	"math"

	"github.com/z13/neural-break/internal/config"
	"github.com/z13/neural-break/internal/core"
)

// Boss phase thresholds as percent of max health. The boss enters phase 2
// below 67% and phase 3 below 34%.
const (
	bossPhase2Pct = 67
	bossPhase3Pct = 34
)

const (
	bossGlyph        = '▣'
	bossSpiralStep   = 0.35 // Radians advanced per spiral shot
	bossVolleyCount  = 3
	bossVolleySpread = 0.25 // Radians between volley shots
	bossContactReach = 2.0
	bossSpawnTicks   = 60 // Materialize duration; longer than regular enemies
)

// Boss is the multi-phase wave boss. It shares the enemy lifecycle idea
// (materialize, fight, die) but is not pooled: there is at most one boss.
type Boss struct {
	HP    int
	MaxHP int
	Pos   core.Vec2
	Phase int // 1-based; advances at health thresholds, never retreats

	cfg config.BossConfig

	materializeTicks int
	volleyTimer      int
	spiralTimer      int
	ringTimer        int
	summonTimer      int
	spiralAngle      float64
}

// NewBoss creates a boss materializing at the given position.
func NewBoss(cfg config.BossConfig, pos core.Vec2) *Boss {
	return &Boss{
		HP:               cfg.MaxHP,
		MaxHP:            cfg.MaxHP,
		Pos:              pos,
		Phase:            1,
		cfg:              cfg,
		materializeTicks: bossSpawnTicks,
		volleyTimer:      cfg.VolleyInterval,
		spiralTimer:      cfg.SpiralInterval,
		ringTimer:        cfg.RingInterval,
		summonTimer:      cfg.SummonInterval,
	}
}

// Materializing reports whether the boss is still spawning in.
// A materializing boss is invulnerable and takes no actions.
func (b *Boss) Materializing() bool {
	return b.materializeTicks > 0
}

// Alive reports whether the boss has health left.
func (b *Boss) Alive() bool {
	return b.HP > 0
}

// Update advances the boss by one tick. Returns the phase entered this tick
// (2 or 3), or 0 when no transition happened.
func (b *Boss) Update(w World) int {
	if b.materializeTicks > 0 {
		b.materializeTicks--
		return 0
	}
	if !b.Alive() {
		return 0
	}

	entered := b.advancePhase()

	// Slow relentless chase in every phase.
	player := w.PlayerPos()
	b.Pos = b.Pos.Add(player.Sub(b.Pos).Normalized().Scale(b.cfg.Speed))
	b.Pos = core.ClampVec(b.Pos, w.Arena())

	b.firePatterns(w, player)

	return entered
}

// advancePhase moves the boss forward through phases based on health.
// Phases never retreat even if the threshold math would allow it.
func (b *Boss) advancePhase() int {
	target := b.phaseForHealth()
	if target > b.Phase {
		b.Phase = target
		return target
	}
	return 0
}

// phaseForHealth returns the phase the current health maps to.
func (b *Boss) phaseForHealth() int {
	switch {
	case b.HP*100 < b.MaxHP*bossPhase3Pct:
		return 3
	case b.HP*100 < b.MaxHP*bossPhase2Pct:
		return 2
	default:
		return 1
	}
}

// firePatterns runs the attack patterns for the current phase.
// Phase 1: aimed volleys. Phase 2 adds a rotating spiral. Phase 3 adds
// radial rings and minion summons on top.
func (b *Boss) firePatterns(w World, player core.Vec2) {
	b.volleyTimer--
	if b.volleyTimer <= 0 {
		b.volleyTimer = b.cfg.VolleyInterval
		b.fireVolley(w, player)
	}

	if b.Phase >= 2 {
		b.spiralTimer--
		if b.spiralTimer <= 0 {
			b.spiralTimer = b.cfg.SpiralInterval
			b.spiralAngle += bossSpiralStep
			w.FireEnemyShot(b.Pos, core.FromAngle(b.spiralAngle), b.cfg.ProjectileSpeed, b.cfg.ContactDamage/2)
		}
	}

	if b.Phase >= 3 {
		b.ringTimer--
		if b.ringTimer <= 0 {
			b.ringTimer = b.cfg.RingInterval
			b.fireRing(w)
		}

		b.summonTimer--
		if b.summonTimer <= 0 {
			b.summonTimer = b.cfg.SummonInterval
			w.SummonMinions(b.Pos, b.cfg.SummonCount)
		}
	}
}

// fireVolley shoots a small fan of aimed projectiles at the player.
func (b *Boss) fireVolley(w World, player core.Vec2) {
	base := player.Sub(b.Pos).Angle()
	for i := 0; i < bossVolleyCount; i++ {
		offset := (float64(i) - float64(bossVolleyCount-1)/2) * bossVolleySpread
		w.FireEnemyShot(b.Pos, core.FromAngle(base+offset), b.cfg.ProjectileSpeed, b.cfg.ContactDamage/2)
	}
}

// fireRing shoots an evenly spaced radial ring of projectiles.
func (b *Boss) fireRing(w World) {
	n := b.cfg.RingCount
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		w.FireEnemyShot(b.Pos, core.FromAngle(angle), b.cfg.ProjectileSpeed, b.cfg.ContactDamage/2)
	}
}

// Damage applies damage to the boss. Ignored while materializing.
// Returns true if the hit killed the boss.
func (b *Boss) Damage(dmg int) bool {
	if b.Materializing() || !b.Alive() {
		return false
	}
	b.HP -= dmg
	if b.HP <= 0 {
		b.HP = 0
		return true
	}
	return false
}

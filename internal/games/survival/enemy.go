package survival

import (
	"github.com/z13/neural-break/internal/core"
)

// Lifecycle phase timers in ticks.
const (
	SpawnTicks = 30 // Materialize duration; enemy is invulnerable and idle
	DyingTicks = 12 // Death flicker before the instance returns to its pool
)

// Phase is an enemy's lifecycle phase.
type Phase int

const (
	PhaseSpawning Phase = iota // Materializing, invulnerable, no AI
	PhaseAlive                 // Normal behavior
	PhaseDying                 // Death flicker, no collisions
	PhaseDead                  // Waiting to be released back to the pool
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseAlive:
		return "alive"
	case PhaseDying:
		return "dying"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Stats are the mutable combat stats of a single enemy instance.
// Elite upgrades and difficulty scaling mutate this struct directly;
// the per-type config table is never modified.
type Stats struct {
	MaxHP           int
	Speed           float64 // Cells per tick
	ContactDamage   int
	ScoreValue      int
	AttackInterval  int // Ticks between attacks (0 = never attacks)
	ProjectileSpeed float64
}

// Enemy is a single pooled enemy instance driven by a lifecycle state machine:
// Spawning -> Alive -> Dying -> Dead. Pooled instances are reset by Activate
// and must not be touched after they reach PhaseDead and are released.
type Enemy struct {
	Kind  string
	Stats Stats
	HP    int
	Pos   core.Vec2
	Phase Phase
	Elite bool

	Glyph rune
	Color core.Color

	// ContactRadius is the distance at which this enemy damages the player.
	ContactRadius float64

	// SplitDepth tracks fragment generations for enemies that split on death.
	SplitDepth int

	phaseTimer  int
	attackTimer int

	// Behavior scratch state. Each behavior uses only its own fields;
	// Activate zeroes all of them.
	zigzagSign  float64
	zigzagTimer int
	burstTicks  int
	restTicks   int
	orbitAngle  float64
	wavePhase   float64
	driftDir    core.Vec2
	segments    []core.Vec2

	behavior BehaviorFunc
}

// Activate resets a pooled instance for a fresh spawn and enters PhaseSpawning.
func (e *Enemy) Activate(kind string, stats Stats, pos core.Vec2) {
	e.Kind = kind
	e.Stats = stats
	e.HP = stats.MaxHP
	e.Pos = pos
	e.Phase = PhaseSpawning
	e.Elite = false
	e.ContactRadius = 1.0
	e.SplitDepth = 0

	e.phaseTimer = SpawnTicks
	e.attackTimer = stats.AttackInterval

	e.zigzagSign = 1
	e.zigzagTimer = 0
	e.burstTicks = 0
	e.restTicks = 0
	e.orbitAngle = 0
	e.wavePhase = 0
	e.driftDir = core.Vec2{}
	e.segments = e.segments[:0]

	e.Glyph = glyphFor(kind)
	e.Color = colorFor(kind)
	e.behavior = behaviorFor(kind)
}

// Update advances the enemy by one tick.
func (e *Enemy) Update(w World) {
	switch e.Phase {
	case PhaseSpawning:
		e.phaseTimer--
		if e.phaseTimer <= 0 {
			e.Phase = PhaseAlive
			w.OnEnemyMaterialized(e)
		}

	case PhaseAlive:
		if e.behavior != nil {
			e.behavior(e, w)
		}

	case PhaseDying:
		e.phaseTimer--
		if e.phaseTimer <= 0 {
			e.Phase = PhaseDead
		}

	case PhaseDead:
		// Waiting for release; nothing to do.
	}
}

// Damage applies damage to the enemy. Damage is ignored unless the enemy is
// in PhaseAlive: materializing enemies are invulnerable, dying enemies are
// already dead. Returns true if the hit killed the enemy.
func (e *Enemy) Damage(dmg int) bool {
	if e.Phase != PhaseAlive {
		return false
	}
	e.HP -= dmg
	if e.HP <= 0 {
		e.HP = 0
		e.kill()
		return true
	}
	return false
}

// kill transitions the enemy into its dying phase.
func (e *Enemy) kill() {
	e.Phase = PhaseDying
	e.phaseTimer = DyingTicks
}

// Collidable reports whether the enemy participates in collision passes.
// Only alive enemies collide; materializing and dying ones are ghosts.
func (e *Enemy) Collidable() bool {
	return e.Phase == PhaseAlive
}

// tickAttack decrements the attack cooldown and reports whether an attack
// fires this tick. Enemies with no attack interval never fire.
func (e *Enemy) tickAttack() bool {
	if e.Stats.AttackInterval <= 0 {
		return false
	}
	e.attackTimer--
	if e.attackTimer <= 0 {
		e.attackTimer = e.Stats.AttackInterval
		return true
	}
	return false
}

// moveToward steps the enemy toward a target point at its current speed.
func (e *Enemy) moveToward(target core.Vec2, speed float64) {
	e.Pos = e.Pos.Add(target.Sub(e.Pos).Normalized().Scale(speed))
}

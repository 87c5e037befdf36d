package survival

import (
	"math"

	"github.com/z13/neural-break/internal/config"
	"github.com/z13/neural-break/internal/core"
)

// World is the view an enemy behavior gets of the running game.
// Behaviors read the player and arena, draw randomness from the shared
// deterministic RNG, and emit projectiles through the game's pooled sets.
type World interface {
	// PlayerPos returns the player's current position.
	PlayerPos() core.Vec2

	// Arena returns the playable area in cell coordinates.
	Arena() core.Rect

	// RNG returns the shared deterministic random source.
	RNG() *core.RNG

	// FireEnemyShot spawns an enemy projectile. Silently skipped if the
	// enemy projectile pool is exhausted.
	FireEnemyShot(from, dir core.Vec2, speed float64, damage int)

	// PullPlayer accelerates the player toward a point. Used by enemies
	// with gravity effects.
	PullPlayer(toward core.Vec2, accel float64)

	// SummonMinions spawns minion enemies around a point. Used by the boss.
	SummonMinions(around core.Vec2, count int)

	// OnEnemyMaterialized is called once when an enemy finishes spawning.
	OnEnemyMaterialized(e *Enemy)
}

// BehaviorFunc advances one alive enemy by one tick.
type BehaviorFunc func(e *Enemy, w World)

// Behavior tuning constants. Distances in cells, rates in ticks.
const (
	zigzagFlipTicks  = 24
	zigzagAmplitude  = 0.6
	fizzerJitter     = 0.25
	fizzerBurstTicks = 18
	fizzerRestTicks  = 45
	fizzerBurstMult  = 3.0
	droneStandoff    = 14.0
	droneSlack       = 2.0
	ufoOrbitRadius   = 10.0
	ufoOrbitRate     = 0.03
	ufoBurstCount    = 8
	wormSegments     = 5
	wormSegmentGap   = 1.6
	wormWaveRate     = 0.12
	wormWaveAmp      = 0.5
	sphereAuraRadius = 2.5
	spherePullRadius = 9.0
	spherePullAccel  = 0.04
	shardMaxSplits   = 2
	shardFragments   = 2
)

// behaviorFor returns the behavior function for an enemy kind.
// Unknown kinds get a plain chase so a config typo degrades instead of crashing.
func behaviorFor(kind string) BehaviorFunc {
	if b, ok := behaviors[kind]; ok {
		return b
	}
	return chaseBehavior
}

var behaviors = map[string]BehaviorFunc{
	config.KindDataMite:     dataMiteBehavior,
	config.KindFizzer:       fizzerBehavior,
	config.KindScanDrone:    scanDroneBehavior,
	config.KindUFO:          ufoBehavior,
	config.KindChaosWorm:    chaosWormBehavior,
	config.KindVoidSphere:   voidSphereBehavior,
	config.KindCrystalShard: crystalShardBehavior,
}

// glyphFor returns the render glyph for an enemy kind.
func glyphFor(kind string) rune {
	switch kind {
	case config.KindDataMite:
		return 'x'
	case config.KindFizzer:
		return 'z'
	case config.KindScanDrone:
		return 'd'
	case config.KindUFO:
		return 'O'
	case config.KindChaosWorm:
		return 'S'
	case config.KindVoidSphere:
		return '@'
	case config.KindCrystalShard:
		return '◆'
	default:
		return '?'
	}
}

// colorFor returns the render color for an enemy kind.
func colorFor(kind string) core.Color {
	switch kind {
	case config.KindDataMite:
		return core.ColorGreen
	case config.KindFizzer:
		return core.ColorYellow
	case config.KindScanDrone:
		return core.ColorCyan
	case config.KindUFO:
		return core.ColorBlue
	case config.KindChaosWorm:
		return core.ColorRed
	case config.KindVoidSphere:
		return core.ColorGray
	case config.KindCrystalShard:
		return core.ColorWhite
	default:
		return core.ColorDefault
	}
}

// chaseBehavior is the fallback: walk straight at the player.
func chaseBehavior(e *Enemy, w World) {
	e.moveToward(w.PlayerPos(), e.Stats.Speed)
}

// dataMiteBehavior chases the player while weaving side to side.
// The weave direction flips on a timer with a little RNG slop so packs
// of mites don't move in lockstep.
func dataMiteBehavior(e *Enemy, w World) {
	e.zigzagTimer--
	if e.zigzagTimer <= 0 {
		e.zigzagSign = -e.zigzagSign
		e.zigzagTimer = zigzagFlipTicks + w.RNG().Intn(12)
	}

	toPlayer := w.PlayerPos().Sub(e.Pos).Normalized()
	perp := core.Vec2{X: -toPlayer.Y, Y: toPlayer.X}
	step := toPlayer.Add(perp.Scale(e.zigzagSign * zigzagAmplitude)).Normalized()
	e.Pos = e.Pos.Add(step.Scale(e.Stats.Speed))
}

// fizzerBehavior jitters erratically and periodically lunges at the player
// in a short speed burst, then rests.
func fizzerBehavior(e *Enemy, w World) {
	rng := w.RNG()

	if e.burstTicks > 0 {
		e.burstTicks--
		e.moveToward(w.PlayerPos(), e.Stats.Speed*fizzerBurstMult)
		return
	}

	e.restTicks--
	if e.restTicks <= 0 {
		e.burstTicks = fizzerBurstTicks
		e.restTicks = fizzerRestTicks + rng.Intn(30)
		return
	}

	jitter := core.Vec2{
		X: rng.Range(-fizzerJitter, fizzerJitter),
		Y: rng.Range(-fizzerJitter, fizzerJitter),
	}
	toPlayer := w.PlayerPos().Sub(e.Pos).Normalized().Scale(e.Stats.Speed)
	e.Pos = e.Pos.Add(toPlayer.Add(jitter))
}

// scanDroneBehavior holds a standoff distance from the player and fires
// aimed shots on its attack interval.
func scanDroneBehavior(e *Enemy, w World) {
	player := w.PlayerPos()
	dist := e.Pos.Dist(player)

	switch {
	case dist > droneStandoff+droneSlack:
		e.moveToward(player, e.Stats.Speed)
	case dist < droneStandoff-droneSlack:
		away := e.Pos.Sub(player).Normalized()
		e.Pos = e.Pos.Add(away.Scale(e.Stats.Speed))
	}

	if e.tickAttack() {
		dir := player.Sub(e.Pos).Normalized()
		w.FireEnemyShot(e.Pos, dir, e.Stats.ProjectileSpeed, e.Stats.ContactDamage)
	}
}

// ufoBehavior orbits the player and fires a radial burst on its interval.
func ufoBehavior(e *Enemy, w World) {
	player := w.PlayerPos()

	e.orbitAngle += ufoOrbitRate
	orbitPoint := player.Add(core.FromAngle(e.orbitAngle).Scale(ufoOrbitRadius))
	e.moveToward(orbitPoint, e.Stats.Speed)

	if e.tickAttack() {
		for i := 0; i < ufoBurstCount; i++ {
			angle := float64(i) * 2 * math.Pi / float64(ufoBurstCount)
			w.FireEnemyShot(e.Pos, core.FromAngle(angle), e.Stats.ProjectileSpeed, e.Stats.ContactDamage)
		}
	}
}

// chaosWormBehavior snakes toward the player on a sine path. The head leads
// and body segments trail behind it at a fixed spacing. Segments share the
// head's contact damage; the game's collision pass checks SegmentPositions.
func chaosWormBehavior(e *Enemy, w World) {
	if len(e.segments) == 0 {
		// Lay the body out behind the head on first update.
		back := e.Pos.Sub(w.PlayerPos()).Normalized()
		for i := 1; i <= wormSegments; i++ {
			e.segments = append(e.segments, e.Pos.Add(back.Scale(float64(i)*wormSegmentGap)))
		}
	}

	e.wavePhase += wormWaveRate
	toPlayer := w.PlayerPos().Sub(e.Pos).Normalized()
	perp := core.Vec2{X: -toPlayer.Y, Y: toPlayer.X}
	step := toPlayer.Add(perp.Scale(math.Sin(e.wavePhase) * wormWaveAmp)).Normalized()

	prev := e.Pos
	e.Pos = e.Pos.Add(step.Scale(e.Stats.Speed))

	// Each segment follows the one ahead, preserving spacing.
	for i := range e.segments {
		seg := e.segments[i]
		d := prev.Sub(seg)
		if d.Len() > wormSegmentGap {
			e.segments[i] = seg.Add(d.Normalized().Scale(d.Len() - wormSegmentGap))
		}
		prev = e.segments[i]
	}
}

// SegmentPositions returns the body segment positions for multi-cell enemies.
// Returns nil for single-cell enemies.
func (e *Enemy) SegmentPositions() []core.Vec2 {
	return e.segments
}

// voidSphereBehavior drifts slowly toward the player, drags the player in
// when close, and maintains a damaging contact aura via ContactRadius.
func voidSphereBehavior(e *Enemy, w World) {
	e.ContactRadius = sphereAuraRadius

	player := w.PlayerPos()
	e.moveToward(player, e.Stats.Speed)

	if e.Pos.Dist(player) < spherePullRadius {
		w.PullPlayer(e.Pos, spherePullAccel)
	}
}

// crystalShardBehavior drifts in a straight line, bouncing off arena edges.
// Splitting on death is handled by the game when the shard is killed.
func crystalShardBehavior(e *Enemy, w World) {
	if e.driftDir == (core.Vec2{}) {
		e.driftDir = core.FromAngle(w.RNG().Angle())
	}

	arena := w.Arena()
	next := e.Pos.Add(e.driftDir.Scale(e.Stats.Speed))

	if next.X < float64(arena.X) || next.X >= float64(arena.Right()) {
		e.driftDir.X = -e.driftDir.X
	}
	if next.Y < float64(arena.Y) || next.Y >= float64(arena.Bottom()) {
		e.driftDir.Y = -e.driftDir.Y
	}
	e.Pos = core.ClampVec(e.Pos.Add(e.driftDir.Scale(e.Stats.Speed)), arena)
}

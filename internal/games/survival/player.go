package survival

import (
	"github.com/z13/neural-break/internal/config"
	"github.com/z13/neural-break/internal/core"
)

// Pickup kinds dropped by killed enemies.
const (
	PickupRepair    = "repair"    // Restores a chunk of hull
	PickupOverdrive = "overdrive" // Temporarily doubles fire rate
)

const (
	pickupDropChance    = 0.06
	pickupTTL           = 600 // Ticks before an uncollected pickup fades
	pickupRadius        = 1.2
	repairAmount        = 25
	overdriveTicks      = 360
	overdriveFireDivide = 2
)

// Player is the player ship: position, hull, invulnerability window after a
// hit, and the auto-fire weapon timer.
type Player struct {
	Pos   core.Vec2
	HP    int
	MaxHP int

	invulnTicks    int
	fireTimer      int
	overdriveTicks int

	cfg config.PlayerConfig
}

// NewPlayer creates a player at the center of the arena.
func NewPlayer(cfg config.PlayerConfig, arena core.Rect) *Player {
	cx, cy := arena.Center()
	return &Player{
		Pos:   core.Vec2{X: float64(cx), Y: float64(cy)},
		HP:    cfg.MaxHP,
		MaxHP: cfg.MaxHP,
		cfg:   cfg,
	}
}

// Update handles movement input and ticks down timers.
func (p *Player) Update(in core.InputFrame, arena core.Rect) {
	var dir core.Vec2
	if in.Has(core.ActionUp) {
		dir.Y--
	}
	if in.Has(core.ActionDown) {
		dir.Y++
	}
	if in.Has(core.ActionLeft) {
		dir.X--
	}
	if in.Has(core.ActionRight) {
		dir.X++
	}
	if dir != (core.Vec2{}) {
		p.Pos = p.Pos.Add(dir.Normalized().Scale(p.cfg.Speed))
	}
	p.Pos = core.ClampVec(p.Pos, arena)

	if p.invulnTicks > 0 {
		p.invulnTicks--
	}
	if p.overdriveTicks > 0 {
		p.overdriveTicks--
	}
	if p.fireTimer > 0 {
		p.fireTimer--
	}
}

// TakeDamage applies a hit to the player. Returns false when the hit was
// absorbed by the invulnerability window. A landed hit opens a new window.
func (p *Player) TakeDamage(dmg int) bool {
	if p.invulnTicks > 0 || p.HP <= 0 {
		return false
	}
	p.HP -= dmg
	if p.HP < 0 {
		p.HP = 0
	}
	p.invulnTicks = p.cfg.HitInvulnTicks
	return true
}

// Alive reports whether the player has hull left.
func (p *Player) Alive() bool {
	return p.HP > 0
}

// Invulnerable reports whether the post-hit mercy window is active.
func (p *Player) Invulnerable() bool {
	return p.invulnTicks > 0
}

// ReadyToFire reports whether the weapon can fire this tick, and arms the
// cooldown when it can. Overdrive halves the cooldown.
func (p *Player) ReadyToFire(weapon config.WeaponConfig) bool {
	if p.fireTimer > 0 {
		return false
	}
	interval := weapon.FireInterval
	if p.overdriveTicks > 0 {
		interval /= overdriveFireDivide
		if interval < 1 {
			interval = 1
		}
	}
	p.fireTimer = interval
	return true
}

// ApplyPickup applies a collected pickup's effect.
func (p *Player) ApplyPickup(kind string) {
	switch kind {
	case PickupRepair:
		p.HP += repairAmount
		if p.HP > p.MaxHP {
			p.HP = p.MaxHP
		}
	case PickupOverdrive:
		p.overdriveTicks = overdriveTicks
	}
}

// Pickup is a collectible drop left behind by a killed enemy.
type Pickup struct {
	Kind string
	Pos  core.Vec2
	TTL  int
}

// glyph returns the render glyph for a pickup kind.
func (pk Pickup) glyph() rune {
	switch pk.Kind {
	case PickupRepair:
		return '+'
	case PickupOverdrive:
		return '^'
	default:
		return '?'
	}
}

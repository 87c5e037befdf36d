package survival

import (
	"github.com/charmbracelet/log"

	"github.com/z13/neural-break/internal/core"
	"github.com/z13/neural-break/internal/pool"
)

// projectileTTL is the maximum lifetime of a projectile in ticks.
// Projectiles also die when they leave the arena.
const projectileTTL = 300

// Projectile is a single pooled shot, player or enemy owned.
type Projectile struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Damage int
	TTL    int
	Active bool
}

// ProjectileSet manages one pooled group of live projectiles.
// Player shots and enemy shots each get their own set.
type ProjectileSet struct {
	name   string
	pool   *pool.Pool[*Projectile]
	live   []*Projectile
	logger *log.Logger
}

// NewProjectileSet creates a projectile set with a fixed pool capacity.
func NewProjectileSet(name string, capacity int, logger *log.Logger) *ProjectileSet {
	return &ProjectileSet{
		name:   name,
		pool:   pool.New(capacity, func() *Projectile { return &Projectile{} }),
		live:   make([]*Projectile, 0, capacity),
		logger: logger,
	}
}

// Fire launches a projectile from a position along a direction.
// Returns false when the pool is exhausted; the shot is skipped and a
// warning is logged.
func (ps *ProjectileSet) Fire(from, dir core.Vec2, speed float64, damage int) bool {
	p, ok := ps.pool.Acquire()
	if !ok {
		ps.logger.Warn("projectile pool exhausted, shot skipped",
			"pool", ps.name, "capacity", ps.pool.Capacity())
		return false
	}

	p.Pos = from
	p.Vel = dir.Normalized().Scale(speed)
	p.Damage = damage
	p.TTL = projectileTTL
	p.Active = true

	ps.live = append(ps.live, p)
	return true
}

// Update moves all live projectiles and expires those that leave the arena
// or run out their TTL. Expired instances go back to the pool.
func (ps *ProjectileSet) Update(arena core.Rect) {
	kept := ps.live[:0]
	for _, p := range ps.live {
		p.Pos = p.Pos.Add(p.Vel)
		p.TTL--

		if p.TTL <= 0 || !arena.ContainsVec(p.Pos) {
			p.Active = false
			ps.pool.Release(p)
			continue
		}
		kept = append(kept, p)
	}
	ps.live = kept
}

// Live returns the currently active projectiles.
func (ps *ProjectileSet) Live() []*Projectile {
	return ps.live
}

// Remove deactivates a projectile (after a hit) and returns it to the pool.
func (ps *ProjectileSet) Remove(p *Projectile) {
	for i, q := range ps.live {
		if q == p {
			ps.live = append(ps.live[:i], ps.live[i+1:]...)
			p.Active = false
			ps.pool.Release(p)
			return
		}
	}
}

// Clear returns every live projectile to the pool.
func (ps *ProjectileSet) Clear() {
	for _, p := range ps.live {
		p.Active = false
		ps.pool.Release(p)
	}
	ps.live = ps.live[:0]
}

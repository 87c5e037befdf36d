package survival

import "github.com/z13/neural-break/internal/core"

// Snapshot is a flat copy of the observable simulation state, used by
// determinism tests to compare two runs tick for tick.
type Snapshot struct {
	Tick   int
	Score  int
	Combo  int
	Wave   int
	State  string
	Kills  int
	Elites int

	PlayerPos core.Vec2
	PlayerHP  int

	Enemies []EnemySnapshot

	BossHP    int
	BossPhase int

	PlayerShots int
	EnemyShots  int
	Pickups     int
}

// EnemySnapshot captures one enemy's observable state.
type EnemySnapshot struct {
	Kind  string
	Phase Phase
	Pos   core.Vec2
	HP    int
	Elite bool
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tickCount,
		Score:       g.score,
		Combo:       g.combo,
		Wave:        g.waves.Wave(),
		State:       g.state,
		Kills:       g.kills,
		Elites:      g.eliteKills,
		PlayerPos:   g.player.Pos,
		PlayerHP:    g.player.HP,
		PlayerShots: len(g.playerShots.Live()),
		EnemyShots:  len(g.enemyShots.Live()),
		Pickups:     len(g.pickups),
	}

	s.Enemies = make([]EnemySnapshot, 0, len(g.enemies))
	for _, e := range g.enemies {
		s.Enemies = append(s.Enemies, EnemySnapshot{
			Kind:  e.Kind,
			Phase: e.Phase,
			Pos:   e.Pos,
			HP:    e.HP,
			Elite: e.Elite,
		})
	}

	if g.boss != nil {
		s.BossHP = g.boss.HP
		s.BossPhase = g.boss.Phase
	}
	return s
}

// Equal reports whether two snapshots describe identical simulation states.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Score != o.Score || s.Combo != o.Combo ||
		s.Wave != o.Wave || s.State != o.State || s.Kills != o.Kills ||
		s.Elites != o.Elites || s.PlayerPos != o.PlayerPos || s.PlayerHP != o.PlayerHP ||
		s.BossHP != o.BossHP || s.BossPhase != o.BossPhase ||
		s.PlayerShots != o.PlayerShots || s.EnemyShots != o.EnemyShots ||
		s.Pickups != o.Pickups {
		return false
	}
	if len(s.Enemies) != len(o.Enemies) {
		return false
	}
	for i := range s.Enemies {
		if s.Enemies[i] != o.Enemies[i] {
			return false
		}
	}
	return true
}

package survival

import (
	"github.com/z13/neural-break/internal/event"
)

// Achievement identifiers. These are stable strings persisted in the profile.
const (
	AchFirstBlood   = "first_blood"   // First kill
	AchExterminator = "exterminator"  // 100 kills in one run
	AchEliteHunter  = "elite_hunter"  // 10 elite kills in one run
	AchBossSlayer   = "boss_slayer"   // Defeat a boss
	AchUnstoppable  = "unstoppable"   // Reach a 20 kill combo
	AchWaveRider    = "wave_rider"    // Reach wave 10
	AchGhost        = "ghost"         // Finish a wave without taking damage
)

// achievementTitles maps achievement IDs to display names.
var achievementTitles = map[string]string{
	AchFirstBlood:   "First Blood",
	AchExterminator: "Exterminator",
	AchEliteHunter:  "Elite Hunter",
	AchBossSlayer:   "Boss Slayer",
	AchUnstoppable:  "Unstoppable",
	AchWaveRider:    "Wave Rider",
	AchGhost:        "Ghost",
}

// AchievementTitle returns the display name for an achievement ID.
func AchievementTitle(id string) string {
	if t, ok := achievementTitles[id]; ok {
		return t
	}
	return id
}

// Achievements tracks per-run achievement progress by listening to the
// game's event bus. Unlocks are one-shot within a run; the save layer merges
// them into the persistent profile after the run ends.
type Achievements struct {
	unlocked map[string]bool
	order    []string // Unlock order, for HUD toasts

	kills       int
	eliteKills  int
	damagedThis bool // Player was hit during the current wave
}

// NewAchievements creates a tracker subscribed to the bus.
func NewAchievements(bus *event.Bus) *Achievements {
	a := &Achievements{unlocked: make(map[string]bool)}

	event.Subscribe(bus, func(e event.EnemyKilled) {
		a.kills++
		if e.Elite {
			a.eliteKills++
		}
		a.unlock(AchFirstBlood)
		if a.kills >= 100 {
			a.unlock(AchExterminator)
		}
		if a.eliteKills >= 10 {
			a.unlock(AchEliteHunter)
		}
	})

	event.Subscribe(bus, func(e event.ScoreChanged) {
		if e.Combo >= 20 {
			a.unlock(AchUnstoppable)
		}
	})

	event.Subscribe(bus, func(event.BossDefeated) {
		a.unlock(AchBossSlayer)
	})

	event.Subscribe(bus, func(event.PlayerDamaged) {
		a.damagedThis = true
	})

	event.Subscribe(bus, func(e event.WaveStarted) {
		if e.Number >= 10 {
			a.unlock(AchWaveRider)
		}
		// Completing the previous wave unscathed earns Ghost.
		if e.Number > 1 && !a.damagedThis {
			a.unlock(AchGhost)
		}
		a.damagedThis = false
	})

	return a
}

// unlock marks an achievement as earned. Repeated unlocks are no-ops.
func (a *Achievements) unlock(id string) {
	if a.unlocked[id] {
		return
	}
	a.unlocked[id] = true
	a.order = append(a.order, id)
}

// Unlocked returns the achievement IDs earned this run, in unlock order.
func (a *Achievements) Unlocked() []string {
	return a.order
}

// Has reports whether an achievement was earned this run.
func (a *Achievements) Has(id string) bool {
	return a.unlocked[id]
}

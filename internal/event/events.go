package event

// Game event vocabulary. Enemy kinds are carried as plain strings so the bus
// stays independent of the game package.

// EnemySpawned is published when an enemy finishes materializing.
type EnemySpawned struct {
	Kind  string
	Elite bool
	Wave  int
}

func (EnemySpawned) event() {}

// EnemyKilled is published when an enemy enters its dying phase.
type EnemyKilled struct {
	Kind  string
	Elite bool
	Score int // Score awarded for the kill (after elite/combo multipliers)
	Wave  int
}

func (EnemyKilled) event() {}

// EliteSpawned is published when the elite roll upgrades a spawn.
type EliteSpawned struct {
	Kind string
	Wave int
}

func (EliteSpawned) event() {}

// PlayerDamaged is published when the player takes a hit.
type PlayerDamaged struct {
	Damage int
	HPLeft int
}

func (PlayerDamaged) event() {}

// PlayerDied is published once when player health reaches zero.
type PlayerDied struct {
	Wave int
	Tick int
}

func (PlayerDied) event() {}

// WaveStarted is published at the start of each wave.
type WaveStarted struct {
	Number int
	Boss   bool // True if this wave spawns the boss
}

func (WaveStarted) event() {}

// BossSpawned is published when the boss materializes.
type BossSpawned struct {
	Wave int
}

func (BossSpawned) event() {}

// BossPhaseChanged is published when the boss crosses a health threshold.
type BossPhaseChanged struct {
	Phase int // 1-based phase number
}

func (BossPhaseChanged) event() {}

// BossDefeated is published when the boss dies.
type BossDefeated struct {
	Wave  int
	Score int
}

func (BossDefeated) event() {}

// ScoreChanged is published whenever the score or combo changes.
type ScoreChanged struct {
	Score int
	Combo int
}

func (ScoreChanged) event() {}

// PickupCollected is published when the player collects a pickup.
type PickupCollected struct {
	Kind string
}

func (PickupCollected) event() {}

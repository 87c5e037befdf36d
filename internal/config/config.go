// Package config provides YAML-based game balance configuration loading and
// difficulty management for the survival game.
package config

// SurvivalConfig contains all balance configuration for the survival game.
type SurvivalConfig struct {
	Player     PlayerConfig               `yaml:"player"`
	Weapon     WeaponConfig               `yaml:"weapon"`
	Spawning   SpawnConfig                `yaml:"spawning"`
	Waves      WaveConfig                 `yaml:"waves"`
	Elites     EliteConfig                `yaml:"elites"`
	Boss       BossConfig                 `yaml:"boss"`
	Enemies    map[string]EnemyTypeConfig `yaml:"enemies"`
	Difficulty DifficultyConfig           `yaml:"difficulty"`
}

// PlayerConfig defines player ship parameters.
type PlayerConfig struct {
	MaxHP          int     `yaml:"max_hp"`
	Speed          float64 `yaml:"speed"`            // Cells per tick
	HitInvulnTicks int     `yaml:"hit_invuln_ticks"` // Invulnerability window after a hit
}

// WeaponConfig defines the player's auto-fire weapon.
type WeaponConfig struct {
	FireInterval    int     `yaml:"fire_interval"` // Ticks between shots
	Damage          int     `yaml:"damage"`
	ProjectileSpeed float64 `yaml:"projectile_speed"` // Cells per tick
	Range           float64 `yaml:"range"`            // Max targeting distance in cells
	PoolSize        int     `yaml:"pool_size"`        // Player projectile pool capacity
}

// SpawnConfig defines enemy spawning parameters.
type SpawnConfig struct {
	BaseInterval        int     `yaml:"base_interval"`         // Ticks between spawns at difficulty 0
	MinInterval         int     `yaml:"min_interval"`          // Floor the interval decays toward
	RingMargin          float64 `yaml:"ring_margin"`           // Distance outside the arena edge
	MinPlayerDistance   float64 `yaml:"min_player_distance"`   // Re-roll positions closer than this
	MaxPositionAttempts int     `yaml:"max_position_attempts"` // Attempts before clamping
	PoolSizePerType     int     `yaml:"pool_size_per_type"`    // Per-enemy-type pool capacity
	EnemyProjectilePool int     `yaml:"enemy_projectile_pool"` // Shared enemy projectile pool capacity
}

// WaveConfig defines wave pacing.
type WaveConfig struct {
	DurationTicks   int     `yaml:"duration_ticks"`   // Length of a wave
	BossEvery       int     `yaml:"boss_every"`       // Boss wave cadence (every Nth wave)
	BurstMultiplier float64 `yaml:"burst_multiplier"` // Spawn-rate multiplier at wave start
	BurstTicks      int     `yaml:"burst_ticks"`      // How long the burst lasts
	AnnounceTicks   int     `yaml:"announce_ticks"`   // Wave banner display time
}

// EliteConfig defines the elite upgrade roll applied at spawn time.
type EliteConfig struct {
	Chance     float64 `yaml:"chance"`      // Probability per spawn (0..1)
	HealthMult float64 `yaml:"health_mult"` // Max HP multiplier
	SpeedMult  float64 `yaml:"speed_mult"`  // Movement speed multiplier
	ScoreMult  float64 `yaml:"score_mult"`  // Kill score multiplier
	MinWave    int     `yaml:"min_wave"`    // Elites never roll before this wave
}

// BossConfig defines the boss encounter.
type BossConfig struct {
	MaxHP           int     `yaml:"max_hp"`
	Speed           float64 `yaml:"speed"`
	ContactDamage   int     `yaml:"contact_damage"`
	ScoreValue      int     `yaml:"score_value"`
	VolleyInterval  int     `yaml:"volley_interval"`  // Phase 1: ticks between aimed volleys
	SpiralInterval  int     `yaml:"spiral_interval"`  // Phase 2+: ticks between spiral shots
	RingInterval    int     `yaml:"ring_interval"`    // Phase 3: ticks between radial rings
	RingCount       int     `yaml:"ring_count"`       // Projectiles per ring
	SummonInterval  int     `yaml:"summon_interval"`  // Phase 3: ticks between minion summons
	SummonCount     int     `yaml:"summon_count"`     // Minions per summon
	ProjectileSpeed float64 `yaml:"projectile_speed"`
}

// EnemyTypeConfig holds per-enemy-type tuning. The behavior code reads these
// values; the keys in SurvivalConfig.Enemies are the enemy kind names.
type EnemyTypeConfig struct {
	MaxHP           int     `yaml:"max_hp"`
	Speed           float64 `yaml:"speed"` // Cells per tick
	ContactDamage   int     `yaml:"contact_damage"`
	ScoreValue      int     `yaml:"score_value"`
	AttackInterval  int     `yaml:"attack_interval"`  // Ticks between attacks (0 = never fires)
	ProjectileSpeed float64 `yaml:"projectile_speed"` // For firing types
	UnlockWave      int     `yaml:"unlock_wave"`      // First wave this type may spawn
	Weight          int     `yaml:"weight"`           // Relative spawn weight once unlocked
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Enemy speed gain at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of spawn interval shaved at max
	HealthMultiplier  float64 `yaml:"health_multiplier"`  // Enemy HP gain at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

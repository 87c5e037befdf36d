package config

import (
	_ "embed"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

// Enemy kind names used as keys in SurvivalConfig.Enemies. The game package
// resolves behaviors by these names.
const (
	KindDataMite     = "data_mite"
	KindFizzer       = "fizzer"
	KindScanDrone    = "scan_drone"
	KindUFO          = "ufo"
	KindChaosWorm    = "chaos_worm"
	KindVoidSphere   = "void_sphere"
	KindCrystalShard = "crystal_shard"
)

// EnemyKinds lists all spawnable enemy kinds in a stable order.
var EnemyKinds = []string{
	KindDataMite,
	KindFizzer,
	KindScanDrone,
	KindUFO,
	KindChaosWorm,
	KindVoidSphere,
	KindCrystalShard,
}

// DefaultSurvivalConfig returns the default balance configuration.
// Values assume a 60-tick second.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		Player: PlayerConfig{
			MaxHP:          100,
			Speed:          0.5,
			HitInvulnTicks: 45, // 0.75s of mercy after a hit
		},
		Weapon: WeaponConfig{
			FireInterval:    12,
			Damage:          10,
			ProjectileSpeed: 1.2,
			Range:           40,
			PoolSize:        64,
		},
		Spawning: SpawnConfig{
			BaseInterval:        90,
			MinInterval:         20,
			RingMargin:          3,
			MinPlayerDistance:   12,
			MaxPositionAttempts: 8,
			PoolSizePerType:     24,
			EnemyProjectilePool: 128,
		},
		Waves: WaveConfig{
			DurationTicks:   1800, // 30 seconds
			BossEvery:       5,
			BurstMultiplier: 2.5,
			BurstTicks:      240,
			AnnounceTicks:   120,
		},
		Elites: EliteConfig{
			Chance:     0.08,
			HealthMult: 3.0,
			SpeedMult:  1.3,
			ScoreMult:  4.0,
			MinWave:    2,
		},
		Boss: BossConfig{
			MaxHP:           1500,
			Speed:           0.12,
			ContactDamage:   30,
			ScoreValue:      2500,
			VolleyInterval:  90,
			SpiralInterval:  8,
			RingInterval:    150,
			RingCount:       16,
			SummonInterval:  360,
			SummonCount:     3,
			ProjectileSpeed: 0.45,
		},
		Enemies: map[string]EnemyTypeConfig{
			KindDataMite: {
				MaxHP:         10,
				Speed:         0.35,
				ContactDamage: 5,
				ScoreValue:    10,
				UnlockWave:    1,
				Weight:        50,
			},
			KindFizzer: {
				MaxHP:         15,
				Speed:         0.30,
				ContactDamage: 8,
				ScoreValue:    15,
				UnlockWave:    1,
				Weight:        30,
			},
			KindScanDrone: {
				MaxHP:           20,
				Speed:           0.25,
				ContactDamage:   5,
				ScoreValue:      25,
				AttackInterval:  120,
				ProjectileSpeed: 0.5,
				UnlockWave:      2,
				Weight:          25,
			},
			KindUFO: {
				MaxHP:           35,
				Speed:           0.28,
				ContactDamage:   10,
				ScoreValue:      40,
				AttackInterval:  180,
				ProjectileSpeed: 0.4,
				UnlockWave:      3,
				Weight:          15,
			},
			KindChaosWorm: {
				MaxHP:         60,
				Speed:         0.22,
				ContactDamage: 12,
				ScoreValue:    60,
				UnlockWave:    4,
				Weight:        10,
			},
			KindVoidSphere: {
				MaxHP:         80,
				Speed:         0.08,
				ContactDamage: 15,
				ScoreValue:    80,
				UnlockWave:    4,
				Weight:        8,
			},
			KindCrystalShard: {
				MaxHP:         25,
				Speed:         0.10,
				ContactDamage: 6,
				ScoreValue:    30,
				UnlockWave:    3,
				Weight:        12,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 21600, // 6 minutes at 60 ticks/s
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.6,
				IntervalReduction: 0.7,
				HealthMultiplier:  1.0,
			},
		},
	}
}

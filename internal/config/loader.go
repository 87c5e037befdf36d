package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSurvival loads the survival game balance configuration.
// Search order: customPath -> ~/.neuralbreak/configs/survival.yaml ->
// ./configs/survival.yaml -> embedded default
func LoadSurvival(customPath string) (SurvivalConfig, error) {
	var cfg SurvivalConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("survival.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/survival.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSurvivalYAML, &cfg); err != nil {
		return DefaultSurvivalConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neuralbreak", "configs", filename)
}

// Validate checks that a loaded config is playable.
func (c *SurvivalConfig) Validate() error {
	if c.Player.MaxHP <= 0 {
		return fmt.Errorf("config: player max_hp must be positive, got %d", c.Player.MaxHP)
	}
	if c.Weapon.FireInterval <= 0 {
		return fmt.Errorf("config: weapon fire_interval must be positive, got %d", c.Weapon.FireInterval)
	}
	if c.Spawning.BaseInterval <= 0 {
		return fmt.Errorf("config: spawning base_interval must be positive, got %d", c.Spawning.BaseInterval)
	}
	if c.Spawning.MinInterval <= 0 || c.Spawning.MinInterval > c.Spawning.BaseInterval {
		return fmt.Errorf("config: spawning min_interval must be in (0, base_interval], got %d", c.Spawning.MinInterval)
	}
	if c.Waves.DurationTicks <= 0 {
		return fmt.Errorf("config: waves duration_ticks must be positive, got %d", c.Waves.DurationTicks)
	}
	if c.Waves.BossEvery <= 0 {
		return fmt.Errorf("config: waves boss_every must be positive, got %d", c.Waves.BossEvery)
	}
	if c.Elites.Chance < 0 || c.Elites.Chance > 1 {
		return fmt.Errorf("config: elites chance must be in [0, 1], got %f", c.Elites.Chance)
	}
	if c.Boss.MaxHP <= 0 {
		return fmt.Errorf("config: boss max_hp must be positive, got %d", c.Boss.MaxHP)
	}
	if len(c.Enemies) == 0 {
		return fmt.Errorf("config: at least one enemy type is required")
	}
	for kind, ec := range c.Enemies {
		if ec.MaxHP <= 0 {
			return fmt.Errorf("config: enemy %s max_hp must be positive, got %d", kind, ec.MaxHP)
		}
		if ec.Weight < 0 {
			return fmt.Errorf("config: enemy %s weight must be non-negative, got %d", kind, ec.Weight)
		}
	}
	return nil
}

// ApplySurvivalPreset modifies the config based on a difficulty preset.
func ApplySurvivalPreset(cfg *SurvivalConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHP = 150
		cfg.Spawning.BaseInterval = 120
		cfg.Elites.Chance = 0.04
	case DifficultyHard:
		cfg.Player.MaxHP = 75
		cfg.Spawning.BaseInterval = 70
		cfg.Elites.Chance = 0.12
	}
}

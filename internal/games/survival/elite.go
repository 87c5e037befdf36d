package survival

import (
	"math"
	"unicode"

	"github.com/z13/neural-break/internal/config"
	"github.com/z13/neural-break/internal/core"
)

// rollElite decides whether a fresh spawn is upgraded to an elite.
// Elites never roll before the configured minimum wave.
func rollElite(rng *core.RNG, cfg config.EliteConfig, wave int) bool {
	if wave < cfg.MinWave {
		return false
	}
	return rng.Chance(cfg.Chance)
}

// applyElite upgrades a spawned enemy in place: multiplied health, speed and
// score value, plus a visual marker. Stats are owned by the instance, so the
// per-type config table is untouched.
func applyElite(e *Enemy, cfg config.EliteConfig) {
	e.Elite = true

	e.Stats.MaxHP = scaleInt(e.Stats.MaxHP, cfg.HealthMult)
	e.HP = e.Stats.MaxHP
	e.Stats.Speed *= cfg.SpeedMult
	e.Stats.ScoreValue = scaleInt(e.Stats.ScoreValue, cfg.ScoreMult)

	e.Glyph = unicode.ToUpper(e.Glyph)
	e.Color = core.ColorMagenta
}

// scaleInt multiplies an int stat by a float factor, rounding to nearest
// and never returning less than the original for factors >= 1.
func scaleInt(v int, mult float64) int {
	scaled := int(math.Round(float64(v) * mult))
	if mult >= 1 && scaled < v {
		return v
	}
	return scaled
}

package config

import "math"

// DifficultyManager turns the current score into a per-frame spawn chance.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Chance returns the spawn probability for the given score:
// min(max, base + score/divisor). With progression disabled it stays at base.
func (d *DifficultyManager) Chance(score int) float64 {
	if !d.cfg.Enabled {
		return d.cfg.Base
	}
	divisor := d.cfg.ScoreDivisor
	if divisor <= 0 {
		divisor = 1 // Prevent division by zero
	}
	chance := d.cfg.Base + float64(max(score, 0))/divisor
	return math.Min(d.cfg.Max, chance)
}

// Level returns how far along the curve the score is, from 0.0 to 1.0.
func (d *DifficultyManager) Level(score int) float64 {
	span := d.cfg.Max - d.cfg.Base
	if !d.cfg.Enabled || span <= 0 {
		return 0
	}
	return clampF((d.Chance(score)-d.cfg.Base)/span, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

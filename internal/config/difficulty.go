package config

import "math"

// DifficultyManager calculates the enemy speed factor for the current
// point of a run.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// levelNum is the 1-based level being played.
func (d *DifficultyManager) Level(score, levelNum int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(levelNum-1) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return 0
	}

	return clampF(progress, 0.0, 1.0)
}

// EnemySpeedFactor returns the multiplier for enemy patrol speed.
// It grows from 1 to 1 + EnemySpeedMultiplier at max difficulty.
func (d *DifficultyManager) EnemySpeedFactor(score, levelNum int) float64 {
	return 1.0 + d.Level(score, levelNum)*d.cfg.Scaling.EnemySpeedMultiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

package config

import (
	"math"
	"time"
)

// minCooldown keeps scaled weapons from firing every tick.
const minCooldown = 50 * time.Millisecond

// DifficultyManager calculates wave parameters from the match progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a wave number
// (starting at 1) and score.
func (d *DifficultyManager) Level(score int, wave int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "wave", "":
		progress = float64(wave-1) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a unit speed from base to base * (1 + speedMultiplier).
func (d *DifficultyManager) Speed(base float64, score int, wave int) float64 {
	return base * (1.0 + d.Level(score, wave)*d.cfg.Scaling.SpeedMultiplier)
}

// Health adds up to healthBonus hit points.
func (d *DifficultyManager) Health(base int, score int, wave int) int {
	return base + int(d.Level(score, wave)*float64(d.cfg.Scaling.HealthBonus))
}

// Count adds up to countBonus units per wave.
func (d *DifficultyManager) Count(base int, score int, wave int) int {
	return base + int(d.Level(score, wave)*float64(d.cfg.Scaling.CountBonus))
}

// Cooldown shortens a weapon cooldown by up to cooldownReduction of it,
// never below 50ms.
func (d *DifficultyManager) Cooldown(base time.Duration, score int, wave int) time.Duration {
	if base <= 0 {
		return base
	}
	cut := clampF(d.Level(score, wave)*d.cfg.Scaling.CooldownReduction, 0.0, 1.0)
	result := time.Duration(float64(base) * (1.0 - cut))
	if result < minCooldown {
		result = min(base, minCooldown)
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

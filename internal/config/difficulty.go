package config

import (
	"math"
	"time"
)

// DifficultyManager turns the current level into a gravity rate.
type DifficultyManager struct {
	cfg          DifficultyConfig
	base         float64 // ticks per second at level 1, initial level 0
	initialLevel float64
}

// NewDifficultyManager creates a difficulty manager for the given base rate.
func NewDifficultyManager(cfg DifficultyConfig, baseTicksPerSecond float64) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		base:         baseTicksPerSecond,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables per-level speed-up.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether gravity speeds up with the level.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.SpeedupPerLevel > 0
}

// TicksPerSecond returns the gravity rate for a level (1-based).
// The initial level doubles the base rate at most; every level past the first
// adds SpeedupPerLevel of that rate. The result never exceeds
// MaxTicksPerSecond when a cap is set.
func (d *DifficultyManager) TicksPerSecond(level int) float64 {
	rate := d.base * (1.0 + d.initialLevel)
	if d.IsEnabled() && level > 1 {
		rate *= 1.0 + d.cfg.SpeedupPerLevel*float64(level-1)
	}
	if d.cfg.MaxTicksPerSecond > 0 {
		rate = math.Min(rate, d.cfg.MaxTicksPerSecond)
	}
	return rate
}

// GravityPeriod returns the time between gravity steps for a level.
func (d *DifficultyManager) GravityPeriod(level int) time.Duration {
	rate := d.TicksPerSecond(level)
	if rate <= 0 {
		return time.Second
	}
	return time.Duration(float64(time.Second) / rate)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

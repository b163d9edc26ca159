package config

import "math"

// DifficultyManager derives speed and spawn periods from score or time.
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

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// minSpeedFactor bounds how far a negative speed_multiplier can slow a game.
const minSpeedFactor = 0.1

// Speed scales base from base to base*(1+speed_multiplier). The factor
// never drops below minSpeedFactor, so callers may divide by the result.
func (d *DifficultyManager) Speed(base float64, score int, ticks int) float64 {
	factor := 1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
	return base * math.Max(factor, minSpeedFactor)
}

// Period shortens a spawn period as difficulty rises. Never below 1 tick.
func (d *DifficultyManager) Period(base int, score int, ticks int) int {
	cut := d.Level(score, ticks) * clampF(d.cfg.Scaling.PeriodReduction, 0, 1)
	return max(1, int(math.Round(float64(base)*(1-cut))))
}

// minGap is the narrowest gap Gap will return.
const minGap = 4

// Gap narrows a gap of base cells as difficulty rises, down to minGap.
func (d *DifficultyManager) Gap(base int, score int, ticks int) int {
	cut := int(d.Level(score, ticks) * float64(d.cfg.Scaling.GapReduction))
	return max(minGap, base-cut)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

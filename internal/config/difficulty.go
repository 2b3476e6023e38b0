package config

import "math"

// Progression types.
const (
	ProgressScore = "score" // Level follows the score
	ProgressTime  = "time"  // Level follows running ticks
	ProgressNone  = "none"  // Level stays at initial_level
)

// DifficultyManager derives the per-tick scroll speed and minimum obstacle
// gap from the run's progress.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		start: math.Max(0, math.Min(1, cfg.InitialLevel)),
	}
}

// Level returns the difficulty in [0, 1]. It rises linearly from
// initial_level to 1 as score (or ticks) approaches max_at. Disabled
// progression always yields 0, so the tuning values apply as written.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}

	var progress int
	switch d.cfg.Progression.Type {
	case ProgressScore:
		progress = score
	case ProgressTime:
		progress = ticks
	default:
		return d.start
	}

	maxAt := max(d.cfg.Progression.MaxAt, 1)
	t := math.Min(1, float64(progress)/float64(maxAt))
	return d.start + t*(1-d.start)
}

// Speed scales the base scroll speed by the current level.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// MinGap shrinks the base gap by the current level, down to half of it.
func (d *DifficultyManager) MinGap(base float64, score, ticks int) float64 {
	return math.Max(base/2, base-d.Level(score, ticks)*d.cfg.Scaling.GapReduction)
}

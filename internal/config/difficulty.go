package config

// DifficultyManager turns a run's score and tick count into scaled game
// parameters. Level 0 plays the configured base values, level 1 applies
// the full Scaling block.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64
}

// NewDifficultyManager builds a manager for the given progression
// settings.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, base: cfg.InitialLevel}
}

// IsEnabled reports whether the level moves at all during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level maps the run's progress onto [initial level, 1]. With
// progression disabled it stays at the initial level.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.base
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
		return d.base
	}

	return d.base + clamp01(progress)*(1-d.base)
}

// Speed scales a base speed up to base*(1+SpeedMultiplier) at full
// difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// TimeLimit shrinks the level clock by up to TimeReduction seconds,
// never below 30. Untimed levels pass through unchanged.
func (d *DifficultyManager) TimeLimit(baseSeconds, score, ticks int) int {
	if baseSeconds <= 0 {
		return baseSeconds
	}

	limit := baseSeconds - int(d.Level(score, ticks)*float64(d.cfg.Scaling.TimeReduction))
	if limit < 30 {
		limit = 30
	}
	return limit
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

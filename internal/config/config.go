// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

// PlatformerConfig contains all configuration for the platformer game.
type PlatformerConfig struct {
	Physics    PlatformerPhysics  `yaml:"physics"`
	Enemies    PlatformerEnemies  `yaml:"enemies"`
	Scoring    PlatformerScoring  `yaml:"scoring"`
	Gameplay   PlatformerGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// PlatformerPhysics defines player movement parameters.
// Distances are in tiles, speeds in tiles per tick.
type PlatformerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	JumpImpulse  float64 `yaml:"jump_impulse"` // Negative is up
	WalkSpeed    float64 `yaml:"walk_speed"`
	RunSpeed     float64 `yaml:"run_speed"`
	GroundAccel  float64 `yaml:"ground_accel"`
	AirAccel     float64 `yaml:"air_accel"`
	GroundDecel  float64 `yaml:"ground_decel"`
	StompBounce  float64 `yaml:"stomp_bounce"` // Negative is up
	DeathLaunch  float64 `yaml:"death_launch"` // Negative is up
}

// PlatformerEnemies defines enemy, item, and projectile parameters.
type PlatformerEnemies struct {
	EnemySpeed    float64 `yaml:"enemy_speed"`
	ItemSpeed     float64 `yaml:"item_speed"`
	FireballSpeed float64 `yaml:"fireball_speed"`
	FireballAmp   float64 `yaml:"fireball_amp"`
	BossSpeed     float64 `yaml:"boss_speed"`
	BossHealth    int     `yaml:"boss_health"`
	BossFireTicks int     `yaml:"boss_fire_ticks"`
	BossEnrage    float64 `yaml:"boss_enrage"`
	SpawnerTicks  int     `yaml:"spawner_ticks"`
}

// PlatformerScoring defines point values.
type PlatformerScoring struct {
	Stomp        int `yaml:"stomp"`
	Coin         int `yaml:"coin"`
	Item         int `yaml:"item"`
	Boss         int `yaml:"boss"`
	FlagBonusMin int `yaml:"flag_bonus_min"`
	FlagBonusMax int `yaml:"flag_bonus_max"`
	TimeBonus    int `yaml:"time_bonus"` // Points per second left at the flag
}

// PlatformerGameplay defines session parameters.
type PlatformerGameplay struct {
	Lives           int     `yaml:"lives"`
	DeadZone        float64 `yaml:"dead_zone"` // Camera margin as a fraction of viewport width
	InvulnTicks     int     `yaml:"invuln_ticks"`
	BossInvulnTicks int     `yaml:"boss_invuln_ticks"`
	IntroTicks      int     `yaml:"intro_ticks"`
	DeadWaitTicks   int     `yaml:"dead_wait_ticks"`
	ClearTicks      int     `yaml:"clear_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	TimeReduction   int     `yaml:"time_reduction"`   // Seconds removed from the level clock at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
// The values match defaults/platformer.yaml and assume 60 ticks per second.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:      0.045,
			MaxFallSpeed: 0.9,
			JumpImpulse:  -0.62, // About 4 tiles of rise
			WalkSpeed:    0.12,
			RunSpeed:     0.2,
			GroundAccel:  0.02,
			AirAccel:     0.012,
			GroundDecel:  0.025,
			StompBounce:  -0.45,
			DeathLaunch:  -0.55,
		},
		Enemies: PlatformerEnemies{
			EnemySpeed:    0.05,
			ItemSpeed:     0.06,
			FireballSpeed: 0.15,
			FireballAmp:   1.5,
			BossSpeed:     0.06,
			BossHealth:    3,
			BossFireTicks: 150,
			BossEnrage:    0.35,
			SpawnerTicks:  160,
		},
		Scoring: PlatformerScoring{
			Stomp:        100,
			Coin:         100,
			Item:         500,
			Boss:         1000,
			FlagBonusMin: 100,
			FlagBonusMax: 1000,
			TimeBonus:    10,
		},
		Gameplay: PlatformerGameplay{
			Lives:           3,
			DeadZone:        0.35,
			InvulnTicks:     90,
			BossInvulnTicks: 45,
			IntroTicks:      90,
			DeadWaitTicks:   45,
			ClearTicks:      120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
				TimeReduction:   30,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer", "platformer_endless":
		return defaultPlatformerYAML
	default:
		return nil
	}
}

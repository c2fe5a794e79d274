package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the reference configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:      0.6,
			MoveSpeed:    5,
			Friction:     0.85,
			MaxSpeed:     6,
			JumpVelocity: -20,
		},
		World: WorldConfig{
			Width:  800,
			Height: 600,
			DeathY: 600,
		},
		Player: PlayerConfig{
			SpawnX: 50,
			SpawnY: 300,
			Width:  40,
			Height: 60,
			Color:  "#FF5722",
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			CoinValue:       100,
			EnemySpeedScale: 1.0,
		},
		Effects: EffectsConfig{
			ShakeDecay:     0.9,
			CoinShake:      3,
			DeathShake:     10,
			JumpParticles:  5,
			CoinParticles:  10,
			DeathParticles: 20,
			JumpColor:      "#FFFFFF",
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Input: InputConfig{
			HoldMs:        180,
			InitialHoldMs: 500,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				EnemySpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}

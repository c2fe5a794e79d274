package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned for configurations that cannot produce a
// playable game.
var ErrInvalid = errors.New("config: invalid configuration")

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
// Files are layered over the defaults, so a file only needs the keys it changes.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPlatformerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultPlatformerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "platformer.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values a session depends on.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: lives must be >= 1", ErrInvalid)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Player.Width > c.World.Width:
		return fmt.Errorf("%w: player wider than world", ErrInvalid)
	case c.Physics.MaxSpeed < 0:
		return fmt.Errorf("%w: max_speed must be >= 0", ErrInvalid)
	case c.Effects.ShakeDecay < 0 || c.Effects.ShakeDecay >= 1:
		return fmt.Errorf("%w: shake_decay must be in [0, 1)", ErrInvalid)
	case c.Input.HoldMs < 0 || c.Input.InitialHoldMs < 0:
		return fmt.Errorf("%w: hold windows must be >= 0", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.EnemySpeedScale = 0.75
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.EnemySpeedScale = 1.25
	}
}

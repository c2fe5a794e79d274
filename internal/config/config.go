// Package config provides YAML-based configuration loading and difficulty
// presets for the platformer.
package config

// PlatformerConfig contains all tunable settings of the platformer.
type PlatformerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Effects    EffectsConfig    `yaml:"effects"`
	Audio      AudioConfig      `yaml:"audio"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the player kinematics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MoveSpeed    float64 `yaml:"move_speed"`
	Friction     float64 `yaml:"friction"`
	MaxSpeed     float64 `yaml:"max_speed"`
	JumpVelocity float64 `yaml:"jump_velocity"`
}

// WorldConfig defines the world bounds in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	DeathY float64 `yaml:"death_y"` // Falling below this line costs a life
}

// PlayerConfig defines the player body and spawn point.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives           int     `yaml:"lives"`
	CoinValue       int     `yaml:"coin_value"`
	EnemySpeedScale float64 `yaml:"enemy_speed_scale"` // Applied to enemy speed when a level is loaded
}

// EffectsConfig defines particle bursts and screen shake.
type EffectsConfig struct {
	ShakeDecay     float64 `yaml:"shake_decay"`
	CoinShake      float64 `yaml:"coin_shake"`
	DeathShake     float64 `yaml:"death_shake"`
	JumpParticles  int     `yaml:"jump_particles"`
	CoinParticles  int     `yaml:"coin_particles"`
	DeathParticles int     `yaml:"death_particles"`
	JumpColor      string  `yaml:"jump_color"`
}

// AudioConfig defines the sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 .. 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// InputConfig defines terminal key handling.
type InputConfig struct {
	// Terminals report key presses but not releases; a held key counts as
	// released after this many milliseconds without a repeat.
	HoldMs int `yaml:"hold_ms"`
	// Window after the first press, covering the terminal's repeat delay.
	InitialHoldMs int `yaml:"initial_hold_ms"`
}

// DifficultyConfig defines optional enemy speed progression.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemySpeedMultiplier float64 `yaml:"enemy_speed_multiplier"` // Added to enemy speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

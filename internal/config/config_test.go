package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Errorf("embedded YAML and DefaultPlatformerConfig differ:\n%+v\n%+v", cfg, DefaultPlatformerConfig())
	}
}

func TestDefaultsAreReferenceConstants(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	if cfg.Physics.Gravity != 0.6 || cfg.Physics.MoveSpeed != 5 || cfg.Physics.Friction != 0.85 ||
		cfg.Physics.MaxSpeed != 6 || cfg.Physics.JumpVelocity != -20 {
		t.Errorf("physics defaults = %+v", cfg.Physics)
	}
	if cfg.Gameplay.Lives != 3 || cfg.Gameplay.CoinValue != 100 {
		t.Errorf("gameplay defaults = %+v", cfg.Gameplay)
	}
	if cfg.Difficulty.Enabled {
		t.Error("progression should be off by default")
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nphysics:\n  gravity: 1.2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer error: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("gravity = %f, expected 1.2", cfg.Physics.Gravity)
	}
	if cfg.Physics.MoveSpeed != 5 {
		t.Errorf("omitted move_speed = %f, expected default 5", cfg.Physics.MoveSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPlatformer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("error = %v, expected ErrInvalid", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer error: %v", err)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("lives = %d, expected embedded default 3", cfg.Gameplay.Lives)
	}

	// Local ./configs wins over embedded.
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "platformer.yaml"), []byte("gameplay:\n  lives: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadPlatformer("")
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("lives = %d, expected local config 4", cfg.Gameplay.Lives)
	}

	// User config wins over local.
	userDir := filepath.Join(home, ".platformer", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "platformer.yaml"), []byte("gameplay:\n  lives: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadPlatformer("")
	if cfg.Gameplay.Lives != 6 {
		t.Errorf("lives = %d, expected user config 6", cfg.Gameplay.Lives)
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		lives    int
		enemy    float64
		progress bool
	}{
		{DifficultyEasy, 5, 0.75, true},
		{DifficultyNormal, 3, 1.0, true},
		{DifficultyHard, 2, 1.25, true},
		{DifficultyFixed, 3, 1.0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			cfg.Difficulty.Enabled = true
			ApplyPlatformerPreset(&cfg, tt.preset)

			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tt.lives)
			}
			if cfg.Gameplay.EnemySpeedScale != tt.enemy {
				t.Errorf("enemy scale = %f, expected %f", cfg.Gameplay.EnemySpeedScale, tt.enemy)
			}
			if cfg.Difficulty.Enabled != tt.progress {
				t.Errorf("progression enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.progress)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "level", MaxAt: 4},
		Scaling:     ScalingConfig{EnemySpeedMultiplier: 0.5},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		level int
		want  float64
	}{
		{1, 1.0},
		{3, 1.25},
		{5, 1.5},
		{9, 1.5}, // clamped at max difficulty
	}
	for _, tt := range tests {
		if got := dm.EnemySpeedFactor(0, tt.level); got != tt.want {
			t.Errorf("EnemySpeedFactor(level %d) = %f, expected %f", tt.level, got, tt.want)
		}
	}

	cfg.Progression = ProgressionConfig{Type: "score", MaxAt: 1000}
	dm = NewDifficultyManager(cfg)
	if got := dm.EnemySpeedFactor(500, 1); got != 1.25 {
		t.Errorf("score progression factor = %f, expected 1.25", got)
	}

	cfg.Enabled = false
	dm = NewDifficultyManager(cfg)
	if dm.IsEnabled() || dm.EnemySpeedFactor(5000, 9) != 1 {
		t.Error("disabled manager should always return factor 1")
	}
}

package level

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Number       int               `yaml:"number"`
	Name         string            `yaml:"name"`
	Background   string            `yaml:"background"`
	Platforms    []YAMLPlatform    `yaml:"platforms"`
	Collectibles []YAMLCollectible `yaml:"collectibles"`
	Enemies      []YAMLEnemy       `yaml:"enemies"`
}

// YAMLPlatform represents a platform entry.
type YAMLPlatform struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
	Type   string  `yaml:"type,omitempty"`
}

// YAMLCollectible represents a coin entry. Coins always start active.
type YAMLCollectible struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
	Type   string  `yaml:"type,omitempty"`
}

// YAMLEnemy represents an enemy entry. StartX defaults to X.
type YAMLEnemy struct {
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Color  string   `yaml:"color"`
	SpeedX float64  `yaml:"speed_x"`
	Range  float64  `yaml:"range"`
	StartX *float64 `yaml:"start_x,omitempty"`
}

// ParseYAML parses and validates a single level file.
func ParseYAML(data []byte) (*Template, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	t := &Template{
		Number:       yl.Number,
		Name:         yl.Name,
		Background:   core.Color(yl.Background),
		Platforms:    make([]Platform, 0, len(yl.Platforms)),
		Collectibles: make([]Collectible, 0, len(yl.Collectibles)),
		Enemies:      make([]Enemy, 0, len(yl.Enemies)),
	}

	for _, p := range yl.Platforms {
		typ := p.Type
		if typ == "" {
			typ = PlatformSolid
		}
		t.Platforms = append(t.Platforms, Platform{
			X: p.X, Y: p.Y, W: p.Width, H: p.Height,
			Color: core.Color(p.Color),
			Type:  typ,
		})
	}

	for _, c := range yl.Collectibles {
		typ := c.Type
		if typ == "" {
			typ = CollectibleCoin
		}
		color := core.Color(c.Color)
		if color.IsDefault() {
			color = core.ColorGold
		}
		t.Collectibles = append(t.Collectibles, Collectible{
			X: c.X, Y: c.Y, W: c.Width, H: c.Height,
			Color:  color,
			Type:   typ,
			Active: true,
		})
	}

	for _, e := range yl.Enemies {
		startX := e.X
		if e.StartX != nil {
			startX = *e.StartX
		}
		color := core.Color(e.Color)
		if color.IsDefault() {
			color = core.ColorEnemy
		}
		t.Enemies = append(t.Enemies, Enemy{
			X: e.X, Y: e.Y, W: e.Width, H: e.Height,
			Color:  color,
			SpeedX: e.SpeedX,
			Range:  e.Range,
			StartX: startX,
		})
	}

	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Package platformer implements the platformer session: the state machine
// driving level progress, score and lives around the physics engine, and
// the Game adapter that plugs it into the registry.
package platformer

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
	registry.Register("platformer_extended", func() registry.Game {
		return NewWithPack(level.PackExtended)
	})
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game adapts a Session to the registry.Game interface for one level pack.
type Game struct {
	pack   string
	levels *level.Set // Overrides the pack when set
	audio  Audio
	logger *log.Logger

	cfg      config.PlatformerConfig
	session  *Session
	renderer *renderer
	runtime  core.RuntimeConfig
}

// New creates a game playing the classic pack.
func New() *Game {
	return NewWithPack(level.PackClassic)
}

// NewWithPack creates a game playing the named built-in pack.
func NewWithPack(pack string) *Game {
	return &Game{
		pack:   pack,
		logger: log.New(io.Discard),
		cfg:    config.DefaultPlatformerConfig(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.pack == level.PackClassic {
		return "platformer"
	}
	return "platformer_" + g.pack
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.pack == level.PackClassic {
		return "Platformer"
	}
	return "Platformer (" + g.pack + ")"
}

// SetAudio sets the sound cue player used by later resets.
func (g *Game) SetAudio(a Audio) {
	g.audio = a
}

// SetLogger sets the logger used by later resets.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// SetLevels replaces the built-in pack with a custom level set. A running
// session picks the new set up on its next level load.
func (g *Game) SetLevels(set *level.Set) {
	g.levels = set
	if g.session != nil {
		g.session.ReplaceLevels(set)
	}
}

// Session returns the current session, nil before the first Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration loaded by the last Reset.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// Reset loads configuration and levels and creates an idle session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	var src level.Source = g.levels
	if g.levels == nil {
		set, err := level.LoadPack(g.pack)
		if err != nil {
			g.logger.Error("cannot load pack, falling back to classic", "pack", g.pack, "err", err)
			set = level.MustLoadPack(level.PackClassic)
		}
		src = set
	}

	g.session = NewSession(Options{
		Config: cfg,
		Levels: src,
		Audio:  g.audio,
		Logger: g.logger,
		Seed:   runtime.Seed,
	})
	g.renderer = newRenderer(runtime.Seed + 1)
}

// Step applies the frame's queued actions in order, then advances the
// simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session
	for _, a := range in.Actions {
		switch a {
		case core.ActionJump:
			if s.State() == StatePlaying {
				s.Jump()
			} else {
				g.confirm()
			}
		case core.ActionPause:
			s.TogglePause()
		case core.ActionRestart:
			s.Restart()
		case core.ActionConfirm:
			g.confirm()
		}
	}

	s.Tick(in.Held)
	return core.StepResult{State: g.State()}
}

// confirm performs the default action of the current screen.
func (g *Game) confirm() {
	s := g.session
	switch s.State() {
	case StateIdle, StateGameOver:
		s.Start()
	case StateLevelComplete:
		s.AdvanceToNextLevel()
	case StatePaused:
		s.Resume()
	}
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.render(g.session.Snapshot(), g.cfg.World.Width, g.cfg.World.Height, dst)
}

// Background returns the background color of the current level.
func (g *Game) Background() core.Color {
	if g.session == nil || g.session.State() == StateIdle {
		return core.ColorDefault
	}
	return g.session.world.Background
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:     s.score,
		Lives:     s.lives,
		Level:     s.level,
		GameOver:  s.state == StateGameOver,
		Completed: s.completed,
		Paused:    s.state == StatePaused,
	}
}

var _ registry.Game = (*Game)(nil)

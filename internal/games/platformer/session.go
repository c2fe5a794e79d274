package platformer

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/particle"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle          State = iota // Before the first Start
	StatePlaying                    // Simulation running
	StatePaused                     // Simulation frozen, resumable
	StateLevelComplete              // Every coin taken, waiting to advance
	StateGameOver                   // Run ended, see Completed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures a new Session.
type Options struct {
	Config config.PlatformerConfig
	Levels level.Source
	Audio  Audio       // nil plays nothing
	Logger *log.Logger // nil discards
	Seed   int64       // Particle RNG seed
}

// Session owns the authoritative state of one run: score, lives, the
// current level's working world, the player and the effect particles.
// A Session is not safe for concurrent use; it has a single owner that
// drives it tick by tick.
type Session struct {
	cfg        config.PlatformerConfig
	engine     *physics.Engine
	difficulty *config.DifficultyManager
	levels     level.Source
	audio      Audio
	logger     *log.Logger

	player    *physics.Player
	world     *level.World
	particles *particle.System

	state     State
	completed bool
	score     int
	lives     int
	level     int
	shake     float64
	ticks     uint64
	landings  int

	observers []Observer
}

// NewSession creates an idle session.
func NewSession(opts Options) *Session {
	if opts.Audio == nil {
		opts.Audio = silentAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cfg := opts.Config
	player := physics.NewPlayer()
	player.W = cfg.Player.Width
	player.H = cfg.Player.Height
	if cfg.Player.Color != "" {
		player.Color = core.Color(cfg.Player.Color)
	}
	player.Reset(cfg.Player.SpawnX, cfg.Player.SpawnY)

	return &Session{
		cfg:        cfg,
		engine:     physics.NewEngine(tuningFrom(cfg)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		levels:     opts.Levels,
		audio:      opts.Audio,
		logger:     opts.Logger,
		player:     player,
		world:      &level.World{},
		particles:  particle.NewSystem(opts.Seed),
		state:      StateIdle,
	}
}

func tuningFrom(cfg config.PlatformerConfig) physics.Tuning {
	return physics.Tuning{
		Gravity:      cfg.Physics.Gravity,
		MoveSpeed:    cfg.Physics.MoveSpeed,
		Friction:     cfg.Physics.Friction,
		MaxSpeed:     cfg.Physics.MaxSpeed,
		JumpVelocity: cfg.Physics.JumpVelocity,
		WorldWidth:   cfg.World.Width,
		DeathY:       cfg.World.DeathY,
	}
}

// Subscribe registers an observer for session events.
func (s *Session) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Session) emit(e Event) {
	for _, o := range s.observers {
		o(e)
	}
}

func (s *Session) emitHUD() {
	s.emit(HUDEvent{Score: s.score, Lives: s.lives, Level: s.level})
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Start begins a new run at level 1. It does nothing while a run is in
// progress (playing or paused).
func (s *Session) Start() {
	if s.state == StatePlaying || s.state == StatePaused {
		return
	}

	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.completed = false
	s.shake = 0
	s.particles.Clear()

	if !s.loadLevel(1) {
		s.logger.Error("cannot start: level 1 not found")
		return
	}

	s.state = StatePlaying
	s.logger.Info("run started", "lives", s.lives)
	s.emitHUD()
}

// Restart starts a new run from any state in which no run is in
// progress: idle, level complete or game over.
func (s *Session) Restart() {
	s.Start()
}

// loadLevel clones template n into the working world and respawns the
// player. It reports false if there is no level n.
func (s *Session) loadLevel(n int) bool {
	if s.levels == nil {
		return false
	}
	tmpl, ok := s.levels.Lookup(n)
	if !ok {
		return false
	}

	s.world = tmpl.Clone()
	factor := s.cfg.Gameplay.EnemySpeedScale * s.difficulty.EnemySpeedFactor(s.score, n)
	if factor != 1 {
		s.world.ScaleEnemySpeed(factor)
	}
	s.level = n
	s.player.Reset(s.cfg.Player.SpawnX, s.cfg.Player.SpawnY)

	s.logger.Debug("level loaded", "level", n, "name", tmpl.Name, "enemy_speed", factor)
	s.emit(LevelLoadedEvent{Level: n, Name: tmpl.Name})
	return true
}

// Tick advances the simulation by one fixed step using the held keys.
// It does nothing unless the session is playing.
func (s *Session) Tick(keys core.Keys) {
	if s.state != StatePlaying {
		return
	}
	s.ticks++

	if s.shake > 0 {
		s.shake *= s.cfg.Effects.ShakeDecay
	}

	s.engine.UpdatePlayer(s.player, keys, s.world, s)
	if s.state != StatePlaying {
		return
	}

	s.engine.UpdateEnemies(s.world.Enemies)
	s.particles.Update()

	if s.world.ActiveCollectibles() == 0 {
		s.levelComplete()
	}
}

// Jump makes the player jump if a run is in progress and the player is
// standing on a platform. It reports whether the jump was accepted.
func (s *Session) Jump() bool {
	if s.state != StatePlaying {
		return false
	}
	if !s.engine.TryJump(s.player) {
		return false
	}

	p := s.player
	s.particles.Emit(p.X+p.W/2, p.Y+p.H, core.Color(s.cfg.Effects.JumpColor), s.cfg.Effects.JumpParticles)
	s.audio.Play(CueJump)
	return true
}

// CoinCollected implements physics.Handler.
func (s *Session) CoinCollected(c *level.Collectible) {
	if !c.Active {
		return
	}
	c.Active = false
	s.score += s.cfg.Gameplay.CoinValue

	cx, cy := c.Center()
	s.particles.Emit(cx, cy, c.Color, s.cfg.Effects.CoinParticles)
	s.shake = s.cfg.Effects.CoinShake
	s.audio.Play(CueCollect)
	s.emitHUD()
}

// PlayerDied implements physics.Handler. Only the player is reset; the
// world keeps its remaining coins and enemy positions.
func (s *Session) PlayerDied() {
	if s.state != StatePlaying {
		return
	}

	s.lives--
	s.shake = s.cfg.Effects.DeathShake
	cx, cy := s.player.Center()
	s.particles.Emit(cx, cy, s.player.Color, s.cfg.Effects.DeathParticles)
	s.audio.Play(CueDeath)
	s.emitHUD()

	if s.lives <= 0 {
		s.gameOver(false)
		return
	}
	s.player.Reset(s.cfg.Player.SpawnX, s.cfg.Player.SpawnY)
}

// PlayerLanded implements physics.Handler.
func (s *Session) PlayerLanded() {
	s.landings++
}

func (s *Session) levelComplete() {
	s.state = StateLevelComplete
	s.logger.Info("level complete", "level", s.level, "score", s.score)
	s.emit(LevelCompletedEvent{Score: s.score, Level: s.level})
}

// AdvanceToNextLevel loads the level after the one just completed. When
// there is none, the run ends as completed.
func (s *Session) AdvanceToNextLevel() {
	if s.state != StateLevelComplete {
		return
	}

	next := s.level + 1
	if !s.loadLevel(next) {
		s.level = next
		s.gameOver(true)
		return
	}
	s.state = StatePlaying
	s.emitHUD()
}

func (s *Session) gameOver(completed bool) {
	s.state = StateGameOver
	s.completed = completed
	s.logger.Info("game over", "score", s.score, "completed", completed, "level", s.level)
	s.emit(GameOverEvent{Score: s.score, Completed: completed})
}

// TogglePause pauses a playing session or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
		s.emit(PauseChangedEvent{Paused: true})
	case StatePaused:
		s.Resume()
	}
}

// Resume continues a paused session.
func (s *Session) Resume() {
	if s.state != StatePaused {
		return
	}
	s.state = StatePlaying
	s.emit(PauseChangedEvent{Paused: false})
}

// ReplaceLevels swaps the level source used by later level loads. The
// level currently being played is not touched.
func (s *Session) ReplaceLevels(src level.Source) {
	s.levels = src
}

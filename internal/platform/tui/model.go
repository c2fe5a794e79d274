package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// helpRows is the number of terminal rows taken by the key help line.
const helpRows = 1

// Optional capabilities a game may offer beyond registry.Game.
type (
	backgrounder interface {
		Background() core.Color
	}
	levelSetter interface {
		SetLevels(set *level.Set)
	}
	configurable interface {
		Config() config.PlatformerConfig
	}
)

// GameOptions are the collaborators of a game screen. All fields are optional.
type GameOptions struct {
	Store   *storage.Store
	Logger  *log.Logger
	Painter *Painter

	// Watcher delivers changes in LevelsDir; the directory is reloaded and
	// handed to the game when it changes.
	Watcher   *level.Watcher
	LevelsDir string

	// QuitOnBack ends the program on the back key instead of only
	// reporting BackToMenu.
	QuitOnBack bool
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	game    registry.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	opts    GameOptions
	logger  *log.Logger
	painter *Painter
	mapper  *input.Mapper
	help    help.Model
	now     func() time.Time
	tickID  uint64

	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel resets the game and creates a model driving it.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	painter := opts.Painter
	if painter == nil {
		painter = NewPainter(nil)
	}

	game.Reset(cfg)

	hold, initialHold := time.Duration(0), time.Duration(0)
	if c, ok := game.(configurable); ok {
		in := c.Config().Input
		hold = time.Duration(in.HoldMs) * time.Millisecond
		initialHold = time.Duration(in.InitialHoldMs) * time.Millisecond
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		config:    cfg,
		opts:      opts,
		logger:    logger,
		painter:   painter,
		mapper:    input.NewMapper(input.DefaultKeyMap(), hold, initialHold),
		help:      h,
		now:       time.Now,
		tickID:    nextTickID(),
		gameState: game.State(),
	}
}

func gameRows(height int) int {
	return max(height-helpRows, 0)
}

// Init starts the tick loop and, when configured, the level watcher.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate, m.tickID), waitForLevelChange(m.opts.Watcher))
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick(msg.Time)

	case LevelFileChangedMsg:
		m.reloadLevels(msg.Path)
		return m, waitForLevelChange(m.opts.Watcher)

	case WatchErrorMsg:
		m.logger.Warn("level watcher error", "err", msg.Err)
		return m, waitForLevelChange(m.opts.Watcher)
	}

	return m, nil
}

// handleKey feeds a key press to the mapper. Quit and back are handled
// here; everything else reaches the game on the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mapper.Press(msg, m.now()) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if !canLeave(m.gameState) {
			return m, nil
		}
		m.backToMenu = true
		if m.opts.QuitOnBack {
			return m, tea.Quit
		}
	}
	return m, nil
}

// canLeave reports whether the back key may abandon the run: before it
// starts, while paused, or once it is over.
func canLeave(s core.GameState) bool {
	return s.Level == 0 || s.Paused || s.GameOver
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(m.mapper.Frame(now))
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate, m.tickID)
}

// saveScore records a finished run. Storage is best-effort.
func (m GameModel) saveScore() {
	s := m.gameState
	if m.opts.Store == nil || s.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), s.Score, s.Level, s.Completed); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "score", s.Score, "level", s.Level, "completed", s.Completed)
}

func (m GameModel) reloadLevels(changed string) {
	if m.opts.LevelsDir == "" {
		return
	}
	set, err := level.LoadDir(m.opts.LevelsDir)
	if err != nil {
		m.logger.Warn("level reload failed, keeping previous levels", "file", changed, "err", err)
		return
	}
	ls, ok := m.game.(levelSetter)
	if !ok {
		return
	}
	ls.SetLevels(set)
	m.logger.Info("levels reloaded", "dir", m.opts.LevelsDir, "levels", set.Len())
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	bg := core.ColorDefault
	if b, ok := m.game.(backgrounder); ok {
		bg = b.Background()
	}

	view := m.painter.Paint(m.screen, bg)
	if m.config.ScreenH > helpRows {
		helpStyle := m.painter.renderer.NewStyle().Foreground(lipgloss.Color("241"))
		view += "\n" + helpStyle.Render(m.help.View(m.mapper.KeyMap()))
	}
	return view
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the player quits
// or goes back.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	opts.QuitOnBack = true
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

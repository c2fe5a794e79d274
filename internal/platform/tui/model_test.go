package tui

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

type fakeGame struct {
	state  core.GameState
	frames []core.InputFrame
	resets int
	levels *level.Set
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) SetLevels(set *level.Set) { g.levels = set }
func (g *fakeGame) Background() core.Color { return core.ColorDefault }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	return core.StepResult{State: g.state}
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newFakeModel(t *testing.T, opts GameOptions) (GameModel, *fakeGame) {
	t.Helper()
	g := &fakeGame{state: core.GameState{Level: 1, Lives: 3}}
	m := NewGameModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts)
	m.now = func() time.Time { return t0 }
	return m, g
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func (m GameModel) tick(at time.Time) TickMsg {
	return TickMsg{Time: at, ID: m.tickID}
}

func TestGameModelResetsOnce(t *testing.T) {
	_, g := newFakeModel(t, GameOptions{})
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestGameModelFeedsInput(t *testing.T) {
	m, g := newFakeModel(t, GameOptions{})

	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := update(t, m, m.tick(t0.Add(16*time.Millisecond)))

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.frames) != 1 {
		t.Fatalf("Step called %d times, expected 1", len(g.frames))
	}
	f := g.frames[0]
	if !f.Held.Right || f.Held.Left {
		t.Errorf("held = %+v, expected right only", f.Held)
	}
	if !slices.Contains(f.Actions, core.ActionJump) {
		t.Errorf("actions = %v, expected a jump", f.Actions)
	}

	// The action queue is drained; the hold window outlives one frame.
	m, _ = update(t, m, m.tick(t0.Add(32*time.Millisecond)))
	if len(g.frames[1].Actions) != 0 {
		t.Errorf("second frame actions = %v, expected none", g.frames[1].Actions)
	}
	if !g.frames[1].Held.Right {
		t.Error("right should still be held within the hold window")
	}
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	m, g := newFakeModel(t, GameOptions{})

	_, cmd := update(t, m, TickMsg{Time: t0, ID: m.tickID + 1000})
	if cmd != nil {
		t.Error("a foreign tick must not restart the tick loop")
	}
	if len(g.frames) != 0 {
		t.Errorf("Step called %d times for a foreign tick", len(g.frames))
	}
}

func TestGameModelQuit(t *testing.T) {
	m, _ := newFakeModel(t, GameOptions{})

	m, cmd := update(t, m, runes("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View after quit should be empty")
	}
}

func TestGameModelBack(t *testing.T) {
	tests := []struct {
		name   string
		state  core.GameState
		leaves bool
	}{
		{"idle", core.GameState{}, true},
		{"playing", core.GameState{Level: 1, Lives: 3}, false},
		{"paused", core.GameState{Level: 1, Paused: true}, true},
		{"game over", core.GameState{Level: 2, GameOver: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, g := newFakeModel(t, GameOptions{QuitOnBack: true})
			g.state = tt.state
			m, _ = update(t, m, m.tick(t0))

			m, cmd := update(t, m, runes("b"))
			if m.BackToMenu() != tt.leaves {
				t.Errorf("BackToMenu() = %v, expected %v", m.BackToMenu(), tt.leaves)
			}
			if tt.leaves && cmd == nil {
				t.Error("QuitOnBack should end the program")
			}
		})
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, g := newFakeModel(t, GameOptions{Store: store})
	g.state = core.GameState{Score: 500, Level: 2, GameOver: true, Completed: true}

	for i := 0; i < 3; i++ {
		m, _ = update(t, m, m.tick(t0.Add(time.Duration(i)*time.Millisecond)))
	}

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if s := scores[0]; s.Score != 500 || s.Level != 2 || !s.Completed {
		t.Errorf("saved entry = %+v", s)
	}

	// A new run that ends again is saved again.
	g.state = core.GameState{Level: 1, Lives: 3}
	m, _ = update(t, m, m.tick(t0.Add(time.Second)))
	g.state = core.GameState{Score: 100, Level: 1, GameOver: true}
	update(t, m, m.tick(t0.Add(2*time.Second)))

	if scores, _ := store.AllScores("fake"); len(scores) != 2 {
		t.Errorf("saved %d scores after second run, expected 2", len(scores))
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, g := newFakeModel(t, GameOptions{Store: store})
	g.state = core.GameState{Level: 1, GameOver: true}
	update(t, m, m.tick(t0))

	if scores, _ := store.AllScores("fake"); len(scores) != 0 {
		t.Errorf("zero score run was saved: %v", scores)
	}
}

const reloadLevel = `number: 1
name: Reloaded
background: "#000000"
platforms:
  - {x: 0, y: 550, width: 800, height: 50, color: "#4CAF50"}
collectibles:
  - {x: 100, y: 500, width: 20, height: 20}
`

func TestGameModelReloadsLevels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "01.yaml")
	if err := os.WriteFile(path, []byte(reloadLevel), 0o644); err != nil {
		t.Fatal(err)
	}

	m, g := newFakeModel(t, GameOptions{LevelsDir: dir})
	m, _ = update(t, m, LevelFileChangedMsg{Path: path})

	if g.levels == nil {
		t.Fatal("levels were not handed to the game")
	}
	tpl, ok := g.levels.Lookup(1)
	if !ok || tpl.Name != "Reloaded" {
		t.Errorf("reloaded level = %+v", tpl)
	}

	// A broken file keeps the previous set.
	previous := g.levels
	if err := os.WriteFile(path, []byte("number: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	update(t, m, LevelFileChangedMsg{Path: path})
	if g.levels != previous {
		t.Error("invalid reload replaced the level set")
	}
}

func TestGameModelViewHasHelp(t *testing.T) {
	m, _ := newFakeModel(t, GameOptions{})
	view := m.View()

	if !strings.HasPrefix(view, "fake") {
		t.Errorf("view should start with the game output, got %q", view[:min(len(view), 20)])
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should contain the key help")
	}
	if rows := strings.Count(view, "\n") + 1; rows != 24 {
		t.Errorf("view has %d rows, expected 24", rows)
	}
}

func TestGameModelResize(t *testing.T) {
	m, g := newFakeModel(t, GameOptions{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Error("resize must not reset the game")
	}
}

func TestGameModelPlaysPlatformer(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	game := platformer.New()
	m := NewGameModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}, GameOptions{})
	m.now = func() time.Time { return t0 }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, m.tick(t0))

	if s := m.State(); s.Level != 1 || s.Lives != 3 || s.GameOver {
		t.Errorf("state after enter = %+v, expected level 1 with 3 lives", s)
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("HUD missing from view")
	}
}

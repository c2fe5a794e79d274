// Package registry holds the factories of the playable variants.
// Each variant (one per level pack) registers itself from an init()
// function; the CLI, the menu and the SSH server list and create variants
// through this package and never import a game package directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game is a playable variant as seen by the terminal platform.
// Implementations hold pure simulation logic; input mapping, tick timing and
// terminal output belong to the platform.
type Game interface {
	// ID is the stable identifier used by CLI arguments and the score table,
	// e.g. "platformer" or "platformer_extended".
	ID() string

	// Title is the display name shown in menus.
	Title() string

	// Reset prepares a fresh run for the given screen size and seed.
	// The platform calls it once before the first Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the held keys and the actions queued
	// since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a cleared screen.
	Render(dst *core.Screen)

	// State reports score, lives, level and the run status.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, un-reset game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		factory: f,
		info:    GameInfo{ID: id, Title: f().Title()},
	}
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Info returns the metadata of a registered variant.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}

// Package level defines the static level data of the platformer: platforms,
// collectibles and enemies grouped into immutable templates, and the mutable
// working copy a session plays on.
package level

import (
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Entity type tags.
const (
	PlatformSolid   = "solid"
	CollectibleCoin = "coin"
)

// Platform is a static solid rectangle.
type Platform struct {
	X, Y, W, H float64
	Color      core.Color
	Type       string
}

// Box returns the platform's bounding box.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Collectible is a coin the player picks up by touching it.
// Active goes from true to false exactly once; inactive coins stay in the
// list for the rest of the level.
type Collectible struct {
	X, Y, W, H float64
	Color      core.Color
	Type       string
	Active     bool
}

// Box returns the collectible's bounding box.
func (c Collectible) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.W, c.H)
}

// Center returns the center point of the collectible.
func (c Collectible) Center() (float64, float64) {
	return c.Box().Center()
}

// Enemy patrols horizontally around StartX. Touching it kills the player.
type Enemy struct {
	X, Y, W, H float64
	Color      core.Color
	SpeedX     float64
	Range      float64
	StartX     float64
}

// Box returns the enemy's bounding box.
func (e Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Template is the immutable definition of one level.
// Sessions never play on a template directly; they play on a Clone.
type Template struct {
	Number       int
	Name         string
	Background   core.Color
	Platforms    []Platform
	Collectibles []Collectible
	Enemies      []Enemy
}

// World is the mutable working copy of a level for one session.
type World struct {
	Number       int
	Name         string
	Background   core.Color
	Platforms    []Platform
	Collectibles []Collectible
	Enemies      []Enemy
}

// Clone deep-copies the template's entity lists into a new World.
func (t *Template) Clone() *World {
	w := &World{
		Number:       t.Number,
		Name:         t.Name,
		Background:   t.Background,
		Platforms:    make([]Platform, len(t.Platforms)),
		Collectibles: make([]Collectible, len(t.Collectibles)),
		Enemies:      make([]Enemy, len(t.Enemies)),
	}
	copy(w.Platforms, t.Platforms)
	copy(w.Collectibles, t.Collectibles)
	copy(w.Enemies, t.Enemies)
	return w
}

// ActiveCollectibles returns the number of coins not yet picked up.
func (w *World) ActiveCollectibles() int {
	count := 0
	for _, c := range w.Collectibles {
		if c.Active {
			count++
		}
	}
	return count
}

// ScaleEnemySpeed multiplies every enemy's patrol speed by factor.
func (w *World) ScaleEnemySpeed(factor float64) {
	for i := range w.Enemies {
		w.Enemies[i].SpeedX *= factor
	}
}

// Source looks up level templates by number.
// Lookup reports false when there is no level with that number, which is
// how the session detects that the last level has been cleared.
type Source interface {
	Lookup(number int) (*Template, bool)
}

// Set is an in-memory collection of templates keyed by level number.
type Set struct {
	Name      string
	templates map[int]*Template
}

// NewSet creates a set from the given templates. Later templates with the
// same number replace earlier ones.
func NewSet(name string, templates ...*Template) *Set {
	s := &Set{
		Name:      name,
		templates: make(map[int]*Template, len(templates)),
	}
	for _, t := range templates {
		s.templates[t.Number] = t
	}
	return s
}

// Lookup returns the template for the given level number.
func (s *Set) Lookup(number int) (*Template, bool) {
	t, ok := s.templates[number]
	return t, ok
}

// Len returns the number of levels in the set.
func (s *Set) Len() int {
	return len(s.templates)
}

// Templates returns all templates ordered by level number.
func (s *Set) Templates() []*Template {
	out := make([]*Template, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Number < out[j].Number
	})
	return out
}

var _ Source = (*Set)(nil)

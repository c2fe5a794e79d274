package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/particle"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Snapshot is an immutable copy of the session state for rendering and
// tests. Slices are copies; mutating them does not affect the session.
type Snapshot struct {
	Tick      uint64
	State     State
	Completed bool
	Score     int
	Lives     int
	Level     int
	LevelName string
	Shake     float64
	Landings  int

	Background   string
	Player       physics.Player
	Platforms    []level.Platform
	Collectibles []level.Collectible
	Enemies      []level.Enemy
	Particles    []particle.Particle
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.ticks,
		State:     s.state,
		Completed: s.completed,
		Score:     s.score,
		Lives:     s.lives,
		Level:     s.level,
		LevelName: s.world.Name,
		Shake:     s.shake,
		Landings:  s.landings,

		Background:   string(s.world.Background),
		Player:       *s.player,
		Platforms:    append([]level.Platform(nil), s.world.Platforms...),
		Collectibles: append([]level.Collectible(nil), s.world.Collectibles...),
		Enemies:      append([]level.Enemy(nil), s.world.Enemies...),
		Particles:    s.particles.Particles(),
	}
	return snap
}

// ActiveCollectibles returns the number of coins still to collect.
func (snap Snapshot) ActiveCollectibles() int {
	n := 0
	for _, c := range snap.Collectibles {
		if c.Active {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Landings) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Shake)

	p := snap.Player
	for _, v := range []float64{p.X, p.Y, p.VX, p.VY} {
		h = h*31 + math.Float64bits(v)
	}
	for _, c := range snap.Collectibles {
		if c.Active {
			h = h*31 + 1
		} else {
			h = h*31 + 2
		}
	}
	for _, e := range snap.Enemies {
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.SpeedX)
	}
	for _, pt := range snap.Particles {
		h = h*31 + math.Float64bits(pt.X)
		h = h*31 + math.Float64bits(pt.Life)
	}
	return h
}

package particle

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// System owns the active particle set for one session.
type System struct {
	rng       *rand.Rand
	particles []Particle
}

// NewSystem creates an empty particle system seeded for reproducible effects.
func NewSystem(seed int64) *System {
	return &System{
		rng:       rand.New(rand.NewSource(seed)),
		particles: make([]Particle, 0, 64),
	}
}

// Emit spawns count particles at (x, y) with the given color.
func (s *System) Emit(x, y float64, color core.Color, count int) {
	for i := 0; i < count; i++ {
		s.particles = append(s.particles, New(s.rng, x, y, color))
	}
}

// Update advances every particle and drops the dead ones in place.
// The order of surviving particles is not significant.
func (s *System) Update() {
	alive := 0
	for i := range s.particles {
		p := &s.particles[i]
		p.Update()
		if !p.Alive() {
			continue
		}
		s.particles[alive] = *p
		alive++
	}
	s.particles = s.particles[:alive]
}

// Len returns the number of active particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns a copy of the active particles.
func (s *System) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Clear removes all particles.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

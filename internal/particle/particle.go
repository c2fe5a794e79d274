// Package particle implements short-lived visual effect particles:
// jump dust, coin sparkle and death bursts.
package particle

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Spawn parameters. A particle gets a random size, a random velocity in
// both axes and a random decay rate; gravity and initial life are fixed.
const (
	MinSize    = 2.0
	SizeRange  = 5.0
	Spread     = 8.0 // Velocity range per axis, centered on zero
	Gravity    = 0.5
	MinDecay   = 0.02
	DecayRange = 0.02
)

// Particle is a single ballistic effect particle.
// Life starts at 1 and decays each tick; the particle is dead at life <= 0.
type Particle struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Gravity        float64
	Size           float64
	Life           float64
	Decay          float64
	Color          core.Color
}

// New creates a particle at (x, y) with randomized size, velocity and decay.
func New(rng *rand.Rand, x, y float64, color core.Color) Particle {
	return Particle{
		X:       x,
		Y:       y,
		Color:   color,
		Size:    rng.Float64()*SizeRange + MinSize,
		SpeedX:  (rng.Float64() - 0.5) * Spread,
		SpeedY:  (rng.Float64() - 0.5) * Spread,
		Gravity: Gravity,
		Life:    1,
		Decay:   rng.Float64()*DecayRange + MinDecay,
	}
}

// Update advances the particle by one tick.
// Position integrates before gravity is applied to the vertical speed.
func (p *Particle) Update() {
	p.X += p.SpeedX
	p.Y += p.SpeedY
	p.SpeedY += p.Gravity
	p.Life -= p.Decay
}

// Alive reports whether the particle still has life left.
func (p Particle) Alive() bool {
	return p.Life > 0
}

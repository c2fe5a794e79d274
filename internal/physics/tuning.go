// Package physics steps the player through one fixed simulation tick:
// kinematics, axis-aligned collision resolution against platforms, and
// overlap checks against coins and enemies. Enemy patrol lives here too.
package physics

// Tuning holds the kinematic constants of the simulation.
type Tuning struct {
	Gravity      float64 // Added to VY every tick
	MoveSpeed    float64 // Added to VX per held direction key
	Friction     float64 // VX multiplier applied every tick
	MaxSpeed     float64 // |VX| cap
	JumpVelocity float64 // VY set by an accepted jump (negative is up)
	WorldWidth   float64
	DeathY       float64 // Player dies when Y exceeds this
}

// DefaultTuning returns the reference constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:      0.6,
		MoveSpeed:    5,
		Friction:     0.85,
		MaxSpeed:     6,
		JumpVelocity: -20,
		WorldWidth:   800,
		DeathY:       600,
	}
}

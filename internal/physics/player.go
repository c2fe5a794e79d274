package physics

import "github.com/vovakirdan/tui-platformer/internal/core"

// Player dimensions and spawn point.
const (
	PlayerWidth  = 40
	PlayerHeight = 60
	SpawnX       = 50
	SpawnY       = 300
)

// Player is the single dynamic body of the simulation.
type Player struct {
	X, Y       float64
	W, H       float64
	VX, VY     float64
	IsJumping  bool
	IsOnGround bool
	Direction  int // -1 facing left, +1 facing right
	Color      core.Color
}

// NewPlayer creates a player at the spawn point facing right.
func NewPlayer() *Player {
	p := &Player{
		W:         PlayerWidth,
		H:         PlayerHeight,
		Direction: 1,
		Color:     core.ColorPlayer,
	}
	p.Reset(SpawnX, SpawnY)
	return p
}

// Reset moves the player to (x, y) at rest and clears the jump and ground
// flags. Direction is kept.
func (p *Player) Reset(x, y float64) {
	p.X = x
	p.Y = y
	p.VX = 0
	p.VY = 0
	p.IsJumping = false
	p.IsOnGround = false
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Center returns the center point of the player.
func (p *Player) Center() (float64, float64) {
	return p.Box().Center()
}

package physics

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Handler receives the events raised during a player update.
// Callbacks run synchronously inside the collision scan and may mutate the
// player; later checks in the same scan see the mutated state.
type Handler interface {
	CoinCollected(c *level.Collectible)
	PlayerDied()
	PlayerLanded()
}

// Engine advances the player and enemies by one tick.
type Engine struct {
	tuning Tuning
}

// NewEngine creates an engine with the given tuning.
func NewEngine(t Tuning) *Engine {
	return &Engine{tuning: t}
}

// Tuning returns the engine's constants.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// Overlaps is the strict AABB overlap test. Touching edges do not overlap.
func Overlaps(a, b core.Box) bool {
	return a.Overlaps(b)
}

// UpdatePlayer applies input, friction, the speed cap and gravity, integrates
// position, clamps X to the world and then resolves collisions against w.
func (e *Engine) UpdatePlayer(p *Player, keys core.Keys, w *level.World, h Handler) {
	t := e.tuning

	if keys.Left {
		p.VX -= t.MoveSpeed
		p.Direction = -1
	}
	if keys.Right {
		p.VX += t.MoveSpeed
		p.Direction = 1
	}

	p.VX *= t.Friction
	p.VX = core.ClampF(p.VX, -t.MaxSpeed, t.MaxSpeed)
	p.VY += t.Gravity

	p.X += p.VX
	p.Y += p.VY
	p.X = core.ClampF(p.X, 0, t.WorldWidth-p.W)

	e.handleCollisions(p, w, h)
}

func (e *Engine) handleCollisions(p *Player, w *level.World, h Handler) {
	wasOnGround := p.IsOnGround
	p.IsOnGround = false

	for i := range w.Platforms {
		plat := &w.Platforms[i]
		if Overlaps(p.Box(), plat.Box()) {
			resolve(p, plat)
		}
	}
	if p.IsOnGround && !wasOnGround {
		h.PlayerLanded()
	}

	for i := range w.Collectibles {
		c := &w.Collectibles[i]
		if c.Active && Overlaps(p.Box(), c.Box()) {
			h.CoinCollected(c)
		}
	}

	for i := range w.Enemies {
		if Overlaps(p.Box(), w.Enemies[i].Box()) {
			h.PlayerDied()
		}
	}

	if p.Y > e.tuning.DeathY {
		h.PlayerDied()
	}
}

// resolve pushes the player out of an overlapping platform along the axis
// with the smaller penetration. Ties go to the vertical axis.
func resolve(p *Player, plat *level.Platform) {
	var overlapX, overlapY float64
	if p.X+p.W/2 < plat.X+plat.W/2 {
		overlapX = plat.X - (p.X + p.W)
	} else {
		overlapX = plat.X + plat.W - p.X
	}
	if p.Y+p.H/2 < plat.Y+plat.H/2 {
		overlapY = plat.Y - (p.Y + p.H)
	} else {
		overlapY = plat.Y + plat.H - p.Y
	}

	if math.Abs(overlapX) < math.Abs(overlapY) {
		p.X += overlapX
		p.VX = 0
		return
	}

	p.Y += overlapY
	if overlapY < 0 {
		p.IsOnGround = true
		p.IsJumping = false
	}
	p.VY = 0
}

// UpdateEnemies advances every enemy's patrol. The direction flips on the
// tick after an enemy has moved more than Range away from StartX, so an
// enemy overshoots by at most one step.
func (e *Engine) UpdateEnemies(enemies []level.Enemy) {
	for i := range enemies {
		en := &enemies[i]
		en.X += en.SpeedX
		if math.Abs(en.X-en.StartX) > en.Range {
			en.SpeedX = -en.SpeedX
		}
	}
}

// TryJump starts a jump if the player is standing on a platform and not
// already jumping. It reports whether the jump was accepted.
func (e *Engine) TryJump(p *Player) bool {
	if p.IsJumping || !p.IsOnGround {
		return false
	}
	p.VY = e.tuning.JumpVelocity
	p.IsJumping = true
	p.IsOnGround = false
	return true
}

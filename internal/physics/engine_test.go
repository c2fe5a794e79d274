package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

type recorder struct {
	coins  []*level.Collectible
	deaths int
	lands  int
	onDie  func()
}

func (r *recorder) CoinCollected(c *level.Collectible) {
	c.Active = false
	r.coins = append(r.coins, c)
}

func (r *recorder) PlayerDied() {
	r.deaths++
	if r.onDie != nil {
		r.onDie()
	}
}

func (r *recorder) PlayerLanded() {
	r.lands++
}

func ground() level.Platform {
	return level.Platform{X: 0, Y: 550, W: 800, H: 50, Type: level.PlatformSolid}
}

func TestHoldRightOneTick(t *testing.T) {
	e := NewEngine(DefaultTuning())
	p := NewPlayer()
	p.Direction = -1

	e.UpdatePlayer(p, core.Keys{Right: true}, &level.World{}, &recorder{})

	if !approx(p.VX, 4.25) {
		t.Errorf("VX = %f, expected 4.25", p.VX)
	}
	if !approx(p.X, 54.25) {
		t.Errorf("X = %f, expected 54.25", p.X)
	}
	if p.Direction != 1 {
		t.Errorf("Direction = %d, expected 1", p.Direction)
	}
}

func TestHorizontalInput(t *testing.T) {
	tests := []struct {
		name    string
		keys    core.Keys
		startVX float64
		wantVX  float64
		wantDir int
	}{
		{"left", core.Keys{Left: true}, 0, -4.25, -1},
		{"both cancel, right wins direction", core.Keys{Left: true, Right: true}, 0, 0, 1},
		{"friction without input", core.Keys{}, 4, 3.4, 1},
		{"clamped", core.Keys{Right: true}, 6, 6, 1},
		{"clamped negative", core.Keys{Left: true}, -6, -6, -1},
	}

	e := NewEngine(DefaultTuning())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer()
			p.X = 400
			p.VX = tt.startVX
			e.UpdatePlayer(p, tt.keys, &level.World{}, &recorder{})

			if !approx(p.VX, tt.wantVX) {
				t.Errorf("VX = %f, expected %f", p.VX, tt.wantVX)
			}
			if p.Direction != tt.wantDir {
				t.Errorf("Direction = %d, expected %d", p.Direction, tt.wantDir)
			}
		})
	}
}

func TestVelocityXStaysBounded(t *testing.T) {
	e := NewEngine(DefaultTuning())
	p := NewPlayer()
	w := &level.World{Platforms: []level.Platform{ground()}}
	r := &recorder{}

	for tick := 0; tick < 300; tick++ {
		keys := core.Keys{Right: tick%50 < 30, Left: tick%70 > 40}
		e.UpdatePlayer(p, keys, w, r)
		if p.VX < -6 || p.VX > 6 {
			t.Fatalf("tick %d: VX = %f out of [-6, 6]", tick, p.VX)
		}
		if p.X < 0 || p.X > 800-p.W {
			t.Fatalf("tick %d: X = %f out of world", tick, p.X)
		}
	}
}

func TestGravityIsUnconditional(t *testing.T) {
	e := NewEngine(DefaultTuning())
	p := NewPlayer()
	p.VY = 50

	e.UpdatePlayer(p, core.Keys{}, &level.World{}, &recorder{})

	if !approx(p.VY, 50.6) {
		t.Errorf("VY = %f, expected 50.6 (no terminal velocity)", p.VY)
	}
}

func TestXClampedToWorld(t *testing.T) {
	e := NewEngine(DefaultTuning())

	p := NewPlayer()
	p.X = 0
	e.UpdatePlayer(p, core.Keys{Left: true}, &level.World{}, &recorder{})
	if p.X != 0 {
		t.Errorf("X = %f at left edge, expected 0", p.X)
	}

	p = NewPlayer()
	p.X = 760
	e.UpdatePlayer(p, core.Keys{Right: true}, &level.World{}, &recorder{})
	if p.X != 760 {
		t.Errorf("X = %f at right edge, expected 760", p.X)
	}
}

func TestLandingOnPlatform(t *testing.T) {
	e := NewEngine(DefaultTuning())
	p := NewPlayer()
	p.Y = 490.5
	p.IsJumping = true
	w := &level.World{Platforms: []level.Platform{ground()}}
	r := &recorder{}

	e.UpdatePlayer(p, core.Keys{}, w, r)

	if !p.IsOnGround {
		t.Error("player should be on ground after landing")
	}
	if p.IsJumping {
		t.Error("landing should clear IsJumping")
	}
	if p.VY != 0 {
		t.Errorf("VY = %f after landing, expected 0", p.VY)
	}
	if !approx(p.Y+p.H, 550) {
		t.Errorf("player bottom = %f, expected 550", p.Y+p.H)
	}
	if r.lands != 1 {
		t.Errorf("landed events = %d, expected 1", r.lands)
	}

	// Standing still keeps the player grounded without a second landing.
	e.UpdatePlayer(p, core.Keys{}, w, r)
	if !p.IsOnGround {
		t.Error("standing player should stay on ground")
	}
	if r.lands != 1 {
		t.Errorf("landed events = %d after standing, expected 1", r.lands)
	}
}

func TestGroundFlagResetEachTick(t *testing.T) {
	e := NewEngine(DefaultTuning())
	p := NewPlayer()
	p.IsOnGround = true

	e.UpdatePlayer(p, core.Keys{}, &level.World{}, &recorder{})

	if p.IsOnGround {
		t.Error("IsOnGround should be false without a supporting platform")
	}
}

func TestSidePushZeroesVX(t *testing.T) {
	e := NewEngine(DefaultTuning())
	wall := level.Platform{X: 100, Y: 0, W: 20, H: 600, Type: level.PlatformSolid}
	p := NewPlayer()
	p.X = 75
	p.Y = 100
	w := &level.World{Platforms: []level.Platform{wall}}

	e.UpdatePlayer(p, core.Keys{}, w, &recorder{})

	if !approx(p.X, 60) {
		t.Errorf("X = %f, expected 60 (pushed left of wall)", p.X)
	}
	if p.VX != 0 {
		t.Errorf("VX = %f, expected 0", p.VX)
	}
	if p.IsOnGround {
		t.Error("side push must not ground the player")
	}
	if !approx(p.VY, 0.6) {
		t.Errorf("VY = %f, expected 0.6", p.VY)
	}
}

func TestHeadBumpZeroesVY(t *testing.T) {
	e := NewEngine(DefaultTuning())
	ceiling := level.Platform{X: 0, Y: 180, W: 800, H: 20, Type: level.PlatformSolid}
	p := NewPlayer()
	p.Y = 205
	p.VY = -10
	w := &level.World{Platforms: []level.Platform{ceiling}}

	e.UpdatePlayer(p, core.Keys{}, w, &recorder{})

	if !approx(p.Y, 200) {
		t.Errorf("Y = %f, expected 200 (pushed below ceiling)", p.Y)
	}
	if p.VY != 0 {
		t.Errorf("VY = %f, expected 0", p.VY)
	}
	if p.IsOnGround {
		t.Error("downward push must not ground the player")
	}
}

func TestCoinCollection(t *testing.T) {
	e := NewEngine(DefaultTuning())
	p := NewPlayer()
	p.X, p.Y = 100, 100
	w := &level.World{Collectibles: []level.Collectible{
		{X: 110, Y: 110, W: 20, H: 20, Type: level.CollectibleCoin, Active: true},
		{X: 120, Y: 120, W: 20, H: 20, Type: level.CollectibleCoin, Active: false},
		{X: 500, Y: 500, W: 20, H: 20, Type: level.CollectibleCoin, Active: true},
	}}
	r := &recorder{}

	e.UpdatePlayer(p, core.Keys{}, w, r)
	if len(r.coins) != 1 {
		t.Fatalf("collected %d coins, expected 1", len(r.coins))
	}
	if r.coins[0] != &w.Collectibles[0] {
		t.Error("handler should receive a pointer into the world")
	}

	// Continued overlap with the now inactive coin never fires again.
	e.UpdatePlayer(p, core.Keys{}, w, r)
	if len(r.coins) != 1 {
		t.Errorf("collected %d coins after second tick, expected 1", len(r.coins))
	}
}

func TestEnemyContactKills(t *testing.T) {
	e := NewEngine(DefaultTuning())
	p := NewPlayer()
	w := &level.World{Enemies: []level.Enemy{{X: 60, Y: 320, W: 30, H: 30}}}
	r := &recorder{}

	e.UpdatePlayer(p, core.Keys{}, w, r)

	if r.deaths != 1 {
		t.Errorf("deaths = %d, expected 1", r.deaths)
	}
}

func TestFallOffWorld(t *testing.T) {
	e := NewEngine(DefaultTuning())
	p := NewPlayer()
	p.Y = 601
	r := &recorder{}

	e.UpdatePlayer(p, core.Keys{}, &level.World{}, r)

	if r.deaths != 1 {
		t.Errorf("deaths = %d, expected exactly 1", r.deaths)
	}
}

func TestHandlerMutationVisibleToLaterChecks(t *testing.T) {
	e := NewEngine(DefaultTuning())
	p := NewPlayer()
	p.Y = 601
	w := &level.World{Enemies: []level.Enemy{{X: 40, Y: 590, W: 30, H: 30}}}
	r := &recorder{}
	r.onDie = func() { p.Reset(SpawnX, SpawnY) }

	e.UpdatePlayer(p, core.Keys{}, w, r)

	if r.deaths != 1 {
		t.Errorf("deaths = %d, expected 1 (reset player is no longer below the world)", r.deaths)
	}
}

func TestNoPlatformsFallsToDeath(t *testing.T) {
	e := NewEngine(DefaultTuning())
	p := NewPlayer()
	r := &recorder{}

	for tick := 0; tick < 200 && r.deaths == 0; tick++ {
		e.UpdatePlayer(p, core.Keys{}, &level.World{}, r)
	}
	if r.deaths == 0 {
		t.Error("player with no platforms should eventually die")
	}
}

func TestUpdateEnemiesPatrol(t *testing.T) {
	e := NewEngine(DefaultTuning())
	enemies := []level.Enemy{{X: 0, StartX: 0, SpeedX: 1, Range: 2}}

	wantX := []float64{1, 2, 3, 2, 1, 0, -1, -2, -3, -2}
	wantSpeed := []float64{1, 1, -1, -1, -1, -1, -1, -1, 1, 1}
	for i := range wantX {
		e.UpdateEnemies(enemies)
		if enemies[0].X != wantX[i] || enemies[0].SpeedX != wantSpeed[i] {
			t.Fatalf("tick %d: x=%f speed=%f, expected x=%f speed=%f",
				i+1, enemies[0].X, enemies[0].SpeedX, wantX[i], wantSpeed[i])
		}
	}
}

func TestUpdateEnemiesEmpty(t *testing.T) {
	NewEngine(DefaultTuning()).UpdateEnemies(nil)
}

func TestTryJump(t *testing.T) {
	tests := []struct {
		name     string
		onGround bool
		jumping  bool
		want     bool
	}{
		{"grounded", true, false, true},
		{"already jumping", true, true, false},
		{"airborne", false, false, false},
		{"airborne jumping", false, true, false},
	}

	e := NewEngine(DefaultTuning())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer()
			p.IsOnGround = tt.onGround
			p.IsJumping = tt.jumping
			p.VY = 0

			got := e.TryJump(p)
			if got != tt.want {
				t.Fatalf("TryJump() = %v, expected %v", got, tt.want)
			}
			if got {
				if p.VY != -20 || !p.IsJumping || p.IsOnGround {
					t.Errorf("after jump: VY=%f jumping=%v ground=%v", p.VY, p.IsJumping, p.IsOnGround)
				}
			} else if p.VY != 0 {
				t.Errorf("rejected jump changed VY to %f", p.VY)
			}
		})
	}
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer()
	p.X, p.Y, p.VX, p.VY = 1, 2, 3, 4
	p.IsJumping, p.IsOnGround = true, true
	p.Direction = -1

	p.Reset(SpawnX, SpawnY)

	if p.X != 50 || p.Y != 300 || p.VX != 0 || p.VY != 0 {
		t.Errorf("after reset: %+v", p)
	}
	if p.IsJumping || p.IsOnGround {
		t.Error("reset should clear jump and ground flags")
	}
	if p.Direction != -1 {
		t.Error("reset should keep direction")
	}
}

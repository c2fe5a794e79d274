package platformer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '█'
	CoinChar     = '●'
	EnemyChar    = '▓'
	PlayerChar   = '█'
	EyeChar      = '▪'
	ParticleBig  = '*'
	ParticleDot  = '·'
)

// Minimum screen size the world can be drawn at.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// shakeEpsilon is the smallest shake magnitude (world units) that moves
// the frame. The shake value itself decays forever without reaching zero.
const shakeEpsilon = 0.5

// hudRows is the number of screen rows above the play field.
const hudRows = 1

// cellEpsilon absorbs float error when world edges land exactly on a
// cell boundary.
const cellEpsilon = 1e-9

// viewport maps world coordinates to screen cells.
type viewport struct {
	sx, sy float64
	dx, dy int // Shake offset in cells
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x*v.sx+cellEpsilon)) + v.dx
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y*v.sy+cellEpsilon)) + hudRows + v.dy
}

// rect converts a world rectangle to cells, at least one cell in each axis.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	x0, y0 := v.col(x), v.row(y)
	x1 := int(math.Ceil((x+w)*v.sx-cellEpsilon)) + v.dx
	y1 := int(math.Ceil((y+h)*v.sy-cellEpsilon)) + hudRows + v.dy
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// renderer draws session snapshots. It owns its own RNG so that the
// shake jitter never disturbs the simulation's particle RNG.
type renderer struct {
	rng *rand.Rand
}

func newRenderer(seed int64) *renderer {
	return &renderer{rng: rand.New(rand.NewSource(seed))} //#nosec G404 -- visual jitter only
}

func (r *renderer) render(snap Snapshot, worldW, worldH float64, dst *core.Screen) {
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	vp := viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()-hudRows) / worldH,
	}
	if math.Abs(snap.Shake) >= shakeEpsilon {
		ox := r.rng.Float64()*snap.Shake - snap.Shake/2
		oy := r.rng.Float64()*snap.Shake - snap.Shake/2
		vp.dx = int(math.Round(ox * vp.sx))
		vp.dy = int(math.Round(oy * vp.sy))
	}

	if snap.State != StateIdle {
		r.drawWorld(snap, vp, dst)
	}
	r.drawHUD(snap, dst)
	r.drawOverlay(snap, dst)
}

func (r *renderer) drawWorld(snap Snapshot, vp viewport, dst *core.Screen) {
	for _, p := range snap.Platforms {
		dst.DrawRect(vp.rect(p.X, p.Y, p.W, p.H), PlatformChar, p.Color)
	}

	// Coins bob up and down by a few world units.
	bounce := math.Sin(float64(snap.Tick)/12) * 3
	for _, c := range snap.Collectibles {
		if !c.Active {
			continue
		}
		dst.DrawRect(vp.rect(c.X, c.Y+bounce, c.W, c.H), CoinChar, c.Color)
	}

	for _, e := range snap.Enemies {
		dst.DrawRect(vp.rect(e.X, e.Y, e.W, e.H), EnemyChar, e.Color)
	}

	p := snap.Player
	dst.DrawRect(vp.rect(p.X, p.Y, p.W, p.H), PlayerChar, p.Color)
	eyeX := p.X + p.W*0.6
	if p.Direction < 0 {
		eyeX = p.X + p.W*0.3
	}
	dst.SetColored(vp.col(eyeX), vp.row(p.Y+p.H*0.2), EyeChar, core.ColorWhite)

	for _, pt := range snap.Particles {
		ch := ParticleDot
		if pt.Size > 4 && pt.Life > 0.3 {
			ch = ParticleBig
		}
		dst.SetColored(vp.col(pt.X), vp.row(pt.Y), ch, pt.Color)
	}
}

func (r *renderer) drawHUD(snap Snapshot, dst *core.Screen) {
	if snap.State == StateIdle {
		return
	}
	left := fmt.Sprintf(" Score: %d  Lives: %d  Level %d", snap.Score, snap.Lives, snap.Level)
	if snap.LevelName != "" {
		left += ": " + snap.LevelName
	}
	dst.DrawTextColored(0, 0, left, core.ColorWhite)

	right := fmt.Sprintf("Coins: %d ", snap.ActiveCollectibles())
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorGold)
}

func (r *renderer) drawOverlay(snap Snapshot, dst *core.Screen) {
	var lines []string
	switch snap.State {
	case StateIdle:
		lines = []string{"PLATFORMER", "", "Collect every coin. Avoid the red blocks.", "", "Press Enter or R to start"}
	case StatePaused:
		lines = []string{"PAUSED", "", "Esc to resume"}
	case StateLevelComplete:
		lines = []string{"LEVEL COMPLETE", "", fmt.Sprintf("Score: %d", snap.Score), "", "Enter or Space for the next level"}
	case StateGameOver:
		title := "GAME OVER"
		if snap.Completed {
			title = "YOU WIN!"
		}
		lines = []string{title, "", fmt.Sprintf("Final score: %d", snap.Score), "", "R to play again"}
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	box := core.NewRect((dst.Width()-width)/2-2, (dst.Height()-len(lines))/2-1, width+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	for i, l := range lines {
		x := (dst.Width() - len([]rune(l))) / 2
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorGold
		}
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}

package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type styleKey struct {
	fg, bg core.Color
}

// Painter converts screen buffers to styled strings. Styles are built once
// per color pair and cached. A Painter is safe for concurrent use.
type Painter struct {
	renderer *lipgloss.Renderer

	mu     sync.Mutex
	styles map[styleKey]lipgloss.Style
}

// NewPainter creates a painter for the given lipgloss renderer.
// A nil renderer selects the default renderer of the local terminal.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[styleKey]lipgloss.Style),
	}
}

func (p *Painter) style(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}

	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.styles[k]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if !fg.IsDefault() {
		s = s.Foreground(lipgloss.Color(string(fg)))
	}
	if !bg.IsDefault() {
		s = s.Background(lipgloss.Color(string(bg)))
	}
	p.styles[k] = s
	return s
}

// Paint renders the screen over the background color. Adjacent cells with
// the same color are grouped to minimize ANSI escape sequences.
func (p *Painter) Paint(s *core.Screen, bg core.Color) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.style(color, bg).Render(run.String()))
		}
	}
	return sb.String()
}

package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	grid "data-desert/pkg/core"
	"data-desert/pkg/sims/life"
)

// cellWidth is the number of terminal columns per grid cell.
const cellWidth = 2

const cellGlyph = "██"

// statusRows is the number of terminal rows under the grid.
const statusRows = 2

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// GridSize returns how many cells fit into a terminal of w x h characters.
func GridSize(w, h int) (int, int) {
	return w / cellWidth, h - statusRows
}

// Painter renders grids as coloured block characters, caching one style
// per colour.
type Painter struct {
	theme  life.Theme
	styles map[color.RGBA]lipgloss.Style
}

// NewPainter creates a painter using theme's colours.
func NewPainter(theme life.Theme) *Painter {
	return &Painter{theme: theme, styles: map[color.RGBA]lipgloss.Style{}}
}

// ToggleDecay flips decay shading.
func (p *Painter) ToggleDecay() {
	p.theme.ShowDecay = !p.theme.ShowDecay
}

func (p *Painter) style(c color.RGBA) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	cc, _ := colorful.MakeColor(c)
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(cc.Hex()))
	p.styles[c] = s
	return s
}

// Render converts g into rows of styled cells. Adjacent cells with the same
// colour share one escape sequence.
func (p *Painter) Render(g *grid.Grid) string {
	var sb strings.Builder
	sb.Grow(g.W*g.H*len(cellGlyph) + g.H)
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < g.W {
			start := p.theme.CellColor(cells[y*g.W+x])
			var run strings.Builder
			for x < g.W && p.theme.CellColor(cells[y*g.W+x]) == start {
				run.WriteString(cellGlyph)
				x++
			}
			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

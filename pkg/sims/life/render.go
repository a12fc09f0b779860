package life

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"data-desert/pkg/core"
)

// decayFadeTicks is the decay depth at which a decaying cell is drawn with
// the plain dead colour.
const decayFadeTicks = 32

// Theme describes how grid state is turned into coloured tiles. It is
// passed explicitly to whoever renders; nothing mutates shared colours.
type Theme struct {
	Background color.RGBA
	Dead       color.RGBA
	Alive      color.RGBA
	Decaying   color.RGBA
	ShowDecay  bool

	CellSize int
	Margin   int
}

// DefaultTheme returns white-to-magenta aging tiles on a grey backdrop.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{R: 50, G: 50, B: 50, A: 255},
		Dead:       color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Alive:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Decaying:   color.RGBA{R: 40, G: 40, B: 90, A: 255},
		CellSize:   10,
		Margin:     4,
	}
}

// RenderCell is one tile ready to be drawn at pixel position (X, Y).
type RenderCell struct {
	X, Y  int
	W, H  int
	Color color.RGBA
}

// Pitch returns the pixel distance between neighbouring tile origins.
func (t Theme) Pitch() int {
	p := t.CellSize + t.Margin
	if p <= 0 {
		return 1
	}
	return p
}

// CanvasSize returns the pixel size needed to draw a cols x rows grid.
func (t Theme) CanvasSize(cols, rows int) (int, int) {
	return t.Pitch()*cols + t.Margin, t.Pitch()*rows + t.Margin
}

// GridSize returns how many whole tiles fit into a w x h pixel area.
func (t Theme) GridSize(w, h int) (int, int) {
	return w / t.Pitch(), h / t.Pitch()
}

// CellAt maps a pixel position to the tile column and row under it.
func (t Theme) CellAt(px, py int) (int, int) {
	return floorDiv(px, t.Pitch()), floorDiv(py, t.Pitch())
}

// CellColor maps a cell state to its tile colour. Live cells shift the
// green channel by age modulo 256 so older cells drift away from Alive.
func (t Theme) CellColor(state int) color.RGBA {
	switch {
	case state > 0:
		c := t.Alive
		c.G -= uint8(state % 256)
		return c
	case state < 0 && t.ShowDecay:
		return t.decayColor(-state)
	default:
		return t.Dead
	}
}

func (t Theme) decayColor(depth int) color.RGBA {
	if depth >= decayFadeTicks {
		return t.Dead
	}
	from, _ := colorful.MakeColor(t.Decaying)
	to, _ := colorful.MakeColor(t.Dead)
	r, g, b := from.BlendRgb(to, float64(depth)/decayFadeTicks).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// RenderCells derives one tile per grid position in row-major order.
func RenderCells(g *core.Grid, t Theme) []RenderCell {
	cells := g.Cells()
	out := make([]RenderCell, 0, len(cells))
	pitch := t.Pitch()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			out = append(out, RenderCell{
				X:     pitch*x + t.Margin,
				Y:     pitch*y + t.Margin,
				W:     t.CellSize,
				H:     t.CellSize,
				Color: t.CellColor(cells[y*g.W+x]),
			})
		}
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

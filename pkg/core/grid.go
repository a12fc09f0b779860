package core

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is returned when a grid is requested with a
// non-positive number of columns or rows.
var ErrInvalidDimension = errors.New("invalid grid dimension")

// Grid stores a toroidal 2D grid of integer cell states in row-major order.
//
// A state of 0 is dead, negative values count ticks spent decaying and
// positive values are alive with the magnitude being the cell age.
type Grid struct {
	W, H int
	data []int
}

// NewGrid allocates a zero-filled grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", w, h, ErrInvalidDimension)
	}
	return &Grid{W: w, H: h, data: make([]int, w*h)}, nil
}

// MustGrid is like NewGrid but panics on invalid dimensions.
func MustGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []int { return g.data }

// Index returns the linear slice index for in-range coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// InBounds reports whether (x, y) lies on the grid without wrapping.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the state at (x, y), wrapping both axes.
func (g *Grid) Get(x, y int) int {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// Set writes the state at (x, y), wrapping both axes.
func (g *Grid) Set(x, y, value int) {
	x, y = g.Wrap(x, y)
	g.data[y*g.W+x] = value
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]int, len(g.data))
	copy(data, g.data)
	return &Grid{W: g.W, H: g.H, data: data}
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// SampleCount returns floor(W*H*rate), the number of positions drawn by the
// stochastic operations. Negative rates draw nothing.
func (g *Grid) SampleCount(rate float64) int {
	if rate <= 0 {
		return 0
	}
	return int(float64(g.W*g.H) * rate)
}

// Reseed activates SampleCount(rate) positions drawn uniformly with
// replacement. Existing state is kept; call Clear first for a fresh board.
// It returns the number of draws performed.
func (g *Grid) Reseed(rng *RNG, rate float64) int {
	n := g.SampleCount(rate)
	for i := 0; i < n; i++ {
		x, y := rng.Point(g.W, g.H)
		g.data[y*g.W+x] = 1
	}
	return n
}

// blockOffsets lists the 2x2 block positions in write priority order.
var blockOffsets = [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// ActivateBlock writes value at (x, y) and then at (x+1, y), (x, y+1) and
// (x+1, y+1) until size cells have been considered. Positions outside the
// grid are skipped rather than wrapped, so painting off-grid is a no-op.
func (g *Grid) ActivateBlock(x, y, size, value int) {
	if size < 1 {
		size = 1
	}
	if size > len(blockOffsets) {
		size = len(blockOffsets)
	}
	for _, off := range blockOffsets[:size] {
		px, py := x+off[0], y+off[1]
		if !g.InBounds(px, py) {
			continue
		}
		g.data[py*g.W+px] = value
	}
}

package life

import "data-desert/pkg/core"

// Engine advances grids one generation at a time. It keeps no reference to
// the grids it is given; its only state is the random source used by the
// decay and growth phases.
type Engine struct {
	rng *core.RNG
}

// NewEngine returns an Engine drawing from a deterministic RNG seeded with seed.
func NewEngine(seed int64) *Engine {
	return &Engine{rng: core.NewRNG(seed)}
}

// RNG exposes the engine's random source, e.g. for reseeding.
func (e *Engine) RNG() *core.RNG { return e.rng }

// Step returns the next generation of g. The input grid is never modified;
// callers swap their reference to the returned grid.
func (e *Engine) Step(g *core.Grid, p Params) *core.Grid {
	out := Evolve(g, p)
	if p.Classic() {
		return out
	}
	e.Decompose(out, p.DecayRate)
	e.Grow(out, p.GrowthRate)
	return out
}

// Decompose zeroes floor(W*H*rate) positions drawn with replacement and
// returns the number of draws.
func (e *Engine) Decompose(g *core.Grid, rate float64) int {
	n := g.SampleCount(rate)
	cells := g.Cells()
	for i := 0; i < n; i++ {
		x, y := e.rng.Point(g.W, g.H)
		cells[g.Index(x, y)] = 0
	}
	return n
}

// Grow activates floor(W*H*rate) positions drawn with replacement and
// returns the number of draws.
func (e *Engine) Grow(g *core.Grid, rate float64) int {
	n := g.SampleCount(rate)
	for i := 0; i < n; i++ {
		x, y := e.rng.Point(g.W, g.H)
		g.ActivateBlock(x, y, 1, 1)
	}
	return n
}

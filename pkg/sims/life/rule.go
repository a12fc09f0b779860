package life

import "data-desert/pkg/core"

// Aggregate combines the eight toroidally wrapped neighbours of (x, y)
// according to policy.
func Aggregate(g *core.Grid, x, y int, policy NeighborPolicy) int {
	w, h := g.W, g.H
	cells := g.Cells()
	sum := 0
	for dy := -1; dy <= 1; dy++ {
		ny := ((y+dy)%h + h) % h
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := ((x+dx)%w + w) % w
			v := cells[ny*w+nx]
			if policy == NeighborRaw {
				sum += v
				continue
			}
			if v > 0 {
				sum++
			}
		}
	}
	return sum
}

// NextState applies the transition rule to a single cell.
//
// Classic: a dead cell is born on exactly 3, a live cell survives on 2 or 3
// and keeps its state. Dead cells that are not born settle at 0.
//
// Aging: a cell with state <= 0 is born on exactly 3 and otherwise sinks one
// level deeper. A live cell dies below 2 or above the overcrowd threshold and
// otherwise ages by one.
func NextState(state, aggregate int, p Params) int {
	if p.Mode == RuleClassic {
		if state > 0 {
			if aggregate == 2 || aggregate == 3 {
				return state
			}
			return 0
		}
		if aggregate == 3 {
			return 1
		}
		return 0
	}

	if state <= 0 {
		if aggregate == 3 {
			return 1
		}
		return state - 1
	}
	if aggregate < 2 || aggregate > p.overcrowd() {
		return 0
	}
	return state + 1
}

// Evolve computes the rule pass into a freshly allocated grid. Every cell is
// derived from g alone, so the result does not depend on visiting order.
func Evolve(g *core.Grid, p Params) *core.Grid {
	out := g.Clone()
	src := g.Cells()
	dst := out.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			idx := y*g.W + x
			dst[idx] = NextState(src[idx], Aggregate(g, x, y, p.Policy()), p)
		}
	}
	return out
}

package life

import "strings"

// RuleMode selects the transition rule family.
type RuleMode int

const (
	// RuleAging ages live cells, tracks decay depth on dead ones and applies
	// stochastic decay and growth after every generation.
	RuleAging RuleMode = iota
	// RuleClassic is Conway's B3/S23 with no aging and no perturbation.
	RuleClassic
)

// String returns the configuration name of the mode.
func (m RuleMode) String() string {
	switch m {
	case RuleAging:
		return "aging"
	case RuleClassic:
		return "classic"
	default:
		return "unknown"
	}
}

// ParseRuleMode maps a configuration name to a RuleMode.
func ParseRuleMode(s string) (RuleMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aging":
		return RuleAging, true
	case "classic":
		return RuleClassic, true
	}
	return RuleAging, false
}

// NeighborPolicy selects how the eight neighbours are aggregated.
type NeighborPolicy int

const (
	// NeighborBinary counts neighbours with a positive state.
	NeighborBinary NeighborPolicy = iota
	// NeighborRaw sums raw neighbour states, negatives included.
	NeighborRaw
)

// String returns the configuration name of the policy.
func (n NeighborPolicy) String() string {
	switch n {
	case NeighborBinary:
		return "binary"
	case NeighborRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// ParseNeighborPolicy maps a configuration name to a NeighborPolicy.
func ParseNeighborPolicy(s string) (NeighborPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary":
		return NeighborBinary, true
	case "raw":
		return NeighborRaw, true
	}
	return NeighborBinary, false
}

// DefaultOvercrowd is the aggregate above which a live aging cell dies.
const DefaultOvercrowd = 4

// Params holds the rule selection and the stochastic rates applied per step.
type Params struct {
	SeedRate   float64
	DecayRate  float64
	GrowthRate float64

	Mode      RuleMode
	Neighbors NeighborPolicy

	// Overcrowd only applies to RuleAging; zero means DefaultOvercrowd.
	Overcrowd int
}

// DefaultParams returns the aging rule with the standard rates.
func DefaultParams() Params {
	return Params{
		SeedRate:   0.05,
		DecayRate:  0.015,
		GrowthRate: 0.005,
		Mode:       RuleAging,
		Neighbors:  NeighborBinary,
		Overcrowd:  DefaultOvercrowd,
	}
}

// ClassicParams returns plain Conway's Game of Life settings.
func ClassicParams() Params {
	p := DefaultParams()
	p.DecayRate = 0
	p.GrowthRate = 0
	p.Mode = RuleClassic
	p.Neighbors = NeighborBinary
	return p
}

// Classic reports whether p selects plain Conway semantics.
func (p Params) Classic() bool { return p.Mode == RuleClassic }

// Policy returns the neighbour policy the rule pass uses. Classic mode
// always counts binary neighbours whatever Neighbors is set to.
func (p Params) Policy() NeighborPolicy {
	if p.Classic() {
		return NeighborBinary
	}
	return p.Neighbors
}

// Clamped returns a copy with non-negative rates and SeedRate within [0, 1].
func (p Params) Clamped() Params {
	p.SeedRate = clamp(p.SeedRate, 0, 1)
	if p.DecayRate < 0 {
		p.DecayRate = 0
	}
	if p.GrowthRate < 0 {
		p.GrowthRate = 0
	}
	if p.Overcrowd < 0 {
		p.Overcrowd = 0
	}
	return p
}

func (p Params) overcrowd() int {
	if p.Overcrowd <= 0 {
		return DefaultOvercrowd
	}
	return p.Overcrowd
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

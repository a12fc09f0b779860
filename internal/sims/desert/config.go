package desert

import (
	"strconv"

	"data-desert/pkg/sims/life"
)

// Brush bounds for user painting; 4 paints the full 2x2 block.
const (
	MinBrush = 1
	MaxBrush = 4
)

// Config controls the world dimensions, seed, rule and brush.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params life.Params
	Brush  int
}

// DefaultConfig returns the aging rule on a board matching a 1024px window
// of 10px tiles with 4px margins.
func DefaultConfig() Config {
	return Config{
		Width:  73,
		Height: 73,
		Seed:   1337,
		Params: life.DefaultParams(),
		Brush:  MaxBrush,
	}
}

// ClassicConfig returns DefaultConfig switched to plain Conway rules.
func ClassicConfig() Config {
	c := DefaultConfig()
	c.Params = life.ClassicParams()
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return applyMap(DefaultConfig(), cfg)
}

// ClassicFromMap is FromMap starting from ClassicConfig.
func ClassicFromMap(cfg map[string]string) Config {
	return applyMap(ClassicConfig(), cfg)
}

// applyMap overlays recognised keys onto c. Unparseable values are ignored.
// Non-positive sizes are kept so that grid construction can reject them.
func applyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.SeedRate = parsed
		}
	}
	if v, ok := cfg["decay_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.DecayRate = parsed
		}
	}
	if v, ok := cfg["growth_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.GrowthRate = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if mode, ok := life.ParseRuleMode(v); ok {
			c.Params.Mode = mode
		}
	}
	if v, ok := cfg["neighbors"]; ok {
		if policy, ok := life.ParseNeighborPolicy(v); ok {
			c.Params.Neighbors = policy
		}
	}
	if v, ok := cfg["overcrowd"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Overcrowd = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Brush = parsed
		}
	}
	c.Params = c.Params.Clamped()
	c.Brush = clampInt(c.Brush, MinBrush, MaxBrush)
	return c
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

package desert

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"data-desert/internal/core"
	grid "data-desert/pkg/core"
	"data-desert/pkg/sims/life"
)

// Increments applied by the rate adjustment commands.
const (
	GrowthStep = 0.002
	DecayStep  = 0.001
	SeedStep   = 0.01
)

// World owns the current grid and advances it with a life.Engine.
type World struct {
	name string
	cfg  Config

	grid       *grid.Grid
	engine     *life.Engine
	generation int

	logger *log.Logger
}

// New returns a desert world with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig("desert", cfg)
}

// NewWithConfig returns a zero-filled world configured from the provided
// options. Call Reset to seed it.
func NewWithConfig(name string, cfg Config) (*World, error) {
	g, err := grid.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("%s world: %w", name, err)
	}
	return &World{
		name:   name,
		cfg:    cfg,
		grid:   g,
		engine: life.NewEngine(cfg.Seed),
		logger: log.New(io.Discard),
	}, nil
}

// SetLogger routes world events to l.
func (w *World) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	w.logger = l
}

// Name returns the preset this world was created from.
func (w *World) Name() string { return w.name }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Grid exposes the current generation.
func (w *World) Grid() *grid.Grid { return w.grid }

// Config returns a copy of the active configuration.
func (w *World) Config() Config { return w.cfg }

// Params returns the active rule parameters.
func (w *World) Params() life.Params { return w.cfg.Params }

// Generation returns the number of steps since the last reset.
func (w *World) Generation() int { return w.generation }

// Reset clears the board and reseeds it deterministically. A zero seed
// falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.engine = life.NewEngine(effective)
	w.grid.Clear()
	draws := w.grid.Reseed(w.engine.RNG(), w.cfg.Params.SeedRate)
	w.generation = 0
	w.logger.Info("seeded", "sim", w.name, "seed", effective, "cells", draws)
}

// Step advances the world by one generation and swaps in the result.
func (w *World) Step() {
	w.grid = w.engine.Step(w.grid, w.cfg.Params)
	w.generation++
}

// Activate paints the brush block at (x, y). Off-grid positions are ignored.
func (w *World) Activate(x, y int, mode core.PaintMode) {
	w.grid.ActivateBlock(x, y, w.cfg.Brush, mode.Value())
	w.logger.Debug("paint", "x", x, "y", y, "value", mode.Value(), "brush", w.cfg.Brush)
}

// Apply handles the parameter commands and reports whether cmd was one.
func (w *World) Apply(cmd core.Command) bool {
	switch cmd {
	case core.CommandGrowthUp:
		w.SetFloatParameter("growth_rate", w.cfg.Params.GrowthRate+GrowthStep)
	case core.CommandGrowthDown:
		w.SetFloatParameter("growth_rate", w.cfg.Params.GrowthRate-GrowthStep)
	case core.CommandDecayUp:
		w.SetFloatParameter("decay_rate", w.cfg.Params.DecayRate+DecayStep)
	case core.CommandDecayDown:
		w.SetFloatParameter("decay_rate", w.cfg.Params.DecayRate-DecayStep)
	case core.CommandSeedUp:
		w.SetFloatParameter("seed_rate", w.cfg.Params.SeedRate+SeedStep)
	case core.CommandSeedDown:
		w.SetFloatParameter("seed_rate", w.cfg.Params.SeedRate-SeedStep)
	case core.CommandToggleRule:
		if w.cfg.Params.Mode == life.RuleClassic {
			w.cfg.Params.Mode = life.RuleAging
		} else {
			w.cfg.Params.Mode = life.RuleClassic
		}
		w.logger.Info("rule", "mode", w.cfg.Params.Mode)
	default:
		return false
	}
	return true
}

// roundRate trims float drift from repeated increments.
func roundRate(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func init() {
	core.Register("desert", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig("desert", FromMap(cfg))
	})
	core.Register("classic", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig("classic", ClassicFromMap(cfg))
	})
}

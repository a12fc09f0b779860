package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"data-desert/internal/app"
	"data-desert/internal/config"
	"data-desert/internal/logging"
	"data-desert/pkg/sims/life"
)

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig(o *app.Options) (config.Config, life.Theme, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return cfg, life.Theme{}, err
	}
	if o.Sim != "" {
		cfg.Sim = o.Sim
	}
	if o.TPS != 0 {
		cfg.TPS = o.TPS
	}
	theme, err := cfg.LifeTheme()
	if err != nil {
		return cfg, theme, err
	}
	return cfg, theme, nil
}

// newLogger builds the command logger writing to w.
func newLogger(o *app.Options, w io.Writer) (*log.Logger, error) {
	if w == nil {
		return logging.Discard(), nil
	}
	return logging.New(w, o.LogLevel)
}

// startLoop builds and seeds the configured simulation. cols and rows size
// the grid unless the config or --set give w and h.
func startLoop(o *app.Options, cfg config.Config, logger *log.Logger, cols, rows int) (*app.Loop, error) {
	overrides, err := o.Overrides()
	if err != nil {
		return nil, err
	}
	sim, err := app.NewSim(cfg.Sim, cfg.SimulationOverrides(overrides), cols, rows, logger)
	if err != nil {
		return nil, err
	}
	sim.Reset(o.Seed)
	size := sim.Size()
	logger.Info("starting", "sim", sim.Name(), "cols", size.W, "rows", size.H, "tps", cfg.TPS)
	return app.NewLoop(sim, cfg.TPS, o.Seed, logger), nil
}

func checkArea(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("drawing area too small for a grid (%dx%d cells)", cols, rows)
	}
	return nil
}

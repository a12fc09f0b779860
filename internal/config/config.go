// Package config provides YAML-based application configuration for the
// desert front-ends: window geometry, tick rate, theme and simulation
// overrides.
package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"data-desert/internal/core"
	"data-desert/pkg/sims/life"
)

// Config is the top-level application configuration.
type Config struct {
	Sim    string       `yaml:"sim"`
	TPS    int          `yaml:"tps"`
	Window WindowConfig `yaml:"window"`
	Cell   CellConfig   `yaml:"cell"`
	Theme  ThemeConfig  `yaml:"theme"`

	// Simulation holds preset overrides in the key=value form accepted by
	// the simulation factories.
	Simulation map[string]string `yaml:"simulation"`
}

// WindowConfig defines the GUI window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CellConfig defines tile geometry in pixels.
type CellConfig struct {
	Size   int `yaml:"size"`
	Margin int `yaml:"margin"`
}

// ThemeConfig holds hex colours for the renderer.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Dead       string `yaml:"dead"`
	Alive      string `yaml:"alive"`
	Decaying   string `yaml:"decaying"`
	ShowDecay  bool   `yaml:"show_decay"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sim: "desert",
		TPS: 12,
		Window: WindowConfig{
			Width:  1024,
			Height: 1024,
			Title:  "Data D3s3rt <3",
		},
		Cell: CellConfig{Size: 10, Margin: 4},
		Theme: ThemeConfig{
			Background: "#323232",
			Dead:       "#000000",
			Alive:      "#ffffff",
			Decaying:   "#28285a",
		},
	}
}

// Validate checks the geometry and tick rate.
func (c Config) Validate() error {
	if c.Sim == "" {
		return fmt.Errorf("sim must be set")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Cell.Size <= 0 || c.Cell.Margin < 0 {
		return fmt.Errorf("cell size %d / margin %d invalid", c.Cell.Size, c.Cell.Margin)
	}
	if c.TPS < core.MinTPS || c.TPS > core.MaxTPS {
		return fmt.Errorf("tps %d outside [%d, %d]", c.TPS, core.MinTPS, core.MaxTPS)
	}
	return nil
}

// LifeTheme converts the configured colours and geometry into a life.Theme.
func (c Config) LifeTheme() (life.Theme, error) {
	t := life.DefaultTheme()
	t.CellSize = c.Cell.Size
	t.Margin = c.Cell.Margin
	t.ShowDecay = c.Theme.ShowDecay

	targets := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", c.Theme.Background, &t.Background},
		{"dead", c.Theme.Dead, &t.Dead},
		{"alive", c.Theme.Alive, &t.Alive},
		{"decaying", c.Theme.Decaying, &t.Decaying},
	}
	for _, target := range targets {
		if target.hex == "" {
			continue
		}
		parsed, err := colorful.Hex(target.hex)
		if err != nil {
			return t, fmt.Errorf("theme %s colour %q: %w", target.name, target.hex, err)
		}
		r, g, b := parsed.RGB255()
		*target.dst = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return t, nil
}

// SimulationOverrides returns a copy of the simulation map merged with
// extra, where extra wins.
func (c Config) SimulationOverrides(extra map[string]string) map[string]string {
	out := make(map[string]string, len(c.Simulation)+len(extra))
	for k, v := range c.Simulation {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"data-desert/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the GUI window",
	Long: `Open the simulation in a window. Requires a binary built with -tags ebiten.

Controls:
  Left/Right mouse  - Activate / deactivate cells
  R                 - Reset and reseed
  P / N             - Pause / single step
  Q W               - Growth rate up / down
  A S               - Decay rate up / down
  E D               - Seed rate up / down
  C                 - Toggle classic / aging rule
  + -               - Tick rate
  1 2               - Decay / age overlays
  Esc               - Quit`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, theme, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger, err := newLogger(opts, os.Stderr)
	if err != nil {
		return err
	}
	cols, rows := theme.GridSize(cfg.Window.Width, cfg.Window.Height)
	if err := checkArea(cols, rows); err != nil {
		return err
	}
	loop, err := startLoop(opts, cfg, logger, cols, rows)
	if err != nil {
		return err
	}
	return app.Run(loop, theme, cfg.Window.Title)
}

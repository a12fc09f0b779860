package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"data-desert/internal/tui"
)

var flagLogFile string

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run inside the terminal",
	Long: `Run the simulation in the terminal. Each cell is two columns wide and
the grid fills the terminal unless w/h are set.

Controls are the same as the GUI; 1 toggles decay shading and Ctrl+C also quits.`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "write logs to this file (the terminal is busy drawing)")
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, theme, err := loadConfig(opts)
	if err != nil {
		return err
	}

	var logOut io.Writer
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(opts, logOut)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cols, rows := tui.GridSize(width, height)
	if err := checkArea(cols, rows); err != nil {
		return err
	}
	loop, err := startLoop(opts, cfg, logger, cols, rows)
	if err != nil {
		return err
	}
	return tui.Run(loop, theme)
}

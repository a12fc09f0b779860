// desert runs the Data Desert cellular automaton.
//
// Usage:
//
//	desert run             - Open the GUI window (build with -tags ebiten)
//	desert term            - Run inside the terminal
//	desert list            - List simulation presets
//	desert sweep           - Rank decay/growth combinations headless
//
// Global flags:
//
//	--config <path>        - YAML config (default search: ~/.desert, ./configs, built-in)
//	--sim <name>           - Preset to run (desert, classic)
//	--seed <value>         - Reset seed (0 = config seed)
//	--tps <rate>           - Starting tick rate, 1..60
//	--set key=value        - Simulation override, repeatable
//	--log-level <level>    - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"data-desert/internal/app"
	// Import presets to register them
	_ "data-desert/internal/sims/desert"
)

var opts = app.NewOptions()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "desert",
	Short: "Data Desert - an aging Game of Life with decay and regrowth",
	Long: `Data Desert runs Conway's Game of Life on a wrapping grid where live
cells age, dead cells decay and random cells die or sprout every tick.

Available commands:
  run      - Open the GUI window
  term     - Run inside the terminal
  list     - Show simulation presets
  sweep    - Rank decay/growth rates headless

Examples:
  desert run
  desert term --sim classic
  desert run --set decay_rate=0.02 --set brush=1
  desert sweep --steps 300 --format yaml`,
	SilenceUsage: true,
}

func init() {
	opts.Bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(sweepCmd)
}

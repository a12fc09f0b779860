package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"data-desert/internal/core"
)

var presetDescriptions = map[string]string{
	"desert":  "aging life with decay and regrowth",
	"classic": "Conway B3/S23, no decay or growth",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List simulation presets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available presets:")
		for _, name := range core.Names() {
			fmt.Fprintf(out, "  %-10s %s\n", name, presetDescriptions[name])
		}
	},
}

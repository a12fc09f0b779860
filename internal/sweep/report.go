package sweep

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// WriteTable prints the top results as an aligned table. top <= 0 prints
// everything.
func WriteTable(w io.Writer, results []Result, top int) error {
	if top <= 0 || top > len(results) {
		top = len(results)
	}
	header := fmt.Sprintf("%-4s %-8s %-8s %-6s %-6s %-8s %-8s %-6s", "#", "decay", "growth", "seed", "gen", "alive", "peak", "age")
	lines := []string{headerStyle.Render(header)}
	for i, r := range results[:top] {
		lines = append(lines, fmt.Sprintf("%-4d %-8.4f %-8.4f %-6d %-6d %-8d %-8d %-6.1f",
			i+1, r.Decay, r.Growth, r.Seed, r.Generation, r.Population, r.PeakPop, r.MeanAge))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// WriteYAML encodes the top results as a YAML list.
func WriteYAML(w io.Writer, results []Result, top int) error {
	if top <= 0 || top > len(results) {
		top = len(results)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results[:top]); err != nil {
		return err
	}
	return enc.Close()
}

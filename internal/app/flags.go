package app

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Options represents the command-line parameters shared by the desert
// commands.
type Options struct {
	ConfigPath string
	LogLevel   string
	Sim        string
	Seed       int64
	TPS        int
	Sets       []string
}

// NewOptions returns Options populated with defaults. Zero Seed and TPS
// mean "use the config file".
func NewOptions() *Options {
	return &Options{LogLevel: "info"}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigPath, "config", "c", o.ConfigPath, "path to a YAML config file")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&o.Sim, "sim", o.Sim, "simulation preset to run (overrides config)")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for simulation reset (overrides config)")
	fs.IntVar(&o.TPS, "tps", o.TPS, "ticks per second (overrides config)")
	fs.StringArrayVar(&o.Sets, "set", o.Sets, "simulation override key=value (repeatable)")
}

// Overrides parses the --set pairs, and --seed when given, into a map
// accepted by the simulation factories.
func (o *Options) Overrides() (map[string]string, error) {
	out, err := ParseSets(o.Sets)
	if err != nil {
		return nil, err
	}
	if o.Seed != 0 {
		out["seed"] = fmt.Sprintf("%d", o.Seed)
	}
	return out, nil
}

// ParseSets splits key=value pairs. Later pairs win.
func ParseSets(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q, want key=value", pair)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

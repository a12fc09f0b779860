package app

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"data-desert/internal/core"
)

// ErrNoGUI reports a binary built without the ebiten tag.
var ErrNoGUI = errors.New("the GUI requires building with the 'ebiten' tag; try the term command")

type loggerSetter interface {
	SetLogger(l *log.Logger)
}

// NewSim builds the named preset from overrides. When overrides leave the
// grid size unset it defaults to cols x rows, the number of tiles that fit
// the front-end's drawing area.
func NewSim(name string, overrides map[string]string, cols, rows int, logger *log.Logger) (core.Sim, error) {
	cfg := make(map[string]string, len(overrides)+2)
	for k, v := range overrides {
		cfg[k] = v
	}
	if _, ok := cfg["w"]; !ok && cols > 0 {
		cfg["w"] = strconv.Itoa(cols)
	}
	if _, ok := cfg["h"]; !ok && rows > 0 {
		cfg["h"] = strconv.Itoa(rows)
	}
	sim, err := core.New(name, cfg)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	if s, ok := sim.(loggerSetter); ok && logger != nil {
		s.SetLogger(logger)
	}
	return sim, nil
}

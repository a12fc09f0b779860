package ui

import (
	"fmt"
	"math"
	"strconv"

	"data-desert/internal/core"
	"data-desert/internal/sims/desert"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type statsProvider interface {
	Stats() desert.Stats
}

// RunState is the loop state shown next to the simulation stats.
type RunState interface {
	Paused() bool
	TPS() int
}

// Controls tracks the HUD-adjustable parameters of a simulation and applies
// +/- adjustments through the simulation's setters.
type Controls struct {
	sim    core.Sim
	states []controlState
	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool
}

// ControlRow is the display form of one control.
type ControlRow struct {
	Label       string
	Value       string
	CanDecrease bool
	CanIncrease bool
}

// NewControls inspects sim for parameter controls and setters.
func NewControls(sim core.Sim) *Controls {
	c := &Controls{sim: sim}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			c.states = append(c.states, controlState{control: ctrl, value: "--"})
		}
	}
	c.ints, _ = sim.(core.IntParameterSetter)
	c.floats, _ = sim.(core.FloatParameterSetter)
	return c
}

// Len returns the number of controls.
func (c *Controls) Len() int { return len(c.states) }

// Refresh re-reads current values from the simulation snapshot.
func (c *Controls) Refresh() {
	provider, ok := c.sim.(parameterProvider)
	if !ok {
		return
	}
	snap := provider.Parameters()
	for i := range c.states {
		state := &c.states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

// Row returns the display form of control i.
func (c *Controls) Row(i int) ControlRow {
	state := &c.states[i]
	return ControlRow{
		Label:       state.control.Label,
		Value:       state.value,
		CanDecrease: state.hasValue && c.target(state, -1) != state.floatValue,
		CanIncrease: state.hasValue && c.target(state, 1) != state.floatValue,
	}
}

// Adjust moves control i one step in direction and reports whether the
// simulation accepted the new value.
func (c *Controls) Adjust(i, direction int) bool {
	if i < 0 || i >= len(c.states) || direction == 0 {
		return false
	}
	state := &c.states[i]
	if !state.hasValue {
		return false
	}
	target := c.target(state, direction)
	if math.Abs(target-state.floatValue) < 1e-9 {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if c.ints == nil || !c.ints.SetIntParameter(state.control.Key, int(target)) {
			return false
		}
	case core.ParamTypeFloat:
		if c.floats == nil || !c.floats.SetFloatParameter(state.control.Key, target) {
			return false
		}
	default:
		return false
	}
	c.Refresh()
	return true
}

func (c *Controls) target(state *controlState, direction int) float64 {
	step := state.control.Step
	switch state.control.Type {
	case core.ParamTypeInt:
		if c.ints == nil {
			return state.floatValue
		}
		step = math.Max(math.Round(step), 1)
	case core.ParamTypeFloat:
		if c.floats == nil {
			return state.floatValue
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return state.floatValue
	}
	return state.control.Clamp(state.floatValue + float64(direction)*step)
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// StatusLines describes the run state and, when the simulation reports
// them, the generation statistics.
func StatusLines(sim core.Sim, run RunState) []string {
	state := "running"
	if run != nil && run.Paused() {
		state = "paused"
	}
	tps := 0
	if run != nil {
		tps = run.TPS()
	}
	lines := []string{fmt.Sprintf("%s  %s  %d tps", sim.Name(), state, tps)}
	if provider, ok := sim.(statsProvider); ok {
		s := provider.Stats()
		lines = append(lines,
			fmt.Sprintf("gen %d  alive %d", s.Generation, s.Population),
			fmt.Sprintf("decaying %d  age %.1f", s.Decaying, s.MeanAge),
		)
	}
	return lines
}

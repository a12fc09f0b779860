package desert

import (
	"data-desert/internal/core"
	"data-desert/pkg/sims/life"
)

// Parameters reports the current tunables grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Columns", w.grid.W),
				core.IntParam("h", "Rows", w.grid.H),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
				core.IntParam("generation", "Generation", w.generation),
			},
		},
		{
			Name: "Rates",
			Params: []core.Parameter{
				core.FloatParam("seed_rate", "Seed rate", params.SeedRate),
				core.FloatParam("decay_rate", "Decay rate", params.DecayRate),
				core.FloatParam("growth_rate", "Growth rate", params.GrowthRate),
			},
			Summary: rateSummary(params),
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", params.Mode.String()),
				core.StringParam("neighbors", "Neighbours", params.Policy().String()),
				core.IntParam("overcrowd", "Overcrowd above", params.Overcrowd),
				core.IntParam("brush", "Brush cells", w.cfg.Brush),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "decay_rate", Label: "Decay", Type: core.ParamTypeFloat, Step: DecayStep, HasMin: true},
		{Key: "growth_rate", Label: "Growth", Type: core.ParamTypeFloat, Step: GrowthStep, HasMin: true},
		{Key: "seed_rate", Label: "Seed", Type: core.ParamTypeFloat, Step: SeedStep, HasMin: true, Max: 1, HasMax: true},
		{Key: "overcrowd", Label: "Overcrowd", Type: core.ParamTypeInt, Step: 1, Min: 2, HasMin: true, Max: 8, HasMax: true},
		{Key: "brush", Label: "Brush", Type: core.ParamTypeInt, Step: 1, Min: MinBrush, HasMin: true, Max: MaxBrush, HasMax: true},
	}
}

// SetFloatParameter updates a rate. Rates never drop below zero and the seed
// rate never exceeds one.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		value = 0
	}
	value = roundRate(value)
	switch key {
	case "decay_rate":
		w.cfg.Params.DecayRate = value
		w.logger.Info("decay rate", "value", value)
	case "growth_rate":
		w.cfg.Params.GrowthRate = value
		w.logger.Info("growth rate", "value", value)
	case "seed_rate":
		if value > 1 {
			value = 1
		}
		w.cfg.Params.SeedRate = value
		w.logger.Info("seed rate", "value", value)
	default:
		return false
	}
	return true
}

// SetIntParameter updates the overcrowd threshold or the brush size.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "overcrowd":
		if value < 0 {
			value = 0
		}
		w.cfg.Params.Overcrowd = value
		w.logger.Info("overcrowd", "value", value)
	case "brush":
		w.cfg.Brush = clampInt(value, MinBrush, MaxBrush)
		w.logger.Info("brush", "value", w.cfg.Brush)
	default:
		return false
	}
	return true
}

func rateSummary(p life.Params) string {
	if p.Classic() {
		return "Classic rule active: decay and growth are paused."
	}
	return "Decay and growth are skipped under the classic rule."
}

package desert

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"data-desert/internal/core"
	grid "data-desert/pkg/core"
	"data-desert/pkg/sims/life"
)

func newTestWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := NewWithConfig("desert", cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return w
}

func TestFromMapParsesKnownKeys(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":           "40",
		"h":           "30",
		"seed":        "12",
		"seed_rate":   "2",
		"decay_rate":  "-0.5",
		"growth_rate": "0.01",
		"rule":        "classic",
		"neighbors":   "raw",
		"overcrowd":   "5",
		"brush":       "9",
		"junk":        "x",
	})
	if cfg.Width != 40 || cfg.Height != 30 || cfg.Seed != 12 {
		t.Fatalf("unexpected world fields %+v", cfg)
	}
	if cfg.Params.SeedRate != 1 {
		t.Fatalf("seed rate should clamp to 1, got %v", cfg.Params.SeedRate)
	}
	if cfg.Params.DecayRate != 0 {
		t.Fatalf("decay rate should clamp to 0, got %v", cfg.Params.DecayRate)
	}
	if cfg.Params.GrowthRate != 0.01 {
		t.Fatalf("growth rate %v", cfg.Params.GrowthRate)
	}
	if cfg.Params.Mode != life.RuleClassic || cfg.Params.Neighbors != life.NeighborRaw || cfg.Params.Overcrowd != 5 {
		t.Fatalf("unexpected rule %+v", cfg.Params)
	}
	if cfg.Brush != MaxBrush {
		t.Fatalf("brush should clamp to %d, got %d", MaxBrush, cfg.Brush)
	}
}

func TestFromMapIgnoresGarbage(t *testing.T) {
	cfg := FromMap(map[string]string{"w": "wide", "decay_rate": "lots", "rule": "hex"})
	def := DefaultConfig()
	if cfg.Width != def.Width || cfg.Params.DecayRate != def.Params.DecayRate || cfg.Params.Mode != def.Params.Mode {
		t.Fatalf("garbage values should be ignored, got %+v", cfg)
	}
}

func TestClassicPresetZeroesRates(t *testing.T) {
	cfg := ClassicFromMap(nil)
	if !cfg.Params.Classic() || cfg.Params.DecayRate != 0 || cfg.Params.GrowthRate != 0 {
		t.Fatalf("classic preset %+v", cfg.Params)
	}
}

func TestInvalidDimensionsSurface(t *testing.T) {
	_, err := core.New("desert", map[string]string{"w": "0"})
	if !errors.Is(err, grid.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestRegisteredPresets(t *testing.T) {
	names := core.Names()
	for _, want := range []string{"classic", "desert"} {
		if !slices.Contains(names, want) {
			t.Fatalf("preset %q missing from %v", want, names)
		}
	}
	sim, err := core.New("classic", map[string]string{"w": "8", "h": "6"})
	if err != nil {
		t.Fatalf("classic preset: %v", err)
	}
	if sim.Size() != (core.Size{W: 8, H: 6}) || sim.Name() != "classic" {
		t.Fatalf("unexpected classic sim %s %+v", sim.Name(), sim.Size())
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Params.SeedRate = 0.2
	world := newTestWorld(t, cfg)

	world.Reset(0)
	initial := append([]int(nil), world.Grid().Cells()...)
	if !slices.ContainsFunc(initial, func(v int) bool { return v == 1 }) {
		t.Fatal("reset should seed live cells")
	}

	world.Step()
	world.Step()
	world.Reset(0)
	if !slices.Equal(initial, world.Grid().Cells()) {
		t.Fatal("reset with config seed not deterministic")
	}
	if world.Generation() != 0 {
		t.Fatalf("generation should reset, got %d", world.Generation())
	}

	world.Reset(777)
	seeded := append([]int(nil), world.Grid().Cells()...)
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestStepSwapsGridAndCounts(t *testing.T) {
	world := newTestWorld(t, ClassicFromMap(map[string]string{"w": "5", "h": "5"}))
	g := world.Grid()
	g.Set(1, 2, 1)
	g.Set(2, 2, 1)
	g.Set(3, 2, 1)

	world.Step()
	if world.Grid() == g {
		t.Fatal("step should swap in a new grid")
	}
	if g.Get(1, 2) != 1 {
		t.Fatal("previous grid must not be mutated")
	}
	for _, p := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if world.Grid().Get(p[0], p[1]) != 1 {
			t.Fatalf("expected vertical blinker cell at %v", p)
		}
	}
	if s := world.Stats(); s.Generation != 1 || s.Population != 3 {
		t.Fatalf("unexpected stats %+v", s)
	}
}

func TestActivateModes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 6
	cfg.Height = 6
	world := newTestWorld(t, cfg)

	world.Activate(5, 5, core.PaintActivate)
	if world.Stats().Population != 1 {
		t.Fatalf("corner paint should only write the in-range cell, population=%d", world.Stats().Population)
	}
	world.Activate(1, 1, core.PaintActivate)
	if world.Stats().Population != 5 {
		t.Fatalf("2x2 brush should add four cells, population=%d", world.Stats().Population)
	}
	world.Activate(1, 1, core.PaintDeactivate)
	if world.Stats().Population != 1 {
		t.Fatalf("deactivate should clear the block, population=%d", world.Stats().Population)
	}
	world.SetIntParameter("brush", 1)
	world.Activate(-3, 40, core.PaintActivate)
	if world.Stats().Population != 1 {
		t.Fatal("off-grid paint must be a no-op")
	}
}

func TestApplyRateCommandsClampAtZero(t *testing.T) {
	world := newTestWorld(t, DefaultConfig())

	world.Apply(core.CommandGrowthUp)
	if got := world.Params().GrowthRate; math.Abs(got-0.007) > 1e-9 {
		t.Fatalf("growth after increment %v", got)
	}
	for i := 0; i < 20; i++ {
		world.Apply(core.CommandGrowthDown)
		world.Apply(core.CommandDecayDown)
	}
	if world.Params().GrowthRate != 0 || world.Params().DecayRate != 0 {
		t.Fatalf("rates should clamp at zero, got %+v", world.Params())
	}
	world.Apply(core.CommandDecayUp)
	if got := world.Params().DecayRate; got != DecayStep {
		t.Fatalf("decay after increment from zero %v", got)
	}
	for i := 0; i < 200; i++ {
		world.Apply(core.CommandSeedUp)
	}
	if world.Params().SeedRate != 1 {
		t.Fatalf("seed rate should cap at 1, got %v", world.Params().SeedRate)
	}

	if !world.Apply(core.CommandToggleRule) || !world.Params().Classic() {
		t.Fatal("toggle should switch to classic")
	}
	world.Apply(core.CommandToggleRule)
	if world.Params().Classic() {
		t.Fatal("toggle should switch back to aging")
	}
	if world.Apply(core.CommandQuit) {
		t.Fatal("quit is not a world command")
	}
}

func TestParametersSnapshot(t *testing.T) {
	world := newTestWorld(t, DefaultConfig())
	snap := world.Parameters()
	p, ok := snap.Lookup("decay_rate")
	if !ok || p.Value != "0.015" {
		t.Fatalf("decay_rate param %+v %v", p, ok)
	}
	if p, ok := snap.Lookup("rule"); !ok || p.Value != "aging" {
		t.Fatalf("rule param %+v %v", p, ok)
	}
	for _, ctrl := range world.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q has no snapshot value", ctrl.Key)
		}
	}
	if world.SetFloatParameter("unknown", 1) || world.SetIntParameter("unknown", 1) {
		t.Fatal("unknown keys should be rejected")
	}
}

func TestToggleRuleReportsClassicPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Neighbors = life.NeighborRaw
	world := newTestWorld(t, cfg)

	if !world.Apply(core.CommandToggleRule) {
		t.Fatal("toggle rule should be handled")
	}
	snap := world.Parameters()
	if p, _ := snap.Lookup("rule"); p.Value != "classic" {
		t.Fatalf("expected classic rule, got %q", p.Value)
	}
	if p, _ := snap.Lookup("neighbors"); p.Value != "binary" {
		t.Fatalf("classic should report binary neighbours, got %q", p.Value)
	}
	for _, g := range snap.Groups {
		if g.Name == "Rates" && !strings.Contains(g.Summary, "paused") {
			t.Fatalf("rates summary should mention paused perturbation: %q", g.Summary)
		}
	}

	world.Apply(core.CommandToggleRule)
	if p, _ := world.Parameters().Lookup("neighbors"); p.Value != "raw" {
		t.Fatalf("aging should restore the raw policy, got %q", p.Value)
	}
}

func TestMasks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 3
	cfg.Height = 1
	world := newTestWorld(t, cfg)
	world.Grid().Set(0, 0, 32)
	world.Grid().Set(1, 0, -200)

	age := world.AgeMask()
	decay := world.DecayMask()
	if age[0] != 0.5 || age[1] != 0 || age[2] != 0 {
		t.Fatalf("age mask %v", age)
	}
	if decay[1] != 1 || decay[0] != 0 {
		t.Fatalf("decay mask %v", decay)
	}
	s := world.Stats()
	if s.Population != 1 || s.Decaying != 1 || s.MeanAge != 32 {
		t.Fatalf("stats %+v", s)
	}
}

package core

import (
	"slices"
	"testing"

	grid "data-desert/pkg/core"
)

type stubSim struct{ g *grid.Grid }

func (s *stubSim) Name() string     { return "stub" }
func (s *stubSim) Size() Size       { return Size{W: s.g.W, H: s.g.H} }
func (s *stubSim) Reset(int64)      { s.g.Clear() }
func (s *stubSim) Step()            { s.g.Set(0, 0, s.g.Get(0, 0)+1) }
func (s *stubSim) Grid() *grid.Grid { return s.g }

func TestRegistryNamesAndNew(t *testing.T) {
	Register("zz-stub", func(map[string]string) (Sim, error) {
		return &stubSim{g: grid.MustGrid(2, 2)}, nil
	})
	Register("", nil)

	if !slices.Contains(Names(), "zz-stub") {
		t.Fatalf("registered sim missing from %v", Names())
	}
	if !slices.IsSorted(Names()) {
		t.Fatalf("names not sorted: %v", Names())
	}
	sim, err := New("zz-stub", nil)
	if err != nil || sim.Size() != (Size{W: 2, H: 2}) {
		t.Fatalf("New returned %v, %v", sim, err)
	}
	if _, err := New("missing", nil); err == nil {
		t.Fatal("expected error for unknown sim")
	}
}

func TestSnapshotLookupAndClamp(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Rates", Params: []Parameter{FloatParam("decay_rate", "Decay", 0.015)}},
	}}
	p, ok := snap.Lookup("decay_rate")
	if !ok || p.Value != "0.015" || p.Type != ParamTypeFloat {
		t.Fatalf("lookup returned %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("lookup of unknown key succeeded")
	}

	ctrl := ParameterControl{HasMin: true, Min: 0, HasMax: true, Max: 1}
	if got := ctrl.Clamp(-0.3); got != 0 {
		t.Fatalf("clamp low=%v", got)
	}
	if got := ctrl.Clamp(1.7); got != 1 {
		t.Fatalf("clamp high=%v", got)
	}
}

func TestPaintModeValue(t *testing.T) {
	if PaintActivate.Value() != 1 || PaintDeactivate.Value() != 0 {
		t.Fatal("paint mode values wrong")
	}
	if CommandGrowthUp.String() != "GrowthUp" || Command(999).String() != "Unknown" {
		t.Fatal("command names wrong")
	}
}

func TestCommandForKey(t *testing.T) {
	cases := map[string]Command{
		"r":      CommandReset,
		"p":      CommandTogglePause,
		"n":      CommandStepOnce,
		"q":      CommandGrowthUp,
		"w":      CommandGrowthDown,
		"a":      CommandDecayUp,
		"s":      CommandDecayDown,
		"e":      CommandSeedUp,
		"d":      CommandSeedDown,
		"c":      CommandToggleRule,
		"+":      CommandFaster,
		"-":      CommandSlower,
		"esc":    CommandQuit,
		"ctrl+c": CommandQuit,
		"x":      CommandNone,
		"":       CommandNone,
	}
	for key, want := range cases {
		if got := CommandForKey(key); got != want {
			t.Errorf("CommandForKey(%q) = %v, want %v", key, got, want)
		}
	}
	if CommandToggleRule.String() != "ToggleRule" || Command(99).String() != "Unknown" {
		t.Fatal("unexpected command names")
	}
}

package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("tps: 30\nsimulation:\n  decay_rate: 0.02\n  rule: classic\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.TPS != 30 {
		t.Fatalf("expected tps 30, got %d", cfg.TPS)
	}
	if cfg.Window.Width != 1024 || cfg.Cell.Size != 10 || cfg.Sim != "desert" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.Simulation["decay_rate"] != "0.02" || cfg.Simulation["rule"] != "classic" {
		t.Fatalf("unexpected simulation map %v", cfg.Simulation)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"tps":    "tps: 0\n",
		"window": "window:\n  width: -1\n",
		"cell":   "cell:\n  size: 0\n",
		"hex":    "theme:\n  alive: \"not-a-colour\"\n",
		"yaml":   "tps: [1,\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLifeThemeParsesHex(t *testing.T) {
	cfg := Default()
	cfg.Theme.Alive = "#ff8000"
	cfg.Theme.ShowDecay = true
	cfg.Cell.Size = 6
	theme, err := cfg.LifeTheme()
	if err != nil {
		t.Fatalf("LifeTheme: %v", err)
	}
	if theme.Alive != (color.RGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Fatalf("unexpected alive colour %+v", theme.Alive)
	}
	if theme.Background != (color.RGBA{R: 50, G: 50, B: 50, A: 255}) {
		t.Fatalf("unexpected background %+v", theme.Background)
	}
	if !theme.ShowDecay || theme.CellSize != 6 || theme.Margin != 4 {
		t.Fatalf("geometry not applied: %+v", theme)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("sim: classic\ntps: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sim != "classic" || cfg.TPS != 5 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Fatalf("expected read error naming the file, got %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "Data D3s3rt <3" {
		t.Fatalf("unexpected title %q", cfg.Window.Title)
	}
	if cfg.Simulation["brush"] != "4" || cfg.Simulation["rule"] != "aging" {
		t.Fatalf("embedded simulation block not loaded: %v", cfg.Simulation)
	}
}

func TestLoadPrefersUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".desert")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("tps: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TPS != 40 {
		t.Fatalf("expected user tps 40, got %d", cfg.TPS)
	}
}

func TestSimulationOverrides(t *testing.T) {
	cfg := Default()
	cfg.Simulation = map[string]string{"seed": "1", "rule": "aging"}
	merged := cfg.SimulationOverrides(map[string]string{"seed": "9"})
	if merged["seed"] != "9" || merged["rule"] != "aging" {
		t.Fatalf("unexpected merge %v", merged)
	}
	if cfg.Simulation["seed"] != "1" {
		t.Fatal("overrides must not mutate config")
	}
}

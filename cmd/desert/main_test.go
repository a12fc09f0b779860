package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"data-desert/internal/app"
	"data-desert/internal/logging"
)

func TestSeedRange(t *testing.T) {
	if got := seedRange(10, 3); !slices.Equal(got, []int64{10, 11, 12}) {
		t.Fatalf("unexpected seeds %v", got)
	}
	if got := seedRange(7, 0); !slices.Equal(got, []int64{7}) {
		t.Fatalf("expected single seed, got %v", got)
	}
}

func TestCheckArea(t *testing.T) {
	if err := checkArea(10, 10); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := checkArea(0, 10); err == nil {
		t.Fatal("expected error for empty area")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "desert.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	o := app.NewOptions()
	o.ConfigPath = writeConfig(t, "sim: desert\ntps: 10\ncell:\n  size: 4\n  margin: 1\n")
	o.Sim = "classic"
	o.TPS = 30
	cfg, theme, err := loadConfig(o)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Sim != "classic" || cfg.TPS != 30 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if theme.Pitch() != 5 {
		t.Fatalf("expected pitch 5, got %d", theme.Pitch())
	}
}

func TestStartLoopSizesAndSeeds(t *testing.T) {
	o := app.NewOptions()
	o.ConfigPath = writeConfig(t, "simulation:\n  h: 7\n")
	o.Sets = []string{"seed_rate=0.5"}
	o.Seed = 42
	cfg, _, err := loadConfig(o)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	loop, err := startLoop(o, cfg, logging.Discard(), 12, 30)
	if err != nil {
		t.Fatalf("startLoop: %v", err)
	}
	size := loop.Sim().Size()
	if size.W != 12 || size.H != 7 {
		t.Fatalf("expected 12x7 grid, got %+v", size)
	}
	if loop.Seed() != 42 || loop.TPS() != cfg.TPS {
		t.Fatalf("unexpected loop state seed=%d tps=%d", loop.Seed(), loop.TPS())
	}
	alive := 0
	for _, v := range loop.Sim().Grid().Cells() {
		if v > 0 {
			alive++
		}
	}
	if alive == 0 {
		t.Fatal("expected a seeded grid")
	}

	o.Sets = []string{"broken"}
	if _, err := startLoop(o, cfg, logging.Discard(), 12, 30); err == nil {
		t.Fatal("expected override parse error")
	}
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	listCmd.Run(listCmd, nil)
	if !strings.Contains(out.String(), "desert") || !strings.Contains(out.String(), "classic") {
		t.Fatalf("unexpected list output %q", out.String())
	}
}

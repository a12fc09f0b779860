package core

import (
	"testing"
	"time"
)

func TestFixedStepClampsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != MinTPS {
		t.Fatalf("expected tps clamp to %d, got %d", MinTPS, fs.TPS())
	}
	fs.SetTPS(500)
	if fs.TPS() != MaxTPS {
		t.Fatalf("expected tps clamp to %d, got %d", MaxTPS, fs.TPS())
	}
	if fs.Interval() != time.Second/MaxTPS {
		t.Fatalf("unexpected interval %v", fs.Interval())
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick elapsed, should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick elapsed, should step")
	}
	clock = clock.Add(10 * time.Second)
	if !fs.ShouldStep() {
		t.Fatal("stall should step")
	}
	if !fs.ShouldStep() {
		t.Fatal("one backlog tick should remain after a stall")
	}
	if fs.ShouldStep() {
		t.Fatal("backlog should be capped at one tick")
	}
}

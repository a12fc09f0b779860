package app

import (
	"github.com/charmbracelet/log"

	"data-desert/internal/core"
	"data-desert/internal/logging"
)

// DefaultTPS is the tick rate a fresh loop starts at.
const DefaultTPS = 12

type commandApplier interface {
	Apply(cmd core.Command) bool
}

type painter interface {
	Activate(x, y int, mode core.PaintMode)
}

// Loop owns the run state shared by every front-end: pause, single
// stepping, tick rate and the reset seed. Front-ends translate input into
// commands and call Dispatch, then call Advance once per frame.
type Loop struct {
	sim      core.Sim
	clock    *core.FixedStep
	logger   *log.Logger
	seed     int64
	paused   bool
	tickOnce bool
}

// NewLoop wraps sim. The simulation is not reset here.
func NewLoop(sim core.Sim, tps int, seed int64, logger *log.Logger) *Loop {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Loop{sim: sim, clock: core.NewFixedStep(tps), logger: logger, seed: seed}
}

// Sim returns the driven simulation.
func (l *Loop) Sim() core.Sim { return l.sim }

// Paused reports whether automatic stepping is suspended.
func (l *Loop) Paused() bool { return l.paused }

// TPS returns the current tick rate.
func (l *Loop) TPS() int { return l.clock.TPS() }

// Seed returns the seed used by Reset.
func (l *Loop) Seed() int64 { return l.seed }

// Reset reseeds the simulation with the loop seed.
func (l *Loop) Reset() {
	l.sim.Reset(l.seed)
	l.tickOnce = false
}

// Dispatch applies cmd and reports whether the front-end should quit.
func (l *Loop) Dispatch(cmd core.Command) bool {
	switch cmd {
	case core.CommandNone:
	case core.CommandQuit:
		l.logger.Info("quit")
		return true
	case core.CommandReset:
		l.Reset()
	case core.CommandTogglePause:
		l.paused = !l.paused
		l.logger.Info("pause", "paused", l.paused)
	case core.CommandStepOnce:
		l.tickOnce = true
	case core.CommandFaster:
		l.clock.SetTPS(l.clock.TPS() + 1)
		l.logger.Info("tick rate", "tps", l.clock.TPS())
	case core.CommandSlower:
		l.clock.SetTPS(l.clock.TPS() - 1)
		l.logger.Info("tick rate", "tps", l.clock.TPS())
	default:
		if applier, ok := l.sim.(commandApplier); ok && applier.Apply(cmd) {
			return false
		}
		l.logger.Debug("unhandled command", "command", cmd)
	}
	return false
}

// Paint forwards a pointer gesture to the simulation when it supports one.
func (l *Loop) Paint(x, y int, mode core.PaintMode) {
	if p, ok := l.sim.(painter); ok {
		p.Activate(x, y, mode)
	}
}

// Advance steps the simulation when the tick gate opens, or immediately
// for a pending single step. It reports whether a step happened.
func (l *Loop) Advance() bool {
	due := l.clock.ShouldStep()
	return l.step(due)
}

// Tick is Advance for front-ends that already pace themselves at TPS.
func (l *Loop) Tick() bool {
	return l.step(true)
}

func (l *Loop) step(due bool) bool {
	if l.tickOnce {
		l.tickOnce = false
		l.sim.Step()
		return true
	}
	if l.paused || !due {
		return false
	}
	l.sim.Step()
	return true
}

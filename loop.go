package starflight

import (
	"errors"
	"log/slog"
	"time"
)

// LoopState is the render loop's state.
type LoopState int

const (
	StateRunning LoopState = iota
	StatePaused
	StateQuit
)

func (s LoopState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// ErrQuit is returned by Step once the loop has entered StateQuit.
var ErrQuit = errors.New("starflight: quit")

// Loop drives a SimState frame by frame.
type Loop struct {
	sim      *SimState
	player   SoundPlayer
	state    LoopState
	now      func() time.Time
	last     time.Time
	maxDelta float64
	frames   uint64
}

type LoopOption func(*Loop)

// WithClock replaces the wall clock used to measure delta time.
func WithClock(now func() time.Time) LoopOption {
	return func(l *Loop) {
		l.now = now
	}
}

func NewLoop(sim *SimState, player SoundPlayer, opts ...LoopOption) *Loop {
	if player == nil {
		player = NopPlayer{}
	}
	l := &Loop{
		sim:      sim,
		player:   player,
		now:      time.Now,
		maxDelta: sim.Config.Loop.MaxDelta,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Loop) State() LoopState {
	return l.state
}

func (l *Loop) Sim() *SimState {
	return l.sim
}

func (l *Loop) Frames() uint64 {
	return l.frames
}

// Step runs one iteration: quit and pause handling, delta time, then the
// simulation update when running. It returns ErrQuit once quit is requested.
func (l *Loop) Step(in Input) error {
	if l.state == StateQuit {
		return ErrQuit
	}
	if in.Pressed.Has(ActQuit) {
		l.state = StateQuit
		slog.Info("quit requested", "frames", l.frames)
		return ErrQuit
	}
	if in.Pressed.Has(ActPause) {
		if l.state == StatePaused {
			l.state = StateRunning
		} else {
			l.state = StatePaused
		}
		slog.Debug("pause toggled", "state", l.state)
	}

	dt := l.delta()
	l.frames++
	if l.state != StateRunning {
		return nil
	}
	Update(l.sim, dt, in)
	for _, c := range l.sim.Cues {
		l.player.Play(c)
	}
	l.player.SetEngineLevel(l.sim.EngineLevel())
	return nil
}

func (l *Loop) delta() float64 {
	now := l.now()
	if l.last.IsZero() {
		l.last = now
		return 0
	}
	dt := now.Sub(l.last).Seconds()
	l.last = now
	if dt < 0 {
		return 0
	}
	if l.maxDelta > 0 && dt > l.maxDelta {
		return l.maxDelta
	}
	return dt
}

// Render draws the current frame. Paused frames are still drawn.
func (l *Loop) Render(s Surface, fps float64) {
	Render(l.sim, s, l.sim.Telemetry(l.state == StatePaused, fps))
}

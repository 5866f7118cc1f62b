package starflight

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	l := NewLoop(newTestSim(t), nil)
	surf := &recordingSurface{}

	err := RunHeadless(context.Background(), l, surf, HeadlessConfig{Hz: 1000, Ticks: 25})
	require.NoError(t, err)
	assert.Equal(t, uint64(25), l.Frames())
	assert.Equal(t, 25, surf.fills)
}

func TestRunHeadlessScriptedQuit(t *testing.T) {
	l := NewLoop(newTestSim(t), nil)
	cfg := HeadlessConfig{
		Hz: 1000,
		Input: func(tick uint64) Input {
			if tick == 10 {
				return pressed(ActQuit)
			}
			return held(ActThrust)
		},
	}

	require.NoError(t, RunHeadless(context.Background(), l, nil, cfg))
	assert.Equal(t, StateQuit, l.State())
	assert.Equal(t, uint64(10), l.Frames())
	assert.Positive(t, l.Sim().Flight.Speed)
}

func TestRunHeadlessCancel(t *testing.T) {
	l := NewLoop(newTestSim(t), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := RunHeadless(ctx, l, nil, HeadlessConfig{Hz: 200})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StateRunning, l.State())
}

func TestNewHeadlessConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Loop.FPS = 30

	testCases := []struct {
		name string
		hz   int
		want int
	}{
		{"loop rate", 0, 30},
		{"negative keeps loop rate", -5, 30},
		{"explicit override", 120, 120},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hc := NewHeadlessConfig(cfg, tc.hz, 10)
			assert.Equal(t, tc.want, hc.Hz)
			assert.Equal(t, uint64(10), hc.Ticks)
			assert.Nil(t, hc.Input)
		})
	}
}

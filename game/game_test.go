package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasonuk/starflight"
)

func TestStepResult(t *testing.T) {
	boom := errors.New("boom")
	testCases := []struct {
		name string
		in   error
		want error
	}{
		{"running", nil, nil},
		{"quit", starflight.ErrQuit, ebiten.Termination},
		{"wrapped quit", fmt.Errorf("step: %w", starflight.ErrQuit), ebiten.Termination},
		{"other error", boom, boom},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stepResult(tc.in))
		})
	}
}

func TestEscapeTerminatesGame(t *testing.T) {
	sim, err := starflight.NewSimState(starflight.DefaultConfig(), rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	loop := starflight.NewLoop(sim, nil)

	require.NoError(t, stepResult(loop.Step(starflight.Input{})))

	var quit starflight.Input
	quit.Pressed = quit.Pressed.With(starflight.ActQuit)
	assert.ErrorIs(t, stepResult(loop.Step(quit)), ebiten.Termination)
	assert.ErrorIs(t, stepResult(loop.Step(starflight.Input{})), ebiten.Termination)
}

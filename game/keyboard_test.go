package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasonuk/starflight"
)

func TestResolveKey(t *testing.T) {
	testCases := []struct {
		name string
		want ebiten.Key
	}{
		{"ArrowUp", ebiten.KeyArrowUp},
		{"arrowup", ebiten.KeyArrowUp},
		{"W", ebiten.KeyW},
		{"Space", ebiten.KeySpace},
		{"Escape", ebiten.KeyEscape},
		{"Tab", ebiten.KeyTab},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveKey(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ResolveKey("Hyper")
	assert.Error(t, err)
}

func TestNewKeyboardDefaults(t *testing.T) {
	b, err := starflight.DefaultConfig().Bindings()
	require.NoError(t, err)

	kb, err := NewKeyboard(b)
	require.NoError(t, err)
	assert.Len(t, kb.bindings, len(starflight.DefaultKeys))

	a, ok := kb.Action(ebiten.KeyEscape)
	require.True(t, ok)
	assert.Equal(t, starflight.ActQuit, a)

	a, ok = kb.Action(ebiten.KeySpace)
	require.True(t, ok)
	assert.Equal(t, starflight.ActThrust, a)

	_, ok = kb.Action(ebiten.KeyZ)
	assert.False(t, ok)

	for i := 1; i < len(kb.bindings); i++ {
		assert.Less(t, kb.bindings[i-1].key, kb.bindings[i].key)
	}
}

func TestNewKeyboardUnknownKey(t *testing.T) {
	_, err := NewKeyboard(starflight.Bindings{"NotAKey": starflight.ActQuit})
	assert.Error(t, err)
}

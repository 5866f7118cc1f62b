package game

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/starflight"
)

type binding struct {
	key    ebiten.Key
	action starflight.Action
}

// Keyboard turns ebiten key state into starflight input.
type Keyboard struct {
	bindings []binding
}

// ResolveKey maps an ebiten key name such as "ArrowUp" or "W" to its key.
func ResolveKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

func NewKeyboard(b starflight.Bindings) (*Keyboard, error) {
	kb := &Keyboard{bindings: make([]binding, 0, len(b))}
	for name, a := range b {
		k, err := ResolveKey(name)
		if err != nil {
			return nil, err
		}
		kb.bindings = append(kb.bindings, binding{key: k, action: a})
	}
	sort.Slice(kb.bindings, func(i, j int) bool {
		return kb.bindings[i].key < kb.bindings[j].key
	})
	return kb, nil
}

// Action returns the action bound to key, if any.
func (kb *Keyboard) Action(key ebiten.Key) (starflight.Action, bool) {
	for _, b := range kb.bindings {
		if b.key == key {
			return b.action, true
		}
	}
	return 0, false
}

// Poll reads this frame's keyboard state.
func (kb *Keyboard) Poll() starflight.Input {
	var in starflight.Input
	for _, b := range kb.bindings {
		if ebiten.IsKeyPressed(b.key) {
			in.Held = in.Held.With(b.action)
		}
		if inpututil.IsKeyJustPressed(b.key) {
			in.Pressed = in.Pressed.With(b.action)
		}
	}
	return in
}

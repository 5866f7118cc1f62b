package starflight

import (
	"fmt"
	"strings"
)

// Action is something a key can be bound to.
type Action int

const (
	ActRotateUp Action = iota
	ActRotateDown
	ActRotateLeft
	ActRotateRight
	ActScaleUp
	ActScaleDown
	ActCycleObject
	ActThrust
	ActReverse
	ActStrafeLeft
	ActStrafeRight
	ActRise
	ActFall
	ActWarp
	ActPause
	ActQuit
	actionCount
)

var actionNames = [actionCount]string{
	"rotate_up",
	"rotate_down",
	"rotate_left",
	"rotate_right",
	"scale_up",
	"scale_down",
	"cycle_object",
	"thrust",
	"reverse",
	"strafe_left",
	"strafe_right",
	"rise",
	"fall",
	"warp",
	"pause",
	"quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range actionNames {
		if s == n {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Actions is a set of actions.
type Actions uint32

func (s Actions) Has(a Action) bool {
	return s&(1<<uint(a)) != 0
}

func (s Actions) With(a Action) Actions {
	return s | 1<<uint(a)
}

// Input is one frame of keyboard state. Held covers keys that are down,
// Pressed only keys that went down this frame.
type Input struct {
	Held    Actions
	Pressed Actions
}

// Bindings maps key names to actions.
type Bindings map[string]Action

// DefaultKeys is the default key table. Key names follow ebiten's.
var DefaultKeys = map[string]string{
	"ArrowUp":    "rotate_up",
	"ArrowDown":  "rotate_down",
	"ArrowLeft":  "rotate_left",
	"ArrowRight": "rotate_right",
	"W":          "scale_up",
	"S":          "scale_down",
	"Tab":        "cycle_object",
	"Space":      "thrust",
	"C":          "reverse",
	"A":          "strafe_left",
	"D":          "strafe_right",
	"R":          "rise",
	"F":          "fall",
	"E":          "warp",
	"P":          "pause",
	"Escape":     "quit",
}

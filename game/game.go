// Package game runs the starflight simulation in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/smasonuk/starflight"
)

type Game struct {
	loop    *starflight.Loop
	keys    *Keyboard
	surface *screenSurface
	width   int
	height  int
}

func NewGame(loop *starflight.Loop, keys *Keyboard, width, height int) *Game {
	return &Game{
		loop:    loop,
		keys:    keys,
		surface: newScreenSurface(nil),
		width:   width,
		height:  height,
	}
}

func (g *Game) Update() error {
	return stepResult(g.loop.Step(g.keys.Poll()))
}

// stepResult maps a loop step error to what ebiten expects from Update.
// Quitting becomes ebiten.Termination so RunGame returns nil and the process
// exits 0.
func stepResult(err error) error {
	if errors.Is(err, starflight.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Render(g.surface.target(screen), ebiten.ActualFPS())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the player quits.
func Run(cfg starflight.Config, rng *rand.Rand) error {
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}
	keys, err := NewKeyboard(bindings)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}
	sim, err := starflight.NewSimState(cfg, rng)
	if err != nil {
		return err
	}

	var player starflight.SoundPlayer = starflight.NopPlayer{}
	if cfg.Audio.Enabled {
		sb := NewSoundboard(audio.NewContext(cfg.Audio.SampleRate), os.DirFS(cfg.Audio.Dir), cfg.Audio.Volume)
		defer sb.Close()
		player = sb
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Loop.FPS)

	slog.Info("starting", "width", cfg.Window.Width, "height", cfg.Window.Height, "fps", cfg.Loop.FPS)
	g := NewGame(starflight.NewLoop(sim, player), keys, cfg.Window.Width, cfg.Window.Height)
	return ebiten.RunGame(g)
}

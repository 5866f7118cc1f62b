package starflight

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
	// Input scripts the keyboard per tick. Nil sends no input.
	Input func(tick uint64) Input
}

// NewHeadlessConfig ticks at the configured loop rate. A positive hz
// overrides it.
func NewHeadlessConfig(cfg Config, hz int, ticks uint64) HeadlessConfig {
	if hz <= 0 {
		hz = cfg.Loop.FPS
	}
	return HeadlessConfig{Hz: hz, Ticks: ticks}
}

// RunHeadless steps the loop on a ticker without a window. It stops after
// cfg.Ticks steps (0 runs forever), when the loop quits, or when ctx is done.
// surf may be nil to skip drawing.
func RunHeadless(ctx context.Context, loop *Loop, surf Surface, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			var in Input
			if cfg.Input != nil {
				in = cfg.Input(tick)
			}
			if err := loop.Step(in); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
			if surf != nil {
				loop.Render(surf, 0)
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

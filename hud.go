package starflight

import (
	"image/color"
	"math"

	"github.com/dustin/go-humanize"
)

var (
	hudColor  = color.RGBA{R: 120, G: 255, B: 160, A: 255}
	warpColor = color.RGBA{R: 120, G: 200, B: 255, A: 255}
)

// Telemetry is what the HUD shows for one frame.
type Telemetry struct {
	Speed     float64
	MaxSpeed  float64
	Warp      bool
	Paused    bool
	Particles int
	Impacts   int
	FPS       float64
}

func FormatSpeed(v float64) string {
	r := math.Round(v)
	if r == 0 {
		// drop the sign of -0
		r = 0
	}
	return "SPEED: " + humanize.Commaf(r) + " U/S"
}

func FormatWarp(active bool) string {
	if active {
		return "WARP: ACTIVE"
	}
	return "WARP: STANDBY"
}

// HUDLines returns the text rows in display order.
func HUDLines(t Telemetry) []string {
	lines := []string{
		FormatSpeed(t.Speed),
		FormatWarp(t.Warp),
		"PARTICLES: " + humanize.Comma(int64(t.Particles)),
		"IMPACTS: " + humanize.Comma(int64(t.Impacts)),
	}
	if t.FPS > 0 {
		lines = append(lines, "FPS: "+humanize.FormatFloat("#.#", t.FPS))
	}
	if t.Paused {
		lines = append(lines, "PAUSED")
	}
	return lines
}

// SpeedRing is the crosshair ring radius, growing from 10 to 30 with speed.
func SpeedRing(speed, maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return 10
	}
	return lerp(10, 30, math.Abs(speed)/maxSpeed)
}

// DrawHUD draws the telemetry text and a crosshair centred at (cx, cy).
func DrawHUD(s Surface, t Telemetry, cx, cy float64) {
	for i, l := range HUDLines(t) {
		s.Text(l, 10, 10+i*16)
	}
	col := hudColor
	if t.Warp {
		col = warpColor
	}
	s.StrokeLine(cx-8, cy, cx+8, cy, 1, col)
	s.StrokeLine(cx, cy-8, cx, cy+8, 1, col)
	s.StrokeCircle(cx, cy, SpeedRing(t.Speed, t.MaxSpeed), 1, col)
}

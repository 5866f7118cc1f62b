package starflight

import (
	"image/color"
	"math/rand/v2"
)

// StarPoint is one background star in camera-relative space.
type StarPoint struct {
	Pos      Point3d
	BaseSize float64
	Col      color.RGBA
	// Trail is the current warp streak length in depth units.
	Trail      float64
	TrailAlpha float64
	Size       float64
}

// Starfield is a fixed pool of stars that are recycled when they pass the
// camera.
type Starfield struct {
	stars []StarPoint
	cfg   StarConfig
	rng   *rand.Rand
}

var starTints = []color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 200, G: 220, B: 255, A: 255},
	{R: 255, G: 240, B: 200, A: 255},
	{R: 255, G: 210, B: 210, A: 255},
}

func NewStarfield(cfg StarConfig, rng *rand.Rand) *Starfield {
	sf := &Starfield{
		stars: make([]StarPoint, cfg.Count),
		cfg:   cfg,
		rng:   rng,
	}
	for i := range sf.stars {
		sf.spawn(i, cfg.Near+rng.Float64()*(cfg.Far-cfg.Near))
	}
	return sf
}

func (sf *Starfield) Len() int {
	return len(sf.stars)
}

func (sf *Starfield) Stars() []StarPoint {
	return sf.stars
}

// Cone is the half extent of x and y at the far plane.
func (sf *Starfield) Cone() float64 {
	return sf.cfg.Far * sf.cfg.ConeSlope
}

func (sf *Starfield) spawn(i int, z float64) {
	cone := sf.Cone()
	s := &sf.stars[i]
	s.Pos = Point3d{
		X: (sf.rng.Float64()*2 - 1) * cone,
		Y: (sf.rng.Float64()*2 - 1) * cone,
		Z: z,
	}
	s.BaseSize = sf.cfg.MinSize + sf.rng.Float64()*(sf.cfg.MaxSize-sf.cfg.MinSize)
	s.Size = s.BaseSize
	s.Col = starTints[sf.rng.IntN(len(starTints))]
	s.Trail = 0
	s.TrailAlpha = 0
}

// Update moves every star toward the camera by speed*dt. Stars at or inside
// the near plane are respawned at the far plane; stars pushed past the far
// plane by reverse flight come back just beyond the near plane.
func (sf *Starfield) Update(dt, speed, warp float64) {
	step := speed * dt
	trailTarget := warp * speed * 0.15
	k := 10 * dt
	for i := range sf.stars {
		s := &sf.stars[i]
		s.Pos.Z -= step
		switch {
		case s.Pos.Z <= sf.cfg.Near:
			sf.spawn(i, sf.cfg.Far)
			continue
		case s.Pos.Z > sf.cfg.Far:
			sf.spawn(i, sf.cfg.Near+sf.rng.Float64()*sf.cfg.Near*10)
			continue
		}
		s.Trail = lerp(s.Trail, trailTarget, k)
		s.TrailAlpha = lerp(s.TrailAlpha, warp, k)
		s.Size = lerp(s.Size, s.BaseSize*(1+warp), k)
	}
}

// Shift moves the stars sideways opposite to camera motion, wrapping them
// inside the cone.
func (sf *Starfield) Shift(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	cone := sf.Cone()
	for i := range sf.stars {
		p := &sf.stars[i].Pos
		p.X = wrapRange(p.X-dx, cone)
		p.Y = wrapRange(p.Y-dy, cone)
	}
}

func wrapRange(v, half float64) float64 {
	if half <= 0 {
		return v
	}
	w := 2 * half
	for v > half {
		v -= w
	}
	for v < -half {
		v += w
	}
	return v
}

// Render draws the stars, with streaks while in warp.
func (sf *Starfield) Render(s Surface, pr Projector) {
	for i := range sf.stars {
		st := &sf.stars[i]
		p, ok := pr.Project(st.Pos)
		if !ok {
			continue
		}
		col := withAlpha(st.Col, p.Fade)
		if st.Trail > 1 && st.TrailAlpha > 0.05 {
			tail := st.Pos
			tail.Z += st.Trail
			if t, ok := pr.Project(tail); ok {
				w := float32(st.Size * p.Factor)
				if w < 1 {
					w = 1
				}
				s.StrokeLine(t.X, t.Y, p.X, p.Y, w, withAlpha(col, st.TrailAlpha))
			}
		}
		r := st.Size * p.Factor
		if r < 0.5 {
			r = 0.5
		}
		s.FillCircle(p.X, p.Y, r, col)
	}
}

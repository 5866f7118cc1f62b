package starflight

import (
	"image/color"
	"math/rand/v2"
	"sort"

	"github.com/aquilax/go-perlin"
)

// NebulaBlob is a large translucent cloud.
type NebulaBlob struct {
	Pos    Point3d
	Radius float64
	Col    color.RGBA
	Alpha  float64
	phase  float64
}

var nebulaTints = []color.RGBA{
	{R: 120, G: 40, B: 160, A: 255},
	{R: 40, G: 80, B: 170, A: 255},
	{R: 160, G: 50, B: 90, A: 255},
	{R: 40, G: 140, B: 140, A: 255},
}

// Nebula is a small pool of slowly pulsing clouds that move at half the
// flight speed.
type Nebula struct {
	blobs []NebulaBlob
	cfg   NebulaConfig
	rng   *rand.Rand
	noise *perlin.Perlin
	t     float64
}

func NewNebula(cfg NebulaConfig, rng *rand.Rand, seed int64) *Nebula {
	n := &Nebula{
		blobs: make([]NebulaBlob, cfg.Count),
		cfg:   cfg,
		rng:   rng,
		noise: perlin.NewPerlin(1.5, 2, 2, seed),
	}
	for i := range n.blobs {
		n.spawn(i, cfg.Near+rng.Float64()*(cfg.Far-cfg.Near))
	}
	return n
}

func (n *Nebula) Blobs() []NebulaBlob {
	return n.blobs
}

func (n *Nebula) spawn(i int, z float64) {
	b := &n.blobs[i]
	b.Pos = Point3d{
		X: (n.rng.Float64()*2 - 1) * n.cfg.Spread,
		Y: (n.rng.Float64()*2 - 1) * n.cfg.Spread / 2,
		Z: z,
	}
	b.Radius = n.cfg.MinRadius + n.rng.Float64()*(n.cfg.MaxRadius-n.cfg.MinRadius)
	b.Col = nebulaTints[n.rng.IntN(len(nebulaTints))]
	b.phase = n.rng.Float64() * 50
}

// Update drifts the clouds and recomputes their alpha. Warp brightens them.
func (n *Nebula) Update(dt, speed, warp float64) {
	n.t += dt
	for i := range n.blobs {
		b := &n.blobs[i]
		b.Pos.Z -= speed * 0.5 * dt
		if b.Pos.Z < n.cfg.Near {
			n.spawn(i, n.cfg.Far)
		} else if b.Pos.Z > n.cfg.Far {
			n.spawn(i, n.cfg.Near)
		}
		pulse := 0.5 + n.noise.Noise1D(n.t*0.3+b.phase)
		a := 0.08 + 0.06*pulse
		a *= 1 + warp
		if a > 0.4 {
			a = 0.4
		}
		if a < 0 {
			a = 0
		}
		b.Alpha = a
	}
}

// Render draws each cloud as a few concentric translucent discs, farthest
// cloud first.
func (n *Nebula) Render(s Surface, cam *Camera, pr Projector) {
	type item struct {
		proj Projected
		idx  int
	}
	items := make([]item, 0, len(n.blobs))
	vm := cam.ViewMatrix()
	for i, b := range n.blobs {
		p, ok := pr.Project(vm.Transform(b.Pos))
		if !ok {
			continue
		}
		items = append(items, item{p, i})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].proj.Depth > items[j].proj.Depth
	})
	for _, it := range items {
		b, p := n.blobs[it.idx], it.proj
		r := b.Radius * p.Factor
		for k := 3; k >= 1; k-- {
			s.FillCircle(p.X, p.Y, r*float64(k)/3, withAlpha(b.Col, b.Alpha*p.Fade))
		}
	}
}

package starflight

import (
	"image/color"
	"math"
)

var groundColor = color.RGBA{R: 40, G: 160, B: 200, A: 255}

// GroundGrid is a scrolling perspective grid below the flight path.
type GroundGrid struct {
	cfg    GroundConfig
	scroll float64
}

func NewGroundGrid(cfg GroundConfig) *GroundGrid {
	return &GroundGrid{cfg: cfg}
}

// Update scrolls the cross lines with the flight speed.
func (g *GroundGrid) Update(dt, speed float64) {
	if g.cfg.Spacing <= 0 {
		return
	}
	g.scroll = math.Mod(g.scroll+speed*dt, g.cfg.Spacing)
	if g.scroll < 0 {
		g.scroll += g.cfg.Spacing
	}
}

func (g *GroundGrid) Scroll() float64 {
	return g.scroll
}

func (g *GroundGrid) Render(s Surface, cam *Camera, pr Projector) {
	if !g.cfg.Enabled || g.cfg.Spacing <= 0 || g.cfg.Lines <= 0 {
		return
	}
	sp := g.cfg.Spacing
	depth := sp * float64(g.cfg.Lines) * 2
	cx := math.Round(cam.Position.X/sp) * sp
	half := sp * float64(g.cfg.Lines) / 2

	vm := cam.ViewMatrix()
	line := func(a, b Point3d) {
		pa, okA := pr.Project(vm.Transform(a))
		pb, okB := pr.Project(vm.Transform(b))
		if !okA || !okB {
			return
		}
		fade := (pa.Fade + pb.Fade) / 2
		s.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, 1, withAlpha(groundColor, fade*0.6))
	}

	for i := 0; i <= g.cfg.Lines; i++ {
		x := cx - half + float64(i)*sp
		line(Point3d{x, g.cfg.Y, 0}, Point3d{x, g.cfg.Y, depth})
	}
	for z := sp - g.scroll; z <= depth; z += sp {
		line(Point3d{cx - half, g.cfg.Y, z}, Point3d{cx + half, g.cfg.Y, z})
	}
}

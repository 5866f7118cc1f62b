package starflight

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// minDivisor is the smallest z+Focal the projector will divide by.
const minDivisor = 1e-6

// Projector maps camera-space points to the screen with a fixed focal length.
type Projector struct {
	CenterX float64
	CenterY float64
	Focal   float64
	// Near is the smallest allowed z+Focal. Points at or below it are behind
	// the eye and are excluded.
	Near float64
	// Far excludes points deeper than it. Zero disables the far clip.
	Far float64
}

// Projected is a point on the screen with the depth data used for sorting
// and sizing.
type Projected struct {
	X      float64
	Y      float64
	Depth  float64
	Factor float64
	Fade   float64
}

func NewProjector(width, height int, focal, near, far float64) Projector {
	return Projector{
		CenterX: float64(width) / 2,
		CenterY: float64(height) / 2,
		Focal:   focal,
		Near:    near,
		Far:     far,
	}
}

// Project applies the perspective divide. ok is false when the point is
// excluded from this frame.
func (pr Projector) Project(p Point3d) (Projected, bool) {
	d := p.Z + pr.Focal
	near := pr.Near
	if near < minDivisor {
		near = minDivisor
	}
	if d <= near {
		return Projected{}, false
	}
	if pr.Far > 0 && p.Z > pr.Far {
		return Projected{}, false
	}
	f := pr.Focal / d
	fade := 1.0
	if pr.Far > 0 {
		fade = mgl64.Clamp(1-p.Z/pr.Far, 0.1, 1)
	}
	return Projected{
		X:      pr.CenterX + p.X*f,
		Y:      pr.CenterY + p.Y*f,
		Depth:  p.Z,
		Factor: f,
		Fade:   fade,
	}, true
}

func (p Projected) Point() Vector2 {
	return Vector2{X: p.X, Y: p.Y}
}

// Shifted returns a copy of the projector with its centre moved by off.
func (pr Projector) Shifted(off Vector2) Projector {
	c := Vector2{X: pr.CenterX, Y: pr.CenterY}.Add(off)
	pr.CenterX, pr.CenterY = c.X, c.Y
	return pr
}

// nearClipMargin keeps clipped vertices strictly inside the projectable range.
const nearClipMargin = 0.01

// NearPlane is the camera-space plane faces are clipped against before
// projection. Everything on its front side projects.
func (pr Projector) NearPlane() Plane {
	near := math.Max(pr.Near, minDivisor)
	return NewPlaneFromPoint(Point3d{Z: near - pr.Focal + nearClipMargin}, NewVector3(0, 0, 1))
}

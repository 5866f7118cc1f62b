package starflight

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	defaultMinScale = 0.1
	defaultMaxScale = 3.0
	ambientLight    = 0.2
)

var wireColor = color.RGBA{R: 120, G: 255, B: 160, A: 255}

// Object3d is one placed instance of a shared Shape.
type Object3d struct {
	Shape    *Shape
	Angles   Vector3
	Spin     Vector3
	Position Point3d
	Scale    float64
	// Glow multiplies the lit face colour.
	Glow      float64
	Wireframe bool

	baseScale float64
	minScale  float64
	maxScale  float64
}

func NewObject3d(shape *Shape, pos Point3d, scale float64) *Object3d {
	return &Object3d{
		Shape:     shape,
		Position:  pos,
		Scale:     scale,
		Glow:      1,
		baseScale: scale,
		minScale:  defaultMinScale,
		maxScale:  defaultMaxScale,
	}
}

// SetScaleLimits bounds ScaleBy to [min, max] times the initial scale.
func (o *Object3d) SetScaleLimits(min, max float64) {
	o.minScale, o.maxScale = min, max
	o.Scale = mgl64.Clamp(o.Scale, o.baseScale*min, o.baseScale*max)
}

// Rotate adds delta radians about one axis, keeping the angle in [0, 2π).
func (o *Object3d) Rotate(axis int, delta float64) {
	switch axis {
	case ROTX:
		o.Angles.X = WrapAngle(o.Angles.X + delta)
	case ROTY:
		o.Angles.Y = WrapAngle(o.Angles.Y + delta)
	case ROTZ:
		o.Angles.Z = WrapAngle(o.Angles.Z + delta)
	}
}

// ScaleBy multiplies the scale by factor within the configured limits.
func (o *Object3d) ScaleBy(factor float64) {
	o.Scale = mgl64.Clamp(o.Scale*factor, o.baseScale*o.minScale, o.baseScale*o.maxScale)
}

// Update applies the fixed angular velocity.
func (o *Object3d) Update(dt float64) {
	if o.Spin.X != 0 {
		o.Rotate(ROTX, o.Spin.X*dt)
	}
	if o.Spin.Y != 0 {
		o.Rotate(ROTY, o.Spin.Y*dt)
	}
	if o.Spin.Z != 0 {
		o.Rotate(ROTZ, o.Spin.Z*dt)
	}
}

func (o *Object3d) RotationMatrix() Matrix {
	return RotationXYZ(o.Angles.X, o.Angles.Y, o.Angles.Z)
}

// Matrix maps shape space to world space: scale, rotate X then Y then Z,
// then translate.
func (o *Object3d) Matrix() Matrix {
	m := o.RotationMatrix().MultiplyBy(ScaleMatrix(o.Scale))
	return TransMatrix(o.Position.X, o.Position.Y, o.Position.Z).MultiplyBy(m)
}

func (o *Object3d) WorldVertices() []Point3d {
	m := o.Matrix()
	out := make([]Point3d, len(o.Shape.Vertices))
	for i, v := range o.Shape.Vertices {
		out[i] = m.Transform(v)
	}
	return out
}

// ProjectAll projects every face of the object, or every edge in wireframe
// mode. Faces crossing the near plane are clipped to the part in front of the
// eye; faces with a vertex past the far clip are skipped. Each polygon carries
// the camera-space depth of its centroid.
func (o *Object3d) ProjectAll(cam *Camera, pr Projector, light Vector3) []Polygon {
	world := o.WorldVertices()
	vm := cam.ViewMatrix()
	view := make([]Point3d, len(world))
	for i, p := range world {
		view[i] = vm.Transform(p)
	}
	near := pr.NearPlane()
	if o.Wireframe {
		return o.projectEdges(view, near, pr)
	}

	polys := make([]Polygon, 0, len(o.Shape.Faces))
faces:
	for _, f := range o.Shape.Faces {
		pts3 := make([]Point3d, len(f.Indices))
		clip := false
		for i, idx := range f.Indices {
			pts3[i] = view[idx]
			if near.PointOnPlane(pts3[i]) < 0 {
				clip = true
			}
		}
		if clip {
			if pts3 = near.ClipFront(pts3); pts3 == nil {
				continue
			}
		}
		pts := make([]Vector2, len(pts3))
		for i, p := range pts3 {
			pp, ok := pr.Project(p)
			if !ok {
				continue faces
			}
			pts[i] = pp.Point()
		}
		fill := Shade(f.Col, f.Normal(world), light, ambientLight, o.Glow)
		polys = append(polys, Polygon{
			Points:  pts,
			Depth:   Centroid(pts3).Z,
			Fill:    fill,
			Outline: darken(fill),
		})
	}
	return polys
}

// projectEdges turns the shape's edge list into two point wire polygons.
// An edge crossing the near plane is shortened to its visible part.
func (o *Object3d) projectEdges(view []Point3d, near Plane, pr Projector) []Polygon {
	col := color.RGBA{
		R: scaleChannel(wireColor.R, o.Glow),
		G: scaleChannel(wireColor.G, o.Glow),
		B: scaleChannel(wireColor.B, o.Glow),
		A: wireColor.A,
	}
	polys := make([]Polygon, 0, len(o.Shape.Edges))
	for _, e := range o.Shape.Edges {
		a, b := view[e[0]], view[e[1]]
		da, db := near.PointOnPlane(a), near.PointOnPlane(b)
		switch {
		case da < 0 && db < 0:
			continue
		case da < 0 || db < 0:
			p, ok := near.LineIntersect(a, b)
			if !ok {
				continue
			}
			if da < 0 {
				a = p
			} else {
				b = p
			}
		}
		pa, okA := pr.Project(a)
		pb, okB := pr.Project(b)
		if !okA || !okB {
			continue
		}
		polys = append(polys, Polygon{
			Points: []Vector2{pa.Point(), pb.Point()},
			Depth:  (a.Z + b.Z) / 2,
			Fill:   col,
			Wire:   true,
		})
	}
	return polys
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

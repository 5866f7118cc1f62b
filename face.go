package starflight

import (
	"image/color"
	"math"
)

// Face is a polygon over a shape's vertex list.
type Face struct {
	Indices []int
	Col     color.RGBA
}

// Normal computes the unit normal of the first three points.
func (f Face) Normal(pts []Point3d) Vector3 {
	if len(f.Indices) < 3 {
		return NewVector3(0, 0, 1)
	}
	p1, p2, p3 := pts[f.Indices[0]], pts[f.Indices[1]], pts[f.Indices[2]]

	u := NewVector3(p2.X-p1.X, p2.Y-p1.Y, p2.Z-p1.Z)
	v := NewVector3(p3.X-p2.X, p3.Y-p2.Y, p3.Z-p2.Z)
	n := Cross(u, v)
	if n.Len() == 0 {
		return NewVector3(0, 0, 1)
	}
	return n.Normalize()
}

// Shade lights a colour with a flat directional light. Faces are treated as
// two-sided so winding does not matter.
func Shade(col color.RGBA, normal, light Vector3, ambient, glow float64) color.RGBA {
	i := ambient + (1-ambient)*math.Abs(normal.Dot(light.Normalize()))
	i *= glow
	return color.RGBA{
		R: scaleChannel(col.R, i),
		G: scaleChannel(col.G, i),
		B: scaleChannel(col.B, i),
		A: col.A,
	}
}

func scaleChannel(c uint8, f float64) uint8 {
	v := float64(c) * f
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// withAlpha scales every channel of the premultiplied colour by a in [0, 1].
func withAlpha(col color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: scaleChannel(col.R, a),
		G: scaleChannel(col.G, a),
		B: scaleChannel(col.B, a),
		A: scaleChannel(col.A, a),
	}
}

package starflight

import "math"

// Plane is the set of points where A*x + B*y + C*z + D = 0. The normal
// (A, B, C) points to the front side.
type Plane struct {
	A, B, C, D float64
}

// planeThickness snaps points this close to the plane onto it.
const planeThickness = 1e-9

func NewPlaneFromPoint(p Point3d, normal Vector3) Plane {
	pl := Plane{
		A: normal.X,
		B: normal.Y,
		C: normal.Z,
	}
	pl.D = -(pl.A*p.X + pl.B*p.Y + pl.C*p.Z)
	return pl
}

// PointOnPlane is the signed distance of p scaled by the normal's length.
// It is zero for points on the plane.
func (pl Plane) PointOnPlane(p Point3d) float64 {
	num := pl.A*p.X + pl.B*p.Y + pl.C*p.Z + pl.D
	if math.Abs(num) < planeThickness {
		return 0
	}
	return num
}

// LIntersect reports whether the segment p1-p2 strictly crosses the plane.
func (pl Plane) LIntersect(p1, p2 Point3d) bool {
	a := pl.PointOnPlane(p1)
	b := pl.PointOnPlane(p2)
	if a == 0 || b == 0 {
		return false
	}
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}

// LineIntersect returns where the segment p1-p2 crosses the plane.
func (pl Plane) LineIntersect(p1, p2 Point3d) (Point3d, bool) {
	if !pl.LIntersect(p1, p2) {
		return Point3d{}, false
	}
	denom := pl.A*(p2.X-p1.X) + pl.B*(p2.Y-p1.Y) + pl.C*(p2.Z-p1.Z)
	if denom == 0 {
		return Point3d{}, false
	}
	t := -(pl.A*p1.X + pl.B*p1.Y + pl.C*p1.Z + pl.D) / denom
	return Point3d{
		X: p1.X + (p2.X-p1.X)*t,
		Y: p1.Y + (p2.Y-p1.Y)*t,
		Z: p1.Z + (p2.Z-p1.Z)*t,
	}, true
}

// ClipFront cuts a convex polygon at the plane and returns the part on the
// front side, or nil when less than a triangle remains.
func (pl Plane) ClipFront(pts []Point3d) []Point3d {
	out := make([]Point3d, 0, len(pts)+1)
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		if pl.PointOnPlane(a) >= 0 {
			out = append(out, a)
		}
		if p, ok := pl.LineIntersect(a, b); ok {
			out = append(out, p)
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

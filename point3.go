package starflight

// Point3d is a position in world or camera space.
type Point3d struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3d(x, y, z float64) Point3d {
	return Point3d{
		X: x,
		Y: y,
		Z: z,
	}
}

func (p Point3d) Add(o Point3d) Point3d {
	return Point3d{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

func (p Point3d) Sub(o Point3d) Point3d {
	return Point3d{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

func (p Point3d) Scale(s float64) Point3d {
	return Point3d{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Move advances the point along v for dt seconds.
func (p Point3d) Move(v Vector3, dt float64) Point3d {
	return Point3d{X: p.X + v.X*dt, Y: p.Y + v.Y*dt, Z: p.Z + v.Z*dt}
}

// Centroid returns the average of the points, or the origin for an empty slice.
func Centroid(pts []Point3d) Point3d {
	if len(pts) == 0 {
		return Point3d{}
	}
	var c Point3d
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
	}
	return c.Scale(1 / float64(len(pts)))
}

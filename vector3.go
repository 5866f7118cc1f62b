package starflight

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a direction or velocity.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// FromVec converts a mathgl vector.
func FromVec(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vector3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) Len() float64 {
	return v.Vec().Len()
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.Vec().Dot(o.Vec())
}

// Normalize returns the unit vector, or v unchanged when it has zero length.
func (v Vector3) Normalize() Vector3 {
	if v.Len() == 0 {
		return v
	}
	return FromVec(v.Vec().Normalize())
}

// Cross calculates the cross product of two vectors.
func Cross(a, b Vector3) Vector3 {
	return FromVec(a.Vec().Cross(b.Vec()))
}

// WrapAngle maps an angle into [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// tiny negative angles round up to exactly 2π
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

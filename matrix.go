package starflight

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 transform applied to row vectors: p' = p * M, with the
// translation held in row 3.
type Matrix [4][4]float64

const (
	ROTX = 0
	ROTY = 1
	ROTZ = 2
)

func IdentMatrix() Matrix {
	var m Matrix
	m[0][0], m[1][1], m[2][2], m[3][3] = 1.0, 1.0, 1.0, 1.0
	return m
}

func NewRotationMatrix(aRotation int, theta float64) Matrix {
	m := IdentMatrix()
	c, s := math.Cos(theta), math.Sin(theta)
	switch aRotation {
	case ROTX:
		m[1][1] = c
		m[2][1] = -s
		m[1][2] = s
		m[2][2] = c
	case ROTY:
		m[0][0] = c
		m[2][0] = s
		m[0][2] = -s
		m[2][2] = c
	case ROTZ:
		m[0][0] = c
		m[1][0] = -s
		m[0][1] = s
		m[1][1] = c
	}
	return m
}

// RotationXYZ rotates about X, then Y, then Z.
func RotationXYZ(ax, ay, az float64) Matrix {
	rx := NewRotationMatrix(ROTX, ax)
	ry := NewRotationMatrix(ROTY, ay)
	rz := NewRotationMatrix(ROTZ, az)
	return rz.MultiplyBy(ry.MultiplyBy(rx))
}

func TransMatrix(x, y, z float64) Matrix {
	m := IdentMatrix()
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
	return m
}

func ScaleMatrix(s float64) Matrix {
	m := IdentMatrix()
	m[0][0], m[1][1], m[2][2] = s, s, s
	return m
}

// MultiplyBy returns the transform that applies a first and then m.
func (m Matrix) MultiplyBy(a Matrix) Matrix {
	var out Matrix
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			out[x][y] = m[0][y]*a[x][0] +
				m[1][y]*a[x][1] +
				m[2][y]*a[x][2] +
				m[3][y]*a[x][3]
		}
	}
	return out
}

func (m Matrix) Transform(p Point3d) Point3d {
	return Point3d{
		X: m[0][0]*p.X + m[1][0]*p.Y + m[2][0]*p.Z + m[3][0],
		Y: m[0][1]*p.X + m[1][1]*p.Y + m[2][1]*p.Z + m[3][1],
		Z: m[0][2]*p.X + m[1][2]*p.Y + m[2][2]*p.Z + m[3][2],
	}
}

// RotateVector3 applies only the 3x3 part of the matrix.
func (m Matrix) RotateVector3(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		Y: m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		Z: m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

// ToMatrix converts a column-major mathgl matrix.
func ToMatrix(m mgl64.Mat4) Matrix {
	return Matrix{
		{m[0], m[1], m[2], m[3]},
		{m[4], m[5], m[6], m[7]},
		{m[8], m[9], m[10], m[11]},
		{m[12], m[13], m[14], m[15]},
	}
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, val := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", val))
		}
	}
	return sb.String()
}

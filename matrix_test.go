package starflight

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func pointsAlmostEqual(a, b Point3d) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestRotationMatchesMathgl(t *testing.T) {
	testCases := []struct {
		name string
		axis int
		mgl  func(float64) mgl64.Mat4
	}{
		{"x", ROTX, mgl64.HomogRotate3DX},
		{"y", ROTY, mgl64.HomogRotate3DY},
		{"z", ROTZ, mgl64.HomogRotate3DZ},
	}
	p := NewPoint3d(1, 2, 3)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, theta := range []float64{0, 0.3, math.Pi / 2, 2.5} {
				got := NewRotationMatrix(tc.axis, theta).Transform(p)
				want := ToMatrix(tc.mgl(theta)).Transform(p)
				if !pointsAlmostEqual(got, want) {
					t.Errorf("theta %v: Transform() = %v, want %v", theta, got, want)
				}
			}
		})
	}
}

func TestMultiplyByAppliesArgumentFirst(t *testing.T) {
	rot := NewRotationMatrix(ROTY, math.Pi/2)
	trans := TransMatrix(10, 0, 0)

	// translate then rotate: (10,0,0) rotated a quarter turn about Y
	got := rot.MultiplyBy(trans).Transform(Point3d{})
	want := NewPoint3d(0, 0, -10)
	if !pointsAlmostEqual(got, want) {
		t.Errorf("rot.MultiplyBy(trans) = %v, want %v", got, want)
	}

	// rotate then translate leaves the origin at the translation
	got = trans.MultiplyBy(rot).Transform(Point3d{})
	want = NewPoint3d(10, 0, 0)
	if !pointsAlmostEqual(got, want) {
		t.Errorf("trans.MultiplyBy(rot) = %v, want %v", got, want)
	}
}

func TestRotationXYZOrder(t *testing.T) {
	ax, ay, az := 0.4, 1.1, -0.7
	p := NewPoint3d(3, -2, 5)

	step := NewRotationMatrix(ROTX, ax).Transform(p)
	step = NewRotationMatrix(ROTY, ay).Transform(step)
	step = NewRotationMatrix(ROTZ, az).Transform(step)

	got := RotationXYZ(ax, ay, az).Transform(p)
	if !pointsAlmostEqual(got, step) {
		t.Errorf("RotationXYZ() = %v, want %v", got, step)
	}
}

func TestRotateVector3IgnoresTranslation(t *testing.T) {
	m := TransMatrix(5, 5, 5).MultiplyBy(NewRotationMatrix(ROTZ, math.Pi))
	got := m.RotateVector3(NewVector3(1, 0, 0))
	if !almostEqual(got.X, -1) || !almostEqual(got.Y, 0) || !almostEqual(got.Z, 0) {
		t.Errorf("RotateVector3() = %v, want (-1, 0, 0)", got)
	}
}

func TestScaleMatrix(t *testing.T) {
	got := ScaleMatrix(2).Transform(NewPoint3d(1, -2, 3))
	want := NewPoint3d(2, -4, 6)
	if got != want {
		t.Errorf("ScaleMatrix(2) = %v, want %v", got, want)
	}
}

func TestWrapAngle(t *testing.T) {
	testCases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-1e-17, 0},
		{-2 * math.Pi, 0},
	}
	for _, tc := range testCases {
		got := WrapAngle(tc.in)
		if !almostEqual(got, tc.want) {
			t.Errorf("WrapAngle(%v) = %v, want %v", tc.in, got, tc.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("WrapAngle(%v) = %v, outside [0, 2π)", tc.in, got)
		}
	}
}

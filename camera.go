package starflight

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera holds the eye position, the point it eases toward and a short-lived
// screen shake.
type Camera struct {
	Position Point3d
	Target   Point3d

	pitch float64
	yaw   float64
	rot   Matrix

	// view caches ViewMatrix for viewPos until the position or angles change.
	view      Matrix
	viewPos   Point3d
	viewValid bool

	followRate float64
	boundsX    float64
	boundsY    float64

	shake shake
}

type shake struct {
	intensity float64
	duration  float64
	remaining float64
	maxOffset float64
	offset    Vector2
}

// NewCamera creates a camera at pos. Target movement is clamped to
// ±boundsX and ±boundsY; zero disables the clamp on that axis.
func NewCamera(pos Point3d, followRate, boundsX, boundsY float64) *Camera {
	return &Camera{
		Position:   pos,
		Target:     pos,
		rot:        IdentMatrix(),
		followRate: followRate,
		boundsX:    boundsX,
		boundsY:    boundsY,
	}
}

// AddAngle tilts the view. Positive pitch looks down, positive yaw turns right.
func (c *Camera) AddAngle(pitch, yaw float64) {
	c.pitch += pitch
	c.yaw += yaw

	rotX := mgl64.HomogRotate3DX(c.pitch)
	rotY := mgl64.HomogRotate3DY(-c.yaw)
	c.rot = ToMatrix(rotX.Mul4(rotY))
	c.viewValid = false
}

func (c *Camera) Angles() (pitch, yaw float64) {
	return c.pitch, c.yaw
}

// ViewMatrix maps world space into camera space.
func (c *Camera) ViewMatrix() Matrix {
	if !c.viewValid || c.viewPos != c.Position {
		c.view = c.rot.MultiplyBy(TransMatrix(-c.Position.X, -c.Position.Y, -c.Position.Z))
		c.viewPos = c.Position
		c.viewValid = true
	}
	return c.view
}

func (c *Camera) ToView(p Point3d) Point3d {
	return c.ViewMatrix().Transform(p)
}

// MoveTarget shifts the follow target, keeping it inside the bounds.
func (c *Camera) MoveTarget(dx, dy float64) {
	c.Target.X += dx
	c.Target.Y += dy
	if c.boundsX > 0 {
		c.Target.X = mgl64.Clamp(c.Target.X, -c.boundsX, c.boundsX)
	}
	if c.boundsY > 0 {
		c.Target.Y = mgl64.Clamp(c.Target.Y, -c.boundsY, c.boundsY)
	}
}

// Follow eases the position toward the target and returns how far it moved.
func (c *Camera) Follow(dt float64) Vector3 {
	t := c.followRate * dt
	if t > 1 || c.followRate <= 0 {
		t = 1
	}
	old := c.Position
	c.Position = Point3d{
		X: lerp(c.Position.X, c.Target.X, t),
		Y: lerp(c.Position.Y, c.Target.Y, t),
		Z: lerp(c.Position.Z, c.Target.Z, t),
	}
	d := c.Position.Sub(old)
	return Vector3{X: d.X, Y: d.Y, Z: d.Z}
}

// Shake starts a screen shake, replacing any shake already running.
func (c *Camera) Shake(intensity, duration, maxOffset float64) {
	if duration <= 0 {
		return
	}
	c.shake = shake{
		intensity: intensity,
		duration:  duration,
		remaining: duration,
		maxOffset: maxOffset,
	}
}

func (c *Camera) Shaking() bool {
	return c.shake.remaining > 0
}

// UpdateShake decays the shake and picks this frame's offset.
func (c *Camera) UpdateShake(dt float64, rng *rand.Rand) {
	if c.shake.remaining <= 0 {
		c.shake.offset = Vector2{}
		return
	}
	c.shake.remaining -= dt
	if c.shake.remaining <= 0 {
		c.shake.remaining = 0
		c.shake.offset = Vector2{}
		return
	}
	mag := c.shake.intensity * c.shake.maxOffset * (c.shake.remaining / c.shake.duration)
	c.shake.offset = NewVectorFromAngle(rng.Float64() * 2 * math.Pi).Mult(mag * rng.Float64())
}

func (c *Camera) ShakeOffset() Vector2 {
	return c.shake.offset
}

package starflight

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	background   = color.RGBA{R: 4, G: 4, B: 14, A: 255}
	exhaustColor = color.RGBA{R: 255, G: 150, B: 50, A: 255}
)

// Flight is the ship's speed and warp state.
type Flight struct {
	Speed float64
	Warp  bool
	// WarpFactor eases between 0 and 1 when warp toggles.
	WarpFactor float64
}

// SimState is everything one frame of the demo reads and mutates.
type SimState struct {
	Config    Config
	Camera    *Camera
	Projector Projector
	Scene     *Scene
	Ship      *Object3d
	Stars     *Starfield
	Nebula    *Nebula
	Asteroids *AsteroidField
	Ground    *GroundGrid
	Particles *ParticlePool
	Emitters  []*Emitter
	Flight    Flight
	// Cues holds the sounds triggered by the last Update.
	Cues    []SoundCue
	Impacts int
	Time    float64

	rng        *rand.Rand
	shipOffset Point3d
	humStarted bool
}

// NewSimState builds the starting scene: a cube, a pyramid and the ship
// with two engine emitters, plus the background layers.
func NewSimState(cfg Config, rng *rand.Rand) (*SimState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	policy, err := ParseDropPolicy(cfg.Particles.DropPolicy)
	if err != nil {
		return nil, err
	}
	seed := int64(cfg.Seed)

	s := &SimState{
		Config: cfg,
		Camera: NewCamera(Point3d{}, cfg.Camera.FollowRate, cfg.Camera.BoundsX, cfg.Camera.BoundsY),
		Projector: NewProjector(cfg.Window.Width, cfg.Window.Height,
			cfg.Projection.Focal, cfg.Projection.Near, cfg.Projection.Far),
		Scene:      NewScene(NewVector3(-0.4, -0.6, 0.7)),
		Stars:      NewStarfield(cfg.Stars, rng),
		Nebula:     NewNebula(cfg.Nebula, rng, seed),
		Asteroids:  NewAsteroidField(cfg.Asteroids, rng, seed+1),
		Ground:     NewGroundGrid(cfg.Ground),
		Particles:  NewParticlePool(cfg.Particles.Max, policy, rng),
		rng:        rng,
		shipOffset: Point3d{X: 0, Y: 80, Z: 300},
	}
	s.Camera.AddAngle(cfg.Camera.Pitch, 0)

	cube := NewObject3d(NewCube(1), Point3d{X: -350, Y: -60, Z: 700}, 120)
	cube.Spin = Vector3{X: 0.9, Y: 1.2, Z: 0.5}
	pyramid := NewObject3d(NewPyramid(1), Point3d{X: 350, Y: -60, Z: 700}, 140)
	pyramid.Spin = Vector3{Y: 0.8}
	s.Ship = NewObject3d(NewShip(1), s.shipOffset, 60)

	for _, o := range []*Object3d{cube, pyramid, s.Ship} {
		o.SetScaleLimits(cfg.Objects.MinScale, cfg.Objects.MaxScale)
		o.Wireframe = cfg.Objects.Wireframe
		s.Scene.AddObject(o)
	}

	exhaust := Distribution{
		Velocity: Vector3{Z: -120},
		Spread:   Vector3{X: 15, Y: 15, Z: 30},
		SizeMin:  3,
		SizeMax:  7,
		LifeMin:  0.3,
		LifeMax:  0.8,
		Col:      exhaustColor,
	}
	for _, x := range []float64{-0.15, 0.15} {
		s.Emitters = append(s.Emitters, &Emitter{
			Parent:  s.Ship,
			Offset:  Point3d{X: x, Y: 0, Z: -0.8},
			Rate:    cfg.Particles.Rate / 2,
			Dist:    exhaust,
			Enabled: true,
		})
	}
	return s, nil
}

// Update advances the simulation by dt seconds with one frame of input.
func Update(s *SimState, dt float64, in Input) {
	s.Cues = s.Cues[:0]
	s.Time += dt
	if !s.humStarted {
		s.Cues = append(s.Cues, CueEngineHum)
		s.humStarted = true
	}
	cfg := s.Config

	s.applyObjectInput(dt, in)
	s.updateFlight(dt, in)

	var dx, dy float64
	if in.Held.Has(ActStrafeLeft) {
		dx -= cfg.Flight.StrafeSpeed * dt
	}
	if in.Held.Has(ActStrafeRight) {
		dx += cfg.Flight.StrafeSpeed * dt
	}
	if in.Held.Has(ActRise) {
		dy -= cfg.Flight.VerticalSpeed * dt
	}
	if in.Held.Has(ActFall) {
		dy += cfg.Flight.VerticalSpeed * dt
	}
	s.Camera.MoveTarget(dx, dy)
	moved := s.Camera.Follow(dt)
	s.Camera.UpdateShake(dt, s.rng)

	speed := s.Flight.Speed
	s.Stars.Update(dt, speed, s.Flight.WarpFactor)
	s.Stars.Shift(moved.X, moved.Y)
	s.Nebula.Update(dt, speed, s.Flight.WarpFactor)
	s.Ground.Update(dt, speed)
	if n := s.Asteroids.Update(dt, speed, s.Camera.Position); n > 0 {
		s.Impacts += n
		s.Cues = append(s.Cues, CueImpact)
		s.Camera.Shake(cfg.Shake.ImpactIntensity, cfg.Shake.Duration, cfg.Shake.MaxOffset)
	}

	s.Ship.Position = s.Camera.Position.Add(s.shipOffset)
	s.Ship.Glow = 0.9 + 0.1*math.Sin(s.Time*3)
	s.Scene.Update(dt)

	intensity := mgl64.Clamp(math.Abs(speed)/cfg.Flight.MaxSpeed, 0.2, 2)
	for _, e := range s.Emitters {
		e.Update(dt, intensity, s.Particles)
	}
	s.Particles.Update(dt, Vector3{Z: -speed})
}

func (s *SimState) applyObjectInput(dt float64, in Input) {
	if in.Pressed.Has(ActCycleObject) {
		s.Scene.CycleActive()
	}
	o := s.Scene.Active()
	if o == nil {
		return
	}
	r := s.Config.Objects.RotateSpeed * dt
	if in.Held.Has(ActRotateUp) {
		o.Rotate(ROTX, -r)
	}
	if in.Held.Has(ActRotateDown) {
		o.Rotate(ROTX, r)
	}
	if in.Held.Has(ActRotateLeft) {
		o.Rotate(ROTY, -r)
	}
	if in.Held.Has(ActRotateRight) {
		o.Rotate(ROTY, r)
	}
	f := 1 + s.Config.Objects.ScaleRate*dt
	if in.Held.Has(ActScaleUp) {
		o.ScaleBy(f)
	}
	if in.Held.Has(ActScaleDown) {
		o.ScaleBy(1 / f)
	}
}

func (s *SimState) updateFlight(dt float64, in Input) {
	cfg := s.Config.Flight
	f := &s.Flight

	if in.Pressed.Has(ActWarp) {
		f.Warp = !f.Warp
		if f.Warp {
			s.Cues = append(s.Cues, CueWarp)
			sh := s.Config.Shake
			s.Camera.Shake(sh.Intensity, sh.Duration, sh.MaxOffset)
		}
	}

	accel := cfg.Accel
	var target float64
	switch {
	case in.Held.Has(ActReverse):
		target = -cfg.MaxSpeed / 2
	case f.Warp:
		target = cfg.WarpSpeed
		accel *= cfg.WarpSpeed / cfg.MaxSpeed
	case in.Held.Has(ActThrust):
		target = cfg.MaxSpeed
	default:
		accel = cfg.Decel
	}
	if math.Abs(f.Speed) > cfg.MaxSpeed && !f.Warp {
		accel = math.Max(accel, cfg.Decel*cfg.WarpSpeed/cfg.MaxSpeed)
	}
	f.Speed = approach(f.Speed, target, accel*dt)

	warpTarget := 0.0
	if f.Warp {
		warpTarget = 1
	}
	f.WarpFactor = approach(f.WarpFactor, warpTarget, cfg.WarpRate*dt)
}

// approach moves v toward target by at most step.
func approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}

// EngineLevel is the engine hum volume for the current speed.
func (s *SimState) EngineLevel() float64 {
	return mgl64.Clamp(0.2+0.8*math.Abs(s.Flight.Speed)/s.Config.Flight.WarpSpeed, 0, 1)
}

func (s *SimState) Telemetry(paused bool, fps float64) Telemetry {
	return Telemetry{
		Speed:     s.Flight.Speed,
		MaxSpeed:  s.Config.Flight.WarpSpeed,
		Warp:      s.Flight.Warp,
		Paused:    paused,
		Particles: s.Particles.Len(),
		Impacts:   s.Impacts,
		FPS:       fps,
	}
}

// Render draws one frame far to near: background, nebulae, stars, ground,
// sorted polygons, particles, then the HUD.
func Render(s *SimState, surf Surface, t Telemetry) {
	pr := s.Projector.Shifted(s.Camera.ShakeOffset())

	surf.Fill(background)
	s.Nebula.Render(surf, s.Camera, pr)
	s.Stars.Render(surf, pr)
	s.Ground.Render(surf, s.Camera, pr)
	DrawPolygons(surf, s.Scene.CollectPolygons(s.Camera, pr, s.Asteroids.Objects()))
	s.Particles.Render(surf, s.Camera, pr)
	DrawHUD(surf, t, s.Projector.CenterX, s.Projector.CenterY)
}

package starflight

import (
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// AsteroidField keeps a fixed number of rocks streaming toward the camera.
type AsteroidField struct {
	rocks []*Object3d
	seeds []float64
	cfg   AsteroidConfig
	rng   *rand.Rand
	noise *perlin.Perlin
	t     float64
}

func NewAsteroidField(cfg AsteroidConfig, rng *rand.Rand, seed int64) *AsteroidField {
	f := &AsteroidField{
		rocks: make([]*Object3d, cfg.Count),
		seeds: make([]float64, cfg.Count),
		cfg:   cfg,
		rng:   rng,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
	for i := range f.rocks {
		f.rocks[i] = NewObject3d(NewAsteroidShape(rng, 1), Point3d{}, 1)
		f.seeds[i] = rng.Float64() * 100
		f.respawn(i, Point3d{}, f.cfg.Far*(0.2+0.8*rng.Float64()))
	}
	return f
}

func (f *AsteroidField) Objects() []*Object3d {
	return f.rocks
}

func (f *AsteroidField) respawn(i int, around Point3d, z float64) {
	r := f.rocks[i]
	r.Position = Point3d{
		X: around.X + (f.rng.Float64()*2-1)*f.cfg.Spread,
		Y: around.Y + (f.rng.Float64()*2-1)*f.cfg.Spread/2,
		Z: z,
	}
	scale := f.cfg.MinScale + f.rng.Float64()*(f.cfg.MaxScale-f.cfg.MinScale)
	r.Scale = scale
	r.Angles = Vector3{
		X: f.rng.Float64() * 2 * math.Pi,
		Y: f.rng.Float64() * 2 * math.Pi,
		Z: f.rng.Float64() * 2 * math.Pi,
	}
	r.Spin = Vector3{
		X: (f.rng.Float64()*2 - 1) * 1.2,
		Y: (f.rng.Float64()*2 - 1) * 1.2,
		Z: (f.rng.Float64()*2 - 1) * 1.2,
	}
}

// Update moves the rocks by speed*dt and lets them drift. A rock that passes
// the camera is recycled to the far distance; if it passed within the hit
// radius of the camera it counts as an impact.
func (f *AsteroidField) Update(dt, speed float64, cam Point3d) (impacts int) {
	f.t += dt
	for i, r := range f.rocks {
		r.Update(dt)
		s := f.seeds[i]
		r.Position.X += f.noise.Noise2D(f.t*0.2, s) * f.cfg.DriftSpeed * dt
		r.Position.Y += f.noise.Noise2D(s, f.t*0.2) * f.cfg.DriftSpeed * dt
		r.Position.Z -= speed * dt

		switch {
		case r.Position.Z < f.cfg.RecycleZ:
			if math.Hypot(r.Position.X-cam.X, r.Position.Y-cam.Y) < f.cfg.HitRadius+r.Scale/2 {
				impacts++
			}
			f.respawn(i, cam, f.cfg.Far)
		case r.Position.Z > f.cfg.Far*1.5:
			f.respawn(i, cam, f.cfg.Far)
		}
	}
	return impacts
}

package starflight

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"sort"
	"strings"
)

// Particle is a short lived point owned by a ParticlePool.
type Particle struct {
	Pos     Point3d
	Vel     Vector3
	Life    float64
	MaxLife float64
	Size    float64
	Col     color.RGBA
}

// Age is the time the particle has been alive.
func (p Particle) Age() float64 {
	return p.MaxLife - p.Life
}

// DropPolicy decides what a full pool does with new emissions.
type DropPolicy int

const (
	// DropNewest discards new emissions while the pool is full.
	DropNewest DropPolicy = iota
	// DropOldest replaces the oldest live particle.
	DropOldest
)

func (d DropPolicy) String() string {
	if d == DropOldest {
		return "oldest"
	}
	return "newest"
}

func ParseDropPolicy(s string) (DropPolicy, error) {
	switch strings.ToLower(s) {
	case "", "newest":
		return DropNewest, nil
	case "oldest":
		return DropOldest, nil
	}
	return DropNewest, fmt.Errorf("unknown particle drop policy %q", s)
}

// Distribution describes how emitted particles are randomised.
type Distribution struct {
	Velocity Vector3
	// Spread is the half range of the per-axis velocity jitter.
	Spread  Vector3
	SizeMin float64
	SizeMax float64
	LifeMin float64
	LifeMax float64
	Col     color.RGBA
}

// ParticlePool holds at most max particles.
type ParticlePool struct {
	particles []Particle
	max       int
	policy    DropPolicy
	rng       *rand.Rand
	dropped   int
	order     []int
}

func NewParticlePool(max int, policy DropPolicy, rng *rand.Rand) *ParticlePool {
	return &ParticlePool{
		particles: make([]Particle, 0, max),
		max:       max,
		policy:    policy,
		rng:       rng,
	}
}

func (p *ParticlePool) Len() int {
	return len(p.particles)
}

func (p *ParticlePool) Max() int {
	return p.max
}

func (p *ParticlePool) Policy() DropPolicy {
	return p.policy
}

// Dropped counts emissions discarded because the pool was full.
func (p *ParticlePool) Dropped() int {
	return p.dropped
}

func (p *ParticlePool) Particles() []Particle {
	return p.particles
}

// Emit adds up to n particles at origin and returns how many were accepted.
func (p *ParticlePool) Emit(origin Point3d, dist Distribution, n int) int {
	accepted := 0
	for i := 0; i < n; i++ {
		np := p.newParticle(origin, dist)
		if len(p.particles) < p.max {
			p.particles = append(p.particles, np)
			accepted++
			continue
		}
		if p.policy == DropNewest || p.max == 0 {
			p.dropped += n - i
			break
		}
		p.particles[p.oldest()] = np
		p.dropped++
		accepted++
	}
	return accepted
}

func (p *ParticlePool) oldest() int {
	idx, age := 0, -1.0
	for i, pt := range p.particles {
		if a := pt.Age(); a > age {
			idx, age = i, a
		}
	}
	return idx
}

func (p *ParticlePool) newParticle(origin Point3d, d Distribution) Particle {
	jitter := func(h float64) float64 {
		return (p.rng.Float64()*2 - 1) * h
	}
	life := d.LifeMin + p.rng.Float64()*(d.LifeMax-d.LifeMin)
	return Particle{
		Pos: origin,
		Vel: Vector3{
			X: d.Velocity.X + jitter(d.Spread.X),
			Y: d.Velocity.Y + jitter(d.Spread.Y),
			Z: d.Velocity.Z + jitter(d.Spread.Z),
		},
		Life:    life,
		MaxLife: life,
		Size:    d.SizeMin + p.rng.Float64()*(d.SizeMax-d.SizeMin),
		Col:     d.Col,
	}
}

// Update advances every particle by its velocity plus drift and removes the
// ones whose lifetime ran out.
func (p *ParticlePool) Update(dt float64, drift Vector3) {
	live := p.particles[:0]
	for _, pt := range p.particles {
		pt.Life -= dt
		if pt.Life <= 0 {
			continue
		}
		pt.Pos = pt.Pos.Move(pt.Vel.Add(drift), dt)
		live = append(live, pt)
	}
	p.particles = live
}

// Render draws the particles farthest first, shrinking and fading them as
// their lifetime runs out.
func (p *ParticlePool) Render(s Surface, cam *Camera, pr Projector) {
	type item struct {
		proj Projected
		idx  int
	}
	items := make([]item, 0, len(p.particles))
	vm := cam.ViewMatrix()
	for i, pt := range p.particles {
		pp, ok := pr.Project(vm.Transform(pt.Pos))
		if !ok {
			continue
		}
		items = append(items, item{pp, i})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].proj.Depth > items[j].proj.Depth
	})
	for _, it := range items {
		pt := p.particles[it.idx]
		ratio := pt.Life / pt.MaxLife
		r := pt.Size * ratio * it.proj.Factor
		if r < 0.5 {
			continue
		}
		s.FillCircle(it.proj.X, it.proj.Y, r, withAlpha(pt.Col, ratio))
	}
}

// Emitter spawns particles at a fixed offset from a parent object.
type Emitter struct {
	Parent *Object3d
	// Offset is in the parent's shape space.
	Offset  Point3d
	Rate    float64
	Dist    Distribution
	Enabled bool
	accum   float64
}

// Update emits rate*intensity particles per second into pool. The offset and
// base velocity follow the parent's rotation.
func (e *Emitter) Update(dt, intensity float64, pool *ParticlePool) int {
	if !e.Enabled || e.Parent == nil || intensity <= 0 {
		e.accum = 0
		return 0
	}
	e.accum += e.Rate * intensity * dt
	n := int(e.accum)
	if n == 0 {
		return 0
	}
	e.accum -= float64(n)

	origin := e.Parent.Matrix().Transform(e.Offset)
	d := e.Dist
	d.Velocity = e.Parent.RotationMatrix().RotateVector3(d.Velocity)
	return pool.Emit(origin, d, n)
}

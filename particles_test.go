package starflight

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDistribution() Distribution {
	return Distribution{
		Velocity: NewVector3(0, 0, 10),
		Spread:   NewVector3(1, 1, 1),
		SizeMin:  2,
		SizeMax:  4,
		LifeMin:  1,
		LifeMax:  2,
		Col:      color.RGBA{R: 255, G: 128, A: 255},
	}
}

func TestParticlePoolNeverExceedsMax(t *testing.T) {
	testCases := []struct {
		name     string
		policy   DropPolicy
		accepted int
		dropped  int
	}{
		{"drop newest", DropNewest, 0, 50},
		{"drop oldest", DropOldest, 50, 50},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pool := NewParticlePool(30, tc.policy, newTestRand())
			require.Equal(t, 30, pool.Emit(Point3d{}, testDistribution(), 30))
			pool.Update(0.1, Vector3{})
			require.Equal(t, 30, pool.Len())

			got := pool.Emit(NewPoint3d(1, 2, 3), testDistribution(), 50)

			assert.Equal(t, tc.accepted, got)
			assert.Equal(t, 30, pool.Len())
			assert.Equal(t, tc.dropped, pool.Dropped())
		})
	}
}

func TestDropNewestKeepsExistingParticles(t *testing.T) {
	pool := NewParticlePool(30, DropNewest, newTestRand())
	pool.Emit(Point3d{}, testDistribution(), 30)
	pool.Emit(NewPoint3d(99, 99, 99), testDistribution(), 50)
	for _, p := range pool.Particles() {
		assert.Equal(t, Point3d{}, p.Pos)
	}
}

func TestDropOldestReplacesAgedParticles(t *testing.T) {
	pool := NewParticlePool(30, DropOldest, newTestRand())
	pool.Emit(Point3d{}, testDistribution(), 30)
	pool.Update(0.1, Vector3{})
	pool.Emit(NewPoint3d(1, 2, 3), testDistribution(), 50)
	for _, p := range pool.Particles() {
		assert.Equal(t, NewPoint3d(1, 2, 3), p.Pos)
		assert.Zero(t, p.Age())
	}
}

func TestParticleUpdate(t *testing.T) {
	pool := NewParticlePool(10, DropNewest, newTestRand())
	d := testDistribution()
	d.Spread = Vector3{}
	d.LifeMin, d.LifeMax = 1, 1
	pool.Emit(Point3d{}, d, 3)

	pool.Update(0.5, NewVector3(0, 0, -4))
	require.Equal(t, 3, pool.Len())
	for _, p := range pool.Particles() {
		assert.InDelta(t, 3, p.Pos.Z, 1e-9)
		assert.InDelta(t, 0.5, p.Life, 1e-9)
	}

	pool.Update(0.5, Vector3{})
	assert.Zero(t, pool.Len(), "particles are removed when their lifetime reaches zero")
}

func TestParticleRenderFades(t *testing.T) {
	pool := NewParticlePool(10, DropNewest, newTestRand())
	d := testDistribution()
	d.Velocity = Vector3{}
	d.Spread = Vector3{}
	pool.Emit(NewPoint3d(0, 0, 100), d, 5)

	cam := NewCamera(Point3d{}, 0, 0, 0)
	surf := &recordingSurface{}
	pool.Render(surf, cam, NewProjector(800, 600, 400, 1, 0))
	assert.Equal(t, 5, surf.circles)

	// nearly expired particles shrink below a drawable size
	for i := range pool.particles {
		pool.particles[i].Life = pool.particles[i].MaxLife * 0.01
	}
	surf = &recordingSurface{}
	pool.Render(surf, cam, NewProjector(800, 600, 400, 1, 0))
	assert.Zero(t, surf.circles)
}

func TestEmitterFollowsParent(t *testing.T) {
	parent := NewObject3d(NewShip(1), NewPoint3d(100, 0, 300), 10)
	parent.Rotate(ROTY, math.Pi)
	e := &Emitter{
		Parent:  parent,
		Offset:  NewPoint3d(0, 0, -1),
		Rate:    100,
		Dist:    Distribution{Velocity: NewVector3(0, 0, -50), LifeMin: 1, LifeMax: 1, SizeMin: 1, SizeMax: 1},
		Enabled: true,
	}
	pool := NewParticlePool(100, DropNewest, newTestRand())

	n := e.Update(0.1, 1, pool)
	require.Equal(t, 10, n)
	for _, p := range pool.Particles() {
		assert.InDelta(t, 100, p.Pos.X, 1e-9)
		assert.InDelta(t, 310, p.Pos.Z, 1e-9)
		assert.InDelta(t, 50, p.Vel.Z, 1e-9)
	}

	e.Enabled = false
	assert.Zero(t, e.Update(1, 1, pool))
}

func TestEmitterAccumulatesFractions(t *testing.T) {
	parent := NewObject3d(NewCube(1), Point3d{}, 1)
	e := &Emitter{Parent: parent, Rate: 30, Dist: testDistribution(), Enabled: true}
	pool := NewParticlePool(100, DropNewest, newTestRand())
	total := 0
	for i := 0; i < 60; i++ {
		total += e.Update(1.0/60, 1, pool)
	}
	assert.InDelta(t, 30, total, 1)
}

func TestParseDropPolicy(t *testing.T) {
	p, err := ParseDropPolicy("Oldest")
	require.NoError(t, err)
	assert.Equal(t, DropOldest, p)

	p, err = ParseDropPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DropNewest, p)

	_, err = ParseDropPolicy("random")
	assert.Error(t, err)
}

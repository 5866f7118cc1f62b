package starflight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAsteroidConfig() AsteroidConfig {
	return AsteroidConfig{
		Count:     4,
		MinScale:  50,
		MaxScale:  100,
		HitRadius: 120,
		Spread:    3000,
		Far:       6000,
		RecycleZ:  -300,
	}
}

func TestAsteroidFieldKeepsCount(t *testing.T) {
	f := NewAsteroidField(testAsteroidConfig(), newTestRand(), 3)
	require.Len(t, f.Objects(), 4)
	for _, r := range f.Objects() {
		assert.GreaterOrEqual(t, r.Scale, 50.0)
		assert.LessOrEqual(t, r.Scale, 100.0)
		assert.Equal(t, ShapeAsteroid, r.Shape.Kind)
	}
	for i := 0; i < 500; i++ {
		f.Update(0.05, 800, Point3d{})
		assert.Len(t, f.Objects(), 4)
		for _, r := range f.Objects() {
			assert.GreaterOrEqual(t, r.Position.Z, -300.0)
		}
	}
}

func TestAsteroidImpact(t *testing.T) {
	testCases := []struct {
		name    string
		x       float64
		impacts int
	}{
		{"dead ahead", 0, 1},
		{"inside the hit radius", 100, 1},
		{"wide miss", 2000, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testAsteroidConfig()
			cfg.Count = 1
			f := NewAsteroidField(cfg, newTestRand(), 3)
			rock := f.Objects()[0]
			rock.Position = NewPoint3d(tc.x, 0, 10)

			got := f.Update(0.1, 5000, Point3d{})

			assert.Equal(t, tc.impacts, got)
			assert.Equal(t, 6000.0, rock.Position.Z, "passed rocks are recycled to the far distance")
		})
	}
}

func TestAsteroidBehindFarIsRespawned(t *testing.T) {
	cfg := testAsteroidConfig()
	cfg.Count = 1
	f := NewAsteroidField(cfg, newTestRand(), 3)
	rock := f.Objects()[0]
	rock.Position = NewPoint3d(0, 0, 8900)

	f.Update(1, -200, Point3d{})
	assert.Equal(t, 6000.0, rock.Position.Z)
}

func TestNebula(t *testing.T) {
	cfg := NebulaConfig{Count: 3, MinRadius: 100, MaxRadius: 200, Spread: 1000, Near: 500, Far: 6000}
	n := NewNebula(cfg, newTestRand(), 9)
	require.Len(t, n.Blobs(), 3)

	n.blobs[0].Pos.Z = 3000
	n.Update(1, 100, 0)
	assert.InDelta(t, 2950, n.Blobs()[0].Pos.Z, 1e-9, "clouds move at half the flight speed")

	for i := 0; i < 200; i++ {
		n.Update(0.1, 2000, 1)
		require.Len(t, n.Blobs(), 3)
		for _, b := range n.Blobs() {
			assert.GreaterOrEqual(t, b.Pos.Z, cfg.Near)
			assert.LessOrEqual(t, b.Pos.Z, cfg.Far)
			assert.GreaterOrEqual(t, b.Alpha, 0.0)
			assert.LessOrEqual(t, b.Alpha, 0.4)
			assert.GreaterOrEqual(t, b.Radius, 100.0)
			assert.LessOrEqual(t, b.Radius, 200.0)
		}
	}
}

func TestNebulaRender(t *testing.T) {
	cfg := NebulaConfig{Count: 2, MinRadius: 100, MaxRadius: 200, Spread: 10, Near: 500, Far: 6000}
	n := NewNebula(cfg, newTestRand(), 9)
	surf := &recordingSurface{}
	n.Render(surf, NewCamera(Point3d{}, 0, 0, 0), NewProjector(800, 600, 400, 1, 0))
	assert.Equal(t, 6, surf.circles)
}

func TestNebulaRendersFarthestFirst(t *testing.T) {
	cfg := NebulaConfig{Count: 2, MinRadius: 100, MaxRadius: 100, Spread: 10, Near: 500, Far: 6000}
	n := NewNebula(cfg, newTestRand(), 9)
	n.blobs[0].Pos = NewPoint3d(0, 0, 600)
	n.blobs[1].Pos = NewPoint3d(0, 0, 5000)

	surf := &recordingSurface{}
	n.Render(surf, NewCamera(Point3d{}, 0, 0, 0), NewProjector(800, 600, 400, 1, 0))

	require.Len(t, surf.radii, 6)
	// outer disc of each cloud: 100*400/5400 for the far one, 100*400/1000 for the near one
	assert.InDelta(t, 100*400/5400.0, surf.radii[0], 1e-9, "far cloud is drawn first")
	assert.InDelta(t, 40, surf.radii[3], 1e-9)
}

func TestGroundGridScroll(t *testing.T) {
	g := NewGroundGrid(GroundConfig{Enabled: true, Y: 400, Spacing: 200, Lines: 10})
	testCases := []struct {
		dt, speed, want float64
	}{
		{1, 250, 50},
		{1, 150, 0},
		{1, -50, 150},
		{0.5, 100, 0},
	}
	for _, tc := range testCases {
		g.Update(tc.dt, tc.speed)
		if !almostEqual(g.Scroll(), tc.want) {
			t.Errorf("after Update(%v, %v) scroll = %v, want %v", tc.dt, tc.speed, g.Scroll(), tc.want)
		}
	}
}

func TestGroundGridRender(t *testing.T) {
	cam := NewCamera(Point3d{}, 0, 0, 0)
	pr := NewProjector(800, 600, 400, 1, 0)

	surf := &recordingSurface{}
	NewGroundGrid(GroundConfig{Enabled: true, Y: 400, Spacing: 200, Lines: 10}).Render(surf, cam, pr)
	assert.Equal(t, 11+20, surf.lines)

	surf = &recordingSurface{}
	NewGroundGrid(GroundConfig{Enabled: false, Y: 400, Spacing: 200, Lines: 10}).Render(surf, cam, pr)
	assert.Zero(t, surf.lines)
}

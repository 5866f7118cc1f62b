package starflight

import (
	"image/color"
	"math"
	"math/rand/v2"
)

type ShapeKind int

const (
	ShapeCube ShapeKind = iota
	ShapePyramid
	ShapeShip
	ShapeAsteroid
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCube:
		return "cube"
	case ShapePyramid:
		return "pyramid"
	case ShapeShip:
		return "ship"
	case ShapeAsteroid:
		return "asteroid"
	}
	return "unknown"
}

// Shape is an immutable vertex/face template shared by every instance of
// one kind.
type Shape struct {
	Kind     ShapeKind
	Vertices []Point3d
	Faces    []Face
	Edges    [][2]int
}

var (
	cubeColors = [6]color.RGBA{
		{R: 220, G: 60, B: 60, A: 255},
		{R: 60, G: 200, B: 80, A: 255},
		{R: 70, G: 110, B: 230, A: 255},
		{R: 230, G: 210, B: 60, A: 255},
		{R: 200, G: 70, B: 200, A: 255},
		{R: 60, G: 200, B: 210, A: 255},
	}
	pyramidSide = color.RGBA{R: 240, G: 170, B: 40, A: 255}
	pyramidBase = color.RGBA{R: 150, G: 90, B: 30, A: 255}

	shipHull    = color.RGBA{R: 170, G: 180, B: 200, A: 255}
	shipWing    = color.RGBA{R: 90, G: 110, B: 160, A: 255}
	shipCockpit = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	shipEngine  = color.RGBA{R: 255, G: 120, B: 40, A: 255}
)

// NewCube builds a cube of the given edge length centred on the origin.
func NewCube(size float64) *Shape {
	m := NewMesh()
	m.AddBox(Point3d{}, size, size, size, cubeColors)
	return m.Shape(ShapeCube)
}

// NewPyramid builds a square based pyramid with its apex up (negative Y).
func NewPyramid(size float64) *Shape {
	h := size / 2
	apex := Point3d{0, -h, 0}
	b := [4]Point3d{
		{-h, h, -h},
		{h, h, -h},
		{h, h, h},
		{-h, h, h},
	}
	m := NewMesh()
	for i := 0; i < 4; i++ {
		m.AddFace(pyramidSide, apex, b[i], b[(i+1)%4])
	}
	m.AddFace(pyramidBase, b[3], b[2], b[1], b[0])
	return m.Shape(ShapePyramid)
}

// NewShip combines a hull, two wings and a cockpit. The nose points along +Z.
func NewShip(size float64) *Shape {
	m := NewMesh()

	// hull
	hull := [6]color.RGBA{shipEngine, shipHull, shipHull, shipHull, shipHull, shipHull}
	m.AddBox(Point3d{}, 0.5*size, 0.3*size, 1.5*size, hull)

	// wings
	for _, side := range []float64{-1, 1} {
		root1 := Point3d{side * 0.25 * size, 0.05 * size, -0.6 * size}
		root2 := Point3d{side * 0.25 * size, 0.05 * size, 0.4 * size}
		tip := Point3d{side * size, 0.1 * size, -0.7 * size}
		m.AddFace(shipWing, root1, root2, tip)
	}

	// cockpit
	c := 0.12 * size
	top := -0.15 * size
	apex := Point3d{0, -0.35 * size, 0.1 * size}
	base := [4]Point3d{
		{-c, top, -0.1 * size},
		{c, top, -0.1 * size},
		{c, top, 0.35 * size},
		{-c, top, 0.35 * size},
	}
	for i := 0; i < 4; i++ {
		m.AddFace(shipCockpit, apex, base[i], base[(i+1)%4])
	}
	return m.Shape(ShapeShip)
}

// NewAsteroidShape builds an irregular rock: a ring of 8 to 12 jittered
// points fanned to a peak and closed by a base.
func NewAsteroidShape(rng *rand.Rand, radius float64) *Shape {
	n := 8 + rng.IntN(5)
	ring := make([]Point3d, n)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / float64(n)
		r := radius * (0.7 + 0.3*rng.Float64())
		ring[i] = Point3d{
			X: math.Cos(a) * r,
			Y: (rng.Float64() - 0.5) * radius * 0.4,
			Z: math.Sin(a) * r,
		}
	}
	peak := Point3d{0, -radius * (0.6 + 0.4*rng.Float64()), 0}

	grey := uint8(90 + rng.IntN(50))
	col := color.RGBA{R: grey + 20, G: grey + 5, B: grey, A: 255}

	m := NewMesh()
	for i := 0; i < n; i++ {
		m.AddFace(col, peak, ring[i], ring[(i+1)%n])
	}
	base := make([]Point3d, n)
	for i := range ring {
		base[i] = ring[n-1-i]
	}
	m.AddFace(col, base...)
	return m.Shape(ShapeAsteroid)
}

// edgesFromFaces lists every polygon side once.
func edgesFromFaces(faces []Face) [][2]int {
	seen := make(map[[2]int]bool)
	var edges [][2]int
	for _, f := range faces {
		for i := range f.Indices {
			a, b := f.Indices[i], f.Indices[(i+1)%len(f.Indices)]
			if a > b {
				a, b = b, a
			}
			k := [2]int{a, b}
			if a == b || seen[k] {
				continue
			}
			seen[k] = true
			edges = append(edges, k)
		}
	}
	return edges
}

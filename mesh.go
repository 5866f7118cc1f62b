package starflight

import "image/color"

// Mesh collects faces while building a shape, sharing identical points.
type Mesh struct {
	Points     []Point3d
	Faces      []Face
	pointIndex map[[3]float64]int
}

func NewMesh() *Mesh {
	return &Mesh{
		Points:     make([]Point3d, 0, 16),
		pointIndex: make(map[[3]float64]int),
	}
}

// AddPoint returns the index of p, adding it if it is new.
func (m *Mesh) AddPoint(p Point3d) int {
	key := [3]float64{p.X, p.Y, p.Z}
	if index, found := m.pointIndex[key]; found {
		return index
	}
	m.Points = append(m.Points, p)
	index := len(m.Points) - 1
	m.pointIndex[key] = index
	return index
}

func (m *Mesh) AddFace(col color.RGBA, pts ...Point3d) {
	f := Face{Indices: make([]int, len(pts)), Col: col}
	for i, p := range pts {
		f.Indices[i] = m.AddPoint(p)
	}
	m.Faces = append(m.Faces, f)
}

// AddBox adds the six faces of an axis aligned box centred on c.
func (m *Mesh) AddBox(c Point3d, sx, sy, sz float64, cols [6]color.RGBA) {
	hx, hy, hz := sx/2, sy/2, sz/2
	v := [8]Point3d{
		{c.X - hx, c.Y - hy, c.Z - hz},
		{c.X + hx, c.Y - hy, c.Z - hz},
		{c.X + hx, c.Y + hy, c.Z - hz},
		{c.X - hx, c.Y + hy, c.Z - hz},
		{c.X - hx, c.Y - hy, c.Z + hz},
		{c.X + hx, c.Y - hy, c.Z + hz},
		{c.X + hx, c.Y + hy, c.Z + hz},
		{c.X - hx, c.Y + hy, c.Z + hz},
	}
	m.AddFace(cols[0], v[0], v[1], v[2], v[3]) // front
	m.AddFace(cols[1], v[5], v[4], v[7], v[6]) // back
	m.AddFace(cols[2], v[4], v[0], v[3], v[7]) // left
	m.AddFace(cols[3], v[1], v[5], v[6], v[2]) // right
	m.AddFace(cols[4], v[4], v[5], v[1], v[0]) // top
	m.AddFace(cols[5], v[3], v[2], v[6], v[7]) // bottom
}

// Shape freezes the mesh into an immutable template.
func (m *Mesh) Shape(kind ShapeKind) *Shape {
	s := &Shape{
		Kind:     kind,
		Vertices: append([]Point3d(nil), m.Points...),
		Faces:    append([]Face(nil), m.Faces...),
	}
	s.Edges = edgesFromFaces(s.Faces)
	return s
}

package starflight

import (
	"image/color"
	"sort"
)

// Polygon is a projected face ready to draw.
type Polygon struct {
	Points  []Vector2
	Depth   float64
	Fill    color.RGBA
	Outline color.RGBA
	// Wire draws only the outline; two point wire polygons are single edges.
	Wire bool
}

// FaceStore is the per-frame draw list for the painter's algorithm.
type FaceStore struct {
	polys []Polygon
}

func NewFaceStore() *FaceStore {
	return &FaceStore{polys: make([]Polygon, 0, 64)}
}

func (fs *FaceStore) Add(p ...Polygon) {
	fs.polys = append(fs.polys, p...)
}

// Reset empties the store, keeping its capacity.
func (fs *FaceStore) Reset() {
	fs.polys = fs.polys[:0]
}

func (fs *FaceStore) Len() int {
	return len(fs.polys)
}

func (fs *FaceStore) Polygons() []Polygon {
	return fs.polys
}

// SortBackToFront orders polygons by descending centroid depth so the
// farthest is drawn first. Equal depths keep insertion order.
func (fs *FaceStore) SortBackToFront() {
	sort.SliceStable(fs.polys, func(i, j int) bool {
		return fs.polys[i].Depth > fs.polys[j].Depth
	})
}

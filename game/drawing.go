package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/starflight"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image

	// Surface colours arrive premultiplied, so vertex colours are used as is.
	trianglesOp = &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// screenSurface implements starflight.Surface on an ebiten image. One surface
// lives for the whole game so its vertex and index buffers are reused across
// frames.
type screenSurface struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newScreenSurface(dst *ebiten.Image) *screenSurface {
	return &screenSurface{dst: dst}
}

// target points the surface at this frame's screen.
func (s *screenSurface) target(dst *ebiten.Image) *screenSurface {
	s.dst = dst
	return s
}

func (s *screenSurface) Fill(col color.RGBA) {
	s.dst.Fill(col)
}

// FillPolygon fills a convex polygon as a triangle fan around its first point.
func (s *screenSurface) FillPolygon(pts []starflight.Vector2, col color.RGBA) {
	if len(pts) < 3 || col.A == 0 {
		return
	}
	s.vertices = appendPolygonVertices(s.vertices[:0], pts, col)
	s.indices = fanIndices(s.indices[:0], len(pts))
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSub, trianglesOp)
}

// StrokePolygon outlines the polygon. Two points give a single segment rather
// than a closed path doubling back on itself.
func (s *screenSurface) StrokePolygon(pts []starflight.Vector2, width float32, col color.RGBA) {
	if len(pts) < 2 || col.A == 0 || width <= 0 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	if len(pts) > 2 {
		path.Close()
	}

	strokeOp := &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	}
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], strokeOp)
	paintVertices(s.vertices, col)
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSub, trianglesOp)
}

func (s *screenSurface) FillCircle(x, y, r float64, col color.RGBA) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), col, true)
}

func (s *screenSurface) StrokeCircle(x, y, r float64, width float32, col color.RGBA) {
	vector.StrokeCircle(s.dst, float32(x), float32(y), float32(r), width, col, true)
}

func (s *screenSurface) StrokeLine(x0, y0, x1, y1 float64, width float32, col color.RGBA) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), width, col, true)
}

func (s *screenSurface) Text(str string, x, y int) {
	ebitenutil.DebugPrintAt(s.dst, str, x, y)
}

// vertexColor converts a premultiplied colour into vertex colour scales.
func vertexColor(clr color.RGBA) (r, g, b, a float32) {
	return float32(clr.R) / 255.0, float32(clr.G) / 255.0, float32(clr.B) / 255.0, float32(clr.A) / 255.0
}

// appendPolygonVertices appends one white-texel vertex per point.
func appendPolygonVertices(dst []ebiten.Vertex, pts []starflight.Vector2, clr color.RGBA) []ebiten.Vertex {
	start := len(dst)
	for _, p := range pts {
		dst = append(dst, ebiten.Vertex{DstX: float32(p.X), DstY: float32(p.Y)})
	}
	paintVertices(dst[start:], clr)
	return dst
}

// paintVertices samples the centre white texel and tints it with clr.
func paintVertices(vs []ebiten.Vertex, clr color.RGBA) {
	cr, cg, cb, ca := vertexColor(clr)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
}

// fanIndices appends the triangles of a fan over n vertices.
func fanIndices(dst []uint16, n int) []uint16 {
	for i := 2; i < n; i++ {
		dst = append(dst, 0, uint16(i-1), uint16(i))
	}
	return dst
}

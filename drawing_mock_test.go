package starflight

import (
	"image/color"
	"math"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

// recordingSurface is a Surface mock that counts draw calls.
type recordingSurface struct {
	fills    int
	polygons [][]Vector2
	strokes  int
	circles  int
	radii    []float64
	rings    int
	lines    int
	text     []string
}

func (r *recordingSurface) Fill(color.RGBA) { r.fills++ }

func (r *recordingSurface) FillPolygon(pts []Vector2, _ color.RGBA) {
	r.polygons = append(r.polygons, pts)
}

func (r *recordingSurface) StrokePolygon([]Vector2, float32, color.RGBA) { r.strokes++ }

func (r *recordingSurface) FillCircle(_, _, radius float64, _ color.RGBA) {
	r.circles++
	r.radii = append(r.radii, radius)
}

func (r *recordingSurface) StrokeCircle(_, _, _ float64, _ float32, _ color.RGBA) { r.rings++ }

func (r *recordingSurface) StrokeLine(_, _, _, _ float64, _ float32, _ color.RGBA) { r.lines++ }

func (r *recordingSurface) Text(s string, _, _ int) { r.text = append(r.text, s) }

// recordingPlayer is a SoundPlayer mock.
type recordingPlayer struct {
	cues  []SoundCue
	level float64
}

func (p *recordingPlayer) Play(c SoundCue)              { p.cues = append(p.cues, c) }
func (p *recordingPlayer) SetEngineLevel(level float64) { p.level = level }

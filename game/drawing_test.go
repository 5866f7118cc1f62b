package game

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasonuk/starflight"
)

func TestFanIndices(t *testing.T) {
	testCases := []struct {
		n    int
		want []uint16
	}{
		{0, nil},
		{2, nil},
		{3, []uint16{0, 1, 2}},
		{5, []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, fanIndices(nil, tc.n), "n=%d", tc.n)
	}
}

func TestFanIndicesReusesBuffer(t *testing.T) {
	buf := make([]uint16, 0, 16)
	buf = fanIndices(buf, 6)
	require.Len(t, buf, 12)
	again := fanIndices(buf[:0], 4)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, again)
	assert.Same(t, &buf[0], &again[0])
}

func TestAppendPolygonVertices(t *testing.T) {
	pts := []starflight.Vector2{{X: 10, Y: 20}, {X: 30, Y: 20}, {X: 20, Y: 40}}
	// premultiplied half-transparent red
	clr := color.RGBA{R: 128, A: 128}

	prev := []ebiten.Vertex{{DstX: -1}}
	vs := appendPolygonVertices(prev, pts, clr)
	require.Len(t, vs, 4)
	assert.Equal(t, float32(-1), vs[0].DstX)
	assert.Zero(t, vs[0].ColorA, "existing vertices are left alone")

	for i, p := range pts {
		v := vs[i+1]
		assert.Equal(t, float32(p.X), v.DstX)
		assert.Equal(t, float32(p.Y), v.DstY)
		assert.Equal(t, float32(1), v.SrcX)
		assert.Equal(t, float32(1), v.SrcY)
		assert.InDelta(t, 128.0/255.0, v.ColorR, 1e-6)
		assert.Zero(t, v.ColorG)
		assert.Zero(t, v.ColorB)
		assert.InDelta(t, 128.0/255.0, v.ColorA, 1e-6)
	}
}

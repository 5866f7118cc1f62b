package starflight

import "image/color"

// Surface is the 2D drawing target a frame is rendered onto.
type Surface interface {
	Fill(col color.RGBA)
	FillPolygon(pts []Vector2, col color.RGBA)
	StrokePolygon(pts []Vector2, width float32, col color.RGBA)
	FillCircle(x, y, r float64, col color.RGBA)
	StrokeCircle(x, y, r float64, width float32, col color.RGBA)
	StrokeLine(x0, y0, x1, y1 float64, width float32, col color.RGBA)
	Text(s string, x, y int)
}

// DrawPolygons paints the polygons in the order given.
func DrawPolygons(s Surface, polys []Polygon) {
	for _, p := range polys {
		if p.Wire {
			if len(p.Points) == 2 {
				s.StrokeLine(p.Points[0].X, p.Points[0].Y, p.Points[1].X, p.Points[1].Y, 1, p.Fill)
			} else {
				s.StrokePolygon(p.Points, 1, p.Fill)
			}
			continue
		}
		s.FillPolygon(p.Points, p.Fill)
		s.StrokePolygon(p.Points, 1, p.Outline)
	}
}

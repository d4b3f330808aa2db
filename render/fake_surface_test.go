package render

import "delilah/surface"

// recordingSurface is a hand-rolled fake implementing surface.Surface,
// recording every call so tests can assert on draw order and parameters
// without a real rasterizer.
type recordingSurface struct {
	fillColor   surface.Color
	strokeColor surface.Color
	lineWidth   float64

	calls []string

	triangleFills int
	arcs          int
	rects         int
	fillRects     int
	strokes       int
}

func (s *recordingSurface) SetFillColor(c surface.Color)   { s.fillColor = c; s.calls = append(s.calls, "setFill") }
func (s *recordingSurface) SetStrokeColor(c surface.Color) { s.strokeColor = c; s.calls = append(s.calls, "setStroke") }
func (s *recordingSurface) SetLineWidth(w float64)         { s.lineWidth = w; s.calls = append(s.calls, "setLineWidth") }

func (s *recordingSurface) BeginPath()          { s.calls = append(s.calls, "beginPath") }
func (s *recordingSurface) MoveTo(x, y float64) { s.calls = append(s.calls, "moveTo") }
func (s *recordingSurface) LineTo(x, y float64) { s.calls = append(s.calls, "lineTo") }
func (s *recordingSurface) ClosePath()          { s.calls = append(s.calls, "closePath"); s.triangleFills++ }
func (s *recordingSurface) Arc(cx, cy, r float64) {
	s.calls = append(s.calls, "arc")
	s.arcs++
}
func (s *recordingSurface) Rect(x, y, w, h float64) {
	s.calls = append(s.calls, "rect")
	s.rects++
}

func (s *recordingSurface) Fill()   { s.calls = append(s.calls, "fill") }
func (s *recordingSurface) Stroke() { s.calls = append(s.calls, "stroke"); s.strokes++ }

func (s *recordingSurface) FillRect(x, y, w, h float64) {
	s.calls = append(s.calls, "fillRect")
	s.fillRects++
}

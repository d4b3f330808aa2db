// Package surface defines the abstract 2D drawing sink the Renderer paints
// onto, generalizing sparkos/quarkgl/target.go's pixel-level Target
// interface into a path-based contract that a real vector backend (see
// surface/ggsurface) can implement directly.
package surface

// Color is an 8-bit-per-channel RGB color. All coordinates this package's
// methods take are in pixels, origin top-left.
type Color struct {
	R, G, B uint8
}

// Surface is the drawing sink the Renderer targets. Implementations own
// their own path/paint state; callers are expected to set fill/stroke
// color and line width before building a path with BeginPath/MoveTo/
// LineTo/ClosePath/Arc/Rect, then call Fill and/or Stroke.
type Surface interface {
	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Arc(cx, cy, r float64)
	Rect(x, y, w, h float64)

	Fill()
	Stroke()

	// FillRect is a one-shot convenience equal to BeginPath; Rect; Fill,
	// used by Renderer.Render to clear the surface to the background
	// color. Like BeginPath, it discards any path the caller had open.
	FillRect(x, y, w, h float64)
}

// Package ggsurface adapts github.com/gogpu/gg's *gg.Context to the
// surface.Surface contract, the concrete drawing backend the render
// package paints onto outside of tests.
package ggsurface

import (
	"math"

	"github.com/gogpu/gg"

	"delilah/surface"
)

// Surface wraps a *gg.Context to implement surface.Surface.
type Surface struct {
	ctx *gg.Context
}

// New wraps an existing gg.Context.
func New(ctx *gg.Context) *Surface {
	return &Surface{ctx: ctx}
}

func toRGBA(c surface.Color) gg.RGBA {
	return gg.RGBA{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: 1}
}

func (s *Surface) SetFillColor(c surface.Color)   { s.ctx.SetFillBrush(gg.Solid(toRGBA(c))) }
func (s *Surface) SetStrokeColor(c surface.Color) { s.ctx.SetStrokeBrush(gg.Solid(toRGBA(c))) }
func (s *Surface) SetLineWidth(w float64)         { s.ctx.SetLineWidth(w) }

func (s *Surface) BeginPath()         { s.ctx.ClearPath() }
func (s *Surface) MoveTo(x, y float64) { s.ctx.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.ctx.LineTo(x, y) }
func (s *Surface) ClosePath()         { s.ctx.ClosePath() }

// Arc draws a full circle, the only arc sweep the renderer ever needs
// (spec's drawing-surface contract always calls arc with a 0..2π sweep).
func (s *Surface) Arc(cx, cy, r float64) {
	s.ctx.DrawArc(cx, cy, r, 0, 2*math.Pi)
}

func (s *Surface) Rect(x, y, w, h float64) { s.ctx.DrawRectangle(x, y, w, h) }

func (s *Surface) Fill() {
	_ = s.ctx.FillPreserve()
}

func (s *Surface) Stroke() {
	_ = s.ctx.Stroke()
}

// FillRect fills an axis-aligned rectangle, clearing any existing path
// first and leaving the path cleared afterward.
func (s *Surface) FillRect(x, y, w, h float64) {
	s.ctx.ClearPath()
	s.ctx.DrawRectangle(x, y, w, h)
	_ = s.ctx.Fill()
}

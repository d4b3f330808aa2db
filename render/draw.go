package render

import (
	"delilah/camera"
	"delilah/hicolor"
	"delilah/mat4"
	"delilah/scene"
	"delilah/surface"
)

func toSurfaceColor(p hicolor.Packed) surface.Color {
	r, g, b := p.Decode()
	return surface.Color{R: r, G: g, B: b}
}

func project(proj mat4.M, v scene.Vec3) (x, y float64) {
	x, y, _ = proj.Transform(v.X, v.Y, v.Z)
	return x, y
}

// drawTriangle handles §4.3.1: direct draw when the triangle sits wholly
// inside the near/far slab, otherwise the clipping state machine.
func drawTriangle(sfc surface.Surface, st *scene.Store, proj mat4.M, obj scene.Object, near, far float64) {
	ai, bi, ci := obj.TriangleVerts()
	v1, v2, v3 := st.CameraSpace[ai], st.CameraSpace[bi], st.CameraSpace[ci]

	if far < v1.Z && v1.Z < near && far < v2.Z && v2.Z < near && far < v3.Z && v3.Z < near {
		x1, y1 := st.ProjectedSpace[ai].X, st.ProjectedSpace[ai].Y
		x2, y2 := st.ProjectedSpace[bi].X, st.ProjectedSpace[bi].Y
		x3, y3 := st.ProjectedSpace[ci].X, st.ProjectedSpace[ci].Y
		emitTriangle(sfc, st, x1, y1, x2, y2, x3, y3, obj)
		return
	}

	kMax, nearCount1, nearCount2, farCount1, farCount2 := triangleSubtriangleCount(v1, v2, v3, near, far)
	for k := 1; k <= kMax; k++ {
		c1, c2, c3 := clipTriangleIteration(v1, v2, v3, near, far, k, kMax, nearCount1, nearCount2, farCount1, farCount2)
		x1, y1 := project(proj, c1)
		x2, y2 := project(proj, c2)
		x3, y3 := project(proj, c3)
		emitTriangle(sfc, st, x1, y1, x2, y2, x3, y3, obj)
	}
}

// emitTriangle fills the triangle and strokes any nonzero edge selectors.
//
// Edge-style assignment is not recomputed after clipping: a clipped
// subtriangle keeps the original three edge selectors regardless of which
// edges they now correspond to. This is the reference's quirk, kept
// deliberately rather than fixed.
func emitTriangle(sfc surface.Surface, st *scene.Store, x1, y1, x2, y2, x3, y3 float64, obj scene.Object) {
	sfc.SetFillColor(toSurfaceColor(obj.Fill))
	sfc.BeginPath()
	sfc.MoveTo(x1, y1)
	sfc.LineTo(x2, y2)
	sfc.LineTo(x3, y3)
	sfc.ClosePath()
	sfc.Fill()

	pts := [3][2]float64{{x1, y1}, {x2, y2}, {x3, y3}}
	for i, sel := range obj.Edges {
		if sel == 0 {
			continue
		}
		ls := st.LineStyles[int(sel)-1]
		a, b := pts[i], pts[(i+1)%3]
		sfc.SetStrokeColor(toSurfaceColor(ls.Color))
		sfc.SetLineWidth(ls.Width)
		sfc.BeginPath()
		sfc.MoveTo(a[0], a[1])
		sfc.LineTo(b[0], b[1])
		sfc.Stroke()
	}
}

// drawLine handles §4.3.2.
func drawLine(sfc surface.Surface, st *scene.Store, proj mat4.M, obj scene.Object, near, far float64) {
	ai, bi := obj.LineVerts()
	pa, pb := st.CameraSpace[ai], st.CameraSpace[bi]

	var x1, y1, x2, y2 float64
	if far < pa.Z && pa.Z < near && far < pb.Z && pb.Z < near {
		x1, y1 = st.ProjectedSpace[ai].X, st.ProjectedSpace[ai].Y
		x2, y2 = st.ProjectedSpace[bi].X, st.ProjectedSpace[bi].Y
	} else {
		if pa.Z < pb.Z {
			pa, pb = pb, pa
		}
		t1 := 0.0
		if pa.Z > near {
			t1 = (near - pa.Z) / (pb.Z - pa.Z)
		}
		t2 := 1.0
		if pb.Z < far {
			t2 = (far - pa.Z) / (pb.Z - pa.Z)
		}
		c1 := lerp(pa, pb, t1)
		c2 := lerp(pa, pb, t2)
		x1, y1 = project(proj, c1)
		x2, y2 = project(proj, c2)
	}

	ls := st.LineStyles[obj.LineStyleIndex()]
	sfc.SetStrokeColor(toSurfaceColor(ls.Color))
	sfc.SetLineWidth(ls.Width)
	sfc.BeginPath()
	sfc.MoveTo(x1, y1)
	sfc.LineTo(x2, y2)
	sfc.Stroke()
}

// drawSphere handles §4.3.3.
func drawSphere(sfc surface.Surface, st *scene.Store, proj camera.Projection, height float64, obj scene.Object) {
	vi, ri := obj.SphereRefs()
	zo := st.CameraSpace[vi].Z
	d := pinholeDistance(proj)
	rPrime := st.Radii[ri] * (d * height / 2) / (d - zo)
	if !finite(rPrime) || rPrime <= 0 {
		return
	}
	cx, cy := st.ProjectedSpace[vi].X, st.ProjectedSpace[vi].Y

	if obj.Fill != hicolor.Transparent {
		sfc.SetFillColor(toSurfaceColor(obj.Fill))
		sfc.BeginPath()
		sfc.Arc(cx, cy, rPrime)
		sfc.Fill()
	}
	if styleIdx, ok := obj.SphereStrokeStyle(); ok {
		ls := st.LineStyles[styleIdx]
		sfc.SetStrokeColor(toSurfaceColor(ls.Color))
		sfc.SetLineWidth(ls.Width)
		sfc.BeginPath()
		sfc.Arc(cx, cy, rPrime)
		sfc.Stroke()
	}
}

// drawPoint handles §4.3.4.
func drawPoint(sfc surface.Surface, st *scene.Store, obj scene.Object) {
	cx, cy := st.ProjectedSpace[obj.PointVert()].X, st.ProjectedSpace[obj.PointVert()].Y
	ps := st.PointStyles[obj.PointStyleIndex()]
	k := ps.Size / 2

	fill := func() {
		if ps.Shape.Fillable() && ps.Fill != hicolor.Transparent {
			sfc.SetFillColor(toSurfaceColor(ps.Fill))
			sfc.Fill()
		}
	}
	stroke := func() {
		if ps.Stroke > 0 {
			sfc.SetStrokeColor(toSurfaceColor(ps.Ink))
			sfc.SetLineWidth(ps.Stroke)
			sfc.Stroke()
		}
	}

	switch ps.Shape {
	case scene.ShapeCircle:
		sfc.BeginPath()
		sfc.Arc(cx, cy, k)
		fill()
		stroke()

	case scene.ShapeSquare:
		sfc.BeginPath()
		sfc.Rect(cx-k, cy-k, ps.Size, ps.Size)
		fill()
		stroke()

	case scene.ShapeDiamond:
		sfc.BeginPath()
		sfc.MoveTo(cx, cy-k)
		sfc.LineTo(cx+k, cy)
		sfc.LineTo(cx, cy+k)
		sfc.LineTo(cx-k, cy)
		sfc.ClosePath()
		fill()
		stroke()

	case scene.ShapeTriUp:
		drawTriMarker(sfc, cx, cy-k, cx+k, cy+k, cx-k, cy+k, fill, stroke)
	case scene.ShapeTriDown:
		drawTriMarker(sfc, cx, cy+k, cx-k, cy-k, cx+k, cy-k, fill, stroke)
	case scene.ShapeTriLeft:
		drawTriMarker(sfc, cx-k, cy, cx+k, cy-k, cx+k, cy+k, fill, stroke)
	case scene.ShapeTriRight:
		drawTriMarker(sfc, cx+k, cy, cx-k, cy-k, cx-k, cy+k, fill, stroke)

	case scene.ShapePlus:
		drawSegment(sfc, cx-k, cy, cx+k, cy, ps, stroke)
		drawSegment(sfc, cx, cy-k, cx, cy+k, ps, stroke)

	case scene.ShapeCross:
		drawSegment(sfc, cx-k, cy-k, cx+k, cy+k, ps, stroke)
		drawSegment(sfc, cx-k, cy+k, cx+k, cy-k, ps, stroke)
	}
}

func drawTriMarker(sfc surface.Surface, x1, y1, x2, y2, x3, y3 float64, fill, stroke func()) {
	sfc.BeginPath()
	sfc.MoveTo(x1, y1)
	sfc.LineTo(x2, y2)
	sfc.LineTo(x3, y3)
	sfc.ClosePath()
	fill()
	stroke()
}

func drawSegment(sfc surface.Surface, x1, y1, x2, y2 float64, ps scene.PointStyle, stroke func()) {
	if ps.Stroke <= 0 {
		return
	}
	sfc.BeginPath()
	sfc.MoveTo(x1, y1)
	sfc.LineTo(x2, y2)
	stroke()
}

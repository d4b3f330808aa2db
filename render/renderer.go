// Package render implements the component spec.md §2 calls the Renderer:
// builds the per-frame view/projection matrices, transforms every vertex
// into camera- and projected-space, culls and Z-sorts scene objects, and
// dispatches 2D drawing calls against a surface.Surface.
//
// This generalizes sparkos/quarkgl/renderer.go's fixed-pipeline render
// loop (transform -> cull -> rasterize) to the index-handle SceneStore and
// the painter's-algorithm Z-sort spec.md §4.3 specifies in place of
// quarkgl's depth buffer.
package render

import (
	"sort"

	"delilah/camera"
	"delilah/mat4"
	"delilah/scene"
	"delilah/surface"
)

// Renderer paints a loaded scene.Store onto a surface.Surface. It holds no
// per-frame state of its own; all scratch buffers live on the Store, per
// spec.md §9's scratch-buffer-sharing note.
type Renderer struct{}

// New returns a ready-to-use Renderer.
func New() *Renderer { return &Renderer{} }

// Render clears surface to cam's background color, then paints st (if
// non-nil) per spec.md §4.3. width and height must be >= 2. Render never
// mutates cam or st's validated tables — only their scratch buffers.
func (r *Renderer) Render(sfc surface.Surface, st *scene.Store, cam *camera.State, width, height int) {
	if width < 2 || height < 2 {
		panic("render: width and height must each be at least 2")
	}

	bg := cam.Background()
	sfc.SetFillColor(surface.Color{R: bg.R, G: bg.G, B: bg.B})
	sfc.FillRect(0, 0, float64(width), float64(height))

	if st == nil {
		return
	}

	view := buildView(cam.Pose())
	if !view.IsFinite() {
		return
	}
	proj := buildProjection(cam.Projection(), float64(width), float64(height))

	transformVertices(st, view, proj)

	near, far := cam.Projection().Near, cam.Projection().Far
	computePaintKeys(st, near, far)

	sort.Slice(st.PaintKeys, func(i, j int) bool { return st.PaintKeys[i] < st.PaintKeys[j] })

	for _, key := range st.PaintKeys {
		if key == rejectKey {
			break
		}
		obj := st.Objects[key&0xFFFF]
		switch obj.Kind {
		case scene.KindTriangle:
			drawTriangle(sfc, st, proj, obj, near, far)
		case scene.KindLine:
			drawLine(sfc, st, proj, obj, near, far)
		case scene.KindSphere:
			drawSphere(sfc, st, cam.Projection(), float64(height), obj)
		case scene.KindPoint:
			drawPoint(sfc, st, obj)
		}
	}
}

// transformVertices runs spec.md §4.3's two-pass vertex transform: every
// world vertex goes through view into CameraSpace, then the same
// camera-space point goes through proj into ProjectedSpace.
func transformVertices(st *scene.Store, view, proj mat4.M) {
	for i, v := range st.Vertices {
		cx, cy, cz := view.Transform(v.X, v.Y, v.Z)
		st.CameraSpace[i] = scene.Vec3{X: cx, Y: cy, Z: cz}
		px, py, pz := proj.Transform(cx, cy, cz)
		st.ProjectedSpace[i] = scene.Vec3{X: px, Y: py, Z: pz}
	}
}

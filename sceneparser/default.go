package sceneparser

import (
	"delilah/hicolor"
	"delilah/scene"
)

// LoadDefaultScene builds the built-in placeholder scene spec.md §5 calls
// load_default_scene: an 11x11 grid of points on the XZ plane (spacing 5,
// omitting the origin) plus a single line running the length of the Y axis.
func LoadDefaultScene() (*scene.Store, error) {
	const (
		half    = 5
		spacing = 5.0
		axisLen = 25.0
	)

	var verts []scene.Vec3
	var objs []scene.RawObject

	for gx := -half; gx <= half; gx++ {
		for gz := -half; gz <= half; gz++ {
			if gx == 0 && gz == 0 {
				continue
			}
			idx := uint16(len(verts))
			verts = append(verts, scene.Vec3{X: float64(gx) * spacing, Y: 0, Z: float64(gz) * spacing})
			objs = append(objs, scene.RawObject{A: idx, B: 0xFFFF, C: 0xFFFF, D: 0, E: 0})
		}
	}

	axisA := uint16(len(verts))
	verts = append(verts, scene.Vec3{X: 0, Y: axisLen, Z: 0})
	axisB := uint16(len(verts))
	verts = append(verts, scene.Vec3{X: 0, Y: -axisLen, Z: 0})
	objs = append(objs, scene.RawObject{A: axisA, B: axisB, C: 0xFFFF, D: 0, E: 0})

	pstyles := []scene.PointStyleIn{
		{Shape: scene.ShapeCircle, Size: 3, Stroke: 0, Fill: hicolor.Pack(0, 0, 31), HasFill: true}, // pure blue
	}
	lstyles := []scene.LineStyle{
		{Width: 2.0, Color: hicolor.Pack(0, 31, 0)}, // pure green
	}

	return scene.NewStore(verts, nil, objs, pstyles, lstyles)
}

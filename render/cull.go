package render

import (
	"math"

	"delilah/scene"
)

// rejectKey marks a scene object as not drawn this frame: ascending sort
// places it after every accepted key.
const rejectKey uint32 = 0xFFFFFFFF

// computePaintKeys fills st.PaintKeys for every object in st, per
// spec.md's §4.3 cull rules, given near/far from the active projection.
func computePaintKeys(st *scene.Store, near, far float64) {
	for i, obj := range st.Objects {
		st.PaintKeys[i] = paintKeyFor(st, obj, i, near, far)
	}
}

func paintKeyFor(st *scene.Store, obj scene.Object, index int, near, far float64) uint32 {
	switch obj.Kind {
	case scene.KindTriangle:
		a, b, c := obj.TriangleVerts()
		v1, v2, v3 := st.CameraSpace[a], st.CameraSpace[b], st.CameraSpace[c]
		e1, e2 := sub(v2, v1), sub(v3, v1)
		if dot(v1, cross(e1, e2)) >= 0 {
			return rejectKey
		}
		if v1.Z >= near && v2.Z >= near && v3.Z >= near {
			return rejectKey
		}
		if v1.Z <= far && v2.Z <= far && v3.Z <= far {
			return rejectKey
		}
		return quantizeKey((v1.Z+v2.Z+v3.Z)/3, index, near, far)

	case scene.KindSphere:
		v, _ := obj.SphereRefs()
		z := st.CameraSpace[v].Z
		if !(far < z && z < near) {
			return rejectKey
		}
		return quantizeKey(z, index, near, far)

	case scene.KindLine:
		a, b := obj.LineVerts()
		z1, z2 := st.CameraSpace[a].Z, st.CameraSpace[b].Z
		if (z1 >= near && z2 >= near) || (z1 <= far && z2 <= far) {
			return rejectKey
		}
		return quantizeKey((z1+z2)/2, index, near, far)

	default: // scene.KindPoint
		z := st.CameraSpace[obj.PointVert()].Z
		if !(far < z && z < near) {
			return rejectKey
		}
		return quantizeKey(z, index, near, far)
	}
}

func quantizeKey(zCentroid float64, index int, near, far float64) uint32 {
	if !finite(zCentroid) {
		zCentroid = 0
	}
	if zCentroid < far {
		zCentroid = far
	}
	if zCentroid > near {
		zCentroid = near
	}
	extent := near - far
	q := math.Round((zCentroid - far) / extent * 65535)
	if q < 0 {
		q = 0
	}
	if q > 65535 {
		q = 65535
	}
	return uint32(q)<<16 | uint32(uint16(index))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

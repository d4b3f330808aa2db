package render

import "delilah/scene"

// sortDescByZ returns v1,v2,v3 reordered so v1.Z >= v2.Z >= v3.Z, via the
// same three-compare bubble sort spec.md §4.3.1 step 2 calls for.
func sortDescByZ(v1, v2, v3 scene.Vec3) (scene.Vec3, scene.Vec3, scene.Vec3) {
	if v1.Z < v2.Z {
		v1, v2 = v2, v1
	}
	if v2.Z < v3.Z {
		v2, v3 = v3, v2
	}
	if v1.Z < v2.Z {
		v1, v2 = v2, v1
	}
	return v1, v2, v3
}

// triangleSubtriangleCount computes k_max per spec.md §4.3.1: 1, doubled
// once if exactly one vertex is past far, doubled again if exactly one
// vertex is past near.
func triangleSubtriangleCount(v1, v2, v3 scene.Vec3, near, far float64) (kMax int, nearCount1, nearCount2, farCount1, farCount2 bool) {
	nNear := 0
	nFar := 0
	for _, v := range [3]scene.Vec3{v1, v2, v3} {
		if v.Z >= near {
			nNear++
		}
		if v.Z <= far {
			nFar++
		}
	}
	kMax = 1
	if nFar == 1 {
		kMax *= 2
		farCount1 = true
	} else if nFar == 2 {
		farCount2 = true
	}
	if nNear == 1 {
		kMax *= 2
		nearCount1 = true
	} else if nNear == 2 {
		nearCount2 = true
	}
	return kMax, nearCount1, nearCount2, farCount1, farCount2
}

// clipTriangleIteration produces the k-th (of kMax) subtriangle for a
// triangle straddling the near and/or far plane, per spec.md §4.3.1 steps
// 2-4. v1,v2,v3 must already be the original camera-space vertices for
// this triangle (any order); the function re-sorts them descending by Z.
func clipTriangleIteration(origV1, origV2, origV3 scene.Vec3, near, far float64, k, kMax int, nearCount1, nearCount2, farCount1, farCount2 bool) (scene.Vec3, scene.Vec3, scene.Vec3) {
	v1, v2, v3 := sortDescByZ(origV1, origV2, origV3)

	if nearCount2 {
		v1 = edgeAt(v3, v1, near)
		v2 = edgeAt(v3, v2, near)
	} else if nearCount1 {
		top, bottom := v1, v3
		p1 := edgeAt(top, v2, near)
		if k <= kMax/2 {
			v1 = p1
		} else {
			v1 = p1
			v2 = edgeAt(top, bottom, near)
		}
	}

	if farCount2 {
		v2 = edgeAt(v1, v2, far)
		v3 = edgeAt(v1, v3, far)
	} else if farCount1 {
		top, bottom := v1, v3
		p1 := edgeAt(bottom, v2, far)
		if k%2 == 1 {
			v3 = p1
		} else {
			v3 = p1
			v2 = edgeAt(bottom, top, far)
		}
	}

	return v1, v2, v3
}

package scene

import (
	"testing"

	"delilah/hicolor"
)

func triangleFixture() ([]Vec3, []RawObject) {
	verts := []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	objs := []RawObject{{A: 0, B: 1, C: 2, D: uint16(hicolor.Pack(31, 0, 0)), E: 0}}
	return verts, objs
}

func TestNewStoreClassifiesAllKinds(t *testing.T) {
	verts := []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	radii := []float64{2.5}
	lstyles := []LineStyle{{Width: 1, Color: hicolor.Pack(0, 31, 0)}}
	pstyles := []PointStyleIn{{Shape: ShapeCircle, Size: 3, Stroke: 0, Fill: hicolor.Pack(0, 0, 31), HasFill: true}}

	raws := []RawObject{
		{A: 0, B: 1, C: 2, D: uint16(hicolor.Pack(31, 0, 0)), E: 0},          // triangle
		{A: 0, B: sentinel, C: 0, D: uint16(hicolor.Pack(0, 31, 0)), E: 0},   // sphere
		{A: 0, B: 3, C: sentinel, D: 0, E: 0},                               // line
		{A: 0, B: sentinel, C: sentinel, D: 0, E: 0},                        // point
	}

	st, err := NewStore(verts, radii, raws, pstyles, lstyles)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	wantKinds := []Kind{KindTriangle, KindSphere, KindLine, KindPoint}
	for i, k := range wantKinds {
		if st.Objects[i].Kind != k {
			t.Fatalf("object %d kind = %v; want %v", i, st.Objects[i].Kind, k)
		}
	}
}

func TestNewStoreAllocatesScratchBuffers(t *testing.T) {
	verts, objs := triangleFixture()
	st, err := NewStore(verts, nil, objs, nil, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if len(st.CameraSpace) != len(verts) || len(st.ProjectedSpace) != len(verts) {
		t.Fatalf("scratch vertex buffers must match vertex table length")
	}
	if len(st.PaintKeys) != len(objs) {
		t.Fatalf("paint key buffer must match object table length")
	}
}

func TestNewStoreRejectsOutOfRangeVertexIndex(t *testing.T) {
	verts := []Vec3{{0, 0, 0}}
	pstyles := []PointStyleIn{{Shape: ShapeCircle, Size: 1, Fill: hicolor.Pack(1, 1, 1), HasFill: true}}
	objs := []RawObject{{A: 0, B: sentinel, C: sentinel, D: 0, E: 0}}
	if _, err := NewStore(verts, nil, objs, pstyles, nil); err != nil {
		t.Fatalf("expected valid single-vertex point scene, got %v", err)
	}

	badObjs := []RawObject{{A: 5, B: sentinel, C: sentinel, D: 0, E: 0}}
	if _, err := NewStore(verts, nil, badObjs, pstyles, nil); err == nil {
		t.Fatalf("expected error for out-of-range vertex index")
	}
}

func TestNewStoreRejectsFullyTransparentSphere(t *testing.T) {
	verts := []Vec3{{0, 0, 0}}
	radii := []float64{1}
	objs := []RawObject{{A: 0, B: sentinel, C: 0, D: sentinel, E: sentinel}}

	_, err := NewStore(verts, radii, objs, nil, nil)
	if err == nil {
		t.Fatalf("expected error for fully-transparent sphere")
	}
	if err.Error() != "Spheres may not be fully transparent" {
		t.Fatalf("error = %q; want exact spec.md S4 message", err.Error())
	}
}

func TestNewStoreRejectsFillOnUnfillableShape(t *testing.T) {
	pstyles := []PointStyleIn{{Shape: ShapePlus, Size: 3, Fill: hicolor.Pack(1, 1, 1), HasFill: true}}
	verts, objs := triangleFixture()
	_, err := NewStore(verts, nil, objs, pstyles, nil)
	if err == nil {
		t.Fatalf("expected error for fill on unfillable shape")
	}
	if err.Error() != "Point style may not have fill for unfilled shapes" {
		t.Fatalf("error = %q; want exact spec.md S6 message", err.Error())
	}
}

func TestNewStoreRejectsEdgeSelectorPastLineStyleTable(t *testing.T) {
	verts := []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	objs := []RawObject{{A: 0, B: 1, C: 2, D: 0, E: 31 << 10}} // selector 31 -> style index 30, needs 31 styles
	if _, err := NewStore(verts, nil, objs, nil, nil); err == nil {
		t.Fatalf("expected error: no line styles defined but edge selector set")
	}
}

func TestToRawRoundTrip(t *testing.T) {
	verts, objs := triangleFixture()
	st, err := NewStore(verts, nil, objs, nil, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	got := st.Objects[0].ToRaw()
	if got != objs[0] {
		t.Fatalf("ToRaw() = %+v; want %+v", got, objs[0])
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{KindPoint: "point", KindLine: "line", KindSphere: "sphere", KindTriangle: "triangle"}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q; want %q", k, got, want)
		}
	}
}

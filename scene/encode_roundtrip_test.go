package scene_test

import (
	"reflect"
	"testing"

	"delilah/hicolor"
	"delilah/scene"
	"delilah/sceneparser"
)

// roundTrip parses raw, encodes the result, and reparses the encoding,
// returning both stores for comparison. Exercises spec.md §8 property 2:
// parse(encode(parse(x))) reproduces an equivalent store to parse(x).
func roundTrip(t *testing.T, st *scene.Store) *scene.Store {
	t.Helper()
	raw, err := st.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	reparsed, err := sceneparser.Parse(raw)
	if err != nil {
		t.Fatalf("Parse(Encode(store)): %v\nencoded: %s", err, raw)
	}
	return reparsed
}

func TestEncodeRoundTripsDefaultScene(t *testing.T) {
	st, err := sceneparser.LoadDefaultScene()
	if err != nil {
		t.Fatalf("LoadDefaultScene: %v", err)
	}
	reparsed := roundTrip(t, st)

	if !reflect.DeepEqual(st.Vertices, reparsed.Vertices) {
		t.Fatalf("vertices mismatch after round trip:\ngot  %v\nwant %v", reparsed.Vertices, st.Vertices)
	}
	if !reflect.DeepEqual(st.Objects, reparsed.Objects) {
		t.Fatalf("objects mismatch after round trip:\ngot  %v\nwant %v", reparsed.Objects, st.Objects)
	}
	if !reflect.DeepEqual(st.PointStyles, reparsed.PointStyles) {
		t.Fatalf("point styles mismatch after round trip:\ngot  %v\nwant %v", reparsed.PointStyles, st.PointStyles)
	}
	if !reflect.DeepEqual(st.LineStyles, reparsed.LineStyles) {
		t.Fatalf("line styles mismatch after round trip:\ngot  %v\nwant %v", reparsed.LineStyles, st.LineStyles)
	}
}

func TestEncodeRoundTripsEveryObjectKind(t *testing.T) {
	verts := []scene.Vec3{
		{X: 0, Y: 0, Z: -5}, {X: 1, Y: 0, Z: -5}, {X: 0, Y: 1, Z: -5},
		{X: 2, Y: 2, Z: -8}, {X: -2, Y: -2, Z: -8},
	}
	radii := []float64{1.5}
	pstyles := []scene.PointStyleIn{
		{Shape: scene.ShapeSquare, Size: 4, Stroke: 1, Fill: hicolor.Pack(31, 0, 0), HasFill: true, Ink: hicolor.Pack(0, 0, 0), HasInk: true},
	}
	lstyles := []scene.LineStyle{
		{Width: 1.5, Color: hicolor.Pack(0, 31, 0)},
	}
	objs := []scene.RawObject{
		{A: 0, B: 1, C: 2, D: uint16(hicolor.Pack(31, 0, 0)), E: 1 << 10},
		{A: 3, B: 0xFFFF, C: 0, D: uint16(hicolor.Pack(0, 31, 0)), E: 0},
		{A: 3, B: 4, C: 0xFFFF, D: 0, E: 0},
		{A: 0, B: 0xFFFF, C: 0xFFFF, D: 0, E: 0},
	}
	st, err := scene.NewStore(verts, radii, objs, pstyles, lstyles)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	reparsed := roundTrip(t, st)

	if !reflect.DeepEqual(st.Vertices, reparsed.Vertices) {
		t.Fatalf("vertices mismatch:\ngot  %v\nwant %v", reparsed.Vertices, st.Vertices)
	}
	if !reflect.DeepEqual(st.Radii, reparsed.Radii) {
		t.Fatalf("radii mismatch:\ngot  %v\nwant %v", reparsed.Radii, st.Radii)
	}
	if !reflect.DeepEqual(st.Objects, reparsed.Objects) {
		t.Fatalf("objects mismatch:\ngot  %v\nwant %v", reparsed.Objects, st.Objects)
	}
	if !reflect.DeepEqual(st.PointStyles, reparsed.PointStyles) {
		t.Fatalf("point styles mismatch:\ngot  %v\nwant %v", reparsed.PointStyles, st.PointStyles)
	}
	if !reflect.DeepEqual(st.LineStyles, reparsed.LineStyles) {
		t.Fatalf("line styles mismatch:\ngot  %v\nwant %v", reparsed.LineStyles, st.LineStyles)
	}
}

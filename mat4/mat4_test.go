package mat4

import (
	"math"
	"testing"
)

func TestTranslateComposition(t *testing.T) {
	a, b, c := 1.0, 2.0, 3.0
	d, e, f := 4.0, 5.0, 6.0

	got := Identity().Translate(a, b, c).Translate(d, e, f)
	want := Identity().Translate(a+d, b+e, c+f)

	if got != want {
		t.Fatalf("Translate(%v,%v,%v).Translate(%v,%v,%v) = %v; want %v", a, b, c, d, e, f, got, want)
	}
}

func TestScaleComposition(t *testing.T) {
	got := Identity().Scale(2, 3, 4).Scale(5, 6, 7)
	want := Identity().Scale(10, 18, 28)
	if got != want {
		t.Fatalf("Scale composition mismatch: got %v want %v", got, want)
	}
}

func TestIdentityIsFinite(t *testing.T) {
	if !Identity().IsFinite() {
		t.Fatalf("identity must be finite")
	}
}

func TestIsFiniteDetectsNaN(t *testing.T) {
	m := Identity()
	m[1][1] = math.NaN()
	if m.IsFinite() {
		t.Fatalf("matrix containing NaN must not be finite")
	}
}

func TestTransformTranslate(t *testing.T) {
	m := Identity().Translate(1, 2, 3)
	x, y, z := m.Transform(0, 0, 0)
	if x != 1 || y != 2 || z != 3 {
		t.Fatalf("Transform(0,0,0) via translate(1,2,3) = (%v,%v,%v); want (1,2,3)", x, y, z)
	}
}

func TestTransformZeroWScrubsToOrigin(t *testing.T) {
	var m M // zero matrix: W column is all zero
	x, y, z := m.Transform(1, 2, 3)
	if x != 0 || y != 0 || z != 0 {
		t.Fatalf("Transform with W=0 = (%v,%v,%v); want origin", x, y, z)
	}
}

func TestTransformScrubsNonFinite(t *testing.T) {
	m := Identity().Scale(math.MaxFloat64, 1, 1).Scale(math.MaxFloat64, 1, 1)
	x, _, _ := m.Transform(1, 0, 0)
	if !isFinite(x) {
		t.Fatalf("Transform must scrub non-finite coordinates to zero, got %v", x)
	}
}

func TestPerspectiveOnlyTouchesRow2Col3(t *testing.T) {
	d := 5.0
	got := Identity().Perspective(d)
	want := Identity()
	want[2][3] = -1 / d
	if got != want {
		t.Fatalf("Perspective(%v) = %v; want %v", d, got, want)
	}
}

func TestRotateYFullTurnIsIdentity(t *testing.T) {
	m := Identity().RotateY(2 * math.Pi)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(m[r][c]-Identity()[r][c]) > 1e-9 {
				t.Fatalf("RotateY(2pi) should be ~identity, cell [%d][%d]=%v", r, c, m[r][c])
			}
		}
	}
}

func TestMulIdentityIsNoOp(t *testing.T) {
	b := Identity().Translate(1, 2, 3).RotateX(0.4)
	if Mul(Identity(), b) != b {
		t.Fatalf("identity*b must equal b")
	}
	if Mul(b, Identity()) != b {
		t.Fatalf("b*identity must equal b")
	}
}

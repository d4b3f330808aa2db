// Package mat4 implements the 4x4 homogeneous matrix used by the renderer's
// view and projection pipeline.
//
// Matrices are row-major and every building operation post-multiplies the
// receiver by the named elementary matrix, so a chain of calls reads as
// "apply this transform after what's already there" — the same order a
// caller sees them written in.
package mat4

import "math"

// M is a 4x4 matrix stored row-major: M[row][col].
type M [4][4]float64

// Identity returns the identity matrix.
func Identity() M {
	return M{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns a*b (row-major, standard matrix product).
func Mul(a, b M) M {
	var out M
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[r][k] * b[k][c]
			}
			out[r][c] = sum
		}
	}
	return out
}

// Translate post-multiplies m by a translation of (tx,ty,tz).
func (m M) Translate(tx, ty, tz float64) M {
	t := Identity()
	t[3][0], t[3][1], t[3][2] = tx, ty, tz
	return Mul(m, t)
}

// Scale post-multiplies m by a scale of (sx,sy,sz).
func (m M) Scale(sx, sy, sz float64) M {
	s := Identity()
	s[0][0], s[1][1], s[2][2] = sx, sy, sz
	return Mul(m, s)
}

// RotateX post-multiplies m by a rotation of theta radians about X.
func (m M) RotateX(theta float64) M {
	c, s := math.Cos(theta), math.Sin(theta)
	r := Identity()
	r[1][1], r[1][2] = c, s
	r[2][1], r[2][2] = -s, c
	return Mul(m, r)
}

// RotateY post-multiplies m by a rotation of theta radians about Y.
func (m M) RotateY(theta float64) M {
	c, s := math.Cos(theta), math.Sin(theta)
	r := Identity()
	r[0][0], r[0][2] = c, -s
	r[2][0], r[2][2] = s, c
	return Mul(m, r)
}

// RotateZ post-multiplies m by a rotation of theta radians about Z.
func (m M) RotateZ(theta float64) M {
	c, s := math.Cos(theta), math.Sin(theta)
	r := Identity()
	r[0][0], r[0][1] = c, s
	r[1][0], r[1][1] = -s, c
	return Mul(m, r)
}

// Perspective post-multiplies m by the pinhole projection matrix whose only
// non-identity entry beyond the diagonal is M[2][3] = -1/d: the screen lies
// at Z=0, the projection point at Z=d, and the image is not flipped.
func (m M) Perspective(d float64) M {
	p := Identity()
	p[2][3] = -1 / d
	return Mul(m, p)
}

// Transform treats pt as a row vector with implicit W=1, post-multiplies by
// m, then divides X,Y,Z by the resulting W. If W is zero the result is the
// origin; any non-finite resulting component is coerced to zero.
func (m M) Transform(x, y, z float64) (float64, float64, float64) {
	rx := x*m[0][0] + y*m[1][0] + z*m[2][0] + m[3][0]
	ry := x*m[0][1] + y*m[1][1] + z*m[2][1] + m[3][1]
	rz := x*m[0][2] + y*m[1][2] + z*m[2][2] + m[3][2]
	rw := x*m[0][3] + y*m[1][3] + z*m[2][3] + m[3][3]

	if rw == 0 {
		return 0, 0, 0
	}
	ox, oy, oz := rx/rw, ry/rw, rz/rw
	if !isFinite(ox) {
		ox = 0
	}
	if !isFinite(oy) {
		oy = 0
	}
	if !isFinite(oz) {
		oz = 0
	}
	return ox, oy, oz
}

// IsFinite reports whether every one of the matrix's 16 cells is finite.
func (m M) IsFinite() bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !isFinite(m[r][c]) {
				return false
			}
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

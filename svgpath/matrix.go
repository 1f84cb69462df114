package svgpath

import "math"

// Matrix2D is an affine transform in the SVG convention,
//
//	| A C E |
//	| B D F |
//
// mapping a point (x, y) to (A*x + C*y + E, B*x + D*y + F).
// E and F carry the translation.
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity matrix
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns the matrix product m x n, meaning n is
// applied to a point first, then m.
func (m Matrix2D) Mult(n Matrix2D) Matrix2D {
	return Matrix2D{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Translate composes a translation onto m (in m's local frame).
func (m Matrix2D) Translate(x, y float64) Matrix2D {
	return m.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale composes a scaling onto m (in m's local frame).
func (m Matrix2D) Scale(sx, sy float64) Matrix2D {
	return m.Mult(Matrix2D{sx, 0, 0, sy, 0, 0})
}

// Rotate composes a rotation of `angle` radians about the origin onto m.
func (m Matrix2D) Rotate(angle float64) Matrix2D {
	sin, cos := math.Sincos(angle)
	return m.Mult(Matrix2D{cos, sin, -sin, cos, 0, 0})
}

// Apply transforms the point (x, y) by m.
func (m Matrix2D) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix2D) IsIdentity() bool {
	return m == Identity
}

// Invert returns the inverse of m. The second return value is false
// when m is degenerate (zero determinant), in which case the identity
// matrix is returned.
func (m Matrix2D) Invert() (Matrix2D, bool) {
	det := m.A*m.D - m.B*m.C
	if math.Abs(det) < 1e-12 {
		return Identity, false
	}
	inv := 1 / det
	return Matrix2D{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}, true
}

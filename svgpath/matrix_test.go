package svgpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixApply(t *testing.T) {
	m := Identity.Translate(10, 0).Scale(2, 2)
	x, y := m.Apply(1, 1)
	assert.InDelta(t, 12.0, x, 1e-9)
	assert.InDelta(t, 2.0, y, 1e-9)
}

func TestMatrixMultOrder(t *testing.T) {
	// Mult(n) applies n first, then the receiver.
	tr := Matrix2D{1, 0, 0, 1, 5, 7}
	sc := Matrix2D{3, 0, 0, 3, 0, 0}
	x, y := tr.Mult(sc).Apply(1, 1)
	assert.InDelta(t, 8.0, x, 1e-9)
	assert.InDelta(t, 10.0, y, 1e-9)
}

func TestMatrixRotate(t *testing.T) {
	m := Identity.Rotate(math.Pi / 2)
	x, y := m.Apply(1, 0)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 1.0, y, 1e-9)
}

func TestMatrixIsIdentity(t *testing.T) {
	assert.True(t, Identity.IsIdentity())
	assert.True(t, Identity.Translate(5, 5).Translate(-5, -5).IsIdentity())
	assert.False(t, Identity.Scale(2, 2).IsIdentity())
}

func TestMatrixInvert(t *testing.T) {
	m := Identity.Translate(3, -2).Scale(2, 4).Rotate(0.3)
	inv, ok := m.Invert()
	assert.True(t, ok)

	x, y := m.Apply(1.5, -7)
	bx, by := inv.Apply(x, y)
	assert.InDelta(t, 1.5, bx, 1e-9)
	assert.InDelta(t, -7.0, by, 1e-9)
}

func TestMatrixInvertDegenerate(t *testing.T) {
	m := Matrix2D{0, 0, 0, 0, 1, 2}
	inv, ok := m.Invert()
	assert.False(t, ok)
	assert.Equal(t, Identity, inv)
}

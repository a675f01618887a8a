package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointOps(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(-1, 2)

	assert.Equal(t, Pt(2, 6), a.Add(b))
	assert.Equal(t, Pt(4, 2), a.Sub(b))
	assert.Equal(t, Pt(6, 8), a.Mul(2))
	assert.InDelta(t, 5.0, a.Length(), 1e-12)
	assert.InDelta(t, 5.0, b.Dot(a), 1e-12)
	assert.InDelta(t, 3*2-4*(-1), a.Cross(b), 1e-12)
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"same point", Pt(1, 1), Pt(1, 1), 0},
		{"3-4-5 triangle", Pt(0, 0), Pt(3, 4), 5},
		{"negative quadrant", Pt(-2, -3), Pt(-2, 5), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.p.Distance(tt.q), 1e-12)
		})
	}
}

func TestNormalize(t *testing.T) {
	n := Pt(10, 0).Normalize()
	assert.Equal(t, Pt(1, 0), n)

	// Zero vector normalizes to zero, not NaN.
	z := Point{}.Normalize()
	assert.Equal(t, Point{}, z)
	assert.False(t, math.IsNaN(z.X))
}

func TestLerpAndMidpoint(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, -20)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Pt(5, -10), a.Midpoint(b))
	assert.Equal(t, Pt(2.5, -5), a.Lerp(b, 0.25))
}

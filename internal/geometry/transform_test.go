package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	p := Pt(3, -7)
	assert.Equal(t, p, Identity().Apply(p))
}

func TestTranslateAndScale(t *testing.T) {
	assert.Equal(t, Pt(4, 1), Translate(3, -1).Apply(Pt(1, 2)))
	assert.Equal(t, Pt(2, 6), Scale(2, 3).Apply(Pt(1, 2)))
}

func TestMulComposition(t *testing.T) {
	u := Translate(5, 0)
	v := Rotate(math.Pi / 2)
	p := Pt(1, 0)

	composed := v.Mul(u).Apply(p)
	stepwise := v.Apply(u.Apply(p))
	assert.InDelta(t, stepwise.X, composed.X, 1e-12)
	assert.InDelta(t, stepwise.Y, composed.Y, 1e-12)
}

// Shear is the canonical map that is affine but not Euclidean: it must
// keep parallel segments parallel and preserve ratios along a line,
// while changing lengths.
func TestShearPreservesAffineInvariants(t *testing.T) {
	sh := Shear(0.7)

	s1 := Segment{A: Pt(0, 0), B: Pt(4, 2)}
	s2 := Segment{A: Pt(-3, 5), B: Pt(1, 7)} // parallel to s1

	assert.True(t, Parallel(s1, s2))
	assert.True(t, Parallel(sh.ApplySegment(s1), sh.ApplySegment(s2)))

	// Ratio along a line is invariant.
	a, b := Pt(0, 0), Pt(10, 4)
	p := a.Lerp(b, 0.3)
	got := Ratio(sh.Apply(a), sh.Apply(b), sh.Apply(p))
	assert.InDelta(t, 0.3, got, 1e-9)
}

func TestShearBreaksEuclideanInvariants(t *testing.T) {
	sh := Shear(0.7)
	s := Segment{A: Pt(0, 0), B: Pt(0, 10)}

	sheared := sh.ApplySegment(s)
	assert.Greater(t, sheared.Length(), s.Length())

	// The right angle at the origin does not survive.
	before := Angle(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	after := Angle(sh.Apply(Pt(0, 0)), sh.Apply(Pt(1, 0)), sh.Apply(Pt(0, 1)))
	assert.InDelta(t, math.Pi/2, before, 1e-12)
	assert.Greater(t, math.Abs(after-math.Pi/2), 1e-3)
}

func TestRotatePreservesDistance(t *testing.T) {
	rot := Rotate(1.1)
	a, b := Pt(2, 3), Pt(-4, 1)
	assert.InDelta(t, a.Distance(b), rot.Apply(a).Distance(rot.Apply(b)), 1e-12)
}

func TestDegenerate(t *testing.T) {
	assert.False(t, Identity().Degenerate())
	assert.False(t, Shear(3).Degenerate())
	assert.True(t, Scale(0, 1).Degenerate())
}

package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	s := Segment{A: Pt(0, 0), B: Pt(6, 8)}

	assert.InDelta(t, 10.0, s.Length(), 1e-12)
	assert.Equal(t, Pt(3, 4), s.Midpoint())
	assert.Equal(t, Pt(6, 8), s.Direction())
	assert.InDelta(t, 8.0/6.0, s.Slope(), 1e-12)
}

func TestSlopeVertical(t *testing.T) {
	s := Segment{A: Pt(2, -1), B: Pt(2, 5)}
	assert.True(t, math.IsInf(s.Slope(), 1))
}

func TestParallel(t *testing.T) {
	tests := []struct {
		name string
		s, u Segment
		want bool
	}{
		{
			"same direction",
			Segment{Pt(0, 0), Pt(2, 1)},
			Segment{Pt(5, 5), Pt(9, 7)},
			true,
		},
		{
			"opposite direction",
			Segment{Pt(0, 0), Pt(2, 1)},
			Segment{Pt(0, 0), Pt(-4, -2)},
			true,
		},
		{
			"not parallel",
			Segment{Pt(0, 0), Pt(2, 1)},
			Segment{Pt(0, 0), Pt(1, 2)},
			false,
		},
		{
			"both vertical",
			Segment{Pt(1, 0), Pt(1, 9)},
			Segment{Pt(4, -3), Pt(4, 2)},
			true,
		},
		{
			"degenerate segment",
			Segment{Pt(1, 1), Pt(1, 1)},
			Segment{Pt(0, 0), Pt(1, 0)},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parallel(tt.s, tt.u))
		})
	}
}

func TestCollinear(t *testing.T) {
	assert.True(t, Collinear(Pt(0, 0), Pt(1, 1), Pt(5, 5), 1e-9))
	assert.False(t, Collinear(Pt(0, 0), Pt(1, 1), Pt(5, 5.1), 1e-9))
}

func TestRatio(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)

	assert.InDelta(t, 0.0, Ratio(a, b, a), 1e-12)
	assert.InDelta(t, 1.0, Ratio(a, b, b), 1e-12)
	assert.InDelta(t, 0.5, Ratio(a, b, Pt(5, 0)), 1e-12)
	assert.InDelta(t, -0.5, Ratio(a, b, Pt(-5, 0)), 1e-12)

	// Degenerate segment.
	assert.Equal(t, 0.0, Ratio(a, a, b))
}

func TestAngle(t *testing.T) {
	v := Pt(0, 0)

	assert.InDelta(t, math.Pi/2, Angle(v, Pt(1, 0), Pt(0, 1)), 1e-12)
	assert.InDelta(t, math.Pi, Angle(v, Pt(1, 0), Pt(-1, 0)), 1e-12)
	assert.InDelta(t, 0, Angle(v, Pt(1, 0), Pt(5, 0)), 1e-12)

	// Degenerate ray.
	assert.Equal(t, 0.0, Angle(v, v, Pt(1, 0)))
}

func TestPerpendicularBisector(t *testing.T) {
	s := Segment{A: Pt(-10, 0), B: Pt(10, 0)}
	pb := PerpendicularBisector(s, 5)

	// Passes through the midpoint, perpendicular to s.
	assert.Equal(t, s.Midpoint(), pb.Midpoint())
	assert.InDelta(t, 0, pb.Direction().Dot(s.Direction()), 1e-9)
	assert.InDelta(t, 10, pb.Length(), 1e-9)
}

func TestParallelThrough(t *testing.T) {
	base := Segment{A: Pt(0, 0), B: Pt(4, 2)}
	p := Pt(-3, 7)
	through := ParallelThrough(p, base)

	assert.Equal(t, p, through.A)
	assert.True(t, Parallel(base, through))
	assert.InDelta(t, base.Length(), through.Length(), 1e-12)
}

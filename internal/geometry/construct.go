package geometry

import "math"

// Eps is the tolerance used by the parallelism and collinearity
// predicates. Direction vectors are normalized first, so this bounds
// the sine of the angle between them.
const Eps = 1e-9

// Segment is the straight segment between two points.
type Segment struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

func (s Segment) Midpoint() Point {
	return s.A.Midpoint(s.B)
}

// Direction returns the (non-normalized) direction vector A->B.
func (s Segment) Direction() Point {
	return s.B.Sub(s.A)
}

// Slope returns dy/dx of the segment. Vertical segments return +Inf.
func (s Segment) Slope() float64 {
	d := s.Direction()
	if d.X == 0 {
		return math.Inf(1)
	}
	return d.Y / d.X
}

// Parallel reports whether two segments are parallel within tolerance.
// Degenerate (zero-length) segments are parallel to nothing.
func Parallel(s, t Segment) bool {
	u := s.Direction().Normalize()
	v := t.Direction().Normalize()
	if (u == Point{}) || (v == Point{}) {
		return false
	}
	return math.Abs(u.Cross(v)) < Eps
}

// Collinear reports whether three points lie on one line within tolerance.
func Collinear(a, b, c Point, tol float64) bool {
	return math.Abs(b.Sub(a).Cross(c.Sub(a))) <= tol
}

// Ratio returns how far p lies along the segment a->b, as the signed
// scalar projection onto the segment direction: 0 at a, 1 at b, 0.5 at
// the midpoint. Returns 0 for a degenerate segment.
func Ratio(a, b, p Point) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return 0
	}
	return p.Sub(a).Dot(d) / l2
}

// Angle returns the angle at vertex v formed by rays v->a and v->b,
// in radians in [0, pi].
func Angle(v, a, b Point) float64 {
	u := a.Sub(v)
	w := b.Sub(v)
	lu, lw := u.Length(), w.Length()
	if lu == 0 || lw == 0 {
		return 0
	}
	cos := u.Dot(w) / (lu * lw)
	// Clamp against rounding before acos.
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

// PerpendicularBisector returns a segment of the given half-length
// through the midpoint of s, perpendicular to it. A degenerate input
// yields a degenerate output at the midpoint.
func PerpendicularBisector(s Segment, halfLength float64) Segment {
	mid := s.Midpoint()
	d := s.Direction().Normalize()
	perp := Point{X: -d.Y, Y: d.X}.Mul(halfLength)
	return Segment{A: mid.Add(perp), B: mid.Sub(perp)}
}

// ParallelThrough returns a segment through p with the same direction
// and length as base. This is the affine construction "the line through
// p parallel to base"; it stays parallel to base no matter where either
// endpoint of base or p is dragged.
func ParallelThrough(p Point, base Segment) Segment {
	return Segment{A: p, B: p.Add(base.Direction())}
}

package geometry

import "math"

// Transform is a 2x3 affine matrix: [ A C E ; B D F ].
// It maps (x, y) to (A*x + C*y + E, B*x + D*y + F).
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a scaling by (sx, sy) about the origin.
func Scale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Shear returns a horizontal shear: x' = x + k*y. Shear is the
// canonical affine-but-not-Euclidean map used by the demonstration.
func Shear(k float64) Transform {
	return Transform{A: 1, C: k, D: 1}
}

// Rotate returns a rotation by angle radians about the origin.
func Rotate(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

// Mul composes two transforms: (t.Mul(u)).Apply(p) == t.Apply(u.Apply(p)).
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		A: t.A*u.A + t.C*u.B,
		B: t.B*u.A + t.D*u.B,
		C: t.A*u.C + t.C*u.D,
		D: t.B*u.C + t.D*u.D,
		E: t.A*u.E + t.C*u.F + t.E,
		F: t.B*u.E + t.D*u.F + t.F,
	}
}

// Apply maps a point through the transform.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// ApplySegment maps both endpoints of a segment.
func (t Transform) ApplySegment(s Segment) Segment {
	return Segment{A: t.Apply(s.A), B: t.Apply(s.B)}
}

// Degenerate reports whether the linear part of t collapses the plane
// to a line or a point. Non-degenerate affine maps preserve parallelism
// and ratios along a line; none but the isometries preserve distance.
func (t Transform) Degenerate() bool {
	return math.Abs(t.A*t.D-t.B*t.C) < Eps
}

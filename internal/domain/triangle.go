package domain

// The three side lengths of a triangle, in the same unit as the sphere
// radius that produced them. Side A is the side opposite angle A, and so
// on cyclically; the solvers never validate or reorder, so keeping that
// correspondence is the caller's job.
type TriangleSides struct {
	A float64
	B float64
	C float64
}

// The three interior angles of a solved triangle plus their sum, all in
// degrees. Field names pair with TriangleSides: A is the angle opposite
// side A. A planar triangle sums to ~180; a spherical one sums above 180
// by its spherical excess.
// Immutable result data, produced fresh on each solve.
type TriangleAngles struct {
	A   float64
	B   float64
	C   float64
	Sum float64
}

func NewTriangleAngles(a, b, c float64) TriangleAngles {
	return TriangleAngles{A: a, B: b, C: c, Sum: a + b + c}
}

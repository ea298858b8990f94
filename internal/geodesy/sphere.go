package geodesy

import (
	"math"

	"triangle-survey/internal/domain"
)

// Mean Earth radius under the two supported units. The radius handed to
// NewSphere decides the unit of every distance and side length derived
// from it.
const (
	EarthRadiusMiles      = 3959.0
	EarthRadiusKilometers = 6371.0
)

// A perfect sphere of fixed radius. Distances and spherical angle
// solutions depend on the radius, so it travels with the value instead of
// hiding in a package global.
type Sphere struct {
	Radius float64
}

func NewSphere(radius float64) Sphere {
	return Sphere{Radius: radius}
}

// hav is the haversine of an angle: sin²(x/2).
func hav(x float64) float64 {
	s := math.Sin(x / 2)
	return s * s
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Distance returns the great-circle distance between two points, in the
// unit of the sphere radius.
//
// Symmetric, non-negative, and zero for identical points. The asin
// argument is not clamped: near-antipodal rounding can push it a hair
// above 1 and surface as NaN from Asin.
func (s Sphere) Distance(p, q domain.Coordinate) float64 {
	h := hav(math.Abs(p.Lat-q.Lat)) +
		math.Cos(p.Lat)*math.Cos(q.Lat)*hav(math.Abs(p.Lon-q.Lon))
	return 2 * s.Radius * math.Asin(math.Sqrt(h))
}

// TriangleAngles solves a spherical triangle from its three side lengths
// using the spherical law of cosines. Sides are converted to angular
// lengths by dividing by the sphere radius, so they must be in the same
// unit as the radius.
//
// Degenerate input is not rejected: a zero side or a violated triangle
// inequality surfaces as NaN or Inf in the result. Use
// TriangleAnglesStrict to get an error instead.
func (s Sphere) TriangleAngles(sides domain.TriangleSides) domain.TriangleAngles {
	a := sides.A / s.Radius
	b := sides.B / s.Radius
	c := sides.C / s.Radius

	angleA := math.Acos((math.Cos(a) - math.Cos(b)*math.Cos(c)) / (math.Sin(b) * math.Sin(c)))
	angleB := math.Acos((math.Cos(b) - math.Cos(a)*math.Cos(c)) / (math.Sin(a) * math.Sin(c)))
	angleC := math.Acos((math.Cos(c) - math.Cos(a)*math.Cos(b)) / (math.Sin(a) * math.Sin(b)))

	return domain.NewTriangleAngles(degrees(angleA), degrees(angleB), degrees(angleC))
}

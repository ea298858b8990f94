package geodesy

import (
	"math"
	"testing"

	"triangle-survey/internal/domain"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	s := NewSphere(EarthRadiusMiles)
	p := domain.NewCoordinate(35.55, 139.8)

	if d := s.Distance(p, p); d != 0 {
		t.Fatalf("distance(p, p) = %v, want 0", d)
	}
}

func TestDistanceSymmetricAndNonNegative(t *testing.T) {
	s := NewSphere(EarthRadiusMiles)
	points := []domain.Coordinate{
		domain.NewCoordinate(35.55, 139.8),
		domain.NewCoordinate(40.64, -73.78),
		domain.NewCoordinate(33.94, -118.41),
		domain.NewCoordinate(-33.97, 18.6),
		domain.NewCoordinate(0, 0),
	}

	for i, p := range points {
		for j, q := range points {
			pq := s.Distance(p, q)
			qp := s.Distance(q, p)
			if pq != qp {
				t.Errorf("distance not symmetric for points %d,%d: %v vs %v", i, j, pq, qp)
			}
			if pq < 0 {
				t.Errorf("negative distance for points %d,%d: %v", i, j, pq)
			}
		}
	}
}

func TestDistanceTokyoToJFK(t *testing.T) {
	s := NewSphere(EarthRadiusMiles)
	hnd := domain.NewCoordinate(35.55, 139.8)
	jfk := domain.NewCoordinate(40.64, -73.78)

	// Cross-checked against an independent haversine computation.
	got := s.Distance(hnd, jfk)
	if got < 6757.0 || got > 6758.2 {
		t.Fatalf("HND-JFK = %v miles, want ~6757.6", got)
	}
}

func TestDistanceUnitFollowsRadius(t *testing.T) {
	hnd := domain.NewCoordinate(35.55, 139.8)
	jfk := domain.NewCoordinate(40.64, -73.78)

	miles := NewSphere(EarthRadiusMiles).Distance(hnd, jfk)
	km := NewSphere(EarthRadiusKilometers).Distance(hnd, jfk)

	if ratio := km / miles; math.Abs(ratio-EarthRadiusKilometers/EarthRadiusMiles) > 1e-12 {
		t.Fatalf("km/miles ratio = %v, want radius ratio %v", ratio, EarthRadiusKilometers/EarthRadiusMiles)
	}
}

func TestTriangleAnglesOctant(t *testing.T) {
	s := NewSphere(EarthRadiusMiles)
	quarter := s.Radius * math.Pi / 2

	// An octant triangle has three right angles.
	angles := s.TriangleAngles(domain.TriangleSides{A: quarter, B: quarter, C: quarter})
	for _, a := range []float64{angles.A, angles.B, angles.C} {
		if math.Abs(a-90) > 1e-4 {
			t.Fatalf("octant angle = %v, want 90", a)
		}
	}
	if math.Abs(angles.Sum-270) > 1e-4 {
		t.Fatalf("octant sum = %v, want 270", angles.Sum)
	}
}

func TestTriangleAnglesSmallTriangleTracksPlanar(t *testing.T) {
	s := NewSphere(EarthRadiusMiles)
	sides := domain.TriangleSides{A: 1, B: 1, C: 1}

	sph := s.TriangleAngles(sides)
	pla := PlanarTriangleAngles(sides)

	for _, d := range []float64{sph.A - pla.A, sph.B - pla.B, sph.C - pla.C} {
		if math.Abs(d) > 1e-5 {
			t.Fatalf("mile-sized spherical triangle should track planar, angle diff %v", d)
		}
	}
	if sph.Sum < 180 || sph.Sum > 180.001 {
		t.Fatalf("small triangle sum = %v, want barely above 180", sph.Sum)
	}
}

func TestTriangleAnglesExcessGrowsWithArea(t *testing.T) {
	s := NewSphere(EarthRadiusMiles)

	small := s.TriangleAngles(domain.TriangleSides{A: 100, B: 100, C: 100})
	large := s.TriangleAngles(domain.TriangleSides{A: 2000, B: 2000, C: 2000})

	if small.Sum <= 180 {
		t.Fatalf("small triangle sum = %v, want above 180", small.Sum)
	}
	if large.Sum-180 <= small.Sum-180 {
		t.Fatalf("excess did not grow with area: small %v, large %v", small.Sum-180, large.Sum-180)
	}
}

func TestTriangleAnglesDegenerateInputPropagatesNaN(t *testing.T) {
	s := NewSphere(EarthRadiusMiles)

	// A zero side makes sin(b)*sin(c) vanish for one angle; the solver
	// must return the NaN rather than panic.
	angles := s.TriangleAngles(domain.TriangleSides{A: 0, B: 0, C: 0})
	if !math.IsNaN(angles.A) {
		t.Fatalf("angle A = %v, want NaN for all-zero sides", angles.A)
	}
}

package geodesy

import (
	"testing"

	"triangle-survey/internal/domain"
)

func TestValidateSidesRejectsNonPositiveSide(t *testing.T) {
	if err := ValidateSides(domain.TriangleSides{A: 0, B: 1, C: 1}); err == nil {
		t.Fatal("expected error for zero side")
	}
	if err := ValidateSides(domain.TriangleSides{A: 3, B: -4, C: 5}); err == nil {
		t.Fatal("expected error for negative side")
	}
}

func TestValidateSidesRejectsInequalityViolation(t *testing.T) {
	if err := ValidateSides(domain.TriangleSides{A: 1, B: 1, C: 10}); err == nil {
		t.Fatal("expected error for violated triangle inequality")
	}
	// Degenerate zero-area triangle counts as invalid too.
	if err := ValidateSides(domain.TriangleSides{A: 1, B: 2, C: 3}); err == nil {
		t.Fatal("expected error for degenerate triangle")
	}
}

func TestValidateSidesAcceptsValidTriangle(t *testing.T) {
	if err := ValidateSides(domain.TriangleSides{A: 3, B: 4, C: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStrictSolversMatchDefaultOnValidInput(t *testing.T) {
	s := NewSphere(EarthRadiusMiles)
	sides := domain.TriangleSides{A: 3, B: 4, C: 5}

	sph, err := s.TriangleAnglesStrict(sides)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sph != s.TriangleAngles(sides) {
		t.Fatalf("strict spherical result %+v differs from default", sph)
	}

	pla, err := PlanarTriangleAnglesStrict(sides)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pla != PlanarTriangleAngles(sides) {
		t.Fatalf("strict planar result %+v differs from default", pla)
	}
}

func TestStrictSolversRejectInvalidInput(t *testing.T) {
	s := NewSphere(EarthRadiusMiles)

	if _, err := s.TriangleAnglesStrict(domain.TriangleSides{A: 1, B: 1, C: 10}); err == nil {
		t.Fatal("expected spherical strict error for impossible sides")
	}
	if _, err := PlanarTriangleAnglesStrict(domain.TriangleSides{A: 1, B: 1, C: 10}); err == nil {
		t.Fatal("expected planar strict error for impossible sides")
	}
}

func TestStrictSphericalRejectsOversizedTriangle(t *testing.T) {
	// Sides satisfy the planar inequality but the angular perimeter
	// exceeds the circumference of the unit sphere.
	s := NewSphere(1)
	if _, err := s.TriangleAnglesStrict(domain.TriangleSides{A: 3, B: 3, C: 3}); err == nil {
		t.Fatal("expected error for triangle larger than the sphere")
	}
}

package geodesy

import (
	"fmt"
	"math"

	"triangle-survey/internal/domain"
)

// Opt-in validation for callers that want an error instead of silent NaN
// on degenerate geometry. Nothing on the default solve paths calls into
// this file.

// ValidateSides rejects side sets that cannot form a triangle: any
// non-positive side, or a violated triangle inequality. Degenerate
// (zero-area) triangles count as invalid.
func ValidateSides(sides domain.TriangleSides) error {
	if !(sides.A > 0 && sides.B > 0 && sides.C > 0) {
		return fmt.Errorf("validate sides: all sides must be positive (a=%v b=%v c=%v)", sides.A, sides.B, sides.C)
	}

	if sides.A >= sides.B+sides.C || sides.B >= sides.A+sides.C || sides.C >= sides.A+sides.B {
		return fmt.Errorf("validate sides: triangle inequality violated (a=%v b=%v c=%v)", sides.A, sides.B, sides.C)
	}

	return nil
}

// TriangleAnglesStrict is TriangleAngles with geometry validation up
// front. Beyond ValidateSides it rejects triangles whose angular
// perimeter reaches 2π, which cannot lie on a sphere of this radius.
func (s Sphere) TriangleAnglesStrict(sides domain.TriangleSides) (domain.TriangleAngles, error) {
	if err := ValidateSides(sides); err != nil {
		return domain.TriangleAngles{}, fmt.Errorf("spherical angles: %w", err)
	}

	if (sides.A+sides.B+sides.C)/s.Radius >= 2*math.Pi {
		return domain.TriangleAngles{}, fmt.Errorf(
			"spherical angles: perimeter %v does not fit on a sphere of radius %v",
			sides.A+sides.B+sides.C, s.Radius,
		)
	}

	return s.TriangleAngles(sides), nil
}

// PlanarTriangleAnglesStrict is PlanarTriangleAngles with geometry
// validation up front.
func PlanarTriangleAnglesStrict(sides domain.TriangleSides) (domain.TriangleAngles, error) {
	if err := ValidateSides(sides); err != nil {
		return domain.TriangleAngles{}, fmt.Errorf("planar angles: %w", err)
	}

	return PlanarTriangleAngles(sides), nil
}

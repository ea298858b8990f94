package geodesy

import (
	"math"

	"triangle-survey/internal/domain"
)

// PlanarTriangleAngles solves a Euclidean triangle from its three side
// lengths using the law of cosines. No radius is involved; sides only
// need a consistent unit among themselves.
//
// Same ordering contract and degenerate behavior as the spherical solver:
// impossible sides surface as NaN rather than an error. Use
// PlanarTriangleAnglesStrict to get an error instead.
func PlanarTriangleAngles(sides domain.TriangleSides) domain.TriangleAngles {
	angleA := math.Acos((sides.B*sides.B + sides.C*sides.C - sides.A*sides.A) / (2 * sides.B * sides.C))
	angleB := math.Acos((sides.A*sides.A + sides.C*sides.C - sides.B*sides.B) / (2 * sides.A * sides.C))
	angleC := math.Acos((sides.A*sides.A + sides.B*sides.B - sides.C*sides.C) / (2 * sides.A * sides.B))

	return domain.NewTriangleAngles(degrees(angleA), degrees(angleB), degrees(angleC))
}

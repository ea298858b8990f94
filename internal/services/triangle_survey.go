package services

import (
	"context"
	"fmt"

	"triangle-survey/internal/domain"
	"triangle-survey/internal/geodesy"
	"triangle-survey/internal/platform/obs"
	"triangle-survey/internal/ports"
)

// A labeled triangle vertex.
type Vertex struct {
	Label    string
	Position domain.Coordinate
}

// Result of solving one triangle under both geometries.
//
// Sides follow the standard correspondence: side A connects vertices B
// and C (it is opposite vertex A), and likewise cyclically. Immutable
// result data, no side effects.
type TriangleSurvey struct {
	Vertices  [3]Vertex
	Sides     domain.TriangleSides
	Spherical domain.TriangleAngles
	Planar    domain.TriangleAngles

	// Spherical angle sum minus 180 degrees. Grows with the triangle's
	// area relative to the sphere.
	ExcessDegrees float64
}

// SurveyTriangle measures the three sides between the vertices with the
// given provider and solves the triangle under spherical and planar
// geometry.
//
// The provider and sphere must use the same distance unit; the service
// has no way to check that. Degenerate vertex sets (repeated points)
// flow through as NaN angles, matching the solvers.
func SurveyTriangle(
	ctx context.Context,
	vertices [3]Vertex,
	provider ports.DistanceProvider,
	sphere geodesy.Sphere,
) (survey *TriangleSurvey, err error) {
	defer obs.Time(ctx, "survey_triangle")(&err)

	// Side A spans vertices B and C, opposite vertex A.
	sideA, err := provider.Distance(ctx, vertices[1].Position, vertices[2].Position)
	if err != nil {
		return nil, fmt.Errorf("survey triangle: side a (%s-%s): %w", vertices[1].Label, vertices[2].Label, err)
	}

	sideB, err := provider.Distance(ctx, vertices[0].Position, vertices[2].Position)
	if err != nil {
		return nil, fmt.Errorf("survey triangle: side b (%s-%s): %w", vertices[0].Label, vertices[2].Label, err)
	}

	sideC, err := provider.Distance(ctx, vertices[0].Position, vertices[1].Position)
	if err != nil {
		return nil, fmt.Errorf("survey triangle: side c (%s-%s): %w", vertices[0].Label, vertices[1].Label, err)
	}

	sides := domain.TriangleSides{A: sideA, B: sideB, C: sideC}
	spherical := sphere.TriangleAngles(sides)
	planar := geodesy.PlanarTriangleAngles(sides)

	return &TriangleSurvey{
		Vertices:      vertices,
		Sides:         sides,
		Spherical:     spherical,
		Planar:        planar,
		ExcessDegrees: spherical.Sum - 180,
	}, nil
}

// One row of a pairwise distance table.
type Leg struct {
	From     string
	To       string
	Distance float64
}

// DistanceTable computes the distance for every unordered station pair,
// in input order.
func DistanceTable(
	ctx context.Context,
	stations []*domain.Airport,
	provider ports.DistanceProvider,
) (legs []Leg, err error) {
	defer obs.Time(ctx, "distance_table")(&err)

	for i := 0; i < len(stations); i++ {
		for j := i + 1; j < len(stations); j++ {
			d, derr := provider.Distance(ctx, stations[i].Position(), stations[j].Position())
			if derr != nil {
				return nil, fmt.Errorf("distance table: %s -> %s: %w", stations[i].Code, stations[j].Code, derr)
			}

			legs = append(legs, Leg{From: stations[i].Code, To: stations[j].Code, Distance: d})
		}
	}

	return legs, nil
}

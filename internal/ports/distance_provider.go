package ports

import (
	"context"

	"triangle-survey/internal/domain"
)

// Contract for computing the surface distance between two points.
type DistanceProvider interface {
	// Return the distance from p to q in the provider's configured unit.
	Distance(ctx context.Context, p, q domain.Coordinate) (float64, error)
}

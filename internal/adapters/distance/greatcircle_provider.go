package distance

import (
	"context"

	"triangle-survey/internal/domain"
	"triangle-survey/internal/geodesy"
)

// DistanceProvider backed by the haversine formula on a configured
// sphere. The local computation cannot fail; the error return satisfies
// the port contract.
type GreatCircleProvider struct {
	sphere geodesy.Sphere
}

func NewGreatCircleProvider(sphere geodesy.Sphere) *GreatCircleProvider {
	return &GreatCircleProvider{sphere: sphere}
}

func (p *GreatCircleProvider) Distance(ctx context.Context, from, to domain.Coordinate) (float64, error) {
	return p.sphere.Distance(from, to), nil
}

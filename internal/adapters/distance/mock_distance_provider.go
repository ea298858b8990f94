package distance

import (
	"context"
	"fmt"

	"triangle-survey/internal/domain"
)

type MockPair struct {
	From, To domain.Coordinate
	Distance float64
}

type MockDistanceProvider struct {
	m map[[2]domain.Coordinate]float64
}

// Great-circle distance is symmetric, so each pair is stored in both
// directions.
func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[[2]domain.Coordinate]float64, 2*len(pairs))
	for _, p := range pairs {
		m[[2]domain.Coordinate{p.From, p.To}] = p.Distance
		m[[2]domain.Coordinate{p.To, p.From}] = p.Distance
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) Distance(ctx context.Context, from, to domain.Coordinate) (float64, error) {
	d, ok := p.m[[2]domain.Coordinate{from, to}]
	if !ok {
		return 0, fmt.Errorf("missing pair %v -> %v", from, to)
	}

	return d, nil
}

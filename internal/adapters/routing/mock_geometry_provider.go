package routing

import (
	"context"

	"github.com/Erics13/optimizador-de-rutas/internal/domain"
)

// MockGeometryProvider returns a synthetic straight-line path through the
// waypoints, or a fixed error. For tests and offline runs.
type MockGeometryProvider struct {
	Err   error
	Calls int
}

func (p *MockGeometryProvider) RouteGeometry(
	ctx context.Context,
	depot domain.Depot,
	stops []*domain.Event,
) ([][2]float64, error) {
	p.Calls++

	if p.Err != nil {
		return nil, p.Err
	}
	if len(stops) == 0 {
		return nil, nil
	}

	path := make([][2]float64, 0, len(stops)+2)
	path = append(path, [2]float64{depot.Location.Lat, depot.Location.Lon})
	for _, s := range stops {
		path = append(path, [2]float64{s.Location.Lat, s.Location.Lon})
	}
	path = append(path, [2]float64{depot.Location.Lat, depot.Location.Lon})

	return path, nil
}

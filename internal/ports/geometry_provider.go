package ports

import (
	"context"

	"github.com/Erics13/optimizador-de-rutas/internal/domain"
)

// Contract for fetching decorative driving geometry for a sequenced route.
// Implementations return the decoded path depot -> stops -> depot as
// [lat, lon] pairs. Geometry is best-effort decoration: callers tolerate an
// error or an empty result and never block route creation on it.
type RouteGeometryProvider interface {
	RouteGeometry(ctx context.Context, depot domain.Depot, stops []*domain.Event) ([][2]float64, error)
}

package ports

import "context"

// Port: cache of encoded route geometries keyed by waypoint string.
// Keys are expected to be consistent (the adapter builds them from the
// ordered lon,lat waypoint list) so identical requests hit.
type PolylineCache interface {
	// Return the cached encoded geometry for a waypoint key.
	Get(ctx context.Context, waypoints string) (geometry string, found bool, err error)
	// Store an encoded geometry for a waypoint key.
	Put(ctx context.Context, waypoints string, geometry string) error
}

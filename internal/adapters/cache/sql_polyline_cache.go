package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Erics13/optimizador-de-rutas/internal/platform/obs"
)

// SQLPolylineCache is a Postgres-backed cache of encoded route geometries,
// keyed by the ordered waypoint string of the request.
type SQLPolylineCache struct {
	DB *sql.DB
}

func NewSQLPolylineCache(db *sql.DB) *SQLPolylineCache {
	return &SQLPolylineCache{DB: db}
}

// Fetch the cached encoded geometry for a waypoint key.
func (s *SQLPolylineCache) Get(ctx context.Context, waypoints string) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "polyline.cache.Get")(&err)

	if s.DB == nil {
		return "", false, errors.New("polyline cache: db is nil")
	}
	if strings.TrimSpace(waypoints) == "" {
		return "", false, errors.New("get polyline cache: waypoints must not be empty")
	}

	const q = `
	SELECT geometry
	FROM polyline_cache
	WHERE waypoints = $1;
	`

	var geometry string
	switch err := s.DB.QueryRowContext(ctx, q, waypoints).Scan(&geometry); {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("get polyline cache: query polyline_cache table: %w", err)
	}

	return geometry, true, nil
}

// Store an encoded geometry for a waypoint key.
func (s *SQLPolylineCache) Put(ctx context.Context, waypoints string, geometry string) (err error) {
	defer obs.Time(ctx, "polyline.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("polyline cache: db is nil")
	}
	if strings.TrimSpace(waypoints) == "" {
		return errors.New("insert polyline cache: waypoints must not be empty")
	}

	const q = `
	INSERT INTO polyline_cache (waypoints, geometry)
	VALUES ($1, $2)
	ON CONFLICT (waypoints) DO UPDATE SET geometry = EXCLUDED.geometry;
	`

	if _, err := s.DB.ExecContext(ctx, q, waypoints, geometry); err != nil {
		return fmt.Errorf("insert polyline cache: %w", err)
	}

	return nil
}

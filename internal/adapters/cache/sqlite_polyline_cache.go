package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed cache of encoded route geometries for local runs. Keys are
// expected to be consistent (the adapter builds them deterministically from
// the ordered waypoint list).
type SqlitePolylineCache struct {
	DB *sql.DB
}

func NewSqlitePolylineCache(db *sql.DB) *SqlitePolylineCache {
	return &SqlitePolylineCache{DB: db}
}

// Fetch the cached encoded geometry for a waypoint key.
func (s *SqlitePolylineCache) Get(ctx context.Context, waypoints string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("polyline cache: db is nil")
	}
	if strings.TrimSpace(waypoints) == "" {
		return "", false, errors.New("get polyline cache: waypoints must not be empty")
	}

	const q = `
	SELECT geometry
	FROM polyline_cache
	WHERE waypoints = ?;
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
func (s *SqlitePolylineCache) Put(ctx context.Context, waypoints string, geometry string) error {
	if s.DB == nil {
		return errors.New("polyline cache: db is nil")
	}
	if strings.TrimSpace(waypoints) == "" {
		return errors.New("insert polyline cache: waypoints must not be empty")
	}

	const q = `
	INSERT OR REPLACE INTO polyline_cache (waypoints, geometry)
	VALUES (?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, waypoints, geometry); err != nil {
		return fmt.Errorf("insert polyline cache: %w", err)
	}

	return nil
}

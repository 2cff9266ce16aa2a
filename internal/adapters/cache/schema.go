package cache

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the polyline cache table if needed. The DDL is valid on
// both SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS polyline_cache (
		waypoints TEXT PRIMARY KEY,
		geometry  TEXT NOT NULL
	);`

	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("init cache schema: create polyline_cache: %w", err)
	}

	return nil
}

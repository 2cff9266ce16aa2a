package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/Erics13/optimizador-de-rutas/internal/adapters/cache"
	"github.com/Erics13/optimizador-de-rutas/internal/adapters/routing"
	"github.com/Erics13/optimizador-de-rutas/internal/api"
	"github.com/Erics13/optimizador-de-rutas/internal/config"
	"github.com/Erics13/optimizador-de-rutas/internal/platform/db"
	"github.com/Erics13/optimizador-de-rutas/internal/ports"
	"github.com/Erics13/optimizador-de-rutas/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (polyline cache, OSRM) behind ports and starts
// the HTTP server. Route generation itself holds no state between requests;
// only the geometry cache persists.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	osrmBaseURL := config.Get("OSRM_BASE_URL", routing.DefaultOSRMBaseURL)

	polylineCache, closeCache, err := openPolylineCache()
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	provider := routing.NewOSRMGeometryProvider(osrmBaseURL, polylineCache)
	resolver := services.NewDepotResolver(config.Depots(), config.ZoneMapping())

	router := api.NewRouter(resolver, provider)

	// Write timeout covers a full generation including sequential OSRM
	// fetches for every sheet on a cold cache.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      180 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openPolylineCache opens the geometry cache: Postgres when DATABASE_URL is
// set, a local SQLite file otherwise.
func openPolylineCache() (ports.PolylineCache, func(), error) {
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSchema(pg); err != nil {
			pg.Close()
			return nil, nil, err
		}
		return cache.NewSQLPolylineCache(pg), func() { pg.Close() }, nil
	}

	cachePath := config.Get("CACHE_DB_PATH", "data/polylines.db")
	lite, err := openSqlite(cachePath)
	if err != nil {
		return nil, nil, err
	}
	if err := cache.InitSchema(lite); err != nil {
		lite.Close()
		return nil, nil, err
	}
	return cache.NewSqlitePolylineCache(lite), func() { lite.Close() }, nil
}

func openSqlite(path string) (*sql.DB, error) {
	lite, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("openSqlite: open sqlite database %q: %w", path, err)
	}

	if err := lite.Ping(); err != nil {
		return nil, fmt.Errorf("openSqlite: verify sqlite connection to %q: %w", path, err)
	}

	return lite, nil
}

package api

import (
	"net/http"

	"github.com/Erics13/optimizador-de-rutas/internal/api/handlers"
	"github.com/Erics13/optimizador-de-rutas/internal/ports"
	"github.com/Erics13/optimizador-de-rutas/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(resolver *services.DepotResolver, geometry ports.RouteGeometryProvider) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Resolver: resolver,
		Geometry: geometry,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes/generate", routeHandler.Generate)

	return loggingMiddleware(mux)
}

package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/twpayne/go-polyline"

	"github.com/Erics13/optimizador-de-rutas/internal/domain"
)

var testDepot = domain.Depot{ZoneName: "Zona B", Location: domain.Coordinates{Lat: -34.720164, Lon: -56.23157}}

func testStops() []*domain.Event {
	return []*domain.Event{
		{LuminaireID: "LUM-1", Location: domain.Coordinates{Lat: -34.7210, Lon: -56.2300}},
		{LuminaireID: "LUM-2", Location: domain.Coordinates{Lat: -34.7225, Lon: -56.2280}},
	}
}

func encodedTestGeometry(t *testing.T) (string, [][]float64) {
	t.Helper()
	coords := [][]float64{
		{-34.720164, -56.23157},
		{-34.7210, -56.2300},
		{-34.7225, -56.2280},
		{-34.720164, -56.23157},
	}
	return string(polyline.EncodeCoords(coords)), coords
}

func osrmOKHandler(t *testing.T, geometry string, hits *int) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		*hits++
		if !strings.HasPrefix(r.URL.Path, "/route/v1/driving/") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("overview") != "full" || r.URL.Query().Get("geometries") != "polyline" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"code":   "Ok",
			"routes": []map[string]any{{"geometry": geometry}},
		})
	}
}

// In-memory PolylineCache for adapter tests.
type mapPolylineCache struct {
	entries map[string]string
	puts    int
}

func newMapPolylineCache() *mapPolylineCache {
	return &mapPolylineCache{entries: make(map[string]string)}
}

func (c *mapPolylineCache) Get(ctx context.Context, waypoints string) (string, bool, error) {
	g, ok := c.entries[waypoints]
	return g, ok, nil
}

func (c *mapPolylineCache) Put(ctx context.Context, waypoints, geometry string) error {
	c.puts++
	c.entries[waypoints] = geometry
	return nil
}

func TestRouteGeometryDecodes(t *testing.T) {
	encoded, coords := encodedTestGeometry(t)
	hits := 0
	srv := httptest.NewServer(osrmOKHandler(t, encoded, &hits))
	defer srv.Close()

	provider := NewOSRMGeometryProvider(srv.URL, nil)
	path, err := provider.RouteGeometry(context.Background(), testDepot, testStops())
	if err != nil {
		t.Fatalf("RouteGeometry: %v", err)
	}
	if len(path) != len(coords) {
		t.Fatalf("path points = %d, want %d", len(path), len(coords))
	}
	for i, c := range coords {
		if dLat := path[i][0] - c[0]; dLat > 1e-5 || dLat < -1e-5 {
			t.Errorf("point %d lat = %v, want ~%v", i, path[i][0], c[0])
		}
	}
}

func TestRouteGeometryUsesCache(t *testing.T) {
	encoded, _ := encodedTestGeometry(t)
	hits := 0
	srv := httptest.NewServer(osrmOKHandler(t, encoded, &hits))
	defer srv.Close()

	cache := newMapPolylineCache()
	provider := NewOSRMGeometryProvider(srv.URL, cache)

	if _, err := provider.RouteGeometry(context.Background(), testDepot, testStops()); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if hits != 1 || cache.puts != 1 {
		t.Fatalf("after first fetch: hits=%d puts=%d, want 1/1", hits, cache.puts)
	}

	if _, err := provider.RouteGeometry(context.Background(), testDepot, testStops()); err != nil {
		t.Fatalf("cached fetch: %v", err)
	}
	if hits != 1 {
		t.Errorf("cached fetch still hit OSRM (%d requests)", hits)
	}
}

func TestRouteGeometryNoRouteIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"code": "NoRoute", "message": "Impossible route between points"})
	}))
	defer srv.Close()

	provider := NewOSRMGeometryProvider(srv.URL, nil)
	_, err := provider.RouteGeometry(context.Background(), testDepot, testStops())
	if err == nil {
		t.Fatal("expected an error for a NoRoute response")
	}
	if !strings.Contains(err.Error(), "Impossible route") {
		t.Errorf("error should carry the OSRM message: %v", err)
	}
}

func TestRouteGeometryRetriesServerErrors(t *testing.T) {
	encoded, _ := encodedTestGeometry(t)
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			http.Error(w, "upstream overloaded", http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"code":   "Ok",
			"routes": []map[string]any{{"geometry": encoded}},
		})
	}))
	defer srv.Close()

	provider := NewOSRMGeometryProvider(srv.URL, nil)
	if _, err := provider.RouteGeometry(context.Background(), testDepot, testStops()); err != nil {
		t.Fatalf("expected recovery on the third attempt: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRouteGeometryClientErrorNotRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "bad coordinates", http.StatusBadRequest)
	}))
	defer srv.Close()

	provider := NewOSRMGeometryProvider(srv.URL, nil)
	if _, err := provider.RouteGeometry(context.Background(), testDepot, testStops()); err == nil {
		t.Fatal("expected an error for a 400 response")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want no retry on 4xx", attempts)
	}
}

func TestRouteGeometryEmptyStops(t *testing.T) {
	provider := NewOSRMGeometryProvider("http://127.0.0.1:0", nil)
	path, err := provider.RouteGeometry(context.Background(), testDepot, nil)
	if err != nil || path != nil {
		t.Fatalf("empty stops should short-circuit, got path=%v err=%v", path, err)
	}
}

func TestWaypointKey(t *testing.T) {
	key := waypointKey(testDepot, testStops()[:1])
	want := fmt.Sprintf("%s;%s;%s", "-56.23157,-34.720164", "-56.23,-34.721", "-56.23157,-34.720164")
	if key != want {
		t.Errorf("waypointKey = %q, want %q", key, want)
	}
}

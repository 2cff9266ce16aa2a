package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/twpayne/go-polyline"

	"github.com/Erics13/optimizador-de-rutas/internal/domain"
	"github.com/Erics13/optimizador-de-rutas/internal/ports"
)

// OSRMGeometryProvider fetches driving geometry for a sequenced route from
// an OSRM instance (the public demo server by default). Responses are
// memoized in an optional PolylineCache keyed by the waypoint string, so a
// regeneration over unchanged stops does not re-hit the service.
type OSRMGeometryProvider struct {
	baseURL string
	session *http.Client
	cache   ports.PolylineCache
}

const DefaultOSRMBaseURL = "https://router.project-osrm.org"

func NewOSRMGeometryProvider(baseURL string, cache ports.PolylineCache) *OSRMGeometryProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultOSRMBaseURL
	}

	return &OSRMGeometryProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: &http.Client{Timeout: 30 * time.Second},
		cache:   cache,
	}
}

type osrmRouteResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

// RouteGeometry requests a driving route through depot -> stops -> depot and
// returns the decoded path as [lat, lon] pairs. Empty stop lists produce an
// empty result without a request.
func (o *OSRMGeometryProvider) RouteGeometry(
	ctx context.Context,
	depot domain.Depot,
	stops []*domain.Event,
) ([][2]float64, error) {
	if len(stops) == 0 {
		return nil, nil
	}

	waypoints := waypointKey(depot, stops)

	if o.cache != nil {
		encoded, found, err := o.cache.Get(ctx, waypoints)
		if err != nil {
			log.Printf("op=polyline_cache_get err=%v (fetching from OSRM)", err)
		} else if found {
			return decodeGeometry(encoded)
		}
	}

	url := fmt.Sprintf("%s/route/v1/driving/%s?overview=full&geometries=polyline", o.baseURL, waypoints)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodGet, url)
	})
	if err != nil {
		return nil, fmt.Errorf("route geometry: osrm request: %w", err)
	}
	defer resp.Body.Close()

	var body osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("route geometry: decode osrm response: %w", err)
	}

	if body.Code != "Ok" || len(body.Routes) == 0 {
		msg := body.Message
		if msg == "" {
			msg = body.Code
		}
		return nil, fmt.Errorf("route geometry: osrm found no route: %s", msg)
	}

	encoded := body.Routes[0].Geometry

	if o.cache != nil {
		if err := o.cache.Put(ctx, waypoints, encoded); err != nil {
			log.Printf("op=polyline_cache_put err=%v", err)
		}
	}

	return decodeGeometry(encoded)
}

// waypointKey builds the OSRM coordinate path (and cache key): lon,lat pairs
// for depot, each stop in order, and depot again, joined by semicolons.
func waypointKey(depot domain.Depot, stops []*domain.Event) string {
	var b strings.Builder
	writePoint := func(c domain.Coordinates) {
		b.WriteString(strconv.FormatFloat(c.Lon, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(c.Lat, 'f', -1, 64))
	}

	writePoint(depot.Location)
	for _, s := range stops {
		b.WriteByte(';')
		writePoint(s.Location)
	}
	b.WriteByte(';')
	writePoint(depot.Location)

	return b.String()
}

func decodeGeometry(encoded string) ([][2]float64, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("route geometry: decode polyline: %w", err)
	}

	path := make([][2]float64, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		path = append(path, [2]float64{c[0], c[1]})
	}
	return path, nil
}

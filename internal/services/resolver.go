package services

import (
	"math"
	"strings"

	"github.com/Erics13/optimizador-de-rutas/internal/domain"
)

// How a depot was resolved. Exposed so callers and tests can distinguish the
// fallback paths instead of guessing from the result.
type ResolutionVia string

const (
	// The event carried an explicit zone name matching a known depot.
	ViaExplicitZone ResolutionVia = "explicit"
	// The event's municipio mapped to a zone through the zone table.
	ViaMappedMunicipio ResolutionVia = "mapped"
	// Nearest depot by distance from cabinet coordinates (cabinet jobs only).
	ViaNearestDepot ResolutionVia = "nearest"
)

type Resolution struct {
	Depot domain.Depot
	Via   ResolutionVia
}

// DepotResolver maps events to exactly one depot, or fails to resolve.
// Lookup tables are built once and never mutated.
type DepotResolver struct {
	depots          []domain.Depot
	depotByZone     map[string]domain.Depot // keyed by upper-cased trimmed zone name
	zoneByMunicipio map[string]string       // keyed by NormalizeKey(municipio)
}

func NewDepotResolver(depots []domain.Depot, zoneMapping map[string]string) *DepotResolver {
	byZone := make(map[string]domain.Depot, len(depots))
	for _, d := range depots {
		byZone[zoneKey(d.ZoneName)] = d
	}

	byMunicipio := make(map[string]string, len(zoneMapping))
	for municipio, zone := range zoneMapping {
		byMunicipio[NormalizeKey(municipio)] = zone
	}

	return &DepotResolver{
		depots:          depots,
		depotByZone:     byZone,
		zoneByMunicipio: byMunicipio,
	}
}

func zoneKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// DepotByZone looks up a depot by zone name (case/trim-insensitive).
func (r *DepotResolver) DepotByZone(zoneName string) (domain.Depot, bool) {
	d, ok := r.depotByZone[zoneKey(zoneName)]
	return d, ok
}

// ResolveEvent resolves an event to a depot. First match wins:
//
//  1. explicit zone name matching a known depot zone
//  2. municipio mapped to a zone through the zone-mapping table
//
// The nearest-depot fallback is deliberately not applied here; it is only
// valid for cabinet-anchored groups, which carry trustworthy cabinet
// coordinates (see NearestDepot). An unresolved event must be dropped with a
// diagnostic by the caller, never guessed into a zone.
func (r *DepotResolver) ResolveEvent(ev *domain.Event) (Resolution, bool) {
	if ev.ZoneName != "" {
		if d, ok := r.depotByZone[zoneKey(ev.ZoneName)]; ok {
			return Resolution{Depot: d, Via: ViaExplicitZone}, true
		}
	}

	if ev.Municipio != "" {
		zone, ok := r.zoneByMunicipio[NormalizeKey(ev.Municipio)]
		if ok {
			if d, ok := r.depotByZone[zoneKey(zone)]; ok {
				return Resolution{Depot: d, Via: ViaMappedMunicipio}, true
			}
		}
	}

	return Resolution{}, false
}

// NearestDepot returns the depot closest to the given coordinates. Used as
// the last-resort assignment for cabinet-anchored groups, so every
// cabinet-linked job is always assignable to some depot.
func (r *DepotResolver) NearestDepot(c domain.Coordinates) Resolution {
	var nearest domain.Depot
	minDistance := math.Inf(1)

	for _, d := range r.depots {
		if dist := domain.HaversineKm(c, d.Location); dist < minDistance {
			minDistance = dist
			nearest = d
		}
	}

	return Resolution{Depot: nearest, Via: ViaNearestDepot}
}

// Depots returns the configured depot list in table order.
func (r *DepotResolver) Depots() []domain.Depot {
	return r.depots
}

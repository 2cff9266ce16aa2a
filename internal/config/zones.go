// Package config holds the fixed operational tables for the Canelones
// street-lighting fleet: the depot per zone, the municipio-to-zone mapping
// and the classification thresholds. The tables are process-wide constants
// loaded into read-only lookup structures at startup.
package config

import (
	"os"

	"github.com/Erics13/optimizador-de-rutas/internal/domain"
)

// Depots returns the seven fixed crew dispatch points, one per zone.
func Depots() []domain.Depot {
	return []domain.Depot{
		{ZoneName: "Zona A", Location: domain.Coordinates{Lat: -34.5281407, Lon: -56.2734951}},
		{ZoneName: "Zona B", Location: domain.Coordinates{Lat: -34.720164, Lon: -56.23157}},
		{ZoneName: "Zona B1", Location: domain.Coordinates{Lat: -34.8400139, Lon: -56.0039155}},
		{ZoneName: "Zona B2", Location: domain.Coordinates{Lat: -34.7660652, Lon: -55.7644965}},
		{ZoneName: "Zona B3", Location: domain.Coordinates{Lat: -34.7621895, Lon: -55.6433907}},
		{ZoneName: "Zona C", Location: domain.Coordinates{Lat: -34.7064606, Lon: -55.9566228}},
		{ZoneName: "Zona D", Location: domain.Coordinates{Lat: -34.3389178, Lon: -55.7686404}},
	}
}

// ZoneMapping maps municipio names (keys are matched after normalization) to
// the zone that services them.
func ZoneMapping() map[string]string {
	return map[string]string{
		// Zona A
		"aguas corrientes": "Zona A",
		"santa lucia":      "Zona A",
		"los cerrillos":    "Zona A",
		"juanico":          "Zona A",
		"canelones":        "Zona A",
		// Zona B
		"la paz":      "Zona B",
		"las piedras": "Zona B",
		"18 de mayo":  "Zona B",
		"progreso":    "Zona B",
		// Zona B1
		"nicolich":           "Zona B1",
		"paso carrasco":      "Zona B1",
		"ciudad de la costa": "Zona B1",
		// Zona B2
		"atlantida":        "Zona B2",
		"parque del plata": "Zona B2",
		"salinas":          "Zona B2",
		// Zona B3
		"soca":        "Zona B3",
		"la floresta": "Zona B3",
		// Zona C
		"pando":          "Zona C",
		"barros blancos": "Zona C",
		"sauce":          "Zona C",
		"empalme olmos":  "Zona C",
		"toledo":         "Zona C",
		"del andaluz":    "Zona C",
		"suarez":         "Zona C",
		// Zona D
		"tala":         "Zona D",
		"san ramon":    "Zona D",
		"montes":       "Zona D",
		"migues":       "Zona D",
		"san antonio":  "Zona D",
		"santa rosa":   "Zona D",
		"san jacinto":  "Zona D",
		"san bautista": "Zona D",
	}
}

const (
	// Minimum fault count on one account before the account is treated as a
	// cabinet-level situation.
	CabinetFailureThreshold = 10

	// Lower bound of the branch/phase-fault window. Unreachable counts in
	// [BranchFaultMinEvents, CabinetFailureThreshold) only escalate when the
	// cluster is geographically cohesive.
	BranchFaultMinEvents = 5

	// Two unreachable luminaires within this distance are considered part of
	// the same electrical branch.
	BranchFaultCohesionMeters = 40

	// Stop limits per sheet. Accumulation (tier 3) sheets tolerate a few
	// extra stops because their faults are typically dense.
	MaxEventsPerRoute        = 10
	MaxEventsPerAccumulation = 15
)

// ExcludedMunicipios lists municipio values whose rows never reach the
// pipeline (decommissioned fixtures and unbuilt works).
func ExcludedMunicipios() []string {
	return []string{"DESAFECTADOS", "OBRA NUEVA"}
}

// Get returns the env var value or a fallback.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Erics13/optimizador-de-rutas/internal/config"
	"github.com/Erics13/optimizador-de-rutas/internal/domain"
	"github.com/Erics13/optimizador-de-rutas/internal/ports"
)

// Returned when the caller supplies no events at all.
var ErrNoEvents = errors.New("generate routes: no events loaded")

// Returned when the pipeline produces zero sheets after filtering; a
// data/configuration mismatch (e.g. municipios that don't match the internal
// mapping), not a crash.
var ErrNoMatchingEvents = errors.New("generate routes: no events matched the requested zone; check that the file's municipios match the internal zone mapping")

// TargetZoneAll disables target-zone filtering.
const TargetZoneAll = "all"

type GenerateRequest struct {
	Events   []*domain.Event
	Cabinets []domain.Cabinet
	// Zone name to restrict output to, or "all"/"" for every zone.
	TargetZone string
}

type Summary struct {
	Total   int
	ByZone  map[string]int
	Cabinet int
	Regular int
}

// Count of situation-flagged events per situation value in the post-cabinet
// remainder, sorted by count descending.
type SituationCount struct {
	Situation string
	Count     int
}

type GenerateResult struct {
	Routes     []*domain.RouteSheet
	Summary    Summary
	Situations []SituationCount
}

// GenerateRoutes drives the full pipeline: classify cabinet jobs, resolve
// depots, chunk and sequence cabinet routes, partition the remainder into
// situation-flagged and regular pools, chunk regular routes per
// zone/municipio, merge, and finalize names and ids.
//
// Item-level failures (unresolvable depot, missing cabinet record) are
// dropped with a diagnostic and never abort the run; only total absence of
// output surfaces as an error. The pipeline is deliberately sequential: chunk
// seeding mutates a shared working set and the geometry fetch is best-effort
// decoration, so there is nothing worth parallelizing. Results are assembled
// fully before being returned, never partially.
//
// geometry may be nil, in which case every sheet's polyline is empty.
func GenerateRoutes(
	ctx context.Context,
	req GenerateRequest,
	resolver *DepotResolver,
	geometry ports.RouteGeometryProvider,
) (*GenerateResult, error) {
	if len(req.Events) == 0 {
		return nil, ErrNoEvents
	}

	targetZone := strings.TrimSpace(req.TargetZone)
	if targetZone == "" {
		targetZone = TargetZoneAll
	}

	events := req.Events
	for i, ev := range events {
		ev.InternalID = i + 1
	}

	cabinetByAccount := make(map[string]domain.Cabinet, len(req.Cabinets))
	for _, cab := range req.Cabinets {
		cabinetByAccount[strings.TrimSpace(cab.AccountNumber)] = cab
	}

	fetchGeometry := func(depot domain.Depot, stops []*domain.Event) [][2]float64 {
		if geometry == nil {
			return nil
		}
		pl, err := geometry.RouteGeometry(ctx, depot, stops)
		if err != nil {
			log.Printf("op=route_geometry zone=%q stops=%d err=%v (continuing without polyline)",
				depot.ZoneName, len(stops), err)
			return nil
		}
		return pl
	}

	// Phase 1: cabinet jobs.
	jobs := ClassifyCabinetJobs(events)
	processed := make(map[int]struct{})
	var cabinetRoutes []*domain.RouteSheet

	for _, job := range jobs {
		cabinetInfo, hasCabinet := cabinetByAccount[job.AccountNumber]

		res, resolved := resolver.ResolveEvent(job.Events[0])
		if !resolved && hasCabinet {
			res = resolver.NearestDepot(cabinetInfo.Location)
			resolved = true
		}
		if !resolved {
			log.Printf("op=cabinet_job account=%s dropped=depot_unresolved", job.AccountNumber)
			continue
		}
		depot := res.Depot

		if targetZone != TargetZoneAll && depot.ZoneName != targetZone {
			continue
		}

		for _, ev := range job.Events {
			processed[ev.InternalID] = struct{}{}
		}

		if job.Priority == domain.PriorityCabinetFailure {
			// Max priority requires the cabinet record for the summary block.
			if !hasCabinet {
				log.Printf("op=cabinet_job account=%s dropped=no_cabinet_record", job.AccountNumber)
				continue
			}

			sequenced := SequenceFromDepot(depot, job.Events)
			cabinetRoutes = append(cabinetRoutes, &domain.RouteSheet{
				Name:           fmt.Sprintf("Posible falla en Tablero (%s) - Cuenta: %s", depot.ZoneName, job.AccountNumber),
				Depot:          depot,
				Events:         sequenced,
				OptimizedRoute: sequenced,
				Polyline:       fetchGeometry(depot, sequenced),
				IsCabinetRoute: true,
				Priority:       job.Priority,
				AccountNumber:  job.AccountNumber,
				Cabinet: &domain.CabinetSummary{
					AccountNumber:      cabinetInfo.AccountNumber,
					Location:           cabinetInfo.Location,
					Direccion:          cabinetInfo.Direccion,
					Tension:            cabinetInfo.Tension,
					Tarifa:             cabinetInfo.Tarifa,
					PotContrat:         cabinetInfo.PotContrat,
					AffectedLuminaires: job.Events,
				},
			})
			continue
		}

		var name string
		chunkSize := config.MaxEventsPerRoute
		switch job.Priority {
		case domain.PriorityBranchFault:
			name = fmt.Sprintf("POSIBLE FALLA DE RAMAL/FASE (%s) - Cuenta: %s", depot.ZoneName, job.AccountNumber)
		case domain.PriorityVoltage:
			name = fmt.Sprintf("Evento de Voltaje (%s) - Cuenta: %s", depot.ZoneName, job.AccountNumber)
		case domain.PriorityAccumulation:
			name = fmt.Sprintf("Acumulación de fallas en un circuito (%s) - Cuenta: %s", depot.ZoneName, job.AccountNumber)
			chunkSize = config.MaxEventsPerAccumulation
		}

		chunks := ChunkByProximity(job.Events, chunkSize)
		for part, chunk := range chunks {
			routeName := name
			if len(chunks) > 1 {
				routeName = fmt.Sprintf("%s - Parte %d", name, part+1)
			}

			sequenced := SequenceFromDepot(depot, chunk)
			cabinetRoutes = append(cabinetRoutes, &domain.RouteSheet{
				Name:           routeName,
				Depot:          depot,
				Events:         sequenced,
				OptimizedRoute: sequenced,
				Polyline:       fetchGeometry(depot, sequenced),
				IsCabinetRoute: true,
				Priority:       job.Priority,
				AccountNumber:  job.AccountNumber,
			})
		}
	}

	// Phase 2: partition the remainder.
	var remaining []*domain.Event
	for _, ev := range events {
		if _, consumed := processed[ev.InternalID]; !consumed {
			remaining = append(remaining, ev)
		}
	}

	if targetZone != TargetZoneAll {
		var inZone []*domain.Event
		for _, ev := range remaining {
			if res, ok := resolver.ResolveEvent(ev); ok && res.Depot.ZoneName == targetZone {
				inZone = append(inZone, ev)
			}
		}
		remaining = inZone
	}

	bySituation := make(map[string][]*domain.Event)
	var situationOrder []string
	var regular []*domain.Event

	for _, ev := range remaining {
		if !ev.HasSituation() {
			regular = append(regular, ev)
			continue
		}
		key := ev.SituationKey()
		if _, seen := bySituation[key]; !seen {
			situationOrder = append(situationOrder, key)
		}
		bySituation[key] = append(bySituation[key], ev)
	}

	situations := make([]SituationCount, 0, len(situationOrder))
	for _, s := range situationOrder {
		situations = append(situations, SituationCount{Situation: s, Count: len(bySituation[s])})
	}
	sort.SliceStable(situations, func(i, j int) bool {
		return situations[i].Count > situations[j].Count
	})

	// Phase 3: regular and situation routes per zone and municipio.
	var nonCabinetRoutes []*domain.RouteSheet

	nonCabinetRoutes = append(nonCabinetRoutes,
		routesForPool(resolver, regular, domain.PriorityRegular, "", fetchGeometry)...)
	for _, situation := range situationOrder {
		nonCabinetRoutes = append(nonCabinetRoutes,
			routesForPool(resolver, bySituation[situation], domain.PrioritySituation, situation, fetchGeometry)...)
	}

	// Phase 4: merge, filter, finalize.
	all := make([]*domain.RouteSheet, 0, len(cabinetRoutes)+len(nonCabinetRoutes))
	for _, r := range append(cabinetRoutes, nonCabinetRoutes...) {
		if targetZone != TargetZoneAll && r.Depot.ZoneName != targetZone {
			continue
		}
		all = append(all, r)
	}

	if len(all) == 0 {
		return nil, ErrNoMatchingEvents
	}

	result := finalize(all)
	result.Situations = situations
	return result, nil
}

// routesForPool buckets a pool by resolved zone and then by municipio,
// chunks each bucket with the recency-seeded nearest-neighbor heuristic and
// sequences every chunk depot-out. Unresolvable events are dropped with a
// diagnostic, never merged into a wrong zone.
func routesForPool(
	resolver *DepotResolver,
	pool []*domain.Event,
	priority float64,
	situation string,
	fetchGeometry func(domain.Depot, []*domain.Event) [][2]float64,
) []*domain.RouteSheet {
	const unassignedMunicipio = "Sin Municipio Asignado"

	type municipioBucket struct {
		displayName string
		events      []*domain.Event
	}
	type zoneBucket struct {
		depot        domain.Depot
		byMunicipio  map[string]*municipioBucket
		municipioOrd []string
	}

	buckets := make(map[string]*zoneBucket)
	var zoneOrder []string
	for _, depot := range resolver.Depots() {
		buckets[depot.ZoneName] = &zoneBucket{depot: depot, byMunicipio: make(map[string]*municipioBucket)}
		zoneOrder = append(zoneOrder, depot.ZoneName)
	}

	for _, ev := range pool {
		res, ok := resolver.ResolveEvent(ev)
		if !ok {
			log.Printf("op=assign_event luminaire=%s municipio=%q dropped=depot_unresolved", ev.LuminaireID, ev.Municipio)
			continue
		}

		zb := buckets[res.Depot.ZoneName]
		display := ev.Municipio
		if display == "" {
			display = unassignedMunicipio
		}
		key := NormalizeKey(display)
		mb, seen := zb.byMunicipio[key]
		if !seen {
			mb = &municipioBucket{displayName: display}
			zb.byMunicipio[key] = mb
			zb.municipioOrd = append(zb.municipioOrd, key)
		}
		mb.events = append(mb.events, ev)
	}

	var routes []*domain.RouteSheet
	for _, zoneName := range zoneOrder {
		zb := buckets[zoneName]
		for _, key := range zb.municipioOrd {
			mb := zb.byMunicipio[key]

			for _, chunk := range ChunkByProximity(mb.events, config.MaxEventsPerRoute) {
				sequenced := SequenceFromDepot(zb.depot, chunk)
				routes = append(routes, &domain.RouteSheet{
					Name:           fmt.Sprintf("%s - %s", zb.depot.ZoneName, mb.displayName),
					Depot:          zb.depot,
					Events:         sequenced,
					OptimizedRoute: sequenced,
					Polyline:       fetchGeometry(zb.depot, sequenced),
					Priority:       priority,
					Situation:      situation,
				})
			}
		}
	}

	return routes
}

// finalize groups sheets by zone, orders each zone by (priority ascending,
// Spanish numeric-aware name ascending) and assigns the sequential per-zone
// display numbers, final names and ids.
func finalize(sheets []*domain.RouteSheet) *GenerateResult {
	byZone := make(map[string][]*domain.RouteSheet)
	for _, r := range sheets {
		byZone[r.Depot.ZoneName] = append(byZone[r.Depot.ZoneName], r)
	}

	zoneNames := make([]string, 0, len(byZone))
	for name := range byZone {
		zoneNames = append(zoneNames, name)
	}
	sort.Strings(zoneNames)

	// Numeric so "Parte 2" sorts before "Parte 10", Loose to ignore case and
	// accents the way crews read the sheets.
	coll := collate.New(language.Spanish, collate.Numeric, collate.Loose)

	result := &GenerateResult{Summary: Summary{ByZone: make(map[string]int)}}

	for _, zoneName := range zoneNames {
		zoneSheets := byZone[zoneName]
		sort.SliceStable(zoneSheets, func(i, j int) bool {
			if zoneSheets[i].Priority != zoneSheets[j].Priority {
				return zoneSheets[i].Priority < zoneSheets[j].Priority
			}
			return coll.CompareString(zoneSheets[i].Name, zoneSheets[j].Name) < 0
		})

		slug := strings.ReplaceAll(strings.ToLower(zoneName), " ", "-")
		for i, sheet := range zoneSheets {
			sheet.RouteNumber = i + 1
			sheet.ID = fmt.Sprintf("hr-%s-%d", slug, i+1)
			finalName := fmt.Sprintf("Hoja de Ruta %d - %s", i+1, sheet.Name)
			if sheet.Situation != "" {
				finalName = fmt.Sprintf("%s (%s)", finalName, sheet.Situation)
			}
			sheet.Name = finalName

			result.Routes = append(result.Routes, sheet)
			result.Summary.Total++
			result.Summary.ByZone[zoneName]++
			if sheet.IsCabinetRoute {
				result.Summary.Cabinet++
			} else {
				result.Summary.Regular++
			}
		}
	}

	return result
}

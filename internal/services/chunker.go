package services

import (
	"math"
	"sort"

	"github.com/Erics13/optimizador-de-rutas/internal/domain"
)

// ChunkByProximity splits an unbounded event group into bounded chunks of at
// most chunkSize stops, covering every input event exactly once.
//
// Each chunk is seeded with the chronologically oldest unassigned event
// (missing dates parse to the zero time, so such events seed first) and then
// extended greedily with the event nearest to the last added one. A
// recency-seeded nearest-neighbor heuristic, not an optimal tour; distance
// ties go to the first minimal candidate found in pool order.
func ChunkByProximity(events []*domain.Event, chunkSize int) [][]*domain.Event {
	if len(events) == 0 {
		return nil
	}
	if chunkSize < 1 {
		chunkSize = 1
	}

	pool := make([]*domain.Event, len(events))
	copy(pool, events)

	var chunks [][]*domain.Event
	for len(pool) > 0 {
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].ReportedAt.Before(pool[j].ReportedAt)
		})

		current := pool[0]
		pool = pool[1:]
		chunk := []*domain.Event{current}

		for len(chunk) < chunkSize && len(pool) > 0 {
			nearestIdx := -1
			minDistance := math.Inf(1)
			for i, candidate := range pool {
				if d := domain.HaversineKm(current.Location, candidate.Location); d < minDistance {
					minDistance = d
					nearestIdx = i
				}
			}

			current = pool[nearestIdx]
			pool = append(pool[:nearestIdx], pool[nearestIdx+1:]...)
			chunk = append(chunk, current)
		}

		chunks = append(chunks, chunk)
	}

	return chunks
}

// SequenceFromDepot orders a chunk's stops with a greedy nearest-neighbor
// tour starting at the depot: repeatedly pick the unvisited event closest to
// the current position and advance to it. The returned slice is a permutation
// of events; the depot itself is not included. This determines the stop
// numbering on the final sheet.
func SequenceFromDepot(depot domain.Depot, events []*domain.Event) []*domain.Event {
	if len(events) <= 1 {
		return events
	}

	unvisited := make([]*domain.Event, len(events))
	copy(unvisited, events)

	ordered := make([]*domain.Event, 0, len(events))
	current := depot.Location

	for len(unvisited) > 0 {
		nearestIdx := -1
		minDistance := math.Inf(1)
		for i, candidate := range unvisited {
			if d := domain.HaversineKm(current, candidate.Location); d < minDistance {
				minDistance = d
				nearestIdx = i
			}
		}

		next := unvisited[nearestIdx]
		unvisited = append(unvisited[:nearestIdx], unvisited[nearestIdx+1:]...)
		ordered = append(ordered, next)
		current = next.Location
	}

	return ordered
}

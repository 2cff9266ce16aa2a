package services

import "github.com/Erics13/optimizador-de-rutas/internal/domain"

// IsCohesiveGroup reports whether the events form a single connected
// component under the relation "within maxDistanceMeters of each other".
// Connectivity is transitive: A near B and B near C makes {A,B,C} one
// component even if A and C are far apart.
//
// Events are treated as nodes of an implicit proximity graph and traversed
// depth-first with an explicit stack. O(n²) distance computations, which is
// fine for the account-sized groups (typically 5-30) this is called with.
func IsCohesiveGroup(events []*domain.Event, maxDistanceMeters float64) bool {
	if len(events) < 2 {
		return true
	}

	thresholdKm := maxDistanceMeters / 1000

	visited := make(map[int]struct{}, len(events))
	stack := []*domain.Event{events[0]}
	visited[events[0].InternalID] = struct{}{}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, neighbor := range events {
			if _, seen := visited[neighbor.InternalID]; seen {
				continue
			}
			if domain.HaversineKm(current.Location, neighbor.Location) <= thresholdKm {
				visited[neighbor.InternalID] = struct{}{}
				stack = append(stack, neighbor)
			}
		}
	}

	return len(visited) == len(events)
}

package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Erics13/optimizador-de-rutas/internal/domain"
)

func chunkEvent(id int, lat, lon float64, reported time.Time) *domain.Event {
	return &domain.Event{
		InternalID:  id,
		LuminaireID: fmt.Sprintf("lum-%d", id),
		Location:    domain.Coordinates{Lat: lat, Lon: lon},
		ReportedAt:  reported,
	}
}

func TestChunkByProximitySizes(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	var events []*domain.Event
	for i := 0; i < 25; i++ {
		events = append(events, chunkEvent(i+1, -34.70+float64(i)*0.001, -56.10, base.Add(time.Duration(i)*time.Minute)))
	}

	chunks := ChunkByProximity(events, 10)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	sizes := []int{len(chunks[0]), len(chunks[1]), len(chunks[2])}
	if sizes[0] != 10 || sizes[1] != 10 || sizes[2] != 5 {
		t.Errorf("chunk sizes = %v, want [10 10 5]", sizes)
	}
}

func TestChunkByProximityCoversAllEventsOnce(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	var events []*domain.Event
	for i := 0; i < 17; i++ {
		events = append(events, chunkEvent(i+1, -34.70+float64(i%5)*0.02, -56.10+float64(i/5)*0.02, base.Add(time.Duration(i)*time.Hour)))
	}

	chunks := ChunkByProximity(events, 10)
	seen := make(map[int]int)
	total := 0
	for _, chunk := range chunks {
		for _, ev := range chunk {
			seen[ev.InternalID]++
			total++
		}
	}
	if total != 17 {
		t.Fatalf("chunks cover %d events, want 17", total)
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("event %d appears %d times", id, n)
		}
	}
}

func TestChunkByProximitySeedsOldestEvent(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	// The oldest event sits far away from a newer cluster: it must still be
	// the seed of the first chunk.
	oldest := chunkEvent(99, -34.90, -56.30, base.Add(-48*time.Hour))
	var cluster []*domain.Event
	for i := 0; i < 4; i++ {
		cluster = append(cluster, chunkEvent(i+1, -34.70+float64(i)*0.0005, -56.10, base.Add(time.Duration(i)*time.Minute)))
	}

	chunks := ChunkByProximity(append(cluster, oldest), 10)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0][0].InternalID != 99 {
		t.Errorf("first chunk seeded by event %d, want the oldest (99)", chunks[0][0].InternalID)
	}
}

func TestChunkByProximityGroupsNeighbors(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	// Two clusters ~20 km apart, three events each, oldest event in the west
	// cluster. With chunk size 3 each chunk should hold one whole cluster.
	west := []*domain.Event{
		chunkEvent(1, -34.70, -56.30, base),
		chunkEvent(2, -34.701, -56.301, base.Add(time.Hour)),
		chunkEvent(3, -34.702, -56.302, base.Add(2*time.Hour)),
	}
	east := []*domain.Event{
		chunkEvent(4, -34.70, -56.10, base.Add(3*time.Hour)),
		chunkEvent(5, -34.701, -56.101, base.Add(4*time.Hour)),
		chunkEvent(6, -34.702, -56.102, base.Add(5*time.Hour)),
	}

	chunks := ChunkByProximity(append(west, east...), 3)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	for _, ev := range chunks[0] {
		if ev.InternalID > 3 {
			t.Errorf("first chunk should hold only the west cluster, found event %d", ev.InternalID)
		}
	}
	for _, ev := range chunks[1] {
		if ev.InternalID <= 3 {
			t.Errorf("second chunk should hold only the east cluster, found event %d", ev.InternalID)
		}
	}
}

func TestChunkByProximityDegenerate(t *testing.T) {
	if chunks := ChunkByProximity(nil, 10); chunks != nil {
		t.Errorf("expected nil chunks for empty input, got %v", chunks)
	}

	single := []*domain.Event{chunkEvent(1, -34.70, -56.10, time.Time{})}
	chunks := ChunkByProximity(single, 10)
	if len(chunks) != 1 || len(chunks[0]) != 1 {
		t.Fatalf("single event should yield one singleton chunk, got %v", chunks)
	}

	// A non-positive chunk size degrades to singleton chunks instead of
	// looping forever.
	var events []*domain.Event
	for i := 0; i < 3; i++ {
		events = append(events, chunkEvent(i+1, -34.70, -56.10, time.Time{}))
	}
	if chunks := ChunkByProximity(events, 0); len(chunks) != 3 {
		t.Errorf("chunk size 0 should fall back to singletons, got %d chunks", len(chunks))
	}
}

func TestSequenceFromDepot(t *testing.T) {
	depot := domain.Depot{ZoneName: "Zona B", Location: domain.Coordinates{Lat: -34.70, Lon: -56.20}}
	// Three stops strung out eastward from the depot; handed over in
	// scrambled order.
	far := chunkEvent(3, -34.70, -56.05, time.Time{})
	near := chunkEvent(1, -34.70, -56.18, time.Time{})
	mid := chunkEvent(2, -34.70, -56.12, time.Time{})

	ordered := SequenceFromDepot(depot, []*domain.Event{far, near, mid})
	if len(ordered) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(ordered))
	}
	for i, want := range []int{1, 2, 3} {
		if ordered[i].InternalID != want {
			t.Errorf("stop %d = event %d, want %d", i+1, ordered[i].InternalID, want)
		}
	}
}

func TestSequenceFromDepotDegenerate(t *testing.T) {
	depot := domain.Depot{ZoneName: "Zona B", Location: domain.Coordinates{Lat: -34.70, Lon: -56.20}}

	if got := SequenceFromDepot(depot, nil); len(got) != 0 {
		t.Errorf("expected no stops for empty input, got %d", len(got))
	}

	single := []*domain.Event{chunkEvent(7, -34.71, -56.21, time.Time{})}
	got := SequenceFromDepot(depot, single)
	if len(got) != 1 || got[0].InternalID != 7 {
		t.Fatalf("single event should come back unchanged, got %v", got)
	}
}

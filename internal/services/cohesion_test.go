package services

import (
	"testing"

	"github.com/Erics13/optimizador-de-rutas/internal/domain"
)

func geoEvent(id int, lat, lon float64) *domain.Event {
	return &domain.Event{
		InternalID: id,
		Location:   domain.Coordinates{Lat: lat, Lon: lon},
	}
}

func TestIsCohesiveGroupTransitive(t *testing.T) {
	// A-B and B-C are each within 40 m, A-C is not; the chain still forms
	// one connected component.
	a := geoEvent(1, -34.70000, -56.0)
	b := geoEvent(2, -34.70030, -56.0) // ~33 m from a
	c := geoEvent(3, -34.70060, -56.0) // ~33 m from b, ~67 m from a

	if !IsCohesiveGroup([]*domain.Event{a, b, c}, 40) {
		t.Fatal("chained group should be cohesive")
	}
}

func TestIsCohesiveGroupIsolatedPoint(t *testing.T) {
	a := geoEvent(1, -34.70000, -56.0)
	b := geoEvent(2, -34.70030, -56.0)
	far := geoEvent(3, -34.71000, -56.0) // over a kilometer away

	if IsCohesiveGroup([]*domain.Event{a, b, far}, 40) {
		t.Fatal("group with an isolated point should not be cohesive")
	}
}

func TestIsCohesiveGroupDegenerate(t *testing.T) {
	if !IsCohesiveGroup(nil, 40) {
		t.Error("empty group should be cohesive")
	}
	if !IsCohesiveGroup([]*domain.Event{geoEvent(1, -34.7, -56.0)}, 40) {
		t.Error("single event should be cohesive")
	}
}

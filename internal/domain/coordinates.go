package domain

import "math"

// Immutable geographic coordinates in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

const earthRadiusKm = 6371.0

func deg2rad(deg float64) float64 { return deg * (math.Pi / 180) }

// HaversineKm returns the great-circle distance between two points in
// kilometers. NaN inputs propagate NaN; callers validate upstream.
func HaversineKm(p1, p2 Coordinates) float64 {
	dLat := deg2rad(p2.Lat - p1.Lat)
	dLon := deg2rad(p2.Lon - p1.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(p1.Lat))*math.Cos(deg2rad(p2.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

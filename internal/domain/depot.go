package domain

// Fixed crew dispatch point; start and end of every route. One per zone.
type Depot struct {
	ZoneName string
	Location Coordinates
}

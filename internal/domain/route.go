package domain

// Severity tiers. Lower is more urgent; the value doubles as classification
// precedence and output ordering.
const (
	PriorityCabinetFailure = 1.0 // mass-unreachable, whole cabinet suspect
	PriorityBranchFault    = 1.5 // cohesive unreachable cluster, probable branch/phase fault
	PriorityVoltage        = 2.0 // voltage-event accumulation
	PriorityAccumulation   = 3.0 // generic per-circuit fault accumulation
	PriorityRegular        = 4.0
	PrioritySituation      = 5.0 // situation-flagged regular events
)

// One crew-assigned route sheet: a bounded, ordered list of stops for a
// single trip out of one depot.
//
// Events holds the sheet's members; OptimizedRoute is the same members in
// final stop order. RouteNumber, AccountNumber and Situation are carried as
// explicit fields so downstream consumers never need to parse Name.
type RouteSheet struct {
	ID             string
	Name           string
	RouteNumber    int
	Depot          Depot
	Events         []*Event
	OptimizedRoute []*Event
	// Decorative driving geometry as [lat, lon] pairs; may be empty.
	Polyline       [][2]float64
	IsCabinetRoute bool
	Priority       float64
	// Present only on the single max-priority sheet for an account.
	Cabinet       *CabinetSummary
	AccountNumber string
	Situation     string
}

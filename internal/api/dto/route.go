package dto

type DepotResponse struct {
	ZoneName string  `json:"zone_name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

type StopResponse struct {
	Sequence      int     `json:"sequence"`
	LuminaireID   string  `json:"luminaire_id"`
	OLCID         string  `json:"olc_id,omitempty"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Power         float64 `json:"power,omitempty"`
	Category      string  `json:"category,omitempty"`
	ErrorMessage  string  `json:"error_message,omitempty"`
	Municipio     string  `json:"municipio,omitempty"`
	ReportedDate  string  `json:"reported_date,omitempty"`
	AccountNumber string  `json:"account_number,omitempty"`
	Situation     string  `json:"situation,omitempty"`
}

type CabinetSummaryResponse struct {
	AccountNumber      string         `json:"account_number"`
	Lat                float64        `json:"lat"`
	Lon                float64        `json:"lon"`
	Direccion          string         `json:"direccion,omitempty"`
	Tension            string         `json:"tension,omitempty"`
	Tarifa             string         `json:"tarifa,omitempty"`
	PotContrat         string         `json:"pot_contrat,omitempty"`
	AffectedLuminaires []StopResponse `json:"affected_luminaires"`
}

// One finalized route sheet. Route number, account number, zone and
// situation are explicit fields; Name is for display only and never needs
// parsing downstream.
type RouteResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	RouteNumber    int                     `json:"route_number"`
	Zone           string                  `json:"zone"`
	Depot          DepotResponse           `json:"depot"`
	Priority       float64                 `json:"priority"`
	IsCabinetRoute bool                    `json:"is_cabinet_route"`
	AccountNumber  string                  `json:"account_number,omitempty"`
	Situation      string                  `json:"situation,omitempty"`
	Stops          []StopResponse          `json:"stops"`
	Polyline       [][2]float64            `json:"polyline,omitempty"`
	Cabinet        *CabinetSummaryResponse `json:"cabinet,omitempty"`
}

type SummaryResponse struct {
	Total   int            `json:"total"`
	ByZone  map[string]int `json:"by_zone"`
	Cabinet int            `json:"cabinet"`
	Regular int            `json:"regular"`
}

type SituationCountResponse struct {
	Situation string `json:"situation"`
	Count     int    `json:"count"`
}

type GenerateResponse struct {
	Routes     []RouteResponse          `json:"routes"`
	Summary    SummaryResponse          `json:"summary"`
	Situations []SituationCountResponse `json:"situations,omitempty"`
}

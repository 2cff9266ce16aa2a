package domain

// Represents one electrical service point feeding multiple luminaires.
// Cabinets are loaded once per run from a separate table and are read-only;
// they are looked up by account number during cabinet-job resolution.
type Cabinet struct {
	AccountNumber string
	Location      Coordinates
	Tarifa        string
	PotContrat    string
	Direccion     string
	Tension       string
}

// Cabinet attributes plus the full affected-event list, attached to the
// single max-priority sheet produced for a failing account.
type CabinetSummary struct {
	AccountNumber      string
	Location           Coordinates
	Direccion          string
	Tension            string
	Tarifa             string
	PotContrat         string
	AffectedLuminaires []*Event
}

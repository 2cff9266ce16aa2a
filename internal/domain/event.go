package domain

import (
	"strings"
	"time"
)

// Represents a single reported fault on one luminaire.
// An Event is constructed once at ingestion from a raw row and is immutable
// afterwards, except for InternalID which the generation pipeline assigns
// once per run.
type Event struct {
	LuminaireID string
	OLCID       string
	CabinetID   string
	Power       float64
	Category    string
	ErrorMsg    string
	Location    Coordinates
	ZoneName    string
	Municipio   string
	// Raw reported-date string as it appeared in the source file, kept for
	// display. ReportedAt is the parsed form; the zero value means the date
	// was missing or unparseable and sorts as oldest.
	ReportedDate string
	ReportedAt   time.Time
	Situation    string
	// Electrical account number linking the luminaire to a service cabinet.
	AccountNumber string

	// Correlation id, unique within one generation run.
	InternalID int
}

// HasSituation reports whether the event carries a meaningful situation tag.
// "N/A" and "-" are placeholder values used in the source files.
func (e *Event) HasSituation() bool {
	s := e.SituationKey()
	return s != "" && s != "N/A" && s != "-"
}

// SituationKey returns the trimmed situation value.
func (e *Event) SituationKey() string {
	return strings.TrimSpace(e.Situation)
}

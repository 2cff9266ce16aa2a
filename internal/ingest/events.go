package ingest

import (
	"fmt"
	"log"
	"strings"

	"github.com/Erics13/optimizador-de-rutas/internal/config"
	"github.com/Erics13/optimizador-de-rutas/internal/domain"
)

// Alias lists per logical event field, in resolution order. The odd-looking
// entries ("DirecciÃ³n", "SituaciÃ³n") match exports whose UTF-8 headers
// arrive double-encoded.
var (
	aliasLuminaireID = []string{"Luminaire/ID externo", "luminaireId", "Streetlight/ID externo"}
	aliasOLCID       = []string{"olcId", "OLC/Dirección de hardware", "OLC/DirecciÃ³n de hardware"}
	aliasCabinetID   = []string{"cabinetId", "Cabinet/ID externo"}
	aliasPower       = []string{"power", "Luminaire type/Potencia nominal"}
	aliasCategory    = []string{"category", "Fault/Categoría", "Fault/CategorÃ­a", "Event monitor/Categoría", "Evento/Categoría"}
	aliasErrorMsg    = []string{"errorMessage", "Fault/Mensaje de error", "Event monitor/Mensaje de error", "Evento/Mensaje de error"}
	aliasLat         = []string{"lat", "Streetlight/Latitud", "latitud"}
	aliasLon         = []string{"lon", "Streetlight/Longitud", "longitud"}
	aliasZoneName    = []string{"zoneName", "zona"}
	aliasMunicipio   = []string{"municipio", "Streetlight/Municipio"}
	aliasReported    = []string{"fecha", "fecha de reporte", "fecha informada", "Fault/Fecha de la primera ocurrencia", "fault/informado por primera vez el", "Event monitor/Informado por primera vez el", "Evento/Fecha de la primera ocurrencia", "evento/informado por primera vez el"}
	aliasAccount     = []string{"Streetlight/Nro_CUENTA", "nro_cuenta", "cuenta"}
	aliasSituation   = []string{"situacion", "situación", "Streetlight/Situación", "Streetlight/SituaciÃ³n"}
)

// ParseEvents validates raw event rows into domain events and applies the
// municipio exclusion list. A row with unparseable coordinates is skipped
// with a row-identifying diagnostic; only an input that is empty after
// validation and filtering is an error.
func ParseEvents(rows []Row) ([]*domain.Event, error) {
	var events []*domain.Event

	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}

		luminaireID, ok := findValue(row, aliasLuminaireID)
		if !ok {
			luminaireID = fmt.Sprintf("Evento-%d", i)
		}

		latStr, _ := findValue(row, aliasLat)
		lonStr, _ := findValue(row, aliasLon)
		lat, latErr := parseDecimal(latStr)
		lon, lonErr := parseDecimal(lonStr)
		if latErr != nil || lonErr != nil {
			log.Printf("op=parse_events row=%d luminaire=%s skipped=coordinates_not_numeric", i+1, luminaireID)
			continue
		}

		power := 0.0
		if powerStr, ok := findValue(row, aliasPower); ok {
			if p, err := parseDecimal(powerStr); err == nil {
				power = p
			}
		}

		olcID, _ := findValue(row, aliasOLCID)
		cabinetID, _ := findValue(row, aliasCabinetID)
		category, _ := findValue(row, aliasCategory)
		errorMsg, _ := findValue(row, aliasErrorMsg)
		zoneName, _ := findValue(row, aliasZoneName)
		municipio, _ := findValue(row, aliasMunicipio)
		account, _ := findValue(row, aliasAccount)
		situation, _ := findValue(row, aliasSituation)
		reportedRaw, _ := findValue(row, aliasReported)

		events = append(events, &domain.Event{
			LuminaireID:   luminaireID,
			OLCID:         olcID,
			CabinetID:     cabinetID,
			Power:         power,
			Category:      category,
			ErrorMsg:      errorMsg,
			Location:      domain.Coordinates{Lat: lat, Lon: lon},
			ZoneName:      zoneName,
			Municipio:     municipio,
			ReportedDate:  reportedRaw,
			ReportedAt:    ParseReportedDate(reportedRaw),
			Situation:     situation,
			AccountNumber: account,
		})
	}

	events = filterExcludedMunicipios(events)
	if len(events) == 0 {
		return nil, fmt.Errorf("parse events: file is empty, malformed, or every event was filtered out (e.g. %s)",
			strings.Join(config.ExcludedMunicipios(), ", "))
	}

	return events, nil
}

func filterExcludedMunicipios(events []*domain.Event) []*domain.Event {
	excluded := make(map[string]struct{})
	for _, m := range config.ExcludedMunicipios() {
		excluded[m] = struct{}{}
	}

	kept := events[:0]
	for _, ev := range events {
		if ev.Municipio != "" {
			key := strings.ToUpper(strings.TrimSpace(ev.Municipio))
			if _, drop := excluded[key]; drop {
				continue
			}
		}
		kept = append(kept, ev)
	}
	return kept
}

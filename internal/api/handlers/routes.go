package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/Erics13/optimizador-de-rutas/internal/api/dto"
	"github.com/Erics13/optimizador-de-rutas/internal/domain"
	"github.com/Erics13/optimizador-de-rutas/internal/ingest"
	"github.com/Erics13/optimizador-de-rutas/internal/ports"
	"github.com/Erics13/optimizador-de-rutas/internal/services"
)

const maxUploadBytes = 32 << 20

// RouteHandler runs a full route-sheet generation per request from the two
// uploaded tables. Nothing is persisted between requests.
type RouteHandler struct {
	Resolver *services.DepotResolver
	Geometry ports.RouteGeometryProvider
}

// Generate handles POST /routes/generate: multipart form with CSV files
// "events" and "cabinets" and an optional "zone" field ("all" by default).
func (h *RouteHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}

	events, err := parseUpload(r, "events", ingest.ParseEvents)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	cabinets, err := parseUpload(r, "cabinets", ingest.ParseCabinets)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	req := services.GenerateRequest{
		Events:     events,
		Cabinets:   cabinets,
		TargetZone: r.FormValue("zone"),
	}

	result, err := services.GenerateRoutes(r.Context(), req, h.Resolver, h.Geometry)
	switch {
	case errors.Is(err, services.ErrNoEvents), errors.Is(err, services.ErrNoMatchingEvents):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		log.Printf("generate routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toGenerateResponse(result))
}

// parseUpload reads one uploaded CSV file and converts its rows with parse.
func parseUpload[T any](r *http.Request, field string, parse func([]ingest.Row) (T, error)) (T, error) {
	var zero T

	file, _, err := r.FormFile(field)
	if err != nil {
		return zero, fmt.Errorf("missing file %q", field)
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	rows, err := ingest.ReadCSV(file)
	if err != nil {
		return zero, fmt.Errorf("file %q: %v", field, err)
	}

	return parse(rows)
}

func toGenerateResponse(result *services.GenerateResult) dto.GenerateResponse {
	res := dto.GenerateResponse{
		Routes: make([]dto.RouteResponse, 0, len(result.Routes)),
		Summary: dto.SummaryResponse{
			Total:   result.Summary.Total,
			ByZone:  result.Summary.ByZone,
			Cabinet: result.Summary.Cabinet,
			Regular: result.Summary.Regular,
		},
	}

	for _, s := range result.Situations {
		res.Situations = append(res.Situations, dto.SituationCountResponse{
			Situation: s.Situation,
			Count:     s.Count,
		})
	}

	for _, sheet := range result.Routes {
		rr := dto.RouteResponse{
			ID:          sheet.ID,
			Name:        sheet.Name,
			RouteNumber: sheet.RouteNumber,
			Zone:        sheet.Depot.ZoneName,
			Depot: dto.DepotResponse{
				ZoneName: sheet.Depot.ZoneName,
				Lat:      sheet.Depot.Location.Lat,
				Lon:      sheet.Depot.Location.Lon,
			},
			Priority:       sheet.Priority,
			IsCabinetRoute: sheet.IsCabinetRoute,
			AccountNumber:  sheet.AccountNumber,
			Situation:      sheet.Situation,
			Stops:          toStops(sheet.OptimizedRoute),
			Polyline:       sheet.Polyline,
		}

		if sheet.Cabinet != nil {
			rr.Cabinet = &dto.CabinetSummaryResponse{
				AccountNumber:      sheet.Cabinet.AccountNumber,
				Lat:                sheet.Cabinet.Location.Lat,
				Lon:                sheet.Cabinet.Location.Lon,
				Direccion:          sheet.Cabinet.Direccion,
				Tension:            sheet.Cabinet.Tension,
				Tarifa:             sheet.Cabinet.Tarifa,
				PotContrat:         sheet.Cabinet.PotContrat,
				AffectedLuminaires: toStops(sheet.Cabinet.AffectedLuminaires),
			}
		}

		res.Routes = append(res.Routes, rr)
	}

	return res
}

func toStops(events []*domain.Event) []dto.StopResponse {
	stops := make([]dto.StopResponse, 0, len(events))
	for i, ev := range events {
		stops = append(stops, dto.StopResponse{
			Sequence:      i + 1,
			LuminaireID:   ev.LuminaireID,
			OLCID:         ev.OLCID,
			Lat:           ev.Location.Lat,
			Lon:           ev.Location.Lon,
			Power:         ev.Power,
			Category:      ev.Category,
			ErrorMessage:  ev.ErrorMsg,
			Municipio:     ev.Municipio,
			ReportedDate:  ev.ReportedDate,
			AccountNumber: ev.AccountNumber,
			Situation:     ev.Situation,
		})
	}
	return stops
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Erics13/optimizador-de-rutas/internal/adapters/routing"
	"github.com/Erics13/optimizador-de-rutas/internal/config"
	"github.com/Erics13/optimizador-de-rutas/internal/domain"
	"github.com/Erics13/optimizador-de-rutas/internal/ingest"
	"github.com/Erics13/optimizador-de-rutas/internal/ports"
	"github.com/Erics13/optimizador-de-rutas/internal/services"
)

// Offline generation: two CSVs in, JSON route sheets out. Useful for
// checking a day's files without standing up the server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	eventsPath := flag.String("events", "", "path to the events CSV (required)")
	cabinetsPath := flag.String("cabinets", "", "path to the cabinets/services CSV (required)")
	zone := flag.String("zone", services.TargetZoneAll, "restrict output to one zone")
	outPath := flag.String("out", "", "write JSON here instead of stdout")
	polylines := flag.Bool("polylines", false, "fetch decorative polylines from OSRM")
	flag.Parse()

	if *eventsPath == "" || *cabinetsPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	events, err := loadCSV(*eventsPath, ingest.ParseEvents)
	if err != nil {
		log.Fatal(err)
	}
	cabinets, err := loadCSV(*cabinetsPath, ingest.ParseCabinets)
	if err != nil {
		log.Fatal(err)
	}

	var geometry ports.RouteGeometryProvider
	if *polylines {
		geometry = routing.NewOSRMGeometryProvider(config.Get("OSRM_BASE_URL", routing.DefaultOSRMBaseURL), nil)
	}

	resolver := services.NewDepotResolver(config.Depots(), config.ZoneMapping())

	req := services.GenerateRequest{
		Events:     events,
		Cabinets:   cabinets,
		TargetZone: *zone,
	}

	result, err := services.GenerateRoutes(context.Background(), req, resolver, geometry)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("generated sheets=%d cabinet=%d regular=%d",
		result.Summary.Total, result.Summary.Cabinet, result.Summary.Regular)

	if err := writeResult(*outPath, result); err != nil {
		log.Fatal(err)
	}
}

func loadCSV[T any](path string, parse func([]ingest.Row) (T, error)) (T, error) {
	var zero T

	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	rows, err := ingest.ReadCSV(f)
	if err != nil {
		return zero, err
	}

	return parse(rows)
}

func writeResult(path string, result *services.GenerateResult) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(toOutput(result))
}

// Lean output shape for the CLI; the server DTOs stay the canonical wire
// contract.
type sheetOutput struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Zone          string   `json:"zone"`
	Priority      float64  `json:"priority"`
	Cabinet       bool     `json:"cabinet"`
	AccountNumber string   `json:"account_number,omitempty"`
	Situation     string   `json:"situation,omitempty"`
	Stops         []string `json:"stops"`
}

func toOutput(result *services.GenerateResult) []sheetOutput {
	sheets := make([]sheetOutput, 0, len(result.Routes))
	for _, r := range result.Routes {
		sheets = append(sheets, sheetOutput{
			ID:            r.ID,
			Name:          r.Name,
			Zone:          r.Depot.ZoneName,
			Priority:      r.Priority,
			Cabinet:       r.IsCabinetRoute,
			AccountNumber: r.AccountNumber,
			Situation:     r.Situation,
			Stops:         stopIDs(r.OptimizedRoute),
		})
	}
	return sheets
}

func stopIDs(events []*domain.Event) []string {
	ids := make([]string, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.LuminaireID)
	}
	return ids
}

package ingest

import (
	"fmt"
	"log"

	"github.com/Erics13/optimizador-de-rutas/internal/domain"
)

// Cabinet field aliases. POINT_X/POINT_Y come from the GIS export of the
// service-point layer.
var (
	aliasCabAccount = []string{"Num_Cuenta", "Nro_CUENTA", "nro_cuenta", "cuenta"}
	aliasCabLat     = []string{"POINT_Y", "lat", "latitud"}
	aliasCabLon     = []string{"POINT_X", "lon", "longitud"}
	aliasTarifa     = []string{"tarifa"}
	aliasPotContrat = []string{"potcontrat"}
	aliasDireccion  = []string{"direccion", "dirección"}
	aliasTension    = []string{"tension", "tensión"}
)

// ParseCabinets validates raw cabinet rows. Every cabinet needs an account
// number and numeric coordinates; a row violating either is skipped with a
// row-identifying diagnostic. Only an input with no valid cabinets at all is
// an error.
func ParseCabinets(rows []Row) ([]domain.Cabinet, error) {
	var cabinets []domain.Cabinet

	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}

		account, ok := findValue(row, aliasCabAccount)
		if !ok {
			log.Printf("op=parse_cabinets row=%d skipped=missing_account", i+1)
			continue
		}

		latStr, _ := findValue(row, aliasCabLat)
		lonStr, _ := findValue(row, aliasCabLon)
		lat, latErr := parseDecimal(latStr)
		lon, lonErr := parseDecimal(lonStr)
		if latErr != nil || lonErr != nil {
			log.Printf("op=parse_cabinets row=%d account=%s skipped=coordinates_not_numeric", i+1, account)
			continue
		}

		tarifa, _ := findValue(row, aliasTarifa)
		potContrat, _ := findValue(row, aliasPotContrat)
		direccion, _ := findValue(row, aliasDireccion)
		tension, _ := findValue(row, aliasTension)

		cabinets = append(cabinets, domain.Cabinet{
			AccountNumber: account,
			Location:      domain.Coordinates{Lat: lat, Lon: lon},
			Tarifa:        tarifa,
			PotContrat:    potContrat,
			Direccion:     direccion,
			Tension:       tension,
		})
	}

	if len(cabinets) == 0 {
		return nil, fmt.Errorf("parse cabinets: file is empty or malformed")
	}

	return cabinets, nil
}

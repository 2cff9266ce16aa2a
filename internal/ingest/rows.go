// Package ingest turns the flat event and cabinet tables into validated
// domain records. Source files come from several fleet-management exports
// with inconsistent column headers, so every logical field resolves through
// an ordered alias list; numeric fields accept comma-decimal notation.
package ingest

import (
	"strconv"
	"strings"
)

// One raw table row: column header -> cell value.
type Row map[string]string

// findValue resolves a logical field from a row through an ordered alias
// list. Header comparison is case-insensitive and trim-insensitive; empty
// cells don't satisfy an alias, so later aliases can still match.
func findValue(row Row, aliases []string) (string, bool) {
	for _, alias := range aliases {
		for key, value := range row {
			if !strings.EqualFold(strings.TrimSpace(key), strings.TrimSpace(alias)) {
				continue
			}
			if strings.TrimSpace(value) != "" {
				return strings.TrimSpace(value), true
			}
		}
	}
	return "", false
}

// parseDecimal parses a float accepting both dot and comma decimal
// separators ("-34,52" appears in the regional exports).
func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

// isEmptyRow reports whether every cell in the row is blank.
func isEmptyRow(row Row) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

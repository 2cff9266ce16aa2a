package ingest

import (
	"strings"
	"testing"
	"time"
)

func TestReadCSV(t *testing.T) {
	input := "luminaireId,lat,lon,municipio\n" +
		"LUM-1,-34.70,-56.20,Pando\n" +
		",,,\n" +
		"LUM-2,-34.71\n"

	rows, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	// The all-blank row is dropped; the short record is kept with its
	// trailing columns absent.
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["municipio"] != "Pando" {
		t.Errorf("row 0 municipio = %q", rows[0]["municipio"])
	}
	if _, present := rows[1]["lon"]; present {
		t.Error("short record should not carry the missing lon column")
	}
}

func TestReadCSVStripsBOM(t *testing.T) {
	input := "\uFEFFlat,lon\n-34.70,-56.20\n"

	rows, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if rows[0]["lat"] != "-34.70" {
		t.Errorf("BOM not stripped from first header, row = %v", rows[0])
	}
}

func TestReadCSVEmptyStream(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected an error for a stream without header")
	}
}

func TestParseReportedDateLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"15/3/2026 14:30", time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)},
		{"5/3/26 08:05", time.Date(2026, 3, 5, 8, 5, 0, 0, time.UTC)},
		{"15/6/99 10:30", time.Date(2099, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"15/3/2026", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2026-03-15 14:30:00", time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)},
		{"2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := ParseReportedDate(tc.in); !got.Equal(tc.want) {
			t.Errorf("ParseReportedDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseReportedDateUnparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "sin fecha", "99/99/2026"} {
		if got := ParseReportedDate(in); !got.IsZero() {
			t.Errorf("ParseReportedDate(%q) = %v, want the zero time", in, got)
		}
	}
}

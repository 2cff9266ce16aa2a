package ingest

import (
	"strings"
	"time"
)

// Date layouts seen in the exports, tried in order. "2/1/06" style layouts
// also accept zero-padded day and month.
var reportedDateLayouts = []string{
	"2/1/2006 15:04",
	"2/1/06 15:04",
	"2/1/2006 15:04:05",
	"2/1/2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseReportedDate parses the reported-date field. Missing or unparseable
// values return the zero time, which sorts as oldest so stale faults seed
// chunks first.
//
// Two-digit years always mean 20xx in these exports; time.Parse maps 69-99
// to 19xx, so those land a century forward.
func ParseReportedDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range reportedDateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if strings.Contains(layout, "/06") && t.Year() < 2000 {
			t = t.AddDate(100, 0, 0)
		}
		return t
	}

	return time.Time{}
}

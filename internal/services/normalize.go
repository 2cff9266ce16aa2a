package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and drops the combining marks, so that
// "cañelones" and "canelones" produce the same bytes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey returns a trimmed, lower-cased, diacritic-stripped form of s,
// used to match free-text municipio/category/error-message values against the
// fixed vocabularies. Empty input yields the empty string; the function never
// fails (a transform error falls back to the un-stripped input).
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

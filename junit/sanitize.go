package junit

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	maxStringLength       = 50000
	maxPropertyNameLength = 100
	maxProperties         = 1000
	truncationMarker      = "...[truncated]"
)

// sanitizeString bounds a scalar pulled from the document, marking the cut
// visibly. The cut backs off to a rune boundary so truncated output stays
// valid UTF-8.
func sanitizeString(s string) string {
	if len(s) <= maxStringLength {
		return s
	}
	cut := maxStringLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + truncationMarker
}

// validPropertyName rejects empty and overlong names plus the
// prototype-pollution denylist. Property maps are plain key/value maps, but
// the denylist is kept so the names stay safe in any downstream
// representation.
func validPropertyName(name string) bool {
	switch name {
	case "", "__proto__", "constructor", "prototype":
		return false
	}
	return len(name) <= maxPropertyNameLength
}

// parseTime reads a declared time attribute leniently: anything that is not
// a finite, non-negative number becomes zero.
func parseTime(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return roundTime(v)
}

// roundTime keeps time arithmetic at 6 decimal places so repeated additions
// across a deep tree do not drift.
func roundTime(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

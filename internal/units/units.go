package units

import (
	"math"
	"time"
)

// TextMissing is the placeholder for textual fields the provider did not
// populate.
const TextMissing = "--"

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// RoundInt rounds a value to the nearest integer for display.
func RoundInt(v float64) int {
	return int(math.Round(v))
}

// Compass converts a wind bearing in degrees into one of eight compass
// points. Sectors are 45° wide starting at north, so 0-44 reads N and
// 45-89 reads NE. Bearings outside [0, 360) wrap.
func Compass(bearing float64) string {
	b := math.Mod(bearing, 360)
	if b < 0 {
		b += 360
	}
	return compassPoints[int(b/45)%8]
}

// Clock12 formats a timestamp as a 12-hour display string. The zero time
// renders as the missing-text placeholder.
func Clock12(t time.Time) string {
	if t.IsZero() {
		return TextMissing
	}
	return t.Format("3:04 PM")
}

// Num pulls a numeric field out of an interval value map. Missing or
// non-numeric fields substitute 0 so the presentation layer never handles
// nulls. All missing-field defaults in the pipeline route through Num or
// NumOr.
func Num(values map[string]any, key string) float64 {
	return NumOr(values, key, 0)
}

// NumOr is Num with a caller-chosen fallback.
func NumOr(values map[string]any, key string, fallback float64) float64 {
	v, ok := values[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return fallback
}

// Has reports whether a field is present at all. Used where absence means
// "render nothing" instead of "render zero", e.g. the wind bearing.
func Has(values map[string]any, key string) bool {
	_, ok := values[key]
	return ok
}

// TimeAt pulls a timestamp field out of an interval value map. Providers
// deliver either parsed time.Time values or ISO strings.
func TimeAt(values map[string]any, key string) (time.Time, bool) {
	v, ok := values[key]
	if !ok {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// TruncateToDate drops the time-of-day component, keeping the date in UTC.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EachDate calls fn once per calendar day from start to end inclusive.
// Ranges are caller-bounded (weeks to months), so no chunking is done.
func EachDate(start, end time.Time, fn func(d time.Time)) {
	for d := TruncateToDate(start); !d.After(TruncateToDate(end)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// SameDate reports whether two timestamps fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return TruncateToDate(a).Equal(TruncateToDate(b))
}

package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Loc is the location used to bucket timestamps into calendar days.
var Loc = time.Local

// SetLocation switches day bucketing to the named IANA zone. Empty keeps the current one.
func SetLocation(name string) error {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("Failed to load location %s: %w", name, err)
	}
	Loc = loc
	return nil
}

// DateKey returns the YYYY-MM-DD day key for t.
func DateKey(t time.Time) string {
	return t.In(Loc).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD key as midnight in Loc.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, Loc)
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(Loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, Loc)
}

// FormatLocal returns t formatted in Loc.
func FormatLocal(t time.Time) string {
	return t.In(Loc).Format(time.RFC1123)
}

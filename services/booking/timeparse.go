package booking

import (
	"fmt"
	"strings"
	"time"
)

const (
	// The non-padded hour accepts both "2:30 PM" and "02:30 PM".
	layout12h = "3:04 PM"
	layout24h = "15:04"
)

// ParseTimeOfDay accepts the two clock formats that appear in availability
// templates: "hh:mm AM/PM" and 24-hour "HH:MM". The meridiem is uppercased
// before parsing so "2:30 pm" round-trips too.
func ParseTimeOfDay(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)

	upper := strings.ToUpper(trimmed)
	if t, err := time.Parse(layout12h, upper); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layout24h, trimmed); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time of day %q", s)
}

// atOnDate places a parsed clock reading on the given calendar date in the
// given location.
func atOnDate(clock time.Time, date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, loc)
}

package utils

import (
	"time"
)

// Time layouts used on the wire by the Manajet backend.
const (
	// FlightTimeLayout is the format of departure_time and arrival_time.
	FlightTimeLayout = "2006-01-02 15:04"

	// DateLayout is the format of date-only fields such as passport_expiry.
	DateLayout = "2006-01-02"
)

// FormatFlightTime renders a timestamp the way the scheduling endpoint
// expects it.
func FormatFlightTime(t time.Time) string {
	return t.Format(FlightTimeLayout)
}

// ParseFlightTime parses a departure_time/arrival_time wire value.
func ParseFlightTime(s string) (time.Time, error) {
	return time.Parse(FlightTimeLayout, s)
}

// FormatDate renders a date-only wire value.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a date-only wire value.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// MinutesBetween returns the whole minutes from start to end.
func MinutesBetween(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}

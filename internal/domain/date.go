package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for visit dates and timeline keys.
const DateLayout = "2006-01-02"

// ParseDate parses a visit date. Plain calendar dates are the norm; full
// RFC 3339 timestamps (written by the legacy application) are accepted too.
// The result is midnight UTC of the calendar day as written.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDate formats t as a calendar date in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

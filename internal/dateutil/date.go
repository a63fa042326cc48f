// Package dateutil provides the calendar-day helpers the stores and the
// export serializer share. Dates travel through the app as YYYY-MM-DD
// strings; instants as RFC3339.
package dateutil

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the canonical calendar-day format.
const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FormatDate renders t as a zero-padded YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return FormatDate(time.Now())
}

// ParseDate parses a strict YYYY-MM-DD string into a UTC midnight instant.
// The shape is checked first, then the calendar itself: month 13, day 32,
// or Feb 29 outside a leap year all fail with a descriptive error. Years
// 0000 through 9999 are accepted.
func ParseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("invalid date format: %q, expected YYYY-MM-DD", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %q: %w", s, err)
	}
	return t, nil
}

// IsToday reports whether t falls on the current local calendar day.
// Time-of-day is ignored.
func IsToday(t time.Time) bool {
	return FormatDate(t) == Today()
}

// IsTodayString reports whether the YYYY-MM-DD string s names the current
// local calendar day. A malformed s simply compares unequal.
func IsTodayString(s string) bool {
	return s == Today()
}

// DateRange returns every calendar day from start through end inclusive as
// YYYY-MM-DD strings. Time-of-day on either endpoint is ignored. When start
// is after end by calendar day the result is empty.
func DateRange(start, end time.Time) []string {
	s := truncateToDay(start)
	e := truncateToDay(end)
	if s.After(e) {
		return []string{}
	}
	var out []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		out = append(out, FormatDate(d))
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

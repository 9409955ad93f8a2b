// Package timeutil provides wall-clock helpers for working-hour windows
// and date normalization.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

// ClockOn returns the given day's date at the wall-clock time "HH:MM".
func ClockOn(day time.Time, clock string) (time.Time, error) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), nil
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// NextMinute rounds t up to the next whole minute. A time already on a
// minute boundary is returned unchanged.
func NextMinute(t time.Time) time.Time {
	truncated := t.Truncate(time.Minute)
	if truncated.Equal(t) {
		return t
	}
	return truncated.Add(time.Minute)
}

// dateLayouts are tried in order by NormalizeDate. Layouts with a time
// component come first so RFC3339 strings keep their clock time.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"01/02/2006",
}

// NormalizeDate parses a date string in any of the accepted formats
// (RFC3339/ISO-8601, "YYYY-MM-DD", and common locale forms) into a local
// time. Date-only inputs normalize to midnight local time. Anything else
// fails with a parse error.
func NormalizeDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("parse date: empty string")
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date: unrecognized format %q", s)
}

// FormatDate renders t as a date-only "YYYY-MM-DD" string.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

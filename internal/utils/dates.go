package utils

import (
	"errors"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ErrInvalidDate is returned for dates that are neither YYYY-MM-DD nor RFC3339
var ErrInvalidDate = errors.New("invalid date")

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns the calendar date at UTC midnight
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDate renders a date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTimestamp renders a timestamp as RFC3339 in UTC
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

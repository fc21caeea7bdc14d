package time_parser

import (
	"fmt"
	"time"
)

// dateFormats covers what browser clients actually send: bare calendar
// dates from date pickers and full ISO timestamps from Date.toISOString().
var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses a client-supplied date string and returns it in UTC.
func ParseDate(value string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", value)
}

// ToCalendarDay drops the time-of-day so values compare by calendar date.
func ToCalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

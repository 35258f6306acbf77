package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrInvalidTimeValue  = errors.New("invalid time value")
)

// Layouts tried in order by NormalizeDate. The canonical form itself is
// first so normalization is idempotent.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC1123,
	time.RFC1123Z,
}

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?$`)

// NormalizeDate parses a free-form date string and returns it truncated to
// the calendar date in UTC, formatted as YYYY-MM-DD.
func NormalizeDate(raw string) (string, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC().Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// NormalizeTime accepts H:MM, HH:MM or HH:MM:SS (seconds dropped) and
// returns a zero-padded 24-hour HH:MM string.
func NormalizeTime(raw string) (string, error) {
	m := timePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeValue, raw)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

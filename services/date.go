package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidTimestamp is returned when a date/time string cannot be turned into a valid instant
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Display layouts for show times
const (
	DateTimeFull   = "Monday January 2, 2006 at 3:04PM"
	DateTimeMedium = "Mon Jan 2, 2006 3:04PM"
)

var nonDigitRun = regexp.MustCompile(`\D+`)

// ParseISOString reads digit groups as year, month (1-based), day, hour,
// minute, second and fraction and builds the instant in UTC.
// Any non-digit run is a separator, so timezone suffixes are ignored.
// Missing time groups default to zero; groups after the seventh are dropped.
func ParseISOString(s string) (time.Time, error) {
	var groups []string
	for _, g := range nonDigitRun.Split(s, -1) {
		if g != "" {
			groups = append(groups, g)
		}
	}

	if len(groups) < 3 {
		return time.Time{}, fmt.Errorf("%w: %q needs at least year, month and day", ErrInvalidTimestamp, s)
	}

	// year, month, day, hour, minute, second
	var fields [6]int
	for i := 0; i < len(fields) && i < len(groups); i++ {
		n, err := strconv.Atoi(groups[i])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: group %q out of range", ErrInvalidTimestamp, groups[i])
		}
		fields[i] = n
	}

	nanos := 0
	if len(groups) > 6 {
		nanos = fractionToNanos(groups[6])
	}

	year, month, day := fields[0], fields[1], fields[2]
	hour, minute, second := fields[3], fields[4], fields[5]

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d", ErrInvalidTimestamp, month)
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return time.Time{}, fmt.Errorf("%w: day %d", ErrInvalidTimestamp, day)
	}
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, fmt.Errorf("%w: time %02d:%02d:%02d", ErrInvalidTimestamp, hour, minute, second)
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, nanos, time.UTC), nil
}

// fractionToNanos treats digits as the decimal fraction of a second ("123" -> 123ms)
func fractionToNanos(digits string) int {
	if len(digits) > 9 {
		digits = digits[:9]
	}
	n := 0
	for i := 0; i < 9; i++ {
		n *= 10
		if i < len(digits) {
			n += int(digits[i] - '0')
		}
	}
	return n
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatDateTime formats a show time for display. format is "full" or "medium";
// anything else is used as a Go layout.
func FormatDateTime(t time.Time, format string) string {
	switch format {
	case "full", "":
		return t.Format(DateTimeFull)
	case "medium":
		return t.Format(DateTimeMedium)
	default:
		return t.Format(format)
	}
}

package util

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date format (use YYYY-MM-DD or RFC3339)")

// ParseDateRange parses optional start/end bounds. A date-only end covers the
// whole day, so endExclusive is the following midnight; an RFC3339 end is used
// as-is. Reversed bounds are swapped. Blank strings count as missing.
func ParseDateRange(startStr, endStr *string) (start time.Time, hasStart bool, endExclusive time.Time, hasEnd bool, err error) {
	var endDateOnly bool

	if startStr != nil {
		start, hasStart, _, err = parseDateOrTimestamp(*startStr)
		if err != nil {
			return time.Time{}, false, time.Time{}, false, err
		}
	}
	if endStr != nil {
		endExclusive, hasEnd, endDateOnly, err = parseDateOrTimestamp(*endStr)
		if err != nil {
			return time.Time{}, false, time.Time{}, false, err
		}
	}

	if hasStart && hasEnd && endExclusive.Before(start) {
		start, endExclusive = endExclusive, start
	}
	if hasEnd && endDateOnly {
		endExclusive = endExclusive.AddDate(0, 0, 1)
	}

	return start, hasStart, endExclusive, hasEnd, nil
}

func parseDateOrTimestamp(s string) (t time.Time, ok bool, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, false, nil
	}
	if tt, e := time.Parse(time.RFC3339, s); e == nil {
		return tt, true, false, nil
	}
	if tt, e := time.Parse(time.DateOnly, s); e == nil {
		return tt, true, true, nil
	}
	return time.Time{}, false, false, ErrInvalidDate
}

package util

import (
	"fmt"
	"strings"
	"time"

	"logrange-backend/internal/model"
)

// Date-time layouts from most to least precise, extended then basic format.
// Fractional seconds are accepted after the seconds field by time.Parse even
// though the layouts omit them.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"20060102T150405",
	"20060102T1504",
	"20060102T15",
}

var zoneLayouts = []string{"Z07:00", "Z0700", "Z07"}

// Layouts carrying an explicit offset or a Z designator.
var offsetLayouts = func() []string {
	out := make([]string, 0, len(dateTimeLayouts)*len(zoneLayouts))
	for _, base := range dateTimeLayouts {
		for _, zone := range zoneLayouts {
			out = append(out, base+zone)
		}
	}
	return out
}()

// Layouts without an offset are read as UTC.
var localLayouts = append(append([]string(nil), dateTimeLayouts...), "2006-01-02", "20060102")

// ParseISO8601 parses a calendar date in extended or basic format, optionally
// with a time and an offset, and returns the instant in UTC. Both 'T' and a
// single space are accepted between the date and the time, and the T and Z
// designators may be lower case.
func ParseISO8601(timeStr string) (time.Time, error) {
	s := strings.ToUpper(strings.TrimSpace(timeStr))
	if i := strings.IndexByte(s, ' '); i == 8 || i == 10 {
		s = s[:i] + "T" + s[i+1:]
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time format: %q", timeStr)
}

// ValidateRange turns the raw min and max query values into a QueryRange.
func ValidateRange(minText, maxText string) (model.QueryRange, error) {
	if strings.TrimSpace(minText) == "" || strings.TrimSpace(maxText) == "" {
		return model.QueryRange{}, model.ErrMissingBound
	}

	minTime, err := ParseISO8601(minText)
	if err != nil {
		return model.QueryRange{}, fmt.Errorf("%w: min: %v", model.ErrMalformedTimestamp, err)
	}
	maxTime, err := ParseISO8601(maxText)
	if err != nil {
		return model.QueryRange{}, fmt.Errorf("%w: max: %v", model.ErrMalformedTimestamp, err)
	}

	if minTime.After(maxTime) {
		return model.QueryRange{}, fmt.Errorf("%w: %s > %s", model.ErrInvertedRange,
			minTime.Format(time.RFC3339Nano), maxTime.Format(time.RFC3339Nano))
	}

	return model.QueryRange{Min: minTime, Max: maxTime}, nil
}

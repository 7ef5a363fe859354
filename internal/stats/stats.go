package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"logrange-backend/internal/model"

	"github.com/spf13/cast"
)

// ParseNumber coerces a text value to a finite float64.
func ParseNumber(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	v, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Summarize computes min, max, average and median of field over records.
// Values that do not coerce to a finite number are left out and counted.
func Summarize(records []model.LogRecord, field model.StatField) (model.StatSummary, error) {
	values := make([]float64, 0, len(records))
	excluded := 0
	for _, rec := range records {
		text, ok := field.Value(rec)
		if !ok {
			return model.StatSummary{}, fmt.Errorf("unknown stat field %q", field)
		}
		v, ok := ParseNumber(text)
		if !ok {
			excluded++
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return model.StatSummary{}, fmt.Errorf("%w: %s (%d excluded)", model.ErrEmptyResultSet, field, excluded)
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	sort.Float64s(values)
	n := len(values)

	return model.StatSummary{
		Min:      values[0],
		Max:      values[n-1],
		Average:  roundTo(sum/float64(n), 3),
		Median:   values[(n-1)/2],
		Count:    n,
		Excluded: excluded,
	}, nil
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

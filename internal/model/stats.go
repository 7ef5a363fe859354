package model

// StatField selects which numeric text field of a LogRecord is summarized.
type StatField string

const (
	StatContentLength  StatField = "contentLength"
	StatResponseTimeMs StatField = "responseTimeMs"
)

// Value returns the raw text of the selected field.
func (f StatField) Value(r LogRecord) (string, bool) {
	switch f {
	case StatContentLength:
		return r.ContentLength, true
	case StatResponseTimeMs:
		return r.ResponseTimeMs, true
	}
	return "", false
}

type StatSummary struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	// Count is the number of values aggregated, Excluded the number skipped
	// because they could not be coerced to a finite number.
	Count    int `json:"count"`
	Excluded int `json:"excluded"`
}

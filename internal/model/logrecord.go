package model

import (
	"encoding/json"
	"time"
)

// Field names shared by both backing stores.
const (
	FieldTime           = "time"
	FieldContentLength  = "contentLength"
	FieldResponseTimeMs = "ms"
)

// LogRecord is one ingested log event. Numeric values are kept as the text
// the store returned; callers coerce them when they need arithmetic.
type LogRecord struct {
	Time           time.Time
	ContentLength  string
	ResponseTimeMs string
	// Fields holds every other column or document key, untouched.
	Fields map[string]any
}

func (r LogRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+3)
	for k, v := range r.Fields {
		out[k] = v
	}
	out[FieldTime] = r.Time.UTC().Format(time.RFC3339Nano)
	if r.ContentLength != "" {
		out[FieldContentLength] = r.ContentLength
	}
	if r.ResponseTimeMs != "" {
		out[FieldResponseTimeMs] = r.ResponseTimeMs
	}
	return json.Marshal(out)
}

// QueryRange is a validated pair of UTC instants. Min is never after Max.
type QueryRange struct {
	Min time.Time
	Max time.Time
}

// Contains reports whether t falls inside the inclusive range.
func (q QueryRange) Contains(t time.Time) bool {
	return !t.Before(q.Min) && !t.After(q.Max)
}

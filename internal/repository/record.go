package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"logrange-backend/internal/model"
	"logrange-backend/internal/util"

	"github.com/spf13/cast"
)

var errMissingTime = errors.New("record has no time field")

// DecodeRecord normalizes one document or row into a LogRecord. Both store
// adapters go through here so equivalent data yields equal records.
func DecodeRecord(raw map[string]any) (model.LogRecord, error) {
	rawTime, ok := raw[model.FieldTime]
	if !ok || rawTime == nil {
		return model.LogRecord{}, errMissingTime
	}
	ts, err := decodeTime(rawTime)
	if err != nil {
		return model.LogRecord{}, fmt.Errorf("decode %s: %w", model.FieldTime, err)
	}

	contentLength, err := textValue(raw[model.FieldContentLength])
	if err != nil {
		return model.LogRecord{}, fmt.Errorf("decode %s: %w", model.FieldContentLength, err)
	}
	responseTime, err := textValue(raw[model.FieldResponseTimeMs])
	if err != nil {
		return model.LogRecord{}, fmt.Errorf("decode %s: %w", model.FieldResponseTimeMs, err)
	}

	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case model.FieldTime, model.FieldContentLength, model.FieldResponseTimeMs:
			continue
		}
		fields[k] = v
	}

	return model.LogRecord{
		Time:           ts,
		ContentLength:  contentLength,
		ResponseTimeMs: responseTime,
		Fields:         fields,
	}, nil
}

// decodeTime accepts native timestamps, ISO 8601 text and epoch milliseconds.
func decodeTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case *time.Time:
		if t == nil {
			return time.Time{}, errMissingTime
		}
		return t.UTC(), nil
	case string:
		if parsed, err := util.ParseISO8601(t); err == nil {
			return parsed, nil
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed.UTC(), nil
		}
	}

	ms, err := cast.ToInt64E(numericText(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("unsupported time value %v (%T)", v, v)
	}
	return time.UnixMilli(ms).UTC(), nil
}

// textValue renders a loosely typed value as the text a store would print.
// A missing value becomes the empty string.
func textValue(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	if valuer, ok := v.(driver.Valuer); ok {
		inner, err := valuer.Value()
		if err != nil {
			return "", err
		}
		if inner == nil {
			return "", nil
		}
		v = inner
	}
	text, err := cast.ToStringE(numericText(v))
	if err != nil {
		return "", err
	}
	return canonicalNumber(text), nil
}

// canonicalNumber spells number-like text one way ("1024.0", "1.024e3" and
// "1024" all become "1024") so every store yields the same text for the same
// value. Anything else is returned unchanged.
func canonicalNumber(text string) string {
	s := strings.TrimSpace(text)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return text
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return text
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func numericText(v any) any {
	switch n := v.(type) {
	case json.Number:
		return n.String()
	case []byte:
		return string(n)
	}
	return v
}

package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logrange-backend/internal/model"
	"logrange-backend/internal/util"
)

func TestParseISO8601(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"date only", "2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"minutes no offset", "2024-01-01T10:30", time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)},
		{"seconds no offset", "2024-01-01T10:30:45", time.Date(2024, 1, 1, 10, 30, 45, 0, time.UTC)},
		{"space separator", "2024-01-01 10:30:45", time.Date(2024, 1, 1, 10, 30, 45, 0, time.UTC)},
		{"zulu", "2024-01-01T10:30:45Z", time.Date(2024, 1, 1, 10, 30, 45, 0, time.UTC)},
		{"fraction", "2024-01-01T10:30:45.250Z", time.Date(2024, 1, 1, 10, 30, 45, 250000000, time.UTC)},
		{"fraction no offset", "2024-01-01T10:30:45.5", time.Date(2024, 1, 1, 10, 30, 45, 500000000, time.UTC)},
		{"positive offset", "2024-01-01T10:30:45+02:00", time.Date(2024, 1, 1, 8, 30, 45, 0, time.UTC)},
		{"compact offset", "2024-01-01T10:30:45-0130", time.Date(2024, 1, 1, 12, 0, 45, 0, time.UTC)},
		{"minutes with offset", "2024-01-01T10:30+01:00", time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)},
		{"hour only", "2024-01-01T10", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"hour only zulu", "2024-01-01T10Z", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"hour offset", "2024-01-01T10:00:00+05", time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC)},
		{"basic date", "20240101", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"basic date time zulu", "20240101T100000Z", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"basic with offset", "20240101T1030-0130", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		{"basic fraction", "20240101T100000.5", time.Date(2024, 1, 1, 10, 0, 0, 500000000, time.UTC)},
		{"lower case designators", "2024-01-01t10:00:00z", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"lower case zulu", "2024-01-01T10:00:00z", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := util.ParseISO8601(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseISO8601_Invalid(t *testing.T) {
	for _, input := range []string{"not-a-date", "2024-13-01", "2024/01/01", "1704067200000", "01-01-2024", "2024-01-01T25:00", "2024-01-01T10:00:00+5", "20241301"} {
		t.Run(input, func(t *testing.T) {
			_, err := util.ParseISO8601(input)
			assert.Error(t, err)
		})
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		min     string
		max     string
		wantErr error
	}{
		{"missing min", "", "2024-01-01", model.ErrMissingBound},
		{"missing max", "2024-01-01", "", model.ErrMissingBound},
		{"blank min", "   ", "2024-01-01", model.ErrMissingBound},
		{"malformed min", "not-a-date", "2024-01-01", model.ErrMalformedTimestamp},
		{"malformed max", "2024-01-01", "tomorrow", model.ErrMalformedTimestamp},
		{"inverted", "2024-02-01", "2024-01-01", model.ErrInvertedRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := util.ValidateRange(tt.min, tt.max)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, model.IsValidation(err))
		})
	}
}

func TestValidateRange_Success(t *testing.T) {
	rng, err := util.ValidateRange("2024-01-01T00:00:00+01:00", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), rng.Min)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), rng.Max)

	same, err := util.ValidateRange("2024-01-01", "2024-01-01")
	require.NoError(t, err)
	assert.True(t, same.Contains(same.Min))
}

package model

import "errors"

var (
	ErrMissingBound       = errors.New("min and max must both be specified")
	ErrMalformedTimestamp = errors.New("min and max must be ISO 8601 date strings")
	ErrInvertedRange      = errors.New("min cannot be after max")
	ErrStoreUnavailable   = errors.New("log store unavailable")
	ErrEmptyResultSet     = errors.New("no valid values in result set")
	ErrPersistFailure     = errors.New("failed to persist chart artifact")
	ErrUnknownStore       = errors.New("unknown log store")
)

// IsValidation reports whether err was caused by bad caller input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingBound) ||
		errors.Is(err, ErrMalformedTimestamp) ||
		errors.Is(err, ErrInvertedRange)
}

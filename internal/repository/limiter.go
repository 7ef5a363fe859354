package repository

import (
	"context"

	"logrange-backend/internal/model"

	"github.com/rs/zerolog/log"
)

// MaxRecords is the safety ceiling on records returned by a single range query.
const MaxRecords = 50000

// ResultLimiter owns the record ceiling. Configuration may lower it, nothing can raise it.
type ResultLimiter struct {
	ceiling int
}

func NewResultLimiter(configured int) ResultLimiter {
	ceiling := MaxRecords
	if configured > 0 && configured < MaxRecords {
		ceiling = configured
	}
	return ResultLimiter{ceiling: ceiling}
}

func (l ResultLimiter) Ceiling() int {
	if l.ceiling <= 0 {
		return MaxRecords
	}
	return l.ceiling
}

// Clamp returns the limit to send to a store for a requested value.
func (l ResultLimiter) Clamp(requested int) int {
	ceiling := l.Ceiling()
	if requested <= 0 || requested > ceiling {
		return ceiling
	}
	return requested
}

// Wrap returns an adapter that always queries with the clamped limit.
func (l ResultLimiter) Wrap(name string, inner StoreAdapter) StoreAdapter {
	return &limitedAdapter{name: name, inner: inner, limiter: l}
}

type limitedAdapter struct {
	name    string
	inner   StoreAdapter
	limiter ResultLimiter
}

func (a *limitedAdapter) QueryRange(ctx context.Context, rng model.QueryRange, limit int) ([]model.LogRecord, error) {
	effective := a.limiter.Clamp(limit)
	if limit > effective {
		log.Debug().Str("store", a.name).Int("requested", limit).Int("limit", effective).Msg("Requested limit clamped to safety ceiling")
	}
	return a.inner.QueryRange(ctx, rng, effective)
}

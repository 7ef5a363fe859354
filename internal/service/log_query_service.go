package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logrange-backend/config"
	"logrange-backend/internal/chart"
	"logrange-backend/internal/dto"
	"logrange-backend/internal/metrics"
	"logrange-backend/internal/model"
	"logrange-backend/internal/repository"
	"logrange-backend/internal/stats"
	"logrange-backend/internal/util"

	"github.com/rs/zerolog/log"
)

const (
	opLogs   = "logs"
	opStats  = "stats"
	opSeries = "series"
)

// AllStatFields is the field set summarized when a caller names none.
var AllStatFields = []model.StatField{model.StatContentLength, model.StatResponseTimeMs}

//go:generate mockgen -source=log_query_service.go -destination=../mocks/service/mock_log_query_service.go -package=service_mock

type LogQueryService interface {
	Stores() []string
	QueryLogs(ctx context.Context, store, minText, maxText string) ([]model.LogRecord, error)
	GetStats(ctx context.Context, store, minText, maxText string, fields ...model.StatField) (*dto.StatsResult, error)
	// BuildSeries returns the series even when persisting it fails; the
	// error then wraps model.ErrPersistFailure.
	BuildSeries(ctx context.Context, store, minText, maxText string) (*dto.SeriesResult, error)
	RefreshSeries(ctx context.Context, store string, rng model.QueryRange) (*dto.SeriesResult, error)
}

type logQueryService struct {
	registry  *repository.Registry
	artifact  chart.ArtifactWriter
	metrics   *metrics.Metrics
	timeout   time.Duration
	maxPoints int
}

func NewLogQueryService(cfg *config.Config, registry *repository.Registry, artifact chart.ArtifactWriter, m *metrics.Metrics) LogQueryService {
	return &logQueryService{
		registry:  registry,
		artifact:  artifact,
		metrics:   m,
		timeout:   cfg.Query.Timeout,
		maxPoints: cfg.Chart.MaxPoints,
	}
}

func (s *logQueryService) Stores() []string {
	return s.registry.Names()
}

func (s *logQueryService) QueryLogs(ctx context.Context, store, minText, maxText string) ([]model.LogRecord, error) {
	records, err := s.fetch(ctx, store, minText, maxText)
	s.count(store, opLogs, err)
	return records, err
}

func (s *logQueryService) GetStats(ctx context.Context, store, minText, maxText string, fields ...model.StatField) (*dto.StatsResult, error) {
	if len(fields) == 0 {
		fields = AllStatFields
	}
	records, err := s.fetch(ctx, store, minText, maxText)
	if err != nil {
		s.count(store, opStats, err)
		return nil, err
	}

	summaries := make(map[model.StatField]model.StatSummary, len(fields))
	for _, field := range fields {
		summary, err := stats.Summarize(records, field)
		if err != nil {
			s.count(store, opStats, err)
			return nil, err
		}
		summaries[field] = summary
	}
	s.count(store, opStats, nil)

	return &dto.StatsResult{Records: records, Stats: summaries}, nil
}

func (s *logQueryService) BuildSeries(ctx context.Context, store, minText, maxText string) (*dto.SeriesResult, error) {
	records, err := s.fetch(ctx, store, minText, maxText)
	if err != nil {
		s.count(store, opSeries, err)
		return nil, err
	}
	res, err := s.buildAndPersist(store, records)
	s.count(store, opSeries, err)
	return res, err
}

// RefreshSeries rebuilds the artifact for an already validated range.
func (s *logQueryService) RefreshSeries(ctx context.Context, store string, rng model.QueryRange) (*dto.SeriesResult, error) {
	if rng.Min.After(rng.Max) {
		err := fmt.Errorf("%w: %s > %s", model.ErrInvertedRange,
			rng.Min.Format(time.RFC3339Nano), rng.Max.Format(time.RFC3339Nano))
		s.count(store, opSeries, err)
		return nil, err
	}
	records, err := s.query(ctx, store, rng)
	if err != nil {
		s.count(store, opSeries, err)
		return nil, err
	}
	res, err := s.buildAndPersist(store, records)
	s.count(store, opSeries, err)
	return res, err
}

func (s *logQueryService) buildAndPersist(store string, records []model.LogRecord) (*dto.SeriesResult, error) {
	series := chart.Build(records, s.maxPoints)
	res := &dto.SeriesResult{Series: series, Path: s.artifact.Path()}

	if err := s.artifact.Persist(series); err != nil {
		s.metrics.ArtifactWrites.Inc("error")
		log.Error().Err(err).Str("store", store).Str("file", res.Path).Msg("Chart series built but not persisted")
		return res, err
	}
	s.metrics.ArtifactWrites.Inc("ok")
	return res, nil
}

func (s *logQueryService) fetch(ctx context.Context, store, minText, maxText string) ([]model.LogRecord, error) {
	rng, err := util.ValidateRange(minText, maxText)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, store, rng)
}

func (s *logQueryService) query(ctx context.Context, store string, rng model.QueryRange) ([]model.LogRecord, error) {
	adapter, err := s.registry.Get(store)
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log.Info().
		Str("store", store).
		Time("min", rng.Min).
		Time("max", rng.Max).
		Msg("Querying log range")

	start := time.Now()
	// A limit of zero asks the limiter for its ceiling.
	records, err := adapter.QueryRange(ctx, rng, 0)
	s.metrics.QueryDuration.Observe(time.Since(start).Seconds(), store)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", err, ctxErr)
		}
		log.Error().Err(err).Str("store", store).Msg("Log range query failed")
		return nil, err
	}

	s.metrics.RecordsReturned.Add(float64(len(records)), store)
	log.Debug().Str("store", store).Int("count", len(records)).Dur("took", time.Since(start)).Msg("Log range query finished")
	return records, nil
}

func (s *logQueryService) count(store, op string, err error) {
	if errors.Is(err, model.ErrUnknownStore) {
		// keep caller-supplied names out of label values
		store = "unknown"
	}
	s.metrics.Queries.Inc(store, op, statusLabel(err))
}

func statusLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case model.IsValidation(err):
		return "invalid"
	case errors.Is(err, model.ErrUnknownStore):
		return "unknown_store"
	case errors.Is(err, model.ErrEmptyResultSet):
		return "empty"
	case errors.Is(err, model.ErrPersistFailure):
		return "persist_error"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}

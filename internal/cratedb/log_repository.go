package cratedb

import (
	"context"
	"fmt"
	"strings"

	"logrange-backend/internal/model"
	"logrange-backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// StoreName is the registry key of this adapter.
const StoreName = "cratedb"

// Querier is the part of *pgxpool.Pool the adapter needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type crateLogRepository struct {
	db      Querier
	table   string
	builder sq.StatementBuilderType
}

func NewLogRepository(db Querier, table string) repository.StoreAdapter {
	return &crateLogRepository{
		db:      db,
		table:   table,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// BuildRangeQuery renders the inclusive range query with its row limit.
func (r *crateLogRepository) BuildRangeQuery(rng model.QueryRange, limit int) (string, []any, error) {
	return r.builder.
		Select("*").
		From(r.table).
		Where(sq.Expr(model.FieldTime+" BETWEEN ? AND ?", rng.Min.UTC(), rng.Max.UTC())).
		OrderBy(model.FieldTime + " ASC").
		Limit(uint64(limit)).
		ToSql()
}

func (r *crateLogRepository) QueryRange(ctx context.Context, rng model.QueryRange, limit int) ([]model.LogRecord, error) {
	querySQL, args, err := r.BuildRangeQuery(rng, limit)
	if err != nil {
		return nil, fmt.Errorf("build range query: %w", err)
	}

	log.Debug().Str("query", querySQL).Interface("args", args).Msg("Executing CrateDB range query")

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		log.Error().Err(err).Str("query", querySQL).Msg("Failed to execute range query")
		return nil, fmt.Errorf("%w: cratedb query: %w", model.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	records := make([]model.LogRecord, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			log.Warn().Err(err).Msg("Failed to read CrateDB row values")
			continue
		}
		raw := make(map[string]any, len(values))
		for i, v := range values {
			if i < len(fields) {
				raw[columnKey(fields[i].Name)] = v
			}
		}
		record, err := repository.DecodeRecord(raw)
		if err != nil {
			log.Warn().Err(err).Msg("Skipping CrateDB row that is not a log record")
			continue
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Error().Err(err).Msg("Error iterating range query rows")
		return nil, fmt.Errorf("%w: cratedb rows: %w", model.ErrStoreUnavailable, err)
	}

	log.Debug().
		Str("table", r.table).
		Int("limit", limit).
		Int("returned_rows", len(records)).
		Msg("CrateDB range query successful")
	return records, nil
}

// columnKey maps unquoted, lower-cased column names back to record field names.
func columnKey(name string) string {
	for _, field := range []string{model.FieldTime, model.FieldContentLength, model.FieldResponseTimeMs} {
		if strings.EqualFold(name, field) {
			return field
		}
	}
	return name
}

package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"logrange-backend/internal/model"
	"logrange-backend/internal/repository"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/closepointintime"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/rs/zerolog/log"
)

// StoreName is the registry key of this adapter.
const StoreName = "elasticsearch"

// MaxPageSize matches the default index.max_result_window; larger limits are
// collected over several search_after pages.
const MaxPageSize = 10000

const pitKeepAlive = "1m"

type elasticsearchLogRepository struct {
	esTypedClient *elasticsearch.TypedClient
	index         string
	pageSize      int
}

// NewLogRepository returns the document store adapter over index, which may
// be a single index, an alias or a pattern such as "logs-*".
func NewLogRepository(client *elasticsearch.TypedClient, index string) repository.StoreAdapter {
	return &elasticsearchLogRepository{
		esTypedClient: client,
		index:         index,
		pageSize:      MaxPageSize,
	}
}

func (r *elasticsearchLogRepository) QueryRange(ctx context.Context, rng model.QueryRange, limit int) ([]model.LogRecord, error) {
	records := make([]model.LogRecord, 0)
	if limit <= 0 {
		return records, nil
	}

	pit, err := r.esTypedClient.OpenPointInTime(r.index).KeepAlive(pitKeepAlive).Do(ctx)
	if err != nil {
		log.Error().Err(err).Str("index", r.index).Msg("Error opening Elasticsearch point in time")
		return nil, fmt.Errorf("%w: elasticsearch open pit: %w", model.ErrStoreUnavailable, err)
	}
	pitID := pit.Id
	defer func() { r.closePointInTime(pitID) }()

	minStr := rng.Min.UTC().Format(time.RFC3339Nano)
	maxStr := rng.Max.UTC().Format(time.RFC3339Nano)
	order := sortorder.Asc

	var searchAfter []types.FieldValue
	pages := 0
	for len(records) < limit {
		size := min(limit-len(records), r.pageSize)
		searchRequest := &search.Request{
			Query: &types.Query{
				Bool: &types.BoolQuery{
					Filter: []types.Query{
						{
							Range: map[string]types.RangeQuery{
								model.FieldTime: types.DateRangeQuery{
									Gte: &minStr,
									Lte: &maxStr,
								},
							},
						},
					},
				},
			},
			Pit:            &types.PointInTimeReference{Id: pitID, KeepAlive: pitKeepAlive},
			SearchAfter:    searchAfter,
			Size:           &size,
			TrackTotalHits: false,
			Sort: []types.SortCombinations{
				types.SortOptions{SortOptions: map[string]types.FieldSort{model.FieldTime: {Order: &order}}},
				types.SortOptions{SortOptions: map[string]types.FieldSort{"_shard_doc": {Order: &order}}},
			},
		}

		res, err := r.esTypedClient.Search().
			Request(searchRequest).
			Do(ctx)
		if err != nil {
			log.Error().Err(err).Str("index", r.index).Int("page", pages).Msg("Error executing Elasticsearch range search")
			return nil, fmt.Errorf("%w: elasticsearch search: %w", model.ErrStoreUnavailable, err)
		}
		pages++
		if res.PitId != nil && *res.PitId != "" {
			pitID = *res.PitId
		}

		hits := res.Hits.Hits
		for _, hit := range hits {
			if record, ok := decodeHit(hit); ok {
				records = append(records, record)
			}
		}
		if len(hits) < size || len(hits) == 0 {
			break
		}
		searchAfter = hits[len(hits)-1].Sort
	}

	if len(records) > limit {
		records = records[:limit]
	}

	log.Debug().
		Str("index", r.index).
		Time("min", rng.Min).
		Time("max", rng.Max).
		Int("limit", limit).
		Int("pages", pages).
		Int("returned_hits", len(records)).
		Msg("Elasticsearch range search successful")
	return records, nil
}

func decodeHit(hit types.Hit) (model.LogRecord, bool) {
	if hit.Source_ == nil {
		return model.LogRecord{}, false
	}
	raw := make(map[string]any)
	dec := json.NewDecoder(bytes.NewReader(hit.Source_))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		log.Warn().Err(err).Str("index", hit.Index_).Msg("Error unmarshalling Elasticsearch hit source")
		return model.LogRecord{}, false
	}
	record, err := repository.DecodeRecord(raw)
	if err != nil {
		log.Warn().Err(err).Str("index", hit.Index_).Msg("Skipping Elasticsearch document that is not a log record")
		return model.LogRecord{}, false
	}
	return record, true
}

// closePointInTime releases the search context even when the query context is done.
func (r *elasticsearchLogRepository) closePointInTime(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.esTypedClient.ClosePointInTime().Request(&closepointintime.Request{Id: id}).Do(ctx); err != nil {
		log.Warn().Err(err).Str("index", r.index).Msg("Failed to close Elasticsearch point in time")
	}
}

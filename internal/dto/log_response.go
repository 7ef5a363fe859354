package dto

import (
	"time"

	"logrange-backend/internal/model"
)

type LogsResponse struct {
	Data  []model.LogRecord `json:"data"`
	Count int               `json:"count"`
}

// StatRecord is the projection of a LogRecord returned alongside statistics.
type StatRecord struct {
	Time          string `json:"time"`
	ContentLength string `json:"contentLength"`
	Ms            string `json:"ms"`
}

type StatsResponse struct {
	Data []StatRecord                          `json:"data"`
	Stat map[model.StatField]model.StatSummary `json:"stat"`
}

type SeriesResponse struct {
	Data         []model.SeriesPoint `json:"data"`
	PersistError string              `json:"persistError,omitempty"`
}

type StoresResponse struct {
	Stores []string `json:"stores"`
}

// StatsResult is what the query service hands back for a statistics request.
type StatsResult struct {
	Records []model.LogRecord
	Stats   map[model.StatField]model.StatSummary
}

type SeriesResult struct {
	Series model.ChartSeries
	Path   string
}

func ProjectRecords(records []model.LogRecord) []StatRecord {
	out := make([]StatRecord, len(records))
	for i, r := range records {
		out[i] = StatRecord{
			Time:          r.Time.UTC().Format(time.RFC3339Nano),
			ContentLength: r.ContentLength,
			Ms:            r.ResponseTimeMs,
		}
	}
	return out
}

func NewStatsResponse(res *StatsResult) StatsResponse {
	return StatsResponse{Data: ProjectRecords(res.Records), Stat: res.Stats}
}

func NewSeriesResponse(res *SeriesResult, persistErr error) SeriesResponse {
	points := res.Series.Points
	if points == nil {
		points = []model.SeriesPoint{}
	}
	resp := SeriesResponse{Data: points}
	if persistErr != nil {
		resp.PersistError = persistErr.Error()
	}
	return resp
}

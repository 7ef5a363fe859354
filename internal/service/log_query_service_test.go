package service_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logrange-backend/config"
	"logrange-backend/internal/chart"
	"logrange-backend/internal/metrics"
	repository_mock "logrange-backend/internal/mocks/repository"
	"logrange-backend/internal/model"
	"logrange-backend/internal/repository"
	"logrange-backend/internal/service"
)

type fixture struct {
	svc      service.LogQueryService
	adapter  *repository_mock.MockStoreAdapter
	metrics  *metrics.Metrics
	artifact string
}

func newFixture(t *testing.T, timeout time.Duration, artifactPath string) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	adapter := repository_mock.NewMockStoreAdapter(ctrl)

	registry := repository.NewRegistry()
	registry.Register("cratedb", adapter, repository.NewResultLimiter(0))

	if artifactPath == "" {
		artifactPath = filepath.Join(t.TempDir(), "public", "myjsonfile.json")
	}
	cfg := &config.Config{
		Query: config.QueryConfig{Timeout: timeout},
		Chart: config.ChartConfig{MaxPoints: 2},
	}
	m := metrics.NewTestMetrics()
	svc := service.NewLogQueryService(cfg, registry, chart.NewArtifactWriter(artifactPath), m)
	return fixture{svc: svc, adapter: adapter, metrics: m, artifact: artifactPath}
}

func (f fixture) scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	f.metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	return rec.Body.String()
}

func at(hour int) time.Time {
	return time.Date(2024, 1, 1, hour, 0, 0, 0, time.UTC)
}

var sample = []model.LogRecord{
	{Time: at(1), ContentLength: "1000", ResponseTimeMs: "30"},
	{Time: at(2), ContentLength: "10", ResponseTimeMs: "10"},
	{Time: at(3), ContentLength: "20", ResponseTimeMs: "20"},
	{Time: at(4), ContentLength: "10", ResponseTimeMs: "99"},
}

func TestQueryLogs_ValidatesAndAppliesCeiling(t *testing.T) {
	f := newFixture(t, time.Second, "")
	want := model.QueryRange{Min: at(0), Max: at(5)}

	f.adapter.EXPECT().
		QueryRange(gomock.Any(), want, repository.MaxRecords).
		Return(sample, nil)

	got, err := f.svc.QueryLogs(context.Background(), "cratedb", "2024-01-01", "2024-01-01T05:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestQueryLogs_Errors(t *testing.T) {
	tests := []struct {
		name     string
		store    string
		min, max string
		wantErr  error
	}{
		{"missing bound", "cratedb", "", "2024-01-01", model.ErrMissingBound},
		{"malformed", "cratedb", "yesterday", "2024-01-01", model.ErrMalformedTimestamp},
		{"inverted", "cratedb", "2024-01-02", "2024-01-01", model.ErrInvertedRange},
		{"unknown store", "rethinkdb", "2024-01-01", "2024-01-02", model.ErrUnknownStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, time.Second, "")
			// no adapter call is expected
			_, err := f.svc.QueryLogs(context.Background(), tt.store, tt.min, tt.max)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQueryLogs_StoreFailure(t *testing.T) {
	f := newFixture(t, time.Second, "")
	f.adapter.EXPECT().
		QueryRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: connection refused", model.ErrStoreUnavailable))

	_, err := f.svc.QueryLogs(context.Background(), "cratedb", "2024-01-01", "2024-01-02")
	assert.ErrorIs(t, err, model.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueryLogs_Timeout(t *testing.T) {
	f := newFixture(t, 20*time.Millisecond, "")
	f.adapter.EXPECT().
		QueryRange(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ model.QueryRange, _ int) ([]model.LogRecord, error) {
			<-ctx.Done()
			return nil, fmt.Errorf("%w: store hung up", model.ErrStoreUnavailable)
		})

	_, err := f.svc.QueryLogs(context.Background(), "cratedb", "2024-01-01", "2024-01-02")
	assert.ErrorIs(t, err, model.ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetStats(t *testing.T) {
	f := newFixture(t, time.Second, "")
	f.adapter.EXPECT().QueryRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(sample, nil)

	res, err := f.svc.GetStats(context.Background(), "cratedb", "2024-01-01", "2024-01-02")
	require.NoError(t, err)

	assert.Equal(t, sample, res.Records)
	assert.Equal(t, model.StatSummary{Min: 10, Max: 1000, Average: 260, Median: 10, Count: 4}, res.Stats[model.StatContentLength])
	assert.Equal(t, model.StatSummary{Min: 10, Max: 99, Average: 39.75, Median: 20, Count: 4}, res.Stats[model.StatResponseTimeMs])
}

func TestGetStats_SingleField(t *testing.T) {
	f := newFixture(t, time.Second, "")
	f.adapter.EXPECT().QueryRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(sample, nil)

	res, err := f.svc.GetStats(context.Background(), "cratedb", "2024-01-01", "2024-01-02", model.StatResponseTimeMs)
	require.NoError(t, err)
	assert.Len(t, res.Stats, 1)
	assert.Contains(t, res.Stats, model.StatResponseTimeMs)
}

func TestGetStats_EmptyResultSet(t *testing.T) {
	f := newFixture(t, time.Second, "")
	f.adapter.EXPECT().QueryRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := f.svc.GetStats(context.Background(), "cratedb", "2024-01-01", "2024-01-02")
	assert.ErrorIs(t, err, model.ErrEmptyResultSet)
}

func TestBuildSeries_PersistsArtifact(t *testing.T) {
	f := newFixture(t, time.Second, "")
	f.adapter.EXPECT().QueryRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(sample, nil)

	res, err := f.svc.BuildSeries(context.Background(), "cratedb", "2024-01-01", "2024-01-02")
	require.NoError(t, err)

	assert.Equal(t, []model.SeriesPoint{{Value: "1000", Unit: "30"}, {Value: "10", Unit: "10"}}, res.Series.Points)
	assert.Equal(t, f.artifact, res.Path)

	data, err := os.ReadFile(f.artifact)
	require.NoError(t, err)
	assert.JSONEq(t, `{"JSChart":{"datasets":[{"type":"line","data":[{"value":"1000","unit":"30"},{"value":"10","unit":"10"}]}]}}`, string(data))
}

func TestBuildSeries_PersistFailureKeepsSeries(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	f := newFixture(t, time.Second, filepath.Join(blocker, "chart.json"))
	f.adapter.EXPECT().QueryRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(sample, nil)

	res, err := f.svc.BuildSeries(context.Background(), "cratedb", "2024-01-01", "2024-01-02")
	assert.ErrorIs(t, err, model.ErrPersistFailure)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.Series.Len())
}

func TestRefreshSeries(t *testing.T) {
	f := newFixture(t, time.Second, "")
	rng := model.QueryRange{Min: at(0), Max: at(1)}
	f.adapter.EXPECT().QueryRange(gomock.Any(), rng, repository.MaxRecords).Return(sample[:1], nil)

	res, err := f.svc.RefreshSeries(context.Background(), "cratedb", rng)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Series.Len())
	assert.FileExists(t, f.artifact)
	assert.Contains(t, f.scrape(t), `logrange_queries_total{operation="series",status="ok",store="cratedb"} 1`)
}

func TestRefreshSeries_InvertedWindow(t *testing.T) {
	f := newFixture(t, time.Second, "")
	// no adapter call is expected
	res, err := f.svc.RefreshSeries(context.Background(), "cratedb", model.QueryRange{Min: at(2), Max: at(1)})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, model.ErrInvertedRange)
	assert.NoFileExists(t, f.artifact)
	assert.Contains(t, f.scrape(t), `logrange_queries_total{operation="series",status="invalid",store="cratedb"} 1`)
}

func TestStores(t *testing.T) {
	f := newFixture(t, time.Second, "")
	assert.Equal(t, []string{"cratedb"}, f.svc.Stores())
}

package chart_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logrange-backend/internal/chart"
	"logrange-backend/internal/model"
)

func TestPersist_WritesEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "myjsonfile.json")
	w := chart.NewArtifactWriter(path)

	series := model.ChartSeries{Points: []model.SeriesPoint{{Value: "100", Unit: "5"}}}
	require.NoError(t, w.Persist(series))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"JSChart":{"datasets":[{"type":"line","data":[{"value":"100","unit":"5"}]}]}}`, string(data))
	assert.Equal(t, path, w.Path())
}

func TestPersist_EmptySeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.json")
	require.NoError(t, chart.NewArtifactWriter(path).Persist(model.ChartSeries{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"JSChart":{"datasets":[{"type":"line","data":[]}]}}`, string(data))
}

func TestPersist_ConcurrentWritersLeaveOneWholeDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.json")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// a fresh writer per goroutine still shares the path lock
			w := chart.NewArtifactWriter(path)
			points := make([]model.SeriesPoint, 0, 40)
			for j := 0; j < 40; j++ {
				points = append(points, model.SeriesPoint{Value: fmt.Sprintf("%d-%d", i, j), Unit: "1"})
			}
			assert.NoError(t, w.Persist(model.ChartSeries{Points: points}))
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var env chart.Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	require.Len(t, env.JSChart.Datasets, 1)
	assert.Len(t, env.JSChart.Datasets[0].Data, 40)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestPersist_Failure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := chart.NewArtifactWriter(filepath.Join(blocker, "chart.json")).Persist(model.ChartSeries{})
	assert.ErrorIs(t, err, model.ErrPersistFailure)
}

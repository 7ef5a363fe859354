package chart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"logrange-backend/internal/model"

	"github.com/rs/zerolog/log"
)

// Envelope is the on-disk layout read by the chart widget.
type Envelope struct {
	JSChart JSChart `json:"JSChart"`
}

type JSChart struct {
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Type string              `json:"type"`
	Data []model.SeriesPoint `json:"data"`
}

func NewEnvelope(series model.ChartSeries) Envelope {
	data := series.Points
	if data == nil {
		data = []model.SeriesPoint{}
	}
	return Envelope{JSChart: JSChart{Datasets: []Dataset{{Type: "line", Data: data}}}}
}

type ArtifactWriter interface {
	Persist(series model.ChartSeries) error
	Path() string
}

type fileArtifactWriter struct {
	filePath string
	mu       *sync.Mutex
}

// pathLocks serialises writers targeting the same file, even across writer values.
var pathLocks sync.Map

func lockFor(path string) *sync.Mutex {
	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}
	mu, _ := pathLocks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func NewArtifactWriter(filePath string) ArtifactWriter {
	return &fileArtifactWriter{
		filePath: filePath,
		mu:       lockFor(filePath),
	}
}

// Persist replaces the artifact with the series. The file is written to a
// temporary sibling and renamed, so readers see either the old or the new
// document in full. The last writer wins.
func (w *fileArtifactWriter) Persist(series model.ChartSeries) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := json.Marshal(NewEnvelope(series))
	if err != nil {
		return fmt.Errorf("%w: marshal: %w", model.ErrPersistFailure, err)
	}

	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("Failed to create chart artifact directory")
		return fmt.Errorf("%w: %w", model.ErrPersistFailure, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.filePath)+".*.tmp")
	if err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("Failed to create temporary chart artifact")
		return fmt.Errorf("%w: %w", model.ErrPersistFailure, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: write: %w", model.ErrPersistFailure, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: sync: %w", model.ErrPersistFailure, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: close: %w", model.ErrPersistFailure, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: chmod: %w", model.ErrPersistFailure, err)
	}

	if err := os.Rename(tmpPath, w.filePath); err != nil {
		log.Error().Err(err).Str("from", tmpPath).Str("to", w.filePath).Msg("Failed to rename chart artifact")
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", model.ErrPersistFailure, err)
	}

	log.Debug().Str("file", w.filePath).Int("points", series.Len()).Msg("Saved chart artifact")
	return nil
}

func (w *fileArtifactWriter) Path() string {
	return w.filePath
}

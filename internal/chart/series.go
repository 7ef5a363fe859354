package chart

import "logrange-backend/internal/model"

// DefaultMaxPoints is the point cap used when none is configured.
const DefaultMaxPoints = 50

// Build walks records in order and keeps the first point seen for each
// content length, stopping once maxPoints distinct values are collected.
// Records without a content length are skipped rather than charted as a
// point with no value, so an empty length never claims a slot in the cap.
func Build(records []model.LogRecord, maxPoints int) model.ChartSeries {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}

	points := make([]model.SeriesPoint, 0, min(maxPoints, len(records)))
	seen := make(map[string]struct{}, cap(points))
	for _, rec := range records {
		if len(points) >= maxPoints {
			break
		}
		if rec.ContentLength == "" {
			continue
		}
		if _, dup := seen[rec.ContentLength]; dup {
			continue
		}
		seen[rec.ContentLength] = struct{}{}
		points = append(points, model.SeriesPoint{Value: rec.ContentLength, Unit: rec.ResponseTimeMs})
	}
	return model.ChartSeries{Points: points}
}

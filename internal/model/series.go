package model

// SeriesPoint is one charted pair: the content length and its response time.
type SeriesPoint struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// ChartSeries holds points with pairwise distinct values, in first-seen order.
type ChartSeries struct {
	Points []SeriesPoint
}

func (s ChartSeries) Len() int {
	return len(s.Points)
}

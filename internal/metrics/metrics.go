package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Counter interface {
	Inc(labels ...string)
	Add(v float64, labels ...string)
}

type Observer interface {
	Observe(v float64, labels ...string)
}

// Metrics groups the collectors the query path reports to.
type Metrics struct {
	Queries         Counter
	RecordsReturned Counter
	QueryDuration   Observer
	ArtifactWrites  Counter

	gatherer prometheus.Gatherer
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func (p *PrometheusCounter) Add(v float64, labels ...string) {
	p.counter.WithLabelValues(labels...).Add(v)
}

type PrometheusHistogram struct {
	histogram *prometheus.HistogramVec
}

func (p *PrometheusHistogram) Observe(v float64, labels ...string) {
	p.histogram.WithLabelValues(labels...).Observe(v)
}

func newCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logrange",
			Name:      name,
			Help:      help,
		}, labels),
	}
	reg.MustRegister(c.counter)
	return c
}

func newMetrics(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	duration := &PrometheusHistogram{
		histogram: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "logrange",
			Name:      "store_query_duration_seconds",
			Help:      "Latency of range queries against a log store.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"store"}),
	}
	reg.MustRegister(duration.histogram)

	return &Metrics{
		Queries: newCounter(reg,
			"queries_total",
			"Range queries served, by store, operation and outcome.",
			[]string{"store", "operation", "status"},
		),
		RecordsReturned: newCounter(reg,
			"records_returned_total",
			"Log records returned by range queries.",
			[]string{"store"},
		),
		QueryDuration: duration,
		ArtifactWrites: newCounter(reg,
			"chart_artifact_writes_total",
			"Chart artifact writes, by outcome.",
			[]string{"status"},
		),
		gatherer: gatherer,
	}
}

// New registers the collectors on the default Prometheus registry.
func New() *Metrics {
	return newMetrics(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewTestMetrics uses a private registry so tests can build many instances.
func NewTestMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	return newMetrics(reg, reg)
}

// Handler serves the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

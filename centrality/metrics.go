package centrality

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "txgraph"
	metricsSubsystem = "centrality"
)

// Metrics holds the Prometheus collectors updated by Compute.
type Metrics struct {
	// SourcesProcessed counts single-source passes completed by all workers.
	SourcesProcessed prometheus.Counter

	// RunDuration observes the wall time of each successful Compute call.
	RunDuration prometheus.Histogram

	// Workers is the number of workers used by the last run.
	Workers prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered. Registering twice on the same
// registerer panics, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		SourcesProcessed: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "sources_processed_total",
			Help:      "Single-source shortest-path passes completed",
		}),
		RunDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a betweenness computation in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		Workers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "workers",
			Help:      "Workers used by the last betweenness computation",
		}),
	}
}

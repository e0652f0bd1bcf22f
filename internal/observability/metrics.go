package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_ingest"

// Metrics holds the Prometheus counters and histograms for the ingestion
// pipeline.
type Metrics struct {
	IngestRequests prometheus.Counter
	RowsDetected   prometheus.Counter
	RowsInserted   prometheus.Counter
	RowsRejected   prometheus.Counter
	RowConflicts   prometheus.Counter
	IngestDuration prometheus.Histogram
}

// NewMetrics creates and registers all ingestion metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.IngestRequests,
		m.RowsDetected,
		m.RowsInserted,
		m.RowsRejected,
		m.RowConflicts,
		m.IngestDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so parallel tests do not
// hit "already registered" panics on the default registry.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		IngestRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_requests_total",
			Help:      "Total CSV ingestion requests that reached row processing.",
		}),
		RowsDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_detected_total",
			Help:      "Total non-blank data lines seen across all ingestions.",
		}),
		RowsInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_inserted_total",
			Help:      "Total readings persisted.",
		}),
		RowsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_rejected_total",
			Help:      "Total rows rejected by parse or validation rules.",
		}),
		RowConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "row_conflicts_total",
			Help:      "Total rows skipped because the (city,date) pair already existed.",
		}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingest_duration_seconds",
			Help:      "Duration of row parsing plus persistence per ingestion request.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

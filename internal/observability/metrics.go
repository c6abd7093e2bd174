// README: Prometheus metrics for ingestion and fee queries.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	IngestRuns         *prometheus.CounterVec // labels: outcome={success,fetch_error,store_error}
	ObservationsStored prometheus.Counter
	StationsSkipped    prometheus.Counter
	IngestDuration     prometheus.Histogram

	QuoteRequests *prometheus.CounterVec // labels: outcome={ok,no_data,forbidden,error}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		IngestRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courierfee",
			Name:      "ingest_runs_total",
			Help:      "Ingestion runs by outcome.",
		}, []string{"outcome"}),
		ObservationsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "courierfee",
			Name:      "observations_stored_total",
			Help:      "Observations appended to the store.",
		}),
		StationsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "courierfee",
			Name:      "stations_skipped_total",
			Help:      "Feed stations outside the supported city set.",
		}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "courierfee",
			Name:      "ingest_duration_seconds",
			Help:      "Duration of a complete fetch-filter-store cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		QuoteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courierfee",
			Name:      "quote_requests_total",
			Help:      "Fee quote requests by outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.IngestRuns,
		m.ObservationsStored,
		m.StationsSkipped,
		m.IngestDuration,
		m.QuoteRequests,
	)
	return m
}

// NewUnregisteredMetrics creates metrics without touching the default
// registry, for tests that build more than one service.
func NewUnregisteredMetrics() *Metrics {
	return &Metrics{
		IngestRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ingest_runs_total",
		}, []string{"outcome"}),
		ObservationsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "observations_stored_total",
		}),
		StationsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stations_skipped_total",
		}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "ingest_duration_seconds",
		}),
		QuoteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quote_requests_total",
		}, []string{"outcome"}),
	}
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Gateway metrics - using explicit registration
var (
	// Provider request counters
	ProviderRequestsTotal *prometheus.CounterVec

	// External provider latency
	ProviderLatency *prometheus.HistogramVec

	// Persisted entity counters
	ResultsPersistedTotal *prometheus.CounterVec
)

func init() {
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total number of upstream provider requests",
		},
		[]string{"operation", "provider", "status"},
	)

	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gateway",
			Subsystem: "upstream",
			Name:      "latency_seconds",
			Help:      "Upstream provider response time in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"provider"},
	)

	ResultsPersistedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "store",
			Name:      "results_persisted_total",
			Help:      "Total entities written to the result store",
		},
		[]string{"entity"},
	)

	prometheus.MustRegister(ProviderRequestsTotal)
	prometheus.MustRegister(ProviderLatency)
	prometheus.MustRegister(ResultsPersistedTotal)
}

// RecordProviderRequest increments the per-provider request counter.
func RecordProviderRequest(operation, provider, status string) {
	ProviderRequestsTotal.WithLabelValues(operation, provider, status).Inc()
}

// RecordProviderLatency observes an upstream round-trip duration.
func RecordProviderLatency(provider string, seconds float64) {
	ProviderLatency.WithLabelValues(provider).Observe(seconds)
}

// RecordResultPersisted increments the persisted-entity counter.
func RecordResultPersisted(entity string) {
	ResultsPersistedTotal.WithLabelValues(entity).Inc()
}

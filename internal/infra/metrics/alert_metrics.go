// Package metrics exposes Prometheus instruments for the alert pipeline.
package metrics

import (
	"agroalert/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agroalert"

type alertMetrics struct {
	candidateRequests *prometheus.CounterVec
	categoryResults   *prometheus.CounterVec
	aggregations      *prometheus.CounterVec
}

// NewRegistry returns the registry served on /metrics, preloaded with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewAlertMetrics registers the alert counters on registry.
func NewAlertMetrics(registry *prometheus.Registry) service.AlertMetrics {
	factory := promauto.With(registry)

	return &alertMetrics{
		candidateRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidate_requests_total",
			Help:      "Remote alert lookups by category and outcome (hit, miss).",
		}, []string{"category", "outcome"}),
		categoryResults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "category_results_total",
			Help:      "Final category results by category and result (found, not_found, failed).",
		}, []string{"category", "result"}),
		aggregations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregations_total",
			Help:      "Finished aggregation runs by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *alertMetrics) CandidateRequest(category, outcome string) {
	m.candidateRequests.WithLabelValues(category, outcome).Inc()
}

func (m *alertMetrics) CategoryResult(category, result string) {
	m.categoryResults.WithLabelValues(category, result).Inc()
}

func (m *alertMetrics) Aggregation(outcome string) {
	m.aggregations.WithLabelValues(outcome).Inc()
}

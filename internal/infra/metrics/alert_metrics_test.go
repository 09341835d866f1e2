package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAlertMetrics_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewAlertMetrics(registry).(*alertMetrics)

	m.CandidateRequest("pest", "miss")
	m.CandidateRequest("pest", "hit")
	m.CandidateRequest("pest", "miss")
	m.CategoryResult("disease", "not_found")
	m.Aggregation("merged")

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.candidateRequests.WithLabelValues("pest", "miss")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.candidateRequests.WithLabelValues("pest", "hit")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.categoryResults.WithLabelValues("disease", "not_found")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.aggregations.WithLabelValues("merged")), 1e-9)
}

func TestNewRegistry_GathersRuntimeMetrics(t *testing.T) {
	registry := NewRegistry()
	NewAlertMetrics(registry).Aggregation("location_denied")

	families, err := registry.Gather()
	assert.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["agroalert_aggregations_total"])
	assert.True(t, names["go_goroutines"])
}

func TestHTTPMetrics_ObserveRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewHTTPMetrics(registry)

	m.ObserveRequest("GET", "/api/v1/alerts", 200, 120*time.Millisecond)
	m.ObserveRequest("GET", "/api/v1/alerts", 200, 80*time.Millisecond)
	m.ObserveRequest("GET", "/api/v1/alerts", 400, time.Millisecond)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/alerts", "200")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/alerts", "400")), 1e-9)
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestHTTPMetrics_NilIsNoop(t *testing.T) {
	var m *HTTPMetrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/health", 200, time.Millisecond)
	})
}

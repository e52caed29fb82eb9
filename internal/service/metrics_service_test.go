package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceExposesCollectors(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/games/:id", http.StatusOK, 15*time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)
	m.RecordTransition("clock", "confirm_pool", "applied")

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	names := make(map[string]float64)
	for _, family := range families {
		var total float64
		for _, metric := range family.GetMetric() {
			if c := metric.GetCounter(); c != nil {
				total += c.GetValue()
			}
		}
		names[family.GetName()] = total
	}
	assert.Equal(t, float64(1), names["http_requests_total"])
	assert.Equal(t, float64(2), names["cache_lookups_total"])
	assert.Equal(t, float64(1), names["officials_transitions_total"])

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `officials_transitions_total{action="confirm_pool",outcome="applied",slot="clock"} 1`)
}

func TestMetricsServiceNilIsNoop(t *testing.T) {
	var m *MetricsService
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.RecordCacheOperation(true, time.Millisecond)
		m.RecordTransition("clock", "unassign", "applied")
	})
}

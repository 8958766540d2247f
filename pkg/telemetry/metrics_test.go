package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAPIRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry, prometheus.Labels{"service": "coffeestore"})

	m.ObserveAPIRequest("GET", "/api/coffees", 200, 15*time.Millisecond)
	m.ObserveAPIRequest("GET", "/api/coffees", 200, 5*time.Millisecond)
	m.ObserveAPIRequest("PUT", "", 404, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.apiRequests.WithLabelValues("GET", "/api/coffees", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.apiRequests.WithLabelValues("PUT", "unknown", "404")))
}

func TestInFlightGauge(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry(), nil)

	m.IncInFlight()
	m.IncInFlight()
	m.DecInFlight()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.inFlight))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPIRequest("GET", "/", 200, time.Millisecond)
	m.IncInFlight()
	m.DecInFlight()
}

package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestFilterAttributesDropsForbiddenLabels(t *testing.T) {
	attrs := FilterAttributes(
		attribute.String("entity", "coffee"),
		attribute.String("coffee_id", "456"),
		attribute.String("transition", "create"),
	)
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "entity" && attrs[1].Key != "entity" {
		t.Fatalf("expected entity to be retained")
	}
	if attrs[0].Key != "transition" && attrs[1].Key != "transition" {
		t.Fatalf("expected transition to be retained")
	}
}

func TestRecordTransitionCountsWrites(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := New(Config{ServiceName: "coffeestore"}, provider)
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordTransition(ctx, "coffee", TransitionCreate)
	m.RecordTransition(ctx, "coffee", TransitionCreate)
	m.RecordTransition(ctx, "client", TransitionInactivate)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, metric := range scope.Metrics {
			if metric.Name != "coffeestore_entity_transitions_total" {
				continue
			}
			sum, ok := metric.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, point := range sum.DataPoints {
				total += point.Value
			}
		}
	}
	assert.Equal(t, int64(3), total)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordTransition(context.Background(), "coffee", TransitionCreate)
	m.RecordRateLimitAllowed(context.Background(), "/api/coffees")
	m.RecordRateLimitDenied(context.Background(), "/api/coffees", "rate")
}

func TestNewWithNoopProvider(t *testing.T) {
	m, err := New(Config{}, noop.NewMeterProvider())
	require.NoError(t, err)
	m.RecordTransition(context.Background(), "address", TransitionDelete)
}

func TestGinMiddlewareObservesRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	httpMetrics := NewHTTPMetricsWithRegisterer(registry, Config{ServiceName: "coffeestore", Environment: "test"})

	router := gin.New()
	router.Use(GinMiddleware(httpMetrics))
	router.GET("/api/coffees/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/coffees/abc", nil))
	require.Equal(t, http.StatusNotFound, resp.Code)

	expected := `
# HELP coffeestore_http_requests_total Counts HTTP requests by method, route, and status.
# TYPE coffeestore_http_requests_total counter
coffeestore_http_requests_total{env="test",method="GET",route="/api/coffees/:id",service="coffeestore",status="404"} 1
`
	err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "coffeestore_http_requests_total")
	assert.NoError(t, err)
}

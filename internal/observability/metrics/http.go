package metrics

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smallbiznis/coffeestore/pkg/telemetry"
)

// HTTPMetrics records Prometheus request metrics for the gin engine.
type HTTPMetrics struct {
	metrics *telemetry.Metrics
}

// NewHTTPMetrics registers HTTP metrics on the default Prometheus registry.
func NewHTTPMetrics(cfg Config) *HTTPMetrics {
	return NewHTTPMetricsWithRegisterer(prometheus.DefaultRegisterer, cfg)
}

func NewHTTPMetricsWithRegisterer(registerer prometheus.Registerer, cfg Config) *HTTPMetrics {
	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "coffeestore"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	return &HTTPMetrics{
		metrics: telemetry.NewMetrics(registerer, prometheus.Labels{
			"service": serviceName,
			"env":     environment,
		}),
	}
}

// GinMiddleware observes every request once the handler chain completes.
func GinMiddleware(h *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h == nil {
			c.Next()
			return
		}

		start := time.Now()
		h.metrics.IncInFlight()
		defer h.metrics.DecInFlight()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		h.metrics.ObserveAPIRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

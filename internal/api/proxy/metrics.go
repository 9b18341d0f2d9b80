package proxy

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var latencyBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// edgeMetrics holds the request counter and latency histogram exposed on
// the metrics endpoint.
type edgeMetrics struct {
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// newEdgeMetrics registers the edge collectors, reusing collectors that a
// previous router instance already registered.
func newEdgeMetrics() *edgeMetrics {
	metrics := &edgeMetrics{
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recipe_vault",
			Subsystem: "proxy",
			Name:      "http_requests_total",
			Help:      "Count of requests handled by the edge server",
		}, []string{"method", "path", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "recipe_vault",
			Subsystem: "proxy",
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of edge requests",
			Buckets:   latencyBuckets,
		}, []string{"method", "path", "status"}),
	}

	if err := prometheus.Register(metrics.requestTotal); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			metrics.requestTotal = alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
		}
	}

	if err := prometheus.Register(metrics.requestLatency); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			metrics.requestLatency = alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
		}
	}

	return metrics
}

// middleware observes every request passing through the edge. Forwarded
// traffic has no matched route, so the raw request path labels it.
func (metrics *edgeMetrics) middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}

		labels := prometheus.Labels{
			"method": ctx.Request.Method,
			"path":   path,
			"status": strconv.Itoa(ctx.Writer.Status()),
		}
		metrics.requestTotal.With(labels).Inc()
		metrics.requestLatency.With(labels).Observe(time.Since(start).Seconds())
	}
}

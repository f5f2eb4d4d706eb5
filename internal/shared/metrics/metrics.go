package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "barangay_portal",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barangay_portal",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "barangay_portal",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	documentTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barangay_portal",
			Subsystem: "document_requests",
			Name:      "status_transitions_total",
			Help:      "Document request status changes by source and target status.",
		},
		[]string{"from", "to"},
	)

	notificationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barangay_portal",
			Subsystem: "notifications",
			Name:      "dispatch_failures_total",
			Help:      "Notifications that could not be recorded; the triggering operation still succeeded.",
		},
		[]string{"event_type"},
	)

	analyticsCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barangay_portal",
			Subsystem: "analytics",
			Name:      "cache_lookups_total",
			Help:      "Analytics snapshot cache lookups by result.",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		documentTransitions,
		notificationFailures,
		analyticsCache,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request count, latency and in-flight gauge per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func RecordDocumentTransition(from, to string) {
	documentTransitions.WithLabelValues(from, to).Inc()
}

func RecordNotificationFailure(eventType string) {
	notificationFailures.WithLabelValues(eventType).Inc()
}

func RecordAnalyticsCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	analyticsCache.WithLabelValues(result).Inc()
}

// NotificationFailures reads the failure counter for one event type.
func NotificationFailures(eventType string) float64 {
	return testutil.ToFloat64(notificationFailures.WithLabelValues(eventType))
}

// DocumentTransitions reads the transition counter for one status pair.
func DocumentTransitions(from, to string) float64 {
	return testutil.ToFloat64(documentTransitions.WithLabelValues(from, to))
}

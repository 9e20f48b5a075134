package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stellarinsights_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stellarinsights_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stellarinsights_http_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"method"},
	)

	// Domain metrics
	anchorsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stellarinsights_anchors_created_total",
			Help: "Total number of anchors registered",
		},
	)

	assetsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stellarinsights_assets_created_total",
			Help: "Total number of anchor assets registered",
		},
	)

	metricsUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stellarinsights_anchor_metrics_updates_total",
			Help: "Total number of anchor metrics updates applied",
		},
	)
)

// MetricsConfig configures the metrics middleware
type MetricsConfig struct {
	// Skip function
	Skip func(*fiber.Ctx) bool
	// PathNormalizer normalizes paths for metrics labels
	PathNormalizer func(string) string
}

// DefaultMetricsConfig returns default metrics config
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Skip:           HealthSkipper,
		PathNormalizer: DefaultPathNormalizer,
	}
}

// DefaultPathNormalizer collapses identifier segments so label
// cardinality stays bounded.
func DefaultPathNormalizer(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if _, err := uuid.Parse(s); err == nil {
			segments[i] = ":id"
			continue
		}
		if len(s) == 56 && s[0] == 'G' {
			segments[i] = ":account"
		}
	}
	return strings.Join(segments, "/")
}

// MetricsMiddleware creates a Prometheus metrics middleware
type MetricsMiddleware struct {
	config MetricsConfig
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(config MetricsConfig) *MetricsMiddleware {
	return &MetricsMiddleware{
		config: config,
	}
}

// Handler returns the metrics handler
func (m *MetricsMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.config.Skip != nil && m.config.Skip(c) {
			return c.Next()
		}

		start := time.Now()
		method := c.Method()

		httpActiveRequests.WithLabelValues(method).Inc()
		defer httpActiveRequests.WithLabelValues(method).Dec()

		err := c.Next()

		// Normalize after routing so the label reflects the final path
		path := m.config.PathNormalizer(c.Path())
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)

		return err
	}
}

// RecordAnchorCreated records a successful anchor registration
func RecordAnchorCreated() {
	anchorsCreated.Inc()
}

// RecordAssetCreated records a successful asset registration
func RecordAssetCreated() {
	assetsCreated.Inc()
}

// RecordMetricsUpdated records an applied anchor metrics update
func RecordMetricsUpdated() {
	metricsUpdated.Inc()
}

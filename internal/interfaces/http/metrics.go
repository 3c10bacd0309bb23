package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsRegistry holds all Prometheus metrics for the API server
type MetricsRegistry struct {
	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
	InFlight        prometheus.Gauge
	RateLimited     prometheus.Counter

	registry *prometheus.Registry
}

// NewMetricsRegistry creates a new metrics registry with all server metrics
func NewMetricsRegistry() *MetricsRegistry {
	m := &MetricsRegistry{
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shelfsense_http_request_duration_seconds",
				Help:    "HTTP request latency by path",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"path", "method"},
		),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shelfsense_http_requests_total",
				Help: "Total HTTP requests by path, method and status code",
			},
			[]string{"path", "method", "status"},
		),

		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "shelfsense_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		RateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "shelfsense_http_rate_limited_total",
				Help: "Total requests rejected by the rate limiter",
			},
		),

		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RequestDuration,
		m.RequestsTotal,
		m.InFlight,
		m.RateLimited,
	)

	return m
}

// Handler returns the /metrics scrape handler
func (m *MetricsRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed request
func (m *MetricsRegistry) ObserveRequest(path, method string, status int, duration time.Duration) {
	m.RequestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
	m.RequestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
}

package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the extraction service.
var Metrics = struct {
	ExtractionsTotal *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	UpstreamDuration *prometheus.HistogramVec
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics() {
	Metrics.ExtractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytx_extractions_total",
			Help: "Total extraction requests, by outcome (success or error code).",
		},
		[]string{"outcome"},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ytx_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ytx_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	Metrics.UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ytx_upstream_request_duration_seconds",
			Help:    "YouTube round-trip duration in seconds, by endpoint (watch, timedtext, oembed).",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	prometheus.MustRegister(
		Metrics.ExtractionsTotal,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
		Metrics.UpstreamDuration,
	)
}

// ObserveUpstream records one upstream round trip. Wired into the YouTube
// client by the server entry point.
func ObserveUpstream(endpoint string, d time.Duration) {
	if Metrics.UpstreamDuration != nil {
		Metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(d.Seconds())
	}
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		endpoint := string([]byte(c.Path()))
		method := string([]byte(c.Method()))

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}

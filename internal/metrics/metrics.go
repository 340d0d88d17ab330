// Package metrics collects Prometheus instrumentation for the HTTP tiers.
//
// Every process owns its own [Metrics] instance backed by a private registry,
// so the gateway and the resolver never share collectors and tests can create
// as many instances as they need without double-registration panics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all collectors exported on the /metrics endpoint.
type Metrics struct {
	// RequestCount counts served HTTP requests by method, route and status.
	RequestCount *prometheus.CounterVec
	// RequestDuration observes served HTTP request latency in seconds.
	RequestDuration *prometheus.HistogramVec
	// ResolverRequestDuration observes the latency of outbound calls from the
	// gateway to the resolver in seconds.
	ResolverRequestDuration prometheus.Histogram

	registry *prometheus.Registry
	handler  http.Handler
}

// NewMetrics creates a Metrics instance with all collectors registered on a
// fresh private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		ResolverRequestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "resolver_request_duration_seconds",
				Help:    "Outbound resolver request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RequestCount,
		m.RequestDuration,
		m.ResolverRequestDuration,
	)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})

	return m
}

// RecordRequest records one served HTTP request.
func (m *Metrics) RecordRequest(method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)

	m.RequestCount.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveResolverRequest records the duration of one outbound resolver call.
func (m *Metrics) ObserveResolverRequest(duration time.Duration) {
	m.ResolverRequestDuration.Observe(duration.Seconds())
}

// Handler returns the HTTP handler serving this instance's registry in the
// Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

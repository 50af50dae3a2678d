// Package metrics exposes Prometheus instrumentation for cipher operations
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the cipher service collectors. A nil *Metrics records nothing.
type Metrics struct {
	operationsTotal     *prometheus.CounterVec
	invalidKeysTotal    prometheus.Counter
	processedCharsTotal *prometheus.CounterVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cipher_operations_total",
				Help: "Total number of cipher operations by operation and mode",
			},
			[]string{"operation", "mode"},
		),
		invalidKeysTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cipher_invalid_keys_total",
				Help: "Total number of rejected cipher keys",
			},
		),
		processedCharsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cipher_processed_chars_total",
				Help: "Total number of characters passed through the cipher",
			},
			[]string{"operation"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		registry: registry,
	}

	registry.MustRegister(
		m.operationsTotal,
		m.invalidKeysTotal,
		m.processedCharsTotal,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	)

	return m
}

// RecordOperation counts one encrypt/decrypt call over chars characters.
func (m *Metrics) RecordOperation(operation, mode string, chars int) {
	if m == nil {
		return
	}
	m.operationsTotal.WithLabelValues(operation, mode).Inc()
	m.processedCharsTotal.WithLabelValues(operation).Add(float64(chars))
}

func (m *Metrics) RecordInvalidKey() {
	if m == nil {
		return
	}
	m.invalidKeysTotal.Inc()
}

func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

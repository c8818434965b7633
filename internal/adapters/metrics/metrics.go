// Package metrics provides Prometheus metrics for both coachdesk apps.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registry is a custom registry so the endpoint stays free of default Go
// collector noise, matching what the scrape dashboards expect.
var registry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "coachdesk",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by app, route, and status class.",
	}, []string{"app", "route", "status"})

	httpDuration = promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coachdesk",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by app and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"app", "route"})

	backendRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "coachdesk",
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Calls to the coaching backend API, by operation and outcome.",
	}, []string{"operation", "outcome"})

	backendDuration = promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coachdesk",
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Latency of coaching backend calls, by operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	outboxRetries = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "coachdesk",
		Subsystem: "outbox",
		Name:      "retries_total",
		Help:      "Outbox entries attempted by the background worker.",
	})
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(app, route, statusClass string, elapsed time.Duration) {
	httpRequests.WithLabelValues(app, route, statusClass).Inc()
	httpDuration.WithLabelValues(app, route).Observe(elapsed.Seconds())
}

// ObserveBackendCall records one call to the coaching backend.
func ObserveBackendCall(operation, outcome string, elapsed time.Duration) {
	backendRequests.WithLabelValues(operation, outcome).Inc()
	backendDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// CountOutboxRetry records one outbox delivery attempt.
func CountOutboxRetry() {
	outboxRetries.Inc()
}

// Handler serves the custom registry for Prometheus scrapes.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSent     = "sent"
	OutcomeLogged   = "logged"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

type Metrics interface {
	// ObserveNotification records one notify call by target kind and outcome.
	ObserveNotification(kind, outcome string, duration float64)

	// ObserveHTTPRequestDuration records the duration of an HTTP request.
	ObserveHTTPRequestDuration(handler, method, status string, duration float64)

	Handler() http.Handler
}

type prometheusMetrics struct {
	registry      *prometheus.Registry
	notifications *prometheus.CounterVec
	notifyLatency *prometheus.HistogramVec
	httpDuration  *prometheus.HistogramVec
}

func NewMetrics() Metrics {
	registry := prometheus.NewRegistry()
	notifications := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hipchat_notifications_total",
			Help: "Notifications handled, by target kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
	notifyLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hipchat_notification_duration_seconds",
			Help:    "Duration of notify calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
	hv := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method", "status"},
	)
	registry.MustRegister(
		notifications,
		notifyLatency,
		hv,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &prometheusMetrics{
		registry:      registry,
		notifications: notifications,
		notifyLatency: notifyLatency,
		httpDuration:  hv,
	}
}

func (pm *prometheusMetrics) ObserveNotification(kind, outcome string, duration float64) {
	pm.notifications.
		With(prometheus.Labels{
			"kind":    kind,
			"outcome": outcome,
		}).
		Inc()
	pm.notifyLatency.
		With(prometheus.Labels{"kind": kind}).
		Observe(duration)
}

func (pm *prometheusMetrics) ObserveHTTPRequestDuration(handler, method, status string, duration float64) {
	pm.httpDuration.
		With(prometheus.Labels{
			"handler": handler,
			"method":  method,
			"status":  status,
		}).
		Observe(duration)
}

func (pm *prometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(pm.registry, promhttp.HandlerOpts{})
}

// Ensure prometheusMetrics satisfies the Metrics interface.
var _ Metrics = (*prometheusMetrics)(nil)

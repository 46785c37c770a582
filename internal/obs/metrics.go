// Package obs holds the ambient observability pieces of the client layer:
// prometheus metrics around outgoing API calls and the shared structured
// logger.
package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ClientMetrics instruments outgoing API requests. A nil *ClientMetrics is
// valid and records nothing, so instrumentation stays optional.
type ClientMetrics struct {
	inFlight      prometheus.Gauge
	requestsTotal *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewClientMetrics creates and registers the client metric set on the
// given registerer.
func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	m := &ClientMetrics{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sahyog_client_in_flight_requests",
			Help: "In-flight API requests.",
		}),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sahyog_client_requests_total",
				Help: "Total number of API requests.",
			},
			[]string{"method", "path", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sahyog_client_request_duration_seconds",
				Help:    "API request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "outcome"},
		),
	}
	reg.MustRegister(m.inFlight, m.requestsTotal, m.duration)
	return m
}

// Begin marks a request as in flight and returns the completion callback.
// Outcome is an HTTP status ("200") or an error kind ("network").
func (m *ClientMetrics) Begin(method, path string) func(outcome string) {
	if m == nil {
		return func(string) {}
	}

	m.inFlight.Inc()
	start := time.Now()

	return func(outcome string) {
		elapsed := time.Since(start).Seconds()
		m.inFlight.Dec()
		m.requestsTotal.WithLabelValues(method, path, outcome).Inc()
		m.duration.WithLabelValues(method, path, outcome).Observe(elapsed)
	}
}

// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "promptlab"

// Metrics groups the HTTP and storage collectors.
type Metrics struct {
	Requests          *prometheus.CounterVec
	Duration          *prometheus.HistogramVec
	RateLimitAllowed  prometheus.Counter
	RateLimitRejected prometheus.Counter
}

// Counter reports the number of stored resources.
type Counter interface {
	Counts() (prompts, collections int)
}

// New creates the collectors. They are not registered until Register is called.
func New() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Number of HTTP requests by method, route, and status."},
			[]string{"method", "route", "status"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency by method and route.", Buckets: prometheus.DefBuckets},
			[]string{"method", "route"},
		),
		RateLimitAllowed: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Number of requests admitted by the rate limiter."},
		),
		RateLimitRejected: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Number of requests rejected by the rate limiter."},
		),
	}
}

// Register adds the collectors and storage gauges to reg.
func (m *Metrics) Register(reg prometheus.Registerer, store Counter) {
	reg.MustRegister(m.Requests, m.Duration, m.RateLimitAllowed, m.RateLimitRejected)

	reg.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{Namespace: namespace, Name: "prompts", Help: "Number of stored prompts."},
		func() float64 {
			p, _ := store.Counts()
			return float64(p)
		},
	))
	reg.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{Namespace: namespace, Name: "collections", Help: "Number of stored collections."},
		func() float64 {
			_, c := store.Counts()
			return float64(c)
		},
	))
}

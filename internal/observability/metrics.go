package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce        sync.Once
	reportsTotal        *prometheus.CounterVec
	httpRequestsTotal   *prometheus.CounterVec
	httpDurationSeconds *prometheus.HistogramVec
)

// RegisterMetrics initialises the Prometheus collectors.
func RegisterMetrics() {
	registerOnce.Do(func() {
		reportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feedback_reports_total",
			Help: "Total number of feedback reports synthesized.",
		}, []string{"verdict", "track", "tier"})

		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"})

		httpDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency distribution for HTTP requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}, []string{"method", "route"})

		prometheus.MustRegister(reportsTotal, httpRequestsTotal, httpDurationSeconds)
	})
}

func ReportsTotal() *prometheus.CounterVec {
	RegisterMetrics()
	return reportsTotal
}

func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

func HTTPDuration() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpDurationSeconds
}

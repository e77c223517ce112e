// Package metrics provides Prometheus metric collection and exposition for
// the HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records request-level HTTP metrics.
type Collector struct {
	requestsTotal  *prometheus.CounterVec
	requestLatency prometheus.Histogram
	authFailures   prometheus.Counter
	reviewsWritten prometheus.Counter
	reviewsDeleted prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with the given
// registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stacks_http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stacks_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		authFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stacks_auth_failures_total",
			Help: "Failed login and gate checks.",
		}),
		reviewsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stacks_reviews_written_total",
			Help: "Reviews added or updated.",
		}),
		reviewsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stacks_reviews_deleted_total",
			Help: "Reviews deleted.",
		}),
	}

	reg.MustRegister(
		c.requestsTotal,
		c.requestLatency,
		c.authFailures,
		c.reviewsWritten,
		c.reviewsDeleted,
	)

	return c
}

// RecordRequest records one completed HTTP request.
func (c *Collector) RecordRequest(method string, statusCode int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	c.requestLatency.Observe(duration.Seconds())
}

// RecordAuthFailure records a failed login or gate check.
func (c *Collector) RecordAuthFailure() {
	c.authFailures.Inc()
}

// RecordReviewWritten records a review add or update.
func (c *Collector) RecordReviewWritten() {
	c.reviewsWritten.Inc()
}

// RecordReviewDeleted records a review deletion.
func (c *Collector) RecordReviewDeleted() {
	c.reviewsDeleted.Inc()
}

// Handler returns the Prometheus scrape handler for the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Package metrics exposes wallet and HTTP metrics to Prometheus
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "payflow"

var latencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2, 5}

// Recorder owns a registry and the collectors registered on it
type Recorder struct {
	registry            *prometheus.Registry
	operationsTotal     *prometheus.CounterVec
	operationDuration   *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	rateLimitedTotal    prometheus.Counter
}

// NewRecorder creates a recorder with its own registry, including Go runtime
// and process collectors
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "wallet_operations_total",
				Help:      "Total number of wallet operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "wallet_operation_duration_seconds",
				Help:      "Duration of wallet operations",
				Buckets:   latencyBuckets,
			},
			[]string{"operation"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   latencyBuckets,
			},
			[]string{"method", "route"},
		),
		rateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_exceeded_total",
				Help:      "Total number of requests rejected by the rate limiter",
			},
		),
	}
}

var _ coreport.MetricsRecorder = (*Recorder)(nil)

// ObserveOperation records the outcome and latency of a wallet operation
func (r *Recorder) ObserveOperation(operation string, outcome string, duration time.Duration) {
	r.operationsTotal.WithLabelValues(operation, outcome).Inc()
	r.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveHTTPRequest records a served HTTP request. route is the matched
// pattern, not the raw path, to keep label cardinality bounded.
func (r *Recorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	r.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveRateLimited counts a request rejected by the rate limiter
func (r *Recorder) ObserveRateLimited() {
	r.rateLimitedTotal.Inc()
}

// RegisterDBStats exposes connection pool statistics of db
func (r *Recorder) RegisterDBStats(db *sql.DB, name string) error {
	return r.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// NoopRecorder discards metrics when exposition is disabled
type NoopRecorder struct{}

// ObserveOperation implements core.MetricsRecorder
func (NoopRecorder) ObserveOperation(string, string, time.Duration) {}

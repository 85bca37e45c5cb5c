// Package metrics defines the Prometheus collectors exposed by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every collector the service reports.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec

	PreReservationsTotal *prometheus.CounterVec
	HoldSweepTotal       *prometheus.CounterVec
}

// New registers and returns the service collectors
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),

		DBConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		PreReservationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "prereservations_total",
			Help:        "Pre-reservation lifecycle transitions",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		HoldSweepTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "hold_sweep_resolutions_total",
			Help:        "Outcomes of the automatic hold resolution sweep",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// ObserveSweepOutcome counts one resolved hold by outcome
func (m *Metrics) ObserveSweepOutcome(outcome string) {
	m.HoldSweepTotal.WithLabelValues(outcome).Inc()
}

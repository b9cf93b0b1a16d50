package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "userdir_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"route", "method", "code"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "userdir_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	ActiveRequests = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "userdir_active_requests",
		Help: "Current in-flight requests",
	})

	DBQueriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "userdir_db_queries_total",
		Help: "Database query count",
	}, []string{"query", "status"})

	DBQueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "userdir_db_query_duration_seconds",
		Help:    "Database query latency",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"query"})

	// Incremented once per column substituted in lenient scan mode.
	ColumnDefaultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "userdir_column_defaults_total",
		Help: "NULL or malformed columns replaced with zero values",
	}, []string{"column"})
)

func RegisterAll(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal, HTTPRequestDuration, ActiveRequests,
		DBQueriesTotal, DBQueryDuration, ColumnDefaultsTotal,
	)
}

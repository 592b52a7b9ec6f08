// Package metrics provides Prometheus metrics for the fourteeners MCP server.
// It tracks tool call counts and latencies, database query performance,
// NWS API calls, and widget asset cache behavior.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "fourteeners_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// DBQueriesTotal counts database queries by record kind and status
	DBQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "db_queries_total",
		Help:      "Total database queries by record kind and status",
	}, []string{"kind", "status"})

	// DBQueryDuration measures database query latency by record kind
	DBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "db_query_duration_seconds",
		Help:      "Database query latency distribution by record kind",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})

	// WeatherAPIRequestsTotal counts NWS API requests by stage and status
	WeatherAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "weather_api_requests_total",
		Help:      "Total NWS API requests by stage (points, forecast) and status",
	}, []string{"stage", "status"})

	// WeatherAPILatency measures NWS API call latency by stage
	WeatherAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "weather_api_latency_seconds",
		Help:      "NWS API call latency by stage",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage"})

	// WidgetCacheHits counts widget asset cache hits
	WidgetCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "widget_cache_hits_total",
		Help:      "Total widget asset cache hit count",
	})

	// WidgetCacheMisses counts widget asset cache misses (loads from disk)
	WidgetCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "widget_cache_misses_total",
		Help:      "Total widget asset cache miss count",
	})
)

// RecordRequest records an MCP tool call with its duration
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordDBQuery records a database query with its duration
func RecordDBQuery(kind string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	DBQueriesTotal.WithLabelValues(kind, status).Inc()
	DBQueryDuration.WithLabelValues(kind).Observe(duration)
}

// RecordWeatherCall records an NWS API call with its duration
func RecordWeatherCall(stage string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	WeatherAPIRequestsTotal.WithLabelValues(stage, status).Inc()
	WeatherAPILatency.WithLabelValues(stage).Observe(duration)
}

// Package metrics defines the Prometheus metric collectors used across the
// platform and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the platform.
type Metrics struct {
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPRequestsInFlight  prometheus.Gauge
	ChatMessagesTotal     *prometheus.CounterVec
	MatchLatency          *prometheus.HistogramVec
	MatchScore            prometheus.Histogram
	CacheHitsTotal        prometheus.Counter
	CacheMissesTotal      prometheus.Counter
	SessionFactsExtracted prometheus.Counter
	MemoryCommandsTotal   *prometheus.CounterVec
	EventsPublishedTotal  *prometheus.CounterVec
	EventsConsumedTotal   prometheus.Counter
	SnapshotsTotal        *prometheus.CounterVec
	TrendingRefreshTotal  *prometheus.CounterVec
	CircuitBreakerState   *prometheus.GaugeVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		ChatMessagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_messages_total",
				Help: "Total chat messages by outcome (match, fallback, memory, math, empty, error).",
			},
			[]string{"outcome"},
		),
		MatchLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chat_match_latency_seconds",
				Help:    "Knowledge-base matching latency in seconds.",
				Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
			},
			[]string{"cache_status"},
		),
		MatchScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chat_match_score",
				Help:    "Composite score of the winning knowledge entry per matched message.",
				Buckets: []float64{0, 10, 20, 40, 60, 80, 120, 200, 400},
			},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of reply cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of reply cache misses.",
			},
		),
		SessionFactsExtracted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "session_facts_extracted_total",
				Help: "Total personal facts extracted from chat messages.",
			},
		),
		MemoryCommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memory_commands_total",
				Help: "Total explicit memory commands handled, by command.",
			},
			[]string{"command"},
		),
		EventsPublishedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_events_published_total",
				Help: "Total chat events published to Kafka by status.",
			},
			[]string{"status"},
		),
		EventsConsumedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "chat_events_consumed_total",
				Help: "Total chat events consumed by the analytics service.",
			},
		),
		SnapshotsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_snapshots_total",
				Help: "Total analytics snapshot writes by status.",
			},
			[]string{"status"},
		),
		TrendingRefreshTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trending_refresh_total",
				Help: "Total trending-question refresh attempts by status.",
			},
			[]string{"status"},
		),
		CircuitBreakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open).",
			},
			[]string{"name"},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.ChatMessagesTotal,
		m.MatchLatency,
		m.MatchScore,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.SessionFactsExtracted,
		m.MemoryCommandsTotal,
		m.EventsPublishedTotal,
		m.EventsConsumedTotal,
		m.SnapshotsTotal,
		m.TrendingRefreshTotal,
		m.CircuitBreakerState,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

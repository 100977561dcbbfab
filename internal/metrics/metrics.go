// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ranking result paths.
const (
	PathFast     = "fast"
	PathFallback = "fallback"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postgres_query_duration_seconds",
			Help:    "Duration of PostgreSQL statements in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postgres_query_errors_total",
			Help: "Total number of failed PostgreSQL statements",
		},
		[]string{"operation", "kind"},
	)

	DBOpenConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "postgres_pool_open_connections",
			Help: "Connections currently open in the pool",
		},
	)

	DBInUseConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "postgres_pool_in_use_connections",
			Help: "Connections currently checked out of the pool",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	// Reporting Metrics
	RankingPathTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_path_total",
			Help: "Ranking requests by ranking and path (fast = precomputed, fallback = filtered aggregation)",
		},
		[]string{"ranking", "path"},
	)

	IDAllocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "id_allocations_total",
			Help: "Primary keys allocated, by scope",
		},
		[]string{"scope"},
	)

	ViewRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytical_view_refresh_total",
			Help: "Refreshes of the precomputed analytical views, by result",
		},
		[]string{"result"}, // "success", "error", "rejected"
	)

	ViewRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analytical_view_refresh_duration_seconds",
			Help:    "Duration of analytical view refreshes in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_cache_hits_total",
			Help: "Ranking cache hits, by backend",
		},
		[]string{"backend"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_cache_misses_total",
			Help: "Ranking cache misses, by backend",
		},
		[]string{"backend"},
	)
)

// RecordDBQuery records a statement's duration and, on failure, its error kind.
func RecordDBQuery(operation string, duration time.Duration, errKind string) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if errKind != "" {
		DBQueryErrors.WithLabelValues(operation, errKind).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRankingPath counts which path served a ranking.
func RecordRankingPath(ranking, path string) {
	RankingPathTotal.WithLabelValues(ranking, path).Inc()
}

// RecordIDAllocation counts an allocated key for scope.
func RecordIDAllocation(scope string) {
	IDAllocations.WithLabelValues(scope).Inc()
}

// RecordViewRefresh records an analytical view refresh attempt.
func RecordViewRefresh(result string, duration time.Duration) {
	ViewRefreshTotal.WithLabelValues(result).Inc()
	if result == "success" {
		ViewRefreshDuration.Observe(duration.Seconds())
	}
}

// RecordCacheLookup records a ranking cache hit or miss.
func RecordCacheLookup(backend string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(backend).Inc()
	} else {
		CacheMisses.WithLabelValues(backend).Inc()
	}
}

// UpdatePoolStats publishes pool gauges.
func UpdatePoolStats(open, inUse int) {
	DBOpenConnections.Set(float64(open))
	DBInUseConnections.Set(float64(inUse))
}

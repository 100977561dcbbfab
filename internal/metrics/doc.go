// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are registered with promauto at package init and exposed at /metrics:

	curl http://localhost:8001/metrics

# Available Metrics

Database:
  - postgres_query_duration_seconds{operation}
  - postgres_query_errors_total{operation,kind}
  - postgres_pool_open_connections, postgres_pool_in_use_connections

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Reporting:
  - ranking_path_total{ranking,path}: fast (precomputed) vs fallback (filtered)
  - id_allocations_total{scope}
  - analytical_view_refresh_total{result}, analytical_view_refresh_duration_seconds
  - ranking_cache_hits_total{backend}, ranking_cache_misses_total{backend}
*/
package metrics

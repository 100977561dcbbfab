// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

/*
Package middleware provides HTTP middleware for the API router.

Key Components:

  - RequestID: UUID-based request ids, shared with logging.Ctx and chi
  - PrometheusMetrics: request count, latency and in-flight gauge per route pattern
  - AccessLog: one structured log line per request, escalated for slow requests and 5xx

The middleware uses the http.HandlerFunc form. The api package adapts it to
chi with a small wrapper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog(time.Second)))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Route patterns are only known after chi has matched the request, so
PrometheusMetrics and AccessLog read them once the wrapped handler returns.
*/
package middleware

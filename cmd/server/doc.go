// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

/*
Package main is the entry point for the StreamerData server.

StreamerData serves rankings, reports, a drill-down view and CRUD endpoints
over the streaming platform schema (system_antig) in Postgres.

# Application Architecture

Startup order:

 1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
 2. Logging: zerolog configured from LOG_LEVEL, LOG_FORMAT, LOG_CALLER
 3. Cache: in-process or Redis store for unfiltered rankings
 4. Database: pgx pool, verified with a ping
 5. Supervisor tree (Suture v4):

	RootSupervisor ("streamerdata")
	├── DataSupervisor ("data-layer")
	│   └── ViewRefreshService (VIEW_REFRESH_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests for up to 10s, after which the
pool and cache store are closed.

# Example Usage

	export DB_HOST=localhost DB_NAME=streamerdata DB_USER=app DB_PASSWORD=secret
	export CORS_ORIGINS=http://localhost:5173
	./streamerdata

With a shared Redis cache and hourly view refresh:

	export CACHE_BACKEND=redis REDIS_ADDR=redis:6379
	export VIEW_REFRESH_INTERVAL=1h
	./streamerdata
*/
package main

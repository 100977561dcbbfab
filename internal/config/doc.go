// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

/*
Package config loads and validates application configuration.

Configuration is layered with Koanf:

 1. Struct defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/streamerdata/config.yaml)
 3. Environment variables, through an explicit name mapping

Key environment variables:

  - DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD: PostgreSQL target
  - HTTP_PORT (default 8001), HTTP_HOST
  - ID_ALLOCATION: locked (default) or scan
  - VIEW_REFRESH_INTERVAL: background refresh of analytical views (0 disables)
  - CACHE_BACKEND: memory (default) or redis, with REDIS_ADDR
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - CORS_ORIGINS: comma-separated list
*/
package config

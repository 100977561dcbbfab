// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

// Package testinfra provides container-backed infrastructure for integration tests.
//
// Everything except this file is behind the integration build tag:
//
//	go test -tags integration ./...
//
// # Postgres
//
// StartPostgres runs postgres:16-alpine and loads fixtures/system_antig.sql,
// which creates the system_antig tables together with stand-ins for the
// analytical objects the service reads: f_ranking_faturamento_total,
// v_videos_virais, mv_performance_streamers and sp_refresh_views_analiticas.
//
//	func TestRevenueRanking(t *testing.T) {
//	    pg := testinfra.StartPostgres(t)
//	    db, err := database.New(pg.DatabaseConfig())
//	    ...
//	}
//
// # Redis
//
// StartRedis runs redis:7-alpine for the cache store tests.
//
// Tests are skipped when Docker is unavailable.
package testinfra

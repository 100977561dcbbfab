// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"time"

	"github.com/tomtom215/streamerdata/internal/config"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response writers and request parsing
//   - handlers_health.go: root status and probes
//   - handlers_rankings.go: the four rankings
//   - handlers_reports.go: reports, drill-down and view refresh
//   - handlers_platforms.go, handlers_users.go, handlers_channels.go,
//     handlers_videos.go, handlers_donations.go: entity CRUD
//   - handlers_lookups.go: companies and countries
type Handler struct {
	store     Store
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a handler serving requests from store.
//
// cfg supplies the ranking limit bounds; a nil cfg uses the built-in defaults.
//
// Example:
//
//	handler := api.NewHandler(db, cfg)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(store Store, cfg *config.Config) *Handler {
	if cfg == nil {
		cfg = &config.Config{
			API: config.APIConfig{DefaultLimit: 10, MaxLimit: 100},
		}
	}
	return &Handler{
		store:     store,
		config:    cfg,
		startTime: time.Now(),
	}
}

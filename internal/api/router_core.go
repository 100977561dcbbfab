// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"time"

	"github.com/tomtom215/streamerdata/internal/config"
	"github.com/tomtom215/streamerdata/internal/middleware"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware

	// slowRequest is the access log threshold above which requests log at warn
	slowRequest time.Duration
}

// NewRouter creates a router for handler. cfg supplies CORS and rate limit
// settings; nil uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	if cfg != nil {
		mwConfig = ChiMiddlewareConfigFromSecurity(cfg.Security)
	}

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
		slowRequest:   middleware.DefaultSlowRequestThreshold,
	}
}

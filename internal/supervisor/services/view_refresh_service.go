// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/streamerdata/internal/database"
	"github.com/tomtom215/streamerdata/internal/logging"
)

// Refresher rebuilds the analytical views. Satisfied by *database.DB.
type Refresher interface {
	RefreshAnalyticalViews(ctx context.Context) error
}

// ViewRefreshService refreshes the analytical views on a fixed interval.
//
// Failed refreshes are logged and retried on the next tick rather than
// returned, so a database outage never puts the data layer into backoff.
type ViewRefreshService struct {
	refresher Refresher
	interval  time.Duration
	logger    zerolog.Logger
	name      string
}

// NewViewRefreshService creates a refresh loop. An interval of zero or
// less disables it: Serve returns suture.ErrDoNotRestart immediately.
func NewViewRefreshService(refresher Refresher, interval time.Duration) *ViewRefreshService {
	return &ViewRefreshService{
		refresher: refresher,
		interval:  interval,
		logger:    logging.WithComponent("view-refresh"),
		name:      "view-refresh",
	}
}

// Serve implements suture.Service.
func (s *ViewRefreshService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("Scheduled analytical view refresh started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *ViewRefreshService) refresh(ctx context.Context) {
	start := time.Now()
	err := s.refresher.RefreshAnalyticalViews(ctx)

	switch {
	case err == nil:
		s.logger.Debug().Dur("duration", time.Since(start)).Msg("Analytical views refreshed")
	case errors.Is(err, database.ErrRefreshThrottled):
		// an on-demand refresh ran recently
		s.logger.Debug().Msg("Scheduled refresh skipped")
	case errors.Is(err, context.Canceled):
	default:
		s.logger.Warn().Err(err).Msg("Scheduled analytical view refresh failed")
	}
}

// String names the service in supervisor events.
func (s *ViewRefreshService) String() string {
	return s.name
}

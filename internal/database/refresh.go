// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/streamerdata/internal/logging"
	"github.com/tomtom215/streamerdata/internal/metrics"
)

const refreshProcedureSQL = "CALL system_antig.sp_refresh_views_analiticas()"

var (
	// ErrRefreshThrottled is returned when a refresh is requested sooner
	// than the configured minimum interval after the previous one.
	ErrRefreshThrottled = errors.New("analytical view refresh throttled")

	// ErrRefreshUnavailable is returned while the refresh breaker is open.
	ErrRefreshUnavailable = errors.New("analytical view refresh temporarily unavailable")
)

const (
	refreshFailureThreshold = 3
	refreshBreakerTimeout   = time.Minute
)

// refreshGuard throttles refresh requests and stops calling a procedure
// that keeps failing.
type refreshGuard struct {
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func newRefreshGuard(minInterval time.Duration) *refreshGuard {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}

	settings := gobreaker.Settings{
		Name:        "analytical-view-refresh",
		MaxRequests: 1,
		Timeout:     refreshBreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= refreshFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Refresh circuit breaker changed state")
		},
	}

	return &refreshGuard{
		limiter: rate.NewLimiter(limit, 1),
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
	}
}

// RefreshAnalyticalViews runs the store's refresh procedure, which
// rebuilds the precomputed ranking sources, then drops cached rankings.
func (db *DB) RefreshAnalyticalViews(ctx context.Context) error {
	if !db.refresh.limiter.Allow() {
		metrics.RecordViewRefresh("rejected", 0)
		return ErrRefreshThrottled
	}

	start := time.Now()
	_, err := db.refresh.breaker.Execute(func() (struct{}, error) {
		_, err := db.conn.ExecContext(ctx, refreshProcedureSQL)
		return struct{}{}, db.observe("refresh.views", start, err)
	})
	duration := time.Since(start)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.RecordViewRefresh("rejected", 0)
		return fmt.Errorf("%w: %w", ErrRefreshUnavailable, err)
	}
	if err != nil {
		metrics.RecordViewRefresh("error", duration)
		return err
	}

	metrics.RecordViewRefresh("success", duration)
	logging.Info().Dur("duration", duration).Msg("Analytical views refreshed")

	db.invalidateRankings(ctx, "refresh.views")
	return nil
}

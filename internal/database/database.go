// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tomtom215/streamerdata/internal/cache"
	"github.com/tomtom215/streamerdata/internal/config"
	"github.com/tomtom215/streamerdata/internal/logging"
	"github.com/tomtom215/streamerdata/internal/metrics"
)

const defaultPingTimeout = 5 * time.Second

// DB wraps the Postgres connection pool and provides the reporting and
// CRUD operations over the system_antig schema.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig

	ids *IDAllocator

	// cache holds unfiltered ranking results; nil disables caching
	cache cache.Store

	refresh *refreshGuard
}

// Option customizes a DB.
type Option func(*DB)

// WithCache stores unfiltered ranking results in store until the next
// analytical view refresh.
func WithCache(store cache.Store) Option {
	return func(db *DB) {
		db.cache = store
	}
}

// New opens the pool described by cfg and verifies that the server is reachable.
func New(cfg *config.DatabaseConfig, opts ...Option) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := NewFromConn(conn, cfg, opts...)
	db.configureConnectionPool()

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		closeQuietly(conn)
		return nil, err
	}

	logging.Info().
		Str("dsn", cfg.Redacted()).
		Int("max_open_conns", cfg.MaxOpenConns).
		Str("id_allocation", cfg.IDAllocation).
		Msg("Connected to Postgres")

	return db, nil
}

// NewFromConn wraps an already opened pool. The pool settings of cfg are not applied.
func NewFromConn(conn *sql.DB, cfg *config.DatabaseConfig, opts ...Option) *DB {
	if cfg == nil {
		cfg = &config.DatabaseConfig{}
	}
	db := &DB{
		conn:    conn,
		cfg:     cfg,
		ids:     NewIDAllocator(cfg.IDAllocation),
		refresh: newRefreshGuard(cfg.RefreshMinInterval),
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

func (db *DB) configureConnectionPool() {
	if db.cfg.MaxOpenConns > 0 {
		db.conn.SetMaxOpenConns(db.cfg.MaxOpenConns)
	}
	if db.cfg.MaxIdleConns > 0 {
		db.conn.SetMaxIdleConns(db.cfg.MaxIdleConns)
	}
	db.conn.SetConnMaxLifetime(db.cfg.ConnMaxLifetime)
	db.conn.SetConnMaxIdleTime(db.cfg.ConnMaxIdleTime)
}

// Conn returns the underlying pool.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping checks that a connection can be obtained. Failures wrap ErrConnection.
func (db *DB) Ping(ctx context.Context) error {
	err := db.conn.PingContext(ctx)

	stats := db.conn.Stats()
	metrics.UpdatePoolStats(stats.OpenConnections, stats.InUse)

	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return nil
}

// Close drains the pool. The cache store is owned by the caller.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tomtom215/streamerdata/internal/logging"
)

// withTx runs fn in a transaction that commits when fn returns nil and
// rolls back otherwise. The connection goes back to the pool on every path.
func (db *DB) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	start := time.Now()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return db.observe(op, start, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logging.Warn().Str("operation", op).Err(rbErr).Msg("Rollback failed")
		}
		return db.observe(op, start, err)
	}

	return db.observe(op, start, tx.Commit())
}

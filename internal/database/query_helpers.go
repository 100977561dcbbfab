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
	"github.com/tomtom215/streamerdata/internal/metrics"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanFunc reads one row into T.
type scanFunc[T any] func(scanner) (T, error)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// observe classifies err, records the statement in Prometheus and returns
// the classified error.
func (db *DB) observe(op string, start time.Time, err error) error {
	err = classify(err)
	kind := errorKind(err)
	metrics.RecordDBQuery(op, time.Since(start), kind)
	if kind != "" {
		logging.Debug().Str("operation", op).Str("kind", kind).Err(err).Msg("Statement failed")
	}
	return err
}

// queryAndScan runs a read on the pool and scans every row. An empty
// result is an empty, non-nil slice.
func queryAndScan[T any](ctx context.Context, db *DB, op, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	start := time.Now()
	items, err := collectRows(ctx, db.conn, query, args, scan)
	if err := db.observe(op, start, err); err != nil {
		return nil, err
	}
	return items, nil
}

func collectRows[T any](ctx context.Context, q querier, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// queryOne reads a single row; no row is ErrNotFound.
func queryOne[T any](ctx context.Context, db *DB, op, query string, args []interface{}, scan scanFunc[T]) (T, error) {
	start := time.Now()
	item, err := scan(db.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
	}
	return item, db.observe(op, start, err)
}

// countRows runs a COUNT(*) query.
func (db *DB) countRows(ctx context.Context, op, query string, args []interface{}) (int64, error) {
	return queryOne(ctx, db, op, query, args, func(s scanner) (int64, error) {
		var n int64
		err := s.Scan(&n)
		return n, err
	})
}

// execOne runs a single-row update or delete in a transaction. Matching
// zero rows is ErrNotFound and rolls back.
func (db *DB) execOne(ctx context.Context, op, query string, args ...interface{}) error {
	return db.withTx(ctx, op, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

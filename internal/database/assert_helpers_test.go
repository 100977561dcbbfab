// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tomtom215/streamerdata/internal/config"
)

// newMockDB returns a DB over go-sqlmock using the locked allocator.
// Unmet expectations fail the test at cleanup.
func newMockDB(t *testing.T, opts ...Option) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	return newMockDBWithConfig(t, &config.DatabaseConfig{IDAllocation: config.AllocationLocked}, opts...)
}

func newMockDBWithConfig(t *testing.T, cfg *config.DatabaseConfig, opts ...Option) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sql expectations: %v", err)
		}
		closeQuietly(conn)
	})

	return NewFromConn(conn, cfg, opts...), mock
}

// sqlFragment matches a literal, whitespace-normalized piece of SQL.
func sqlFragment(s string) string {
	return regexp.QuoteMeta(s)
}

// checkNoError fails the test if err is not nil
func checkNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// checkErrorIs fails the test unless err matches target
func checkErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
}

// checkStatementKind fails the test unless err is a *StatementError of kind
func checkStatementKind(t *testing.T, err error, kind ErrorKind) *StatementError {
	t.Helper()
	var stmtErr *StatementError
	if !errors.As(err, &stmtErr) {
		t.Fatalf("expected *StatementError, got %T: %v", err, err)
	}
	if stmtErr.Kind != kind {
		t.Errorf("Kind = %q, want %q", stmtErr.Kind, kind)
	}
	return stmtErr
}

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tomtom215/streamerdata/internal/logging"
)

var (
	// ErrNotFound is returned when a single-resource read, update or delete matches no row.
	ErrNotFound = errors.New("not found")

	// ErrConnection is returned when no connection to the store could be obtained.
	ErrConnection = errors.New("database connection failed")
)

// ErrorKind classifies a statement failure.
type ErrorKind string

const (
	KindUniqueViolation     ErrorKind = "unique_violation"
	KindForeignKeyViolation ErrorKind = "foreign_key_violation"
	KindCheckViolation      ErrorKind = "check_violation"
	KindNotNullViolation    ErrorKind = "not_null_violation"
	KindInvalidInput        ErrorKind = "invalid_input"
	KindOther               ErrorKind = "other"
)

// StatementError is a failure of a statement the server executed and
// rejected. Message carries the server text unchanged.
type StatementError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *StatementError) Error() string {
	return e.Message
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

// classify maps driver errors onto ErrConnection, *StatementError or
// passes them through (nil, ErrNotFound, context errors).
func classify(err error) error {
	if err == nil ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConnection) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var stmtErr *StatementError
	if errors.As(err, &stmtErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if isConnectionClass(pgErr.Code) {
			return fmt.Errorf("%w: %w", ErrConnection, err)
		}
		msg := pgErr.Message
		if pgErr.Detail != "" {
			msg += "\nDETAIL: " + pgErr.Detail
		}
		return &StatementError{
			Kind:    kindForCode(pgErr.Code),
			Code:    pgErr.Code,
			Message: msg,
			Err:     err,
		}
	}

	if isConnectionError(err) {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	// Client-side encode failures never reached the server but are still
	// caused by the statement's input.
	return &StatementError{Kind: KindOther, Message: err.Error(), Err: err}
}

func kindForCode(code string) ErrorKind {
	switch code {
	case "23505":
		return KindUniqueViolation
	case "23503":
		return KindForeignKeyViolation
	case "23514":
		return KindCheckViolation
	case "23502":
		return KindNotNullViolation
	}
	// Class 22 is "data exception": bad dates, numeric overflow, negative OFFSET.
	if strings.HasPrefix(code, "22") {
		return KindInvalidInput
	}
	return KindOther
}

// isConnectionClass reports SQLSTATEs that mean the session itself is unusable.
func isConnectionClass(code string) bool {
	return strings.HasPrefix(code, "08") ||
		code == "53300" || // too_many_connections
		code == "57P01" || // admin_shutdown
		code == "57P03" // cannot_connect_now
}

// isConnectionError checks if an error indicates a connection problem
// rather than a query error.
func isConnectionError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionErrors := []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"bad connection",
		"conn closed",
		"no such host",
	}
	for _, connErr := range connectionErrors {
		if strings.Contains(errStr, connErr) {
			return true
		}
	}
	return false
}

// errorKind is the metrics label for err; empty for success and not-found.
func errorKind(err error) string {
	if err == nil || errors.Is(err, ErrNotFound) {
		return ""
	}
	var stmtErr *StatementError
	if errors.As(err, &stmtErr) {
		return string(stmtErr.Kind)
	}
	if errors.Is(err, ErrConnection) {
		return "connection"
	}
	return "other"
}

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource, ignoring any error.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // Explicitly ignore error - cleanup is best-effort
	}
}

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/streamerdata/internal/database"
	"github.com/tomtom215/streamerdata/internal/models"
	"github.com/tomtom215/streamerdata/internal/validation"
)

// Error codes carried in APIError.Code.
const (
	ErrCodeValidation       = validation.ErrorCode
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeDatabase         = "DATABASE_ERROR"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeUnavailable      = "SERVICE_UNAVAILABLE"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// respondStoreError maps a store failure onto the error envelope.
// resource names the entity in the not-found message, e.g. "Platform".
//
//	ErrConnection        -> 500 DATABASE_ERROR
//	ErrNotFound          -> 404 NOT_FOUND
//	*StatementError      -> 400 DATABASE_ERROR, store text verbatim
//	refresh throttled    -> 429, breaker open -> 503
//	anything else        -> 500 INTERNAL_ERROR
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	var stmtErr *database.StatementError

	switch {
	case errors.Is(err, database.ErrConnection):
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Database connection failed", err)

	case errors.Is(err, database.ErrNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, resource+" not found", nil)

	case errors.Is(err, database.ErrRefreshThrottled):
		respondError(w, r, http.StatusTooManyRequests, ErrCodeTooManyRequests, err.Error(), nil)

	case errors.Is(err, database.ErrRefreshUnavailable):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeUnavailable, err.Error(), err)

	case errors.As(err, &stmtErr):
		respondAPIError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    ErrCodeDatabase,
			Message: stmtErr.Message,
			Details: map[string]interface{}{
				"kind":     string(stmtErr.Kind),
				"sqlstate": stmtErr.Code,
			},
		}, err)

	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Internal server error", err)
	}
}

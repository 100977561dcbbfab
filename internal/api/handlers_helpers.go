// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/streamerdata/internal/logging"
	"github.com/tomtom215/streamerdata/internal/middleware"
	"github.com/tomtom215/streamerdata/internal/models"
	"github.com/tomtom215/streamerdata/internal/validation"
)

// maxBodyBytes bounds mutation payloads.
const maxBodyBytes = 1 << 20

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON writes v as the response body.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak-collision ETag from data using FNV-1a.
func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return `"` + strconv.FormatUint(uint64(h.Sum32()), 16) + `"`
}

// respondError sends an error envelope. err, when set, is logged and never
// exposed beyond message.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondAPIError(w, r, status, &models.APIError{Code: code, Message: message}, err)
}

func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError, err error) {
	requestID := middleware.GetRequestID(r.Context())

	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.
			Str("code", sanitizeLogValue(apiErr.Code)).
			Str("error", sanitizeLogValue(err.Error())).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: requestID,
		},
		Error: apiErr,
	})
}

// respondValidation sends a 400 VALIDATION_FAILED envelope for verr.
func respondValidation(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondAPIError(w, r, http.StatusBadRequest, &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}, nil)
}

// respondCreated sends 201 {status:"success", id}.
func respondCreated(w http.ResponseWriter, id int64) {
	respondJSON(w, http.StatusCreated, models.MutationResult{Status: "success", ID: &id})
}

// respondSuccess sends 200 {status:"success"}.
func respondSuccess(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, models.MutationResult{Status: "success"})
}

// decodeAndValidate reads a JSON body into dst and validates it. It writes
// the failure response itself and reports whether the handler may go on.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Request body too large or unreadable", nil)
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Invalid JSON body", nil)
		return false
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		respondValidation(w, r, verr)
		return false
	}
	return true
}

// pathInt64 parses an integer URL parameter. On failure the
// 400 response has already been written.
func pathInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest,
			fmt.Sprintf("%s must be an integer", name), nil)
		return 0, false
	}
	return v, true
}

// queryInt64 parses an optional integer query parameter; absent yields nil.
func queryInt64(r *http.Request, name string) (*int64, *validation.RequestValidationError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, integerError(name)
	}
	return &v, nil
}

func integerError(name string) *validation.RequestValidationError {
	return validation.NewFieldError(name, "int", name+" must be an integer")
}

// queryDate reads an optional ISO-8601 date parameter.
func queryDate(r *http.Request, name string) (*string, *validation.RequestValidationError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if verr := validation.ValidateVar(name, raw, "isodate"); verr != nil {
		return nil, verr
	}
	return &raw, nil
}

// parseReportFilter reads limit, channel_id, video_id, start_date and
// end_date. Limit defaults to the configured default and must lie in
// 1..MaxLimit. On failure the 400 response has already been written.
func (h *Handler) parseReportFilter(w http.ResponseWriter, r *http.Request) (models.ReportFilter, bool) {
	f := models.ReportFilter{Limit: h.config.API.DefaultLimit}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			respondValidation(w, r, integerError("limit"))
			return f, false
		}
		tag := fmt.Sprintf("min=1,max=%d", h.config.API.MaxLimit)
		if verr := validation.ValidateVar("limit", limit, tag); verr != nil {
			respondValidation(w, r, verr)
			return f, false
		}
		f.Limit = limit
	}

	var verr *validation.RequestValidationError
	if f.ChannelID, verr = queryInt64(r, "channel_id"); verr != nil {
		respondValidation(w, r, verr)
		return f, false
	}
	if f.VideoID, verr = queryInt64(r, "video_id"); verr != nil {
		respondValidation(w, r, verr)
		return f, false
	}
	if f.StartDate, verr = queryDate(r, "start_date"); verr != nil {
		respondValidation(w, r, verr)
		return f, false
	}
	if f.EndDate, verr = queryDate(r, "end_date"); verr != nil {
		respondValidation(w, r, verr)
		return f, false
	}
	return f, true
}

// parseListFilter reads q, page and channel_id. page defaults to 1 and is
// passed through unclamped below models.MaxPage; a non-numeric page or one
// whose offset would overflow is rejected.
func parseListFilter(w http.ResponseWriter, r *http.Request) (models.ListFilter, bool) {
	f := models.ListFilter{
		Query: strings.TrimSpace(r.URL.Query().Get("q")),
		Page:  1,
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			respondValidation(w, r, integerError("page"))
			return f, false
		}
		if page > models.MaxPage {
			respondValidation(w, r, validation.NewFieldError("page", "max",
				fmt.Sprintf("page must be at most %d", models.MaxPage)))
			return f, false
		}
		f.Page = page
	}

	channelID, verr := queryInt64(r, "channel_id")
	if verr != nil {
		respondValidation(w, r, verr)
		return f, false
	}
	f.ChannelID = channelID
	return f, true
}

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"net/http"

	"github.com/tomtom215/streamerdata/internal/logging"
	"github.com/tomtom215/streamerdata/internal/models"
)

// DrilldownLevelHeader names the granularity of a drill-down response body.
const DrilldownLevelHeader = "X-Drilldown-Level"

// ReportRevenueOverTime handles GET /api/reports/revenue-over-time.
func (h *Handler) ReportRevenueOverTime(w http.ResponseWriter, r *http.Request) {
	f, ok := h.parseReportFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.store.RevenueOverTime(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err, "Report")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// ReportDistributionByTheme handles GET /api/reports/distribution-by-theme.
func (h *Handler) ReportDistributionByTheme(w http.ResponseWriter, r *http.Request) {
	f, ok := h.parseReportFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.store.DistributionByTheme(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err, "Report")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// ReportDrilldownPerformance handles GET /api/reports/drilldown-performance.
//
// Without channel_id the rows are per channel; with it, per video of that
// channel. The body is the row array and X-Drilldown-Level carries the level.
func (h *Handler) ReportDrilldownPerformance(w http.ResponseWriter, r *http.Request) {
	f, ok := h.parseReportFilter(w, r)
	if !ok {
		return
	}

	result, err := h.store.DrilldownPerformance(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err, "Report")
		return
	}

	rows := result.Rows
	if rows == nil {
		rows = []models.DrilldownRow{}
	}
	w.Header().Set(DrilldownLevelHeader, string(result.Level))
	respondJSON(w, http.StatusOK, rows)
}

// ReportRefresh handles POST /api/reports/refresh.
func (h *Handler) ReportRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RefreshAnalyticalViews(r.Context()); err != nil {
		respondStoreError(w, r, err, "Refresh")
		return
	}

	logging.Ctx(r.Context()).Info().Msg("Analytical views refreshed on request")
	respondJSON(w, http.StatusOK, models.StatusMessage{
		Status:  "success",
		Message: "Analytical views refreshed",
	})
}

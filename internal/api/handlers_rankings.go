// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"net/http"
)

// RankingRevenue handles GET /api/ranking/revenue.
//
// Channels ordered by donation revenue. Accepts limit, channel_id,
// start_date and end_date; the unfiltered call is served from the
// precomputed ranking.
func (h *Handler) RankingRevenue(w http.ResponseWriter, r *http.Request) {
	f, ok := h.parseReportFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.store.RevenueRanking(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err, "Ranking")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// RankingViralVideos handles GET /api/ranking/viral-videos.
func (h *Handler) RankingViralVideos(w http.ResponseWriter, r *http.Request) {
	f, ok := h.parseReportFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.store.ViralVideos(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err, "Ranking")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// RankingStreamers handles GET /api/ranking/streamers.
func (h *Handler) RankingStreamers(w http.ResponseWriter, r *http.Request) {
	f, ok := h.parseReportFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.store.TopStreamers(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err, "Ranking")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// RankingTopViewers handles GET /api/ranking/top-viewers.
//
// Donors ordered by total donated. Date bounds apply to the date of the
// comment each donation is attached to.
func (h *Handler) RankingTopViewers(w http.ResponseWriter, r *http.Request) {
	f, ok := h.parseReportFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.store.TopViewers(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err, "Ranking")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

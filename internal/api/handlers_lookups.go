// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"net/http"
)

// Companies handles GET /api/companies.
func (h *Handler) Companies(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListCompanies(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "Company")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// Countries handles GET /api/countries.
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListCountries(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "Country")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"net/http"

	"github.com/tomtom215/streamerdata/internal/models"
)

// ListPlatforms handles GET /api/platforms. q matches the platform name.
func (h *Handler) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	f, ok := parseListFilter(w, r)
	if !ok {
		return
	}

	page, err := h.store.ListPlatforms(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err, "Platform")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// GetPlatform handles GET /api/platforms/{nro}, including hosted channels.
func (h *Handler) GetPlatform(w http.ResponseWriter, r *http.Request) {
	nro, ok := pathInt64(w, r, "nro")
	if !ok {
		return
	}

	detail, err := h.store.GetPlatform(r.Context(), nro)
	if err != nil {
		respondStoreError(w, r, err, "Platform")
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// CreatePlatform handles POST /api/platforms.
func (h *Handler) CreatePlatform(w http.ResponseWriter, r *http.Request) {
	var in models.PlatformInput
	if !decodeAndValidate(w, r, &in) {
		return
	}

	id, err := h.store.CreatePlatform(r.Context(), in)
	if err != nil {
		respondStoreError(w, r, err, "Platform")
		return
	}
	respondCreated(w, id)
}

// UpdatePlatform handles PUT /api/platforms/{nro}. The payload replaces every mutable column.
func (h *Handler) UpdatePlatform(w http.ResponseWriter, r *http.Request) {
	nro, ok := pathInt64(w, r, "nro")
	if !ok {
		return
	}
	var in models.PlatformInput
	if !decodeAndValidate(w, r, &in) {
		return
	}

	if err := h.store.UpdatePlatform(r.Context(), nro, in); err != nil {
		respondStoreError(w, r, err, "Platform")
		return
	}
	respondSuccess(w)
}

// DeletePlatform handles DELETE /api/platforms/{nro}.
//
// A platform still hosting channels is rejected by the store with a
// foreign_key_violation, surfaced as 400.
func (h *Handler) DeletePlatform(w http.ResponseWriter, r *http.Request) {
	nro, ok := pathInt64(w, r, "nro")
	if !ok {
		return
	}

	if err := h.store.DeletePlatform(r.Context(), nro); err != nil {
		respondStoreError(w, r, err, "Platform")
		return
	}
	respondSuccess(w)
}

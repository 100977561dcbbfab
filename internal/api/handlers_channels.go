// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"net/http"

	"github.com/tomtom215/streamerdata/internal/models"
)

// ListChannels handles GET /api/channels with optional q and page.
func (h *Handler) ListChannels(w http.ResponseWriter, r *http.Request) {
	f, ok := parseListFilter(w, r)
	if !ok {
		return
	}

	page, err := h.store.ListChannels(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err, "Channel")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// GetChannel handles GET /api/channels/{id}, with its videos newest first.
func (h *Handler) GetChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.store.GetChannel(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Channel")
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// CreateChannel handles POST /api/channels. The view counter keeps its column default.
func (h *Handler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var in models.ChannelInput
	if !decodeAndValidate(w, r, &in) {
		return
	}

	id, err := h.store.CreateChannel(r.Context(), in)
	if err != nil {
		respondStoreError(w, r, err, "Channel")
		return
	}
	respondCreated(w, id)
}

// UpdateChannel handles PUT /api/channels/{id}. The payload replaces every mutable column.
func (h *Handler) UpdateChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}
	var in models.ChannelInput
	if !decodeAndValidate(w, r, &in) {
		return
	}

	if err := h.store.UpdateChannel(r.Context(), id, in); err != nil {
		respondStoreError(w, r, err, "Channel")
		return
	}
	respondSuccess(w)
}

// DeleteChannel handles DELETE /api/channels/{id}.
func (h *Handler) DeleteChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteChannel(r.Context(), id); err != nil {
		respondStoreError(w, r, err, "Channel")
		return
	}
	respondSuccess(w)
}

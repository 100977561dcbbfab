// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"net/http"

	"github.com/tomtom215/streamerdata/internal/models"
)

// ListUsers handles GET /api/users. q matches nick or email.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	f, ok := parseListFilter(w, r)
	if !ok {
		return
	}

	page, err := h.store.ListUsers(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err, "User")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// GetUser handles GET /api/users/{id}.
//
// The detail lists the channels the user streams on and their ten largest
// donations.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "User")
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// CreateUser handles POST /api/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in models.UserInput
	if !decodeAndValidate(w, r, &in) {
		return
	}

	id, err := h.store.CreateUser(r.Context(), in)
	if err != nil {
		respondStoreError(w, r, err, "User")
		return
	}
	respondCreated(w, id)
}

// UpdateUser handles PUT /api/users/{id}. Empty telefone and end_postal clear the stored values.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}
	var in models.UserInput
	if !decodeAndValidate(w, r, &in) {
		return
	}

	if err := h.store.UpdateUser(r.Context(), id, in); err != nil {
		respondStoreError(w, r, err, "User")
		return
	}
	respondSuccess(w)
}

// DeleteUser handles DELETE /api/users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		respondStoreError(w, r, err, "User")
		return
	}
	respondSuccess(w)
}

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"net/http"

	"github.com/tomtom215/streamerdata/internal/models"
)

// donationKey reads the five key segments in route order:
// {id_video}/{id_canal}/{id_usuario}/{seq_comentario}/{seq_pg}.
func donationKey(w http.ResponseWriter, r *http.Request) (models.DonationKey, bool) {
	var k models.DonationKey
	for _, p := range []struct {
		name string
		dst  *int64
	}{
		{"id_video", &k.IDVideo},
		{"id_canal", &k.IDCanal},
		{"id_usuario", &k.IDUsuario},
		{"seq_comentario", &k.SeqComentario},
		{"seq_pg", &k.SeqPg},
	} {
		v, ok := pathInt64(w, r, p.name)
		if !ok {
			return k, false
		}
		*p.dst = v
	}
	return k, true
}

// ListDonations handles GET /api/donations. q matches donor nick or video
// title; rows are ordered by value, largest first.
func (h *Handler) ListDonations(w http.ResponseWriter, r *http.Request) {
	f, ok := parseListFilter(w, r)
	if !ok {
		return
	}

	page, err := h.store.ListDonations(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err, "Donation")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// CreateDonation handles POST /api/donations. The returned id is the
// payment sequence, allocated within the comment when seq_pg is omitted.
func (h *Handler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var in models.DonationInput
	if !decodeAndValidate(w, r, &in) {
		return
	}

	seq, err := h.store.CreateDonation(r.Context(), in)
	if err != nil {
		respondStoreError(w, r, err, "Donation")
		return
	}
	respondCreated(w, seq)
}

// UpdateDonation handles PUT /api/donations/{id_video}/{id_canal}/{id_usuario}/{seq_comentario}/{seq_pg}.
func (h *Handler) UpdateDonation(w http.ResponseWriter, r *http.Request) {
	k, ok := donationKey(w, r)
	if !ok {
		return
	}
	var in models.DonationUpdate
	if !decodeAndValidate(w, r, &in) {
		return
	}

	if err := h.store.UpdateDonation(r.Context(), k, in); err != nil {
		respondStoreError(w, r, err, "Donation")
		return
	}
	respondSuccess(w)
}

// DeleteDonation handles DELETE on the same five-segment path.
func (h *Handler) DeleteDonation(w http.ResponseWriter, r *http.Request) {
	k, ok := donationKey(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteDonation(r.Context(), k); err != nil {
		respondStoreError(w, r, err, "Donation")
		return
	}
	respondSuccess(w)
}

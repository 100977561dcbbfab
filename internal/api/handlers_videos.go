// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"net/http"

	"github.com/tomtom215/streamerdata/internal/models"
)

// videoKey reads {id_canal}/{id_video}.
func videoKey(w http.ResponseWriter, r *http.Request) (channelID, videoID int64, ok bool) {
	if channelID, ok = pathInt64(w, r, "id_canal"); !ok {
		return 0, 0, false
	}
	if videoID, ok = pathInt64(w, r, "id_video"); !ok {
		return 0, 0, false
	}
	return channelID, videoID, true
}

// ListVideos handles GET /api/videos. q matches the title; channel_id
// narrows to one channel.
func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	f, ok := parseListFilter(w, r)
	if !ok {
		return
	}

	page, err := h.store.ListVideos(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err, "Video")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// GetVideo handles GET /api/videos/{id_canal}/{id_video}, with its donations.
func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	channelID, videoID, ok := videoKey(w, r)
	if !ok {
		return
	}

	detail, err := h.store.GetVideo(r.Context(), channelID, videoID)
	if err != nil {
		respondStoreError(w, r, err, "Video")
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// CreateVideo handles POST /api/videos.
//
// The returned id is the video id within id_canal, not a global id.
func (h *Handler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var in models.VideoInput
	if !decodeAndValidate(w, r, &in) {
		return
	}

	id, err := h.store.CreateVideo(r.Context(), in)
	if err != nil {
		respondStoreError(w, r, err, "Video")
		return
	}
	respondCreated(w, id)
}

// UpdateVideo handles PUT /api/videos/{id_canal}/{id_video}. The path
// decides the row; id_canal in the body is ignored.
func (h *Handler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	channelID, videoID, ok := videoKey(w, r)
	if !ok {
		return
	}
	var in models.VideoInput
	if !decodeAndValidate(w, r, &in) {
		return
	}

	if err := h.store.UpdateVideo(r.Context(), channelID, videoID, in); err != nil {
		respondStoreError(w, r, err, "Video")
		return
	}
	respondSuccess(w)
}

// DeleteVideo handles DELETE /api/videos/{id_canal}/{id_video}.
func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	channelID, videoID, ok := videoKey(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteVideo(r.Context(), channelID, videoID); err != nil {
		respondStoreError(w, r, err, "Video")
		return
	}
	respondSuccess(w)
}

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/streamerdata/internal/models"
)

func TestRankingRoutes(t *testing.T) {
	tests := []struct {
		path string
		call string
	}{
		{"/api/ranking/revenue", "RevenueRanking"},
		{"/api/ranking/faturamento", "RevenueRanking"},
		{"/api/ranking/viral-videos", "ViralVideos"},
		{"/api/ranking/videos-virais", "ViralVideos"},
		{"/api/ranking/streamers", "TopStreamers"},
		{"/api/ranking/top-viewers", "TopViewers"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			store := &fakeStore{}
			rec := do(t, newTestServer(store), http.MethodGet, tt.path, nil)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			if len(store.calls) != 1 || store.calls[0] != tt.call {
				t.Errorf("calls = %v, want [%s]", store.calls, tt.call)
			}
			if rec.Body.String() != "[]" {
				t.Errorf("empty ranking should encode as [], got %s", rec.Body.String())
			}
		})
	}
}

func TestRankingRevenue_FilterParsing(t *testing.T) {
	store := &fakeStore{}
	rec := do(t, newTestServer(store), http.MethodGet,
		"/api/ranking/revenue?limit=5&channel_id=3&start_date=2024-01-01&end_date=2024-01-31T23:59:59Z", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	f := store.report
	if f.Limit != 5 {
		t.Errorf("Limit = %d, want 5", f.Limit)
	}
	if f.ChannelID == nil || *f.ChannelID != 3 {
		t.Errorf("ChannelID = %v, want 3", f.ChannelID)
	}
	if f.VideoID != nil {
		t.Errorf("VideoID should be absent, got %v", *f.VideoID)
	}
	if f.StartDate == nil || *f.StartDate != "2024-01-01" {
		t.Errorf("StartDate = %v", f.StartDate)
	}
	if f.EndDate == nil || *f.EndDate != "2024-01-31T23:59:59Z" {
		t.Errorf("EndDate = %v", f.EndDate)
	}
}

func TestRankingRevenue_DefaultLimit(t *testing.T) {
	store := &fakeStore{}
	do(t, newTestServer(store), http.MethodGet, "/api/ranking/revenue", nil)

	if store.report.Limit != models.DefaultRankingLimit {
		t.Errorf("Limit = %d, want %d", store.report.Limit, models.DefaultRankingLimit)
	}
	if store.report.HasAny() {
		t.Errorf("no criteria expected, got %+v", store.report)
	}
}

func TestRankingRevenue_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"limit zero", "limit=0", "limit"},
		{"limit above max", "limit=101", "limit"},
		{"limit not a number", "limit=ten", "limit"},
		{"channel not a number", "channel_id=abc", "channel_id"},
		{"bad start date", "start_date=17/05/2020", "start_date"},
		{"bad end date", "end_date=2024-13-01", "end_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			rec := do(t, newTestServer(store), http.MethodGet, "/api/ranking/revenue?"+tt.query, nil)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			apiErr := decodeError(t, rec)
			if apiErr.Code != ErrCodeValidation {
				t.Errorf("code = %s, want %s", apiErr.Code, ErrCodeValidation)
			}
			fields, ok := apiErr.Details["fields"].([]interface{})
			if !ok || len(fields) != 1 {
				t.Fatalf("details.fields = %v", apiErr.Details["fields"])
			}
			if got := fields[0].(map[string]interface{})["field"]; got != tt.field {
				t.Errorf("field = %v, want %s", got, tt.field)
			}
			if len(store.calls) != 0 {
				t.Errorf("store should not be called, got %v", store.calls)
			}
		})
	}
}

func TestRankingTopViewers_Body(t *testing.T) {
	store := &fakeStore{viewers: []models.ViewerRank{{Nick: "bia", TotalDoado: models.Amount("175.10"), VideosApoiados: 2}}}
	rec := do(t, newTestServer(store), http.MethodGet, "/api/ranking/top-viewers", nil)

	var rows []models.ViewerRank
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 || rows[0].Nick != "bia" || rows[0].VideosApoiados != 2 || !rows[0].TotalDoado.Equal(models.Amount("175.1")) {
		t.Errorf("rows = %+v", rows)
	}
	if !strings.Contains(rec.Body.String(), `"total_doado":175.1`) {
		t.Errorf("total_doado must be a JSON number: %s", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

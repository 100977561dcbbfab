// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/streamerdata/internal/database"
	"github.com/tomtom215/streamerdata/internal/models"
)

func TestReportRoutes(t *testing.T) {
	tests := []struct {
		path string
		call string
	}{
		{"/api/reports/revenue-over-time?video_id=4", "RevenueOverTime"},
		{"/api/reports/distribution-by-theme?channel_id=2", "DistributionByTheme"},
	}

	for _, tt := range tests {
		t.Run(tt.call, func(t *testing.T) {
			store := &fakeStore{}
			rec := do(t, newTestServer(store), http.MethodGet, tt.path, nil)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			if len(store.calls) != 1 || store.calls[0] != tt.call {
				t.Errorf("calls = %v", store.calls)
			}
		})
	}
}

func TestReportRevenueOverTime_VideoFilter(t *testing.T) {
	store := &fakeStore{}
	do(t, newTestServer(store), http.MethodGet, "/api/reports/revenue-over-time?video_id=4&channel_id=2", nil)

	if store.report.VideoID == nil || *store.report.VideoID != 4 {
		t.Errorf("VideoID = %v, want 4", store.report.VideoID)
	}
	if store.report.ChannelID == nil || *store.report.ChannelID != 2 {
		t.Errorf("ChannelID = %v, want 2", store.report.ChannelID)
	}
}

func TestReportDrilldownPerformance(t *testing.T) {
	items := int64(2)
	peak := int64(900)

	tests := []struct {
		name      string
		query     string
		drilldown *models.Drilldown
		wantLevel string
	}{
		{
			name:  "channel level",
			query: "",
			drilldown: &models.Drilldown{
				Level: models.DrilldownChannel,
				Rows:  []models.DrilldownRow{{EntityName: "Gameplay BR", TotalViews: 1800, TotalRevenue: models.Amount("175"), TotalItems: &items}},
			},
			wantLevel: "channel",
		},
		{
			name:  "video level",
			query: "?channel_id=1",
			drilldown: &models.Drilldown{
				Level: models.DrilldownVideo,
				Rows:  []models.DrilldownRow{{EntityName: "Finals", TotalViews: 900, TotalRevenue: models.Amount("100"), PeakViews: &peak}},
			},
			wantLevel: "video",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{drilldown: tt.drilldown}
			rec := do(t, newTestServer(store), http.MethodGet, "/api/reports/drilldown-performance"+tt.query, nil)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get(DrilldownLevelHeader); got != tt.wantLevel {
				t.Errorf("%s = %q, want %q", DrilldownLevelHeader, got, tt.wantLevel)
			}

			var rows []map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
				t.Fatalf("body should be the row array: %v", err)
			}
			if len(rows) != 1 || rows[0]["entity_name"] != tt.drilldown.Rows[0].EntityName {
				t.Fatalf("rows = %v", rows)
			}
			_, hasItems := rows[0]["total_items"]
			_, hasPeak := rows[0]["peak_views"]
			if hasItems == hasPeak {
				t.Errorf("exactly one of total_items and peak_views expected: %v", rows[0])
			}
		})
	}
}

func TestReportDrilldownPerformance_EmptyRows(t *testing.T) {
	store := &fakeStore{drilldown: &models.Drilldown{Level: models.DrilldownVideo}}
	rec := do(t, newTestServer(store), http.MethodGet, "/api/reports/drilldown-performance?channel_id=9", nil)

	if rec.Body.String() != "[]" {
		t.Errorf("body = %s, want []", rec.Body.String())
	}
}

func TestReportRefresh(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"success", nil, http.StatusOK, ""},
		{"throttled", database.ErrRefreshThrottled, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"breaker open", database.ErrRefreshUnavailable, http.StatusServiceUnavailable, ErrCodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{err: tt.err}
			rec := do(t, newTestServer(store), http.MethodPost, "/api/reports/refresh", nil)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantErr != "" {
				if apiErr := decodeError(t, rec); apiErr.Code != tt.wantErr {
					t.Errorf("code = %s, want %s", apiErr.Code, tt.wantErr)
				}
				return
			}

			var msg models.StatusMessage
			if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if msg.Status != "success" || msg.Message != "Analytical views refreshed" {
				t.Errorf("body = %+v", msg)
			}
		})
	}
}

func TestReportRefresh_GetNotAllowed(t *testing.T) {
	store := &fakeStore{}
	rec := do(t, newTestServer(store), http.MethodGet, "/api/reports/refresh", nil)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if apiErr := decodeError(t, rec); apiErr.Code != ErrCodeMethodNotAllowed {
		t.Errorf("code = %s", apiErr.Code)
	}
	if len(store.calls) != 0 {
		t.Errorf("store called: %v", store.calls)
	}
}

func TestLookups(t *testing.T) {
	store := &fakeStore{}
	srv := newTestServer(store)

	var companies []models.Company
	rec := do(t, srv, http.MethodGet, "/api/companies", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &companies); err != nil || len(companies) != 1 {
		t.Errorf("companies = %s (%v)", rec.Body.String(), err)
	}

	var countries []models.Country
	rec = do(t, srv, http.MethodGet, "/api/countries", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &countries); err != nil || countries[0].Nome != "Brasil" {
		t.Errorf("countries = %s (%v)", rec.Body.String(), err)
	}
}

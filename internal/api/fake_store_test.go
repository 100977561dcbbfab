// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/streamerdata/internal/config"
	"github.com/tomtom215/streamerdata/internal/models"
)

// fakeStore records the arguments of the last call and returns canned
// results. err, when set, is returned by every method except Ping.
type fakeStore struct {
	err     error
	pingErr error

	calls      []string
	report     models.ReportFilter
	list       models.ListFilter
	id         int64
	channelID  int64
	videoID    int64
	donation   models.DonationKey
	input      interface{}
	createdID  int64
	revenue    []models.RevenueRank
	viewers    []models.ViewerRank
	drilldown  *models.Drilldown
	platforms  *models.Page[models.Platform]
	userDetail *models.UserDetail
}

func (f *fakeStore) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeStore) Ping(context.Context) error { f.record("Ping"); return f.pingErr }

func (f *fakeStore) RevenueRanking(_ context.Context, rf models.ReportFilter) ([]models.RevenueRank, error) {
	f.record("RevenueRanking")
	f.report = rf
	if f.revenue == nil {
		return []models.RevenueRank{}, f.err
	}
	return f.revenue, f.err
}

func (f *fakeStore) ViralVideos(_ context.Context, rf models.ReportFilter) ([]models.ViralVideo, error) {
	f.record("ViralVideos")
	f.report = rf
	return []models.ViralVideo{}, f.err
}

func (f *fakeStore) TopStreamers(_ context.Context, rf models.ReportFilter) ([]models.StreamerRank, error) {
	f.record("TopStreamers")
	f.report = rf
	return []models.StreamerRank{}, f.err
}

func (f *fakeStore) TopViewers(_ context.Context, rf models.ReportFilter) ([]models.ViewerRank, error) {
	f.record("TopViewers")
	f.report = rf
	if f.viewers == nil {
		return []models.ViewerRank{}, f.err
	}
	return f.viewers, f.err
}

func (f *fakeStore) RevenueOverTime(_ context.Context, rf models.ReportFilter) ([]models.MonthlyRevenue, error) {
	f.record("RevenueOverTime")
	f.report = rf
	return []models.MonthlyRevenue{}, f.err
}

func (f *fakeStore) DistributionByTheme(_ context.Context, rf models.ReportFilter) ([]models.ThemeDistribution, error) {
	f.record("DistributionByTheme")
	f.report = rf
	return []models.ThemeDistribution{}, f.err
}

func (f *fakeStore) DrilldownPerformance(_ context.Context, rf models.ReportFilter) (*models.Drilldown, error) {
	f.record("DrilldownPerformance")
	f.report = rf
	if f.err != nil {
		return nil, f.err
	}
	return f.drilldown, nil
}

func (f *fakeStore) RefreshAnalyticalViews(context.Context) error {
	f.record("RefreshAnalyticalViews")
	return f.err
}

func (f *fakeStore) ListCompanies(context.Context) ([]models.Company, error) {
	f.record("ListCompanies")
	return []models.Company{{Nro: 1, Nome: "Acme"}}, f.err
}

func (f *fakeStore) ListCountries(context.Context) ([]models.Country, error) {
	f.record("ListCountries")
	return []models.Country{{ID: 1, Nome: "Brasil"}}, f.err
}

func (f *fakeStore) ListPlatforms(_ context.Context, lf models.ListFilter) (*models.Page[models.Platform], error) {
	f.record("ListPlatforms")
	f.list = lf
	if f.err != nil {
		return nil, f.err
	}
	if f.platforms != nil {
		return f.platforms, nil
	}
	return &models.Page[models.Platform]{Items: []models.Platform{}, Page: lf.Page, Limit: models.PageSize}, nil
}

func (f *fakeStore) GetPlatform(_ context.Context, nro int64) (*models.PlatformDetail, error) {
	f.record("GetPlatform")
	f.id = nro
	if f.err != nil {
		return nil, f.err
	}
	return &models.PlatformDetail{Platform: models.Platform{Nro: nro}, Channels: []models.Channel{}}, nil
}

func (f *fakeStore) CreatePlatform(_ context.Context, in models.PlatformInput) (int64, error) {
	f.record("CreatePlatform")
	f.input = in
	return f.createdID, f.err
}

func (f *fakeStore) UpdatePlatform(_ context.Context, nro int64, in models.PlatformInput) error {
	f.record("UpdatePlatform")
	f.id, f.input = nro, in
	return f.err
}

func (f *fakeStore) DeletePlatform(_ context.Context, nro int64) error {
	f.record("DeletePlatform")
	f.id = nro
	return f.err
}

func (f *fakeStore) ListUsers(_ context.Context, lf models.ListFilter) (*models.Page[models.User], error) {
	f.record("ListUsers")
	f.list = lf
	if f.err != nil {
		return nil, f.err
	}
	return &models.Page[models.User]{Items: []models.User{}, Page: lf.Page, Limit: models.PageSize}, nil
}

func (f *fakeStore) GetUser(_ context.Context, id int64) (*models.UserDetail, error) {
	f.record("GetUser")
	f.id = id
	if f.err != nil {
		return nil, f.err
	}
	if f.userDetail != nil {
		return f.userDetail, nil
	}
	return &models.UserDetail{User: models.User{ID: id}}, nil
}

func (f *fakeStore) CreateUser(_ context.Context, in models.UserInput) (int64, error) {
	f.record("CreateUser")
	f.input = in
	return f.createdID, f.err
}

func (f *fakeStore) UpdateUser(_ context.Context, id int64, in models.UserInput) error {
	f.record("UpdateUser")
	f.id, f.input = id, in
	return f.err
}

func (f *fakeStore) DeleteUser(_ context.Context, id int64) error {
	f.record("DeleteUser")
	f.id = id
	return f.err
}

func (f *fakeStore) ListChannels(_ context.Context, lf models.ListFilter) (*models.Page[models.Channel], error) {
	f.record("ListChannels")
	f.list = lf
	if f.err != nil {
		return nil, f.err
	}
	return &models.Page[models.Channel]{Items: []models.Channel{}, Page: lf.Page, Limit: models.PageSize}, nil
}

func (f *fakeStore) GetChannel(_ context.Context, id int64) (*models.ChannelDetail, error) {
	f.record("GetChannel")
	f.id = id
	if f.err != nil {
		return nil, f.err
	}
	return &models.ChannelDetail{Channel: models.Channel{ID: id}}, nil
}

func (f *fakeStore) CreateChannel(_ context.Context, in models.ChannelInput) (int64, error) {
	f.record("CreateChannel")
	f.input = in
	return f.createdID, f.err
}

func (f *fakeStore) UpdateChannel(_ context.Context, id int64, in models.ChannelInput) error {
	f.record("UpdateChannel")
	f.id, f.input = id, in
	return f.err
}

func (f *fakeStore) DeleteChannel(_ context.Context, id int64) error {
	f.record("DeleteChannel")
	f.id = id
	return f.err
}

func (f *fakeStore) ListVideos(_ context.Context, lf models.ListFilter) (*models.Page[models.Video], error) {
	f.record("ListVideos")
	f.list = lf
	if f.err != nil {
		return nil, f.err
	}
	return &models.Page[models.Video]{Items: []models.Video{}, Page: lf.Page, Limit: models.PageSize}, nil
}

func (f *fakeStore) GetVideo(_ context.Context, channelID, videoID int64) (*models.VideoDetail, error) {
	f.record("GetVideo")
	f.channelID, f.videoID = channelID, videoID
	if f.err != nil {
		return nil, f.err
	}
	return &models.VideoDetail{Video: models.Video{IDCanal: channelID, IDVideo: videoID}}, nil
}

func (f *fakeStore) CreateVideo(_ context.Context, in models.VideoInput) (int64, error) {
	f.record("CreateVideo")
	f.input = in
	return f.createdID, f.err
}

func (f *fakeStore) UpdateVideo(_ context.Context, channelID, videoID int64, in models.VideoInput) error {
	f.record("UpdateVideo")
	f.channelID, f.videoID, f.input = channelID, videoID, in
	return f.err
}

func (f *fakeStore) DeleteVideo(_ context.Context, channelID, videoID int64) error {
	f.record("DeleteVideo")
	f.channelID, f.videoID = channelID, videoID
	return f.err
}

func (f *fakeStore) ListDonations(_ context.Context, lf models.ListFilter) (*models.Page[models.Donation], error) {
	f.record("ListDonations")
	f.list = lf
	if f.err != nil {
		return nil, f.err
	}
	return &models.Page[models.Donation]{Items: []models.Donation{}, Page: lf.Page, Limit: models.PageSize}, nil
}

func (f *fakeStore) CreateDonation(_ context.Context, in models.DonationInput) (int64, error) {
	f.record("CreateDonation")
	f.input = in
	return f.createdID, f.err
}

func (f *fakeStore) UpdateDonation(_ context.Context, k models.DonationKey, in models.DonationUpdate) error {
	f.record("UpdateDonation")
	f.donation, f.input = k, in
	return f.err
}

func (f *fakeStore) DeleteDonation(_ context.Context, k models.DonationKey) error {
	f.record("DeleteDonation")
	f.donation = k
	return f.err
}

var _ Store = (*fakeStore)(nil)

// testConfig returns the defaults with rate limiting off.
func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{DefaultLimit: 10, MaxLimit: 100},
		Security: config.SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
	}
}

// newTestServer wires store behind the full router.
func newTestServer(store Store) http.Handler {
	cfg := testConfig()
	return NewRouter(NewHandler(store, cfg), cfg).SetupChi()
}

// do performs a request against h. body, when non-nil, is JSON encoded.
func do(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case string:
			raw = []byte(b)
		default:
			var err error
			raw, err = json.Marshal(b)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeError decodes an error envelope and fails the test if it is not one.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *models.APIError {
	t.Helper()

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v: %s", err, rec.Body.String())
	}
	if resp.Status != "error" || resp.Error == nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	return resp.Error
}

func ptr[T any](v T) *T { return &v }

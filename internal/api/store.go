// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"context"

	"github.com/tomtom215/streamerdata/internal/database"
	"github.com/tomtom215/streamerdata/internal/models"
)

// Store is the data access surface the handlers depend on. *database.DB
// implements it; tests substitute a fake.
type Store interface {
	Ping(ctx context.Context) error

	RevenueRanking(ctx context.Context, f models.ReportFilter) ([]models.RevenueRank, error)
	ViralVideos(ctx context.Context, f models.ReportFilter) ([]models.ViralVideo, error)
	TopStreamers(ctx context.Context, f models.ReportFilter) ([]models.StreamerRank, error)
	TopViewers(ctx context.Context, f models.ReportFilter) ([]models.ViewerRank, error)

	RevenueOverTime(ctx context.Context, f models.ReportFilter) ([]models.MonthlyRevenue, error)
	DistributionByTheme(ctx context.Context, f models.ReportFilter) ([]models.ThemeDistribution, error)
	DrilldownPerformance(ctx context.Context, f models.ReportFilter) (*models.Drilldown, error)
	RefreshAnalyticalViews(ctx context.Context) error

	ListCompanies(ctx context.Context) ([]models.Company, error)
	ListCountries(ctx context.Context) ([]models.Country, error)

	ListPlatforms(ctx context.Context, f models.ListFilter) (*models.Page[models.Platform], error)
	GetPlatform(ctx context.Context, nro int64) (*models.PlatformDetail, error)
	CreatePlatform(ctx context.Context, in models.PlatformInput) (int64, error)
	UpdatePlatform(ctx context.Context, nro int64, in models.PlatformInput) error
	DeletePlatform(ctx context.Context, nro int64) error

	ListUsers(ctx context.Context, f models.ListFilter) (*models.Page[models.User], error)
	GetUser(ctx context.Context, id int64) (*models.UserDetail, error)
	CreateUser(ctx context.Context, in models.UserInput) (int64, error)
	UpdateUser(ctx context.Context, id int64, in models.UserInput) error
	DeleteUser(ctx context.Context, id int64) error

	ListChannels(ctx context.Context, f models.ListFilter) (*models.Page[models.Channel], error)
	GetChannel(ctx context.Context, id int64) (*models.ChannelDetail, error)
	CreateChannel(ctx context.Context, in models.ChannelInput) (int64, error)
	UpdateChannel(ctx context.Context, id int64, in models.ChannelInput) error
	DeleteChannel(ctx context.Context, id int64) error

	ListVideos(ctx context.Context, f models.ListFilter) (*models.Page[models.Video], error)
	GetVideo(ctx context.Context, channelID, videoID int64) (*models.VideoDetail, error)
	CreateVideo(ctx context.Context, in models.VideoInput) (int64, error)
	UpdateVideo(ctx context.Context, channelID, videoID int64, in models.VideoInput) error
	DeleteVideo(ctx context.Context, channelID, videoID int64) error

	ListDonations(ctx context.Context, f models.ListFilter) (*models.Page[models.Donation], error)
	CreateDonation(ctx context.Context, in models.DonationInput) (int64, error)
	UpdateDonation(ctx context.Context, k models.DonationKey, in models.DonationUpdate) error
	DeleteDonation(ctx context.Context, k models.DonationKey) error
}

var _ Store = (*database.DB)(nil)

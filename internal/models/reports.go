// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package models

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultRankingLimit is applied when a ranking or report omits limit.
const DefaultRankingLimit = 10

// PageSize is the fixed size of every listing page.
const PageSize = 10

// MaxPage is the highest page whose OFFSET still fits in an int.
const MaxPage = math.MaxInt/PageSize + 1

// ReportFilter carries the optional criteria shared by rankings and reports.
// Nil fields are absent criteria. Dates are ISO-8601 strings compared by the
// store against the relevant timestamp column.
type ReportFilter struct {
	ChannelID *int64  `json:"channel_id,omitempty"`
	VideoID   *int64  `json:"video_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Limit     int     `json:"limit"`
}

// HasDateRange reports whether either date bound is set.
func (f ReportFilter) HasDateRange() bool {
	return (f.StartDate != nil && *f.StartDate != "") || (f.EndDate != nil && *f.EndDate != "")
}

// HasAny reports whether any criterion other than Limit is set.
func (f ReportFilter) HasAny() bool {
	return f.ChannelID != nil || f.VideoID != nil || f.HasDateRange()
}

// EffectiveLimit returns Limit, or DefaultRankingLimit when unset.
func (f ReportFilter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultRankingLimit
	}
	return f.Limit
}

// ListFilter carries listing criteria. Page is 1-based and is not clamped.
type ListFilter struct {
	Query     string `json:"q,omitempty"`
	Page      int    `json:"page"`
	ChannelID *int64 `json:"channel_id,omitempty"`
}

// Page is the listing envelope: a bounded page plus the total under the same filter.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// RevenueRank is one channel in the revenue ranking. Tied totals share a rank.
type RevenueRank struct {
	Rank        int64           `json:"rank"`
	IDCanal     int64           `json:"id_canal"`
	NomeCanal   string          `json:"nome_canal"`
	Faturamento decimal.Decimal `json:"faturamento"`
}

// ViralVideo is one row of the viral-video ranking.
type ViralVideo struct {
	IDVideo         int64   `json:"id_video"`
	IDCanal         int64   `json:"id_canal"`
	Titulo          string  `json:"titulo"`
	VisuTotal       int64   `json:"visu_total"`
	TaxaEngajamento float64 `json:"taxa_engajamento"`
}

// StreamerRank aggregates a streamer's channels, videos and audience.
type StreamerRank struct {
	Nick      string `json:"nick"`
	Canais    int64  `json:"canais"`
	Videos    int64  `json:"videos"`
	Audiencia int64  `json:"audiencia"`
}

// ViewerRank aggregates a donor's supported videos and total donated.
type ViewerRank struct {
	Nick           string          `json:"nick"`
	VideosApoiados int64           `json:"videos_apoiados"`
	TotalDoado     decimal.Decimal `json:"total_doado"`
}

// MonthlyRevenue is one month bucket of counted donations.
type MonthlyRevenue struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// ThemeDistribution counts videos and views per theme.
type ThemeDistribution struct {
	Tema       string `json:"tema"`
	Count      int64  `json:"count"`
	TotalViews int64  `json:"total_views"`
}

// DrilldownLevel tags the granularity of a drill-down result.
type DrilldownLevel string

const (
	// DrilldownChannel aggregates per channel (no channel filter).
	DrilldownChannel DrilldownLevel = "channel"
	// DrilldownVideo aggregates per video within one channel.
	DrilldownVideo DrilldownLevel = "video"
)

// DrilldownRow is the shared shape of both drill-down levels. TotalItems is
// set only at channel level, PeakViews only at video level.
type DrilldownRow struct {
	EntityName   string          `json:"entity_name"`
	TotalViews   int64           `json:"total_views"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalItems   *int64          `json:"total_items,omitempty"`
	PeakViews    *int64          `json:"peak_views,omitempty"`
}

// Drilldown is the tagged drill-down result.
type Drilldown struct {
	Level DrilldownLevel `json:"level"`
	Rows  []DrilldownRow `json:"items"`
}

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/streamerdata/internal/cache"
	"github.com/tomtom215/streamerdata/internal/database/query"
	"github.com/tomtom215/streamerdata/internal/logging"
	"github.com/tomtom215/streamerdata/internal/metrics"
	"github.com/tomtom215/streamerdata/internal/models"
)

// rankingPlan is one ranking report. The aggregate template is the only
// definition of the ranking; precomputed, when set, reads the same result
// as materialized by the refresh procedure and is used only when no
// filter the materialization cannot express is present.
type rankingPlan[T any] struct {
	name string

	// precomputed reads the materialized ranking; $1 is the limit.
	precomputed string

	// declare adds the plan's filters in binding order.
	declare func(wb *query.WhereBuilder, f models.ReportFilter)

	// aggregate renders the ad hoc query for a WHERE clause (possibly
	// empty) and the LIMIT placeholder.
	aggregate func(f models.ReportFilter, where, limit string) string

	scan scanFunc[T]
}

func (p rankingPlan[T]) op() string {
	return "ranking." + p.name
}

// runRanking chooses the fast path when the plan has a precomputed source
// and no filter applies, otherwise it aggregates under the filters.
func runRanking[T any](ctx context.Context, db *DB, plan rankingPlan[T], f models.ReportFilter) ([]T, error) {
	wb := query.NewWhereBuilder()
	plan.declare(wb, f)
	limit := f.EffectiveLimit()

	if plan.precomputed == "" {
		return runAggregate(ctx, db, plan, f, wb, limit)
	}

	if wb.IsEmpty() {
		metrics.RecordRankingPath(plan.name, metrics.PathFast)
		return cached(ctx, db, plan.name, limit, func() ([]T, error) {
			return queryAndScan(ctx, db, plan.op(), plan.precomputed, []interface{}{limit}, plan.scan)
		})
	}

	metrics.RecordRankingPath(plan.name, metrics.PathFallback)
	return runAggregate(ctx, db, plan, f, wb, limit)
}

func runAggregate[T any](ctx context.Context, db *DB, plan rankingPlan[T], f models.ReportFilter, wb *query.WhereBuilder, limit int) ([]T, error) {
	placeholders, args := wb.Trailing(limit)
	return queryAndScan(ctx, db, plan.op(), plan.aggregate(f, wb.Where(), placeholders[0]), args, plan.scan)
}

// cached serves fast-path results from the cache store. Cache failures
// are logged and fall through to the database.
func cached[T any](ctx context.Context, db *DB, name string, limit int, load func() ([]T, error)) ([]T, error) {
	if db.cache == nil {
		return load()
	}

	key := cache.GenerateKey("ranking."+name, map[string]int{"limit": limit})

	var hit []T
	ok, err := db.cache.Get(ctx, key, &hit)
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("Ranking cache read failed")
	} else if ok {
		return hit, nil
	}

	rows, err := load()
	if err != nil {
		return nil, err
	}
	if err := db.cache.Set(ctx, key, rows); err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("Ranking cache write failed")
	}
	return rows, nil
}

// invalidateRankings drops every cached fast-path ranking. The revenue
// function reads doacao and canal live, so writes to either must call it
// once committed.
func (db *DB) invalidateRankings(ctx context.Context, op string) {
	if db.cache == nil {
		return
	}
	if err := db.cache.Clear(ctx); err != nil {
		logging.Warn().Err(err).Str("op", op).Msg("Failed to clear ranking cache")
	}
}

// invalidateOnSuccess clears cached rankings when err is nil and passes
// err through.
func (db *DB) invalidateOnSuccess(ctx context.Context, op string, err error) error {
	if err == nil {
		db.invalidateRankings(ctx, op)
	}
	return err
}

var revenuePlan = rankingPlan[models.RevenueRank]{
	name: "revenue",
	precomputed: `SELECT rank_faturamento, id_canal, nome_canal, faturamento_total
		FROM system_antig.f_ranking_faturamento_total($1)
		ORDER BY rank_faturamento`,
	declare: func(wb *query.WhereBuilder, f models.ReportFilter) {
		wb.AddInt("d.id_canal = ?", f.ChannelID)
		wb.AddRange("c.datah", f.StartDate, f.EndDate)
	},
	aggregate: func(_ models.ReportFilter, where, limit string) string {
		return fmt.Sprintf(`SELECT DENSE_RANK() OVER (ORDER BY SUM(d.valor) DESC) AS rank_faturamento,
			d.id_canal, can.nome AS nome_canal, SUM(d.valor) AS faturamento_total
		FROM system_antig.doacao d
		JOIN system_antig.canal can ON d.id_canal = can.id
		%s
		%s
		GROUP BY d.id_canal, can.nome
		ORDER BY faturamento_total DESC
		LIMIT %s`, donationCommentJoin(innerJoin), where, limit)
	},
	scan: func(s scanner) (models.RevenueRank, error) {
		var r models.RevenueRank
		err := s.Scan(&r.Rank, &r.IDCanal, &r.NomeCanal, &r.Faturamento)
		return r, err
	},
}

// viralPlan reads the engagement view; the rate itself is computed by the view.
var viralPlan = rankingPlan[models.ViralVideo]{
	name: "viral_videos",
	declare: func(wb *query.WhereBuilder, f models.ReportFilter) {
		wb.AddInt("v.id_canal = ?", f.ChannelID)
		wb.AddRange("v.datah", f.StartDate, f.EndDate)
	},
	aggregate: func(_ models.ReportFilter, where, limit string) string {
		return fmt.Sprintf(`SELECT vv.id_video, vv.id_canal, v.titulo, v.visu_total, vv.taxa_engajamento
		FROM system_antig.v_videos_virais vv
		JOIN system_antig.video v ON vv.id_video = v.id_video AND vv.id_canal = v.id_canal
		%s
		ORDER BY vv.taxa_engajamento DESC
		LIMIT %s`, where, limit)
	},
	scan: func(s scanner) (models.ViralVideo, error) {
		var v models.ViralVideo
		err := s.Scan(&v.IDVideo, &v.IDCanal, &v.Titulo, &v.VisuTotal, &v.TaxaEngajamento)
		return v, err
	},
}

// streamersPlan has no channel filter; only the video date range forces
// the fallback.
var streamersPlan = rankingPlan[models.StreamerRank]{
	name: "streamers",
	precomputed: `SELECT nick, qtd_canais, total_videos_postados, audiencia_total_acumulada
		FROM system_antig.mv_performance_streamers
		ORDER BY audiencia_total_acumulada DESC
		LIMIT $1`,
	declare: func(wb *query.WhereBuilder, f models.ReportFilter) {
		wb.AddRange("v.datah", f.StartDate, f.EndDate)
	},
	aggregate: func(_ models.ReportFilter, where, limit string) string {
		return fmt.Sprintf(`SELECT u.nick, COUNT(DISTINCT c.id) AS qtd_canais,
			COUNT(*) AS total_videos_postados,
			COALESCE(SUM(v.visu_total), 0) AS audiencia_total_acumulada
		FROM system_antig.usuario u
		JOIN system_antig.canal c ON u.id = c.id_streamer
		JOIN system_antig.video v ON c.id = v.id_canal
		%s
		GROUP BY u.id, u.nick
		ORDER BY audiencia_total_acumulada DESC
		LIMIT %s`, where, limit)
	},
	scan: func(s scanner) (models.StreamerRank, error) {
		var r models.StreamerRank
		err := s.Scan(&r.Nick, &r.Canais, &r.Videos, &r.Audiencia)
		return r, err
	},
}

// viewersPlan is always ad hoc. Video ids repeat across channels, so
// supported videos are counted as (channel, video) pairs.
var viewersPlan = rankingPlan[models.ViewerRank]{
	name: "top_viewers",
	declare: func(wb *query.WhereBuilder, f models.ReportFilter) {
		wb.AddInt("d.id_canal = ?", f.ChannelID)
		wb.AddRange("c.datah", f.StartDate, f.EndDate)
	},
	aggregate: func(f models.ReportFilter, where, limit string) string {
		return fmt.Sprintf(`SELECT u.nick, COUNT(DISTINCT (d.id_canal, d.id_video)) AS videos_apoiados,
			SUM(d.valor) AS total_doado
		FROM system_antig.usuario u
		JOIN system_antig.doacao d ON u.id = d.id_usuario
		%s
		%s
		GROUP BY u.id, u.nick
		ORDER BY total_doado DESC
		LIMIT %s`, donationCommentJoin(commentJoinFor(f)), where, limit)
	},
	scan: func(s scanner) (models.ViewerRank, error) {
		var r models.ViewerRank
		err := s.Scan(&r.Nick, &r.VideosApoiados, &r.TotalDoado)
		return r, err
	},
}

// RevenueRanking ranks channels by donation revenue. Channels tied on
// revenue share a dense rank.
func (db *DB) RevenueRanking(ctx context.Context, f models.ReportFilter) ([]models.RevenueRank, error) {
	return runRanking(ctx, db, revenuePlan, f)
}

// ViralVideos lists videos by engagement rate.
func (db *DB) ViralVideos(ctx context.Context, f models.ReportFilter) ([]models.ViralVideo, error) {
	return runRanking(ctx, db, viralPlan, f)
}

// TopStreamers ranks streamers by cumulative audience.
func (db *DB) TopStreamers(ctx context.Context, f models.ReportFilter) ([]models.StreamerRank, error) {
	return runRanking(ctx, db, streamersPlan, f)
}

// TopViewers ranks donors by total donated.
func (db *DB) TopViewers(ctx context.Context, f models.ReportFilter) ([]models.ViewerRank, error) {
	return runRanking(ctx, db, viewersPlan, f)
}

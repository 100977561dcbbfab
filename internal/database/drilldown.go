// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/streamerdata/internal/database/query"
	"github.com/tomtom215/streamerdata/internal/models"
)

// donationsPerVideo pre-aggregates revenue per video so joining it does not
// multiply video rows.
const donationsPerVideo = `LEFT JOIN (
			SELECT id_video, id_canal, SUM(valor) AS revenue
			FROM system_antig.doacao
			GROUP BY id_video, id_canal
		) d ON v.id_video = d.id_video AND v.id_canal = d.id_canal`

// DrilldownPerformance aggregates per channel, or per video of one
// channel when f.ChannelID is set. Date filters apply to the video
// timestamp. Revenue without donations is 0.
func (db *DB) DrilldownPerformance(ctx context.Context, f models.ReportFilter) (*models.Drilldown, error) {
	wb := query.NewWhereBuilder()
	wb.AddRange("v.datah", f.StartDate, f.EndDate)

	if f.ChannelID == nil {
		q := fmt.Sprintf(`SELECT c.nome, COUNT(v.id_video), COALESCE(SUM(v.visu_total), 0),
			COALESCE(SUM(d.revenue), 0) AS total_revenue
		FROM system_antig.canal c
		LEFT JOIN system_antig.video v ON c.id = v.id_canal
		%s
		%s
		GROUP BY c.id, c.nome
		ORDER BY total_revenue DESC`, donationsPerVideo, wb.Where())

		rows, err := queryAndScan(ctx, db, "report.drilldown.channel", q, wb.Args(), scanChannelAggregate)
		if err != nil {
			return nil, err
		}
		return &models.Drilldown{Level: models.DrilldownChannel, Rows: rows}, nil
	}

	wb.AddInt("v.id_canal = ?", f.ChannelID)
	q := fmt.Sprintf(`SELECT v.titulo, v.visu_total, v.visu_simul,
			COALESCE(d.revenue, 0) AS total_revenue
		FROM system_antig.video v
		%s
		%s
		ORDER BY total_revenue DESC`, donationsPerVideo, wb.Where())

	rows, err := queryAndScan(ctx, db, "report.drilldown.video", q, wb.Args(), scanVideoAggregate)
	if err != nil {
		return nil, err
	}
	return &models.Drilldown{Level: models.DrilldownVideo, Rows: rows}, nil
}

func scanChannelAggregate(s scanner) (models.DrilldownRow, error) {
	var r models.DrilldownRow
	var items int64
	if err := s.Scan(&r.EntityName, &items, &r.TotalViews, &r.TotalRevenue); err != nil {
		return r, err
	}
	r.TotalItems = &items
	return r, nil
}

func scanVideoAggregate(s scanner) (models.DrilldownRow, error) {
	var r models.DrilldownRow
	var peak int64
	if err := s.Scan(&r.EntityName, &r.TotalViews, &peak, &r.TotalRevenue); err != nil {
		return r, err
	}
	r.PeakViews = &peak
	return r, nil
}

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

// revenueMonths is how many monthly buckets RevenueOverTime returns.
const revenueMonths = 12

// RevenueOverTime sums read and received donations per month of their
// comment, newest month first.
func (db *DB) RevenueOverTime(ctx context.Context, f models.ReportFilter) ([]models.MonthlyRevenue, error) {
	wb := query.NewWhereBuilder()
	wb.AddClause("d.status IN (?, ?)", models.DonationStatusRead, models.DonationStatusReceived)
	wb.AddInt("d.id_canal = ?", f.ChannelID)
	wb.AddInt("d.id_video = ?", f.VideoID)
	wb.AddRange("c.datah", f.StartDate, f.EndDate)

	placeholders, args := wb.Trailing(revenueMonths)
	q := fmt.Sprintf(`SELECT TO_CHAR(c.datah, 'YYYY-MM') AS month, SUM(d.valor) AS total
		FROM system_antig.doacao d
		%s
		%s
		GROUP BY month
		ORDER BY month DESC
		LIMIT %s`, donationCommentJoin(innerJoin), wb.Where(), placeholders[0])

	return queryAndScan(ctx, db, "report.revenue_over_time", q, args, func(s scanner) (models.MonthlyRevenue, error) {
		var m models.MonthlyRevenue
		err := s.Scan(&m.Month, &m.Total)
		return m, err
	})
}

// DistributionByTheme counts videos and views per theme. Videos without a
// theme are left out.
func (db *DB) DistributionByTheme(ctx context.Context, f models.ReportFilter) ([]models.ThemeDistribution, error) {
	wb := query.NewWhereBuilder()
	wb.AddClause("tema IS NOT NULL")
	wb.AddInt("id_canal = ?", f.ChannelID)
	wb.AddRange("datah", f.StartDate, f.EndDate)

	q := fmt.Sprintf(`SELECT tema, COUNT(*) AS count, COALESCE(SUM(visu_total), 0) AS total_views
		FROM system_antig.video
		%s
		GROUP BY tema
		ORDER BY count DESC`, wb.Where())

	return queryAndScan(ctx, db, "report.distribution_by_theme", q, wb.Args(), func(s scanner) (models.ThemeDistribution, error) {
		var t models.ThemeDistribution
		err := s.Scan(&t.Tema, &t.Count, &t.TotalViews)
		return t, err
	})
}

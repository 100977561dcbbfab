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

// listQuery describes one paginated listing. From includes every join, so
// the count and the page read exactly the same rows.
type listQuery struct {
	op      string
	columns string
	from    string
	orderBy string
}

// pageOffset returns the OFFSET for a 1-based page. Pages below 1 give a
// negative offset, which the server rejects. Callers keep page at or below
// models.MaxPage.
func pageOffset(page int) int {
	return (page - 1) * models.PageSize
}

// paginate counts the rows matching wb, then reads the requested page.
// LIMIT and OFFSET are bound after the filter arguments.
func paginate[T any](ctx context.Context, db *DB, q listQuery, wb *query.WhereBuilder, page int, scan scanFunc[T]) (*models.Page[T], error) {
	where := wb.Where()

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", q.from, where)
	total, err := db.countRows(ctx, q.op+".count", countSQL, wb.Args())
	if err != nil {
		return nil, err
	}

	placeholders, args := wb.Trailing(models.PageSize, pageOffset(page))
	pageSQL := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s LIMIT %s OFFSET %s",
		q.columns, q.from, where, q.orderBy, placeholders[0], placeholders[1])

	items, err := queryAndScan(ctx, db, q.op, pageSQL, args, scan)
	if err != nil {
		return nil, err
	}

	return &models.Page[T]{
		Items: items,
		Total: total,
		Page:  page,
		Limit: models.PageSize,
	}, nil
}

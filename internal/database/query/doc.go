// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

// Package query provides SQL query building utilities for the database package.
//
// # Overview
//
// The WhereBuilder turns a list of optional criteria into an ordered list of
// predicate fragments and a matching ordered list of bound values. Only
// present criteria contribute. Fragments are always combined with AND; a
// criterion that needs OR (for example a search over two columns) is a single
// parenthesized fragment with several values.
//
//	wb := query.NewWhereBuilder()
//	wb.AddInt("d.id_canal = ?", filter.ChannelID)
//	wb.AddRange("c.datah", filter.StartDate, filter.EndDate)
//	where := wb.Where()
//	// WHERE d.id_canal = $1 AND c.datah >= $2 AND c.datah <= $3
//
// # Trailing Parameters
//
// Callers own the tail of the parameter vector. Trailing numbers LIMIT and
// OFFSET after the filter arguments without mutating the builder:
//
//	ph, args := wb.Trailing(limit, offset)
//	sql := fmt.Sprintf("SELECT ... %s ORDER BY nro LIMIT %s OFFSET %s", wb.Where(), ph[0], ph[1])
//
// # Thread Safety
//
// WhereBuilder instances are not thread-safe. Create a new instance per query.
package query

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

// Package database provides the reporting engine and CRUD operations over
// the system_antig Postgres schema.
//
// # Overview
//
// DB wraps a database/sql pool opened through pgx/v5/stdlib. The pool is
// created once at startup and closed at shutdown; every operation checks
// a connection out for its own duration.
//
// # Architecture
//
// Core:
//   - database.go: pool lifecycle and options (WithCache)
//   - errors.go: ErrNotFound, ErrConnection and StatementError classification
//   - tx.go: withTx, commit on success and rollback on any error
//   - query_helpers.go: generic scan helpers with per-statement metrics
//   - joins.go: the four-column donation to comment join
//   - ids.go: scoped max-plus-one key allocation
//   - pagination.go: count plus page over one predicate list
//
// Reporting:
//   - rankings.go: revenue, viral videos, streamers and top viewers
//   - drilldown.go: channel or video level performance
//   - reports.go: revenue over time and distribution by theme
//   - refresh.go: the analytical view refresh procedure
//   - lookups.go: companies and countries
//
// CRUD:
//   - crud_platforms.go, crud_users.go, crud_channels.go, crud_videos.go,
//     crud_donations.go
//
// # Filters
//
// Filter predicates are composed with query.WhereBuilder. Fragments are
// bound in the order each call site declares them, and LIMIT/OFFSET are
// always numbered after the filter arguments:
//
//	wb := query.NewWhereBuilder()
//	wb.AddInt("d.id_canal = ?", f.ChannelID)
//	wb.AddRange("c.datah", f.StartDate, f.EndDate)
//	placeholders, args := wb.Trailing(limit)
//
// # Rankings
//
// Revenue and streamer rankings read a source precomputed by the refresh
// procedure when no filter is present (the fast path), and aggregate ad
// hoc otherwise. Fast-path results are cached in a cache.Store until the
// next refresh. Viral videos always read the engagement view; top viewers
// are always aggregated.
//
// # Donation dates
//
// Donations carry no timestamp. Their date is the date of the comment with
// the same (id_video, id_canal, id_usuario, seq_comentario). Date-filtered
// and date-bucketed reports inner join that comment, so donations whose
// comment is missing are excluded from them; the unfiltered top viewer
// ranking left joins it and keeps them.
//
// # Errors
//
//   - ErrConnection: no connection could be obtained
//   - *StatementError: the server rejected a statement; Message is the server text
//   - ErrNotFound: a single-row read, update or delete matched nothing
//
// # Testing
//
// Unit tests run against go-sqlmock. Integration tests use the
// integration build tag and a Postgres container from internal/testinfra.
package database

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"github.com/tomtom215/streamerdata/internal/models"
)

type joinKind string

const (
	innerJoin joinKind = "JOIN"
	leftJoin  joinKind = "LEFT JOIN"
)

// donationCommentJoin joins donations (alias d) to comments (alias c) on
// all four columns they share. A donation has no timestamp and no
// surrogate id; its date is the date of this comment.
func donationCommentJoin(kind joinKind) string {
	return string(kind) + " system_antig.comentario c" +
		" ON d.id_video = c.id_video" +
		" AND d.id_canal = c.id_canal" +
		" AND d.id_usuario = c.id_usuario" +
		" AND d.seq_comentario = c.seq"
}

// commentJoinFor returns the inner join when f filters on the donation
// date and the left join otherwise. Donations without a matching comment
// are therefore excluded only from date-filtered reports.
//
// TODO: confirm with product whether comment-less donations should count
// in date-filtered reports; today they are silently dropped.
func commentJoinFor(f models.ReportFilter) joinKind {
	if f.HasDateRange() {
		return innerJoin
	}
	return leftJoin
}

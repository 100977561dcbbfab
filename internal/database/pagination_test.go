// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tomtom215/streamerdata/internal/models"
)

func TestPageOffset(t *testing.T) {
	tests := []struct {
		page int
		want int
	}{
		{1, 0},
		{2, 10},
		{7, 60},
		{0, -10},
		{-1, -20},
	}
	for _, tt := range tests {
		if got := pageOffset(tt.page); got != tt.want {
			t.Errorf("pageOffset(%d) = %d, want %d", tt.page, got, tt.want)
		}
	}
}

var donationRowColumns = []string{"id_video", "id_canal", "id_usuario", "seq_comentario", "seq_pg", "valor", "status", "nick", "titulo"}

func TestListDonations_CountAndPageShareFilters(t *testing.T) {
	db, mock := newMockDB(t)

	const where = "WHERE (u.nick ILIKE $1 OR v.titulo ILIKE $2)"

	mock.ExpectQuery(sqlFragment("SELECT COUNT(*) FROM system_antig.doacao d JOIN system_antig.usuario u ON d.id_usuario = u.id JOIN system_antig.video v ON d.id_video = v.id_video AND d.id_canal = v.id_canal " + where)).
		WithArgs("%ana%", "%ana%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(sqlFragment(where + " ORDER BY d.valor DESC LIMIT $3 OFFSET $4")).
		WithArgs("%ana%", "%ana%", 10, 10).
		WillReturnRows(sqlmock.NewRows(donationRowColumns).
			AddRow(1, 1, 2, 1, 1, 15.5, "lido", "ana", "Speedrun"))

	page, err := db.ListDonations(context.Background(), models.ListFilter{Query: "ana", Page: 2})
	checkNoError(t, err)

	if page.Total != 11 || page.Page != 2 || page.Limit != 10 {
		t.Errorf("unexpected page metadata: %+v", page)
	}
	if len(page.Items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(page.Items))
	}
	d := page.Items[0]
	if d.Nick != "ana" || d.VideoTitulo != "Speedrun" || !d.Valor.Equal(models.Amount("15.5")) || d.SeqPg != 1 {
		t.Errorf("unexpected donation %+v", d)
	}
}

func TestListVideos_SearchThenChannel(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(sqlFragment("WHERE v.titulo ILIKE $1 AND v.id_canal = $2")).
		WithArgs("%run%", 3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(sqlFragment("ORDER BY v.datah DESC LIMIT $3 OFFSET $4")).
		WithArgs("%run%", 3, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id_video"}))

	page, err := db.ListVideos(context.Background(), models.ListFilter{Query: "run", Page: 1, ChannelID: int64Ptr(3)})
	checkNoError(t, err)

	if page.Total != 0 {
		t.Errorf("Total = %d, want 0", page.Total)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Errorf("empty result should be an empty list, got %#v", page.Items)
	}
}

func TestListPlatforms_NoFilter(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM system_antig\.plataforma$`).
		WithArgs().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(sqlFragment("FROM system_antig.plataforma ORDER BY nro LIMIT $1 OFFSET $2")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"nro", "nome", "empresa_fund", "empresa_respo", "data_fund"}).
			AddRow(1, "Twitch", 1, 1, fixedDate))

	page, err := db.ListPlatforms(context.Background(), models.ListFilter{Page: 1})
	checkNoError(t, err)
	if len(page.Items) != 1 || page.Items[0].Nome != "Twitch" {
		t.Errorf("unexpected items %+v", page.Items)
	}
}

func TestListUsers_NegativePageIsStatementError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(sqlFragment("SELECT COUNT(*) FROM system_antig.usuario")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(sqlFragment("ORDER BY id LIMIT $1 OFFSET $2")).
		WithArgs(10, -10).
		WillReturnError(&pgconn.PgError{Code: "2201X", Message: "OFFSET must not be negative"})

	_, err := db.ListUsers(context.Background(), models.ListFilter{Page: 0})
	stmtErr := checkStatementKind(t, err, KindInvalidInput)
	if stmtErr.Message != "OFFSET must not be negative" {
		t.Errorf("Message = %q", stmtErr.Message)
	}
}

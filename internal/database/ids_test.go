// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tomtom215/streamerdata/internal/config"
	"github.com/tomtom215/streamerdata/internal/models"
)

func TestScope_LockKey(t *testing.T) {
	tests := []struct {
		scope Scope
		want  string
	}{
		{PlatformScope, "platform"},
		{UserScope, "user"},
		{ChannelScope, "channel"},
		{VideoScope(12), "video:12"},
		{PaymentScope(models.DonationKey{IDVideo: 1, IDCanal: 2, IDUsuario: 3, SeqComentario: 4}), "donation:1:2:3:4"},
	}
	for _, tt := range tests {
		if got := tt.scope.LockKey(); got != tt.want {
			t.Errorf("LockKey() = %q, want %q", got, tt.want)
		}
	}
}

func TestScope_NextQuery(t *testing.T) {
	tests := []struct {
		name     string
		scope    Scope
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "global",
			scope:    PlatformScope,
			wantSQL:  "SELECT COALESCE(MAX(nro), 0) + 1 FROM system_antig.plataforma",
			wantArgs: []interface{}{},
		},
		{
			name:     "per channel",
			scope:    VideoScope(3),
			wantSQL:  "SELECT COALESCE(MAX(id_video), 0) + 1 FROM system_antig.video WHERE id_canal = $1",
			wantArgs: []interface{}{int64(3)},
		},
		{
			name:     "per comment",
			scope:    PaymentScope(models.DonationKey{IDVideo: 5, IDCanal: 6, IDUsuario: 7, SeqComentario: 8}),
			wantSQL:  "SELECT COALESCE(MAX(seq_pg), 0) + 1 FROM system_antig.doacao WHERE id_video = $1 AND id_canal = $2 AND id_usuario = $3 AND seq_comentario = $4",
			wantArgs: []interface{}{int64(5), int64(6), int64(7), int64(8)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.scope.nextQuery()
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestNewIDAllocator(t *testing.T) {
	if !NewIDAllocator(config.AllocationLocked).Locked() {
		t.Error("locked strategy should lock")
	}
	if !NewIDAllocator("").Locked() {
		t.Error("default strategy should lock")
	}
	if NewIDAllocator(config.AllocationScan).Locked() {
		t.Error("scan strategy should not lock")
	}
}

func videoInput(channelID int64, title string) models.VideoInput {
	return models.VideoInput{
		IDCanal:   channelID,
		Titulo:    title,
		Datah:     "2024-01-10T20:00:00Z",
		Duracao:   3600,
		VisuSimul: 50,
		VisuTotal: 900,
	}
}

func TestCreateVideo_LockedAllocation(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(sqlFragment(advisoryLockSQL)).
		WithArgs("video:1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(sqlFragment("SELECT COALESCE(MAX(id_video), 0) + 1 FROM system_antig.video WHERE id_canal = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(2))
	mock.ExpectExec(sqlFragment("INSERT INTO system_antig.video")).
		WithArgs(2, 1, "B", "2024-01-10T20:00:00Z", nil, 3600, 50, 900).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := db.CreateVideo(context.Background(), videoInput(1, "B"))
	checkNoError(t, err)
	if id != 2 {
		t.Errorf("id = %d, want 2", id)
	}
}

func TestCreateVideo_ScanAllocation(t *testing.T) {
	db, mock := newMockDBWithConfig(t, &config.DatabaseConfig{IDAllocation: config.AllocationScan})

	mock.ExpectBegin()
	mock.ExpectQuery(sqlFragment("SELECT COALESCE(MAX(id_video), 0) + 1")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(1))
	mock.ExpectExec(sqlFragment("INSERT INTO system_antig.video")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := db.CreateVideo(context.Background(), videoInput(4, "first"))
	checkNoError(t, err)
	if id != 1 {
		t.Errorf("first video in an empty channel should get id 1, got %d", id)
	}
}

func TestCreateVideo_DuplicateKeyRollsBack(t *testing.T) {
	db, mock := newMockDBWithConfig(t, &config.DatabaseConfig{IDAllocation: config.AllocationScan})

	mock.ExpectBegin()
	mock.ExpectQuery(sqlFragment("SELECT COALESCE(MAX(id_video), 0) + 1")).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(3))
	mock.ExpectExec(sqlFragment("INSERT INTO system_antig.video")).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "video_pkey"`})
	mock.ExpectRollback()

	_, err := db.CreateVideo(context.Background(), videoInput(1, "race"))
	stmtErr := checkStatementKind(t, err, KindUniqueViolation)
	if stmtErr.Code != "23505" {
		t.Errorf("Code = %q", stmtErr.Code)
	}
}

func TestCreateVideo_LockFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(sqlFragment(advisoryLockSQL)).
		WillReturnError(&pgconn.PgError{Code: "57014", Message: "canceling statement due to statement timeout"})
	mock.ExpectRollback()

	_, err := db.CreateVideo(context.Background(), videoInput(1, "slow"))
	checkStatementKind(t, err, KindOther)
}

func TestCreateVideo_BeginFailureIsConnectionError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("dial tcp 10.0.0.1:5432: connect: connection refused"))

	_, err := db.CreateVideo(context.Background(), videoInput(1, "offline"))
	checkErrorIs(t, err, ErrConnection)
}

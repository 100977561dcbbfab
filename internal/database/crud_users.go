// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"context"
	"database/sql"

	"github.com/tomtom215/streamerdata/internal/database/query"
	"github.com/tomtom215/streamerdata/internal/models"
)

const userColumns = "id, nick, email, data_nasc, telefone, end_postal, id_pais"

// userDonationsLimit caps the donations embedded in a user detail.
const userDonationsLimit = 10

func scanUser(s scanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Nick, &u.Email, &u.DataNasc, &u.Telefone, &u.EndPostal, &u.IDPais)
	return u, err
}

// ListUsers pages through users whose nick or email contains f.Query.
func (db *DB) ListUsers(ctx context.Context, f models.ListFilter) (*models.Page[models.User], error) {
	wb := query.NewWhereBuilder().AddSearch(f.Query, "nick", "email")
	return paginate(ctx, db, listQuery{
		op:      "users.list",
		columns: userColumns,
		from:    "system_antig.usuario",
		orderBy: "id",
	}, wb, f.Page, scanUser)
}

// GetUser returns a user with the channels they stream on and their
// largest donations.
func (db *DB) GetUser(ctx context.Context, id int64) (*models.UserDetail, error) {
	u, err := queryOne(ctx, db, "users.get",
		"SELECT "+userColumns+" FROM system_antig.usuario WHERE id = $1",
		[]interface{}{id}, scanUser)
	if err != nil {
		return nil, err
	}

	channels, err := queryAndScan(ctx, db, "users.channels",
		"SELECT "+channelColumns+" FROM system_antig.canal c WHERE c.id_streamer = $1 ORDER BY c.id",
		[]interface{}{id}, scanChannel)
	if err != nil {
		return nil, err
	}

	donations, err := queryAndScan(ctx, db, "users.donations",
		"SELECT "+donationColumns+`, v.titulo
		FROM system_antig.doacao d
		JOIN system_antig.video v ON d.id_video = v.id_video AND d.id_canal = v.id_canal
		WHERE d.id_usuario = $1
		ORDER BY d.valor DESC
		LIMIT $2`,
		[]interface{}{id, userDonationsLimit}, donationScanner(false, true))
	if err != nil {
		return nil, err
	}

	return &models.UserDetail{User: u, Channels: channels, Donations: donations}, nil
}

// CreateUser inserts a user and returns the allocated id.
func (db *DB) CreateUser(ctx context.Context, in models.UserInput) (int64, error) {
	var id int64
	err := db.withTx(ctx, "users.create", func(tx *sql.Tx) error {
		next, err := db.ids.Next(ctx, tx, UserScope)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO system_antig.usuario (id, nick, email, data_nasc, telefone, end_postal, id_pais)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			next, in.Nick, in.Email, in.DataNasc, nullable(in.Telefone), nullable(in.EndPostal), in.IDPais); err != nil {
			return err
		}
		id = next
		return nil
	})
	return id, err
}

// UpdateUser replaces every mutable column of a user.
func (db *DB) UpdateUser(ctx context.Context, id int64, in models.UserInput) error {
	return db.execOne(ctx, "users.update",
		`UPDATE system_antig.usuario
		SET nick = $1, email = $2, data_nasc = $3, telefone = $4, end_postal = $5, id_pais = $6
		WHERE id = $7`,
		in.Nick, in.Email, in.DataNasc, nullable(in.Telefone), nullable(in.EndPostal), in.IDPais, id)
}

// DeleteUser removes a user.
func (db *DB) DeleteUser(ctx context.Context, id int64) error {
	return db.execOne(ctx, "users.delete",
		"DELETE FROM system_antig.usuario WHERE id = $1", id)
}

// nullable maps an empty optional text field to NULL.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

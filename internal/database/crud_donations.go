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

const donationColumns = "d.id_video, d.id_canal, d.id_usuario, d.seq_comentario, d.seq_pg, d.valor, d.status"

const donationFrom = `system_antig.doacao d
		JOIN system_antig.usuario u ON d.id_usuario = u.id
		JOIN system_antig.video v ON d.id_video = v.id_video AND d.id_canal = v.id_canal`

const donationKeyMatch = "id_video = $1 AND id_canal = $2 AND id_usuario = $3 AND seq_comentario = $4 AND seq_pg = $5"

// donationScanner reads donationColumns followed by the donor nick and/or
// the video title, in that order.
func donationScanner(withNick, withTitle bool) scanFunc[models.Donation] {
	return func(s scanner) (models.Donation, error) {
		var d models.Donation
		dest := []interface{}{&d.IDVideo, &d.IDCanal, &d.IDUsuario, &d.SeqComentario, &d.SeqPg, &d.Valor, &d.Status}
		if withNick {
			dest = append(dest, &d.Nick)
		}
		if withTitle {
			dest = append(dest, &d.VideoTitulo)
		}
		err := s.Scan(dest...)
		return d, err
	}
}

// ListDonations pages through donations, largest first, whose donor nick
// or video title contains f.Query.
func (db *DB) ListDonations(ctx context.Context, f models.ListFilter) (*models.Page[models.Donation], error) {
	wb := query.NewWhereBuilder().AddSearch(f.Query, "u.nick", "v.titulo")
	return paginate(ctx, db, listQuery{
		op:      "donations.list",
		columns: donationColumns + ", u.nick, v.titulo",
		from:    donationFrom,
		orderBy: "d.valor DESC",
	}, wb, f.Page, donationScanner(true, true))
}

// CreateDonation attaches a payment to an existing comment key. When
// in.SeqPg is nil the next payment number for that comment is allocated.
// It returns the payment number used.
func (db *DB) CreateDonation(ctx context.Context, in models.DonationInput) (int64, error) {
	key := models.DonationKey{
		IDVideo:       in.IDVideo,
		IDCanal:       in.IDCanal,
		IDUsuario:     in.IDUsuario,
		SeqComentario: in.SeqComentario,
	}

	err := db.withTx(ctx, "donations.create", func(tx *sql.Tx) error {
		if in.SeqPg != nil {
			key.SeqPg = *in.SeqPg
		} else {
			next, err := db.ids.Next(ctx, tx, PaymentScope(key))
			if err != nil {
				return err
			}
			key.SeqPg = next
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO system_antig.doacao (id_video, id_canal, id_usuario, seq_comentario, seq_pg, valor, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			key.IDVideo, key.IDCanal, key.IDUsuario, key.SeqComentario, key.SeqPg, in.Valor, in.Status)
		return err
	})
	if err != nil {
		return 0, err
	}
	db.invalidateRankings(ctx, "donations.create")
	return key.SeqPg, nil
}

// UpdateDonation changes the amount and status of one donation.
func (db *DB) UpdateDonation(ctx context.Context, k models.DonationKey, in models.DonationUpdate) error {
	err := db.execOne(ctx, "donations.update",
		`UPDATE system_antig.doacao SET valor = $6, status = $7 WHERE `+donationKeyMatch,
		k.IDVideo, k.IDCanal, k.IDUsuario, k.SeqComentario, k.SeqPg, in.Valor, in.Status)
	return db.invalidateOnSuccess(ctx, "donations.update", err)
}

// DeleteDonation removes one donation.
func (db *DB) DeleteDonation(ctx context.Context, k models.DonationKey) error {
	err := db.execOne(ctx, "donations.delete",
		"DELETE FROM system_antig.doacao WHERE "+donationKeyMatch,
		k.IDVideo, k.IDCanal, k.IDUsuario, k.SeqComentario, k.SeqPg)
	return db.invalidateOnSuccess(ctx, "donations.delete", err)
}

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

const channelColumns = "c.id, c.nome, c.tipo, c.data, c.descricao, c.qtd_visualizacoes, c.id_streamer, c.nro_plataforma"

const channelFrom = `system_antig.canal c
		JOIN system_antig.usuario u ON c.id_streamer = u.id
		JOIN system_antig.plataforma p ON c.nro_plataforma = p.nro`

func scanChannel(s scanner) (models.Channel, error) {
	var c models.Channel
	err := s.Scan(&c.ID, &c.Nome, &c.Tipo, &c.Data, &c.Descricao, &c.QtdVisualizacoes, &c.IDStreamer, &c.NroPlataforma)
	return c, err
}

// scanListedChannel also reads the streamer nick and platform name.
func scanListedChannel(s scanner) (models.Channel, error) {
	var c models.Channel
	err := s.Scan(&c.ID, &c.Nome, &c.Tipo, &c.Data, &c.Descricao, &c.QtdVisualizacoes, &c.IDStreamer, &c.NroPlataforma,
		&c.StreamerNick, &c.PlatformName)
	return c, err
}

// ListChannels pages through channels whose name contains f.Query.
func (db *DB) ListChannels(ctx context.Context, f models.ListFilter) (*models.Page[models.Channel], error) {
	wb := query.NewWhereBuilder().AddSearch(f.Query, "c.nome")
	return paginate(ctx, db, listQuery{
		op:      "channels.list",
		columns: channelColumns + ", u.nick, p.nome",
		from:    channelFrom,
		orderBy: "c.id",
	}, wb, f.Page, scanListedChannel)
}

// GetChannel returns a channel with its videos, newest first.
func (db *DB) GetChannel(ctx context.Context, id int64) (*models.ChannelDetail, error) {
	c, err := queryOne(ctx, db, "channels.get",
		"SELECT "+channelColumns+", u.nick, p.nome FROM "+channelFrom+" WHERE c.id = $1",
		[]interface{}{id}, scanListedChannel)
	if err != nil {
		return nil, err
	}

	videos, err := queryAndScan(ctx, db, "channels.videos",
		"SELECT "+videoColumns+" FROM system_antig.video v WHERE v.id_canal = $1 ORDER BY v.datah DESC",
		[]interface{}{id}, scanVideo)
	if err != nil {
		return nil, err
	}

	return &models.ChannelDetail{Channel: c, Videos: videos}, nil
}

// CreateChannel inserts a channel and returns the allocated id.
func (db *DB) CreateChannel(ctx context.Context, in models.ChannelInput) (int64, error) {
	var id int64
	err := db.withTx(ctx, "channels.create", func(tx *sql.Tx) error {
		next, err := db.ids.Next(ctx, tx, ChannelScope)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO system_antig.canal (id, nome, tipo, data, descricao, id_streamer, nro_plataforma)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			next, in.Nome, in.Tipo, in.Data, in.Descricao, in.IDStreamer, in.NroPlataforma); err != nil {
			return err
		}
		id = next
		return nil
	})
	return id, err
}

// UpdateChannel replaces every mutable column of a channel.
func (db *DB) UpdateChannel(ctx context.Context, id int64, in models.ChannelInput) error {
	err := db.execOne(ctx, "channels.update",
		`UPDATE system_antig.canal
		SET nome = $1, tipo = $2, data = $3, descricao = $4, id_streamer = $5, nro_plataforma = $6
		WHERE id = $7`,
		in.Nome, in.Tipo, in.Data, in.Descricao, in.IDStreamer, in.NroPlataforma, id)
	return db.invalidateOnSuccess(ctx, "channels.update", err)
}

// DeleteChannel removes a channel.
func (db *DB) DeleteChannel(ctx context.Context, id int64) error {
	err := db.execOne(ctx, "channels.delete",
		"DELETE FROM system_antig.canal WHERE id = $1", id)
	return db.invalidateOnSuccess(ctx, "channels.delete", err)
}

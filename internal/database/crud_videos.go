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

const videoColumns = "v.id_video, v.id_canal, v.titulo, v.datah, v.tema, v.duracao, v.visu_simul, v.visu_total"

const videoFrom = `system_antig.video v
		JOIN system_antig.canal c ON v.id_canal = c.id`

func scanVideo(s scanner) (models.Video, error) {
	var v models.Video
	err := s.Scan(&v.IDVideo, &v.IDCanal, &v.Titulo, &v.Datah, &v.Tema, &v.Duracao, &v.VisuSimul, &v.VisuTotal)
	return v, err
}

func scanListedVideo(s scanner) (models.Video, error) {
	var v models.Video
	err := s.Scan(&v.IDVideo, &v.IDCanal, &v.Titulo, &v.Datah, &v.Tema, &v.Duracao, &v.VisuSimul, &v.VisuTotal, &v.CanalNome)
	return v, err
}

// ListVideos pages through videos, newest first, optionally restricted to
// one channel. The title search is declared before the channel filter.
func (db *DB) ListVideos(ctx context.Context, f models.ListFilter) (*models.Page[models.Video], error) {
	wb := query.NewWhereBuilder().
		AddSearch(f.Query, "v.titulo").
		AddInt("v.id_canal = ?", f.ChannelID)
	return paginate(ctx, db, listQuery{
		op:      "videos.list",
		columns: videoColumns + ", c.nome",
		from:    videoFrom,
		orderBy: "v.datah DESC",
	}, wb, f.Page, scanListedVideo)
}

// GetVideo returns a video with its donations and their donors' nicks.
func (db *DB) GetVideo(ctx context.Context, channelID, videoID int64) (*models.VideoDetail, error) {
	v, err := queryOne(ctx, db, "videos.get",
		"SELECT "+videoColumns+", c.nome FROM "+videoFrom+" WHERE v.id_video = $1 AND v.id_canal = $2",
		[]interface{}{videoID, channelID}, scanListedVideo)
	if err != nil {
		return nil, err
	}

	donations, err := queryAndScan(ctx, db, "videos.donations",
		"SELECT "+donationColumns+`, u.nick
		FROM system_antig.doacao d
		JOIN system_antig.usuario u ON d.id_usuario = u.id
		WHERE d.id_video = $1 AND d.id_canal = $2
		ORDER BY d.valor DESC`,
		[]interface{}{videoID, channelID}, donationScanner(true, false))
	if err != nil {
		return nil, err
	}

	return &models.VideoDetail{Video: v, Donations: donations}, nil
}

// CreateVideo inserts a video numbered within its channel and returns
// that per-channel id.
func (db *DB) CreateVideo(ctx context.Context, in models.VideoInput) (int64, error) {
	var id int64
	err := db.withTx(ctx, "videos.create", func(tx *sql.Tx) error {
		next, err := db.ids.Next(ctx, tx, VideoScope(in.IDCanal))
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO system_antig.video (id_video, id_canal, titulo, datah, tema, duracao, visu_simul, visu_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			next, in.IDCanal, in.Titulo, in.Datah, in.Tema, in.Duracao, in.VisuSimul, in.VisuTotal); err != nil {
			return err
		}
		id = next
		return nil
	})
	return id, err
}

// UpdateVideo replaces the mutable columns of a video. The channel is part
// of the key and cannot change.
func (db *DB) UpdateVideo(ctx context.Context, channelID, videoID int64, in models.VideoInput) error {
	return db.execOne(ctx, "videos.update",
		`UPDATE system_antig.video
		SET titulo = $1, datah = $2, tema = $3, duracao = $4, visu_simul = $5, visu_total = $6
		WHERE id_video = $7 AND id_canal = $8`,
		in.Titulo, in.Datah, in.Tema, in.Duracao, in.VisuSimul, in.VisuTotal, videoID, channelID)
}

// DeleteVideo removes a video.
func (db *DB) DeleteVideo(ctx context.Context, channelID, videoID int64) error {
	return db.execOne(ctx, "videos.delete",
		"DELETE FROM system_antig.video WHERE id_video = $1 AND id_canal = $2", videoID, channelID)
}

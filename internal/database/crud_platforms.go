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

const platformColumns = "nro, nome, empresa_fund, empresa_respo, data_fund"

func scanPlatform(s scanner) (models.Platform, error) {
	var p models.Platform
	err := s.Scan(&p.Nro, &p.Nome, &p.EmpresaFund, &p.EmpresaRespo, &p.DataFund)
	return p, err
}

// ListPlatforms pages through platforms whose name contains f.Query.
func (db *DB) ListPlatforms(ctx context.Context, f models.ListFilter) (*models.Page[models.Platform], error) {
	wb := query.NewWhereBuilder().AddSearch(f.Query, "nome")
	return paginate(ctx, db, listQuery{
		op:      "platforms.list",
		columns: platformColumns,
		from:    "system_antig.plataforma",
		orderBy: "nro",
	}, wb, f.Page, scanPlatform)
}

// GetPlatform returns a platform with the channels it hosts.
func (db *DB) GetPlatform(ctx context.Context, nro int64) (*models.PlatformDetail, error) {
	p, err := queryOne(ctx, db, "platforms.get",
		"SELECT "+platformColumns+" FROM system_antig.plataforma WHERE nro = $1",
		[]interface{}{nro}, scanPlatform)
	if err != nil {
		return nil, err
	}

	channels, err := queryAndScan(ctx, db, "platforms.channels",
		"SELECT "+channelColumns+" FROM system_antig.canal c WHERE c.nro_plataforma = $1 ORDER BY c.id",
		[]interface{}{nro}, scanChannel)
	if err != nil {
		return nil, err
	}

	return &models.PlatformDetail{Platform: p, Channels: channels}, nil
}

// CreatePlatform inserts a platform and returns its allocated number.
func (db *DB) CreatePlatform(ctx context.Context, in models.PlatformInput) (int64, error) {
	var nro int64
	err := db.withTx(ctx, "platforms.create", func(tx *sql.Tx) error {
		next, err := db.ids.Next(ctx, tx, PlatformScope)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO system_antig.plataforma (nro, nome, empresa_fund, empresa_respo, data_fund)
			VALUES ($1, $2, $3, $4, $5)`,
			next, in.Nome, in.EmpresaFund, in.EmpresaRespo, in.DataFund); err != nil {
			return err
		}
		nro = next
		return nil
	})
	return nro, err
}

// UpdatePlatform replaces every mutable column of a platform.
func (db *DB) UpdatePlatform(ctx context.Context, nro int64, in models.PlatformInput) error {
	return db.execOne(ctx, "platforms.update",
		`UPDATE system_antig.plataforma
		SET nome = $1, empresa_fund = $2, empresa_respo = $3, data_fund = $4
		WHERE nro = $5`,
		in.Nome, in.EmpresaFund, in.EmpresaRespo, in.DataFund, nro)
}

// DeletePlatform removes a platform. Platforms with channels are protected
// by the foreign key and fail with a statement error.
func (db *DB) DeletePlatform(ctx context.Context, nro int64) error {
	return db.execOne(ctx, "platforms.delete",
		"DELETE FROM system_antig.plataforma WHERE nro = $1", nro)
}

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"context"

	"github.com/tomtom215/streamerdata/internal/models"
)

// ListCompanies returns every company ordered by name.
func (db *DB) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return queryAndScan(ctx, db, "lookup.companies",
		"SELECT nro, nome FROM system_antig.empresa ORDER BY nome", nil,
		func(s scanner) (models.Company, error) {
			var c models.Company
			err := s.Scan(&c.Nro, &c.Nome)
			return c, err
		})
}

// ListCountries returns every country ordered by name.
func (db *DB) ListCountries(ctx context.Context) ([]models.Country, error) {
	return queryAndScan(ctx, db, "lookup.countries",
		"SELECT id, nome FROM system_antig.pais ORDER BY nome", nil,
		func(s scanner) (models.Country, error) {
			var c models.Country
			err := s.Scan(&c.ID, &c.Nome)
			return c, err
		})
}

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

// Package logging provides centralized zerolog-based structured logging.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("ranking", "revenue").Msg("Served from precomputed source")
//	logging.Ctx(ctx).Error().Err(err).Msg("Statement failed")
//
// Ctx attaches the request_id stored by the HTTP middleware, so every line
// logged while serving a request can be correlated.
//
// # Suture Integration
//
// NewSlogLogger returns a *slog.Logger backed by the global zerolog logger,
// used by the supervisor tree's event hook.
package logging

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

/*
Package services provides suture.Service wrappers for StreamerData components.

Each wrapper turns a component lifecycle into suture's context-aware
Serve(ctx) error and implements fmt.Stringer so supervisor events name it.

# Available Services

HTTPServerService (api layer):
  - Runs ListenAndServe and calls Shutdown with a bounded context on cancel
  - Returns listener failures so the supervisor restarts the server

ViewRefreshService (data layer):
  - Calls RefreshAnalyticalViews every VIEW_REFRESH_INTERVAL
  - Logs failures and keeps ticking; throttled refreshes are skipped quietly
  - Returns suture.ErrDoNotRestart when the interval is zero

# Usage

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))
	tree.AddDataService(services.NewViewRefreshService(db, cfg.Database.RefreshInterval))
*/
package services

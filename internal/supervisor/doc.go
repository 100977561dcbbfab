// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

/*
Package supervisor runs the long-lived StreamerData services under suture v4.

The tree is split into two layers so that each restarts independently:

	RootSupervisor ("streamerdata")
	├── DataSupervisor ("data-layer")
	│   └── ViewRefreshService (if VIEW_REFRESH_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (service failures, backoff, restarts) are logged through
sutureslog, which receives a *slog.Logger bridged onto zerolog by
logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))
	if cfg.Database.RefreshInterval > 0 {
	    tree.AddDataService(services.NewViewRefreshService(db, cfg.Database.RefreshInterval))
	}
	return tree.Serve(ctx)

Cancelling ctx stops every layer. Services that do not return within
TreeConfig.ShutdownTimeout are reported by UnstoppedServiceReport.

See the services subpackage for the service wrappers.
*/
package supervisor

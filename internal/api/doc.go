// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

/*
Package api provides the HTTP REST API layer for StreamerData.

Key Components:

  - Router: chi route table and middleware stack
  - Handler: request handlers over a Store (implemented by *database.DB)
  - Error mapping: store failures become the APIResponse error envelope

API Categories (all under /api):

1. Rankings (/ranking/...):
  - revenue (alias faturamento), viral-videos (alias videos-virais)
  - streamers, top-viewers
  - query: limit (1..max, default 10), channel_id, start_date, end_date

2. Entities:
  - platforms/{nro}, users/{id}, channels/{id}
  - videos/{id_canal}/{id_video}
  - donations/{id_video}/{id_canal}/{id_usuario}/{seq_comentario}/{seq_pg}
  - list endpoints take q and page and return {items, total, page, limit}

3. Reports (/reports/...):
  - revenue-over-time, distribution-by-theme, drilldown-performance
  - POST refresh re-materializes the analytical views

4. Lookups: companies, countries

Operational endpoints outside /api: /, /health/live, /health/ready, /metrics.

Response Format:

Successful reads return the payload itself (row arrays, detail objects,
pages). Mutations return {"status":"success","id":N} (201, id on create
only) or {"status":"success"} (200). Failures always use the envelope:

	{
	  "status": "error",
	  "error": {"code": "DATABASE_ERROR", "message": "...", "details": {"kind": "foreign_key_violation", "sqlstate": "23503"}},
	  "metadata": {"timestamp": "...", "request_id": "..."}
	}

Status mapping: validation 400, statement failure 400, not found 404,
refresh throttled 429, connection failure 500, anything else 500.

Usage Example:

	handler := api.NewHandler(db, cfg)
	router := api.NewRouter(handler, cfg)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

/*
Package models defines data structures for the StreamerData application.

Key Components:

  - Entities: Platform, User, Channel, Video, Donation, with detail aggregates
  - Inputs: full-record create/update payloads carrying validator tags
  - Filters: ReportFilter for rankings and reports, ListFilter for listings
  - Results: Page[T], ranking rows, report rows, and the tagged Drilldown
  - API envelope: APIResponse and APIError for failures, MutationResult for writes

Identity Rules:

  - Video ids are scoped per channel: (id_canal, id_video) is the key.
  - A donation is keyed by (id_video, id_canal, id_usuario, seq_comentario, seq_pg);
    the first four columns identify the comment it was attached to, and the
    donation's date is that comment's date.
*/
package models

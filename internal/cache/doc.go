// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

/*
Package cache stores precomputed ranking results between analytical view
refreshes.

Two Store backends are available, selected by CACHE_BACKEND:

  - memory (default): MemoryStore, wrapping the in-process TTL Cache
  - redis: RedisStore, shared by every API replica, keys under CACHE_KEY_PREFIX

Values are JSON encoded with goccy/go-json. Hits and misses are counted in
ranking_cache_hits_total and ranking_cache_misses_total, labelled by backend.

The database layer only caches rankings requested without filters and clears
the store after every successful RefreshAnalyticalViews, so a cached entry
never outlives the view contents it was computed from.
*/
package cache

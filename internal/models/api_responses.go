// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package models

import (
	"time"
)

// APIResponse is the error envelope returned by every failing endpoint.
//
// Successful responses keep the established wire shapes (Page, MutationResult,
// report row arrays) so existing dashboards keep working; failures are always
// wrapped:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "NOT_FOUND",
//	    "message": "Platform not found"
//	  },
//	  "metadata": {"timestamp": "2026-01-05T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
// For store failures Message is the store's own error text.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// MutationResult is returned by create, update and delete endpoints.
// ID is set only on create.
type MutationResult struct {
	Status string `json:"status"`
	ID     *int64 `json:"id,omitempty"`
}

// StatusMessage is returned by operational endpoints such as the view refresh.
type StatusMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RootStatus reports service identity and store reachability.
type RootStatus struct {
	Message  string `json:"message"`
	DBStatus string `json:"db_status"`
}

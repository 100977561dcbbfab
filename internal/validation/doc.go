// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built on first use. It reports field
// names by their json tag and registers two date tags:
//   - isodate: YYYY-MM-DD or RFC 3339 (platform founding dates, birth dates, report bounds)
//   - isodatetime: RFC 3339, or a zone-less "YYYY-MM-DD HH:MM:SS" timestamp (video start)
//
// # Usage
//
//	var in models.ChannelInput
//	if verr := validation.ValidateStruct(&in); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// ToAPIError always uses the VALIDATION_FAILED code and lists every failing
// field under details.fields with its json name, tag and message.
package validation

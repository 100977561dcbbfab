// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package models

import "github.com/shopspring/decimal"

// Amounts (doacao.valor and every sum over it) are NUMERIC(12,2) in the
// store and are carried as decimal.Decimal end to end.
// They are encoded as JSON numbers, as the API has always returned them.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Amount parses a decimal literal such as "12.50". It panics on malformed
// input and is meant for constants and tests.
func Amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

// Package query provides SQL query building utilities for the database package.
// It turns optional, independently combinable criteria into PostgreSQL
// predicate fragments with positional ($N) parameters.
package query

import (
	"strconv"
	"strings"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
//
// Fragments are written with ? placeholders and renumbered to $N as they are
// added, so the order of Add calls is the order of the bound arguments.
// Reordering calls at a call site changes parameter binding.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddInt("d.id_canal = ?", filter.ChannelID)
//	wb.AddRange("c.datah", filter.StartDate, filter.EndDate)
//	ph, args := wb.Trailing(limit)
//	// WHERE d.id_canal = $1 AND c.datah >= $2 ... LIMIT $4
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// Add appends fragment when present is true, binding values to its ?
// placeholders in order. Absent criteria contribute neither a fragment nor
// an argument.
func (wb *WhereBuilder) Add(present bool, fragment string, values ...interface{}) *WhereBuilder {
	if !present {
		return wb
	}
	wb.clauses = append(wb.clauses, wb.number(fragment))
	wb.args = append(wb.args, values...)
	return wb
}

// AddClause adds an unconditional fragment with its arguments.
func (wb *WhereBuilder) AddClause(fragment string, values ...interface{}) *WhereBuilder {
	return wb.Add(true, fragment, values...)
}

// AddInt adds fragment bound to *value when value is non-nil.
func (wb *WhereBuilder) AddInt(fragment string, value *int64) *WhereBuilder {
	if value == nil {
		return wb
	}
	return wb.Add(true, fragment, *value)
}

// AddString adds fragment bound to *value when value is non-nil and non-empty.
func (wb *WhereBuilder) AddString(fragment string, value *string) *WhereBuilder {
	if value == nil || *value == "" {
		return wb
	}
	return wb.Add(true, fragment, *value)
}

// AddRange adds "column >= ?" and/or "column <= ?" for the bounds that are set.
// The lower bound is always declared before the upper bound.
func (wb *WhereBuilder) AddRange(column string, start, end *string) *WhereBuilder {
	wb.AddString(column+" >= ?", start)
	wb.AddString(column+" <= ?", end)
	return wb
}

// AddSearch adds a case-insensitive substring match over one or more columns.
// Multiple columns form a single parenthesized fragment, one argument per column.
func (wb *WhereBuilder) AddSearch(term string, columns ...string) *WhereBuilder {
	if term == "" || len(columns) == 0 {
		return wb
	}
	pattern := "%" + term + "%"
	parts := make([]string, len(columns))
	values := make([]interface{}, len(columns))
	for i, col := range columns {
		parts[i] = col + " ILIKE ?"
		values[i] = pattern
	}
	fragment := parts[0]
	if len(parts) > 1 {
		fragment = "(" + strings.Join(parts, " OR ") + ")"
	}
	return wb.Add(true, fragment, values...)
}

// Build returns the fragments joined by AND, or "1=1" when empty, plus a copy
// of the bound arguments.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", wb.Args()
	}
	return strings.Join(wb.clauses, " AND "), wb.Args()
}

// Where returns "WHERE <fragments joined by AND>", or "" when no criteria are present.
func (wb *WhereBuilder) Where() string {
	if len(wb.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(wb.clauses, " AND ")
}

// And returns " AND <fragments>" for appending to an existing WHERE, or "".
func (wb *WhereBuilder) And() string {
	if len(wb.clauses) == 0 {
		return ""
	}
	return " AND " + strings.Join(wb.clauses, " AND ")
}

// Fragments returns a copy of the present fragments in declaration order.
func (wb *WhereBuilder) Fragments() []string {
	out := make([]string, len(wb.clauses))
	copy(out, wb.clauses)
	return out
}

// Args returns a copy of the filter-derived arguments.
func (wb *WhereBuilder) Args() []interface{} {
	out := make([]interface{}, len(wb.args))
	copy(out, wb.args)
	return out
}

// Trailing numbers caller-owned parameters (LIMIT, OFFSET) after the filter
// arguments. It returns their placeholders and the full argument vector
// without modifying the builder, so one builder can serve both the count
// and the page query.
func (wb *WhereBuilder) Trailing(values ...interface{}) ([]string, []interface{}) {
	placeholders := make([]string, len(values))
	for i := range values {
		placeholders[i] = "$" + strconv.Itoa(len(wb.args)+i+1)
	}
	args := make([]interface{}, 0, len(wb.args)+len(values))
	args = append(args, wb.args...)
	args = append(args, values...)
	return placeholders, args
}

// Count returns the number of present fragments.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}

// IsEmpty returns true if no criteria were added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}

// number rewrites each ? in fragment to the next positional parameter.
func (wb *WhereBuilder) number(fragment string) string {
	if !strings.Contains(fragment, "?") {
		return fragment
	}
	var sb strings.Builder
	n := len(wb.args)
	for _, r := range fragment {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/streamerdata/internal/config"
	"github.com/tomtom215/streamerdata/internal/database/query"
	"github.com/tomtom215/streamerdata/internal/metrics"
	"github.com/tomtom215/streamerdata/internal/models"
)

// Scope is the set of rows within which an allocated key must be unique.
// Parent columns narrow the scope, e.g. videos are numbered per channel.
type Scope struct {
	Name   string
	Table  string
	Column string

	parents []string
	values  []int64
}

// Global scopes: the key is unique across the whole table.
var (
	PlatformScope = Scope{Name: "platform", Table: "system_antig.plataforma", Column: "nro"}
	UserScope     = Scope{Name: "user", Table: "system_antig.usuario", Column: "id"}
	ChannelScope  = Scope{Name: "channel", Table: "system_antig.canal", Column: "id"}
)

// VideoScope numbers videos within one channel.
func VideoScope(channelID int64) Scope {
	return Scope{
		Name:    "video",
		Table:   "system_antig.video",
		Column:  "id_video",
		parents: []string{"id_canal"},
		values:  []int64{channelID},
	}
}

// PaymentScope numbers the payments attached to one comment.
func PaymentScope(k models.DonationKey) Scope {
	return Scope{
		Name:    "donation",
		Table:   "system_antig.doacao",
		Column:  "seq_pg",
		parents: []string{"id_video", "id_canal", "id_usuario", "seq_comentario"},
		values:  []int64{k.IDVideo, k.IDCanal, k.IDUsuario, k.SeqComentario},
	}
}

// LockKey names the scope for pg_advisory_xact_lock, e.g. "video:12".
func (s Scope) LockKey() string {
	parts := make([]string, 0, len(s.values)+1)
	parts = append(parts, s.Name)
	for _, v := range s.values {
		parts = append(parts, strconv.FormatInt(v, 10))
	}
	return strings.Join(parts, ":")
}

// nextQuery returns the scoped max-plus-one statement. An empty scope yields 1.
func (s Scope) nextQuery() (string, []interface{}) {
	wb := query.NewWhereBuilder()
	for i, col := range s.parents {
		wb.AddClause(col+" = ?", s.values[i])
	}
	q := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) + 1 FROM %s", s.Column, s.Table)
	if where := wb.Where(); where != "" {
		q += " " + where
	}
	return q, wb.Args()
}

const advisoryLockSQL = "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))"

// IDAllocator hands out max-plus-one keys inside the inserting transaction.
//
// With locking enabled it first takes a transaction-scoped advisory lock
// on the scope, so concurrent creators in one scope queue behind each
// other until the first commits. Without it, two creators can read the
// same maximum and the second insert fails on the primary key.
type IDAllocator struct {
	locked bool
}

// NewIDAllocator returns an allocator for strategy; anything other than
// config.AllocationScan selects the locked strategy.
func NewIDAllocator(strategy string) *IDAllocator {
	return &IDAllocator{locked: strategy != config.AllocationScan}
}

// Locked reports whether the allocator serializes each scope.
func (a *IDAllocator) Locked() bool {
	return a.locked
}

// Next returns the next key in scope. It must run in the transaction
// that inserts the row.
func (a *IDAllocator) Next(ctx context.Context, tx *sql.Tx, s Scope) (int64, error) {
	if a.locked {
		if _, err := tx.ExecContext(ctx, advisoryLockSQL, s.LockKey()); err != nil {
			return 0, fmt.Errorf("lock %s scope: %w", s.Name, err)
		}
	}

	q, args := s.nextQuery()
	var next int64
	if err := tx.QueryRowContext(ctx, q, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocate %s key: %w", s.Name, err)
	}

	metrics.RecordIDAllocation(s.Name)
	return next, nil
}

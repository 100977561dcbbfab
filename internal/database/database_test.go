// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/streamerdata/internal/cache"
	"github.com/tomtom215/streamerdata/internal/config"
)

func TestNew_UnreachableServer(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:           "127.0.0.1",
		Port:           1,
		Name:           "streamerdata",
		User:           "streamerdata",
		Password:       "secret",
		SSLMode:        "disable",
		ConnectTimeout: 2 * time.Second,
	}

	db, err := New(cfg)
	if err == nil {
		_ = db.Close()
		t.Fatal("expected connection error")
	}
	checkErrorIs(t, err, ErrConnection)
}

func TestPing(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing()
		checkNoError(t, db.Ping(context.Background()))
	})

	t.Run("connection lost", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing().WillReturnError(errors.New("connection reset by peer"))
		checkErrorIs(t, db.Ping(context.Background()), ErrConnection)
	})
}

func TestNewFromConn_Defaults(t *testing.T) {
	conn, _ := newMockDB(t)
	db := NewFromConn(conn.Conn(), nil)

	if db.cfg == nil {
		t.Fatal("nil config should be replaced")
	}
	if !db.ids.Locked() {
		t.Error("empty allocation strategy should lock")
	}
	if db.cache != nil {
		t.Error("cache should be disabled without WithCache")
	}
}

func TestWithCache(t *testing.T) {
	store := cache.NewMemoryStore(time.Minute)
	defer store.Close()

	db, _ := newMockDB(t, WithCache(store))
	if db.cache != store {
		t.Error("WithCache did not install the store")
	}
}

func TestClose_NilConn(t *testing.T) {
	db := &DB{}
	checkNoError(t, db.Close())
}

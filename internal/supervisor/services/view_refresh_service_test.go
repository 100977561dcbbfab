// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/streamerdata/internal/database"
	"github.com/tomtom215/streamerdata/internal/logging"
)

type fakeRefresher struct {
	mu    sync.Mutex
	calls int
	errs  []error
}

func (f *fakeRefresher) RefreshAnalyticalViews(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

func (f *fakeRefresher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// syncBuffer guards a bytes.Buffer shared with the service goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var _ Refresher = (*database.DB)(nil)

func TestViewRefreshService_Disabled(t *testing.T) {
	refresher := &fakeRefresher{}
	svc := NewViewRefreshService(refresher, 0)

	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("Serve = %v, want suture.ErrDoNotRestart", err)
	}
	if refresher.count() != 0 {
		t.Errorf("refresh called %d times", refresher.count())
	}
}

func TestViewRefreshService_RefreshesOnEachTick(t *testing.T) {
	refresher := &fakeRefresher{
		errs: []error{
			database.ErrRefreshThrottled,
			errors.New("connection reset"),
		},
	}
	svc := NewViewRefreshService(refresher, 10*time.Millisecond)
	var out syncBuffer
	svc.logger = logging.NewTestLogger(&out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for refresher.count() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not stop")
	}

	if refresher.count() < 3 {
		t.Fatalf("refresh calls = %d, failures must not stop the loop", refresher.count())
	}
	if !strings.Contains(out.String(), "connection reset") {
		t.Errorf("refresh failure not logged: %s", out.String())
	}
}

func TestViewRefreshService_String(t *testing.T) {
	if got := NewViewRefreshService(&fakeRefresher{}, time.Minute).String(); got != "view-refresh" {
		t.Errorf("String() = %q", got)
	}
}

package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type stubPurger struct {
	calls atomic.Int64
	err   error
}

func (s *stubPurger) PurgeIdle(context.Context, time.Duration) (int64, error) {
	s.calls.Add(1)
	if s.err != nil {
		return 0, s.err
	}
	return 2, nil
}

func TestJanitorPurgesOnTick(t *testing.T) {
	store := &stubPurger{}
	j := NewJanitor(store, time.Hour, 10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for store.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("janitor never ticked")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop on cancel")
	}
}

func TestJanitorKeepsRunningAfterError(t *testing.T) {
	store := &stubPurger{err: errors.New("db down")}
	j := NewJanitor(store, time.Hour, 10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	j.Run(ctx)

	if store.calls.Load() < 2 {
		t.Errorf("purge called %d times, want retries after failure", store.calls.Load())
	}
}

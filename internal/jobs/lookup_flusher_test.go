package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingFlusher struct {
	calls atomic.Int32
	err   error
}

func (f *countingFlusher) Flush(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	f.calls.Add(1)
	return f.err
}

func TestLookupFlusher_FlushesOnTickAndStop(t *testing.T) {
	f := &countingFlusher{}
	job := NewLookupFlusher(f, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for f.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("flush calls = %d, want at least 2 ticks", f.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	before := f.calls.Load()
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}
	if f.calls.Load() <= before {
		t.Errorf("no final flush after cancel: calls = %d, before = %d", f.calls.Load(), before)
	}
}

func TestLookupFlusher_ErrorsDoNotStopLoop(t *testing.T) {
	f := &countingFlusher{err: errors.New("db down")}
	job := NewLookupFlusher(f, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	job.Start(ctx)

	if f.calls.Load() < 2 {
		t.Errorf("flush calls = %d, want loop to keep running after errors", f.calls.Load())
	}
}

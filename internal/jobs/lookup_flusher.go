package jobs

import (
	"context"
	"log"
	"time"
)

// Flusher writes buffered data out.
type Flusher interface {
	Flush(ctx context.Context) error
}

// LookupFlusher periodically persists buffered query lookup counts.
type LookupFlusher struct {
	recorder Flusher
	interval time.Duration
	timeout  time.Duration
}

// NewLookupFlusher creates a new lookup flusher.
func NewLookupFlusher(recorder Flusher, interval time.Duration) *LookupFlusher {
	return &LookupFlusher{
		recorder: recorder,
		interval: interval,
		timeout:  10 * time.Second,
	}
}

// Start begins the background flush loop. Counts still buffered when ctx is
// cancelled are flushed once more before returning.
func (f *LookupFlusher) Start(ctx context.Context) {
	log.Printf("Lookup flusher started (interval: %v)", f.interval)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// ctx is already done; give the final flush its own deadline.
			f.flush(context.Background())
			log.Println("Lookup flusher stopped")
			return
		case <-ticker.C:
			f.flush(ctx)
		}
	}
}

func (f *LookupFlusher) flush(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, f.timeout)
	defer cancel()

	if err := f.recorder.Flush(ctx); err != nil {
		log.Printf("Lookup flusher: failed to flush lookups: %v", err)
	}
}

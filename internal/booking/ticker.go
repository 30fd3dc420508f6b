package booking

import (
	"context"
	"sync"
	"time"
)

// MinuteTicker runs fn on one timer owned by the caller. Start it with the
// component's context and Stop it on teardown.
type MinuteTicker struct {
	interval time.Duration
	fn       func(now time.Time)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewMinuteTicker(fn func(now time.Time)) *MinuteTicker {
	return NewTicker(time.Minute, fn)
}

func NewTicker(interval time.Duration, fn func(now time.Time)) *MinuteTicker {
	return &MinuteTicker{
		interval: interval,
		fn:       fn,
	}
}

func (t *MinuteTicker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return ErrTickerRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				t.fn(now)
			}
		}
	}()
	return nil
}

// Stop cancels the timer and waits for an in-progress callback. Safe to call
// more than once.
func (t *MinuteTicker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

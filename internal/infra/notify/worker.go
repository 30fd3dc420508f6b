package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Dispatcher interface {
	DispatchPending(ctx context.Context) (int, error)
}

// Worker polls the dispatcher on a single ticker until stopped.
type Worker struct {
	dispatcher Dispatcher
	interval   time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewWorker(dispatcher Dispatcher, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Worker{dispatcher: dispatcher, interval: interval}
}

// Start is a no-op when the worker is already running.
func (w *Worker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})
	go w.run(ctx, w.done)
}

// Stop cancels the loop and waits for the in-flight batch or ctx, whichever ends first.
func (w *Worker) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := w.dispatcher.DispatchPending(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				slog.Warn("Notification dispatch failed", "error", err.Error())
				continue
			}
			if n > 0 {
				slog.Debug("Notifications delivered", "count", n)
			}
		}
	}
}

//go:build unit

package notify_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"salon-reserve/internal/infra/notify"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewLogNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

	t.Run("logs the reservation fields", func(t *testing.T) {
		buf.Reset()
		err := n.Notify(context.Background(), shared.NotificationJob{
			ID:       uuid.New(),
			Kind:     "email",
			Topic:    "reservation_created",
			Payload:  []byte(`{"reservation_id":"r-1","date":"2025-03-05","time":"10:30","ignored":true}`),
			Attempts: 1,
		})

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, `"msg":"Notification dispatched"`)
		assert.Contains(t, out, `"topic":"reservation_created"`)
		assert.Contains(t, out, `"reservation_id":"r-1"`)
		assert.Contains(t, out, `"time":"10:30"`)
		assert.NotContains(t, out, "ignored")
	})

	t.Run("malformed payload", func(t *testing.T) {
		err := n.Notify(context.Background(), shared.NotificationJob{ID: uuid.New(), Payload: []byte("{")})
		assert.ErrorIs(t, err, notify.ErrMalformedPayload)
	})
}

type countingDispatcher struct {
	calls atomic.Int32
	err   error
}

func (d *countingDispatcher) DispatchPending(context.Context) (int, error) {
	d.calls.Add(1)
	return 1, d.err
}

func TestWorker(t *testing.T) {
	t.Run("polls until stopped", func(t *testing.T) {
		d := &countingDispatcher{}
		w := notify.NewWorker(d, 5*time.Millisecond)

		w.Start(context.Background())
		assert.Eventually(t, func() bool { return d.calls.Load() >= 3 }, time.Second, time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, w.Stop(ctx))

		after := d.calls.Load()
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, after, d.calls.Load())
	})

	t.Run("keeps polling after dispatch errors", func(t *testing.T) {
		d := &countingDispatcher{err: errors.New("db down")}
		w := notify.NewWorker(d, 5*time.Millisecond)

		w.Start(context.Background())
		assert.Eventually(t, func() bool { return d.calls.Load() >= 2 }, time.Second, time.Millisecond)
		require.NoError(t, w.Stop(context.Background()))
	})

	t.Run("start twice and stop twice are safe", func(t *testing.T) {
		w := notify.NewWorker(&countingDispatcher{}, time.Hour)

		w.Start(context.Background())
		w.Start(context.Background())
		require.NoError(t, w.Stop(context.Background()))
		require.NoError(t, w.Stop(context.Background()))
	})
}

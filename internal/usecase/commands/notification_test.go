//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/shared"
	sharedmock "salon-reserve/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatcherHarness struct {
	queue    *sharedmock.MockNotificationQueue
	notifier *sharedmock.MockNotifier
	now      time.Time
	stale    time.Time
	uc       commands.NotificationDispatcher
}

func newDispatcher(t *testing.T) *dispatcherHarness {
	ctrl := gomock.NewController(t)
	now := time.Date(2025, 3, 5, 10, 0, 0, 0, jst)

	cfg := config.NewTestConfig()
	cfg.Notification.BatchSize = 10
	cfg.Notification.MaxAttempts = 3
	cfg.Notification.RetryBackoff = time.Minute
	cfg.Notification.StaleAfter = 5 * time.Minute

	h := &dispatcherHarness{
		queue:    sharedmock.NewMockNotificationQueue(ctrl),
		notifier: sharedmock.NewMockNotifier(ctrl),
		now:      now,
		stale:    now.Add(-5 * time.Minute),
	}
	h.uc = commands.NewNotificationDispatcher(h.queue, h.notifier, clock.NewMockClock(now), cfg)
	return h
}

func job(attempts int32) shared.NotificationJob {
	return shared.NotificationJob{
		ID:       uuid.New(),
		Kind:     "email",
		Topic:    "reservation_created",
		Payload:  []byte(`{"reservation_id":"x"}`),
		Attempts: attempts,
	}
}

func TestNotificationDispatcher_DispatchPending(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers and completes every claimed job", func(t *testing.T) {
		h := newDispatcher(t)
		first, second := job(1), job(1)
		h.queue.EXPECT().Claim(gomock.Any(), h.now, h.stale, int32(10)).Return([]shared.NotificationJob{first, second}, nil)
		h.notifier.EXPECT().Notify(gomock.Any(), first).Return(nil)
		h.notifier.EXPECT().Notify(gomock.Any(), second).Return(nil)
		h.queue.EXPECT().Complete(gomock.Any(), first.ID).Return(nil)
		h.queue.EXPECT().Complete(gomock.Any(), second.ID).Return(nil)

		n, err := h.uc.DispatchPending(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("job reclaimed from a dead worker is delivered like any other", func(t *testing.T) {
		h := newDispatcher(t)
		orphan := job(2)
		orphan.RunAt = h.now.Add(-time.Hour)
		h.queue.EXPECT().Claim(gomock.Any(), h.now, h.now.Add(-5*time.Minute), int32(10)).Return([]shared.NotificationJob{orphan}, nil)
		h.notifier.EXPECT().Notify(gomock.Any(), orphan).Return(nil)
		h.queue.EXPECT().Complete(gomock.Any(), orphan.ID).Return(nil)

		n, err := h.uc.DispatchPending(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("nothing due", func(t *testing.T) {
		h := newDispatcher(t)
		h.queue.EXPECT().Claim(gomock.Any(), h.now, h.stale, int32(10)).Return(nil, nil)

		n, err := h.uc.DispatchPending(ctx)

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("failed delivery is requeued with backoff", func(t *testing.T) {
		testCases := []struct {
			attempts  int32
			wantDelay time.Duration
		}{
			{attempts: 1, wantDelay: time.Minute},
			{attempts: 2, wantDelay: 2 * time.Minute},
		}

		for _, tc := range testCases {
			h := newDispatcher(t)
			j := job(tc.attempts)
			h.queue.EXPECT().Claim(gomock.Any(), h.now, h.stale, int32(10)).Return([]shared.NotificationJob{j}, nil)
			h.notifier.EXPECT().Notify(gomock.Any(), j).Return(errors.New("smtp down"))
			h.queue.EXPECT().Reschedule(gomock.Any(), j.ID, shared.NotificationStatusQueued, h.now.Add(tc.wantDelay), "smtp down").Return(nil)

			n, err := h.uc.DispatchPending(ctx)

			require.NoError(t, err)
			assert.Zero(t, n)
		}
	})

	t.Run("last attempt marks the job failed", func(t *testing.T) {
		h := newDispatcher(t)
		j := job(3)
		h.queue.EXPECT().Claim(gomock.Any(), h.now, h.stale, int32(10)).Return([]shared.NotificationJob{j}, nil)
		h.notifier.EXPECT().Notify(gomock.Any(), j).Return(errors.New("bad payload"))
		h.queue.EXPECT().Reschedule(gomock.Any(), j.ID, shared.NotificationStatusFailed, h.now, "bad payload").Return(nil)

		_, err := h.uc.DispatchPending(ctx)

		require.NoError(t, err)
	})

	t.Run("one failure does not stop the batch", func(t *testing.T) {
		h := newDispatcher(t)
		bad, good := job(1), job(1)
		h.queue.EXPECT().Claim(gomock.Any(), h.now, h.stale, int32(10)).Return([]shared.NotificationJob{bad, good}, nil)
		h.notifier.EXPECT().Notify(gomock.Any(), bad).Return(errors.New("boom"))
		h.queue.EXPECT().Reschedule(gomock.Any(), bad.ID, shared.NotificationStatusQueued, gomock.Any(), "boom").Return(nil)
		h.notifier.EXPECT().Notify(gomock.Any(), good).Return(nil)
		h.queue.EXPECT().Complete(gomock.Any(), good.ID).Return(nil)

		n, err := h.uc.DispatchPending(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("claim failure is transient", func(t *testing.T) {
		h := newDispatcher(t)
		h.queue.EXPECT().Claim(gomock.Any(), h.now, h.stale, int32(10)).Return(nil, errors.New("conn reset"))

		_, err := h.uc.DispatchPending(ctx)

		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}

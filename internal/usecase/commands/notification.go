package commands

import (
	"context"
	"log/slog"
	"time"

	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/shared"
)

const maxNotificationBackoff = time.Hour

// NotificationDispatcher drains due outbox jobs into the Notifier.
type NotificationDispatcher interface {
	DispatchPending(ctx context.Context) (int, error)
}

type notificationDispatcherImpl struct {
	queue    shared.NotificationQueue
	notifier shared.Notifier
	clock    clock.Clock
	cfg      config.NotificationConfig
}

func NewNotificationDispatcher(
	queue shared.NotificationQueue,
	notifier shared.Notifier,
	clk clock.Clock,
	cfg config.Config,
) NotificationDispatcher {
	return &notificationDispatcherImpl{
		queue:    queue,
		notifier: notifier,
		clock:    clk,
		cfg:      cfg.Notification,
	}
}

// DispatchPending returns the number of jobs delivered in this batch. A failed
// delivery is rescheduled and does not fail the batch.
func (uc *notificationDispatcherImpl) DispatchPending(ctx context.Context) (int, error) {
	now := uc.clock.Now()

	jobs, err := uc.queue.Claim(ctx, now, now.Add(-uc.cfg.StaleAfter), uc.cfg.BatchSize)
	if err != nil {
		return 0, errs.Tag(err, ErrDatabaseOperationFailed)
	}

	delivered := 0
	for _, job := range jobs {
		if err := uc.notifier.Notify(ctx, job); err != nil {
			uc.reschedule(ctx, job, now, err)
			continue
		}
		if err := uc.queue.Complete(ctx, job.ID); err != nil {
			slog.Error("Failed to mark notification job done", "job_id", job.ID, "error", err.Error())
			continue
		}
		delivered++
	}

	return delivered, nil
}

func (uc *notificationDispatcherImpl) reschedule(ctx context.Context, job shared.NotificationJob, now time.Time, cause error) {
	status := shared.NotificationStatusQueued
	runAt := now.Add(uc.backoff(job.Attempts))
	if job.Attempts >= uc.cfg.MaxAttempts {
		status = shared.NotificationStatusFailed
		runAt = now
	}

	slog.Warn("Notification delivery failed",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempts", job.Attempts,
		"next_status", status,
		"error", cause.Error())

	if err := uc.queue.Reschedule(ctx, job.ID, status, runAt, cause.Error()); err != nil {
		slog.Error("Failed to reschedule notification job", "job_id", job.ID, "error", err.Error())
	}
}

// backoff doubles per attempt starting from RetryBackoff.
func (uc *notificationDispatcherImpl) backoff(attempts int32) time.Duration {
	d := uc.cfg.RetryBackoff
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= maxNotificationBackoff {
			return maxNotificationBackoff
		}
	}
	return d
}

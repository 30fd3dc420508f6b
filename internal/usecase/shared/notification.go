package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	NotificationStatusQueued = "queued"
	NotificationStatusFailed = "failed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}

// NotificationQueue is the consuming side of the notification_jobs outbox.
// Claim moves due jobs to running and bumps their attempt counter. Jobs still
// running since before staleBefore belong to a dead worker and are claimed again.
type NotificationQueue interface {
	Claim(ctx context.Context, now, staleBefore time.Time, limit int32) ([]NotificationJob, error)
	Complete(ctx context.Context, id uuid.UUID) error
	Reschedule(ctx context.Context, id uuid.UUID, status string, runAt time.Time, lastErr string) error
}

type Notifier interface {
	Notify(ctx context.Context, job NotificationJob) error
}

package repository

import (
	"context"
	"time"

	"salon-reserve/internal/infra"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	CompleteNotificationJob(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
}

// NotificationRepository is both the producer (inside booking transactions)
// and the consumer (dispatcher, outside any transaction) of the outbox.
type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:  shared.NotificationStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) Claim(ctx context.Context, now, staleBefore time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimNotificationJobs(ctx, r.db, sqlc.ClaimNotificationJobsParams{
		Now:         pgtype.Timestamptz{Time: now, Valid: true},
		StaleBefore: pgtype.Timestamptz{Time: staleBefore, Valid: true},
		BatchSize:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			RunAt:    row.RunAt.Time,
			Attempts: row.Attempts,
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) Complete(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.CompleteNotificationJob(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to complete notification job", err)
	}
	return nil
}

func (r *NotificationRepository) Reschedule(ctx context.Context, id uuid.UUID, status string, runAt time.Time, lastErr string) error {
	params := sqlc.RescheduleNotificationJobParams{
		ID:        id,
		Status:    status,
		RunAt:     pgtype.Timestamptz{Time: runAt, Valid: true},
		LastError: pgtype.Text{String: lastErr, Valid: lastErr != ""},
	}

	if err := r.queries.RescheduleNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}

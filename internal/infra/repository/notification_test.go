//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/repository"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/usecase/shared"
	repositorymock "salon-reserve/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_Claim(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	staleBefore := now.Add(-5 * time.Minute)
	params := sqlc.ClaimNotificationJobsParams{
		Now:         pgtype.Timestamptz{Time: now, Valid: true},
		StaleBefore: pgtype.Timestamptz{Time: staleBefore, Valid: true},
		BatchSize:   20,
	}

	t.Run("passes both cutoffs and maps the claimed rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		id := uuid.New()
		mockQueries.EXPECT().ClaimNotificationJobs(ctx, nil, params).Return([]sqlc.NotificationJobs{{
			ID:       id,
			Kind:     "email",
			Topic:    "reservation_created",
			Payload:  []byte(`{}`),
			RunAt:    pgtype.Timestamptz{Time: now.Add(-time.Hour), Valid: true},
			Attempts: 3,
			Status:   "running",
		}}, nil)

		jobs, err := repository.NewNotificationRepository(mockQueries, nil).Claim(ctx, now, staleBefore, 20)

		require.NoError(t, err)
		assert.Equal(t, []shared.NotificationJob{{
			ID:       id,
			Kind:     "email",
			Topic:    "reservation_created",
			Payload:  []byte(`{}`),
			RunAt:    now.Add(-time.Hour),
			Attempts: 3,
		}}, jobs)
	})

	t.Run("database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockQueries.EXPECT().ClaimNotificationJobs(ctx, nil, params).Return(nil, errDBConnectionLost)

		_, err := repository.NewNotificationRepository(mockQueries, nil).Claim(ctx, now, staleBefore, 20)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

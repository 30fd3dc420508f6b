//go:build e2e

package reservation_test

import (
	"context"
	"time"

	"salon-reserve/internal/infra/repository"
	sqlc "salon-reserve/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

func (s *ReservationSuite) TestNotificationClaim() {
	s.Run("jobs abandoned in running are reclaimed after the stale window", func() {
		ctx := context.Background()
		insert := func(status string, updatedAgo time.Duration) uuid.UUID {
			var id uuid.UUID
			err := s.DB.QueryRow(ctx, `
				INSERT INTO notification_jobs (kind, topic, payload, run_at, status, attempts, updated_at)
				VALUES ('email', 'reservation_created', '{}', now() - interval '1 hour', $1, 1, now() - make_interval(secs => $2))
				RETURNING id`, status, updatedAgo.Seconds()).Scan(&id)
			s.Require().NoError(err)
			return id
		}
		queued := insert("queued", 0)
		abandoned := insert("running", 10*time.Minute)
		inFlight := insert("running", 30*time.Second)

		repo := repository.NewNotificationRepository(sqlc.New(), s.DB)
		now := time.Now()
		jobs, err := repo.Claim(ctx, now, now.Add(-5*time.Minute), 10)
		s.Require().NoError(err)

		claimed := map[uuid.UUID]int32{}
		for _, j := range jobs {
			claimed[j.ID] = j.Attempts
		}
		s.Len(claimed, 2, "claimed %v", claimed)
		s.Equal(int32(2), claimed[queued])
		s.Equal(int32(2), claimed[abandoned])
		s.NotContains(claimed, inFlight)

		// the reclaimed job is fresh again, so a second worker leaves it alone
		again, err := repo.Claim(ctx, now, now.Add(-5*time.Minute), 10)
		s.Require().NoError(err)
		s.Empty(again)
	})
}

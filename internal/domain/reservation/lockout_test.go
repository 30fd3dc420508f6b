//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"salon-reserve/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rapid(canceledAt time.Time) reservation.CancellationRecord {
	return reservation.CancellationRecord{CreatedAt: canceledAt.Add(-10 * time.Minute), CanceledAt: canceledAt}
}

func TestLockoutPolicy_Evaluate(t *testing.T) {
	policy := reservation.LockoutPolicy{
		Threshold:   3,
		RapidWithin: time.Hour,
		Window:      24 * time.Hour,
	}
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, jst)

	t.Run("below threshold may create", func(t *testing.T) {
		got := policy.Evaluate([]reservation.CancellationRecord{
			rapid(now.Add(-time.Hour)),
			rapid(now.Add(-2 * time.Hour)),
		}, now)

		assert.True(t, got.CanCreate)
		assert.Nil(t, got.LockedUntil)
	})

	t.Run("threshold reached locks until the oldest counted cancel leaves the window", func(t *testing.T) {
		got := policy.Evaluate([]reservation.CancellationRecord{
			rapid(now.Add(-time.Hour)),
			rapid(now.Add(-5 * time.Hour)),
			rapid(now.Add(-3 * time.Hour)),
		}, now)

		require.False(t, got.CanCreate)
		require.NotNil(t, got.LockedUntil)
		assert.True(t, got.LockedUntil.Equal(now.Add(-5*time.Hour).Add(24*time.Hour)))
	})

	t.Run("with more than threshold the third most recent decides", func(t *testing.T) {
		got := policy.Evaluate([]reservation.CancellationRecord{
			rapid(now.Add(-20 * time.Hour)),
			rapid(now.Add(-time.Hour)),
			rapid(now.Add(-2 * time.Hour)),
			rapid(now.Add(-3 * time.Hour)),
		}, now)

		require.NotNil(t, got.LockedUntil)
		assert.True(t, got.LockedUntil.Equal(now.Add(21*time.Hour)))
	})

	t.Run("slow cancellations are not counted", func(t *testing.T) {
		slow := reservation.CancellationRecord{
			CreatedAt:  now.Add(-5 * time.Hour),
			CanceledAt: now.Add(-time.Hour),
		}
		got := policy.Evaluate([]reservation.CancellationRecord{
			slow,
			rapid(now.Add(-2 * time.Hour)),
			rapid(now.Add(-3 * time.Hour)),
		}, now)

		assert.True(t, got.CanCreate)
	})

	t.Run("cancellations outside the window are not counted", func(t *testing.T) {
		got := policy.Evaluate([]reservation.CancellationRecord{
			rapid(now.Add(-24 * time.Hour)),
			rapid(now.Add(-2 * time.Hour)),
			rapid(now.Add(-3 * time.Hour)),
		}, now)

		assert.True(t, got.CanCreate)
	})

	t.Run("disabled policy never locks", func(t *testing.T) {
		got := reservation.LockoutPolicy{}.Evaluate([]reservation.CancellationRecord{
			rapid(now.Add(-time.Minute)),
		}, now)

		assert.True(t, got.CanCreate)
	})
}

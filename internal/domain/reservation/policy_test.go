//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"salon-reserve/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

var jst = time.FixedZone("JST", 9*60*60)

func TestIsCancelable(t *testing.T) {
	startsAt := time.Date(2025, 1, 10, 10, 0, 0, 0, jst)

	tests := []struct {
		name   string
		status reservation.Status
		now    time.Time
		want   bool
	}{
		{"one second before the deadline", reservation.StatusReserved, time.Date(2025, 1, 9, 9, 59, 59, 0, jst), true},
		{"exactly at the deadline", reservation.StatusReserved, time.Date(2025, 1, 9, 10, 0, 0, 0, jst), false},
		{"after the deadline", reservation.StatusReserved, time.Date(2025, 1, 10, 9, 0, 0, 0, jst), false},
		{"completed", reservation.StatusCompleted, time.Date(2025, 1, 1, 0, 0, 0, 0, jst), false},
		{"canceled", reservation.StatusCanceled, time.Date(2025, 1, 1, 0, 0, 0, 0, jst), false},
		{"noshow", reservation.StatusNoShow, time.Date(2025, 1, 1, 0, 0, 0, 0, jst), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.IsCancelable(tt.status, startsAt, reservation.DefaultCancelDeadlineMinutes, tt.now))
		})
	}

	t.Run("zero deadline allows cancel until the start", func(t *testing.T) {
		assert.True(t, reservation.IsCancelable(reservation.StatusReserved, startsAt, 0, startsAt.Add(-time.Second)))
		assert.False(t, reservation.IsCancelable(reservation.StatusReserved, startsAt, 0, startsAt))
	})

	t.Run("deadline compares instants across zones", func(t *testing.T) {
		now := time.Date(2025, 1, 9, 0, 59, 59, 0, time.UTC) // 09:59:59 JST
		assert.True(t, reservation.IsCancelable(reservation.StatusReserved, startsAt, 1440, now))
	})
}

func TestDeadlineOrDefault(t *testing.T) {
	zero, custom, negative := 0, 90, -5

	assert.Equal(t, 1440, reservation.DeadlineOrDefault(nil))
	assert.Equal(t, 0, reservation.DeadlineOrDefault(&zero))
	assert.Equal(t, 90, reservation.DeadlineOrDefault(&custom))
	assert.Equal(t, 1440, reservation.DeadlineOrDefault(&negative))
}

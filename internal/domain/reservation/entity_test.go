//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"salon-reserve/internal/domain/reservation"
	"salon-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, 3, 5, 10, 0, 0, 0, jst)

	t.Run("starts reserved", func(t *testing.T) {
		b := builder.NewReservationBuilder().WithSlot("2025-03-05", "10:30")

		r, err := reservation.NewReservation(b.Booking(), b.Price, 1440, now)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, reservation.StatusReserved, r.Status())
		assert.Equal(t, 1440, r.DeadlineMinutes())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("rejects a slot that already started", func(t *testing.T) {
		b := builder.NewReservationBuilder().WithSlot("2025-03-05", "10:00")

		_, err := reservation.NewReservation(b.Booking(), b.Price, 1440, now)

		assert.ErrorIs(t, err, reservation.ErrSlotInPast)
	})

	t.Run("requires every participant", func(t *testing.T) {
		b := builder.NewReservationBuilder().WithSlot("2025-03-06", "10:00")
		b.OperatorID = uuid.Nil

		_, err := reservation.NewReservation(b.Booking(), b.Price, 1440, now)

		assert.ErrorIs(t, err, reservation.ErrMissingParticipants)
	})

	t.Run("rejects a negative deadline", func(t *testing.T) {
		b := builder.NewReservationBuilder().WithSlot("2025-03-06", "10:00")

		_, err := reservation.NewReservation(b.Booking(), b.Price, -1, now)

		assert.ErrorIs(t, err, reservation.ErrInvalidDeadline)
	})
}

func TestNewOtherRequests(t *testing.T) {
	_, err := reservation.NewOtherRequests(string(make([]rune, 200)))
	assert.NoError(t, err)

	_, err = reservation.NewOtherRequests(string(make([]rune, 201)))
	assert.ErrorIs(t, err, reservation.ErrOtherRequestsTooLong)
}

func TestReservation_Transitions(t *testing.T) {
	now := time.Date(2025, 1, 9, 9, 0, 0, 0, jst)
	reserved := func() *reservation.Reservation {
		return builder.NewReservationBuilder().WithSlot("2025-01-10", "10:00").BuildDomain()
	}

	t.Run("customer cancel before the deadline", func(t *testing.T) {
		r := reserved()

		require.NoError(t, r.CancelByCustomer(now))

		assert.Equal(t, reservation.StatusCanceled, r.Status())
		require.NotNil(t, r.CanceledBy())
		assert.Equal(t, reservation.ActorCustomer, *r.CanceledBy())
		assert.Equal(t, now, *r.CanceledAt())
		assert.True(t, r.FreesSlot())
	})

	t.Run("customer cancel after the deadline", func(t *testing.T) {
		r := reserved()

		err := r.CancelByCustomer(time.Date(2025, 1, 9, 10, 0, 0, 0, jst))

		assert.ErrorIs(t, err, reservation.ErrDeadlinePassed)
		assert.Equal(t, reservation.StatusReserved, r.Status())
	})

	t.Run("operator cancel ignores the deadline", func(t *testing.T) {
		r := reserved()

		require.NoError(t, r.CancelByOperator(time.Date(2025, 1, 10, 9, 55, 0, 0, jst)))

		assert.Equal(t, reservation.ActorOperator, *r.CanceledBy())
	})

	t.Run("complete and noshow keep the slot", func(t *testing.T) {
		r := reserved()
		require.NoError(t, r.Complete(now))
		assert.Equal(t, reservation.StatusCompleted, r.Status())
		assert.False(t, r.FreesSlot())

		r = reserved()
		require.NoError(t, r.MarkNoShow(now))
		assert.Equal(t, reservation.StatusNoShow, r.Status())
	})

	t.Run("terminal statuses reject further transitions", func(t *testing.T) {
		for _, status := range []reservation.Status{reservation.StatusCompleted, reservation.StatusCanceled, reservation.StatusNoShow} {
			r := builder.NewReservationBuilder().WithSlot("2025-01-10", "10:00").WithStatus(status).BuildDomain()

			assert.ErrorIs(t, r.CancelByCustomer(now), reservation.ErrNotReserved, status.String())
			assert.ErrorIs(t, r.CancelByOperator(now), reservation.ErrNotReserved, status.String())
			assert.ErrorIs(t, r.Complete(now), reservation.ErrNotReserved, status.String())
			assert.ErrorIs(t, r.MarkNoShow(now), reservation.ErrNotReserved, status.String())
		}
	})

	t.Run("ownership", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildDomain()

		assert.NoError(t, r.EnsureOwnedBy(b.CustomerID))
		assert.ErrorIs(t, r.EnsureOwnedBy(uuid.New()), reservation.ErrNotOwner)
	})

	t.Run("stored reservation without deadline uses the default", func(t *testing.T) {
		assert.Equal(t, 1440, reserved().DeadlineMinutes())
		assert.Equal(t, 30, builder.NewReservationBuilder().WithDeadline(30).BuildDomain().DeadlineMinutes())
	})
}

func TestParseStatus(t *testing.T) {
	s, err := reservation.ParseStatus("noshow")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusNoShow, s)

	_, err = reservation.ParseStatus("no_show")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

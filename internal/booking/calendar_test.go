//go:build unit

package booking_test

import (
	"context"
	"errors"
	"testing"

	"salon-reserve/internal/booking"
	"salon-reserve/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendar_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("starts without operator and rejects selection", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))

		assert.Equal(t, booking.StateNoOperator, f.calendar.State())
		assert.ErrorIs(t, f.calendar.SelectDate(slot.MustDate("2025-03-05")), booking.ErrNoOperator)
		assert.False(t, f.calendar.CanConfirm())
	})

	t.Run("operator picked from the salon directory", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))
		salonID := uuid.New()
		f.backend.AddOperator(salonID, booking.Operator{ID: f.operatorID, Name: "Aoi", Role: "staff"})
		f.addSlots("2025-03-05", "10:00")

		ops, err := f.backend.Operators(ctx, salonID)
		require.NoError(t, err)
		require.Len(t, ops, 1)
		require.NoError(t, f.calendar.SelectOperator(ctx, ops[0].ID))

		assert.Equal(t, booking.StateReady, f.calendar.State())
		assert.Equal(t, 1, f.backend.Calls().Operators)
	})

	t.Run("selecting an operator fetches and becomes ready", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))
		f.addSlots("2025-03-05", "10:00")

		require.NoError(t, f.calendar.SelectOperator(ctx, f.operatorID))

		assert.Equal(t, booking.StateReady, f.calendar.State())
		assert.Equal(t, []slot.Date{slot.MustDate("2025-03-05")}, f.calendar.Dates())
		assert.NoError(t, f.calendar.ErrorState())
	})

	t.Run("date then time selection enables confirm", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))
		f.addSlots("2025-03-05", "10:00", "10:30", "14:00")
		require.NoError(t, f.calendar.SelectOperator(ctx, f.operatorID))

		require.NoError(t, f.calendar.SelectDate(slot.MustDate("2025-03-05")))
		assert.Equal(t, booking.StateDateSelected, f.calendar.State())
		assert.Equal(t, []string{"10:00", "10:30", "14:00"}, timesOf(f.calendar.Times()))
		assert.False(t, f.calendar.CanConfirm())

		require.NoError(t, f.calendar.SelectTime(slot.MustTime("10:30")))
		assert.Equal(t, booking.StateTimeSelected, f.calendar.State())
		assert.True(t, f.calendar.CanConfirm())

		sel, ok := f.calendar.Selection()
		require.True(t, ok)
		assert.Equal(t, booking.Selection{
			OperatorID: f.operatorID,
			Date:       slot.MustDate("2025-03-05"),
			Time:       slot.MustTime("10:30"),
		}, sel)
	})

	t.Run("picking another date clears the time", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))
		f.addSlots("2025-03-05", "10:00")
		f.addSlots("2025-03-06", "11:00")
		f.selectSlot(t, "2025-03-05", "10:00")

		require.NoError(t, f.calendar.SelectDate(slot.MustDate("2025-03-06")))
		assert.Equal(t, booking.StateDateSelected, f.calendar.State())
		assert.False(t, f.calendar.CanConfirm())
	})

	t.Run("changing operator drops the selection", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))
		f.addSlots("2025-03-05", "10:00")
		f.selectSlot(t, "2025-03-05", "10:00")

		require.NoError(t, f.calendar.SelectOperator(ctx, uuid.New()))
		assert.Equal(t, booking.StateReady, f.calendar.State())
		assert.Empty(t, f.calendar.Dates())

		require.NoError(t, f.calendar.SelectOperator(ctx, uuid.Nil))
		assert.Equal(t, booking.StateNoOperator, f.calendar.State())
	})

	t.Run("clear selection returns to ready", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))
		f.addSlots("2025-03-05", "10:00")
		f.selectSlot(t, "2025-03-05", "10:00")

		f.calendar.ClearSelection()
		assert.Equal(t, booking.StateReady, f.calendar.State())
		assert.Nil(t, f.calendar.Times())
	})
}

func TestCalendar_Selectability(t *testing.T) {
	ctx := context.Background()

	t.Run("dates without open slots and past dates are blocked", func(t *testing.T) {
		f := newFixture(t, at("2025-03-10T09:00:00"))
		f.addSlots("2025-03-05", "10:00")
		f.addSlots("2025-03-12", "10:00")
		require.NoError(t, f.calendar.SelectOperator(ctx, f.operatorID))

		assert.False(t, f.calendar.IsDateSelectable(slot.MustDate("2025-03-05")))
		assert.False(t, f.calendar.IsDateSelectable(slot.MustDate("2025-03-11")))
		assert.True(t, f.calendar.IsDateSelectable(slot.MustDate("2025-03-12")))

		assert.ErrorIs(t, f.calendar.SelectDate(slot.MustDate("2025-03-11")), booking.ErrDateUnavailable)
		assert.Equal(t, booking.StateReady, f.calendar.State())
	})

	t.Run("unknown time is rejected", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))
		f.addSlots("2025-03-05", "10:00")
		require.NoError(t, f.calendar.SelectOperator(ctx, f.operatorID))
		require.NoError(t, f.calendar.SelectDate(slot.MustDate("2025-03-05")))

		err := f.calendar.SelectTime(slot.MustTime("10:15"))
		assert.ErrorIs(t, err, booking.ErrTimeUnavailable)
		assert.Equal(t, booking.KindValidation, booking.Classify(err))
	})

	t.Run("time without date is rejected", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))
		f.addSlots("2025-03-05", "10:00")
		require.NoError(t, f.calendar.SelectOperator(ctx, f.operatorID))

		assert.ErrorIs(t, f.calendar.SelectTime(slot.MustTime("10:00")), booking.ErrDateUnavailable)
	})
}

func TestCalendar_Revalidation(t *testing.T) {
	ctx := context.Background()

	t.Run("changing month clears a selection the new month lacks", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))
		f.addSlots("2025-03-05", "10:00")
		f.addSlots("2025-04-02", "10:00")
		f.selectSlot(t, "2025-03-05", "10:00")

		require.NoError(t, f.calendar.ChangeMonth(ctx, slot.MustDate("2025-04-01")))

		assert.Equal(t, booking.StateReady, f.calendar.State())
		assert.Equal(t, slot.MustDate("2025-04-01"), f.calendar.Month())
		assert.Equal(t, f.operatorID, f.calendar.OperatorID())
		assert.False(t, f.calendar.CanConfirm())
	})

	t.Run("refresh keeps a selection that is still open", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))
		f.addSlots("2025-03-05", "10:00", "11:00")
		f.selectSlot(t, "2025-03-05", "10:00")

		require.NoError(t, f.calendar.Refresh(ctx))
		assert.Equal(t, booking.StateTimeSelected, f.calendar.State())
		assert.True(t, f.calendar.CanConfirm())
	})

	t.Run("refresh drops a time booked by someone else", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))
		f.addSlots("2025-03-05", "10:00", "11:00")
		f.selectSlot(t, "2025-03-05", "10:00")

		_, err := f.backend.CreateReservation(ctx, uuid.New(), booking.CreateRequest{
			OperatorID: f.operatorID,
			MenuID:     f.menuID,
			Date:       slot.MustDate("2025-03-05"),
			Time:       slot.MustTime("10:00"),
		})
		require.NoError(t, err)

		require.NoError(t, f.calendar.Refresh(ctx))
		assert.Equal(t, booking.StateDateSelected, f.calendar.State())
		assert.Equal(t, []string{"11:00"}, timesOf(f.calendar.Times()))
	})

	t.Run("a selected time that passes stops being confirmable", func(t *testing.T) {
		f := newFixture(t, at("2025-03-05T09:00:00"))
		f.addSlots("2025-03-05", "10:00", "11:00")
		f.selectSlot(t, "2025-03-05", "10:00")

		f.clock.Set(at("2025-03-05T10:00:00"))
		assert.False(t, f.calendar.CanConfirm())

		f.calendar.Tick()
		assert.Equal(t, booking.StateDateSelected, f.calendar.State())
		assert.Equal(t, []string{"11:00"}, timesOf(f.calendar.Times()))
	})

	t.Run("fetch failure is exposed as error state", func(t *testing.T) {
		f := newFixture(t, at("2025-03-01T09:00:00"))
		f.addSlots("2025-03-05", "10:00")
		f.backend.FailNext = errors.New("backend down")

		err := f.calendar.SelectOperator(ctx, f.operatorID)
		require.Error(t, err)
		assert.Equal(t, booking.StateReady, f.calendar.State())
		assert.Empty(t, f.calendar.Dates())
		assert.Equal(t, booking.KindTransient, booking.Classify(f.calendar.ErrorState()))

		require.NoError(t, f.calendar.Refresh(ctx))
		assert.NoError(t, f.calendar.ErrorState())
		assert.NotEmpty(t, f.calendar.Dates())
	})
}

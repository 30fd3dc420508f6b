//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/tests/common/builder"
	queriesmock "salon-reserve/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reservationDeps struct {
	repo   *queriesmock.MockReservationReadStore
	salons *queriesmock.MockSalonReadStore
	clock  *clock.MockClock
	uc     queries.ReservationQueries
}

func newReservationDeps(t *testing.T, now time.Time) *reservationDeps {
	ctrl := gomock.NewController(t)
	d := &reservationDeps{
		repo:   queriesmock.NewMockReservationReadStore(ctrl),
		salons: queriesmock.NewMockSalonReadStore(ctrl),
		clock:  clock.NewMockClock(now),
	}
	d.uc = queries.NewReservationQueries(d.repo, d.salons, d.clock, config.NewTestConfig())
	return d
}

func salonView(id uuid.UUID) *queries.SalonView {
	return &queries.SalonView{ID: id, Name: "Salon", Timezone: "Asia/Tokyo", CancellationDeadlineMinutes: 1440}
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 9, 9, 59, 59, 0, jst)

	t.Run("owner sees the cancelable flag", func(t *testing.T) {
		d := newReservationDeps(t, now)
		view := builder.NewReservationBuilder().WithSlot("2025-01-10", "10:00").BuildView()
		view.IsCancelable = false
		d.repo.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		d.salons.EXPECT().FindByID(ctx, view.SalonID).Return(salonView(view.SalonID), nil)

		got, err := d.uc.GetByID(ctx, view.CustomerID, view.ID)

		require.NoError(t, err)
		assert.True(t, got.IsCancelable)
	})

	t.Run("deadline reached", func(t *testing.T) {
		d := newReservationDeps(t, now.Add(time.Second))
		view := builder.NewReservationBuilder().WithSlot("2025-01-10", "10:00").BuildView()
		d.repo.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		d.salons.EXPECT().FindByID(ctx, view.SalonID).Return(salonView(view.SalonID), nil)

		got, err := d.uc.GetByID(ctx, view.CustomerID, view.ID)

		require.NoError(t, err)
		assert.False(t, got.IsCancelable)
	})

	t.Run("other customer", func(t *testing.T) {
		d := newReservationDeps(t, now)
		view := builder.NewReservationBuilder().BuildView()
		d.repo.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		_, err := d.uc.GetByID(ctx, uuid.New(), view.ID)

		assert.ErrorIs(t, err, queries.ErrReservationAccess)
	})

	t.Run("missing", func(t *testing.T) {
		d := newReservationDeps(t, now)
		id := uuid.New()
		d.repo.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := d.uc.GetByID(ctx, uuid.New(), id)

		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})

	t.Run("other salon reads as missing", func(t *testing.T) {
		d := newReservationDeps(t, now)
		view := builder.NewReservationBuilder().BuildView()
		d.repo.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		_, err := d.uc.GetForSalon(ctx, uuid.New(), view.ID)

		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})
}

func TestReservationQueries_History(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 5, 10, 15, 0, 0, jst)
	customerID, salonID := uuid.New(), uuid.New()
	today, clockNow := slot.MustDate("2025-03-05"), slot.MustTime("10:15")

	past := func(n int) []*queries.ReservationView {
		views := make([]*queries.ReservationView, n)
		for i := range views {
			views[i] = builder.NewReservationBuilder().
				WithSlot(today.AddDays(-(i + 1)).String(), "10:00").
				WithStatus(reservation.StatusCompleted).
				BuildView()
		}
		return views
	}

	t.Run("first page with a next cursor", func(t *testing.T) {
		d := newReservationDeps(t, now)
		upcoming := []*queries.ReservationView{builder.NewReservationBuilder().WithSlot("2025-03-07", "10:00").BuildView()}
		rows := past(3)
		d.salons.EXPECT().FindByID(ctx, salonID).Return(salonView(salonID), nil)
		d.repo.EXPECT().ListUpcomingByCustomer(ctx, customerID, today, clockNow).Return(upcoming, nil)
		d.repo.EXPECT().ListPastByCustomerFirstPage(ctx, customerID, today, clockNow, int32(3)).Return(rows, nil)

		got, err := d.uc.History(ctx, customerID, salonID, nil, 2)

		require.NoError(t, err)
		assert.Len(t, got.Upcoming, 1)
		assert.True(t, got.Upcoming[0].IsCancelable)
		assert.Len(t, got.Past, 2)
		assert.False(t, got.Past[0].IsCancelable)
		require.NotNil(t, got.Next)
		assert.NotEmpty(t, got.Next.After)
	})

	t.Run("next cursor resumes after the last row", func(t *testing.T) {
		d := newReservationDeps(t, now)
		rows := past(3)
		d.salons.EXPECT().FindByID(ctx, salonID).Return(salonView(salonID), nil).Times(2)
		d.repo.EXPECT().ListUpcomingByCustomer(ctx, customerID, today, clockNow).Return(nil, nil).Times(2)
		d.repo.EXPECT().ListPastByCustomerFirstPage(ctx, customerID, today, clockNow, int32(3)).Return(rows, nil)

		first, err := d.uc.History(ctx, customerID, salonID, nil, 2)
		require.NoError(t, err)

		last := rows[1]
		d.repo.EXPECT().
			ListPastByCustomerKeyset(ctx, customerID, today, clockNow, slot.Occurrence{Date: last.Date, Time: last.Time}, last.ID, int32(3)).
			Return(rows[2:], nil)

		second, err := d.uc.History(ctx, customerID, salonID, first.Next, 2)

		require.NoError(t, err)
		assert.Len(t, second.Past, 1)
		assert.Nil(t, second.Next)
	})

	t.Run("default limit", func(t *testing.T) {
		d := newReservationDeps(t, now)
		d.salons.EXPECT().FindByID(ctx, salonID).Return(salonView(salonID), nil)
		d.repo.EXPECT().ListUpcomingByCustomer(ctx, customerID, today, clockNow).Return(nil, nil)
		d.repo.EXPECT().ListPastByCustomerFirstPage(ctx, customerID, today, clockNow, int32(11)).Return(nil, nil)

		got, err := d.uc.History(ctx, customerID, salonID, nil, 0)

		require.NoError(t, err)
		assert.Nil(t, got.Next)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		d := newReservationDeps(t, now)
		d.salons.EXPECT().FindByID(ctx, salonID).Return(salonView(salonID), nil)
		d.repo.EXPECT().ListUpcomingByCustomer(ctx, customerID, today, clockNow).Return(nil, nil)

		_, err := d.uc.History(ctx, customerID, salonID, &queries.Cursor{After: "not-a-cursor"}, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestReservationQueries_Eligibility(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, jst)
	customerID := uuid.New()
	rapid := func(ago time.Duration) reservation.CancellationRecord {
		at := now.Add(-ago)
		return reservation.CancellationRecord{CreatedAt: at.Add(-5 * time.Minute), CanceledAt: at}
	}

	t.Run("allowed", func(t *testing.T) {
		d := newReservationDeps(t, now)
		d.repo.EXPECT().CancellationsSince(ctx, customerID, now.Add(-24*time.Hour)).
			Return([]reservation.CancellationRecord{rapid(time.Hour)}, nil)

		got, err := d.uc.Eligibility(ctx, customerID)

		require.NoError(t, err)
		assert.True(t, got.CanCreate)
		assert.Nil(t, got.LockedUntil)
	})

	t.Run("locked after three rapid cancellations", func(t *testing.T) {
		d := newReservationDeps(t, now)
		d.repo.EXPECT().CancellationsSince(ctx, customerID, gomock.Any()).
			Return([]reservation.CancellationRecord{rapid(time.Hour), rapid(2 * time.Hour), rapid(3 * time.Hour)}, nil)

		got, err := d.uc.Eligibility(ctx, customerID)

		require.NoError(t, err)
		assert.False(t, got.CanCreate)
		require.NotNil(t, got.LockedUntil)
		assert.True(t, got.LockedUntil.Equal(now.Add(21*time.Hour)))
	})
}

//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/usecase/queries"
	queriesmock "salon-reserve/tests/mock/queries"
	sharedmock "salon-reserve/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var jst = time.FixedZone("JST", 9*60*60)

type slotDeps struct {
	slots     *queriesmock.MockSlotReadStore
	operators *queriesmock.MockOperatorReadStore
	salons    *queriesmock.MockSalonReadStore
	cache     *sharedmock.MockAvailabilityCache
	metrics   *sharedmock.MockBookingMetrics
	clock     *clock.MockClock
	uc        queries.SlotQueries
}

func newSlotDeps(t *testing.T) *slotDeps {
	ctrl := gomock.NewController(t)
	d := &slotDeps{
		slots:     queriesmock.NewMockSlotReadStore(ctrl),
		operators: queriesmock.NewMockOperatorReadStore(ctrl),
		salons:    queriesmock.NewMockSalonReadStore(ctrl),
		cache:     sharedmock.NewMockAvailabilityCache(ctrl),
		metrics:   sharedmock.NewMockBookingMetrics(ctrl),
		clock:     clock.NewMockClock(time.Date(2025, 3, 5, 10, 15, 0, 0, jst)),
	}
	d.uc = queries.NewSlotQueries(d.slots, d.operators, d.salons, d.cache, d.metrics, d.clock, config.NewTestConfig())
	return d
}

func occ(date, tm string) slot.Occurrence {
	return slot.Occurrence{Date: slot.MustDate(date), Time: slot.MustTime(tm)}
}

func TestSlotQueries_Availability(t *testing.T) {
	ctx := context.Background()
	operatorID, salonID := uuid.New(), uuid.New()
	month := slot.MustDate("2025-03-01")
	activeOperator := &queries.OperatorView{ID: operatorID, SalonID: salonID, IsActive: true}
	salon := &queries.SalonView{ID: salonID, Timezone: "Asia/Tokyo", CancellationDeadlineMinutes: 1440}
	open := []slot.Occurrence{
		occ("2025-03-04", "11:00"),
		occ("2025-03-05", "10:00"),
		occ("2025-03-05", "10:30"),
		occ("2025-03-07", "09:00"),
	}

	t.Run("cache miss loads the month and derives against the clock", func(t *testing.T) {
		d := newSlotDeps(t)
		d.operators.EXPECT().FindOperatorByID(ctx, operatorID).Return(activeOperator, nil)
		d.salons.EXPECT().FindByID(ctx, salonID).Return(salon, nil)
		d.cache.EXPECT().GetOpenSlots(ctx, operatorID, month).Return(nil, false)
		d.metrics.EXPECT().AvailabilityCacheLookup(false)
		d.slots.EXPECT().OpenOccurrences(ctx, operatorID, month, slot.MustDate("2025-03-31")).Return(open, nil)
		d.cache.EXPECT().SetOpenSlots(ctx, operatorID, month, open)

		snap, err := d.uc.Availability(ctx, operatorID, slot.MustDate("2025-03-20"))

		require.NoError(t, err)
		assert.Equal(t, []slot.Date{slot.MustDate("2025-03-05"), slot.MustDate("2025-03-07")}, snap.Dates())
		assert.Equal(t, []slot.TimeOfDay{slot.MustTime("10:30")}, snap.Times(slot.MustDate("2025-03-05")))
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		d := newSlotDeps(t)
		d.operators.EXPECT().FindOperatorByID(ctx, operatorID).Return(activeOperator, nil)
		d.salons.EXPECT().FindByID(ctx, salonID).Return(salon, nil)
		d.cache.EXPECT().GetOpenSlots(ctx, operatorID, month).Return(open, true)
		d.metrics.EXPECT().AvailabilityCacheLookup(true)

		snap, err := d.uc.Availability(ctx, operatorID, month)

		require.NoError(t, err)
		assert.True(t, snap.Contains(slot.MustDate("2025-03-07"), slot.MustTime("09:00")))
	})

	t.Run("inactive operator is reported missing", func(t *testing.T) {
		d := newSlotDeps(t)
		d.operators.EXPECT().FindOperatorByID(ctx, operatorID).Return(&queries.OperatorView{ID: operatorID, IsActive: false}, nil)

		snap, err := d.uc.Availability(ctx, operatorID, month)

		assert.ErrorIs(t, err, queries.ErrOperatorNotFound)
		assert.True(t, snap.IsEmpty())
	})

	t.Run("unknown operator", func(t *testing.T) {
		d := newSlotDeps(t)
		d.operators.EXPECT().FindOperatorByID(ctx, operatorID).Return(nil, infra.WrapRepoErr("operator not found", nil, infra.KindNotFound))

		_, err := d.uc.Availability(ctx, operatorID, month)

		assert.ErrorIs(t, err, queries.ErrOperatorNotFound)
	})

	t.Run("store failure is not cached", func(t *testing.T) {
		d := newSlotDeps(t)
		storeErr := errors.New("connection reset")
		d.operators.EXPECT().FindOperatorByID(ctx, operatorID).Return(activeOperator, nil)
		d.salons.EXPECT().FindByID(ctx, salonID).Return(salon, nil)
		d.cache.EXPECT().GetOpenSlots(ctx, operatorID, month).Return(nil, false)
		d.metrics.EXPECT().AvailabilityCacheLookup(false)
		d.slots.EXPECT().OpenOccurrences(ctx, operatorID, month, gomock.Any()).Return(nil, storeErr)

		_, err := d.uc.Availability(ctx, operatorID, month)

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestSlotQueries_Schedule(t *testing.T) {
	ctx := context.Background()
	operatorID := uuid.New()

	t.Run("lists the window", func(t *testing.T) {
		d := newSlotDeps(t)
		from, to := slot.MustDate("2025-03-01"), slot.MustDate("2025-03-31")
		views := []*queries.SlotView{{OperatorID: operatorID, Date: from, Time: slot.MustTime("10:00"), IsBooked: true}}
		d.operators.EXPECT().FindOperatorByID(ctx, operatorID).Return(&queries.OperatorView{ID: operatorID, IsActive: true}, nil)
		d.slots.EXPECT().List(ctx, queries.SlotFilter{OperatorID: operatorID, From: from, To: to}).Return(views, nil)

		got, err := d.uc.Schedule(ctx, operatorID, from, to)

		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("open slots filter", func(t *testing.T) {
		d := newSlotDeps(t)
		from, to := slot.MustDate("2025-03-01"), slot.MustDate("2025-03-02")
		d.operators.EXPECT().FindOperatorByID(ctx, operatorID).Return(&queries.OperatorView{ID: operatorID, IsActive: true}, nil)
		d.slots.EXPECT().List(ctx, queries.SlotFilter{OperatorID: operatorID, From: from, To: to, OnlyOpen: true}).Return(nil, nil)

		_, err := d.uc.OpenSlots(ctx, operatorID, from, to)

		require.NoError(t, err)
	})

	t.Run("inverted range", func(t *testing.T) {
		d := newSlotDeps(t)

		_, err := d.uc.Schedule(ctx, operatorID, slot.MustDate("2025-03-31"), slot.MustDate("2025-03-01"))

		assert.ErrorIs(t, err, queries.ErrInvalidSlotRange)
	})

	t.Run("range too long", func(t *testing.T) {
		d := newSlotDeps(t)

		_, err := d.uc.Schedule(ctx, operatorID, slot.MustDate("2025-03-01"), slot.MustDate("2025-05-02"))

		assert.ErrorIs(t, err, queries.ErrInvalidSlotRange)
	})
}

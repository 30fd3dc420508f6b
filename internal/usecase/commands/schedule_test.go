//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/shared"
	"salon-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newScheduleCommands(t *testing.T) (*harness, commands.ScheduleCommands) {
	h := newHarness(t, time.Date(2025, 3, 5, 10, 0, 0, 0, jst))
	return h, commands.NewScheduleCommands(h.uow, h.cache, h.metrics, h.clock, config.NewTestConfig())
}

func expectOperator(h *harness, operatorID, salonID uuid.UUID, active bool) {
	h.reads.EXPECT().OperatorByID(gomock.Any(), operatorID).
		Return(&shared.OperatorSnapshot{ID: operatorID, SalonID: salonID, Role: "staff", IsActive: active}, nil)
}

func TestScheduleCommands_BulkCreate(t *testing.T) {
	ctx := context.Background()
	operatorID, salonID := uuid.New(), uuid.New()

	t.Run("generates the rest of the current month", func(t *testing.T) {
		h, uc := newScheduleCommands(t)
		expectOperator(h, operatorID, salonID, true)
		h.reads.EXPECT().SalonByID(gomock.Any(), salonID).Return(&shared.SalonSnapshot{ID: salonID, Location: jst}, nil)
		h.slots.EXPECT().InsertMany(gomock.Any(), nil, salonID, operatorID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, occ []slot.Occurrence) (int64, error) {
				// Mon/Wed/Fri from 03-05 through 03-31, four times a day
				require.Len(t, occ, 48)
				assert.Equal(t, slot.Occurrence{Date: slot.MustDate("2025-03-05"), Time: slot.MustTime("10:00")}, occ[0])
				assert.Equal(t, slot.Occurrence{Date: slot.MustDate("2025-03-31"), Time: slot.MustTime("11:30")}, occ[len(occ)-1])
				return 46, nil
			})
		h.metrics.EXPECT().SlotsGenerated(int64(46))
		h.cache.EXPECT().Invalidate(gomock.Any(), operatorID, slot.MustDate("2025-03-01"))

		got, err := uc.BulkCreate(ctx, operatorID, builder.NewScheduleBuilder().BuildRequestDTO())

		require.NoError(t, err)
		assert.Equal(t, int64(46), got.Created)
	})

	t.Run("past month", func(t *testing.T) {
		h, uc := newScheduleCommands(t)
		expectOperator(h, operatorID, salonID, true)
		h.reads.EXPECT().SalonByID(gomock.Any(), salonID).Return(&shared.SalonSnapshot{ID: salonID, Location: jst}, nil)

		req := builder.NewScheduleBuilder().With(func(s *builder.ScheduleBuilder) { s.TargetMonth = "2025-02" }).BuildRequestDTO()
		_, err := uc.BulkCreate(ctx, operatorID, req)

		assert.ErrorIs(t, err, commands.ErrMonthOutOfRange)
	})

	t.Run("beyond the booking horizon", func(t *testing.T) {
		h, uc := newScheduleCommands(t)
		expectOperator(h, operatorID, salonID, true)
		h.reads.EXPECT().SalonByID(gomock.Any(), salonID).Return(&shared.SalonSnapshot{ID: salonID, Location: jst}, nil)

		req := builder.NewScheduleBuilder().With(func(s *builder.ScheduleBuilder) { s.TargetMonth = "2025-07" }).BuildRequestDTO()
		_, err := uc.BulkCreate(ctx, operatorID, req)

		assert.ErrorIs(t, err, commands.ErrMonthOutOfRange)
	})

	t.Run("nothing left to generate", func(t *testing.T) {
		h, uc := newScheduleCommands(t)
		expectOperator(h, operatorID, salonID, true)
		h.reads.EXPECT().SalonByID(gomock.Any(), salonID).Return(&shared.SalonSnapshot{ID: salonID, Location: jst}, nil)

		// the last Tuesday of March has already passed
		h.clock.Set(time.Date(2025, 3, 26, 9, 0, 0, 0, jst))
		req := builder.NewScheduleBuilder().With(func(s *builder.ScheduleBuilder) { s.Weekdays = []int{2} }).BuildRequestDTO()

		got, err := uc.BulkCreate(ctx, operatorID, req)

		require.NoError(t, err)
		assert.Zero(t, got.Created)
	})

	t.Run("invalid template", func(t *testing.T) {
		_, uc := newScheduleCommands(t)
		req := builder.NewScheduleBuilder().With(func(s *builder.ScheduleBuilder) { s.EndTime = "09:00" }).BuildRequestDTO()

		_, err := uc.BulkCreate(ctx, operatorID, req)

		assert.ErrorIs(t, err, commands.ErrInvalidSchedule)
		assert.ErrorIs(t, err, slot.ErrInvalidRange)
	})

	t.Run("inactive operator", func(t *testing.T) {
		h, uc := newScheduleCommands(t)
		expectOperator(h, operatorID, salonID, false)

		_, err := uc.BulkCreate(ctx, operatorID, builder.NewScheduleBuilder().BuildRequestDTO())

		assert.ErrorIs(t, err, commands.ErrOperatorNotFound)
	})
}

func TestScheduleCommands_DeleteSlot(t *testing.T) {
	ctx := context.Background()
	operatorID := uuid.New()
	date, tm := slot.MustDate("2025-03-12"), slot.MustTime("10:30")

	tests := []struct {
		name      string
		repoErr   error
		wantErr   error
		wantFlush bool
	}{
		{name: "open slot", wantFlush: true},
		{name: "missing slot", repoErr: infra.WrapRepoErr("slot not found", nil, infra.KindNotFound), wantErr: commands.ErrSlotNotFound},
		{name: "booked slot", repoErr: infra.WrapRepoErr("slot is booked", nil, infra.KindConflict), wantErr: commands.ErrSlotBooked},
		{name: "database failure", repoErr: errors.New("connection reset"), wantErr: commands.ErrDatabaseOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newScheduleCommands(t)
			h.slots.EXPECT().DeleteOpen(gomock.Any(), nil, operatorID, date, tm).Return(tt.repoErr)
			if tt.wantFlush {
				h.cache.EXPECT().Invalidate(gomock.Any(), operatorID, slot.MustDate("2025-03-01"))
			}

			err := uc.DeleteSlot(ctx, operatorID, date, tm)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestScheduleCommands_DeleteSlotsByDate(t *testing.T) {
	ctx := context.Background()
	operatorID := uuid.New()

	t.Run("removes open slots of the day", func(t *testing.T) {
		h, uc := newScheduleCommands(t)
		date := slot.MustDate("2025-04-02")
		h.slots.EXPECT().DeleteOpenByDate(gomock.Any(), nil, operatorID, date).Return(int64(3), nil)
		h.cache.EXPECT().Invalidate(gomock.Any(), operatorID, slot.MustDate("2025-04-01"))

		n, err := uc.DeleteSlotsByDate(ctx, operatorID, date)

		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("zero date", func(t *testing.T) {
		_, uc := newScheduleCommands(t)

		_, err := uc.DeleteSlotsByDate(ctx, operatorID, slot.Date{})

		assert.ErrorIs(t, err, commands.ErrSlotDateInvalid)
	})
}

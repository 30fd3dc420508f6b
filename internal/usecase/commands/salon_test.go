//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-reserve/internal/domain/salon"
	reqdto "salon-reserve/internal/handler/dto/request"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"
	queriesmock "salon-reserve/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSalonCommands(t *testing.T) (*harness, *queriesmock.MockSalonQueries, commands.SalonCommands) {
	h := newHarness(t, time.Date(2025, 3, 5, 10, 0, 0, 0, jst))
	q := queriesmock.NewMockSalonQueries(gomock.NewController(t))
	return h, q, commands.NewSalonCommands(h.uow, q)
}

func TestSalonCommands_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()
	stored := func() *queries.SalonView {
		return &queries.SalonView{ID: salonID, Name: "Salon", Timezone: "Asia/Tokyo", CancellationDeadlineMinutes: 1440}
	}
	intPtr := func(v int) *int { return &v }

	t.Run("omitted fields keep their stored values", func(t *testing.T) {
		h, q, uc := newSalonCommands(t)
		updated := stored()
		updated.CancellationDeadlineMinutes = 180
		var written salon.Settings

		gomock.InOrder(
			q.EXPECT().Get(gomock.Any(), salonID).Return(stored(), nil),
			h.salons.EXPECT().UpdateSettings(gomock.Any(), nil, salonID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, s salon.Settings) error {
					written = s
					return nil
				}),
			q.EXPECT().Get(gomock.Any(), salonID).Return(updated, nil),
		)

		got, err := uc.UpdateSettings(ctx, salonID, reqdto.UpdateSalonSettingsRequest{CancellationDeadlineMinutes: intPtr(180)})

		require.NoError(t, err)
		assert.Equal(t, updated, got)
		assert.Equal(t, "Salon", written.Name())
		assert.Equal(t, "Asia/Tokyo", written.Timezone())
		assert.Equal(t, 180, written.CancellationDeadlineMinutes())
	})

	t.Run("zero deadline allows cancelling up to the start", func(t *testing.T) {
		h, q, uc := newSalonCommands(t)
		q.EXPECT().Get(gomock.Any(), salonID).Return(stored(), nil).Times(2)
		h.salons.EXPECT().UpdateSettings(gomock.Any(), nil, salonID, gomock.Any()).Return(nil)

		_, err := uc.UpdateSettings(ctx, salonID, reqdto.UpdateSalonSettingsRequest{CancellationDeadlineMinutes: intPtr(0)})

		require.NoError(t, err)
	})

	t.Run("unknown timezone is rejected before writing", func(t *testing.T) {
		_, q, uc := newSalonCommands(t)
		tz := "Mars/Olympus"
		q.EXPECT().Get(gomock.Any(), salonID).Return(stored(), nil)

		_, err := uc.UpdateSettings(ctx, salonID, reqdto.UpdateSalonSettingsRequest{Timezone: &tz})

		assert.ErrorIs(t, err, commands.ErrInvalidSalonSettings)
		assert.ErrorIs(t, err, salon.ErrInvalidTimezone)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("unknown salon", func(t *testing.T) {
		_, q, uc := newSalonCommands(t)
		q.EXPECT().Get(gomock.Any(), salonID).Return(nil, queries.ErrSalonNotFound)

		_, err := uc.UpdateSettings(ctx, salonID, reqdto.UpdateSalonSettingsRequest{})

		assert.ErrorIs(t, err, commands.ErrSalonNotFound)
	})

	t.Run("salon removed between read and write", func(t *testing.T) {
		h, q, uc := newSalonCommands(t)
		q.EXPECT().Get(gomock.Any(), salonID).Return(stored(), nil)
		h.salons.EXPECT().UpdateSettings(gomock.Any(), nil, salonID, gomock.Any()).
			Return(infra.WrapRepoErr("salon not found", nil, infra.KindNotFound))

		_, err := uc.UpdateSettings(ctx, salonID, reqdto.UpdateSalonSettingsRequest{})

		assert.ErrorIs(t, err, commands.ErrSalonNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		h, q, uc := newSalonCommands(t)
		q.EXPECT().Get(gomock.Any(), salonID).Return(stored(), nil)
		h.salons.EXPECT().UpdateSettings(gomock.Any(), nil, salonID, gomock.Any()).
			Return(infra.WrapRepoErr("failed to update salon settings", errors.New("conn reset")))

		_, err := uc.UpdateSettings(ctx, salonID, reqdto.UpdateSalonSettingsRequest{})

		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}

//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"salon-reserve/internal/infra"
	"salon-reserve/internal/usecase/queries"
	queriesmock "salon-reserve/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type salonDeps struct {
	salons    *queriesmock.MockSalonReadStore
	operators *queriesmock.MockSalonOperatorReadStore
	uc        queries.SalonQueries
}

func newSalonDeps(t *testing.T) *salonDeps {
	ctrl := gomock.NewController(t)
	d := &salonDeps{
		salons:    queriesmock.NewMockSalonReadStore(ctrl),
		operators: queriesmock.NewMockSalonOperatorReadStore(ctrl),
	}
	d.uc = queries.NewSalonQueries(d.salons, d.operators)
	return d
}

func TestSalonQueries_Get(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()

	t.Run("returns the settings", func(t *testing.T) {
		d := newSalonDeps(t)
		d.salons.EXPECT().FindByID(ctx, salonID).Return(salonView(salonID), nil)

		got, err := d.uc.Get(ctx, salonID)

		require.NoError(t, err)
		assert.Equal(t, 1440, got.CancellationDeadlineMinutes)
	})

	t.Run("unknown salon", func(t *testing.T) {
		d := newSalonDeps(t)
		d.salons.EXPECT().FindByID(ctx, salonID).Return(nil, infra.WrapRepoErr("salon not found", nil, infra.KindNotFound))

		_, err := d.uc.Get(ctx, salonID)

		assert.ErrorIs(t, err, queries.ErrSalonNotFound)
	})
}

func TestSalonQueries_ListOperators(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()

	t.Run("active operators of the salon", func(t *testing.T) {
		d := newSalonDeps(t)
		ops := []*queries.OperatorView{
			{ID: uuid.New(), SalonID: salonID, Name: "Aoi", Role: "staff", IsActive: true},
			{ID: uuid.New(), SalonID: salonID, Name: "Ren", Role: "admin", IsActive: true},
		}
		d.salons.EXPECT().FindByID(ctx, salonID).Return(salonView(salonID), nil)
		d.operators.EXPECT().ListActiveOperators(ctx, salonID).Return(ops, nil)

		got, err := d.uc.ListOperators(ctx, salonID)

		require.NoError(t, err)
		assert.Equal(t, ops, got)
	})

	t.Run("unknown salon skips the operator read", func(t *testing.T) {
		d := newSalonDeps(t)
		d.salons.EXPECT().FindByID(ctx, salonID).Return(nil, infra.WrapRepoErr("salon not found", nil, infra.KindNotFound))

		_, err := d.uc.ListOperators(ctx, salonID)

		assert.ErrorIs(t, err, queries.ErrSalonNotFound)
	})

	t.Run("store failure is passed through", func(t *testing.T) {
		d := newSalonDeps(t)
		storeErr := errors.New("connection reset")
		d.salons.EXPECT().FindByID(ctx, salonID).Return(salonView(salonID), nil)
		d.operators.EXPECT().ListActiveOperators(ctx, salonID).Return(nil, storeErr)

		_, err := d.uc.ListOperators(ctx, salonID)

		assert.ErrorIs(t, err, storeErr)
	})
}

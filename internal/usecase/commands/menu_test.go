//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-reserve/internal/domain/menu"
	reqdto "salon-reserve/internal/handler/dto/request"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/internal/usecase/shared"
	"salon-reserve/tests/common/builder"
	queriesmock "salon-reserve/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMenuCommands(t *testing.T) (*harness, *queriesmock.MockMenuQueries, commands.MenuCommands) {
	h := newHarness(t, time.Date(2025, 3, 5, 10, 0, 0, 0, jst))
	q := queriesmock.NewMockMenuQueries(gomock.NewController(t))
	return h, q, commands.NewMenuCommands(h.uow, q, h.clock)
}

func TestMenuCommands_CreateMenu(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()
	divA, divB := uuid.New(), uuid.New()

	newMenu := func() *builder.MenuBuilder {
		return builder.NewMenuBuilder().With(func(m *builder.MenuBuilder) {
			m.SalonID = salonID
			m.DivisionIDs = []uuid.UUID{divA, divB, divA}
		})
	}

	t.Run("stores the menu and returns the fresh view", func(t *testing.T) {
		h, q, uc := newMenuCommands(t)
		b := newMenu()
		view := b.BuildView()
		var stored *menu.Menu

		h.reads.EXPECT().CategoryByID(gomock.Any(), b.CategoryID).Return(&shared.CategorySnapshot{ID: b.CategoryID, SalonID: salonID}, nil)
		h.reads.EXPECT().CountDivisions(gomock.Any(), salonID, gomock.Len(2)).Return(2, nil)
		h.menus.EXPECT().Create(gomock.Any(), nil, gomock.Any(), h.clock.Now()).
			DoAndReturn(func(_ context.Context, _ any, m *menu.Menu, _ time.Time) error {
				stored = m
				return nil
			})
		q.EXPECT().GetForSalon(gomock.Any(), salonID, gomock.Any()).Return(view, nil)

		got, err := uc.CreateMenu(ctx, salonID, b.BuildCreateRequestDTO())

		require.NoError(t, err)
		assert.Equal(t, view, got)
		require.NotNil(t, stored)
		assert.Equal(t, salonID, stored.SalonID())
		assert.Equal(t, "One-color gel", stored.Name())
		assert.Len(t, stored.DivisionIDs(), 2)
	})

	t.Run("category of another salon", func(t *testing.T) {
		h, _, uc := newMenuCommands(t)
		b := newMenu()
		h.reads.EXPECT().CategoryByID(gomock.Any(), b.CategoryID).Return(&shared.CategorySnapshot{ID: b.CategoryID, SalonID: uuid.New()}, nil)

		_, err := uc.CreateMenu(ctx, salonID, b.BuildCreateRequestDTO())

		assert.ErrorIs(t, err, commands.ErrCategoryNotFound)
	})

	t.Run("unknown category", func(t *testing.T) {
		h, _, uc := newMenuCommands(t)
		b := newMenu()
		h.reads.EXPECT().CategoryByID(gomock.Any(), b.CategoryID).Return(nil, infra.WrapRepoErr("category not found", nil, infra.KindNotFound))

		_, err := uc.CreateMenu(ctx, salonID, b.BuildCreateRequestDTO())

		assert.ErrorIs(t, err, commands.ErrCategoryNotFound)
	})

	t.Run("division outside the salon", func(t *testing.T) {
		h, _, uc := newMenuCommands(t)
		b := newMenu()
		h.reads.EXPECT().CategoryByID(gomock.Any(), b.CategoryID).Return(&shared.CategorySnapshot{ID: b.CategoryID, SalonID: salonID}, nil)
		h.reads.EXPECT().CountDivisions(gomock.Any(), salonID, gomock.Any()).Return(1, nil)

		_, err := uc.CreateMenu(ctx, salonID, b.BuildCreateRequestDTO())

		assert.ErrorIs(t, err, commands.ErrDivisionsNotFound)
	})

	t.Run("zero duration", func(t *testing.T) {
		h, _, uc := newMenuCommands(t)
		b := newMenu().With(func(m *builder.MenuBuilder) {
			m.DivisionIDs = nil
			m.DurationHours = 0
			m.DurationMinutes = 0
		})
		h.reads.EXPECT().CategoryByID(gomock.Any(), b.CategoryID).Return(&shared.CategorySnapshot{ID: b.CategoryID, SalonID: salonID}, nil)

		_, err := uc.CreateMenu(ctx, salonID, b.BuildCreateRequestDTO())

		assert.ErrorIs(t, err, commands.ErrInvalidMenu)
	})
}

func TestMenuCommands_UpdateMenu(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()

	t.Run("patches only the given fields", func(t *testing.T) {
		h, q, uc := newMenuCommands(t)
		b := builder.NewMenuBuilder().With(func(m *builder.MenuBuilder) { m.SalonID = salonID })
		name := "Two-color gel"
		updatedView := b.BuildView()
		updatedView.Name = name

		q.EXPECT().GetForSalon(gomock.Any(), salonID, b.ID).Return(b.BuildView(), nil)
		h.reads.EXPECT().CategoryByID(gomock.Any(), b.CategoryID).Return(&shared.CategorySnapshot{ID: b.CategoryID, SalonID: salonID}, nil)
		h.menus.EXPECT().FindByID(gomock.Any(), nil, b.ID).Return(b.MustBuildDomain(), nil)
		h.menus.EXPECT().Update(gomock.Any(), nil, gomock.Any(), h.clock.Now()).
			DoAndReturn(func(_ context.Context, _ any, m *menu.Menu, _ time.Time) error {
				assert.Equal(t, name, m.Name())
				assert.Equal(t, int64(6000), m.Price().Int64())
				assert.Equal(t, 90, m.Duration().Minutes())
				return nil
			})
		q.EXPECT().GetForSalon(gomock.Any(), salonID, b.ID).Return(updatedView, nil)

		got, err := uc.UpdateMenu(ctx, salonID, b.ID, reqdto.UpdateMenuRequest{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
	})

	t.Run("menu of another salon", func(t *testing.T) {
		_, q, uc := newMenuCommands(t)
		menuID := uuid.New()
		q.EXPECT().GetForSalon(gomock.Any(), salonID, menuID).Return(nil, queries.ErrMenuNotFound)

		_, err := uc.UpdateMenu(ctx, salonID, menuID, reqdto.UpdateMenuRequest{})

		assert.ErrorIs(t, err, commands.ErrMenuNotFound)
	})

	t.Run("negative price", func(t *testing.T) {
		h, q, uc := newMenuCommands(t)
		b := builder.NewMenuBuilder().With(func(m *builder.MenuBuilder) { m.SalonID = salonID })
		price := int64(-1)

		q.EXPECT().GetForSalon(gomock.Any(), salonID, b.ID).Return(b.BuildView(), nil)
		h.reads.EXPECT().CategoryByID(gomock.Any(), b.CategoryID).Return(&shared.CategorySnapshot{ID: b.CategoryID, SalonID: salonID}, nil)
		h.menus.EXPECT().FindByID(gomock.Any(), nil, b.ID).Return(b.MustBuildDomain(), nil)

		_, err := uc.UpdateMenu(ctx, salonID, b.ID, reqdto.UpdateMenuRequest{PriceWithoutTax: &price})

		assert.ErrorIs(t, err, commands.ErrInvalidMenu)
	})
}

func TestMenuCommands_DeactivateMenu(t *testing.T) {
	ctx := context.Background()
	salonID, menuID := uuid.New(), uuid.New()

	t.Run("soft deletes", func(t *testing.T) {
		h, _, uc := newMenuCommands(t)
		h.menus.EXPECT().Deactivate(gomock.Any(), nil, salonID, menuID).Return(nil)

		assert.NoError(t, uc.DeactivateMenu(ctx, salonID, menuID))
	})

	t.Run("unknown menu", func(t *testing.T) {
		h, _, uc := newMenuCommands(t)
		h.menus.EXPECT().Deactivate(gomock.Any(), nil, salonID, menuID).
			Return(infra.WrapRepoErr("menu not found", nil, infra.KindNotFound))

		err := uc.DeactivateMenu(ctx, salonID, menuID)

		assert.ErrorIs(t, err, commands.ErrMenuNotFound)
	})
}

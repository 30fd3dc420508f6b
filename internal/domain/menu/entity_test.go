//go:build unit

package menu_test

import (
	"testing"

	"salon-reserve/internal/domain/menu"
	"salon-reserve/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenu(t *testing.T) {
	t.Run("normalizes name and divisions", func(t *testing.T) {
		div := uuid.New()
		b := builder.NewMenuBuilder().With(func(m *builder.MenuBuilder) {
			m.Name = "  Hand care  "
			m.DivisionIDs = []uuid.UUID{div, div}
		})

		m, err := b.BuildDomain()

		require.NoError(t, err)
		assert.Equal(t, "Hand care", m.Name())
		assert.Equal(t, []uuid.UUID{div}, m.DivisionIDs())
		assert.Equal(t, 90, m.Duration().Minutes())
		assert.False(t, m.IsCoupon())
	})

	t.Run("coupon fields are ignored unless flagged", func(t *testing.T) {
		b := builder.NewMenuBuilder().WithCoupon(500, "2025-03-01", "2025-03-31")
		b.IsCoupon = false

		m, err := b.BuildDomain()

		require.NoError(t, err)
		assert.Nil(t, m.Coupon())
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*builder.MenuBuilder)
			wantErr error
		}{
			{"blank name", func(m *builder.MenuBuilder) { m.Name = "  " }, menu.ErrNameRequired},
			{"missing category", func(m *builder.MenuBuilder) { m.CategoryID = uuid.Nil }, menu.ErrMissingCategory},
			{"negative price", func(m *builder.MenuBuilder) { m.PriceWithoutTax = -1 }, menu.ErrNegativePrice},
			{"zero duration", func(m *builder.MenuBuilder) { m.DurationHours, m.DurationMinutes = 0, 0 }, menu.ErrInvalidDuration},
			{"coupon without period", func(m *builder.MenuBuilder) { m.IsCoupon = true }, menu.ErrCouponPeriodRequired},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := builder.NewMenuBuilder().With(tt.mutate).BuildDomain()
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}

func TestMenu_Update(t *testing.T) {
	t.Run("replaces every field", func(t *testing.T) {
		m := builder.NewMenuBuilder().MustBuildDomain()
		spec := builder.NewMenuBuilder().WithCoupon(300, "2025-04-01", "2025-04-30").With(func(b *builder.MenuBuilder) {
			b.Name = "Foot gel"
			b.OffPrice = nil
		}).Spec()

		require.NoError(t, m.Update(spec))

		assert.Equal(t, "Foot gel", m.Name())
		assert.Nil(t, m.OffPrice())
		require.NotNil(t, m.Coupon())
		assert.Equal(t, menu.Price(300), m.Coupon().Discount())
	})

	t.Run("failed update leaves the menu untouched", func(t *testing.T) {
		m := builder.NewMenuBuilder().MustBuildDomain()
		spec := builder.NewMenuBuilder().With(func(b *builder.MenuBuilder) {
			b.Name = "Renamed"
			b.DurationHours, b.DurationMinutes = 0, 0
		}).Spec()

		err := m.Update(spec)

		assert.ErrorIs(t, err, menu.ErrInvalidDuration)
		assert.Equal(t, "One-color gel", m.Name())
		assert.Equal(t, 90, m.Duration().Minutes())
	})
}

func TestMenu_EnsureBookable(t *testing.T) {
	b := builder.NewMenuBuilder()
	m := b.MustBuildDomain()

	assert.NoError(t, m.EnsureBookable(b.SalonID))
	assert.ErrorIs(t, m.EnsureBookable(uuid.New()), menu.ErrMenuOtherSalon)

	m.Deactivate()
	assert.ErrorIs(t, m.EnsureBookable(b.SalonID), menu.ErrMenuInactive)
}

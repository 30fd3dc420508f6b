//go:build unit || e2e

package builder

import (
	"time"

	"salon-reserve/internal/domain/menu"
	"salon-reserve/internal/domain/slot"
	reqdto "salon-reserve/internal/handler/dto/request"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MenuBuilder struct {
	ID              uuid.UUID
	SalonID         uuid.UUID
	CategoryID      uuid.UUID
	DivisionIDs     []uuid.UUID
	Name            string
	Description     string
	PriceWithoutTax int64
	OffPrice        *int64
	DurationHours   int
	DurationMinutes int
	IsActive        bool
	IsCoupon        bool
	DiscountAmount  *int64
	ValidFrom       *slot.Date
	ValidUntil      *slot.Date
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewMenuBuilder() *MenuBuilder {
	now := time.Now()
	offPrice := int64(1100)
	return &MenuBuilder{
		ID:              uuid.New(),
		SalonID:         uuid.New(),
		CategoryID:      uuid.New(),
		Name:            "One-color gel",
		Description:     "Single color gel nail",
		PriceWithoutTax: 6000,
		OffPrice:        &offPrice,
		DurationHours:   1,
		DurationMinutes: 30,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (m *MenuBuilder) With(mutate func(*MenuBuilder)) *MenuBuilder {
	mutate(m)
	return m
}

func (m *MenuBuilder) WithCoupon(discount int64, from, until string) *MenuBuilder {
	f, u := slot.MustDate(from), slot.MustDate(until)
	m.IsCoupon = true
	m.DiscountAmount = &discount
	m.ValidFrom = &f
	m.ValidUntil = &u
	return m
}

func (m *MenuBuilder) Spec() menu.Spec {
	return menu.Spec{
		CategoryID:      m.CategoryID,
		DivisionIDs:     m.DivisionIDs,
		Name:            m.Name,
		Description:     m.Description,
		PriceWithoutTax: m.PriceWithoutTax,
		OffPrice:        m.OffPrice,
		DurationHours:   m.DurationHours,
		DurationMinutes: m.DurationMinutes,
		IsActive:        m.IsActive,
		IsCoupon:        m.IsCoupon,
		DiscountAmount:  m.DiscountAmount,
		ValidFrom:       m.ValidFrom,
		ValidUntil:      m.ValidUntil,
	}
}

// Build methods
func (m *MenuBuilder) BuildDomain() (*menu.Menu, error) {
	return menu.NewMenu(m.SalonID, m.Spec())
}

// MustBuildDomain rebuilds the menu under the builder's ID.
func (m *MenuBuilder) MustBuildDomain() *menu.Menu {
	built, err := m.BuildDomain()
	if err != nil {
		panic(err)
	}
	return menu.ReconstructMenu(
		m.ID, built.SalonID(), built.CategoryID(),
		built.DivisionIDs(),
		built.Name(), built.Description(),
		built.Price(),
		built.OffPrice(),
		built.Duration(),
		built.IsActive(),
		built.Coupon(),
		m.CreatedAt, m.UpdatedAt,
	)
}

func (m *MenuBuilder) BuildInfra() sqlc.Menus {
	row := sqlc.Menus{
		ID:              m.ID,
		SalonID:         m.SalonID,
		CategoryID:      m.CategoryID,
		Name:            m.Name,
		Description:     m.Description,
		PriceWithoutTax: m.PriceWithoutTax,
		DurationMinutes: int32(m.DurationHours*60 + m.DurationMinutes),
		IsActive:        m.IsActive,
		IsCoupon:        m.IsCoupon,
		CreatedAt:       pgtype.Timestamptz{Time: m.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: m.UpdatedAt, Valid: true},
	}
	if m.OffPrice != nil {
		row.OffPrice = pgtype.Int8{Int64: *m.OffPrice, Valid: true}
	}
	if m.DiscountAmount != nil {
		row.DiscountAmount = pgtype.Int8{Int64: *m.DiscountAmount, Valid: true}
	}
	if m.ValidFrom != nil {
		row.ValidFrom = pgtype.Date{Time: m.ValidFrom.Time(time.UTC), Valid: true}
	}
	if m.ValidUntil != nil {
		row.ValidUntil = pgtype.Date{Time: m.ValidUntil.Time(time.UTC), Valid: true}
	}
	return row
}

func (m *MenuBuilder) BuildView() *queries.MenuView {
	return &queries.MenuView{
		ID:              m.ID,
		SalonID:         m.SalonID,
		CategoryID:      m.CategoryID,
		DivisionIDs:     m.DivisionIDs,
		Name:            m.Name,
		Description:     m.Description,
		PriceWithoutTax: m.PriceWithoutTax,
		OffPrice:        m.OffPrice,
		DurationMinutes: m.DurationHours*60 + m.DurationMinutes,
		IsActive:        m.IsActive,
		IsCoupon:        m.IsCoupon,
		DiscountAmount:  m.DiscountAmount,
		ValidFrom:       m.ValidFrom,
		ValidUntil:      m.ValidUntil,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (m *MenuBuilder) BuildCreateRequestDTO() reqdto.CreateMenuRequest {
	isActive := m.IsActive
	return reqdto.CreateMenuRequest{
		CategoryID:      m.CategoryID,
		DivisionIDs:     m.DivisionIDs,
		Name:            m.Name,
		Description:     m.Description,
		PriceWithoutTax: m.PriceWithoutTax,
		OffPrice:        m.OffPrice,
		DurationHours:   m.DurationHours,
		DurationMinutes: m.DurationMinutes,
		IsActive:        &isActive,
		IsCoupon:        m.IsCoupon,
		DiscountAmount:  m.DiscountAmount,
		ValidFrom:       m.ValidFrom,
		ValidUntil:      m.ValidUntil,
	}
}

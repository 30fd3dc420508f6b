package converter

import (
	"time"

	"salon-reserve/internal/domain/menu"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type menuColumns struct {
	offPrice       pgtype.Int8
	discountAmount pgtype.Int8
	validFrom      pgtype.Date
	validUntil     pgtype.Date
}

func menuNullable(m *menu.Menu) menuColumns {
	var cols menuColumns
	if p := m.OffPrice(); p != nil {
		cols.offPrice = pgtype.Int8{Int64: p.Int64(), Valid: true}
	}
	if c := m.Coupon(); c != nil {
		cols.discountAmount = pgtype.Int8{Int64: c.Discount().Int64(), Valid: true}
		cols.validFrom = DateToPgtype(c.ValidFrom())
		cols.validUntil = DateToPgtype(c.ValidUntil())
	}
	return cols
}

func MenuToCreateParams(m *menu.Menu, now time.Time) sqlc.CreateMenuParams {
	cols := menuNullable(m)
	return sqlc.CreateMenuParams{
		ID:              m.ID(),
		SalonID:         m.SalonID(),
		CategoryID:      m.CategoryID(),
		Name:            m.Name(),
		Description:     m.Description(),
		PriceWithoutTax: m.Price().Int64(),
		OffPrice:        cols.offPrice,
		DurationMinutes: int32(m.Duration().Minutes()), // #nosec G115 -- hours*60+minutes from bounded input
		IsActive:        m.IsActive(),
		IsCoupon:        m.IsCoupon(),
		DiscountAmount:  cols.discountAmount,
		ValidFrom:       cols.validFrom,
		ValidUntil:      cols.validUntil,
		CreatedAt:       pgconv.TimeToPgtype(now),
		UpdatedAt:       pgconv.TimeToPgtype(now),
	}
}

func MenuToUpdateParams(m *menu.Menu, now time.Time) sqlc.UpdateMenuParams {
	cols := menuNullable(m)
	return sqlc.UpdateMenuParams{
		ID:              m.ID(),
		SalonID:         m.SalonID(),
		CategoryID:      m.CategoryID(),
		Name:            m.Name(),
		Description:     m.Description(),
		PriceWithoutTax: m.Price().Int64(),
		OffPrice:        cols.offPrice,
		DurationMinutes: int32(m.Duration().Minutes()), // #nosec G115 -- hours*60+minutes from bounded input
		IsActive:        m.IsActive(),
		IsCoupon:        m.IsCoupon(),
		DiscountAmount:  cols.discountAmount,
		ValidFrom:       cols.validFrom,
		ValidUntil:      cols.validUntil,
		UpdatedAt:       pgconv.TimeToPgtype(now),
	}
}

func MenuFromInfra(row sqlc.Menus, divisionIDs []uuid.UUID) *menu.Menu {
	var offPrice *menu.Price
	if row.OffPrice.Valid {
		p := menu.Price(row.OffPrice.Int64)
		offPrice = &p
	}
	var coupon *menu.Coupon
	if row.IsCoupon && row.DiscountAmount.Valid {
		c, err := menu.NewCoupon(row.DiscountAmount.Int64, DatePtrFromPgtype(row.ValidFrom), DatePtrFromPgtype(row.ValidUntil))
		if err == nil {
			coupon = &c
		}
	}
	duration, err := menu.DurationFromMinutes(int(row.DurationMinutes))
	if err != nil {
		duration = menu.Duration{}
	}

	return menu.ReconstructMenu(
		row.ID, row.SalonID, row.CategoryID,
		divisionIDs,
		row.Name, row.Description,
		menu.Price(row.PriceWithoutTax),
		offPrice,
		duration,
		row.IsActive,
		coupon,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

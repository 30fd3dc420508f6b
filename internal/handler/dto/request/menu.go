package request

import (
	"salon-reserve/internal/domain/menu"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/pkg/patch"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateMenuRequest struct {
	CategoryID      uuid.UUID   `json:"category_id" binding:"required"`
	DivisionIDs     []uuid.UUID `json:"division_ids"`
	Name            string      `json:"name" binding:"required,max=100"`
	Description     string      `json:"description" binding:"max=1000"`
	PriceWithoutTax int64       `json:"price_without_tax" binding:"min=0"`
	OffPrice        *int64      `json:"off_price,omitempty" binding:"omitempty,min=0"`
	DurationHours   int         `json:"duration_hours" binding:"min=0"`
	DurationMinutes int         `json:"duration_minutes" binding:"min=0,max=59"`
	IsActive        *bool       `json:"is_active,omitempty"`
	IsCoupon        bool        `json:"is_coupon"`
	DiscountAmount  *int64      `json:"discount_amount,omitempty" binding:"omitempty,min=0"`
	ValidFrom       *slot.Date  `json:"valid_from,omitempty"`
	ValidUntil      *slot.Date  `json:"valid_until,omitempty"`
}

func (r CreateMenuRequest) ToSpec() menu.Spec {
	return menu.Spec{
		CategoryID:      r.CategoryID,
		DivisionIDs:     r.DivisionIDs,
		Name:            r.Name,
		Description:     r.Description,
		PriceWithoutTax: r.PriceWithoutTax,
		OffPrice:        r.OffPrice,
		DurationHours:   r.DurationHours,
		DurationMinutes: r.DurationMinutes,
		IsActive:        patch.Coalesce(r.IsActive, true),
		IsCoupon:        r.IsCoupon,
		DiscountAmount:  r.DiscountAmount,
		ValidFrom:       r.ValidFrom,
		ValidUntil:      r.ValidUntil,
	}
}

// UpdateMenuRequest keeps the stored value for every omitted field.
type UpdateMenuRequest struct {
	CategoryID      *uuid.UUID   `json:"category_id,omitempty"`
	DivisionIDs     *[]uuid.UUID `json:"division_ids,omitempty"`
	Name            *string      `json:"name,omitempty" binding:"omitempty,max=100"`
	Description     *string      `json:"description,omitempty" binding:"omitempty,max=1000"`
	PriceWithoutTax *int64       `json:"price_without_tax,omitempty" binding:"omitempty,min=0"`
	OffPrice        *int64       `json:"off_price,omitempty" binding:"omitempty,min=0"`
	DurationHours   *int         `json:"duration_hours,omitempty" binding:"omitempty,min=0"`
	DurationMinutes *int         `json:"duration_minutes,omitempty" binding:"omitempty,min=0,max=59"`
	IsActive        *bool        `json:"is_active,omitempty"`
	IsCoupon        *bool        `json:"is_coupon,omitempty"`
	DiscountAmount  *int64       `json:"discount_amount,omitempty" binding:"omitempty,min=0"`
	ValidFrom       *slot.Date   `json:"valid_from,omitempty"`
	ValidUntil      *slot.Date   `json:"valid_until,omitempty"`
}

func (r UpdateMenuRequest) ToSpec(existing *queries.MenuView) menu.Spec {
	isCoupon := patch.Coalesce(r.IsCoupon, existing.IsCoupon)
	spec := menu.Spec{
		CategoryID:      patch.Coalesce(r.CategoryID, existing.CategoryID),
		DivisionIDs:     patch.Coalesce(r.DivisionIDs, existing.DivisionIDs),
		Name:            patch.Coalesce(r.Name, existing.Name),
		Description:     patch.Coalesce(r.Description, existing.Description),
		PriceWithoutTax: patch.Coalesce(r.PriceWithoutTax, existing.PriceWithoutTax),
		OffPrice:        patch.CoalescePtr(r.OffPrice, existing.OffPrice),
		DurationHours:   patch.Coalesce(r.DurationHours, existing.DurationMinutes/60),
		DurationMinutes: patch.Coalesce(r.DurationMinutes, existing.DurationMinutes%60),
		IsActive:        patch.Coalesce(r.IsActive, existing.IsActive),
		IsCoupon:        isCoupon,
	}
	if isCoupon {
		spec.DiscountAmount = patch.CoalescePtr(r.DiscountAmount, existing.DiscountAmount)
		spec.ValidFrom = patch.CoalescePtr(r.ValidFrom, existing.ValidFrom)
		spec.ValidUntil = patch.CoalescePtr(r.ValidUntil, existing.ValidUntil)
	}
	return spec
}

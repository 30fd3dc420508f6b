package reservation

import (
	"salon-reserve/internal/domain/menu"
	"salon-reserve/internal/domain/slot"
)

type PriceCalculator interface {
	Calculate(m *menu.Menu, date slot.Date, gelRemoval bool) PriceSnapshot
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// Calculate adds the off price when gel removal is requested, then applies the
// coupon discount if the coupon is valid on the reservation date. The total never goes below zero.
func (pc *DefaultPriceCalculator) Calculate(m *menu.Menu, date slot.Date, gelRemoval bool) PriceSnapshot {
	snap := PriceSnapshot{Base: m.Price()}
	if gelRemoval && m.OffPrice() != nil {
		snap.OffPrice = *m.OffPrice()
	}
	gross := snap.Base + snap.OffPrice
	snap.Total = gross
	if c := m.Coupon(); c != nil && c.IsValidOn(date) {
		snap.Total = c.Apply(gross)
		snap.Discount = gross - snap.Total
	}
	return snap
}

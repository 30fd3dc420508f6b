package reservation

import (
	"time"

	"salon-reserve/internal/domain/menu"
	"salon-reserve/internal/pkg/clock"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation prices the booking against the menu and stamps the salon's deadline.
func (f *Factory) CreateReservation(b Booking, menuEntity *menu.Menu, deadlineMinutes int) (*Reservation, error) {
	if err := menuEntity.EnsureBookable(b.SalonID); err != nil {
		return nil, err
	}
	b.MenuID = menuEntity.ID()
	price := f.PriceCalculator.Calculate(menuEntity, b.Date, b.GelRemoval)
	return NewReservation(b, price, deadlineMinutes, f.Clock.Now())
}

// In returns a factory whose clock reads in loc, the salon's zone.
func (f *Factory) In(loc *time.Location) *Factory {
	return &Factory{
		Clock:           clock.InZone(f.Clock, loc),
		PriceCalculator: f.PriceCalculator,
	}
}

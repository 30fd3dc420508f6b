//go:build unit || e2e

package builder

import (
	"time"

	"salon-reserve/internal/domain/menu"
	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/slot"
	reqdto "salon-reserve/internal/handler/dto/request"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	OperatorID      uuid.UUID
	SalonID         uuid.UUID
	MenuID          uuid.UUID
	Date            string
	Time            string
	Status          reservation.Status
	GelRemoval      bool
	OtherRequests   string
	Price           reservation.PriceSnapshot
	DeadlineMinutes *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		OperatorID: uuid.New(),
		SalonID:    uuid.New(),
		MenuID:     uuid.New(),
		Date:       now.AddDate(0, 0, 7).Format("2006-01-02"),
		Time:       "10:30",
		Status:     reservation.StatusReserved,
		Price: reservation.PriceSnapshot{
			Base:  menu.Price(6000),
			Total: menu.Price(6000),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithSlot(date, tm string) *ReservationBuilder {
	r.Date = date
	r.Time = tm
	return r
}

func (r *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	r.Status = s
	return r
}

func (r *ReservationBuilder) WithDeadline(minutes int) *ReservationBuilder {
	r.DeadlineMinutes = &minutes
	return r
}

func (r *ReservationBuilder) Booking() reservation.Booking {
	otherRequests, _ := reservation.NewOtherRequests(r.OtherRequests)
	return reservation.Booking{
		CustomerID:    r.CustomerID,
		OperatorID:    r.OperatorID,
		SalonID:       r.SalonID,
		MenuID:        r.MenuID,
		Date:          slot.MustDate(r.Date),
		Time:          slot.MustTime(r.Time),
		GelRemoval:    r.GelRemoval,
		OtherRequests: otherRequests,
	}
}

// Build methods
func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(reservation.Snapshot{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		OperatorID:      r.OperatorID,
		SalonID:         r.SalonID,
		MenuID:          r.MenuID,
		Date:            slot.MustDate(r.Date),
		Time:            slot.MustTime(r.Time),
		Status:          r.Status,
		GelRemoval:      r.GelRemoval,
		OtherRequests:   r.OtherRequests,
		Price:           r.Price,
		DeadlineMinutes: r.DeadlineMinutes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	})
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:                          r.ID,
		SalonID:                     r.SalonID,
		CustomerID:                  r.CustomerID,
		CustomerName:                "Hanako Sato",
		OperatorID:                  r.OperatorID,
		OperatorName:                "Yui Tanaka",
		MenuID:                      r.MenuID,
		MenuName:                    "One-color gel",
		Date:                        slot.MustDate(r.Date),
		Time:                        slot.MustTime(r.Time),
		Status:                      r.Status.String(),
		GelRemoval:                  r.GelRemoval,
		OtherRequests:               r.OtherRequests,
		PriceWithoutTax:             r.Price.Base.Int64(),
		OffPrice:                    r.Price.OffPrice.Int64(),
		DiscountAmount:              r.Price.Discount.Int64(),
		TotalPrice:                  r.Price.Total.Int64(),
		TotalWithoutGelRemoval:      r.Price.TotalWithoutGelRemoval().Int64(),
		CancellationDeadlineMinutes: reservation.DeadlineOrDefault(r.DeadlineMinutes),
		IsCancelable:                r.Status == reservation.StatusReserved,
		CreatedAt:                   r.CreatedAt,
		UpdatedAt:                   r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		OperatorID:    r.OperatorID,
		MenuID:        r.MenuID,
		Date:          r.Date,
		Time:          r.Time,
		GelRemoval:    r.GelRemoval,
		OtherRequests: r.OtherRequests,
	}
}

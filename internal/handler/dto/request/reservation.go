package request

import (
	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/pkg/ptr"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	OperatorID    uuid.UUID `json:"operator_id" binding:"required"`
	MenuID        uuid.UUID `json:"menu_id" binding:"required"`
	Date          string    `json:"date" binding:"required"`
	Time          string    `json:"time" binding:"required"`
	GelRemoval    bool      `json:"gel_removal"`
	OtherRequests string    `json:"other_requests" binding:"max=200"`
}

// ToDomain builds the booking; the salon is resolved from the operator, never from the body.
func (r CreateReservationRequest) ToDomain(customerID uuid.UUID) (reservation.Booking, error) {
	date, err := slot.ParseDate(r.Date)
	if err != nil {
		return reservation.Booking{}, err
	}
	t, err := slot.ParseTimeOfDay(r.Time)
	if err != nil {
		return reservation.Booking{}, err
	}
	otherRequests, err := reservation.NewOtherRequests(r.OtherRequests)
	if err != nil {
		return reservation.Booking{}, err
	}

	return reservation.Booking{
		CustomerID:    customerID,
		OperatorID:    r.OperatorID,
		MenuID:        r.MenuID,
		Date:          date,
		Time:          t,
		GelRemoval:    r.GelRemoval,
		OtherRequests: otherRequests,
	}, nil
}

type PastReservationsQuery struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Cursor string `form:"cursor"`
}

type SalonReservationsQuery struct {
	From       string `form:"from"`
	To         string `form:"to"`
	Status     string `form:"status" binding:"omitempty,oneof=reserved completed canceled noshow"`
	OperatorID string `form:"operator_id" binding:"omitempty,uuid"`
}

func (q SalonReservationsQuery) ToFilters() (queries.ReservationFilters, error) {
	var f queries.ReservationFilters
	if q.From != "" {
		from, err := slot.ParseDate(q.From)
		if err != nil {
			return f, err
		}
		f.From = &from
	}
	if q.To != "" {
		to, err := slot.ParseDate(q.To)
		if err != nil {
			return f, err
		}
		f.To = &to
	}
	if q.From != "" && q.To != "" && f.To.Before(*f.From) {
		return f, slot.ErrInvalidPeriod
	}
	if q.Status != "" {
		f.Status = ptr.Of(q.Status)
	}
	if q.OperatorID != "" {
		operatorID, err := uuid.Parse(q.OperatorID)
		if err != nil {
			return f, err
		}
		f.OperatorID = &operatorID
	}
	return f, nil
}

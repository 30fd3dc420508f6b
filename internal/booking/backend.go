// Package booking is the client-side booking workflow: availability lookup,
// calendar selection, the confirm-then-commit submission and cancellation.
// All shared state lives on the server; this package only holds transient
// selection state and guarantees at most one mutating call per user action.
package booking

import (
	"context"
	"time"

	"salon-reserve/internal/domain/availability"
	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/slot"

	"github.com/google/uuid"
)

// DefaultMutationTimeout bounds every mutating backend call.
const DefaultMutationTimeout = 15 * time.Second

type Backend interface {
	// Operators lists the salon's active operators, the choices for Calendar.SelectOperator.
	Operators(ctx context.Context, salonID uuid.UUID) ([]Operator, error)
	Availability(ctx context.Context, operatorID uuid.UUID, month slot.Date) (availability.Snapshot, error)
	Eligibility(ctx context.Context) (reservation.Eligibility, error)
	CreateReservation(ctx context.Context, idempotencyKey uuid.UUID, req CreateRequest) (Reservation, error)
	CancelReservation(ctx context.Context, reservationID uuid.UUID) (Reservation, error)
	// RebookCheck fails with ErrNotFound when the menu is gone and with
	// ErrConflict when the customer already has an upcoming reservation.
	RebookCheck(ctx context.Context, menuID uuid.UUID) error
}

type Operator struct {
	ID   uuid.UUID
	Name string
	Role string
}

type CreateRequest struct {
	OperatorID    uuid.UUID
	MenuID        uuid.UUID
	Date          slot.Date
	Time          slot.TimeOfDay
	GelRemoval    bool
	OtherRequests string
}

type Reservation struct {
	ID                          uuid.UUID
	SalonID                     uuid.UUID
	OperatorID                  uuid.UUID
	MenuID                      uuid.UUID
	MenuName                    string
	Date                        slot.Date
	Time                        slot.TimeOfDay
	Status                      reservation.Status
	GelRemoval                  bool
	OtherRequests               string
	TotalPrice                  int64
	CancellationDeadlineMinutes *int
	// Replayed is set when the server answered from a stored idempotent result.
	Replayed bool
}

// StartsAt is the appointment instant in the salon's zone.
func (r Reservation) StartsAt(loc *time.Location) time.Time {
	return slot.At(r.Date, r.Time, loc)
}

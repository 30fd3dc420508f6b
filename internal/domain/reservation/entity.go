package reservation

import (
	"errors"
	"time"

	"salon-reserve/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrSlotInPast          = errors.New("slot is in the past")
	ErrNotReserved         = errors.New("reservation is not in reserved status")
	ErrDeadlinePassed      = errors.New("cancellation deadline has passed")
	ErrNotOwner            = errors.New("reservation belongs to another customer")
	ErrActiveReservation   = errors.New("customer already has an upcoming reservation")
	ErrInvalidDeadline     = errors.New("cancellation deadline cannot be negative")
	ErrMissingParticipants = errors.New("customer, operator, salon and menu are required")
)

// Booking identifies what is being reserved and by whom.
type Booking struct {
	CustomerID    uuid.UUID
	OperatorID    uuid.UUID
	SalonID       uuid.UUID
	MenuID        uuid.UUID
	Date          slot.Date
	Time          slot.TimeOfDay
	GelRemoval    bool
	OtherRequests OtherRequests
}

type Reservation struct {
	id              uuid.UUID
	customerID      uuid.UUID
	operatorID      uuid.UUID
	salonID         uuid.UUID
	menuID          uuid.UUID
	date            slot.Date
	time            slot.TimeOfDay
	status          Status
	gelRemoval      bool
	otherRequests   OtherRequests
	price           PriceSnapshot
	deadlineMinutes int
	canceledAt      *time.Time
	canceledBy      *Actor
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReservation(b Booking, price PriceSnapshot, deadlineMinutes int, now time.Time) (*Reservation, error) {
	if b.CustomerID == uuid.Nil || b.OperatorID == uuid.Nil || b.SalonID == uuid.Nil || b.MenuID == uuid.Nil {
		return nil, ErrMissingParticipants
	}
	if deadlineMinutes < 0 {
		return nil, ErrInvalidDeadline
	}
	if !slot.At(b.Date, b.Time, now.Location()).After(now) {
		return nil, ErrSlotInPast
	}

	return &Reservation{
		id:              uuid.New(),
		customerID:      b.CustomerID,
		operatorID:      b.OperatorID,
		salonID:         b.SalonID,
		menuID:          b.MenuID,
		date:            b.Date,
		time:            b.Time,
		status:          StatusReserved,
		gelRemoval:      b.GelRemoval,
		otherRequests:   b.OtherRequests,
		price:           price,
		deadlineMinutes: deadlineMinutes,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

type Snapshot struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	OperatorID      uuid.UUID
	SalonID         uuid.UUID
	MenuID          uuid.UUID
	Date            slot.Date
	Time            slot.TimeOfDay
	Status          Status
	GelRemoval      bool
	OtherRequests   string
	Price           PriceSnapshot
	DeadlineMinutes *int
	CanceledAt      *time.Time
	CanceledBy      *Actor
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReconstructReservation rebuilds a stored reservation; a missing deadline falls back to the default.
func ReconstructReservation(s Snapshot) *Reservation {
	return &Reservation{
		id:              s.ID,
		customerID:      s.CustomerID,
		operatorID:      s.OperatorID,
		salonID:         s.SalonID,
		menuID:          s.MenuID,
		date:            s.Date,
		time:            s.Time,
		status:          s.Status,
		gelRemoval:      s.GelRemoval,
		otherRequests:   OtherRequests{value: s.OtherRequests},
		price:           s.Price,
		deadlineMinutes: DeadlineOrDefault(s.DeadlineMinutes),
		canceledAt:      s.CanceledAt,
		canceledBy:      s.CanceledBy,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}

// StartsAt is the appointment instant in the salon's location.
func (r *Reservation) StartsAt(loc *time.Location) time.Time {
	return slot.At(r.date, r.time, loc)
}

func (r *Reservation) IsCancelable(now time.Time) bool {
	return IsCancelable(r.status, r.StartsAt(now.Location()), r.deadlineMinutes, now)
}

func (r *Reservation) IsUpcoming(now time.Time) bool {
	return r.status == StatusReserved && r.StartsAt(now.Location()).After(now)
}

func (r *Reservation) EnsureOwnedBy(customerID uuid.UUID) error {
	if r.customerID != customerID {
		return ErrNotOwner
	}
	return nil
}

// CancelByCustomer honours the cancellation deadline.
func (r *Reservation) CancelByCustomer(now time.Time) error {
	if r.status != StatusReserved {
		return ErrNotReserved
	}
	if !r.IsCancelable(now) {
		return ErrDeadlinePassed
	}
	r.markCanceled(ActorCustomer, now)
	return nil
}

// CancelByOperator bypasses the deadline.
func (r *Reservation) CancelByOperator(now time.Time) error {
	if r.status != StatusReserved {
		return ErrNotReserved
	}
	r.markCanceled(ActorOperator, now)
	return nil
}

func (r *Reservation) markCanceled(actor Actor, now time.Time) {
	r.status = StatusCanceled
	r.canceledAt = &now
	r.canceledBy = &actor
	r.updatedAt = now
}

func (r *Reservation) Complete(now time.Time) error {
	return r.transition(StatusCompleted, now)
}

func (r *Reservation) MarkNoShow(now time.Time) error {
	return r.transition(StatusNoShow, now)
}

func (r *Reservation) transition(to Status, now time.Time) error {
	if r.status != StatusReserved {
		return ErrNotReserved
	}
	r.status = to
	r.updatedAt = now
	return nil
}

// FreesSlot reports whether the transition into the current status released the slot.
func (r *Reservation) FreesSlot() bool {
	return r.status == StatusCanceled
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) CustomerID() uuid.UUID        { return r.customerID }
func (r *Reservation) OperatorID() uuid.UUID        { return r.operatorID }
func (r *Reservation) SalonID() uuid.UUID           { return r.salonID }
func (r *Reservation) MenuID() uuid.UUID            { return r.menuID }
func (r *Reservation) Date() slot.Date              { return r.date }
func (r *Reservation) Time() slot.TimeOfDay         { return r.time }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) GelRemoval() bool             { return r.gelRemoval }
func (r *Reservation) OtherRequests() OtherRequests { return r.otherRequests }
func (r *Reservation) Price() PriceSnapshot         { return r.price }
func (r *Reservation) DeadlineMinutes() int         { return r.deadlineMinutes }
func (r *Reservation) CanceledAt() *time.Time       { return r.canceledAt }
func (r *Reservation) CanceledBy() *Actor           { return r.canceledBy }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }

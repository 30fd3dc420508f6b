package slot

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
	ErrSlotNotBooked     = errors.New("slot is not booked")
	ErrMissingOperator   = errors.New("operator is required")
)

// Occurrence is a bookable (date, time) pair independent of the operator.
type Occurrence struct {
	Date Date
	Time TimeOfDay
}

type Slot struct {
	salonID    uuid.UUID
	operatorID uuid.UUID
	date       Date
	time       TimeOfDay
	isBooked   bool
}

func NewSlot(salonID, operatorID uuid.UUID, date Date, t TimeOfDay) (*Slot, error) {
	if operatorID == uuid.Nil {
		return nil, ErrMissingOperator
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	return &Slot{
		salonID:    salonID,
		operatorID: operatorID,
		date:       date,
		time:       t,
	}, nil
}

func ReconstructSlot(salonID, operatorID uuid.UUID, date Date, t TimeOfDay, isBooked bool) *Slot {
	return &Slot{
		salonID:    salonID,
		operatorID: operatorID,
		date:       date,
		time:       t,
		isBooked:   isBooked,
	}
}

func (s *Slot) Book() error {
	if s.isBooked {
		return ErrSlotAlreadyBooked
	}
	s.isBooked = true
	return nil
}

func (s *Slot) Free() error {
	if !s.isBooked {
		return ErrSlotNotBooked
	}
	s.isBooked = false
	return nil
}

func (s *Slot) SalonID() uuid.UUID     { return s.salonID }
func (s *Slot) OperatorID() uuid.UUID  { return s.operatorID }
func (s *Slot) Date() Date             { return s.date }
func (s *Slot) Time() TimeOfDay        { return s.time }
func (s *Slot) IsBooked() bool         { return s.isBooked }
func (s *Slot) Occurrence() Occurrence { return Occurrence{Date: s.date, Time: s.time} }

// Package bookingtest provides an in-memory booking.Backend whose create and
// cancel operations are atomic, like the server's transactional ones.
package bookingtest

import (
	"context"
	"sync"
	"time"

	"salon-reserve/internal/booking"
	"salon-reserve/internal/domain/availability"
	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

type slotKey struct {
	operatorID uuid.UUID
	date       slot.Date
	time       slot.TimeOfDay
}

// Calls counts backend invocations per operation.
type Calls struct {
	Operators    int
	Availability int
	Eligibility  int
	Create       int
	Cancel       int
	RebookCheck  int
}

type MemoryBackend struct {
	clock clock.Clock

	mu           sync.Mutex
	slots        map[slotKey]bool // value: booked
	reservations map[uuid.UUID]*booking.Reservation
	idempotent   map[uuid.UUID]uuid.UUID
	menus        map[uuid.UUID]bool
	operators    map[uuid.UUID][]booking.Operator
	lockedUntil  *time.Time
	deadline     int
	calls        Calls

	// CreateHook runs before each create while no lock is held; tests use it
	// to hold a commit in flight.
	CreateHook func(ctx context.Context) error
	// FailNext makes the next call of any kind fail with this error.
	FailNext error
}

func NewMemoryBackend(clk clock.Clock) *MemoryBackend {
	return &MemoryBackend{
		clock:        clk,
		slots:        make(map[slotKey]bool),
		reservations: make(map[uuid.UUID]*booking.Reservation),
		idempotent:   make(map[uuid.UUID]uuid.UUID),
		menus:        make(map[uuid.UUID]bool),
		operators:    make(map[uuid.UUID][]booking.Operator),
		deadline:     reservation.DefaultCancelDeadlineMinutes,
	}
}

func (m *MemoryBackend) AddSlots(operatorID uuid.UUID, date slot.Date, times ...slot.TimeOfDay) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range times {
		m.slots[slotKey{operatorID, date, t}] = false
	}
}

func (m *MemoryBackend) AddOperator(salonID uuid.UUID, op booking.Operator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operators[salonID] = append(m.operators[salonID], op)
}

func (m *MemoryBackend) AddMenu(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.menus[id] = true
}

func (m *MemoryBackend) LockUntil(t *time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lockedUntil = t
}

func (m *MemoryBackend) Calls() Calls {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// ActiveFor lists reserved reservations for one slot.
func (m *MemoryBackend) ActiveFor(operatorID uuid.UUID, date slot.Date, t slot.TimeOfDay) []booking.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []booking.Reservation
	for _, r := range m.reservations {
		if r.OperatorID == operatorID && r.Date == date && r.Time == t && r.Status == reservation.StatusReserved {
			out = append(out, *r)
		}
	}
	return out
}

func (m *MemoryBackend) failLocked() error {
	if err := m.FailNext; err != nil {
		m.FailNext = nil
		return err
	}
	return nil
}

func (m *MemoryBackend) Operators(_ context.Context, salonID uuid.UUID) ([]booking.Operator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Operators++
	if err := m.failLocked(); err != nil {
		return nil, err
	}
	return append([]booking.Operator{}, m.operators[salonID]...), nil
}

func (m *MemoryBackend) Availability(_ context.Context, operatorID uuid.UUID, month slot.Date) (availability.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Availability++
	if err := m.failLocked(); err != nil {
		return availability.Empty(), err
	}

	var open []slot.Occurrence
	for k, booked := range m.slots {
		if booked || k.operatorID != operatorID || k.date.MonthStart() != month.MonthStart() {
			continue
		}
		open = append(open, slot.Occurrence{Date: k.date, Time: k.time})
	}
	return availability.Derive(open, m.clock.Now()), nil
}

func (m *MemoryBackend) Eligibility(context.Context) (reservation.Eligibility, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Eligibility++
	if err := m.failLocked(); err != nil {
		return reservation.Eligibility{}, err
	}
	if m.lockedUntil != nil && m.clock.Now().Before(*m.lockedUntil) {
		until := *m.lockedUntil
		return reservation.Eligibility{CanCreate: false, LockedUntil: &until}, nil
	}
	return reservation.Eligibility{CanCreate: true}, nil
}

// CreateReservation checks and books the slot under one lock, so of two
// concurrent attempts on the same slot the second is rejected.
func (m *MemoryBackend) CreateReservation(ctx context.Context, key uuid.UUID, req booking.CreateRequest) (booking.Reservation, error) {
	if hook := m.CreateHook; hook != nil {
		if err := hook(ctx); err != nil {
			return booking.Reservation{}, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Create++
	if err := m.failLocked(); err != nil {
		return booking.Reservation{}, err
	}

	if id, ok := m.idempotent[key]; ok {
		res := *m.reservations[id]
		res.Replayed = true
		return res, nil
	}
	if !m.menus[req.MenuID] {
		return booking.Reservation{}, errs.Mark(errs.New("menu not found"), booking.ErrNotFound)
	}
	k := slotKey{req.OperatorID, req.Date, req.Time}
	booked, exists := m.slots[k]
	if !exists {
		return booking.Reservation{}, errs.Mark(errs.New("slot not found"), booking.ErrNotFound)
	}
	if booked {
		return booking.Reservation{}, errs.Mark(errs.New("slot is no longer available"), booking.ErrConflict)
	}

	m.slots[k] = true
	deadline := m.deadline
	res := &booking.Reservation{
		ID:                          uuid.New(),
		OperatorID:                  req.OperatorID,
		MenuID:                      req.MenuID,
		Date:                        req.Date,
		Time:                        req.Time,
		Status:                      reservation.StatusReserved,
		GelRemoval:                  req.GelRemoval,
		OtherRequests:               req.OtherRequests,
		CancellationDeadlineMinutes: &deadline,
	}
	m.reservations[res.ID] = res
	m.idempotent[key] = res.ID
	return *res, nil
}

// CancelReservation frees the slot and marks the reservation canceled together.
func (m *MemoryBackend) CancelReservation(_ context.Context, id uuid.UUID) (booking.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Cancel++
	if err := m.failLocked(); err != nil {
		return booking.Reservation{}, err
	}

	res, ok := m.reservations[id]
	if !ok {
		return booking.Reservation{}, errs.Mark(errs.New("reservation not found"), booking.ErrNotFound)
	}
	if res.Status != reservation.StatusReserved {
		return booking.Reservation{}, errs.Mark(errs.New("reservation is not reserved"), booking.ErrConflict)
	}
	res.Status = reservation.StatusCanceled
	m.slots[slotKey{res.OperatorID, res.Date, res.Time}] = false
	return *res, nil
}

func (m *MemoryBackend) RebookCheck(_ context.Context, menuID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.RebookCheck++
	if err := m.failLocked(); err != nil {
		return err
	}
	if !m.menus[menuID] {
		return errs.Mark(errs.New("menu not found"), booking.ErrNotFound)
	}
	for _, r := range m.reservations {
		if r.Status == reservation.StatusReserved {
			return errs.Mark(errs.New("upcoming reservation exists"), booking.ErrConflict)
		}
	}
	return nil
}

var _ booking.Backend = (*MemoryBackend)(nil)

package queries

import (
	"context"
	"time"

	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.Classify("reservation not found", errs.ErrNotFound)
	ErrReservationAccess   = errs.Classify("reservation access denied", errs.ErrForbidden)
	ErrInvalidCursor       = errs.Classify("invalid cursor", errs.ErrValidation)
	ErrSalonNotFound       = errs.Classify("salon not found", errs.ErrNotFound)
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	CancellationsSince(ctx context.Context, customerID uuid.UUID, since time.Time) ([]reservation.CancellationRecord, error)
	ListUpcomingByCustomer(ctx context.Context, customerID uuid.UUID, today slot.Date, now slot.TimeOfDay) ([]*ReservationView, error)
	ListPastByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, today slot.Date, now slot.TimeOfDay, limit int32) ([]*ReservationView, error)
	ListPastByCustomerKeyset(ctx context.Context, customerID uuid.UUID, today slot.Date, now slot.TimeOfDay, after slot.Occurrence, afterID uuid.UUID, limit int32) ([]*ReservationView, error)
	ListBySalon(ctx context.Context, salonID uuid.UUID, f ReservationFilters) ([]*ReservationView, error)
}

type SalonReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalonView, error)
}

type ReservationQueries interface {
	// GetByID returns the reservation only to the customer who owns it.
	GetByID(ctx context.Context, customerID uuid.UUID, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips the ownership check (idempotent replay, read-after-write).
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	GetForSalon(ctx context.Context, salonID uuid.UUID, id uuid.UUID) (*ReservationView, error)
	History(ctx context.Context, customerID, salonID uuid.UUID, cursor *Cursor, limit int) (*ReservationHistory, error)
	Eligibility(ctx context.Context, customerID uuid.UUID) (*EligibilityView, error)
	ListForSalon(ctx context.Context, salonID uuid.UUID, filters ReservationFilters) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo    ReservationReadStore
	salons  SalonReadStore
	clock   clock.Clock
	booking config.BookingConfig
}

func NewReservationQueries(repo ReservationReadStore, salons SalonReadStore, clk clock.Clock, cfg config.Config) ReservationQueries {
	return &reservationQueriesImpl{
		repo:    repo,
		salons:  salons,
		clock:   clk,
		booking: cfg.Booking,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, customerID uuid.UUID, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if rv.CustomerID != customerID {
		return nil, ErrReservationAccess
	}
	return q.withCancelable(ctx, rv)
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return q.withCancelable(ctx, rv)
}

func (q *reservationQueriesImpl) GetForSalon(ctx context.Context, salonID uuid.UUID, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	// other salons' reservations are reported as missing
	if rv.SalonID != salonID {
		return nil, ErrReservationNotFound
	}
	return q.withCancelable(ctx, rv)
}

func (q *reservationQueriesImpl) find(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reservationQueriesImpl) withCancelable(ctx context.Context, rv *ReservationView) (*ReservationView, error) {
	now, err := q.salonNow(ctx, rv.SalonID)
	if err != nil {
		return nil, err
	}
	markCancelable(rv, now)
	return rv, nil
}

// salonNow reads the clock in the salon's zone so dates and times of day compare as stored.
func (q *reservationQueriesImpl) salonNow(ctx context.Context, salonID uuid.UUID) (time.Time, error) {
	salon, err := q.salons.FindByID(ctx, salonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return time.Time{}, ErrSalonNotFound
		}
		return time.Time{}, err
	}
	return q.clock.Now().In(salon.Location(q.booking.Location())), nil
}

func markCancelable(rv *ReservationView, now time.Time) {
	startsAt := slot.At(rv.Date, rv.Time, now.Location())
	rv.IsCancelable = reservation.IsCancelable(reservation.Status(rv.Status), startsAt, rv.CancellationDeadlineMinutes, now)
}

func (q *reservationQueriesImpl) History(ctx context.Context, customerID, salonID uuid.UUID, cursor *Cursor, limit int) (*ReservationHistory, error) {
	now, err := q.salonNow(ctx, salonID)
	if err != nil {
		return nil, err
	}
	today, clockNow := slot.DateOf(now), slot.ClockOf(now)

	upcoming, err := q.repo.ListUpcomingByCustomer(ctx, customerID, today, clockNow)
	if err != nil {
		return nil, err
	}

	limit = ClampLimit(limit, int(q.booking.PastReservationsDefaultLimit))

	var past []*ReservationView
	if cursor == nil || cursor.After == "" {
		past, err = q.repo.ListPastByCustomerFirstPage(ctx, customerID, today, clockNow, int32(limit+1))
	} else {
		after, afterID, derr := DecodeOccurrenceCursor(cursor.After)
		if derr != nil {
			return nil, ErrInvalidCursor
		}
		past, err = q.repo.ListPastByCustomerKeyset(ctx, customerID, today, clockNow, after, afterID, int32(limit+1))
	}
	if err != nil {
		return nil, err
	}

	var next *Cursor
	if len(past) > limit {
		last := past[limit-1]
		next = &Cursor{After: EncodeOccurrenceCursor(slot.Occurrence{Date: last.Date, Time: last.Time}, last.ID)}
		past = past[:limit]
	}

	for _, rv := range upcoming {
		markCancelable(rv, now)
	}
	for _, rv := range past {
		markCancelable(rv, now)
	}

	return &ReservationHistory{
		Upcoming: upcoming,
		Past:     past,
		Next:     next,
	}, nil
}

func (q *reservationQueriesImpl) Eligibility(ctx context.Context, customerID uuid.UUID) (*EligibilityView, error) {
	now := q.clock.Now()
	history, err := q.repo.CancellationsSince(ctx, customerID, now.Add(-q.booking.LockoutDuration))
	if err != nil {
		return nil, err
	}
	e := shared.NewLockoutPolicy(q.booking).Evaluate(history, now)
	return &EligibilityView{
		CanCreate:   e.CanCreate,
		LockedUntil: e.LockedUntil,
	}, nil
}

func (q *reservationQueriesImpl) ListForSalon(ctx context.Context, salonID uuid.UUID, filters ReservationFilters) ([]*ReservationView, error) {
	rows, err := q.repo.ListBySalon(ctx, salonID, filters)
	if err != nil {
		return nil, err
	}
	now, err := q.salonNow(ctx, salonID)
	if err != nil {
		return nil, err
	}
	for _, rv := range rows {
		markCancelable(rv, now)
	}
	return rows, nil
}

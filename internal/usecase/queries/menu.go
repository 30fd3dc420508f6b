package queries

import (
	"context"

	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMenuNotFound            = errs.Classify("menu not found", errs.ErrNotFound)
	ErrActiveReservationExists = errs.Classify("customer already has an upcoming reservation", errs.ErrConflict)
)

type MenuReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MenuView, error)
	ListBySalon(ctx context.Context, salonID uuid.UUID, onlyActive bool) ([]*MenuView, error)
	ListCategories(ctx context.Context, salonID uuid.UUID) ([]*MenuCategoryView, error)
}

type UpcomingReservationChecker interface {
	HasUpcoming(ctx context.Context, customerID uuid.UUID, today slot.Date, now slot.TimeOfDay) (bool, error)
}

type MenuQueries interface {
	// GetActive returns a bookable menu; inactive menus are reported as missing.
	GetActive(ctx context.Context, id uuid.UUID) (*MenuView, error)
	GetForSalon(ctx context.Context, salonID uuid.UUID, id uuid.UUID) (*MenuView, error)
	ListActive(ctx context.Context, salonID uuid.UUID) ([]*MenuView, error)
	ListForSalon(ctx context.Context, salonID uuid.UUID) ([]*MenuView, error)
	ListCategories(ctx context.Context, salonID uuid.UUID) ([]*MenuCategoryView, error)
	// RebookCheck verifies a customer may start booking menuID again.
	RebookCheck(ctx context.Context, customerID, salonID, menuID uuid.UUID) (*MenuView, error)
}

type menuQueriesImpl struct {
	repo         MenuReadStore
	reservations UpcomingReservationChecker
	salons       SalonReadStore
	clock        clock.Clock
	booking      config.BookingConfig
}

func NewMenuQueries(repo MenuReadStore, reservations UpcomingReservationChecker, salons SalonReadStore, clk clock.Clock, cfg config.Config) MenuQueries {
	return &menuQueriesImpl{
		repo:         repo,
		reservations: reservations,
		salons:       salons,
		clock:        clk,
		booking:      cfg.Booking,
	}
}

func (q *menuQueriesImpl) find(ctx context.Context, id uuid.UUID) (*MenuView, error) {
	m, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return m, nil
}

func (q *menuQueriesImpl) GetActive(ctx context.Context, id uuid.UUID) (*MenuView, error) {
	m, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.IsActive {
		return nil, ErrMenuNotFound
	}
	return m, nil
}

func (q *menuQueriesImpl) GetForSalon(ctx context.Context, salonID uuid.UUID, id uuid.UUID) (*MenuView, error) {
	m, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.SalonID != salonID {
		return nil, ErrMenuNotFound
	}
	return m, nil
}

func (q *menuQueriesImpl) ListActive(ctx context.Context, salonID uuid.UUID) ([]*MenuView, error) {
	return q.repo.ListBySalon(ctx, salonID, true)
}

func (q *menuQueriesImpl) ListForSalon(ctx context.Context, salonID uuid.UUID) ([]*MenuView, error) {
	return q.repo.ListBySalon(ctx, salonID, false)
}

func (q *menuQueriesImpl) ListCategories(ctx context.Context, salonID uuid.UUID) ([]*MenuCategoryView, error) {
	return q.repo.ListCategories(ctx, salonID)
}

func (q *menuQueriesImpl) RebookCheck(ctx context.Context, customerID, salonID, menuID uuid.UUID) (*MenuView, error) {
	m, err := q.GetActive(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if m.SalonID != salonID {
		return nil, ErrMenuNotFound
	}

	salon, err := q.salons.FindByID(ctx, salonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, err
	}
	now := q.clock.Now().In(salon.Location(q.booking.Location()))

	exists, err := q.reservations.HasUpcoming(ctx, customerID, slot.DateOf(now), slot.ClockOf(now))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrActiveReservationExists
	}
	return m, nil
}

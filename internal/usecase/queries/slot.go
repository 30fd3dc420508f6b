package queries

import (
	"context"

	"salon-reserve/internal/domain/availability"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaxSlotRangeDays bounds the inclusive [from, to] window of a slot listing.
const MaxSlotRangeDays = 62

var (
	ErrOperatorNotFound = errs.Classify("operator not found", errs.ErrNotFound)
	ErrInvalidSlotRange = errs.Classify("invalid slot range", errs.ErrValidation)
)

type SlotReadStore interface {
	List(ctx context.Context, f SlotFilter) ([]*SlotView, error)
	OpenOccurrences(ctx context.Context, operatorID uuid.UUID, from, to slot.Date) ([]slot.Occurrence, error)
}

type OperatorReadStore interface {
	FindOperatorByID(ctx context.Context, id uuid.UUID) (*OperatorView, error)
}

type SlotQueries interface {
	// OpenSlots lists the operator's unbooked slots in [from, to].
	OpenSlots(ctx context.Context, operatorID uuid.UUID, from, to slot.Date) ([]*SlotView, error)
	// Schedule lists every slot of the operator in [from, to], booked ones included.
	Schedule(ctx context.Context, operatorID uuid.UUID, from, to slot.Date) ([]*SlotView, error)
	// Availability derives the open dates and times of the month containing anchor.
	Availability(ctx context.Context, operatorID uuid.UUID, anchor slot.Date) (availability.Snapshot, error)
}

type slotQueriesImpl struct {
	slots     SlotReadStore
	operators OperatorReadStore
	salons    SalonReadStore
	cache     shared.AvailabilityCache
	metrics   shared.BookingMetrics
	clock     clock.Clock
	booking   config.BookingConfig
}

func NewSlotQueries(
	slots SlotReadStore,
	operators OperatorReadStore,
	salons SalonReadStore,
	cache shared.AvailabilityCache,
	metrics shared.BookingMetrics,
	clk clock.Clock,
	cfg config.Config,
) SlotQueries {
	return &slotQueriesImpl{
		slots:     slots,
		operators: operators,
		salons:    salons,
		cache:     cache,
		metrics:   metrics,
		clock:     clk,
		booking:   cfg.Booking,
	}
}

func validateRange(from, to slot.Date) error {
	if to.Before(from) {
		return errs.Tag(slot.ErrInvalidPeriod, ErrInvalidSlotRange)
	}
	if from.DaysUntil(to)+1 > MaxSlotRangeDays {
		return ErrInvalidSlotRange
	}
	return nil
}

func (q *slotQueriesImpl) OpenSlots(ctx context.Context, operatorID uuid.UUID, from, to slot.Date) ([]*SlotView, error) {
	return q.list(ctx, SlotFilter{OperatorID: operatorID, From: from, To: to, OnlyOpen: true})
}

func (q *slotQueriesImpl) Schedule(ctx context.Context, operatorID uuid.UUID, from, to slot.Date) ([]*SlotView, error) {
	return q.list(ctx, SlotFilter{OperatorID: operatorID, From: from, To: to})
}

func (q *slotQueriesImpl) list(ctx context.Context, f SlotFilter) ([]*SlotView, error) {
	if err := validateRange(f.From, f.To); err != nil {
		return nil, err
	}
	if _, err := q.activeOperator(ctx, f.OperatorID); err != nil {
		return nil, err
	}
	return q.slots.List(ctx, f)
}

func (q *slotQueriesImpl) Availability(ctx context.Context, operatorID uuid.UUID, anchor slot.Date) (availability.Snapshot, error) {
	op, err := q.activeOperator(ctx, operatorID)
	if err != nil {
		return availability.Empty(), err
	}
	salon, err := q.salons.FindByID(ctx, op.SalonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return availability.Empty(), ErrSalonNotFound
		}
		return availability.Empty(), err
	}
	now := q.clock.Now().In(salon.Location(q.booking.Location()))

	from, to := availability.MonthWindow(anchor)
	open, hit := q.cache.GetOpenSlots(ctx, operatorID, from)
	q.metrics.AvailabilityCacheLookup(hit)
	if !hit {
		open, err = q.slots.OpenOccurrences(ctx, operatorID, from, to)
		if err != nil {
			return availability.Empty(), err
		}
		q.cache.SetOpenSlots(ctx, operatorID, from, open)
	}

	// Earlier days of the month are no longer bookable.
	today := slot.DateOf(now)
	upcoming := make([]slot.Occurrence, 0, len(open))
	for _, o := range open {
		if o.Date.Before(today) {
			continue
		}
		upcoming = append(upcoming, o)
	}
	return availability.Derive(upcoming, now), nil
}

func (q *slotQueriesImpl) activeOperator(ctx context.Context, operatorID uuid.UUID) (*OperatorView, error) {
	op, err := q.operators.FindOperatorByID(ctx, operatorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOperatorNotFound
		}
		return nil, err
	}
	if !op.IsActive {
		return nil, ErrOperatorNotFound
	}
	return op, nil
}

package commands

import (
	"context"

	"salon-reserve/internal/domain/slot"
	reqdto "salon-reserve/internal/handler/dto/request"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidSchedule = errs.Classify("invalid schedule", errs.ErrValidation)
	ErrMonthOutOfRange = errs.Classify("target month is outside the bookable range", errs.ErrValidation)
	ErrSlotBooked      = errs.Classify("slot is booked", errs.ErrConflict)
	ErrSlotDateInvalid = errs.Classify("invalid slot date", errs.ErrValidation)
)

type BulkCreateResult struct {
	Created int64 `json:"created"`
}

type ScheduleCommands interface {
	// BulkCreate expands a weekly template over the target month for the operator.
	BulkCreate(ctx context.Context, operatorID uuid.UUID, req reqdto.BulkCreateSlotsRequest) (*BulkCreateResult, error)
	DeleteSlot(ctx context.Context, operatorID uuid.UUID, date slot.Date, t slot.TimeOfDay) error
	// DeleteSlotsByDate removes the unbooked slots of one day and keeps booked ones.
	DeleteSlotsByDate(ctx context.Context, operatorID uuid.UUID, date slot.Date) (int64, error)
}

type scheduleCommandsImpl struct {
	uow     shared.UnitOfWork
	cache   shared.AvailabilityCache
	metrics shared.BookingMetrics
	clock   clock.Clock
	booking config.BookingConfig
}

func NewScheduleCommands(
	uow shared.UnitOfWork,
	cache shared.AvailabilityCache,
	metrics shared.BookingMetrics,
	clk clock.Clock,
	cfg config.Config,
) ScheduleCommands {
	return &scheduleCommandsImpl{
		uow:     uow,
		cache:   cache,
		metrics: metrics,
		clock:   clk,
		booking: cfg.Booking,
	}
}

func (uc *scheduleCommandsImpl) BulkCreate(ctx context.Context, operatorID uuid.UUID, req reqdto.BulkCreateSlotsRequest) (*BulkCreateResult, error) {
	template, month, err := req.ToDomain()
	if err != nil {
		return nil, errs.Tag(err, ErrInvalidSchedule)
	}

	operator, salon, err := uc.operatorSalon(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	today := slot.DateOf(uc.clock.Now().In(salon.Location))

	thisMonth := today.MonthStart()
	if month.Before(thisMonth) || month.After(thisMonth.AddMonths(uc.booking.MaxMonthsAhead)) {
		return nil, ErrMonthOutOfRange
	}

	occurrences := template.GenerateMonth(month, today)
	if len(occurrences) == 0 {
		return &BulkCreateResult{Created: 0}, nil
	}

	var created int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Slots().InsertMany(ctx, tx.DB(), operator.SalonID, operatorID, occurrences)
		if err != nil {
			return errs.Tag(err, ErrDatabaseOperationFailed)
		}
		created = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.SlotsGenerated(created)
	uc.cache.Invalidate(ctx, operatorID, month)
	return &BulkCreateResult{Created: created}, nil
}

func (uc *scheduleCommandsImpl) DeleteSlot(ctx context.Context, operatorID uuid.UUID, date slot.Date, t slot.TimeOfDay) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Slots().DeleteOpen(ctx, tx.DB(), operatorID, date, t)
		switch {
		case err == nil:
			return nil
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Tag(err, ErrSlotNotFound)
		case infra.IsKind(err, infra.KindConflict):
			return errs.Tag(err, ErrSlotBooked)
		default:
			return errs.Tag(err, ErrDatabaseOperationFailed)
		}
	})
	if err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, operatorID, date.MonthStart())
	return nil
}

func (uc *scheduleCommandsImpl) DeleteSlotsByDate(ctx context.Context, operatorID uuid.UUID, date slot.Date) (int64, error) {
	if date.IsZero() {
		return 0, ErrSlotDateInvalid
	}
	var deleted int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Slots().DeleteOpenByDate(ctx, tx.DB(), operatorID, date)
		if err != nil {
			return errs.Tag(err, ErrDatabaseOperationFailed)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	uc.cache.Invalidate(ctx, operatorID, date.MonthStart())
	return deleted, nil
}

func (uc *scheduleCommandsImpl) operatorSalon(ctx context.Context, operatorID uuid.UUID) (*shared.OperatorSnapshot, *shared.SalonSnapshot, error) {
	reads := uc.uow.CommandReads()
	operator, err := reads.OperatorByID(ctx, operatorID)
	if err != nil {
		return nil, nil, mapLookupErr(err, ErrOperatorNotFound)
	}
	if !operator.IsActive {
		return nil, nil, ErrOperatorNotFound
	}
	salon, err := reads.SalonByID(ctx, operator.SalonID)
	if err != nil {
		return nil, nil, mapLookupErr(err, ErrSalonNotFound)
	}
	return operator, salon, nil
}

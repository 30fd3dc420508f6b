package commands

import (
	"context"

	reqdto "salon-reserve/internal/handler/dto/request"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidSalonSettings = errs.Classify("invalid salon settings", errs.ErrValidation)

type SalonCommands interface {
	// UpdateSettings applies to reservations created afterwards; existing ones keep
	// the deadline they were booked with.
	UpdateSettings(ctx context.Context, salonID uuid.UUID, req reqdto.UpdateSalonSettingsRequest) (*queries.SalonView, error)
}

type salonCommandsImpl struct {
	uow          shared.UnitOfWork
	salonQueries queries.SalonQueries
}

func NewSalonCommands(uow shared.UnitOfWork, salonQueries queries.SalonQueries) SalonCommands {
	return &salonCommandsImpl{
		uow:          uow,
		salonQueries: salonQueries,
	}
}

func (uc *salonCommandsImpl) UpdateSettings(ctx context.Context, salonID uuid.UUID, req reqdto.UpdateSalonSettingsRequest) (*queries.SalonView, error) {
	existing, err := uc.salonQueries.Get(ctx, salonID)
	if err != nil {
		return nil, err
	}
	settings, err := req.ToSettings(existing)
	if err != nil {
		return nil, errs.Tag(err, ErrInvalidSalonSettings)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Salons().UpdateSettings(ctx, tx.DB(), salonID, settings); err != nil {
			return mapLookupErr(err, ErrSalonNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.salonQueries.Get(ctx, salonID)
}

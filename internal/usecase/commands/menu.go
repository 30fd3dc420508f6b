package commands

import (
	"context"
	"slices"

	"salon-reserve/internal/domain/menu"
	reqdto "salon-reserve/internal/handler/dto/request"
	"salon-reserve/internal/pkg/clock"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidMenu       = errs.Classify("invalid menu", errs.ErrValidation)
	ErrCategoryNotFound  = errs.Classify("menu category not found", errs.ErrValidation)
	ErrDivisionsNotFound = errs.Classify("menu division not found", errs.ErrValidation)
)

type MenuCommands interface {
	CreateMenu(ctx context.Context, salonID uuid.UUID, req reqdto.CreateMenuRequest) (*queries.MenuView, error)
	UpdateMenu(ctx context.Context, salonID, menuID uuid.UUID, req reqdto.UpdateMenuRequest) (*queries.MenuView, error)
	DeactivateMenu(ctx context.Context, salonID, menuID uuid.UUID) error
}

type menuCommandsImpl struct {
	uow         shared.UnitOfWork
	menuQueries queries.MenuQueries
	clock       clock.Clock
}

func NewMenuCommands(uow shared.UnitOfWork, menuQueries queries.MenuQueries, clk clock.Clock) MenuCommands {
	return &menuCommandsImpl{
		uow:         uow,
		menuQueries: menuQueries,
		clock:       clk,
	}
}

func (uc *menuCommandsImpl) CreateMenu(ctx context.Context, salonID uuid.UUID, req reqdto.CreateMenuRequest) (*queries.MenuView, error) {
	spec := req.ToSpec()
	if err := uc.validateReferences(ctx, salonID, spec); err != nil {
		return nil, err
	}

	m, err := menu.NewMenu(salonID, spec)
	if err != nil {
		return nil, errs.Tag(err, ErrInvalidMenu)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Menus().Create(ctx, tx.DB(), m, uc.clock.Now()); err != nil {
			return errs.Tag(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.menuQueries.GetForSalon(ctx, salonID, m.ID())
}

func (uc *menuCommandsImpl) UpdateMenu(ctx context.Context, salonID, menuID uuid.UUID, req reqdto.UpdateMenuRequest) (*queries.MenuView, error) {
	existing, err := uc.menuQueries.GetForSalon(ctx, salonID, menuID)
	if err != nil {
		return nil, err
	}
	spec := req.ToSpec(existing)
	if err := uc.validateReferences(ctx, salonID, spec); err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Menus().FindByID(ctx, tx.DB(), menuID)
		if err != nil {
			return mapLookupErr(err, ErrMenuNotFound)
		}
		if m.SalonID() != salonID {
			return ErrMenuNotFound
		}
		if err := m.Update(spec); err != nil {
			return errs.Tag(err, ErrInvalidMenu)
		}
		if err := tx.Menus().Update(ctx, tx.DB(), m, uc.clock.Now()); err != nil {
			return mapLookupErr(err, ErrMenuNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.menuQueries.GetForSalon(ctx, salonID, menuID)
}

// DeactivateMenu is a soft delete; existing reservations keep their price snapshot.
func (uc *menuCommandsImpl) DeactivateMenu(ctx context.Context, salonID, menuID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Menus().Deactivate(ctx, tx.DB(), salonID, menuID); err != nil {
			return mapLookupErr(err, ErrMenuNotFound)
		}
		return nil
	})
}

func (uc *menuCommandsImpl) validateReferences(ctx context.Context, salonID uuid.UUID, spec menu.Spec) error {
	reads := uc.uow.CommandReads()

	if spec.CategoryID != uuid.Nil {
		category, err := reads.CategoryByID(ctx, spec.CategoryID)
		if err != nil {
			return mapLookupErr(err, ErrCategoryNotFound)
		}
		if category.SalonID != salonID {
			return ErrCategoryNotFound
		}
	}

	divisions := slices.Clone(spec.DivisionIDs)
	slices.SortFunc(divisions, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	divisions = slices.Compact(divisions)
	if len(divisions) == 0 {
		return nil
	}
	n, err := reads.CountDivisions(ctx, salonID, divisions)
	if err != nil {
		return errs.Tag(err, ErrDatabaseOperationFailed)
	}
	if n != len(divisions) {
		return ErrDivisionsNotFound
	}
	return nil
}

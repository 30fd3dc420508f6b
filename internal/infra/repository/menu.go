package repository

import (
	"context"
	"time"

	"salon-reserve/internal/domain/menu"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/repository/converter"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MenuWriteQueries interface {
	CreateMenu(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMenuParams) error
	UpdateMenu(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMenuParams) (int64, error)
	DeactivateMenu(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivateMenuParams) (int64, error)
	DeleteMenuDivisions(ctx context.Context, db sqlc.DBTX, menuID uuid.UUID) error
	InsertMenuDivision(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertMenuDivisionParams) error
	GetMenuByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Menus, error)
	ListMenuDivisionIDs(ctx context.Context, db sqlc.DBTX, menuID uuid.UUID) ([]uuid.UUID, error)
}

type MenuRepository struct {
	queries MenuWriteQueries
	db      sqlc.DBTX
}

func NewMenuRepository(queries MenuWriteQueries, db sqlc.DBTX) *MenuRepository {
	return &MenuRepository{
		queries: queries,
		db:      db,
	}
}

// FindByID loads the menu aggregate with its division ids.
func (r *MenuRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*menu.Menu, error) {
	row, err := r.queries.GetMenuByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get menu", err)
	}
	divisionIDs, err := r.queries.ListMenuDivisionIDs(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu divisions", err)
	}
	return converter.MenuFromInfra(row, divisionIDs), nil
}

func (r *MenuRepository) Create(ctx context.Context, tx sqlc.DBTX, m *menu.Menu, now time.Time) error {
	if err := r.queries.CreateMenu(ctx, tx, converter.MenuToCreateParams(m, now)); err != nil {
		return infra.WrapRepoErr("failed to create menu", err)
	}
	return r.replaceDivisions(ctx, tx, m)
}

func (r *MenuRepository) Update(ctx context.Context, tx sqlc.DBTX, m *menu.Menu, now time.Time) error {
	n, err := r.queries.UpdateMenu(ctx, tx, converter.MenuToUpdateParams(m, now))
	if err != nil {
		return infra.WrapRepoErr("failed to update menu", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("menu not found", nil, infra.KindNotFound)
	}
	return r.replaceDivisions(ctx, tx, m)
}

func (r *MenuRepository) Deactivate(ctx context.Context, tx sqlc.DBTX, salonID, menuID uuid.UUID) error {
	n, err := r.queries.DeactivateMenu(ctx, tx, sqlc.DeactivateMenuParams{ID: menuID, SalonID: salonID})
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate menu", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("menu not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MenuRepository) replaceDivisions(ctx context.Context, tx sqlc.DBTX, m *menu.Menu) error {
	if err := r.queries.DeleteMenuDivisions(ctx, tx, m.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear menu divisions", err)
	}
	for _, divisionID := range m.DivisionIDs() {
		err := r.queries.InsertMenuDivision(ctx, tx, sqlc.InsertMenuDivisionParams{
			MenuID:     m.ID(),
			DivisionID: divisionID,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to attach menu division", err)
		}
	}
	return nil
}

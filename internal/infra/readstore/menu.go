package readstore

import (
	"context"

	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/repository/converter"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/pkg/pgconv"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MenuReadQueries interface {
	GetMenuByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Menus, error)
	ListMenuDivisionIDs(ctx context.Context, db sqlc.DBTX, menuID uuid.UUID) ([]uuid.UUID, error)
	ListMenusBySalon(ctx context.Context, db sqlc.DBTX, arg sqlc.ListMenusBySalonParams) ([]sqlc.Menus, error)
	ListMenuDivisionsBySalon(ctx context.Context, db sqlc.DBTX, salonID uuid.UUID) ([]sqlc.MenuDivisionAssociations, error)
	GetMenuCategoryByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.MenuCategories, error)
	ListMenuCategoriesBySalon(ctx context.Context, db sqlc.DBTX, salonID uuid.UUID) ([]sqlc.MenuCategories, error)
	CountSalonDivisions(ctx context.Context, db sqlc.DBTX, arg sqlc.CountSalonDivisionsParams) (int64, error)
}

type MenuReadStore struct {
	queries MenuReadQueries
	db      sqlc.DBTX
}

func NewMenuReadStore(queries MenuReadQueries, db sqlc.DBTX) *MenuReadStore {
	return &MenuReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MenuReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MenuView, error) {
	row, err := r.queries.GetMenuByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get menu by id", err)
	}

	divisionIDs, err := r.queries.ListMenuDivisionIDs(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu divisions", err)
	}
	return toMenuView(row, divisionIDs), nil
}

func (r *MenuReadStore) ListBySalon(ctx context.Context, salonID uuid.UUID, onlyActive bool) ([]*queries.MenuView, error) {
	rows, err := r.queries.ListMenusBySalon(ctx, r.db, sqlc.ListMenusBySalonParams{
		SalonID:    salonID,
		OnlyActive: onlyActive,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menus", err)
	}

	assocs, err := r.queries.ListMenuDivisionsBySalon(ctx, r.db, salonID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu divisions", err)
	}
	divisionsByMenu := make(map[uuid.UUID][]uuid.UUID, len(rows))
	for _, a := range assocs {
		divisionsByMenu[a.MenuID] = append(divisionsByMenu[a.MenuID], a.DivisionID)
	}

	views := make([]*queries.MenuView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toMenuView(row, divisionsByMenu[row.ID]))
	}
	return views, nil
}

func (r *MenuReadStore) FindCategoryByID(ctx context.Context, id uuid.UUID) (*queries.MenuCategoryView, error) {
	row, err := r.queries.GetMenuCategoryByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get menu category", err)
	}
	return toMenuCategoryView(row), nil
}

func (r *MenuReadStore) ListCategories(ctx context.Context, salonID uuid.UUID) ([]*queries.MenuCategoryView, error) {
	rows, err := r.queries.ListMenuCategoriesBySalon(ctx, r.db, salonID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu categories", err)
	}
	views := make([]*queries.MenuCategoryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toMenuCategoryView(row))
	}
	return views, nil
}

// CountDivisions counts how many of ids are divisions of the salon.
func (r *MenuReadStore) CountDivisions(ctx context.Context, salonID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.queries.CountSalonDivisions(ctx, r.db, sqlc.CountSalonDivisionsParams{
		SalonID: salonID,
		Ids:     ids,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count menu divisions", err)
	}
	return int(n), nil
}

func toMenuView(row sqlc.Menus, divisionIDs []uuid.UUID) *queries.MenuView {
	if divisionIDs == nil {
		divisionIDs = []uuid.UUID{}
	}
	return &queries.MenuView{
		ID:              row.ID,
		SalonID:         row.SalonID,
		CategoryID:      row.CategoryID,
		DivisionIDs:     divisionIDs,
		Name:            row.Name,
		Description:     row.Description,
		PriceWithoutTax: row.PriceWithoutTax,
		OffPrice:        int8Ptr(row.OffPrice),
		DurationMinutes: int(row.DurationMinutes),
		IsActive:        row.IsActive,
		IsCoupon:        row.IsCoupon,
		DiscountAmount:  int8Ptr(row.DiscountAmount),
		ValidFrom:       converter.DatePtrFromPgtype(row.ValidFrom),
		ValidUntil:      converter.DatePtrFromPgtype(row.ValidUntil),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toMenuCategoryView(row sqlc.MenuCategories) *queries.MenuCategoryView {
	return &queries.MenuCategoryView{
		ID:        row.ID,
		SalonID:   row.SalonID,
		Name:      row.Name,
		SortOrder: int(row.SortOrder),
	}
}

func int8Ptr(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}

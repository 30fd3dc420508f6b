package readstore

import (
	"context"

	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/infra"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/pkg/pgconv"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindOperatorByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindOperatorByIDRow, error)
	FindOperatorByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Operators, error)
	FindCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindCustomerByIDRow, error)
	FindCustomerByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Customers, error)
	ListActiveOperatorsBySalon(ctx context.Context, db sqlc.DBTX, salonID uuid.UUID) ([]sqlc.ListActiveOperatorsBySalonRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindOperatorByID(ctx context.Context, id uuid.UUID) (*queries.OperatorView, error) {
	row, err := r.queries.FindOperatorByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("operator not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find operator by ID", err)
	}

	return &queries.OperatorView{
		ID:        row.ID,
		SalonID:   row.SalonID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      row.Role,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}, nil
}

// ListActiveOperators returns the salon's bookable operators ordered by name.
func (r *UserReadStore) ListActiveOperators(ctx context.Context, salonID uuid.UUID) ([]*queries.OperatorView, error) {
	rows, err := r.queries.ListActiveOperatorsBySalon(ctx, r.db, salonID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list salon operators", err)
	}

	views := make([]*queries.OperatorView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.OperatorView{
			ID:       row.ID,
			SalonID:  row.SalonID,
			Name:     row.Name,
			Role:     row.Role,
			IsActive: true,
		})
	}
	return views, nil
}

func (r *UserReadStore) FindCustomerByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row, err := r.queries.FindCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}

	return &queries.CustomerView{
		ID:        row.ID,
		SalonID:   row.SalonID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}, nil
}

// FindByEmail looks up operators first, then customers, and returns the password hash.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	op, err := r.queries.FindOperatorByEmail(ctx, r.db, email)
	if err == nil {
		return toAuthorizedUserViewFromOperator(op), op.PasswordHash, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, "", infra.WrapRepoErr("failed to find operator by email", err)
	}

	cu, err := r.queries.FindCustomerByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find customer by email", err)
	}
	return toAuthorizedUserViewFromCustomer(cu), cu.PasswordHash, nil
}

func toAuthorizedUserViewFromOperator(row sqlc.Operators) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		SalonID:  row.SalonID,
		Kind:     string(user.KindOperator),
		Role:     row.Role,
		Name:     row.Name,
		Email:    row.Email,
		IsActive: row.IsActive,
	}
}

func toAuthorizedUserViewFromCustomer(row sqlc.Customers) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		SalonID:  row.SalonID,
		Kind:     string(user.KindCustomer),
		Name:     row.Name,
		Email:    row.Email,
		IsActive: row.IsActive,
	}
}

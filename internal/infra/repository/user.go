package repository

import (
	"context"

	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/pkg/pgconv"
	sqlc "salon-reserve/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	UpdateOperatorLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	UpdateCustomerLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	LockCustomer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, kind user.Kind, userID uuid.UUID) error {
	var err error
	switch kind {
	case user.KindOperator:
		err = r.queries.UpdateOperatorLastLogin(ctx, tx, userID)
	case user.KindCustomer:
		err = r.queries.UpdateCustomerLastLogin(ctx, tx, userID)
	default:
		return infra.WrapRepoErr("unsupported user kind "+kind.String(), nil, infra.KindConstraint)
	}
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

// LockCustomer holds the customer row until the transaction ends, serializing
// that customer's reservation commits.
func (r *UserRepository) LockCustomer(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID) error {
	if _, err := r.queries.LockCustomer(ctx, tx, customerID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock customer", err)
	}
	return nil
}

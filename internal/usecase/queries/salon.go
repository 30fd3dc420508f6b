package queries

import (
	"context"

	"salon-reserve/internal/infra"

	"github.com/google/uuid"
)

type SalonOperatorReadStore interface {
	ListActiveOperators(ctx context.Context, salonID uuid.UUID) ([]*OperatorView, error)
}

type SalonQueries interface {
	Get(ctx context.Context, salonID uuid.UUID) (*SalonView, error)
	// ListOperators returns the salon's active operators, the entry point of the booking calendar.
	ListOperators(ctx context.Context, salonID uuid.UUID) ([]*OperatorView, error)
}

type salonQueriesImpl struct {
	salons    SalonReadStore
	operators SalonOperatorReadStore
}

func NewSalonQueries(salons SalonReadStore, operators SalonOperatorReadStore) SalonQueries {
	return &salonQueriesImpl{
		salons:    salons,
		operators: operators,
	}
}

func (q *salonQueriesImpl) Get(ctx context.Context, salonID uuid.UUID) (*SalonView, error) {
	s, err := q.salons.FindByID(ctx, salonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, err
	}
	return s, nil
}

func (q *salonQueriesImpl) ListOperators(ctx context.Context, salonID uuid.UUID) ([]*OperatorView, error) {
	// an unknown salon is a 404, not an empty list
	if _, err := q.Get(ctx, salonID); err != nil {
		return nil, err
	}
	return q.operators.ListActiveOperators(ctx, salonID)
}

package readstore

import (
	"context"

	"salon-reserve/internal/infra"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/pkg/pgconv"
	"salon-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type SalonReadQueries interface {
	GetSalonByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Salons, error)
}

type SalonReadStore struct {
	queries SalonReadQueries
	db      sqlc.DBTX
}

func NewSalonReadStore(queries SalonReadQueries, db sqlc.DBTX) *SalonReadStore {
	return &SalonReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SalonReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SalonView, error) {
	row, err := r.queries.GetSalonByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("salon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get salon", err)
	}
	return &queries.SalonView{
		ID:                          row.ID,
		Name:                        row.Name,
		Timezone:                    row.Timezone,
		CancellationDeadlineMinutes: int(row.CancellationDeadlineMinutes),
	}, nil
}

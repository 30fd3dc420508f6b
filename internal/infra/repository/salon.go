package repository

import (
	"context"

	"salon-reserve/internal/domain/salon"
	"salon-reserve/internal/infra"
	sqlc "salon-reserve/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SalonWriteQueries interface {
	UpdateSalonSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSalonSettingsParams) (int64, error)
}

type SalonRepository struct {
	queries SalonWriteQueries
}

func NewSalonRepository(queries SalonWriteQueries) *SalonRepository {
	return &SalonRepository{
		queries: queries,
	}
}

func (r *SalonRepository) UpdateSettings(ctx context.Context, tx sqlc.DBTX, salonID uuid.UUID, s salon.Settings) error {
	n, err := r.queries.UpdateSalonSettings(ctx, tx, sqlc.UpdateSalonSettingsParams{
		ID:                          salonID,
		Name:                        s.Name(),
		Timezone:                    s.Timezone(),
		CancellationDeadlineMinutes: int32(s.CancellationDeadlineMinutes()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update salon settings", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("salon not found", nil, infra.KindNotFound)
	}
	return nil
}

package readstore

import (
	"context"

	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/repository/converter"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/pkg/psqlbuilder"
	"salon-reserve/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotReadStore struct {
	db sqlc.DBTX
}

func NewSlotReadStore(db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		db: db,
	}
}

func buildSlotQuery(f queries.SlotFilter) squirrel.SelectBuilder {
	q := psqlbuilder.Select("operator_id", "slot_date", "slot_time", "is_booked").
		From("slots").
		Where(squirrel.Eq{"operator_id": f.OperatorID}).
		Where(squirrel.GtOrEq{"slot_date": converter.DateToPgtype(f.From)}).
		Where(squirrel.LtOrEq{"slot_date": converter.DateToPgtype(f.To)})
	if f.OnlyOpen {
		q = q.Where(squirrel.Eq{"is_booked": false})
	}
	return q.OrderBy("slot_date", "slot_time")
}

// List returns the operator's slots in [From, To] ordered by date then time.
func (r *SlotReadStore) List(ctx context.Context, f queries.SlotFilter) ([]*queries.SlotView, error) {
	sql, args, err := buildSlotQuery(f).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build slot query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	views := make([]*queries.SlotView, 0)
	for rows.Next() {
		var (
			operatorID uuid.UUID
			date       pgtype.Date
			t          pgtype.Time
			isBooked   bool
		)
		if err := rows.Scan(&operatorID, &date, &t, &isBooked); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot", err)
		}
		views = append(views, &queries.SlotView{
			OperatorID: operatorID,
			Date:       converter.DateFromPgtype(date),
			Time:       converter.TimeFromPgtype(t),
			IsBooked:   isBooked,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slots", err)
	}
	return views, nil
}

// OpenOccurrences lists unbooked slot occurrences in [from, to].
func (r *SlotReadStore) OpenOccurrences(ctx context.Context, operatorID uuid.UUID, from, to slot.Date) ([]slot.Occurrence, error) {
	views, err := r.List(ctx, queries.SlotFilter{OperatorID: operatorID, From: from, To: to, OnlyOpen: true})
	if err != nil {
		return nil, err
	}
	occurrences := make([]slot.Occurrence, 0, len(views))
	for _, v := range views {
		occurrences = append(occurrences, slot.Occurrence{Date: v.Date, Time: v.Time})
	}
	return occurrences, nil
}

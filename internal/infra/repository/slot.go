package repository

import (
	"context"

	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/repository/converter"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/pkg/pgconv"
	"salon-reserve/internal/pkg/psqlbuilder"

	"github.com/google/uuid"
)

// insertBatchSize keeps a bulk insert well under the 65535 bind parameter limit.
const insertBatchSize = 500

type SlotWriteQueries interface {
	GetSlotForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSlotForUpdateParams) (sqlc.Slots, error)
	GetSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSlotParams) (sqlc.Slots, error)
	MarkSlotBooked(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkSlotBookedParams) (int64, error)
	FreeSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.FreeSlotParams) (int64, error)
	DeleteOpenSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteOpenSlotParams) (int64, error)
	DeleteOpenSlotsByDate(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteOpenSlotsByDateParams) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

// LockForUpdate row-locks the slot until the surrounding transaction ends.
func (r *SlotRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, operatorID uuid.UUID, date slot.Date, t slot.TimeOfDay) (*slot.Slot, error) {
	row, err := r.queries.GetSlotForUpdate(ctx, tx, sqlc.GetSlotForUpdateParams{
		OperatorID: operatorID,
		SlotDate:   converter.DateToPgtype(date),
		SlotTime:   converter.TimeToPgtype(t),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock slot", err)
	}
	return converter.SlotFromInfra(row), nil
}

func (r *SlotRepository) Get(ctx context.Context, tx sqlc.DBTX, operatorID uuid.UUID, date slot.Date, t slot.TimeOfDay) (*slot.Slot, error) {
	row, err := r.queries.GetSlot(ctx, tx, sqlc.GetSlotParams{
		OperatorID: operatorID,
		SlotDate:   converter.DateToPgtype(date),
		SlotTime:   converter.TimeToPgtype(t),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get slot", err)
	}
	return converter.SlotFromInfra(row), nil
}

// MarkBooked flips is_booked only if the slot is still open.
func (r *SlotRepository) MarkBooked(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error {
	n, err := r.queries.MarkSlotBooked(ctx, tx, sqlc.MarkSlotBookedParams{
		OperatorID: s.OperatorID(),
		SlotDate:   converter.DateToPgtype(s.Date()),
		SlotTime:   converter.TimeToPgtype(s.Time()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark slot booked", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("slot already booked", nil, infra.KindConflict)
	}
	return nil
}

func (r *SlotRepository) Free(ctx context.Context, tx sqlc.DBTX, operatorID uuid.UUID, date slot.Date, t slot.TimeOfDay) error {
	_, err := r.queries.FreeSlot(ctx, tx, sqlc.FreeSlotParams{
		OperatorID: operatorID,
		SlotDate:   converter.DateToPgtype(date),
		SlotTime:   converter.TimeToPgtype(t),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to free slot", err)
	}
	return nil
}

// InsertMany creates the given occurrences, leaving existing slots untouched.
func (r *SlotRepository) InsertMany(ctx context.Context, tx sqlc.DBTX, salonID, operatorID uuid.UUID, occurrences []slot.Occurrence) (int64, error) {
	var created int64
	for start := 0; start < len(occurrences); start += insertBatchSize {
		end := min(start+insertBatchSize, len(occurrences))

		builder := psqlbuilder.Insert("slots").
			Columns("operator_id", "slot_date", "slot_time", "salon_id")
		for _, o := range occurrences[start:end] {
			builder = builder.Values(operatorID, converter.DateToPgtype(o.Date), converter.TimeToPgtype(o.Time), salonID)
		}
		query, args, err := builder.Suffix("ON CONFLICT (operator_id, slot_date, slot_time) DO NOTHING").ToSql()
		if err != nil {
			return created, errs.Wrap(err, "failed to build slot insert")
		}

		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return created, infra.WrapRepoErr("failed to insert slots", err)
		}
		created += tag.RowsAffected()
	}
	return created, nil
}

// DeleteOpen removes one unbooked slot. A booked slot is a conflict, a missing one not found.
func (r *SlotRepository) DeleteOpen(ctx context.Context, tx sqlc.DBTX, operatorID uuid.UUID, date slot.Date, t slot.TimeOfDay) error {
	n, err := r.queries.DeleteOpenSlot(ctx, tx, sqlc.DeleteOpenSlotParams{
		OperatorID: operatorID,
		SlotDate:   converter.DateToPgtype(date),
		SlotTime:   converter.TimeToPgtype(t),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if n > 0 {
		return nil
	}

	if _, err := r.Get(ctx, tx, operatorID, date, t); err != nil {
		return err
	}
	return infra.WrapRepoErr("slot is booked", nil, infra.KindConflict)
}

func (r *SlotRepository) DeleteOpenByDate(ctx context.Context, tx sqlc.DBTX, operatorID uuid.UUID, date slot.Date) (int64, error) {
	n, err := r.queries.DeleteOpenSlotsByDate(ctx, tx, sqlc.DeleteOpenSlotsByDateParams{
		OperatorID: operatorID,
		SlotDate:   converter.DateToPgtype(date),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete slots by date", err)
	}
	return n, nil
}

package converter

import (
	"time"

	"salon-reserve/internal/domain/slot"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPgtype(d slot.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(time.UTC), Valid: true}
}

func DatePtrToPgtype(d *slot.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*d)
}

func DateFromPgtype(pd pgtype.Date) slot.Date {
	return slot.DateOf(pd.Time)
}

func DatePtrFromPgtype(pd pgtype.Date) *slot.Date {
	if !pd.Valid {
		return nil
	}
	d := DateFromPgtype(pd)
	return &d
}

func TimeToPgtype(t slot.TimeOfDay) pgtype.Time {
	return pgconv.MinutesToPgtime(t.Minutes())
}

// TimeFromPgtype drops seconds; slot times are stored on whole minutes.
func TimeFromPgtype(pt pgtype.Time) slot.TimeOfDay {
	t, err := slot.TimeOfDayFromMinutes(pgconv.MinutesFromPgtime(pt))
	if err != nil {
		return slot.TimeOfDay{}
	}
	return t
}

func SlotFromInfra(row sqlc.Slots) *slot.Slot {
	return slot.ReconstructSlot(row.SalonID, row.OperatorID, DateFromPgtype(row.SlotDate), TimeFromPgtype(row.SlotTime), row.IsBooked)
}

package converter

import (
	"salon-reserve/internal/domain/menu"
	"salon-reserve/internal/domain/reservation"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	price := res.Price()
	return sqlc.CreateReservationParams{
		ID:                          res.ID(),
		SalonID:                     res.SalonID(),
		CustomerID:                  res.CustomerID(),
		OperatorID:                  res.OperatorID(),
		MenuID:                      res.MenuID(),
		ReservationDate:             DateToPgtype(res.Date()),
		ReservationTime:             TimeToPgtype(res.Time()),
		Status:                      res.Status().String(),
		GelRemoval:                  res.GelRemoval(),
		OtherRequests:               res.OtherRequests().String(),
		PriceWithoutTax:             price.Base.Int64(),
		OffPrice:                    price.OffPrice.Int64(),
		DiscountAmount:              price.Discount.Int64(),
		TotalPrice:                  price.Total.Int64(),
		CancellationDeadlineMinutes: pgtype.Int4{Int32: int32(res.DeadlineMinutes()), Valid: true}, // #nosec G115 -- bounded by CHECK constraint
		CreatedAt:                   pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:                   pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationStatusParams(res *reservation.Reservation) sqlc.UpdateReservationStatusParams {
	params := sqlc.UpdateReservationStatusParams{
		ID:         res.ID(),
		Status:     res.Status().String(),
		CanceledAt: pgconv.TimePtrToPgtype(res.CanceledAt()),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
	}
	if by := res.CanceledBy(); by != nil {
		params.CanceledBy = pgtype.Text{String: by.String(), Valid: true}
	}
	return params
}

// DeadlineFromPgtype keeps NULL distinct so callers can apply the default.
func DeadlineFromPgtype(pi pgtype.Int4) *int {
	if !pi.Valid {
		return nil
	}
	d := int(pi.Int32)
	return &d
}

func ReservationFromInfra(row sqlc.Reservations) *reservation.Reservation {
	var canceledBy *reservation.Actor
	if row.CanceledBy.Valid {
		a := reservation.Actor(row.CanceledBy.String)
		canceledBy = &a
	}

	return reservation.ReconstructReservation(reservation.Snapshot{
		ID:            row.ID,
		CustomerID:    row.CustomerID,
		OperatorID:    row.OperatorID,
		SalonID:       row.SalonID,
		MenuID:        row.MenuID,
		Date:          DateFromPgtype(row.ReservationDate),
		Time:          TimeFromPgtype(row.ReservationTime),
		Status:        reservation.Status(row.Status),
		GelRemoval:    row.GelRemoval,
		OtherRequests: row.OtherRequests,
		Price: reservation.PriceSnapshot{
			Base:     menu.Price(row.PriceWithoutTax),
			OffPrice: menu.Price(row.OffPrice),
			Discount: menu.Price(row.DiscountAmount),
			Total:    menu.Price(row.TotalPrice),
		},
		DeadlineMinutes: DeadlineFromPgtype(row.CancellationDeadlineMinutes),
		CanceledAt:      pgconv.TimePtrFromPgtype(row.CanceledAt),
		CanceledBy:      canceledBy,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

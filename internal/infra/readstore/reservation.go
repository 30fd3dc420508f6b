package readstore

import (
	"context"
	"time"

	"salon-reserve/internal/domain/menu"
	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/infra"
	"salon-reserve/internal/infra/repository/converter"
	sqlc "salon-reserve/internal/infra/sqlc/generated"
	"salon-reserve/internal/pkg/pgconv"
	"salon-reserve/internal/pkg/psqlbuilder"
	"salon-reserve/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	HasUpcomingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.HasUpcomingReservationParams) (bool, error)
	ListCustomerCancellationsSince(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCustomerCancellationsSinceParams) ([]sqlc.ListCustomerCancellationsSinceRow, error)
	ListUpcomingReservationsByCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingReservationsByCustomerParams) ([]sqlc.ListUpcomingReservationsByCustomerRow, error)
	ListPastReservationsByCustomerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPastReservationsByCustomerFirstPageParams) ([]sqlc.ListPastReservationsByCustomerFirstPageRow, error)
	ListPastReservationsByCustomerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPastReservationsByCustomerKeysetParams) ([]sqlc.ListPastReservationsByCustomerKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

// customerRow is the column set shared by the per-customer list queries.
type customerRow = sqlc.ListUpcomingReservationsByCustomerRow

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return toReservationView(row), nil
}

// HasUpcoming reports whether the customer holds a reserved booking after (today, now).
func (r *ReservationReadStore) HasUpcoming(ctx context.Context, customerID uuid.UUID, today slot.Date, now slot.TimeOfDay) (bool, error) {
	exists, err := r.queries.HasUpcomingReservation(ctx, r.db, sqlc.HasUpcomingReservationParams{
		CustomerID:      customerID,
		ReservationDate: converter.DateToPgtype(today),
		ReservationTime: converter.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check upcoming reservation", err)
	}
	return exists, nil
}

// CancellationsSince lists customer-initiated cancellations after since, newest first.
func (r *ReservationReadStore) CancellationsSince(ctx context.Context, customerID uuid.UUID, since time.Time) ([]reservation.CancellationRecord, error) {
	rows, err := r.queries.ListCustomerCancellationsSince(ctx, r.db, sqlc.ListCustomerCancellationsSinceParams{
		CustomerID: customerID,
		CanceledAt: pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cancellations", err)
	}

	records := make([]reservation.CancellationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, reservation.CancellationRecord{
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
			CanceledAt: pgconv.TimeFromPgtype(row.CanceledAt),
		})
	}
	return records, nil
}

func (r *ReservationReadStore) ListUpcomingByCustomer(ctx context.Context, customerID uuid.UUID, today slot.Date, now slot.TimeOfDay) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListUpcomingReservationsByCustomer(ctx, r.db, sqlc.ListUpcomingReservationsByCustomerParams{
		CustomerID:      customerID,
		ReservationDate: converter.DateToPgtype(today),
		ReservationTime: converter.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming reservations", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toReservationViewFromCustomerRow(row))
	}
	return views, nil
}

func (r *ReservationReadStore) ListPastByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, today slot.Date, now slot.TimeOfDay, limit int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListPastReservationsByCustomerFirstPage(ctx, r.db, sqlc.ListPastReservationsByCustomerFirstPageParams{
		CustomerID:      customerID,
		ReservationDate: converter.DateToPgtype(today),
		ReservationTime: converter.TimeToPgtype(now),
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list past reservations first page", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toReservationViewFromCustomerRow(customerRow(row)))
	}
	return views, nil
}

func (r *ReservationReadStore) ListPastByCustomerKeyset(ctx context.Context, customerID uuid.UUID, today slot.Date, now slot.TimeOfDay, after slot.Occurrence, afterID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListPastReservationsByCustomerKeyset(ctx, r.db, sqlc.ListPastReservationsByCustomerKeysetParams{
		CustomerID: customerID,
		Today:      converter.DateToPgtype(today),
		NowTime:    converter.TimeToPgtype(now),
		AfterDate:  converter.DateToPgtype(after.Date),
		AfterTime:  converter.TimeToPgtype(after.Time),
		AfterID:    afterID,
		PageLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list past reservations keyset", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toReservationViewFromCustomerRow(customerRow(row)))
	}
	return views, nil
}

var salonReservationColumns = []string{
	"r.id", "r.salon_id", "r.customer_id", "r.operator_id", "r.menu_id",
	"r.reservation_date", "r.reservation_time", "r.status", "r.gel_removal", "r.other_requests",
	"r.price_without_tax", "r.off_price", "r.discount_amount", "r.total_price",
	"r.cancellation_deadline_minutes", "r.canceled_at", "r.canceled_by", "r.created_at", "r.updated_at",
	"m.name", "o.name", "c.name",
}

func buildSalonReservationQuery(salonID uuid.UUID, f queries.ReservationFilters) squirrel.SelectBuilder {
	q := psqlbuilder.Select(salonReservationColumns...).
		From("reservations r").
		Join("menus m ON m.id = r.menu_id").
		Join("operators o ON o.id = r.operator_id").
		Join("customers c ON c.id = r.customer_id").
		Where(squirrel.Eq{"r.salon_id": salonID})
	if f.From != nil {
		q = q.Where(squirrel.GtOrEq{"r.reservation_date": converter.DateToPgtype(*f.From)})
	}
	if f.To != nil {
		q = q.Where(squirrel.LtOrEq{"r.reservation_date": converter.DateToPgtype(*f.To)})
	}
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"r.status": *f.Status})
	}
	if f.OperatorID != nil {
		q = q.Where(squirrel.Eq{"r.operator_id": *f.OperatorID})
	}
	return q.OrderBy("r.reservation_date", "r.reservation_time", "r.id")
}

// ListBySalon serves the operator's reservation list and export.
func (r *ReservationReadStore) ListBySalon(ctx context.Context, salonID uuid.UUID, f queries.ReservationFilters) ([]*queries.ReservationView, error) {
	sql, args, err := buildSalonReservationQuery(salonID, f).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list salon reservations", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		var row sqlc.GetReservationByIDRow
		if err := rows.Scan(
			&row.ID, &row.SalonID, &row.CustomerID, &row.OperatorID, &row.MenuID,
			&row.ReservationDate, &row.ReservationTime, &row.Status, &row.GelRemoval, &row.OtherRequests,
			&row.PriceWithoutTax, &row.OffPrice, &row.DiscountAmount, &row.TotalPrice,
			&row.CancellationDeadlineMinutes, &row.CanceledAt, &row.CanceledBy, &row.CreatedAt, &row.UpdatedAt,
			&row.MenuName, &row.OperatorName, &row.CustomerName,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, toReservationView(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

func toReservationViewFromCustomerRow(row customerRow) *queries.ReservationView {
	return toReservationView(sqlc.GetReservationByIDRow{
		ID:                          row.ID,
		SalonID:                     row.SalonID,
		CustomerID:                  row.CustomerID,
		OperatorID:                  row.OperatorID,
		MenuID:                      row.MenuID,
		ReservationDate:             row.ReservationDate,
		ReservationTime:             row.ReservationTime,
		Status:                      row.Status,
		GelRemoval:                  row.GelRemoval,
		OtherRequests:               row.OtherRequests,
		PriceWithoutTax:             row.PriceWithoutTax,
		OffPrice:                    row.OffPrice,
		DiscountAmount:              row.DiscountAmount,
		TotalPrice:                  row.TotalPrice,
		CancellationDeadlineMinutes: row.CancellationDeadlineMinutes,
		CanceledAt:                  row.CanceledAt,
		CanceledBy:                  row.CanceledBy,
		CreatedAt:                   row.CreatedAt,
		UpdatedAt:                   row.UpdatedAt,
		MenuName:                    row.MenuName,
		OperatorName:                row.OperatorName,
	})
}

func toReservationView(row sqlc.GetReservationByIDRow) *queries.ReservationView {
	price := reservation.PriceSnapshot{
		Base:     menu.Price(row.PriceWithoutTax),
		OffPrice: menu.Price(row.OffPrice),
		Discount: menu.Price(row.DiscountAmount),
		Total:    menu.Price(row.TotalPrice),
	}

	return &queries.ReservationView{
		ID:                          row.ID,
		SalonID:                     row.SalonID,
		CustomerID:                  row.CustomerID,
		CustomerName:                row.CustomerName,
		OperatorID:                  row.OperatorID,
		OperatorName:                row.OperatorName,
		MenuID:                      row.MenuID,
		MenuName:                    row.MenuName,
		Date:                        converter.DateFromPgtype(row.ReservationDate),
		Time:                        converter.TimeFromPgtype(row.ReservationTime),
		Status:                      row.Status,
		GelRemoval:                  row.GelRemoval,
		OtherRequests:               row.OtherRequests,
		PriceWithoutTax:             row.PriceWithoutTax,
		OffPrice:                    row.OffPrice,
		DiscountAmount:              row.DiscountAmount,
		TotalPrice:                  row.TotalPrice,
		TotalWithoutGelRemoval:      price.TotalWithoutGelRemoval().Int64(),
		CancellationDeadlineMinutes: reservation.DeadlineOrDefault(converter.DeadlineFromPgtype(row.CancellationDeadlineMinutes)),
		CanceledAt:                  pgconv.TimePtrFromPgtype(row.CanceledAt),
		CanceledBy:                  pgconv.StringPtrFromPgtype(row.CanceledBy),
		CreatedAt:                   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:                   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

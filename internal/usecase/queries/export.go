package queries

import (
	"context"
	"io"

	"salon-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrExportFailed = errs.New("reservation export failed")

// ReservationExporter renders reservation rows into a document format.
type ReservationExporter interface {
	ContentType() string
	FileExtension() string
	WriteReservations(w io.Writer, sheet string, rows []*ReservationView) error
}

type ExportQueries interface {
	ExportReservations(ctx context.Context, salonID uuid.UUID, filters ReservationFilters, w io.Writer) error
	ContentType() string
	FileName(filters ReservationFilters) string
}

type exportQueriesImpl struct {
	reservations ReservationQueries
	exporter     ReservationExporter
}

func NewExportQueries(reservations ReservationQueries, exporter ReservationExporter) ExportQueries {
	return &exportQueriesImpl{
		reservations: reservations,
		exporter:     exporter,
	}
}

func (q *exportQueriesImpl) ExportReservations(ctx context.Context, salonID uuid.UUID, filters ReservationFilters, w io.Writer) error {
	rows, err := q.reservations.ListForSalon(ctx, salonID, filters)
	if err != nil {
		return err
	}
	if err := q.exporter.WriteReservations(w, "reservations", rows); err != nil {
		return errs.Mark(errs.Wrap(err, "write reservations"), ErrExportFailed)
	}
	return nil
}

func (q *exportQueriesImpl) ContentType() string { return q.exporter.ContentType() }

func (q *exportQueriesImpl) FileName(filters ReservationFilters) string {
	name := "reservations"
	if filters.From != nil {
		name += "_" + filters.From.String()
	}
	if filters.To != nil {
		name += "_" + filters.To.String()
	}
	return name + q.exporter.FileExtension()
}

//go:build unit

package queries_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/tests/common/builder"
	queriesmock "salon-reserve/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExportQueries(t *testing.T) {
	ctx := context.Background()
	salonID := uuid.New()
	from, to := slot.MustDate("2025-03-01"), slot.MustDate("2025-03-31")
	filters := queries.ReservationFilters{From: &from, To: &to}

	setup := func(t *testing.T) (*queriesmock.MockReservationQueries, *queriesmock.MockReservationExporter, queries.ExportQueries) {
		ctrl := gomock.NewController(t)
		reservations := queriesmock.NewMockReservationQueries(ctrl)
		exporter := queriesmock.NewMockReservationExporter(ctrl)
		return reservations, exporter, queries.NewExportQueries(reservations, exporter)
	}

	t.Run("writes the filtered rows", func(t *testing.T) {
		reservations, exporter, uc := setup(t)
		rows := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}
		var buf bytes.Buffer
		reservations.EXPECT().ListForSalon(ctx, salonID, filters).Return(rows, nil)
		exporter.EXPECT().WriteReservations(&buf, "reservations", rows).Return(nil)

		require.NoError(t, uc.ExportReservations(ctx, salonID, filters, &buf))
	})

	t.Run("writer failure is marked", func(t *testing.T) {
		reservations, exporter, uc := setup(t)
		reservations.EXPECT().ListForSalon(ctx, salonID, filters).Return(nil, nil)
		exporter.EXPECT().WriteReservations(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		err := uc.ExportReservations(ctx, salonID, filters, &bytes.Buffer{})

		assert.ErrorIs(t, err, queries.ErrExportFailed)
	})

	t.Run("file name carries the window", func(t *testing.T) {
		_, exporter, uc := setup(t)
		exporter.EXPECT().FileExtension().Return(".xlsx").Times(2)

		assert.Equal(t, "reservations_2025-03-01_2025-03-31.xlsx", uc.FileName(filters))
		assert.Equal(t, "reservations.xlsx", uc.FileName(queries.ReservationFilters{}))
	})
}

//go:build unit

package export_test

import (
	"bytes"
	"testing"

	"salon-reserve/internal/domain/reservation"
	"salon-reserve/internal/infra/export"
	"salon-reserve/internal/usecase/queries"
	"salon-reserve/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExporter_WriteReservations(t *testing.T) {
	canceledBy := reservation.ActorCustomer.String()
	first := builder.NewReservationBuilder().WithSlot("2025-03-05", "10:30").BuildView()
	first.GelRemoval = true
	first.TotalPrice = 6600
	second := builder.NewReservationBuilder().WithSlot("2025-03-06", "14:00").WithStatus(reservation.StatusCanceled).BuildView()
	second.CanceledBy = &canceledBy

	var buf bytes.Buffer
	err := export.NewExcelExporter().WriteReservations(&buf, "reservations", []*queries.ReservationView{first, second})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("reservations")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Reservation ID", rows[0][0])
	assert.Equal(t, []string{first.ID.String(), "2025-03-05", "10:30", "reserved"}, rows[1][:4])
	assert.Equal(t, "yes", rows[1][7])
	assert.Equal(t, "6600", rows[1][8])
	assert.Equal(t, "canceled", rows[2][3])
	assert.Equal(t, "customer", rows[2][10])
}

func TestExcelExporter_EmptyAndLongSheetName(t *testing.T) {
	var buf bytes.Buffer
	err := export.NewExcelExporter().WriteReservations(&buf, "reservations-for-the-whole-month-of-march", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	assert.Len(t, sheets[0], 31)

	rows, err := f.GetRows(sheets[0])
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

package export

import (
	"fmt"
	"io"

	"salon-reserve/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxSheetName    = 31
)

var reservationColumns = []string{
	"Reservation ID",
	"Date",
	"Time",
	"Status",
	"Customer",
	"Operator",
	"Menu",
	"Gel removal",
	"Total price",
	"Other requests",
	"Canceled by",
	"Created at",
}

// ExcelExporter writes reservation rows as an xlsx workbook.
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (ExcelExporter) ContentType() string   { return xlsxContentType }
func (ExcelExporter) FileExtension() string { return ".xlsx" }

func (e ExcelExporter) WriteReservations(w io.Writer, sheet string, rows []*queries.ReservationView) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if len(sheet) > maxSheetName {
		sheet = sheet[:maxSheetName]
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, sheet, 1, toCells(reservationColumns)); err != nil {
		return err
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(reservationColumns), 1)
		_ = f.SetCellStyle(sheet, "A1", endCell, style)
	}

	for i, r := range rows {
		canceledBy := ""
		if r.CanceledBy != nil {
			canceledBy = *r.CanceledBy
		}
		gel := "no"
		if r.GelRemoval {
			gel = "yes"
		}
		row := []any{
			r.ID.String(),
			r.Date.String(),
			r.Time.String(),
			r.Status,
			r.CustomerName,
			r.OperatorName,
			r.MenuName,
			gel,
			r.TotalPrice,
			r.OtherRequests,
			canceledBy,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}

func toCells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

var _ queries.ReservationExporter = ExcelExporter{}

/*
export.go - CSV and XLSX export of the filtered reconciled table

The CSV is comma-separated UTF-8 with a header row matching the reconciled
schema's canonical column names; dates format as 2006-01-02 and null cells
export empty. The XLSX export writes the same grid to a single worksheet.
*/
package dashboard

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/nwb/visit-engine/reconcile"
	"github.com/xuri/excelize/v2"
)

// exportColumns is the reconciled schema's column order.
var exportColumns = []string{
	reconcile.ColResponsibleCode,
	reconcile.ColResponsibleName,
	reconcile.ColClientCode,
	reconcile.ColClientName,
	reconcile.ColPlannedDate,
	reconcile.ColActualDate,
	reconcile.ColStatus,
	reconcile.ColFocus,
	reconcile.ColDaysSince,
	reconcile.ColTargetDays,
}

func exportRow(rec reconcile.ReconciledRecord) []string {
	return []string{
		rec.ResponsibleCode,
		rec.ResponsibleName,
		rec.ClientCode,
		rec.ClientName,
		rec.PlannedDate.String(),
		rec.ActualDate.String(),
		rec.Status,
		rec.Focus,
		rec.DaysSince.String(),
		rec.TargetDays.String(),
	}
}

// ExportCSV writes the table as CSV, header first.
func ExportCSV(w io.Writer, t reconcile.ReconciledTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportColumns); err != nil {
		return err
	}
	for _, rec := range t {
		if err := cw.Write(exportRow(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportXLSX writes the table as a single-sheet workbook.
func ExportXLSX(w io.Writer, t reconcile.ReconciledTable) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Visitas"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := make([]interface{}, len(exportColumns))
	for i, c := range exportColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, rec := range t {
		row := exportRow(rec)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

/*
Package ingest loads the two source tables from spreadsheet or CSV files and
hands them to the reconciliation engine.

SUPPORTED FORMATS:
  .xlsx  excelize, first worksheet
  .xls   extrame/xls, legacy BIFF workbooks
  .csv   stdlib encoding/csv, comma-separated UTF-8

The loader only produces raw string tables; header normalization and cell
coercion belong to the tabular package.
*/
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/nwb/visit-engine/tabular"
	"github.com/xuri/excelize/v2"
)

// maxXLSRows bounds legacy workbook reads; BIFF sheets cap at 65536 rows.
const maxXLSRows = 65536

// LoadFile reads a source file into a raw table. The table name is the file
// base name, used in schema error messages.
func LoadFile(path string) (tabular.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tabular.Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Load(bytes.NewReader(data), filepath.Base(path))
}

// Load reads a source stream into a raw table, dispatching on the file
// extension of name.
func Load(r io.Reader, name string) (tabular.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return tabular.Table{}, err
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(data)
	case ".xls":
		rows, err = readXLS(data)
	case ".csv":
		rows, err = readCSV(data)
	default:
		return tabular.Table{}, fmt.Errorf("%s: %w", name, tabular.ErrUnsupportedFormat)
	}
	if err != nil {
		return tabular.Table{}, fmt.Errorf("load %s: %w", name, err)
	}
	if len(rows) == 0 {
		return tabular.Table{}, fmt.Errorf("%s: %w", name, tabular.ErrEmptySheet)
	}

	return tabular.Table{Name: name, Columns: rows[0], Rows: rows[1:]}, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, tabular.ErrEmptySheet
	}
	return f.GetRows(sheet)
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, tabular.ErrEmptySheet
	}
	return wb.ReadAllCells(maxXLSRows), nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // tolerate ragged rows like the xlsx path
	return reader.ReadAll()
}

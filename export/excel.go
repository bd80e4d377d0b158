package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/lattice/model"
)

// defaultSheet is the sheet excelize creates with a new workbook.
const defaultSheet = "Sheet1"

// Sheet is one named frame in a workbook.
type Sheet struct {
	Name  string
	Frame *model.Frame
}

// writeSheet lays out the frame with its column labels on the first row and
// the record index in the first column.
func writeSheet(f *excelize.File, sheet Sheet) error {
	header := make([]interface{}, 0, len(sheet.Frame.Columns)+1)
	header = append(header, nil)
	for _, col := range sheet.Frame.Columns {
		header = append(header, col)
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}

	for i, rec := range sheet.Frame.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := make([]interface{}, 0, len(rec)+1)
		row = append(row, i)
		for _, v := range rec {
			row = append(row, v)
		}
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// exportWorkbook writes one sheet per entry, in order, and streams the
// workbook to w.
func exportWorkbook(sheets []Sheet, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if sheet.Frame == nil {
			return fmt.Errorf("%w: sheet %q", ErrNoFrame, sheet.Name)
		}
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
				return fmt.Errorf("naming sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("adding sheet %q: %w", sheet.Name, err)
		}
		if err := writeSheet(f, sheet); err != nil {
			return fmt.Errorf("writing sheet %q: %w", sheet.Name, err)
		}
	}
	f.SetActiveSheet(0)

	return f.Write(w)
}

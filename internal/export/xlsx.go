// Package export pushes finished reports beyond stdout: to .xlsx
// workbooks on disk and to Google Sheets.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX saves rows (headers first) as a single-sheet workbook at
// the given path.
func WriteXLSX(path string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("cell name (%d,%d): %w", i+1, j+1, err)
			}
			if err := f.SetCellValue(sheet, name, cell); err != nil {
				return fmt.Errorf("set cell %s: %w", name, err)
			}
		}
	}

	return f.SaveAs(path)
}

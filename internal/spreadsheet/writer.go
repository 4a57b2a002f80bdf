package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Column describes one export column.
type Column struct {
	Header string
	Width  float64
}

// WriteWorkbook builds a single-sheet workbook with a header row and
// one row of values per record. The caller owns closing the file.
func WriteWorkbook(sheet string, columns []Column, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := make([]interface{}, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
		if col.Width > 0 {
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
				return nil, err
			}
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

package handlers

import (
	"fmt"
	"strings"

	"hajj-admin/internal/spreadsheet"
)

// bodyRows converts JSON-decoded raw rows (header-keyed objects sent by
// the client-side spreadsheet parser) into spreadsheet rows. Number and
// bool cells are stringified; nulls become empty cells.
func bodyRows(raw []map[string]interface{}) []spreadsheet.Row {
	rows := make([]spreadsheet.Row, 0, len(raw))
	for _, m := range raw {
		row := spreadsheet.Row{}
		for header, value := range m {
			header = strings.TrimSpace(header)
			if header == "" || value == nil {
				continue
			}
			switch v := value.(type) {
			case string:
				row[header] = v
			case float64:
				if v == float64(int64(v)) {
					row[header] = fmt.Sprintf("%d", int64(v))
				} else {
					row[header] = fmt.Sprintf("%v", v)
				}
			default:
				row[header] = fmt.Sprintf("%v", v)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

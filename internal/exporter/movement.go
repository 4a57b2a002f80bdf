package exporter

import (
	"github.com/xuri/excelize/v2"

	"hajj-admin/internal/models"
	"hajj-admin/internal/spreadsheet"
)

// MovementDetailsWorkbook flattens grouped movements back into one row
// per pilgrim, the shape the schedule was imported from.
func MovementDetailsWorkbook(movements []models.Movement) (*excelize.File, error) {
	columns := []spreadsheet.Column{
		{Header: "Type", Width: 16},
		{Header: "From", Width: 14},
		{Header: "To", Width: 14},
		{Header: "Date", Width: 12},
		{Header: "Time", Width: 10},
		{Header: "Flight Number", Width: 14},
		{Header: "Al Rajhi ID", Width: 14},
		{Header: "Full Name", Width: 22},
		{Header: "Gender", Width: 10},
		{Header: "Passport Number", Width: 15},
		{Header: "Package Name", Width: 18},
	}

	var rows [][]interface{}
	for _, m := range movements {
		for _, d := range m.PilgrimDetails {
			rows = append(rows, []interface{}{
				m.Type,
				m.From,
				m.To,
				m.Date,
				m.Time,
				m.FlightNumber,
				d.ID,
				d.Name,
				d.Gender,
				d.PassportNumber,
				d.PackageName,
			})
		}
	}

	return spreadsheet.WriteWorkbook("Pilgrim Details", columns, rows)
}

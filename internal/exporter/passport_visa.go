package exporter

import (
	"github.com/xuri/excelize/v2"

	"hajj-admin/internal/models"
	"hajj-admin/internal/spreadsheet"
)

// PassportVisaWorkbook reproduces the import column layout so an export
// can be re-imported as-is. Dates are written MM/DD/YYYY.
func PassportVisaWorkbook(docs []models.PassportVisa) (*excelize.File, error) {
	columns := []spreadsheet.Column{
		{Header: "Pilgrim Name", Width: 20},
		{Header: "Passport Number", Width: 15},
		{Header: "Country", Width: 12},
		{Header: "Guide & Organizer", Width: 20},
		{Header: "Document Type", Width: 12},
		{Header: "Upload Date", Width: 12},
		{Header: "Uploaded By", Width: 15},
		{Header: "Status", Width: 10},
	}

	rows := make([][]interface{}, 0, len(docs))
	for _, doc := range docs {
		uploadDate := ""
		if !doc.UploadDate.IsZero() {
			uploadDate = doc.UploadDate.Format("01/02/2006")
		}
		organizer := doc.Organizer
		if organizer == "" {
			organizer = models.DefaultOrganizer
		}
		rows = append(rows, []interface{}{
			doc.Name,
			doc.PassportNumber,
			doc.Country,
			doc.Guide + " / " + organizer,
			doc.DocumentType,
			uploadDate,
			doc.UploadedBy,
			doc.Status,
		})
	}

	return spreadsheet.WriteWorkbook("Passport & Visa Data", columns, rows)
}

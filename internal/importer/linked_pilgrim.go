package importer

import (
	"time"

	"hajj-admin/internal/models"
	"hajj-admin/internal/spreadsheet"
)

// LinkedPilgrimRows maps link-import rows to linked-pilgrim records.
// Every imported link starts out Pending.
func LinkedPilgrimRows(rows []spreadsheet.Row, now time.Time) []models.LinkedPilgrim {
	pilgrims := make([]models.LinkedPilgrim, 0, len(rows))
	for _, row := range rows {
		nationality, _ := spreadsheet.CoerceString(row.Get("Nationality"), "Not specified")
		pilgrims = append(pilgrims, models.LinkedPilgrim{
			Name:        row.Get("Name"),
			Passport:    row.Get("Passport No"),
			Guide:       row.Get("Guide Name"),
			Status:      models.LinkPending,
			Nationality: nationality,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return pilgrims
}

// PilgrimLinks maps bulk-link rows to the partial pilgrim updates
// upserted by passport number.
type PilgrimLink struct {
	PassportNumber string
	Name           string
	GuideName      string
}

// PilgrimLinkRows extracts the upsert keys and fields from raw rows.
func PilgrimLinkRows(rows []spreadsheet.Row) []PilgrimLink {
	links := make([]PilgrimLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, PilgrimLink{
			PassportNumber: row.Get("Passport No"),
			Name:           row.Get("Name"),
			GuideName:      row.Get("Guide Name"),
		})
	}
	return links
}

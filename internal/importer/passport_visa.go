package importer

import (
	"strings"
	"time"

	"hajj-admin/internal/models"
	"hajj-admin/internal/spreadsheet"
)

// PassportVisaRows maps raw spreadsheet rows to document records.
// Unknown headers are ignored and missing cells degrade to defaults;
// the returned warnings count is the number of defaulted fields.
func PassportVisaRows(rows []spreadsheet.Row, now time.Time) ([]models.PassportVisa, int) {
	docs := make([]models.PassportVisa, 0, len(rows))
	warnings := 0

	for _, row := range rows {
		guide, organizer := SplitGuideOrganizer(row.Get("Guide & Organizer"))

		uploadDate, ok := spreadsheet.CoerceDate(row.Get("Upload Date"))
		if !ok {
			uploadDate = now
			warnings++
		}

		uploadedBy, ok := spreadsheet.CoerceString(row.Get("Uploaded By"), "System Import")
		if !ok {
			warnings++
		}

		docs = append(docs, models.PassportVisa{
			Name:           row.Get("Pilgrim Name"),
			PassportNumber: row.Get("Passport Number"),
			Country:        withDefault(row.Get("Country"), models.DefaultCountry),
			Guide:          guide,
			Organizer:      organizer,
			DocumentType:   withDefault(row.Get("Document Type"), models.DocTypeVisa),
			UploadDate:     uploadDate,
			UploadedBy:     uploadedBy,
			Status:         normalizeDocStatus(row.Get("Status")),
			DocumentName:   "Younis List",
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	return docs, warnings
}

// SplitGuideOrganizer splits the combined "Guide / Organizer" cell.
// A value without a separator is treated as the guide name.
func SplitGuideOrganizer(value string) (guide, organizer string) {
	guide = "Not Assigned"
	organizer = models.DefaultOrganizer

	value = strings.TrimSpace(value)
	if value == "" || value == "-" {
		return guide, organizer
	}
	if !strings.Contains(value, "/") {
		return value, organizer
	}

	parts := strings.SplitN(value, "/", 2)
	if g := strings.TrimSpace(parts[0]); g != "" {
		guide = g
	}
	if o := strings.TrimSpace(parts[1]); o != "" {
		organizer = o
	}
	return guide, organizer
}

func normalizeDocStatus(status string) string {
	// Legacy exports say "Uploaded" where the app says "Complete".
	if status == "Uploaded" {
		return models.DocStatusComplete
	}
	switch status {
	case models.DocStatusComplete, models.DocStatusMissing, models.DocStatusPending:
		return status
	}
	return models.DocStatusPending
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

package repositories

import (
	"testing"

	"hajj-admin/internal/models"
)

// A pilgrim holds one Passport row and one Visa row under the same
// passport number; when the file was attached to the later-inserted
// row, the lookup must still surface it.
func TestPreferDocumentWithFile(t *testing.T) {
	passportRow := models.PassportVisa{
		PassportNumber: "X123",
		DocumentType:   models.DocTypePassport,
		Status:         models.DocStatusPending,
	}
	visaRow := models.PassportVisa{
		PassportNumber: "X123",
		DocumentType:   models.DocTypeVisa,
		Status:         models.DocStatusComplete,
		FileDetails:    &models.FileDetails{Path: "documents/visa/X123.pdf"},
	}

	got := preferDocumentWithFile([]models.PassportVisa{passportRow, visaRow})
	if got.FileDetails == nil {
		t.Fatal("row with the attached file was not selected")
	}
	if got.FileDetails.Path != "documents/visa/X123.pdf" {
		t.Errorf("path = %q", got.FileDetails.Path)
	}
}

func TestPreferDocumentWithFileFallsBack(t *testing.T) {
	rows := []models.PassportVisa{
		{PassportNumber: "X123", DocumentType: models.DocTypePassport},
		{PassportNumber: "X123", DocumentType: models.DocTypeVisa},
	}

	got := preferDocumentWithFile(rows)
	if got.DocumentType != models.DocTypePassport {
		t.Errorf("fallback should be the first row, got %q", got.DocumentType)
	}
	if got.FileDetails != nil {
		t.Error("fallback row must keep FileDetails nil so callers can 404 on the file")
	}
}

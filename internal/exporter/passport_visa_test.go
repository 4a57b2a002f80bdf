package exporter

import (
	"testing"
	"time"

	"hajj-admin/internal/importer"
	"hajj-admin/internal/models"
	"hajj-admin/internal/spreadsheet"
)

// An export must survive a re-import: same passport numbers, same
// guide/organizer split, same statuses.
func TestPassportVisaExportRoundTrip(t *testing.T) {
	docs := []models.PassportVisa{
		{
			Name:           "Ahmed Ali",
			PassportNumber: "P1234567",
			Country:        "Egypt",
			Guide:          "Ahmad Saleh",
			Organizer:      "Al Noor Travel",
			DocumentType:   models.DocTypePassport,
			UploadDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			UploadedBy:     "admin",
			Status:         models.DocStatusComplete,
		},
		{
			Name:           "Fatima Khan",
			PassportNumber: "P7654321",
			Country:        models.DefaultCountry,
			Guide:          "Not Assigned",
			DocumentType:   models.DocTypeVisa,
			UploadDate:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			UploadedBy:     "System Import",
			Status:         models.DocStatusPending,
		},
	}

	wb, err := PassportVisaWorkbook(docs)
	if err != nil {
		t.Fatal(err)
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	rows, err := spreadsheet.ReadRows(buf, "export.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	reimported, warnings := importer.PassportVisaRows(rows, time.Now())
	if len(reimported) != len(docs) {
		t.Fatalf("got %d rows back, want %d", len(reimported), len(docs))
	}
	if warnings != 0 {
		t.Errorf("round trip produced %d warnings", warnings)
	}

	for i, doc := range docs {
		got := reimported[i]
		if got.PassportNumber != doc.PassportNumber {
			t.Errorf("row %d: passport %q, want %q", i, got.PassportNumber, doc.PassportNumber)
		}
		if got.Guide != doc.Guide {
			t.Errorf("row %d: guide %q, want %q", i, got.Guide, doc.Guide)
		}
		if got.Status != doc.Status {
			t.Errorf("row %d: status %q, want %q", i, got.Status, doc.Status)
		}
		if !got.UploadDate.Equal(doc.UploadDate) {
			t.Errorf("row %d: uploadDate %v, want %v", i, got.UploadDate, doc.UploadDate)
		}
	}

	// An empty organizer is rejoined with the default so the combined
	// cell never ends in a bare separator.
	if reimported[1].Organizer != models.DefaultOrganizer {
		t.Errorf("organizer = %q", reimported[1].Organizer)
	}
}

func TestMatchingStay(t *testing.T) {
	p := models.HotelPilgrim{
		Hotel1: models.HotelStay{Name: "Makkah Towers", RoomType: "Quad"},
		Hotel2: models.HotelStay{Name: "Madinah Plaza", RoomType: "Double"},
	}

	stay, ok := MatchingStay(p, "makkah towers")
	if !ok || stay.RoomType != "Quad" {
		t.Errorf("stay = %+v, ok = %v", stay, ok)
	}
	stay, ok = MatchingStay(p, "MADINAH PLAZA")
	if !ok || stay.RoomType != "Double" {
		t.Errorf("stay = %+v, ok = %v", stay, ok)
	}
	if _, ok := MatchingStay(p, "Aziziyah Inn"); ok {
		t.Error("unrelated hotel matched")
	}
	if _, ok := MatchingStay(p, ""); ok {
		t.Error("empty query matched")
	}
}

// A partial hotel name fetches pilgrims in the listing, so the export
// for the same name must keep them too.
func TestMatchingStayPartialName(t *testing.T) {
	p := models.HotelPilgrim{
		Hotel1: models.HotelStay{Name: "Makkah Towers", RoomType: "Quad"},
		Hotel2: models.HotelStay{Name: "Grand Makkah Plaza", RoomType: "Double"},
	}

	stay, ok := MatchingStay(p, "Makkah")
	if !ok {
		t.Fatal("substring query did not match")
	}
	if stay.RoomType != "Quad" {
		t.Errorf("both stays match; the first must win, got %+v", stay)
	}

	stay, ok = MatchingStay(p, "plaza")
	if !ok || stay.RoomType != "Double" {
		t.Errorf("stay = %+v, ok = %v", stay, ok)
	}
}

func TestMovementDetailsWorkbookFlattens(t *testing.T) {
	movements := []models.Movement{
		{
			Type:         models.MovementArrival,
			FlightNumber: "SV101",
			Date:         "2024-06-01",
			Time:         "14:30",
			PilgrimDetails: []models.PilgrimDetail{
				{ID: "R1", Name: "Ahmed Ali"},
				{ID: "R2", Name: "Fatima Khan"},
			},
		},
	}

	wb, err := MovementDetailsWorkbook(movements)
	if err != nil {
		t.Fatal(err)
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	rows, err := spreadsheet.ReadRows(buf, "movements.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want one per pilgrim", len(rows))
	}
	if rows[0].Get("Flight Number") != "SV101" || rows[1].Get("Full Name") != "Fatima Khan" {
		t.Errorf("rows = %v", rows)
	}
}

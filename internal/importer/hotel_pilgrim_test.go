package importer

import (
	"testing"
	"time"

	"hajj-admin/internal/spreadsheet"
)

func TestHotelPilgrimRows(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []spreadsheet.Row{
		{
			"Al Rajhi ID":       "R1",
			"Full Name":         "Ahmed Ali",
			"Passport Number":   "P1234567",
			"Age":               "42.0",
			"Hotel 1":           "Makkah Towers",
			"Hotel 1 Check In":  "2024-06-01",
			"Hotel 1 Check Out": "2024-06-10",
			"Room Type 1":       "Quad",
			"Hotel 2":           "Madinah Plaza",
		},
	}

	pilgrims, warnings := HotelPilgrimRows(rows, now)
	if len(pilgrims) != 1 {
		t.Fatalf("got %d pilgrims, want 1", len(pilgrims))
	}
	p := pilgrims[0]

	if p.Age == nil || *p.Age != 42 {
		t.Errorf("age = %v", p.Age)
	}
	if p.Hotel1.Name != "Makkah Towers" || p.Hotel1.RoomType != "Quad" {
		t.Errorf("hotel1 = %+v", p.Hotel1)
	}
	if p.Hotel1.CheckIn == nil || p.Hotel1.CheckIn.Format("2006-01-02") != "2024-06-01" {
		t.Errorf("checkIn = %v", p.Hotel1.CheckIn)
	}
	if p.Hotel2.CheckIn != nil {
		t.Errorf("hotel2 checkIn should be unset, got %v", p.Hotel2.CheckIn)
	}
	if warnings != 0 {
		t.Errorf("warnings = %d, want 0", warnings)
	}
}

func TestHotelPilgrimRowsBadCellsWarnNotDrop(t *testing.T) {
	rows := []spreadsheet.Row{
		{
			"Full Name":        "Ahmed Ali",
			"Age":              "forty-two",
			"Hotel 1":          "Makkah Towers",
			"Hotel 1 Check In": "someday",
		},
	}

	pilgrims, warnings := HotelPilgrimRows(rows, time.Now())
	if len(pilgrims) != 1 {
		t.Fatalf("bad cells must not drop the row")
	}
	if pilgrims[0].Age != nil {
		t.Errorf("unparseable age should stay unset, got %v", *pilgrims[0].Age)
	}
	if pilgrims[0].Hotel1.CheckIn != nil {
		t.Errorf("unparseable date should stay unset")
	}
	if warnings != 2 {
		t.Errorf("warnings = %d, want 2", warnings)
	}
}

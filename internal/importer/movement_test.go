package importer

import (
	"testing"

	"hajj-admin/internal/models"
	"hajj-admin/internal/spreadsheet"
)

func arrivalRow(id, name, flight, date, tm string) spreadsheet.Row {
	return spreadsheet.Row{
		"Type":          models.MovementArrival,
		"Al Rajhi ID":   id,
		"Full Name":     name,
		"Flight Number": flight,
		"Date":          date,
		"Time":          tm,
		"From":          "Jeddah Airport",
		"To":            "Makkah Hotel",
	}
}

func TestGroupMovementsByFlight(t *testing.T) {
	rows := []spreadsheet.Row{
		arrivalRow("R1", "Ahmed Ali", "SV101", "2024-06-01", "14:30"),
		arrivalRow("R2", "Fatima Khan", "SV101", "2024-06-01", "14:30"),
		arrivalRow("R3", "Omar Hassan", "SV202", "2024-06-01", "18:00"),
	}

	movements := GroupMovements(rows)
	if len(movements) != 2 {
		t.Fatalf("got %d movements, want 2", len(movements))
	}

	first := movements[0]
	if first.PilgrimCount != 2 || len(first.PilgrimDetails) != 2 {
		t.Errorf("first group count = %d, details = %d", first.PilgrimCount, len(first.PilgrimDetails))
	}
	if first.FlightNumber != "SV101" {
		t.Errorf("flightNumber = %q", first.FlightNumber)
	}
	if first.MovementID != "import-arrival-R1" {
		t.Errorf("movementID = %q", first.MovementID)
	}
	if first.Status != "upcoming" {
		t.Errorf("status = %q", first.Status)
	}

	// First-seen order is preserved.
	if movements[1].FlightNumber != "SV202" {
		t.Errorf("second group flight = %q", movements[1].FlightNumber)
	}
}

func TestGroupMovementsTransferKey(t *testing.T) {
	base := spreadsheet.Row{
		"Type":        models.MovementTransfer,
		"Al Rajhi ID": "R1",
		"Full Name":   "Ahmed Ali",
		"From":        "Makkah Hotel",
		"To":          "Madinah Hotel",
		"Date":        "2024-06-05",
		"Time":        "09:00",
	}
	other := spreadsheet.Row{}
	for k, v := range base {
		other[k] = v
	}
	other["Al Rajhi ID"] = "R2"
	other["To"] = "Aziziyah Hotel"

	movements := GroupMovements([]spreadsheet.Row{base, other})
	if len(movements) != 2 {
		t.Fatalf("transfers to different hotels must not merge, got %d", len(movements))
	}
	if movements[0].MovementID != "import-transfer-R1" {
		t.Errorf("movementID = %q", movements[0].MovementID)
	}
	if movements[0].FlightNumber != "" {
		t.Errorf("transfer has flightNumber %q", movements[0].FlightNumber)
	}
}

func TestGroupMovementsSkipsUnknownType(t *testing.T) {
	rows := []spreadsheet.Row{
		{"Type": "Sightseeing", "Al Rajhi ID": "R1"},
		arrivalRow("R2", "Ahmed Ali", "SV101", "2024-06-01", "14:30"),
	}
	movements := GroupMovements(rows)
	if len(movements) != 1 {
		t.Fatalf("got %d movements, want 1", len(movements))
	}
}

func TestGroupMovementsNormalizesDates(t *testing.T) {
	rows := []spreadsheet.Row{
		arrivalRow("R1", "Ahmed Ali", "SV101", "6/1/2024", "14:30"),
		arrivalRow("R2", "Fatima Khan", "SV101", "2024-06-01", "14:30"),
	}
	movements := GroupMovements(rows)
	if len(movements) != 1 {
		t.Fatalf("date spellings of the same day must merge, got %d groups", len(movements))
	}
	if movements[0].Date != "2024-06-01" {
		t.Errorf("date = %q", movements[0].Date)
	}
}

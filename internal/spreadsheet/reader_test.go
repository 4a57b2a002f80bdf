package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestReadRowsXLSX(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"Name", "Passport No", ""},
		{"Ahmed Ali", "P1234567", "ignored"},
		{"  Fatima Khan  ", "P7654321", ""},
	})

	rows, err := ReadRows(buf, "pilgrims.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Get("Name") != "Ahmed Ali" || rows[0].Get("Passport No") != "P1234567" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1].Get("Name") != "Fatima Khan" {
		t.Errorf("cell not trimmed: %q", rows[1].Get("Name"))
	}
	if _, present := rows[0][""]; present {
		t.Error("empty-header column was not dropped")
	}
}

func TestReadRowsSkipsBlankRows(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"Name", "Passport No"},
		{"", ""},
		{"Ahmed Ali", "P1234567"},
	})

	rows, err := ReadRows(buf, "pilgrims.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
}

func TestReadRowsCSV(t *testing.T) {
	src := strings.NewReader("Name,Passport No\nAhmed Ali,P1234567\n")
	rows, err := ReadRows(src, "pilgrims.csv")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Get("Passport No") != "P1234567" {
		t.Fatalf("rows = %v", rows)
	}
}

func TestReadRowsHeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{{"Name", "Passport No"}})
	if _, err := ReadRows(buf, "pilgrims.xlsx"); err == nil {
		t.Fatal("expected error for header-only sheet")
	}
}

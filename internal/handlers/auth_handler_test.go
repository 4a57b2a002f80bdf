package handlers

import "testing"

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		wantOK   bool
	}{
		{"Abcdef12", true},
		{"LongEnough1", true},
		{"Sh0rt", false},            // too short
		{"alllowercase1", false},    // no uppercase
		{"ALLUPPERCASE1", false},    // no lowercase
		{"NoDigitsHere", false},     // no number
		{"", false},
	}

	for _, c := range cases {
		msg := validatePassword(c.password)
		if (msg == "") != c.wantOK {
			t.Errorf("validatePassword(%q) = %q, wantOK %v", c.password, msg, c.wantOK)
		}
	}
}

func TestBodyRows(t *testing.T) {
	rows := bodyRows([]map[string]interface{}{
		{
			"Name":        "Ahmed Ali",
			"Age":         float64(42),
			"Room Number": float64(12.5),
			"Confirmed":   true,
			"Notes":       nil,
			"  ":          "dropped",
		},
	})

	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	row := rows[0]

	if row.Get("Name") != "Ahmed Ali" {
		t.Errorf("Name = %q", row.Get("Name"))
	}
	// Whole floats come out of JSON decoding; they must not keep a
	// trailing ".0" or the passport/age columns break.
	if row.Get("Age") != "42" {
		t.Errorf("Age = %q, want 42", row.Get("Age"))
	}
	if row.Get("Room Number") != "12.5" {
		t.Errorf("Room Number = %q", row.Get("Room Number"))
	}
	if row.Get("Confirmed") != "true" {
		t.Errorf("Confirmed = %q", row.Get("Confirmed"))
	}
	if _, present := row["Notes"]; present {
		t.Error("null cell should be absent")
	}
	if len(row) != 4 {
		t.Errorf("row = %v", row)
	}
}

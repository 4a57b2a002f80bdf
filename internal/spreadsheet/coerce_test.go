package spreadsheet

import (
	"testing"
	"time"
)

func TestCoerceDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-15", "2024-03-15", true},
		{"3/15/2024", "2024-03-15", true},
		{"03/15/2024", "2024-03-15", true},
		{"15 Mar 2024", "2024-03-15", true},
		{"March 15, 2024", "2024-03-15", true},
		{"2024/03/15", "2024-03-15", true},
		{"45366", "2024-03-15", true}, // Excel serial
		{"", "", false},
		{"-", "", false},
		{"not a date", "", false},
		{"123", "", false}, // numeric but outside the serial range
	}

	for _, c := range cases {
		got, ok := CoerceDate(c.in)
		if ok != c.ok {
			t.Errorf("CoerceDate(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && got.Format("2006-01-02") != c.want {
			t.Errorf("CoerceDate(%q) = %s, want %s", c.in, got.Format("2006-01-02"), c.want)
		}
	}
}

func TestCoerceDateSerialRoundTrip(t *testing.T) {
	// 2023-06-01 is serial 45078.
	got, ok := CoerceDate("45078")
	if !ok {
		t.Fatal("serial 45078 not accepted")
	}
	want := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("serial 45078 = %v, want %v", got, want)
	}
}

func TestCoerceInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"42", 42, true},
		{" 42 ", 42, true},
		{"42.0", 42, true},
		{"42.9", 42, true},
		{"", 0, false},
		{"-", 0, false},
		{"abc", 0, false},
	}

	for _, c := range cases {
		got, ok := CoerceInt(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("CoerceInt(%q) = %d, %v; want %d, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestCoerceString(t *testing.T) {
	if got, ok := CoerceString("  Makkah Hotel ", "fallback"); got != "Makkah Hotel" || !ok {
		t.Errorf("got %q, %v", got, ok)
	}
	if got, ok := CoerceString("", "Not specified"); got != "Not specified" || ok {
		t.Errorf("got %q, %v", got, ok)
	}
	if got, ok := CoerceString("-", "Not specified"); got != "Not specified" || ok {
		t.Errorf("got %q, %v", got, ok)
	}
}

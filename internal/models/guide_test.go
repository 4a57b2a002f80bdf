package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGuideProfileStatus(t *testing.T) {
	g := Guide{Name: "Ahmad Saleh"}
	if g.ProfileStatus() != ProfileIncomplete {
		t.Errorf("no passport file: %q", g.ProfileStatus())
	}
	g.PassportFile = "G9001.pdf"
	if g.ProfileStatus() != ProfileComplete {
		t.Errorf("with passport file: %q", g.ProfileStatus())
	}
}

func TestGuideMarshalJSON(t *testing.T) {
	g := Guide{
		Name:         "Ahmad Saleh",
		Email:        "ahmad@example.com",
		PasswordHash: "secret-hash",
		PassportFile: "G9001.pdf",
	}

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)

	if !strings.Contains(body, `"profileStatus":"complete"`) {
		t.Errorf("derived profileStatus missing: %s", body)
	}
	if strings.Contains(body, "secret-hash") || strings.Contains(body, "password") {
		t.Errorf("password hash leaked: %s", body)
	}
}

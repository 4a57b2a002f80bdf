package repositories

import (
	"testing"

	"hajj-admin/internal/models"
)

// The insert batch and the slice handed back to the caller must agree:
// defaults applied to what is persisted have to show up in the
// response body too.
func TestPilgrimDocsDefaultsInPlace(t *testing.T) {
	pilgrims := []models.Pilgrim{
		{Name: "Ahmed Ali", PassportNumber: "P1"},
		{Name: "Fatima Khan", PassportNumber: "P2", Country: "Egypt"},
	}

	docs := pilgrimDocs(pilgrims)
	if len(docs) != 2 {
		t.Fatalf("got %d docs", len(docs))
	}

	if pilgrims[0].Country != models.DefaultCountry {
		t.Errorf("caller slice missed the country default: %q", pilgrims[0].Country)
	}
	if pilgrims[0].Organizer != models.DefaultOrganizer || pilgrims[0].Status != "Active" {
		t.Errorf("caller slice missed defaults: %+v", pilgrims[0])
	}
	if pilgrims[1].Country != "Egypt" {
		t.Errorf("provided country overwritten: %q", pilgrims[1].Country)
	}

	for i, doc := range docs {
		p, ok := doc.(models.Pilgrim)
		if !ok {
			t.Fatalf("doc %d is %T", i, doc)
		}
		if p != pilgrims[i] {
			t.Errorf("doc %d diverges from the returned slice:\n  persisted %+v\n  returned  %+v", i, p, pilgrims[i])
		}
	}
}
